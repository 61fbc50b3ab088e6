//go:build lerc_native && cgo

// Package native binds the engine interface to Esri's LERC C library.
//
// Blobs produced by this engine are standard LERC blobs readable by every LERC
// implementation. Building it requires the lerc_native build tag, cgo and the
// library installed where the C toolchain finds Lerc_c_api.h and libLerc:
//
//	go build -tags lerc_native ./...
//
// Status codes of the library are passed through unchanged.
package native

/*
#cgo LDFLAGS: -lLerc
#include <Lerc_c_api.h>
*/
import "C"

import (
	"unsafe"

	"github.com/arloliu/lerc/engine"
	"github.com/arloliu/lerc/errs"
)

// Slots of the info array filled by lerc_getBlobInfo.
const (
	cInfoVersion     = 0
	cInfoDataType    = 1
	cInfoDepth       = 2
	cInfoCols        = 3
	cInfoRows        = 4
	cInfoBands       = 5
	cInfoValidPixels = 6
	cInfoBlobSize    = 7
	cInfoMasks       = 8
	cInfoNoDataUses  = 10
	cInfoLen         = 11

	cRangeLen = 3 // zMin, zMax, max Z error used
)

// slotMap maps engine info slots onto library info slots.
var slotMap = [...]struct{ dst, src int }{
	{engine.InfoVersion, cInfoVersion},
	{engine.InfoDataType, cInfoDataType},
	{engine.InfoHeight, cInfoRows},
	{engine.InfoWidth, cInfoCols},
	{engine.InfoBands, cInfoBands},
	{engine.InfoDepth, cInfoDepth},
	{engine.InfoMasks, cInfoMasks},
	{engine.InfoValidPixels, cInfoValidPixels},
	{engine.InfoBlobSize, cInfoBlobSize},
	{engine.InfoNoDataUses, cInfoNoDataUses},
}

// Engine calls the LERC C library. It holds no state and is safe for concurrent use.
type Engine struct{}

var _ engine.Engine = (*Engine)(nil)

// New creates a native engine.
func New() *Engine {
	return &Engine{}
}

func (*Engine) BlobInfo(blob []byte, info []uint32, dataRange []float64) errs.Status {
	if len(blob) == 0 || len(info) == 0 {
		return errs.StatusWrongParam
	}

	var cInfo [cInfoLen]C.uint
	var cRange [cRangeLen]C.double

	status := C.lerc_getBlobInfo(
		(*C.uchar)(unsafe.Pointer(&blob[0])), C.uint(len(blob)),
		&cInfo[0], &cRange[0], C.int(cInfoLen), C.int(cRangeLen),
	)
	if status != 0 {
		return errs.Status(status)
	}

	for _, s := range slotMap {
		if s.dst < len(info) {
			info[s.dst] = uint32(cInfo[s.src])
		}
	}

	for i := range min(len(dataRange), cRangeLen) {
		dataRange[i] = float64(cRange[i])
	}

	return errs.StatusOK
}

func (*Engine) CompressedSize(values, mask []byte, p engine.Params) (uint32, errs.Status) {
	if len(values) == 0 {
		return 0, errs.StatusWrongParam
	}

	var size C.uint
	status := C.lerc_computeCompressedSize(
		unsafe.Pointer(&values[0]), C.uint(p.DataType),
		C.int(p.Depth), C.int(p.Width), C.int(p.Height), C.int(p.Bands),
		C.int(p.Masks), maskPtr(mask), C.double(p.MaxZError), &size,
	)

	return uint32(size), errs.Status(status)
}

func (*Engine) Encode(values, mask []byte, p engine.Params, dst []byte) (uint32, errs.Status) {
	if len(values) == 0 || len(dst) == 0 {
		return 0, errs.StatusWrongParam
	}

	var written C.uint
	status := C.lerc_encode(
		unsafe.Pointer(&values[0]), C.uint(p.DataType),
		C.int(p.Depth), C.int(p.Width), C.int(p.Height), C.int(p.Bands),
		C.int(p.Masks), maskPtr(mask), C.double(p.MaxZError),
		(*C.uchar)(unsafe.Pointer(&dst[0])), C.uint(len(dst)), &written,
	)

	return uint32(written), errs.Status(status)
}

func (*Engine) Decode(blob []byte, mask, values []byte, p engine.Params) errs.Status {
	if len(blob) == 0 || len(values) == 0 {
		return errs.StatusWrongParam
	}

	status := C.lerc_decode(
		(*C.uchar)(unsafe.Pointer(&blob[0])), C.uint(len(blob)),
		C.int(p.Masks), maskPtr(mask),
		C.int(p.Depth), C.int(p.Width), C.int(p.Height), C.int(p.Bands),
		C.uint(p.DataType), unsafe.Pointer(&values[0]),
	)

	return errs.Status(status)
}

// maskPtr returns the C view of mask, or nil when there is none.
func maskPtr(mask []byte) *C.uchar {
	if len(mask) == 0 {
		return nil
	}

	return (*C.uchar)(unsafe.Pointer(&mask[0]))
}
