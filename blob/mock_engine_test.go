package blob

import (
	"github.com/arloliu/lerc/engine"
	"github.com/arloliu/lerc/errs"
)

// mockEngine records every call and returns canned results.
type mockEngine struct {
	infoStatus   errs.Status
	info         []uint32
	dataRange    []float64
	sizeStatus   errs.Status
	size         uint32
	encodeStatus errs.Status
	written      uint32
	decodeStatus errs.Status

	calls      []string
	params     engine.Params
	mask       []byte
	maskIsNil  bool
	dstLen     int
	infoLen    int
	rangeLen   int
	rangeIsNil bool
}

var _ engine.Engine = (*mockEngine)(nil)

func (m *mockEngine) BlobInfo(_ []byte, info []uint32, dataRange []float64) errs.Status {
	m.calls = append(m.calls, "BlobInfo")
	m.infoLen, m.rangeLen, m.rangeIsNil = len(info), len(dataRange), dataRange == nil
	copy(info, m.info)
	copy(dataRange, m.dataRange)

	return m.infoStatus
}

func (m *mockEngine) CompressedSize(_, mask []byte, p engine.Params) (uint32, errs.Status) {
	m.calls = append(m.calls, "CompressedSize")
	m.params, m.mask, m.maskIsNil = p, mask, mask == nil

	return m.size, m.sizeStatus
}

func (m *mockEngine) Encode(_, mask []byte, p engine.Params, dst []byte) (uint32, errs.Status) {
	m.calls = append(m.calls, "Encode")
	m.params, m.mask, m.maskIsNil, m.dstLen = p, mask, mask == nil, len(dst)
	for i := range dst {
		dst[i] = 0xEE
	}

	return m.written, m.encodeStatus
}

func (m *mockEngine) Decode(_ []byte, mask, values []byte, p engine.Params) errs.Status {
	m.calls = append(m.calls, "Decode")
	m.params, m.mask, m.maskIsNil, m.dstLen = p, mask, mask == nil, len(values)
	for i := range values {
		values[i] = 0x01
	}
	for i := range mask {
		mask[i] = 1
	}

	return m.decodeStatus
}
