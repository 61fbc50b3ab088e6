package engine

import (
	"errors"
	"fmt"

	"github.com/els0r/telemetry/logging"

	"github.com/arloliu/lerc/compress"
	"github.com/arloliu/lerc/errs"
	"github.com/arloliu/lerc/format"
	"github.com/arloliu/lerc/internal/options"
)

// Lerc is the built-in pure Go engine.
//
// A blob written by Lerc is a fixed-size section.Header followed by a body
// holding the run-length coded masks and one section per band. The body is
// compressed with the configured codec unless compression does not shrink it.
//
// Lerc is immutable after New and safe for concurrent use.
type Lerc struct {
	compression format.CompressionType
	codec       compress.Codec
	checksum    bool
	bigEndian   bool
	logger      *logging.L
}

var _ Engine = (*Lerc)(nil)

// Option represents a functional option for configuring the built-in engine.
type Option = options.Option[*Lerc]

// New creates a built-in engine.
//
// Defaults: Zstd body compression, checksum enabled, little-endian blobs and the
// global telemetry logger.
func New(opts ...Option) (*Lerc, error) {
	l := &Lerc{
		compression: format.CompressionZstd,
		checksum:    true,
	}

	if err := options.Apply(l, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(l.compression)
	if err != nil {
		return nil, err
	}
	l.codec = codec

	return l, nil
}

// WithCompression sets the body compression. CompressionNone stores bodies as is.
func WithCompression(comp format.CompressionType) Option {
	return options.New(func(l *Lerc) error {
		switch comp {
		case format.CompressionNone, format.CompressionZstd, format.CompressionS2,
			format.CompressionLZ4, format.CompressionSnappy:
			l.compression = comp
			return nil
		default:
			return fmt.Errorf("invalid body compression: %v", comp)
		}
	})
}

// WithChecksum enables or disables the xxHash64 blob checksum. It is enabled by default.
func WithChecksum(enabled bool) Option {
	return options.NoError(func(l *Lerc) {
		l.checksum = enabled
	})
}

// WithBigEndian makes the engine write big-endian blobs.
// Blobs of either byte order are always decodable.
func WithBigEndian() Option {
	return options.NoError(func(l *Lerc) {
		l.bigEndian = true
	})
}

// WithLogger sets the logger used for debug output of encoding decisions and
// rejected blobs.
func WithLogger(logger *logging.L) Option {
	return options.New(func(l *Lerc) error {
		if logger == nil {
			return errors.New("logger must not be nil")
		}
		l.logger = logger

		return nil
	})
}

// Compression returns the configured body compression.
func (l *Lerc) Compression() format.CompressionType {
	return l.compression
}

func (l *Lerc) log() *logging.L {
	if l.logger != nil {
		return l.logger
	}

	return logging.Logger()
}

// statusOf maps an internal error onto the status reported across the engine boundary.
func statusOf(err error) errs.Status {
	switch {
	case err == nil:
		return errs.StatusOK
	case errors.Is(err, errs.ErrWrongParam):
		return errs.StatusWrongParam
	case errors.Is(err, errs.ErrNaN):
		return errs.StatusNaN
	case errors.Is(err, errs.ErrBufferTooSmall):
		return errs.StatusBufferTooSmall
	default:
		return errs.StatusFailed
	}
}
