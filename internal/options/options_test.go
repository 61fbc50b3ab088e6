package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

var errUnknownCodec = errors.New("unknown codec")

type codecConfig struct {
	codec    string
	level    int
	checksum bool
	applied  []string
}

func withCodec(name string) Option[*codecConfig] {
	return New(func(c *codecConfig) error {
		switch name {
		case "zstd", "lz4", "none":
			c.codec = name
			c.applied = append(c.applied, "codec")

			return nil
		default:
			return errUnknownCodec
		}
	})
}

func withLevel(level int) Option[*codecConfig] {
	return NoError(func(c *codecConfig) {
		c.level = level
		c.applied = append(c.applied, "level")
	})
}

func withChecksum(enabled bool) Option[*codecConfig] {
	return NoError(func(c *codecConfig) {
		c.checksum = enabled
		c.applied = append(c.applied, "checksum")
	})
}

func TestNew(t *testing.T) {
	cfg := &codecConfig{}

	require.NoError(t, withCodec("lz4")(cfg))
	require.Equal(t, "lz4", cfg.codec)

	require.ErrorIs(t, withCodec("brotli")(cfg), errUnknownCodec)
	require.Equal(t, "lz4", cfg.codec)
}

func TestNoError(t *testing.T) {
	cfg := &codecConfig{}

	require.NoError(t, withLevel(3)(cfg))
	require.NoError(t, withChecksum(true)(cfg))
	require.Equal(t, 3, cfg.level)
	require.True(t, cfg.checksum)
}

func TestApply(t *testing.T) {
	t.Run("InOrder", func(t *testing.T) {
		cfg := &codecConfig{}
		err := Apply(cfg, withChecksum(true), withCodec("zstd"), withLevel(9), withLevel(1))
		require.NoError(t, err)
		require.Equal(t, []string{"checksum", "codec", "level", "level"}, cfg.applied)
		require.Equal(t, 1, cfg.level)
	})

	t.Run("StopsAtFirstError", func(t *testing.T) {
		cfg := &codecConfig{}
		err := Apply(cfg, withLevel(2), withCodec("gzip"), withChecksum(true))
		require.ErrorIs(t, err, errUnknownCodec)
		require.Equal(t, []string{"level"}, cfg.applied)
		require.False(t, cfg.checksum)
	})

	t.Run("NoOptions", func(t *testing.T) {
		cfg := &codecConfig{level: 5}
		require.NoError(t, Apply(cfg))
		require.Equal(t, &codecConfig{level: 5}, cfg)
	})

	t.Run("NilOptionSkipped", func(t *testing.T) {
		cfg := &codecConfig{}
		require.NoError(t, Apply(cfg, nil, withLevel(4), nil))
		require.Equal(t, []string{"level"}, cfg.applied)
	})

	t.Run("NonStructTarget", func(t *testing.T) {
		var n int
		require.NoError(t, Apply(&n, NoError(func(p *int) { *p = 42 })))
		require.Equal(t, 42, n)
	})
}
