package blob

import (
	"errors"

	"github.com/arloliu/lerc/engine"
	"github.com/arloliu/lerc/internal/options"
)

type config struct {
	engine engine.Engine
}

// Option represents a functional option for a blob operation.
type Option = options.Option[*config]

// WithEngine routes the operation through eng instead of the shared built-in engine.
func WithEngine(eng engine.Engine) Option {
	return options.New(func(c *config) error {
		if eng == nil {
			return errors.New("engine must not be nil")
		}
		c.engine = eng

		return nil
	})
}

func newConfig(opts []Option) (*config, error) {
	c := &config{}
	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	if c.engine == nil {
		c.engine = engine.Default()
	}

	return c, nil
}
