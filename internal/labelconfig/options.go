package labelconfig

import (
	"github.com/charmbracelet/log"

	"lsconfig/internal/logging"
)

type options struct {
	logger *log.Logger
}

// Option configures parsing and linking.
type Option func(*options)

// WithLogger sets the logger that receives parse and link diagnostics.
// The default discards them.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(opts []Option) options {
	o := options{logger: logging.Discard()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
