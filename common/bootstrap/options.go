package bootstrap

import (
	"github.com/wildcat/spartan/common/config"
	"github.com/wildcat/spartan/common/logger"
)

// Option configures the bootstrap process
type Option func(*options)

type options struct {
	skipStorage  bool
	skipCache    bool
	customLogger *logger.Logger
	customConfig *config.Config
}

func defaultOptions() *options {
	return &options{}
}

// WithoutStorage skips object storage initialization (statusd does not
// touch the bucket)
func WithoutStorage() Option {
	return func(o *options) {
		o.skipStorage = true
	}
}

// WithoutCache skips the Redis dedup cache even when REDIS_ADDR is set
func WithoutCache() Option {
	return func(o *options) {
		o.skipCache = true
	}
}

// WithLogger uses a pre-built logger instead of constructing one
func WithLogger(log *logger.Logger) Option {
	return func(o *options) {
		o.customLogger = log
	}
}

// WithConfig uses a pre-built config instead of loading from the environment
func WithConfig(cfg *config.Config) Option {
	return func(o *options) {
		o.customConfig = cfg
	}
}
