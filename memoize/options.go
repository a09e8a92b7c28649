package memoize

import (
	"time"
)

// Configuration holds the tunables shared by the caches in this package.
type Configuration struct {
	Ttl       time.Duration
	MaxSizeMb int
}

func newConfiguration() *Configuration {
	var config = &Configuration{
		Ttl:       time.Hour,
		MaxSizeMb: 64,
	}
	return config
}

type Option = func(config *Configuration)

// WithTtl sets how long cached entries live
func WithTtl(ttl time.Duration) Option {
	return func(o *Configuration) {
		o.Ttl = ttl
	}
}

// WithMaxSizeMb sets the storage limit for the document cache
func WithMaxSizeMb(maxSizeMb int) Option {
	return func(o *Configuration) {
		o.MaxSizeMb = maxSizeMb
	}
}
