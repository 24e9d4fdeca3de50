package server

import (
	"github.com/pslkit/suffixd/internal/cache"
	"github.com/pslkit/suffixd/internal/source"
)

type config struct {
	bind   string
	zone   string
	holder *source.Holder
	cache  *cache.Cache
	ttl    uint32
}

type Option func(*config)

// WithBind sets the UDP/TCP listen address.
func WithBind(bind string) Option {
	return func(c *config) {
		c.bind = bind
	}
}

// WithZone sets the query zone clients append to the name they want
// decomposed. An empty zone serves bare names directly.
func WithZone(zone string) Option {
	return func(c *config) {
		c.zone = zone
	}
}

// WithHolder sets the list holder queries are answered from.
func WithHolder(h *source.Holder) Option {
	return func(c *config) {
		c.holder = h
	}
}

// WithCache wires in the lookup result cache. Optional.
func WithCache(lc *cache.Cache) Option {
	return func(c *config) {
		c.cache = lc
	}
}

// WithTTL overrides the TTL of answer records.
func WithTTL(ttl uint32) Option {
	return func(c *config) {
		c.ttl = ttl
	}
}
