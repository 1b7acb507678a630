// Package memory holds configuration values in process, for tests and
// programmatic overrides.
package memory

import (
	"context"
	"sync"

	"github.com/lendy-labs/lendy-go/pkg/config"
)

// Config is a config.Config whose value can be swapped at runtime.
type Config struct {
	mu       sync.RWMutex
	value    interface{}
	failure  error
	shutdown bool
}

// NewConfig returns a Config holding value. A nil value reads as unset.
func NewConfig(value interface{}) *Config {
	return &Config{value: value}
}

// Get implements config.Config.Get
func (c *Config) Get(_ context.Context) (interface{}, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch {
	case c.shutdown:
		return nil, config.ErrShutdown
	case c.failure != nil:
		return nil, c.failure
	case c.value == nil:
		return nil, config.ErrNoValue
	}
	return c.value, nil
}

// Shutdown implements config.Config.Shutdown
func (c *Config) Shutdown() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.shutdown = true
}

// Set replaces the value returned by later reads. Setting nil unsets it.
func (c *Config) Set(value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.value = value
}

// FailWith makes later reads return err until it is called with nil.
func (c *Config) FailWith(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.failure = err
}
