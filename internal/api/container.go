// Package api exposes the controller as an HTTP JSON query/command layer:
// read-only status and map snapshots, and commands to drive the state
// machine. It is a thin external collaborator — the controller itself
// stays single-threaded and lock-free; the lock lives here.
package api

import (
	"fmt"
	"sync"

	"github.com/banshee-data/vacuumsim/internal/controller"
)

// Container holds at most one live *controller.Controller. reset_simulation
// replaces its contents rather than mutating a package-level singleton, so
// multiple Containers (and therefore multiple simulation runs) can coexist
// in the same process without interfering with each other.
type Container struct {
	mu   sync.RWMutex
	ctrl *controller.Controller
	cfg  *controller.Config
}

// NewContainer builds a Container and eagerly constructs a controller from
// cfg. A nil cfg is treated as controller.EmptyConfig().
func NewContainer(cfg *controller.Config) (*Container, error) {
	if cfg == nil {
		cfg = controller.EmptyConfig()
	}
	c := &Container{cfg: cfg}
	if err := c.init(cfg); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Container) init(cfg *controller.Config) error {
	ctrl, err := controller.New(cfg)
	if err != nil {
		return fmt.Errorf("init_simulation: %w", err)
	}
	c.ctrl = ctrl
	c.cfg = cfg
	return nil
}

// Init discards the current controller and builds a new one from cfg,
// taking the write lock for the duration of the rebuild.
func (c *Container) Init(cfg *controller.Config) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.init(cfg)
}

// Reset drops the controller and the stored config; the next call to
// Current lazily rebuilds one from controller.EmptyConfig().
func (c *Container) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ctrl = nil
	c.cfg = controller.EmptyConfig()
}

// Current returns the live controller, building one from the container's
// last config if none exists yet (matching reset_simulation's "next query
// lazily rebuilds with defaults" contract).
func (c *Container) Current() (*controller.Controller, error) {
	c.mu.RLock()
	ctrl := c.ctrl
	c.mu.RUnlock()
	if ctrl != nil {
		return ctrl, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ctrl == nil {
		if err := c.init(c.cfg); err != nil {
			return nil, err
		}
	}
	return c.ctrl, nil
}

// WithReadLock runs fn with a read lock held over the live controller,
// rebuilding it first if necessary. Query handlers use this to take a
// snapshot without racing a concurrent step or command.
func (c *Container) WithReadLock(fn func(*controller.Controller)) error {
	if _, err := c.Current(); err != nil {
		return err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	fn(c.ctrl)
	return nil
}

// WithWriteLock runs fn with the write lock held over the live controller,
// rebuilding it first if necessary. Step and every mutating command use
// this so at most one mutation is in flight at a time.
func (c *Container) WithWriteLock(fn func(*controller.Controller)) error {
	if _, err := c.Current(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(c.ctrl)
	return nil
}
