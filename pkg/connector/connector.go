package connector

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/ruslano69/mssql-connect/pkg/profile"
)

// Connector opens a single SQL Server session from a resolved profile.
type Connector interface {
	// Open establishes the session. A connector is single-use: Open must be
	// called once, before any other method.
	Open(ctx context.Context, p profile.ConnectionProfile) error

	// Ping verifies the session is alive.
	Ping(ctx context.Context) error

	// DB exposes the underlying handle for queries. Valid after Open.
	DB() *sql.DB

	// Name returns the registry name of the implementation.
	Name() string

	// Close releases the session.
	Close(ctx context.Context) error
}

// Constructor returns a new, unopened connector instance.
type Constructor func() Connector

// Registry manages connector constructors keyed by name.
type Registry struct {
	registry map[string]Constructor
	mu       sync.RWMutex
}

// NewRegistry creates an empty connector registry.
func NewRegistry() *Registry {
	return &Registry{
		registry: make(map[string]Constructor),
	}
}

// Register registers a constructor under the given name.
// Implementations call this from init().
func (r *Registry) Register(name string, constructor Constructor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.registry[name] = constructor
}

// IsRegistered reports whether a connector name is known.
func (r *Registry) IsRegistered(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.registry[name]
	return ok
}

// RegisteredNames returns all registered connector names.
func (r *Registry) RegisteredNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.registry))
	for name := range r.registry {
		names = append(names, name)
	}
	return names
}

// New constructs a connector and opens a session with the given profile.
func (r *Registry) New(ctx context.Context, name string, p profile.ConnectionProfile) (Connector, error) {
	c, err := r.NewWithoutOpen(name)
	if err != nil {
		return nil, err
	}

	if err := c.Open(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to open %s connection: %w", name, err)
	}
	return c, nil
}

// NewWithoutOpen constructs a connector without opening a session.
// Useful for tests and deferred connection.
func (r *Registry) NewWithoutOpen(name string) (Connector, error) {
	r.mu.RLock()
	constructor, ok := r.registry[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unknown connector: %s (available: %v)", name, r.RegisteredNames())
	}
	return constructor(), nil
}

// ========== Global Registry ==========

var globalRegistry = NewRegistry()

// Register registers a connector in the global registry.
func Register(name string, constructor Constructor) {
	globalRegistry.Register(name, constructor)
}

// IsRegistered checks registration in the global registry.
func IsRegistered(name string) bool {
	return globalRegistry.IsRegistered(name)
}

// RegisteredNames returns names from the global registry.
func RegisteredNames() []string {
	return globalRegistry.RegisteredNames()
}

// New opens a connector through the global registry.
// This is the usual way to obtain a session.
func New(ctx context.Context, name string, p profile.ConnectionProfile) (Connector, error) {
	return globalRegistry.New(ctx, name, p)
}

// NewWithoutOpen constructs through the global registry without opening.
func NewWithoutOpen(name string) (Connector, error) {
	return globalRegistry.NewWithoutOpen(name)
}
