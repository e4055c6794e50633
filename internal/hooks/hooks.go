// Package hooks connects stagecrypt operations to named points in a host's
// lifecycle, such as "encrypt:encrypt" or "before:deploy:cleanup".
//
// A host runs an event by name; every callback registered for that event
// runs in registration order and the first failure stops the rest.
package hooks

import (
	"context"
	"fmt"
	"sort"

	kerrors "github.com/PolarWolf314/stagecrypt/internal/errors"
)

// Func is a lifecycle callback.
type Func func(ctx context.Context) error

// Registry maps event names to callbacks. The zero value is ready to use.
// A Registry is not safe for concurrent registration.
type Registry struct {
	hooks map[string][]Func
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds fn to the callbacks for event.
func (r *Registry) Register(event string, fn Func) {
	if r.hooks == nil {
		r.hooks = make(map[string][]Func)
	}
	r.hooks[event] = append(r.hooks[event], fn)
}

// Has reports whether any callback is registered for event.
func (r *Registry) Has(event string) bool {
	return len(r.hooks[event]) > 0
}

// Events returns the registered event names, sorted.
func (r *Registry) Events() []string {
	events := make([]string, 0, len(r.hooks))
	for event := range r.hooks {
		events = append(events, event)
	}
	sort.Strings(events)
	return events
}

// Run invokes the callbacks for event. It returns ErrUnknownEvent if none
// are registered.
func (r *Registry) Run(ctx context.Context, event string) error {
	fns := r.hooks[event]
	if len(fns) == 0 {
		return fmt.Errorf("%w: %s", kerrors.ErrUnknownEvent, event)
	}

	for _, fn := range fns {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(ctx); err != nil {
			return fmt.Errorf("%s: %w", event, err)
		}
	}
	return nil
}
