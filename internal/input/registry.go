package input

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrUnhandled is returned by Dispatch for kinds nothing is registered for.
var ErrUnhandled = errors.New("no handler for input event")

// HandlerFunc reacts to one event.
type HandlerFunc func(ev Event)

// Registry maps event kinds to handlers. Handlers for a kind run in
// registration order.
type Registry struct {
	handlers map[Kind][]HandlerFunc
	log      *zap.Logger
}

func NewRegistry(log *zap.Logger) *Registry {
	return &Registry{
		handlers: make(map[Kind][]HandlerFunc),
		log:      log,
	}
}

func (reg *Registry) Register(kind Kind, fn HandlerFunc) {
	reg.handlers[kind] = append(reg.handlers[kind], fn)
}

// Handles reports whether any handler is registered for kind.
func (reg *Registry) Handles(kind Kind) bool {
	return len(reg.handlers[kind]) > 0
}

// Dispatch runs every handler registered for ev.Kind. A panicking handler
// is recovered and reported; the remaining handlers still run.
func (reg *Registry) Dispatch(ev Event) error {
	handlers, ok := reg.handlers[ev.Kind]
	if !ok || len(handlers) == 0 {
		return fmt.Errorf("%w: %s", ErrUnhandled, ev.Kind)
	}

	var errs []error
	for _, fn := range handlers {
		if err := reg.safeCall(fn, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// safeCall keeps one faulty handler from taking down the game loop.
func (reg *Registry) safeCall(fn HandlerFunc, ev Event) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			reg.log.Error("input handler panic recovered",
				zap.Stringer("kind", ev.Kind),
				zap.Any("panic", rec),
			)
			err = fmt.Errorf("handler panic for %s: %v", ev.Kind, rec)
		}
	}()
	fn(ev)
	return nil
}
