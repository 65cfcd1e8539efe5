package pool

import (
	"github.com/poolforge/reuse/pkg/errors"
)

// Attachment is the opaque mount point a widget factory attaches new
// widget instances to. The pool never inspects it.
type Attachment interface{}

// WidgetFactory is the external collaborator that instantiates widgets
// from a template identifier. The pool calls it exactly once per cache
// miss and trusts its result beyond the declared element type.
type WidgetFactory interface {
	CreateWidget(templateID string, attach Attachment) interface{}
}

// WidgetOption configures a widget pool at construction time.
type WidgetOption[T any] func(*widgetConfig[T])

type widgetConfig[T any] struct {
	onGet func(T)
	reset func(T)
}

// WithWidgetOnGet sets an activation hook run on every Get.
func WithWidgetOnGet[T any](fn func(T)) WidgetOption[T] {
	return func(c *widgetConfig[T]) {
		c.onGet = fn
	}
}

// WithWidgetReset sets an extra reset hook run on Put, after the fixed
// detach hook.
func WithWidgetReset[T any](fn func(T)) WidgetOption[T] {
	return func(c *widgetConfig[T]) {
		c.reset = fn
	}
}

// Widgets returns the widget pool registered under key, creating it on
// first call. Cache misses delegate to the factory with the given
// template identifier and attachment target. The put side always runs
// the fixed detach hook, then the caller's extra reset if one was set.
//
// A factory result that does not hold the pool's element type is
// rejected immediately with a type-mismatch panic rather than being
// stored; the factory contract is part of the pool's configuration.
func Widgets[T any](r *Registry, key Key, factory WidgetFactory, templateID string, attach Attachment, opts ...WidgetOption[T]) (*Pool[T], error) {
	if factory == nil {
		return nil, errors.Newf(errors.ErrorTypeConfig, "widget pool %q has no factory", key)
	}
	create := func() T {
		w := factory.CreateWidget(templateID, attach)
		obj, ok := w.(T)
		if !ok {
			panic(errors.Newf(errors.ErrorTypeMismatch,
				"widget factory returned %T for pool %q", w, key))
		}
		return obj
	}
	return WidgetsWith(r, key, create, opts...)
}

// WidgetsWith is the fully custom variant of Widgets: the caller
// supplies the create callback (and optionally hooks) instead of a
// factory and template. The fixed detach hook still runs on every Put,
// before any caller-supplied reset.
func WidgetsWith[T any](r *Registry, key Key, create func() T, opts ...WidgetOption[T]) (*Pool[T], error) {
	var cfg widgetConfig[T]
	for _, opt := range opts {
		opt(&cfg)
	}

	poolOpts := []Option[T]{
		WithOnPut(func(obj T) {
			detachWidget(obj)
			if cfg.reset != nil {
				cfg.reset(obj)
			}
		}),
	}
	if cfg.onGet != nil {
		poolOpts = append(poolOpts, WithOnGet(cfg.onGet))
	}
	return New(r, key, create, poolOpts...)
}

// PutWidget routes a widget back through the pool registered under key.
// Putting into a key that was never registered is an error: silently
// dropping the instance would leak it with no signal to the caller.
func PutWidget[T any](r *Registry, key Key, w T) error {
	p, err := Lookup[T](r, key)
	if err != nil {
		if errors.IsType(err, errors.ErrorTypeNotFound) {
			return errors.Newf(errors.ErrorTypeUnregistered,
				"no widget pool registered under key %q", key)
		}
		return err
	}
	p.Put(w)
	return nil
}

// detachWidget is the fixed put-side hook shared by all widget pools.
// Reserved for detach/deactivate handling once widgets carry a common
// lifecycle surface; currently a no-op.
func detachWidget(interface{}) {}
