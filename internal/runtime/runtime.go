// Package runtime builds a pool registry from declarative configuration.
package runtime

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/poolforge/reuse/pkg/config"
	"github.com/poolforge/reuse/pkg/pool"
)

// Options carries the collaborators a configured registry needs.
type Options struct {
	// Logger receives registration events; nil disables logging
	Logger *zap.Logger
	// Observer receives pool traffic; nil disables observation
	Observer pool.Observer
	// WidgetFactory backs widget pools; required when the config
	// declares any
	WidgetFactory pool.WidgetFactory
}

// BuildRegistry creates a registry and registers every pool the config
// declares, warming free-lists as requested. Config-declared slice and
// map pools use the dynamic element shapes ([]interface{} elements,
// string-keyed maps); statically typed pools are registered in code.
func BuildRegistry(cfg *config.Config, opts Options) (*pool.Registry, error) {
	var regOpts []pool.RegistryOption
	if opts.Logger != nil {
		regOpts = append(regOpts, pool.WithLogger(opts.Logger))
	}
	if opts.Observer != nil {
		regOpts = append(regOpts, pool.WithObserver(opts.Observer))
	}
	reg := pool.NewRegistry(regOpts...)

	for i := range cfg.Pools {
		pc := &cfg.Pools[i]
		key := pool.Key(pc.Key)

		switch pc.Kind {
		case config.KindSlice:
			p, err := pool.Slices[interface{}](reg, key)
			if err != nil {
				return nil, err
			}
			p.Warm(pc.Warm)
		case config.KindMap:
			p, err := pool.Maps[string, interface{}](reg, key)
			if err != nil {
				return nil, err
			}
			p.Warm(pc.Warm)
		case config.KindNode:
			p, err := pool.Nodes(reg, key)
			if err != nil {
				return nil, err
			}
			p.Warm(pc.Warm)
		case config.KindWidget:
			if opts.WidgetFactory == nil {
				return nil, fmt.Errorf("pool %q: no widget factory provided", pc.Key)
			}
			p, err := pool.Widgets[interface{}](reg, key, opts.WidgetFactory, pc.Template, pc.Attach)
			if err != nil {
				return nil, err
			}
			p.Warm(pc.Warm)
		default:
			// Validate has rejected unknown kinds already.
			return nil, fmt.Errorf("pool %q: unknown kind %q", pc.Key, pc.Kind)
		}
	}

	return reg, nil
}
