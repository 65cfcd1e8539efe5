package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/poolforge/reuse/internal/runtime"
	"github.com/poolforge/reuse/pkg/config"
	"github.com/poolforge/reuse/pkg/json"
	"github.com/poolforge/reuse/pkg/logger"
	"github.com/poolforge/reuse/pkg/metrics"
	"github.com/poolforge/reuse/pkg/pool"
)

var version = "0.1.0"

// stubWidget is the widget instance type the bench factory produces.
type stubWidget struct {
	Template string
	Attach   pool.Attachment
	Visible  bool
}

// stubFactory stands in for a real window-lifecycle manager.
type stubFactory struct {
	created int
}

func (f *stubFactory) CreateWidget(templateID string, attach pool.Attachment) interface{} {
	f.created++
	return &stubWidget{Template: templateID, Attach: attach}
}

func main() {
	root := &cobra.Command{
		Use:     "reuse",
		Short:   "reuse - keyed object-reuse registry",
		Version: version,
	}

	root.AddCommand(benchCmd(), validateCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config.yaml>",
		Short: "Validate a runtime configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("ok: %d pools declared\n", len(cfg.Pools))
			return nil
		},
	}
}

func benchCmd() *cobra.Command {
	var (
		configPath string
		iterations int
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Exercise the configured pools and report statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if len(cfg.Pools) == 0 {
				cfg.Pools = defaultBenchPools()
			}

			if err := logger.Init(logger.Config{
				Level:       cfg.Logging.Level,
				Development: cfg.Logging.Development,
				Encoding:    cfg.Logging.Encoding,
			}); err != nil {
				return err
			}
			log := logger.Get()
			defer func() { _ = logger.Sync() }()

			opts := runtime.Options{
				Logger:        log,
				WidgetFactory: &stubFactory{},
			}
			if cfg.Metrics.Enabled {
				opts.Observer = metrics.NewCollector(cfg.Metrics.Namespace, prometheus.DefaultRegisterer)
			}
			if cfg.Metrics.Enabled && cfg.Metrics.Listen != "" {
				go serveMetrics(log, cfg.Metrics.Listen)
			}

			reg, err := runtime.BuildRegistry(cfg, opts)
			if err != nil {
				return err
			}

			start := time.Now()
			if err := runBench(reg, cfg, iterations); err != nil {
				return err
			}
			log.Info("bench complete",
				zap.Int("iterations", iterations),
				zap.Int("pools", reg.Len()),
				zap.Duration("elapsed", time.Since(start)))

			out, err := json.MarshalIndent(reg.Stats(), "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "runtime configuration file")
	cmd.Flags().IntVarP(&iterations, "iterations", "n", 100000, "get/put cycles per pool")
	return cmd
}

// defaultBenchPools declares one pool of every kind so a bare `reuse
// bench` exercises the whole surface.
func defaultBenchPools() []config.PoolConfig {
	return []config.PoolConfig{
		{Key: "bench.slices", Kind: config.KindSlice, Warm: 8},
		{Key: "bench.maps", Kind: config.KindMap, Warm: 8},
		{Key: "bench.nodes", Kind: config.KindNode, Warm: 8},
		{Key: "bench.widgets", Kind: config.KindWidget, Template: "panels/bench", Attach: "root", Warm: 4},
	}
}

// runBench drives get/put cycles against every configured pool.
func runBench(reg *pool.Registry, cfg *config.Config, iterations int) error {
	for i := range cfg.Pools {
		pc := &cfg.Pools[i]
		key := pool.Key(pc.Key)

		switch pc.Kind {
		case config.KindSlice:
			p, err := pool.Lookup[*[]interface{}](reg, key)
			if err != nil {
				return err
			}
			for n := 0; n < iterations; n++ {
				s := p.Get()
				*s = append(*s, n, "payload")
				p.Put(s)
			}
		case config.KindMap:
			p, err := pool.Lookup[map[string]interface{}](reg, key)
			if err != nil {
				return err
			}
			for n := 0; n < iterations; n++ {
				m := p.Get()
				m["iteration"] = n
				p.Put(m)
			}
		case config.KindNode:
			p, err := pool.Lookup[*pool.Node](reg, key)
			if err != nil {
				return err
			}
			for n := 0; n < iterations; n++ {
				node := p.Get()
				node.Label = "bench"
				node.Value = n
				// Node pools carry no reset hook; clearing is the caller's job.
				node.Label = ""
				node.Value = nil
				p.Put(node)
			}
		case config.KindWidget:
			p, err := pool.Lookup[interface{}](reg, key)
			if err != nil {
				return err
			}
			for n := 0; n < iterations; n++ {
				w := p.Get()
				if err := pool.PutWidget(reg, key, w); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func serveMetrics(log *zap.Logger, listen string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	log.Info("serving metrics", zap.String("listen", listen))
	if err := http.ListenAndServe(listen, mux); err != nil { //nolint:gosec // G114: bench tool endpoint
		log.Error("metrics server stopped", zap.Error(err))
	}
}
