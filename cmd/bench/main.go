// Command bench runs a synthetic workload against ring buffers and priority
// queues and exposes optional pprof/Prometheus endpoints.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	_ "net/http/pprof" // registers /debug/pprof/* on DefaultServeMux
	"os"
	"sync"
	"time"

	"github.com/IvanBrykalov/collections/hashtable"
	"github.com/IvanBrykalov/collections/metrics/prom"
	"github.com/IvanBrykalov/collections/policy"
	"github.com/IvanBrykalov/collections/policy/dropnewest"
	"github.com/IvanBrykalov/collections/policy/dropoldest"
	"github.com/IvanBrykalov/collections/pqueue"
	"github.com/IvanBrykalov/collections/ring"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Synthetic ring buffer / priority queue workload",
		Long: `Runs workers that push/shift on ring buffers and enqueue/dequeue on
priority queues for a fixed duration, then prints throughput and final sizes.
Every flag can also be set as COLLBENCH_<FLAG>.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}
	registerFlags(cmd.Flags())
	return cmd
}

// counters are shared across workers.
type counters struct {
	pushes, shifts, enqueues, dequeues, misses atomic.Uint64
}

// guarded pairs the structures a worker operates on with the lock that
// protects them. mu is nil when the structures are worker-local.
type guarded struct {
	mu  *sync.Mutex
	buf *ring.Buffer[int]
	pq  *pqueue.PriorityQueue[int]
}

func (g guarded) lock() {
	if g.mu != nil {
		g.mu.Lock()
	}
}

func (g guarded) unlock() {
	if g.mu != nil {
		g.mu.Unlock()
	}
}

func run(ctx context.Context, cfg config) error {
	level, _ := parseLevel(cfg.LogLevel)
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	// ---- pprof server (on DefaultServeMux) ----
	if cfg.PprofAddr != "" {
		go func() {
			log.Info("pprof: serving", "addr", cfg.PprofAddr)
			log.Error("pprof: stopped", "err", http.ListenAndServe(cfg.PprofAddr, nil))
		}()
	}

	// ---- Prometheus metrics ----
	ringMetrics := prom.NewRing(nil, "collections", "bench_ring", nil)
	queueMetrics := prom.NewQueue(nil, "collections", "bench_pq", nil)
	if cfg.HTTPAddr != "" {
		http.Handle("/metrics", promhttp.Handler())
		go func() {
			log.Info("metrics: serving", "addr", cfg.HTTPAddr)
			if err := http.ListenAndServe(cfg.HTTPAddr, nil); !errors.Is(err, http.ErrServerClosed) {
				log.Error("metrics: stopped", "err", err)
			}
		}()
	}

	var pol policy.Policy = dropoldest.New()
	if cfg.Policy == "newest" {
		pol = dropnewest.New()
	}
	newGuarded := func(mu *sync.Mutex) guarded {
		return guarded{
			mu:  mu,
			buf: ring.NewWithOptions[int](ring.Options{Capacity: cfg.Capacity, Policy: pol, Metrics: ringMetrics}),
			pq:  pqueue.NewWithOptions[int](pqueue.Options{Metrics: queueMetrics}),
		}
	}

	targets := make([]guarded, cfg.Workers)
	if cfg.Shared {
		shared := newGuarded(&sync.Mutex{})
		for i := range targets {
			targets[i] = shared
		}
	} else {
		for i := range targets {
			targets[i] = newGuarded(nil)
		}
	}

	log.Info("bench: starting",
		"policy", cfg.Policy, "cap", cfg.Capacity, "workers", cfg.Workers,
		"shared", cfg.Shared, "duration", cfg.Duration, "seed", cfg.Seed)

	ctx, cancel := context.WithTimeout(ctx, cfg.Duration)
	defer cancel()

	var c counters
	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < cfg.Workers; w++ {
		g.Go(func() error {
			// rand.Rand is not goroutine-safe: one per worker.
			r := rand.New(rand.NewSource(cfg.Seed + int64(w)*9973))
			work(gctx, r, cfg, targets[w], &c)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("workers: %w", err)
	}
	elapsed := time.Since(start)

	// ---- Report ----
	merged := ring.Concat(uniqueBuffers(targets)...)
	ops := c.pushes.Load() + c.shifts.Load() + c.enqueues.Load() + c.dequeues.Load()

	fmt.Printf("policy=%s cap=%d workers=%d shared=%v dur=%v seed=%d\n",
		cfg.Policy, cfg.Capacity, cfg.Workers, cfg.Shared, elapsed, cfg.Seed)
	fmt.Printf("ops=%d (%.0f ops/s)  pushes=%d  shifts=%d  enqueues=%d  dequeues=%d  empty=%d\n",
		ops, float64(ops)/elapsed.Seconds(),
		c.pushes.Load(), c.shifts.Load(), c.enqueues.Load(), c.dequeues.Load(), c.misses.Load())
	fmt.Printf("merged ring: Len()=%d Cap()=%d\n", merged.Len(), merged.Cap())

	log.Debug("bench: done", "ops", ops, "elapsed", elapsed)
	return nil
}

// work runs one worker's op mix until ctx is done.
func work(ctx context.Context, r *rand.Rand, cfg config, t guarded, c *counters) {
	for i := 0; ; i++ {
		select {
		case <-ctx.Done():
			return
		default:
		}

		t.lock()
		if r.Intn(2) == 0 {
			if r.Intn(100) < cfg.PushPct {
				t.buf.Push(i)
				c.pushes.Inc()
			} else {
				if _, ok := t.buf.Shift(); !ok {
					c.misses.Inc()
				}
				c.shifts.Inc()
			}
		} else {
			if r.Intn(100) < cfg.EnqPct {
				// 0..4: priorities 0 and 4 are out of range and get ignored.
				t.pq.Enqueue(i, pqueue.Priority(r.Intn(5)))
				c.enqueues.Inc()
			} else {
				if _, ok := t.pq.Dequeue(); !ok {
					c.misses.Inc()
				}
				c.dequeues.Inc()
			}
		}
		t.unlock()
	}
}

// uniqueBuffers returns each distinct buffer once, in worker order.
func uniqueBuffers(ts []guarded) []*ring.Buffer[int] {
	seen := hashtable.New[*ring.Buffer[int], struct{}]()
	out := make([]*ring.Buffer[int], 0, len(ts))
	for _, t := range ts {
		if !seen.Has(t.buf) {
			seen.Put(t.buf, struct{}{})
			out = append(out, t.buf)
		}
	}
	return out
}
