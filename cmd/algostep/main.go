// Command algostep plays the algorithm catalog in a terminal, one checkpoint
// at a time.
//
// Usage:
//
//	algostep --topic sorting --algorithm quick --size 12 --speed 50ms
//	algostep --topic graphs --algorithm dijkstra --mode step   # Enter advances
//	algostep --scenario demo.yaml --interactive                # start, pause, step, ...
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/katalvlaran/algostep/controller"
	"github.com/katalvlaran/algostep/event"
	"github.com/katalvlaran/algostep/logging"
	"github.com/katalvlaran/algostep/metrics"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "algostep:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, in io.Reader, out io.Writer) error {
	opts := NewOptions()
	fs := pflag.NewFlagSet("algostep", pflag.ContinueOnError)
	opts.AddFlags(fs)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	log, flush, err := logging.New(logging.Options{Verbosity: opts.LogVerbosity, Format: opts.LogFormat})
	if err != nil {
		return err
	}
	defer flush()

	reg := prometheus.NewRegistry()
	rec, err := metrics.NewRecorder(reg)
	if err != nil {
		return err
	}

	src, err := opts.source()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	if opts.MetricsAddr != "" {
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		serveMetrics(gctx, g, log, opts.MetricsAddr, reg)
	}

	// A terminal gets a line editor; everything else is read line by line.
	var lines <-chan string
	closeInput := func() {}
	if f, ok := in.(*os.File); ok && opts.Interactive && term.IsTerminal(int(f.Fd())) {
		var stdout io.Writer
		lines, stdout, closeInput, err = promptLines(gctx)
		if err != nil {
			return err
		}
		out = stdout
	} else {
		lines = readLines(gctx, in)
	}
	defer closeInput()

	// finished fires when an unattended run ends, normally or through a fault.
	finished := make(chan struct{})
	var once sync.Once
	finish := func() { once.Do(func() { close(finished) }) }

	var c *controller.Controller
	r := newRenderer(out, func() []int { return c.Snapshot().Array })
	sink := event.Fanout{r}
	if !opts.Interactive {
		sink = append(sink, event.Hooks{
			Complete: func(time.Duration) { finish() },
			Reset:    finish,
		})
	}

	c, err = controller.New(
		controller.WithSelection(opts.Topic, opts.Algorithm),
		controller.WithSpeed(opts.Speed),
		controller.WithSize(opts.Size),
		controller.WithSource(src),
		controller.WithSink(sink),
		controller.WithMetrics(rec),
		controller.WithLogger(log),
	)
	if err != nil {
		return err
	}
	g.Go(func() error { return c.Run(gctx) })

	switch {
	case opts.Interactive:
		err = interact(gctx, c, r, lines)
	case opts.Mode == ModeStep:
		stepThrough(gctx, c, lines, finished)
	default:
		c.Start()
		select {
		case <-finished:
		case <-gctx.Done():
		}
	}

	cancel()
	if werr := g.Wait(); werr != nil && err == nil {
		err = werr
	}
	if err == nil && !opts.Interactive {
		err = c.Snapshot().Fault
	}

	return err
}

// stepThrough advances one checkpoint per input line and plays the rest of
// the run once input is exhausted.
func stepThrough(ctx context.Context, c *controller.Controller, lines <-chan string, finished <-chan struct{}) {
	for {
		select {
		case <-finished:
			return
		case <-ctx.Done():
			return
		case _, ok := <-lines:
			if !ok {
				lines = nil
				c.Start()

				continue
			}
			c.Step()
		}
	}
}

// readLines feeds in line by line until EOF or ctx is done.
func readLines(ctx context.Context, in io.Reader) <-chan string {
	ch := make(chan string)
	go func() {
		defer close(ch)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case ch <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	return ch
}

// serveMetrics exposes reg on addr until ctx is done.
func serveMetrics(ctx context.Context, g *errgroup.Group, log logr.Logger, addr string, reg prometheus.Gatherer) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	g.Go(func() error {
		log.V(logging.DEFAULT).Info("Serving metrics", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("metrics server on %s: %w", addr, err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(sctx)
	})
}
