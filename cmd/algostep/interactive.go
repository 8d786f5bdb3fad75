package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/algostep/catalog"
	"github.com/katalvlaran/algostep/controller"
)

const helpText = `commands:
  start                      play (or resume) continuously
  pause                      park the run at its current checkpoint
  step                       advance one checkpoint
  reset                      cancel the run and draw a new buffer
  regen                      draw a new buffer
  speed <ms>                 pause between checkpoints, 0 for none
  size <n>                   buffer size
  select <topic> <algorithm> choose the algorithm
  list [topic]               list algorithms
  info                       describe the selected algorithm
  status                     show the current run
  help, quit
`

var errUsage = errors.New("usage")

// interact executes one command per line. Each command is flushed through
// the controller before the next is read, so output follows input order.
func interact(ctx context.Context, c *controller.Controller, r *renderer, lines <-chan string) error {
	for {
		var line string
		var ok bool
		select {
		case <-ctx.Done():
			return nil
		case line, ok = <-lines:
			if !ok {
				return nil
			}
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		quit, err := dispatch(c, r, fields)
		if err != nil {
			r.printf("error: %v\n", err)
		}
		if quit {
			return nil
		}
		if err := c.Flush(ctx); err != nil {
			return nil
		}
	}
}

func dispatch(c *controller.Controller, r *renderer, fields []string) (quit bool, err error) {
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "start":
		c.Start()
	case "pause":
		c.Pause()
	case "step":
		c.Step()
	case "reset":
		c.Reset()
	case "regen", "regenerate":
		c.Regenerate()
	case "speed":
		ms, err := intArg(args)
		if err != nil || ms < 0 {
			return false, fmt.Errorf("%w: speed <ms>", errUsage)
		}
		c.SetSpeed(time.Duration(ms) * time.Millisecond)
	case "size":
		n, err := intArg(args)
		if err != nil {
			return false, fmt.Errorf("%w: size <n>", errUsage)
		}
		c.SetBufferSize(n)
	case "select":
		if len(args) != 2 {
			return false, fmt.Errorf("%w: select <topic> <algorithm>", errUsage)
		}
		c.Select(args[0], args[1])
	case "list":
		return false, list(r, args)
	case "info":
		s := c.Snapshot()
		e, err := catalog.Lookup(s.Topic, s.Algorithm)
		if err != nil {
			return false, err
		}
		r.printf("%s (%s/%s)\n  %s\n  time %s, space %s, stable %s\n",
			e.Info.Name, e.Topic, e.ID, e.Info.Description, e.Info.Time, e.Info.Space, e.Info.Stable)
	case "status":
		s := c.Snapshot()
		r.printf("%s/%s %s: %d comparisons, %d swaps, elapsed %s\n",
			s.Topic, s.Algorithm, s.Mode, s.Counters.Comparisons, s.Counters.Swaps, s.Elapsed.Round(time.Millisecond))
		r.printf("  array %v\n", s.Array)
	case "help", "?":
		r.printf("%s", helpText)
	case "quit", "exit", "q":
		return true, nil
	default:
		return false, fmt.Errorf("unknown command %q (try \"help\")", cmd)
	}

	return false, nil
}

func intArg(args []string) (int, error) {
	if len(args) != 1 {
		return 0, errUsage
	}

	return strconv.Atoi(args[0])
}

func list(r *renderer, args []string) error {
	topics := catalog.Topics()
	if len(args) > 0 {
		topics = args
	}
	for _, t := range topics {
		entries, err := catalog.Algorithms(t)
		if err != nil {
			return err
		}
		r.printf("%s:\n", t)
		for _, e := range entries {
			r.printf("  %-20s %s\n", e.ID, e.Info.Name)
		}
	}

	return nil
}
