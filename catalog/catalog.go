// Package catalog resolves (topic, algorithm) pairs to runnable procedures.
//
// Topics and algorithm ids are the stable names the controller and the CLI use
// (sorting/bubble, graphs/dijkstra, dp/bellmanFord, ...). Each Entry carries
// the descriptive Info shown next to a run and binds itself to a buffer:
//
//	e, err := catalog.Lookup("sorting", "quick")
//	proc, err := e.Bind(buf)     // proc sorts buf.Array in place
//	tr := stepper.Collect(proc)  // or hand proc to a controller
//
// A bound procedure writes a one-line summary to buf.Outcome when it completes
// normally.
package catalog

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/algostep/builder"
	"github.com/katalvlaran/algostep/stepper"
)

// Topics.
const (
	TopicSorting = "sorting"
	TopicSearch  = "search"
	TopicTrees   = "trees"
	TopicGraphs  = "graphs"
	TopicDP      = "dp"
)

// Sentinel errors.
var (
	// ErrUnknownTopic indicates a topic not listed by Topics.
	ErrUnknownTopic = errors.New("catalog: unknown topic")

	// ErrUnknownAlgorithm indicates an algorithm id not listed under its topic.
	ErrUnknownAlgorithm = errors.New("catalog: unknown algorithm")

	// ErrMissingInput indicates a buffer lacking the input an entry needs
	// (nil buffer, or no graph for a graph algorithm).
	ErrMissingInput = errors.New("catalog: buffer lacks required input")
)

// Info describes an algorithm.
type Info struct {
	Name        string
	Description string
	Time        string
	Space       string
	// Stable is "Yes", "No" or "N/A".
	Stable string
}

// binder turns a buffer into a procedure over it.
type binder func(buf *builder.Buffer) (stepper.Procedure, error)

// Entry is one catalog algorithm.
type Entry struct {
	Topic string
	ID    string
	Info  Info
	bind  binder
}

// Bind returns a procedure that runs the algorithm over buf. buf must not be
// shared with another run.
func (e Entry) Bind(buf *builder.Buffer) (stepper.Procedure, error) {
	if buf == nil {
		return nil, fmt.Errorf("%s/%s: %w: nil buffer", e.Topic, e.ID, ErrMissingInput)
	}
	proc, err := e.bind(buf)
	if err != nil {
		return nil, fmt.Errorf("%s/%s: %w", e.Topic, e.ID, err)
	}

	return proc, nil
}

// Lookup resolves (topic, id).
func Lookup(topic, id string) (Entry, error) {
	list, ok := registry[topic]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownTopic, topic)
	}
	i := slices.IndexFunc(list, func(e Entry) bool { return e.ID == id })
	if i < 0 {
		return Entry{}, fmt.Errorf("%w: %q in topic %q", ErrUnknownAlgorithm, id, topic)
	}

	return list[i], nil
}

// Topics lists the topics in display order.
func Topics() []string {
	return []string{TopicSorting, TopicSearch, TopicTrees, TopicGraphs, TopicDP}
}

// Algorithms lists the entries of topic in display order.
func Algorithms(topic string) ([]Entry, error) {
	list, ok := registry[topic]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTopic, topic)
	}

	return slices.Clone(list), nil
}

// All lists every entry, topic by topic.
func All() []Entry {
	var out []Entry
	for _, t := range Topics() {
		out = append(out, registry[t]...)
	}

	return out
}
