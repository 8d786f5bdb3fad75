package main

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"

	"github.com/katalvlaran/algostep/catalog"
)

const historyFileName = ".algostep_history"

// promptLines reads commands through a line editor with history and
// completion. The returned writer redraws the prompt after each line of
// output and must be used for everything printed while the prompt is live.
func promptLines(ctx context.Context) (<-chan string, io.Writer, func(), error) {
	var history string
	if home, err := os.UserHomeDir(); err == nil {
		history = filepath.Join(home, historyFileName)
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "algostep> ",
		HistoryFile:     history,
		AutoComplete:    completer(),
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return nil, nil, nil, err
	}

	ch := make(chan string)
	go func() {
		defer close(ch)
		for {
			line, err := rl.Readline()
			if err != nil { // Ctrl-C or Ctrl-D
				return
			}
			select {
			case ch <- line:
			case <-ctx.Done():
				return
			}
		}
	}()

	return ch, rl.Stdout(), func() { _ = rl.Close() }, nil
}

// completer offers every command, and topics and algorithm ids after select and list.
func completer() *readline.PrefixCompleter {
	var selectItems, listItems []readline.PrefixCompleterInterface
	for _, t := range catalog.Topics() {
		entries, _ := catalog.Algorithms(t)
		var ids []readline.PrefixCompleterInterface
		for _, e := range entries {
			ids = append(ids, readline.PcItem(e.ID))
		}
		selectItems = append(selectItems, readline.PcItem(t, ids...))
		listItems = append(listItems, readline.PcItem(t))
	}

	return readline.NewPrefixCompleter(
		readline.PcItem("start"),
		readline.PcItem("pause"),
		readline.PcItem("step"),
		readline.PcItem("reset"),
		readline.PcItem("regen"),
		readline.PcItem("speed"),
		readline.PcItem("size"),
		readline.PcItem("select", selectItems...),
		readline.PcItem("list", listItems...),
		readline.PcItem("info"),
		readline.PcItem("status"),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)
}
