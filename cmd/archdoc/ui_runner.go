package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"archdoc/internal/driver"
	"archdoc/internal/source"
	"archdoc/internal/ui"
)

type generateOutcome struct {
	fileSet *source.FileSet
	results []driver.DirResult
	err     error
}

// runGenerateDirWithUI drives directory generation behind a progress
// display. Generation runs in its own goroutine and feeds the UI through a
// channel; closing the channel ends the program.
func runGenerateDirWithUI(ctx context.Context, dir string, opts driver.Options, jobs int, cache *driver.DiskCache) (*source.FileSet, []driver.DirResult, error) {
	files, err := driver.ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	events := make(chan driver.Event, 256)
	outcomeCh := make(chan generateOutcome, 1)

	go func() {
		fs, results, err := driver.GenerateDir(ctx, dir, opts, jobs, cache, func(ev driver.Event) {
			events <- ev
		})
		outcomeCh <- generateOutcome{fileSet: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("generating documentation", files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fileSet, outcome.results, uiErr
	}
	return outcome.fileSet, outcome.results, outcome.err
}
