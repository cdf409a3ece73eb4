package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ttyPath carries the UI; standard input and output belong to candidates
// and the selection.
const ttyPath = "/dev/tty"

// RunOptions configure the terminal session
type RunOptions struct {
	AltScreen bool
}

// Run opens the terminal, runs the picker until the operator accepts or
// cancels, and restores the terminal before returning. Interrupts and a
// cancelled context end the session as a cancellation, not an error.
func Run(ctx context.Context, opts Options, runOpts RunOptions) (Result, error) {
	tty, err := os.OpenFile(ttyPath, os.O_RDWR, 0)
	if err != nil {
		return Result{}, fmt.Errorf("failed to open %s: %w", ttyPath, err)
	}
	defer tty.Close()

	opts.Renderer = lipgloss.NewRenderer(tty)
	model := NewModel(opts)

	programOpts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithInput(tty),
		tea.WithOutput(tty),
	}
	if runOpts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	p := tea.NewProgram(model, programOpts...)
	log.Printf("starting session with %d candidates", len(opts.Candidates))
	if _, err := p.Run(); err != nil {
		return Result{}, sessionError(err)
	}

	return model.Result(), nil
}

// sessionError maps the error of a finished program. Interrupts and kills are
// cancellations and return nil; a recovered panic wraps ErrProgramKilled too,
// so it is checked first.
func sessionError(err error) error {
	switch {
	case errors.Is(err, tea.ErrProgramPanic):
		return fmt.Errorf("picker crashed: %w", err)
	case errors.Is(err, tea.ErrProgramKilled), errors.Is(err, tea.ErrInterrupted):
		log.Printf("session interrupted: %v", err)
		return nil
	default:
		return fmt.Errorf("run picker: %w", err)
	}
}
