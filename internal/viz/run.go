package viz

import (
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/fractalzoom/internal/anim"
)

type Options struct {
	Theme string
	// Debug writes diagnostics to LogPath, since stdout belongs to the UI.
	Debug   bool
	LogPath string
}

// Run starts the viewer on a and blocks until the user quits.
func Run(a *anim.Animator, opts Options) error {
	if opts.Debug {
		path := opts.LogPath
		if path == "" {
			path = "fractalzoom.log"
		}
		f, err := tea.LogToFile(path, "fractalzoom")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	m, err := NewModel(a, opts.Theme)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}
