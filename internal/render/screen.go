package render

import (
	"io"

	"github.com/muesli/termenv"
)

// Screen redraws a board in place. Close restores the terminal, it must be
// called once the screen is no longer used, whatever the exit path.
type Screen struct {
	out     *termenv.Output
	profile termenv.Profile
}

func NewScreen(w io.Writer) *Screen {
	out := termenv.NewOutput(w)
	out.HideCursor()
	out.ClearScreen()
	return &Screen{out: out, profile: termenv.EnvColorProfile()}
}

func (s *Screen) Profile() termenv.Profile {
	return s.profile
}

// Replace the screen content with the board and the status line under it
func (s *Screen) Show(board, status string) {
	s.out.ClearScreen()
	_, _ = io.WriteString(s.out, board+"\n\n"+status+"\n")
}

func (s *Screen) Close() error {
	s.out.ShowCursor()
	return nil
}
