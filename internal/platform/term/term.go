package term

import (
	"fmt"
	"io"
	"os"

	xterm "golang.org/x/term"
)

// Session owns the terminal modes for one gameplay run: raw input, alternate
// screen, hidden cursor. Restore must run before the process touches the
// terminal again, so callers defer it immediately.
type Session struct {
	fd    int
	out   *os.File
	state *xterm.State
}

// Enter switches the terminal into gameplay mode. It fails when stdin is not
// a terminal, which is the caller's cue to bail out with a usage message.
func Enter(in, out *os.File) (*Session, error) {
	fd := int(in.Fd())
	if !xterm.IsTerminal(fd) {
		return nil, fmt.Errorf("term: stdin is not a terminal")
	}

	state, err := xterm.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("term: cannot enter raw mode: %w", err)
	}

	// Alternate screen, hidden cursor, cleared frame.
	fmt.Fprint(out, "\x1b[?1049h\x1b[?25l\x1b[2J")

	return &Session{fd: fd, out: out, state: state}, nil
}

// Restore leaves the alternate screen and puts the terminal modes back.
func (s *Session) Restore() {
	fmt.Fprint(s.out, "\x1b[0m\x1b[?25h\x1b[?1049l")
	xterm.Restore(s.fd, s.state)
}

// PrepareWriter emits the gameplay-mode control sequences on an arbitrary
// writer. SSH sessions use this instead of Enter: the remote terminal's raw
// mode is negotiated by the SSH client, only the screen setup is ours.
func PrepareWriter(w io.Writer) {
	fmt.Fprint(w, "\x1b[?1049h\x1b[?25l\x1b[2J")
}

// RestoreWriter undoes PrepareWriter.
func RestoreWriter(w io.Writer) {
	fmt.Fprint(w, "\x1b[0m\x1b[?25h\x1b[?1049l")
}
