package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/muurk/termform/internal/logging"
)

// ClearSequence clears the whole screen and moves the cursor to the origin.
const ClearSequence = "\x1b[2J\x1b[1;1H"

// Console is the single input/output pair the form engine talks to. Line
// reads and key reads share one buffered reader so bytes read ahead by one
// are never lost to the other.
type Console struct {
	in   *bufio.Reader
	out  *bufio.Writer
	mode Mode

	fd      int
	initial *term.State
}

// Option configures a Console.
type Option func(*Console)

// WithMode overrides the mode used around key reads.
func WithMode(mode Mode) Option {
	return func(c *Console) {
		if mode != nil {
			c.mode = mode
		}
	}
}

// NewConsole creates a console over arbitrary streams. Key reads use a
// no-op mode unless WithMode is given.
func NewConsole(in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		in:   bufio.NewReader(in),
		out:  bufio.NewWriter(out),
		mode: NoopMode{},
		fd:   -1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewStdio creates a console on os.Stdin and os.Stdout. When stdin is a
// terminal, key reads switch it to cbreak mode and the initial state is
// remembered so Reset can restore it from a signal handler.
func NewStdio() *Console {
	c := NewConsole(os.Stdin, os.Stdout)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		c.fd = fd
		c.mode = newTerminalMode(fd)
		if state, err := term.GetState(fd); err == nil {
			c.initial = state
		}
	}
	return c
}

// IsTerminal reports whether the console reads from an interactive terminal.
func (c *Console) IsTerminal() bool {
	return c.fd >= 0
}

// Reset restores the terminal state captured by NewStdio. It is meant for
// interrupt handlers, where a key read may be in progress in cbreak mode.
// Only the terminal state is touched; buffered output belongs to the reading
// goroutine and is left alone.
func (c *Console) Reset() error {
	if c.initial == nil {
		return nil
	}
	if err := term.Restore(c.fd, c.initial); err != nil {
		return NewModeError("failed to restore terminal state", err)
	}
	return nil
}

// Print writes to the output buffer.
func (c *Console) Print(a ...any) {
	_, _ = fmt.Fprint(c.out, a...)
}

// Printf writes formatted output to the output buffer.
func (c *Console) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(c.out, format, a...)
}

// Println writes a line to the output buffer.
func (c *Console) Println(a ...any) {
	_, _ = fmt.Fprintln(c.out, a...)
}

// Writer exposes the buffered output for renderers.
func (c *Console) Writer() io.Writer {
	return c.out
}

// Flush pushes buffered output to the underlying writer.
func (c *Console) Flush() error {
	if err := c.out.Flush(); err != nil {
		return NewWriteError("failed to flush output", err)
	}
	return nil
}

// ClearScreen writes the clear sequence and flushes immediately.
func (c *Console) ClearScreen() error {
	_, _ = c.out.WriteString(ClearSequence)
	return c.Flush()
}

// ReadLine flushes pending output and blocks for one line of input. The
// returned line has its line terminator removed. A final line without a
// terminator is returned as-is; end of input with nothing read is an error.
func (c *Console) ReadLine() (string, error) {
	if err := c.Flush(); err != nil {
		return "", err
	}
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return trimEOL(line), nil
		}
		return "", NewReadError("failed to read line", err)
	}
	return trimEOL(line), nil
}

// ReadKey flushes pending output, switches the terminal to cbreak mode, reads
// one key and restores the previous mode before returning. The restore runs
// on every path, including a failed read.
func (c *Console) ReadKey() (key Key, err error) {
	if err := c.Flush(); err != nil {
		return KeyOther, err
	}

	guard, err := c.mode.Acquire()
	if err != nil {
		return KeyOther, err
	}
	defer func() {
		if rerr := guard.Restore(); rerr != nil && err == nil {
			key, err = KeyOther, rerr
		}
	}()

	key, raw, err := c.decodeKey()
	if err != nil {
		return KeyOther, err
	}
	logging.LogKey(key.String(), raw)
	return key, nil
}

// decodeKey reads one byte and, for escape sequences, whatever continuation
// bytes are already buffered.
func (c *Console) decodeKey() (Key, []byte, error) {
	b, err := c.in.ReadByte()
	if err != nil {
		return KeyOther, nil, NewReadError("failed to read key", err)
	}
	raw := []byte{b}

	switch b {
	case byteESC:
		return c.decodeEscape(raw)
	case '\r':
		// CR LF from a piped source is one Enter, not two
		if c.in.Buffered() > 0 {
			if next, _ := c.in.Peek(1); len(next) == 1 && next[0] == '\n' {
				_, _ = c.in.ReadByte()
				raw = append(raw, '\n')
			}
		}
		return KeyEnter, raw, nil
	default:
		return classifyByte(b), raw, nil
	}
}

func (c *Console) decodeEscape(raw []byte) (Key, []byte, error) {
	if c.in.Buffered() == 0 {
		return KeyOther, raw, nil
	}
	// A byte that does not introduce a sequence is the next key press
	next, err := c.in.Peek(1)
	if err != nil || (next[0] != byteCSI && next[0] != byteSS3) {
		return KeyOther, raw, nil
	}
	intro, _ := c.in.ReadByte()
	raw = append(raw, intro)

	// Skip parameter and intermediate bytes (0x20-0x3F) up to the final byte
	for c.in.Buffered() > 0 {
		b, _ := c.in.ReadByte()
		raw = append(raw, b)
		if b >= 0x40 && b <= 0x7e {
			return classifySequence(b), raw, nil
		}
		if b < 0x20 || b > 0x3f {
			return KeyOther, raw, nil
		}
	}
	return KeyOther, raw, nil
}

func trimEOL(line string) string {
	n := len(line)
	if n > 0 && line[n-1] == '\n' {
		n--
		if n > 0 && line[n-1] == '\r' {
			n--
		}
	}
	return line[:n]
}
