package terminal

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"golang.org/x/term"
)

// fakeMode records guard usage so tests can check that cbreak mode never
// outlives a key read.
type fakeMode struct {
	acquired   int
	restored   int
	acquireErr error
	restoreErr error
}

func (m *fakeMode) Acquire() (ModeGuard, error) {
	if m.acquireErr != nil {
		return nil, m.acquireErr
	}
	m.acquired++
	return fakeGuard{m}, nil
}

func (m *fakeMode) held() int {
	return m.acquired - m.restored
}

type fakeGuard struct{ m *fakeMode }

func (g fakeGuard) Restore() error {
	g.m.restored++
	return g.m.restoreErr
}

func TestReadKey_Decoding(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Key
	}{
		{"enter", "\n", []Key{KeyEnter}},
		{"carriage return", "\r", []Key{KeyEnter}},
		{"crlf is one enter", "\r\n", []Key{KeyEnter}},
		{"space", " ", []Key{KeySpace}},
		{"csi arrows", "\x1b[A\x1b[B", []Key{KeyUp, KeyDown}},
		{"ss3 arrows", "\x1bOA\x1bOB", []Key{KeyUp, KeyDown}},
		{"vi keys", "kj", []Key{KeyUp, KeyDown}},
		{"modified arrow", "\x1b[1;5A", []Key{KeyUp}},
		{"right arrow is other", "\x1b[C", []Key{KeyOther}},
		{"bare A and B are other", "AB", []Key{KeyOther, KeyOther}},
		{"lone escape", "\x1b", []Key{KeyOther}},
		{"escape then vi key", "\x1bj ", []Key{KeyOther, KeyDown, KeySpace}},
		{"escape then enter", "\x1b\n", []Key{KeyOther, KeyEnter}},
		{"letters", "q", []Key{KeyOther}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode := &fakeMode{}
			c := NewConsole(strings.NewReader(tt.input), io.Discard, WithMode(mode))
			for i, want := range tt.want {
				got, err := c.ReadKey()
				if err != nil {
					t.Fatalf("ReadKey() #%d error = %v", i, err)
				}
				if got != want {
					t.Errorf("ReadKey() #%d = %v, want %v", i, got, want)
				}
			}
			if _, err := c.ReadKey(); !IsTerminalError(err, ErrTypeRead) {
				t.Errorf("expected read error after input, got %v", err)
			}
			if mode.held() != 0 {
				t.Errorf("mode still held %d time(s) after reads", mode.held())
			}
		})
	}
}

func TestReadKey_RestoresOnReadError(t *testing.T) {
	mode := &fakeMode{}
	c := NewConsole(strings.NewReader(""), io.Discard, WithMode(mode))

	_, err := c.ReadKey()
	if !IsTerminalError(err, ErrTypeRead) {
		t.Fatalf("ReadKey() error = %v, want read error", err)
	}
	if !errors.Is(err, io.EOF) {
		t.Errorf("read error should wrap io.EOF, got %v", err)
	}
	if mode.acquired != 1 || mode.restored != 1 {
		t.Errorf("acquired=%d restored=%d, want 1/1", mode.acquired, mode.restored)
	}
}

func TestReadKey_AcquireFailure(t *testing.T) {
	mode := &fakeMode{acquireErr: NewModeError("failed to get terminal attributes", errors.New("ENOTTY"))}
	c := NewConsole(strings.NewReader("\n"), io.Discard, WithMode(mode))

	_, err := c.ReadKey()
	if !IsTerminalError(err, ErrTypeMode) {
		t.Fatalf("ReadKey() error = %v, want mode error", err)
	}
	// Nothing should have been consumed
	key, err := NewConsole(strings.NewReader("\n"), io.Discard).ReadKey()
	if err != nil || key != KeyEnter {
		t.Errorf("sanity read = %v, %v", key, err)
	}
}

func TestReadKey_RestoreFailureIsReported(t *testing.T) {
	mode := &fakeMode{restoreErr: NewModeError("failed to reset terminal attributes", nil)}
	c := NewConsole(strings.NewReader(" "), io.Discard, WithMode(mode))

	key, err := c.ReadKey()
	if !IsTerminalError(err, ErrTypeMode) {
		t.Fatalf("ReadKey() error = %v, want mode error", err)
	}
	if key != KeyOther {
		t.Errorf("key = %v, want other on failure", key)
	}
}

func TestReadKey_FlushesPendingOutput(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader("\n"), &out)
	c.Print("menu")

	if _, err := c.ReadKey(); err != nil {
		t.Fatalf("ReadKey() error = %v", err)
	}
	if out.String() != "menu" {
		t.Errorf("output = %q, want flushed menu", out.String())
	}
}

func TestReadLine(t *testing.T) {
	c := NewConsole(strings.NewReader("John\r\n30\nlast"), io.Discard)

	for _, want := range []string{"John", "30", "last"} {
		got, err := c.ReadLine()
		if err != nil {
			t.Fatalf("ReadLine() error = %v", err)
		}
		if got != want {
			t.Errorf("ReadLine() = %q, want %q", got, want)
		}
	}

	if _, err := c.ReadLine(); !IsTerminalError(err, ErrTypeRead) {
		t.Errorf("ReadLine() at EOF error = %v, want read error", err)
	}
}

func TestReadLineAndKeyShareBuffer(t *testing.T) {
	c := NewConsole(strings.NewReader("Alice\n\x1b[B\nBob\n"), io.Discard)

	if line, _ := c.ReadLine(); line != "Alice" {
		t.Fatalf("first line = %q", line)
	}
	if key, _ := c.ReadKey(); key != KeyDown {
		t.Fatalf("first key = %v", key)
	}
	if key, _ := c.ReadKey(); key != KeyEnter {
		t.Fatalf("second key = %v", key)
	}
	if line, _ := c.ReadLine(); line != "Bob" {
		t.Errorf("second line = %q, want Bob", line)
	}
}

func TestClearScreen(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader(""), &out)
	if err := c.ClearScreen(); err != nil {
		t.Fatalf("ClearScreen() error = %v", err)
	}
	if out.String() != "\x1b[2J\x1b[1;1H" {
		t.Errorf("ClearScreen() wrote %q", out.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestFlushFailure(t *testing.T) {
	c := NewConsole(strings.NewReader("x\n"), failingWriter{})
	c.Print("prompt")
	if _, err := c.ReadLine(); !IsTerminalError(err, ErrTypeWrite) {
		t.Errorf("ReadLine() error = %v, want write error", err)
	}
}

func TestKeyString(t *testing.T) {
	names := map[Key]string{
		KeyUp: "up", KeyDown: "down", KeyEnter: "enter", KeySpace: "space", KeyOther: "other",
	}
	for k, want := range names {
		if k.String() != want {
			t.Errorf("Key(%d).String() = %q, want %q", k, k.String(), want)
		}
	}
}

func TestReset_LeavesBufferedOutput(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader(""), &out)
	c.initial = &term.State{}
	c.Print("pending")

	if err := c.Reset(); !IsTerminalError(err, ErrTypeMode) {
		t.Errorf("Reset() on a closed descriptor error = %v, want mode error", err)
	}
	if out.Len() != 0 {
		t.Errorf("Reset() flushed %q", out.String())
	}
}
