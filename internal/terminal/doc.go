// Package terminal provides the console the form engine reads from and
// writes to, including single-keystroke reads in cbreak mode.
//
// # Raw Key Reader
//
// ReadKey switches the terminal out of canonical mode and disables echo for
// exactly one key read, then restores the previous line discipline. The
// switch is scoped to the call: the ModeGuard is acquired, deferred and
// released inside ReadKey and is never handed to callers, so two readers can
// never hold cbreak mode at once and an error path cannot leave it enabled.
//
// # Key Decoding
//
// Keys are decoded from bytes as follows:
//
//	'\n', '\r'          Enter
//	' '                 Space
//	ESC [ A, ESC O A    Up      (also 'k')
//	ESC [ B, ESC O B    Down    (also 'j')
//	anything else       Other
//
// Arrow keys arrive as three-byte escape sequences on real terminals, so they
// are decoded as sequences rather than by a single byte. Continuation bytes
// are only consumed when they are already buffered, which means a lone ESC
// press decodes to Other instead of blocking for more input.
//
// # Piped Input
//
// When stdin is not a terminal, NewStdio uses a no-op mode so forms can be
// driven by piped input (tests, scripts). The same decoding table applies.
package terminal
