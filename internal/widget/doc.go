// Package widget implements the cursor-driven selection menus used by select
// and multi-select fields.
//
// Each widget is a small state machine. It starts in the browsing state and
// moves to the committed state on a valid Enter:
//
//	Up      cursor - 1, floored at 0
//	Down    cursor + 1, capped at len(options) - 1
//	Space   (multi only) toggle the option under the cursor; turning an
//	        option on is ignored once the selection limit is reached
//	Enter   single: commit the option under the cursor
//	        multi: commit the toggled options, ignored while none are toggled
//	other   no change
//
// Single and Multi hold the state and can be driven directly with Apply,
// which is how the transitions are tested. RunSingle and RunMulti wrap them in
// the redraw loop: clear the screen, render every option, flush, block for
// one key. There is no timeout; the loop only ends on a commit or an error
// from the key reader.
package widget
