// Package input turns backend key events into the events the editor
// consumes.
//
// A Source produces abstract key events one at a time; io.EOF ends the
// event loop. Terminal backends implement Source directly, and
// ScriptSource replays a fixed sequence for tests and headless runs.
//
// ExitPolicy sits between a Source and the modal state machine. It
// translates the configured quit keys into the abstract Exit key, but only
// while the editor is in Normal mode, so the same keys can still be typed
// in Insert mode.
//
// # Usage
//
//	policy, err := input.NewExitPolicy([]string{"C-c", "q"})
//	if err != nil {
//	    return err
//	}
//	for {
//	    ev, err := src.ReadEvent()
//	    if err != nil {
//	        break
//	    }
//	    editor.HandleEvent(policy.Translate(ev, editor.Mode()))
//	}
package input
