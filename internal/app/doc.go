// Package app wires the editor together and runs its event loop.
//
// An Application owns one editing session: the configuration, the logger,
// the document being edited, the editing engine and, once a backend is
// attached, the renderer and the key source.
//
// The loop is strictly sequential: draw, read one event, translate quit
// keys, hand the event to the engine, draw again. Entering Exit mode ends
// the loop with ErrQuit; a source that reports io.EOF ends it cleanly.
//
//	application, err := app.New(app.Options{Path: "notes.txt"})
//	if err != nil {
//	    return err
//	}
//	defer application.Shutdown()
//
//	term, err := backend.NewTerminal()
//	if err != nil {
//	    return err
//	}
//	if err := application.SetBackend(term, term); err != nil {
//	    return err
//	}
//	if err := application.Run(); err != nil && !errors.Is(err, app.ErrQuit) {
//	    return err
//	}
package app
