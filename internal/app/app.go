package app

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dshills/viteditor/internal/config"
	"github.com/dshills/viteditor/internal/engine"
	"github.com/dshills/viteditor/internal/input"
	"github.com/dshills/viteditor/internal/input/key"
	"github.com/dshills/viteditor/internal/input/mode"
	"github.com/dshills/viteditor/internal/renderer"
	"github.com/dshills/viteditor/internal/renderer/backend"
)

// Lifecycle is implemented by backends that must be started and stopped,
// such as a real terminal. Run calls Init before the first draw and
// Shutdown when the loop ends.
type Lifecycle interface {
	Init() error
	Shutdown()
}

// Application is the central coordinator for one editing session.
type Application struct {
	mu sync.Mutex

	config  *config.Config
	logger  *Logger
	session string

	document *Document
	editor   *engine.Engine
	policy   *input.ExitPolicy

	surface  renderer.Surface
	source   input.Source
	renderer *renderer.Renderer
	frame    renderer.Frame

	closers  []io.Closer
	running  atomic.Bool
	shutdown sync.Once
	closed   atomic.Bool

	opts Options
}

// Options configures the application.
type Options struct {
	// Path is the file to edit.
	Path string

	// Config is a preloaded configuration. When nil, New loads one using
	// ConfigPath, the environment and Overrides.
	Config *config.Config

	// ConfigPath is the config file. Empty selects the default location.
	ConfigPath string

	// Overrides is the command line layer, keyed by setting path.
	Overrides map[string]any

	// SkipEnv ignores VITEDITOR_* variables.
	SkipEnv bool

	// LogOutput replaces the configured log file when set.
	LogOutput io.Writer
}

// New creates an Application and bootstraps its components in dependency
// order: config, logger, document, editor, exit policy.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:    opts,
		session: uuid.NewString(),
	}

	if err := app.bootstrap(); err != nil {
		app.closeAll()
		return nil, err
	}
	return app, nil
}

func (app *Application) bootstrap() error {
	if err := app.initConfig(); err != nil {
		return err
	}
	if err := app.initLogger(); err != nil {
		return err
	}
	if err := app.initDocument(); err != nil {
		return err
	}
	app.initEditor()
	return app.initPolicy()
}

func (app *Application) initConfig() error {
	if app.opts.Config != nil {
		app.config = app.opts.Config
		return nil
	}

	cfg, err := config.Load(config.Options{
		Path:      app.opts.ConfigPath,
		SkipEnv:   app.opts.SkipEnv,
		Overrides: app.opts.Overrides,
	})
	if err != nil {
		return &InitError{Component: "config", Err: err}
	}
	app.config = cfg
	return nil
}

func (app *Application) initLogger() error {
	level := ParseLogLevel(app.config.Log.Level)

	var logger *Logger
	if app.opts.LogOutput != nil {
		logger = NewLogger(LoggerConfig{Level: level, Output: app.opts.LogOutput, Prefix: "viteditor"})
	} else {
		l, closer, err := OpenLogFile(app.config.Log.File, level)
		if err != nil {
			return &InitError{Component: "logger", Err: err}
		}
		logger = l
		app.closers = append(app.closers, closer)
	}

	app.logger = logger.WithField("session", app.session)
	if app.config.Source != "" {
		app.logger.Info("config loaded from %s", app.config.Source)
	}
	return nil
}

func (app *Application) initDocument() error {
	if app.opts.Path == "" {
		app.document = NewDocument("", "", app.config.Editor.Normalize)
		return nil
	}

	doc, err := LoadDocument(app.opts.Path, app.config.Editor.Normalize)
	if err != nil {
		return &InitError{Component: "document", Err: err}
	}
	app.document = doc

	if doc.NewFile {
		app.logger.Info("new file %s", doc.Path)
	} else {
		app.logger.Info("opened %s: %d lines, %d words", doc.Path, doc.Buffer.LineCount(), doc.Words.Len())
	}
	return nil
}

func (app *Application) initEditor() {
	log := app.logger.WithComponent("editor")

	app.editor = engine.New(
		engine.WithBuffer(app.document.Buffer),
		engine.WithWords(app.document.Words),
		engine.WithEventHook(func(ev key.Event, res mode.Result) {
			if res.Action.IsNone() {
				return
			}
			log.Debug("%s -> %s at %s", ev, res.Action.Name, app.editor.CursorPosition())
		}),
	)

	app.editor.Machine().OnChange(func(from, to mode.Mode) {
		log.Debug("mode %s -> %s", from, to)
		app.applyCursorStyle(to)
	})
}

func (app *Application) initPolicy() error {
	policy, err := input.NewExitPolicy(app.config.Editor.QuitKeys)
	if err != nil {
		return &InitError{Component: "input", Err: err}
	}
	app.policy = policy
	return nil
}

// SetBackend attaches the surface to draw on and the source to read from.
// Must be called before Run.
func (app *Application) SetBackend(surface renderer.Surface, source input.Source) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.closed.Load() {
		return ErrShutdown
	}
	if app.running.Load() {
		return ErrAlreadyRunning
	}

	app.surface = surface
	app.source = source
	app.renderer = renderer.New(surface)
	app.editor.SetSizer(surface)
	return nil
}

// Run draws the document and processes events until the editor enters
// Exit mode, which returns ErrQuit, or the source is exhausted, which
// returns nil.
func (app *Application) Run() error {
	if app.closed.Load() {
		return ErrShutdown
	}
	if app.renderer == nil || app.source == nil {
		return ErrNoBackend
	}
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if lc, ok := app.surface.(Lifecycle); ok {
		if err := lc.Init(); err != nil {
			return &InitError{Component: "backend", Err: err}
		}
		defer lc.Shutdown()
	}

	app.logger.Info("editing %s", app.document.Name)
	app.applyCursorStyle(app.editor.Mode())

	if err := app.draw(); err != nil {
		return err
	}

	for {
		ev, err := app.source.ReadEvent()
		if errors.Is(err, io.EOF) {
			app.logger.Info("input closed")
			return nil
		}
		if err != nil {
			return NewOperationError("read", "input", err)
		}

		ev = app.policy.Translate(ev, app.editor.Mode())
		if app.editor.HandleEvent(ev).IsTerminal() {
			app.logger.Info("exit")
			return ErrQuit
		}

		if err := app.draw(); err != nil {
			return err
		}
	}
}

// draw renders one frame and records it.
func (app *Application) draw() error {
	frame, err := app.renderer.Render(app.editor)
	if err != nil {
		app.logger.Error("draw failed: %v", err)
		return NewOperationError("draw", app.document.Name, err)
	}
	if !frame.CursorVisible {
		app.logger.Debug("cursor %s off screen", app.editor.CursorPosition())
	}

	app.mu.Lock()
	app.frame = frame
	app.mu.Unlock()
	return nil
}

func (app *Application) applyCursorStyle(m mode.Mode) {
	if s, ok := app.surface.(backend.CursorStyler); ok {
		s.SetCursorStyle(m.CursorStyle())
	}
}

// Shutdown releases the log file and any other held resources.
// It is safe to call more than once.
func (app *Application) Shutdown() {
	app.shutdown.Do(func() {
		app.closed.Store(true)
		if app.logger != nil {
			app.logger.Info("shutdown")
		}
		app.closeAll()
	})
}

func (app *Application) closeAll() {
	for i := len(app.closers) - 1; i >= 0; i-- {
		if err := app.closers[i].Close(); err != nil && app.logger != nil {
			app.logger.Warn("close: %v", err)
		}
	}
	app.closers = nil
}

// Config returns the effective configuration.
func (app *Application) Config() *config.Config {
	return app.config
}

// Logger returns the session logger.
func (app *Application) Logger() *Logger {
	return app.logger
}

// Session returns the session identifier attached to every log line.
func (app *Application) Session() string {
	return app.session
}

// Document returns the document being edited.
func (app *Application) Document() *Document {
	return app.document
}

// Editor returns the editing engine.
func (app *Application) Editor() *engine.Engine {
	return app.editor
}

// LastFrame returns the result of the most recent draw.
func (app *Application) LastFrame() renderer.Frame {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.frame
}

// String describes the session for diagnostics.
func (app *Application) String() string {
	return fmt.Sprintf("viteditor[%s] %s %s", app.session, app.document.Name, app.editor.Mode())
}
