package idblaster

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/rs/zerolog/log"
)

// Application represents the main application.
//
// It owns the Bot API client, the per-chat state shared by every handler, and the ordered list of handlers.
// Events are dispatched one at a time from a single goroutine; the state objects are still safe for
// concurrent use so callbacks may hand work to other goroutines.
type Application struct {
	Config        *Config            // Config holds the configuration for the application.
	Client        Client             // Client talks to the Bot API.
	Source        UpdateSource       // Source produces the incoming events.
	Permissions   *PermissionChecker // Permissions decides who may run privileged commands.
	Modes         *ChatModes         // Modes holds the silent/group mode of every chat.
	Tracker       *SentTracker       // Tracker holds the recent messages the bot sent per chat.
	eventHandlers []Handler          // eventHandlers contains the registered event handlers for the application.
	errorHandlers []Handler          // errorHandlers contains the registered error handlers for the application.
	context       context.Context    // Context for running the application.
	cancelCtx     context.CancelFunc // Function for stopping the application.
	done          chan struct{}      // done is closed once the dispatch loop returns.
	initialized   bool               // initialized indicates whether the application has been initialized.
	mu            sync.RWMutex       // mu guards the handler lists.
}

// AddHandler adds a new handler to the application.
//
// Handlers are checked in the order they were added and only the first matching one is invoked.
//
// Args:
//   - handler: The handler to add to the application.
//
// Returns:
//   - *Application: The application instance for method chaining.
func (app *Application) AddHandler(handler Handler) *Application {
	app.mu.Lock()
	defer app.mu.Unlock()

	if uh, ok := handler.(*UnknownCommandHandler); ok {
		uh.app = app
	}

	app.eventHandlers = append(app.eventHandlers, handler)

	return app
}

// AddErrorHandler adds a new error handler to the application.
// Error handlers receive [OnError] events carrying the recovered panic in [Event.Error].
func (app *Application) AddErrorHandler(handler Handler) *Application {
	app.mu.Lock()
	defer app.mu.Unlock()

	app.errorHandlers = append(app.errorHandlers, handler)

	return app
}

// Commands returns the command names known to the registered command handlers.
func (app *Application) Commands() (commands []string) {
	app.mu.RLock()
	defer app.mu.RUnlock()

	for _, handler := range app.eventHandlers {
		if ch, ok := handler.(*CommandHandler); ok {
			commands = append(commands, ch.Commands...)
		}
	}

	return
}

// newContext returns the callback context for one dispatch.
func (app *Application) newContext() *Context {
	return &Context{
		App:     app,
		Modes:   app.Modes,
		Tracker: app.Tracker,
	}
}

// dispatchEvent dispatches an event to the first handler accepting it.
//
// A panicking handler is recovered and reported to the error handlers.
func (app *Application) dispatchEvent(event *Event) {
	app.mu.RLock()
	handlers := app.eventHandlers
	app.mu.RUnlock()

	for _, handler := range handlers {
		if !handler.Check(event) {
			continue
		}

		func() {
			defer func() {
				if err := recover(); err != nil {
					failed := *event
					failed.Type = OnError
					failed.Error = err

					app.dispatchError(&failed)
				}
			}()

			handler.Invoke(event, app.newContext())
		}()

		return
	}
}

// dispatchError dispatches an error event to the error handlers.
func (app *Application) dispatchError(event *Event) {
	app.mu.RLock()
	handlers := app.errorHandlers
	app.mu.RUnlock()

	if len(handlers) == 0 {
		log.Error().Interface("Error", event.Error).Int("UpdateID", event.UpdateID).Msg("Unhandled error during dispatch")
		return
	}

	for _, handler := range handlers {
		if !handler.Check(event) {
			continue
		}

		func() {
			defer func() {
				if err := recover(); err != nil {
					log.Error().
						Interface("Origin", event.Error).
						Interface("Current", err).
						Msg("Another error occured during handling an error.")
				}
			}()

			handler.Invoke(event, app.newContext())
		}()
	}
}

// Initialize initializes the application.
//
// Returns:
//   - *Application: The application instance for method chaining.
func (app *Application) Initialize() *Application {
	app.checkConfig()

	if app.Permissions == nil {
		app.Permissions = &PermissionChecker{Client: app.Client}
	}
	if app.Modes == nil {
		app.Modes = NewChatModes()
	}
	if app.Tracker == nil {
		app.Tracker = NewSentTracker(MAX_TRACKED_MESSAGES)
	}

	app.initialized = true

	return app
}

// checkConfig checks certain configurations and assigns default values if they are left unset.
func (app *Application) checkConfig() {
	if app.Config == nil {
		app.Config = &Config{}
	}
	if app.Config.PollTimeout <= 0 {
		app.Config.PollTimeout = DEFAULT_POLL_TIMEOUT
	}
}

// Start starts consuming events from the update source.
//
// Args:
//   - ctx: The context for running the application.
//
// Returns:
//   - error: [ErrNotInitialized] or [ErrNotConnected] when the application cannot run.
func (app *Application) Start(ctx context.Context) error {
	if !app.initialized {
		return ErrNotInitialized
	}
	if app.Source == nil {
		return ErrNotConnected
	}

	if ctx == nil {
		ctx = context.Background()
	}
	app.context, app.cancelCtx = context.WithCancel(ctx)
	app.done = make(chan struct{})

	app.dispatchEvent(&Event{Type: OnStart})

	events := app.Source.Updates(app.context)
	go app.run(events)

	return nil
}

// run dispatches events until the source closes the channel.
func (app *Application) run(events <-chan *Event) {
	defer close(app.done)

	for event := range events {
		app.dispatchEvent(event)
	}

	log.Debug().Msg("Dispatch loop stopped")
}

// Park waits for the application to stop or receive an interrupt signal.
//
// It returns at once when the application was never started.
func (app *Application) Park() {
	if app.context == nil {
		return
	}

	intCh := make(chan os.Signal, 1)
	signal.Notify(intCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(intCh)

	select {
	case <-app.context.Done():
	case <-intCh:
		app.Stop()
	}
}

// Stop stops the application.
//
// The in-flight long poll is abandoned, so Stop does not wait for the dispatch loop.
func (app *Application) Stop() {
	if app.cancelCtx == nil {
		return
	}

	app.dispatchEvent(&Event{Type: OnStop})
	app.cancelCtx()
}

// Done returns a channel closed once the dispatch loop has returned.
func (app *Application) Done() <-chan struct{} {
	return app.done
}

// GetContext returns the [context.Context] of the application.
func (app *Application) GetContext() context.Context {
	return app.context
}

// New creates a new instance of the [Application].
//
// When client also implements [UpdateSource] it is used as the event source.
//
// Args:
//   - config: The configuration for the application.
//   - client: The Bot API client.
//
// Returns:
//   - *Application: A new instance of the [Application].
func New(config *Config, client Client) *Application {
	app := &Application{
		Config:        config,
		Client:        client,
		eventHandlers: []Handler{},
		errorHandlers: []Handler{},
	}
	if source, ok := client.(UpdateSource); ok {
		app.Source = source
	}

	return app
}
