package idblaster

// Context represents the context for event callback.
//
// It hands every callback the process-wide state owned by the application.
type Context struct {
	App     *Application // App is a pointer to the Application that manages this context.
	Modes   *ChatModes   // Modes holds the silent/group mode of every chat.
	Tracker *SentTracker // Tracker holds the recent messages the bot sent per chat.
}
