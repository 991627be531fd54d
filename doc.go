// idblaster package is a Telegram bot that reports chat, topic and user IDs on command.
//
// Key Features:
//   - ID Inspection: /id, /chat, /topic and /replyid answer with the IDs and copy buttons.
//   - Forward Detection: forwarded messages are answered with the origin user or chat.
//   - Permissions: in groups only chat admins may inspect IDs; everyone may in private chats.
//   - Silent Mode: /mode silent mutes the ID answers in a group, /mode group turns them back on.
//   - Clean: /clean deletes the recent messages the bot sent in a chat.
//   - Topics: answers stay in the topic of the triggering message.
//
// Usage Example:
//
//	package main
//
//	import (
//	    "context"
//
//	    "github.com/madlabz/idblaster"
//	)
//
//	func main() {
//	    config, err := idblaster.LoadConfig(".env")
//	    if err != nil {
//	        panic(err)
//	    }
//
//	    client, err := idblaster.NewBotClient(config)
//	    if err != nil {
//	        panic(err)
//	    }
//
//	    app := idblaster.New(config, client)
//	    idblaster.RegisterHandlers(app)
//	    app.Initialize()
//
//	    if err := app.Start(context.Background()); err != nil {
//	        panic(err)
//	    }
//
//	    // The `app.Park()` call is blocking, use CTRL + C to stop the application.
//	    app.Park()
//	}
//
// Handlers are matched in the order they were added, so handlers added before [RegisterHandlers]
// take precedence over the built-in commands.
package idblaster
