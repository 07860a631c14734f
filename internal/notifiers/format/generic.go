package format

import (
	"github.com/bluefightred/TheHive-Slack-Notifications/internal/core/event"
	"github.com/bluefightred/TheHive-Slack-Notifications/internal/core/notify"
)

// Generic renders any event type without a dedicated layout.
func (f *Formatter) Generic(ev event.Event) notify.Message {
	objectType := ev.ObjectType
	if objectType == "" {
		objectType = "Unknown"
	}
	return f.message(notify.Attachment{
		Fallback: "TheHive Event",
		Pretext:  "📌 TheHive Event",
		Title:    "Event Type: " + objectType,
		Color:    notify.ColorGeneric,
		Fields: []notify.Field{
			notify.MakeField("Operation", textOr(ev.Operation, "Unknown"), true, true),
			notify.MakeField("Details", indentJSON(ev.ObjectJSON()), true, false),
		},
	})
}

// Error renders a processing failure. It is posted with the warning icon.
func (f *Formatter) Error(message string) notify.Message {
	msg := f.message(notify.Attachment{
		Fallback: "Error Processing Event",
		Pretext:  "⚠ Error Processing TheHive Event",
		Title:    "Error Details",
		Color:    notify.ColorRed,
		Fields:   []notify.Field{notify.MakeField("Error", message, true, false)},
	})
	msg.IconEmoji = ":warning:"
	return msg
}
