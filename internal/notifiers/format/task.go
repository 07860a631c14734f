package format

import (
	"github.com/bluefightred/TheHive-Slack-Notifications/internal/core/event"
	"github.com/bluefightred/TheHive-Slack-Notifications/internal/core/notify"
)

func (f *Formatter) Task(ev event.Event) (notify.Message, error) {
	task := ev.Task()
	var fields []notify.Field

	if task.Title.Present() {
		fields = append(fields, notify.FieldOf("Title", task.Title, false))
	}
	if task.Status.Present() {
		fields = append(fields, notify.FieldOf("Status", task.Status, true))
	}
	if task.Owner.Present() {
		fields = append(fields, notify.FieldOf("Owner", task.Owner, true))
	}
	if task.Description.Present() {
		fields = append(fields, notify.FieldOf("Description", task.Description, false))
	}

	operation := textOr(ev.Operation, "Unknown")
	return f.message(notify.Attachment{
		Fallback:  "Task " + operation,
		Pretext:   "✅ Task " + operation,
		Title:     textOr(task.Title, "Task Details"),
		TitleLink: f.CaseURL + ev.RootID.String() + "/tasks",
		Color:     notify.ColorTask,
		Fields:    fields,
	}), nil
}
