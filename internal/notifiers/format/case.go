package format

import (
	"fmt"
	"strings"

	"github.com/bluefightred/TheHive-Slack-Notifications/internal/core/event"
	"github.com/bluefightred/TheHive-Slack-Notifications/internal/core/notify"
)

func (f *Formatter) Case(ev event.Event) (notify.Message, error) {
	c := ev.Case()
	fields := []notify.Field{notify.FieldOf("Case #", c.CaseID, true)}

	if c.Title.Present() {
		fields = append(fields, notify.FieldOf("Title", c.Title, false))
	}
	if c.Description.Present() {
		fields = append(fields, notify.FieldOf("Description", c.Description, false))
	}
	if c.Severity.Present() {
		fields = append(fields, notify.MakeField("Severity", levelText(c.Severity), true, true))
	}
	if c.Status.Present() {
		fields = append(fields, notify.FieldOf("Status", c.Status, true))
	}
	if c.Owner.Present() {
		fields = append(fields, notify.FieldOf("Owner", c.Owner, true))
	}
	if c.TLP.Present() {
		fields = append(fields, notify.FieldOf("TLP", c.TLP, true))
	}
	tags, err := c.Tags.Strings()
	if err != nil {
		return notify.Message{}, fmt.Errorf("%w: case tags: %v", ErrInvalidField, err)
	}
	if len(tags) > 0 {
		fields = append(fields, notify.MakeField("Tags", strings.Join(tags, ", "), true, false))
	}

	operation := textOr(ev.Operation, "Unknown")
	return f.message(notify.Attachment{
		Fallback:  "Case " + operation,
		Pretext:   "📁 Case " + operation,
		Title:     textOr(c.Title, "Case Details"),
		TitleLink: f.CaseURL + ev.ObjectID.String() + "/details",
		Color:     notify.ColorCase,
		Fields:    fields,
	}), nil
}
