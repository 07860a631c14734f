package format

import (
	"fmt"
	"strings"

	"github.com/bluefightred/TheHive-Slack-Notifications/internal/core/event"
	"github.com/bluefightred/TheHive-Slack-Notifications/internal/core/notify"
)

func (f *Formatter) Observable(ev event.Event) (notify.Message, error) {
	obs := ev.Observable()
	var fields []notify.Field

	if obs.DataType.Present() {
		fields = append(fields, notify.FieldOf("Type", obs.DataType, true))
	}
	if obs.Data.Present() {
		fields = append(fields, notify.FieldOf("Value", obs.Data, false))
	}
	tags, err := obs.Tags.Strings()
	if err != nil {
		return notify.Message{}, fmt.Errorf("%w: observable tags: %v", ErrInvalidField, err)
	}
	if len(tags) > 0 {
		fields = append(fields, notify.MakeField("Tags", strings.Join(tags, ", "), true, false))
	}
	if obs.TLP.Present() {
		fields = append(fields, notify.FieldOf("TLP", obs.TLP, true))
	}
	if obs.Message.Present() {
		fields = append(fields, notify.FieldOf("Message", obs.Message, false))
	}
	if obs.IOC.Present() {
		if ioc, ok := obs.IOC.Bool(); ok {
			fields = append(fields, notify.MakeField("IOC", flagText(ioc), true, true))
		} else {
			fields = append(fields, notify.FieldOf("IOC", obs.IOC, true))
		}
	}

	title := "Observable Details"
	if obs.DataType.Present() && obs.Data.Present() {
		title = fmt.Sprintf("%s: %s", obs.DataType.String(), obs.Data.String())
	}

	return f.message(notify.Attachment{
		Fallback: "New Observable Created",
		Pretext:  "🔍 New Observable Created",
		Title:    title,
		Color:    notify.ColorBlue,
		Fields:   fields,
	}), nil
}
