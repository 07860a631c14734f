package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/bluefightred/TheHive-Slack-Notifications/internal/core/event"
	"github.com/bluefightred/TheHive-Slack-Notifications/internal/core/notify"
)

func (f *Formatter) Alert(ev event.Event) (notify.Message, error) {
	alert := ev.Alert()
	var fields []notify.Field

	if alert.Date.Present() {
		ms, ok := alert.Date.Number()
		if !ok {
			return notify.Message{}, fmt.Errorf("%w: alert date %q is not an epoch timestamp", ErrInvalidField, alert.Date.Raw())
		}
		ts := time.UnixMilli(int64(ms)).In(f.location()).Format(timestampLayout)
		fields = append(fields, notify.MakeField("Timestamp", ts, true, true))
	}

	color := notify.ColorGrey
	if alert.Severity.Present() {
		color = notify.ColorForSeverity(alert.Severity.Int())
		fields = append(fields, notify.MakeField("Severity", levelText(alert.Severity), true, true))
	}
	if alert.Source.Present() {
		fields = append(fields, notify.FieldOf("Source", alert.Source, true))
	}
	if alert.MitreID.Present() {
		fields = append(fields, notify.FieldOf("MITRE ATT&CK", alert.MitreID, true))
	}
	if alert.CaseTemplate.Present() {
		fields = append(fields, notify.FieldOf("Case Template", alert.CaseTemplate, true))
	}
	tags, err := alert.Tags.Strings()
	if err != nil {
		return notify.Message{}, fmt.Errorf("%w: alert tags: %v", ErrInvalidField, err)
	}
	if len(tags) > 0 {
		fields = append(fields, notify.MakeField("Tags", strings.Join(tags, ", "), true, false))
	}
	if alert.Description.Present() {
		fields = append(fields, notify.MakeField("Description", codeBlock(alert.Description.String()), true, false))
	}

	return f.message(notify.Attachment{
		Fallback: textOr(alert.Title, "New Alert Created"),
		Pretext:  "🚨 New Alert Created",
		Title:    textOr(alert.Title, "Alert Details"),
		Color:    color,
		Fields:   fields,
	}), nil
}
