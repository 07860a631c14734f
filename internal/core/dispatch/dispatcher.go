package dispatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/bluefightred/TheHive-Slack-Notifications/internal/core/event"
	"github.com/bluefightred/TheHive-Slack-Notifications/internal/core/notify"
	"github.com/bluefightred/TheHive-Slack-Notifications/internal/metrics"
	"github.com/bluefightred/TheHive-Slack-Notifications/internal/utils/logger"
)

// Renderer builds one message per event category.
type Renderer interface {
	Observable(ev event.Event) (notify.Message, error)
	Alert(ev event.Event) (notify.Message, error)
	Case(ev event.Event) (notify.Message, error)
	Task(ev event.Event) (notify.Message, error)
	Generic(ev event.Event) notify.Message
	Error(message string) notify.Message
}

var errNotObject = errors.New("event body is not a JSON object")

type Dispatcher struct {
	renderer Renderer
	notifier notify.Notifier
	log      *logger.Logger
}

func New(renderer Renderer, notifier notify.Notifier, log *logger.Logger) *Dispatcher {
	if log == nil {
		log = logger.Nop()
	}
	return &Dispatcher{renderer: renderer, notifier: notifier, log: log}
}

// Handle formats and delivers one event. Formatting and delivery failures
// are reported to the channel as an error notification and never returned.
func (d *Dispatcher) Handle(ctx context.Context, ev event.Event) {
	log := logger.FromContext(ctx, d.log)
	log.Infof("processing event type=%q operation=%q object_id=%q", ev.ObjectType, ev.Operation.String(), ev.ObjectID.String())
	metrics.EventsTotal.WithLabelValues(ev.Kind.String()).Inc()

	if err := d.process(ctx, log, ev); err != nil {
		metrics.ProcessingFailures.Inc()
		log.Errorf("error processing event: %v", err)
		d.notifyError(ctx, log, err.Error())
	}
}

func (d *Dispatcher) process(ctx context.Context, log *logger.Logger, ev event.Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while formatting %s event: %v", ev.Kind, r)
		}
	}()

	if !ev.IsObject() {
		return errNotObject
	}
	msg, err := d.render(log, ev)
	if err != nil {
		return err
	}
	if err := d.notifier.Send(ctx, msg); err != nil {
		return fmt.Errorf("send to %s: %w", d.notifier.Name(), err)
	}
	return nil
}

func (d *Dispatcher) render(log *logger.Logger, ev event.Event) (notify.Message, error) {
	switch ev.Kind {
	case event.KindObservable:
		return d.renderer.Observable(ev)
	case event.KindAlert:
		return d.renderer.Alert(ev)
	case event.KindCase:
		return d.renderer.Case(ev)
	case event.KindTask:
		return d.renderer.Task(ev)
	case event.KindUnknown:
		log.Warnf("unknown event type: %q", ev.ObjectType)
		return d.renderer.Generic(ev), nil
	}
	return notify.Message{}, fmt.Errorf("unhandled event kind %d", ev.Kind)
}

// notifyError posts an error notification. Its own failure is only logged.
func (d *Dispatcher) notifyError(ctx context.Context, log *logger.Logger, message string) {
	if err := d.notifier.Send(ctx, d.renderer.Error(message)); err != nil {
		log.Errorf("failed to send error notification: %v", err)
	}
}
