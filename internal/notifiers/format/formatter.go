package format

import (
	"errors"
	"strings"
	"time"

	"github.com/bluefightred/TheHive-Slack-Notifications/internal/core/notify"
)

// ErrInvalidField marks an event attribute whose shape cannot be rendered.
var ErrInvalidField = errors.New("invalid field")

const timestampLayout = "2006-01-02 15:04:05"

type Formatter struct {
	OrgName  string
	OrgIcon  string
	CaseURL  string
	Location *time.Location
	Now      func() time.Time
}

// New returns a Formatter linking cases and tasks into the TheHive UI at hiveURL.
func New(orgName, orgIcon, hiveURL string, loc *time.Location) *Formatter {
	if loc == nil {
		loc = time.Local
	}
	return &Formatter{
		OrgName:  orgName,
		OrgIcon:  orgIcon,
		CaseURL:  CaseBaseURL(hiveURL),
		Location: loc,
		Now:      time.Now,
	}
}

func CaseBaseURL(hiveURL string) string {
	return strings.TrimRight(hiveURL, "/") + "/index.html#/case/"
}

func (f *Formatter) now() time.Time {
	if f.Now == nil {
		return time.Now()
	}
	return f.Now()
}

func (f *Formatter) location() *time.Location {
	if f.Location == nil {
		return time.Local
	}
	return f.Location
}

// message wraps a single attachment with the shared footer and timestamp.
func (f *Formatter) message(a notify.Attachment) notify.Message {
	a.Footer = f.OrgName
	a.FooterIcon = f.OrgIcon
	a.Timestamp = f.now().Unix()
	if a.Fields == nil {
		a.Fields = []notify.Field{}
	}
	return notify.Message{Attachments: []notify.Attachment{a}}
}

func textOr(v interface{ String() string }, fallback string) string {
	if s := v.String(); s != "" {
		return s
	}
	return fallback
}

func levelText(v interface{ String() string }) string {
	return "Level " + textOr(v, notify.Placeholder)
}

// flagText renders booleans capitalized, as TheHive channels have always shown them.
func flagText(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
