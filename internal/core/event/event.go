package event

import (
	"strings"

	"github.com/tidwall/gjson"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindObservable
	KindAlert
	KindCase
	KindTask
)

func (k Kind) String() string {
	switch k {
	case KindObservable:
		return "observable"
	case KindAlert:
		return "alert"
	case KindCase:
		return "case"
	case KindTask:
		return "case_task"
	default:
		return "unknown"
	}
}

// ParseKind maps TheHive's objectType tag onto a Kind, ignoring case.
func ParseKind(objectType string) Kind {
	switch strings.ToLower(strings.TrimSpace(objectType)) {
	case "observable":
		return KindObservable
	case "alert":
		return KindAlert
	case "case":
		return KindCase
	case "case_task":
		return KindTask
	default:
		return KindUnknown
	}
}

// Event is one TheHive webhook notification.
type Event struct {
	ObjectType string
	Kind       Kind
	Operation  Value
	ObjectID   Value
	RootID     Value

	root   gjson.Result
	object gjson.Result
}

// Decode reads an event from a JSON body. It never fails: missing
// attributes decode as absent Values. Callers validate the body with
// json.Valid beforehand and check IsObject for the top-level shape.
func Decode(body []byte) Event {
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return Event{root: root}
	}
	objectType := root.Get("objectType").String()
	return Event{
		ObjectType: objectType,
		Kind:       ParseKind(objectType),
		Operation:  valueOf(root.Get("operation")),
		ObjectID:   valueOf(root.Get("objectId")),
		RootID:     valueOf(root.Get("rootId")),
		root:       root,
		object:     root.Get("object"),
	}
}

// IsObject reports whether the body was a JSON object.
func (e Event) IsObject() bool {
	return e.root.IsObject()
}

// ObjectJSON returns the raw nested object, or "{}" when it is absent.
func (e Event) ObjectJSON() string {
	if !e.object.Exists() {
		return "{}"
	}
	return e.object.Raw
}

func (e Event) field(name string) Value {
	if !e.object.IsObject() {
		return Value{}
	}
	return valueOf(e.object.Get(name))
}
