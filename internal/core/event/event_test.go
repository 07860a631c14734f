package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	cases := map[string]Kind{
		"observable": KindObservable,
		"Alert":      KindAlert,
		"CASE":       KindCase,
		"case_task":  KindTask,
		"Case_Task":  KindTask,
		"widget":     KindUnknown,
		"":           KindUnknown,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseKind(in), "objectType %q", in)
	}
}

func TestDecodeCase(t *testing.T) {
	ev := Decode([]byte(`{"objectType":"Case","operation":"Update","objectId":"abc123","object":{"caseId":42,"status":"Open"}}`))

	require.True(t, ev.IsObject())
	assert.Equal(t, KindCase, ev.Kind)
	assert.Equal(t, "Update", ev.Operation.String())
	assert.Equal(t, "abc123", ev.ObjectID.String())
	assert.False(t, ev.RootID.Present())

	c := ev.Case()
	assert.Equal(t, "42", c.CaseID.String())
	assert.Equal(t, "Open", c.Status.String())
	assert.False(t, c.Owner.Present())
}

func TestDecodeNonObject(t *testing.T) {
	ev := Decode([]byte(`[1,2,3]`))
	assert.False(t, ev.IsObject())
	assert.Equal(t, KindUnknown, ev.Kind)
	assert.False(t, ev.Alert().Title.Present())
}

func TestDecodeMissingObject(t *testing.T) {
	ev := Decode([]byte(`{"objectType":"alert"}`))
	assert.Equal(t, "{}", ev.ObjectJSON())
	assert.False(t, ev.Alert().Severity.Present())
}

func TestObjectJSONKeepsOrder(t *testing.T) {
	ev := Decode([]byte(`{"objectType":"x","object":{"b":1,"a":2}}`))
	assert.Equal(t, `{"b":1,"a":2}`, ev.ObjectJSON())
}

func TestValueInt(t *testing.T) {
	ev := Decode([]byte(`{"object":{"a":3,"b":2.5,"c":"3","d":4.0}}`))

	n, ok := ev.field("a").Int()
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	_, ok = ev.field("b").Int()
	assert.False(t, ok)

	_, ok = ev.field("c").Int()
	assert.False(t, ok)

	n, ok = ev.field("d").Int()
	assert.True(t, ok)
	assert.Equal(t, 4, n)
}

func TestValueStrings(t *testing.T) {
	ev := Decode([]byte(`{"object":{"ok":["a","b"],"empty":[],"null":null,"blank":"","mixed":["a",1],"scalar":"abc"}}`))

	tags, err := ev.field("ok").Strings()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, tags)

	for _, name := range []string{"empty", "null", "blank", "missing"} {
		tags, err := ev.field(name).Strings()
		require.NoError(t, err, name)
		assert.Nil(t, tags, name)
	}

	_, err = ev.field("mixed").Strings()
	assert.Error(t, err)
	_, err = ev.field("scalar").Strings()
	assert.Error(t, err)
}

func TestValueNullIsPresent(t *testing.T) {
	ev := Decode([]byte(`{"object":{"owner":null,"ioc":true}}`))
	owner := ev.field("owner")
	assert.True(t, owner.Present())
	assert.True(t, owner.Null())
	assert.Equal(t, "", owner.String())
	assert.Equal(t, "true", ev.field("ioc").String())
}

func TestValueBool(t *testing.T) {
	ev := Decode([]byte(`{"object":{"t":true,"f":false,"s":"true"}}`))

	b, ok := ev.field("t").Bool()
	assert.True(t, ok)
	assert.True(t, b)

	b, ok = ev.field("f").Bool()
	assert.True(t, ok)
	assert.False(t, b)

	_, ok = ev.field("s").Bool()
	assert.False(t, ok)
}
