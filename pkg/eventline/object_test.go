package eventline_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exograd/eventline-go/pkg/eventline"
)

func parseDocument(t *testing.T, s string) eventline.Document {
	t.Helper()

	decoder := json.NewDecoder(strings.NewReader(s))
	decoder.UseNumber()

	var doc interface{}

	require.NoError(t, decoder.Decode(&doc))

	return doc
}

// testObject exercises every primitive of the reader.
type testObject struct {
	Name     string
	Label    *string
	Kind     string
	Count    int
	Limit    *int
	Retries  int
	Enabled  bool
	Flag     *bool
	Visible  bool
	Created  time.Time
	Updated  *time.Time
	Expires  time.Time
	Child    testChild
	Parent   *testChild
	Children []testChild
	Extras   []testChild
}

type testChild struct {
	ID string
}

func (o *testObject) ObjectName() string { return "test_object" }

func (o *testObject) ReadData(r *eventline.ObjectReader) {
	r.String("name", &o.Name)
	r.OptionalString("label", &o.Label)
	r.StringDefault("kind", &o.Kind, "basic")
	r.Integer("count", &o.Count)
	r.OptionalInteger("limit", &o.Limit)
	r.IntegerDefault("retries", &o.Retries, 3)
	r.Boolean("enabled", &o.Enabled)
	r.OptionalBoolean("flag", &o.Flag)
	r.BooleanDefault("visible", &o.Visible, true)
	r.Datetime("created", &o.Created)
	r.OptionalDatetime("updated", &o.Updated)
	r.DatetimeDefault("expires", &o.Expires, time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC))
	eventline.ReadObject(r, "child", &o.Child)
	eventline.ReadOptionalObject(r, "parent", &o.Parent)
	eventline.ReadObjectArray(r, "children", &o.Children)
	eventline.ReadOptionalObjectArray(r, "extras", &o.Extras)
}

func (c *testChild) ObjectName() string { return "test_child" }

func (c *testChild) ReadData(r *eventline.ObjectReader) {
	r.String("id", &c.ID)
}

const minimalTestObject = `{
	"name": "n",
	"count": 1,
	"enabled": true,
	"created": "2022-01-01T00:00:00Z",
	"child": {"id": "c"},
	"children": []
}`

func TestDecode_RequiredAndDefaults(t *testing.T) {
	t.Parallel()

	obj, err := eventline.DecodeObject[testObject](parseDocument(t, minimalTestObject))
	require.NoError(t, err)

	assert.Equal(t, "n", obj.Name)
	assert.Nil(t, obj.Label)
	assert.Equal(t, "basic", obj.Kind)
	assert.Equal(t, 1, obj.Count)
	assert.Nil(t, obj.Limit)
	assert.Equal(t, 3, obj.Retries)
	assert.True(t, obj.Enabled)
	assert.Nil(t, obj.Flag)
	assert.True(t, obj.Visible)
	assert.Equal(t, time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC), obj.Created.UTC())
	assert.Nil(t, obj.Updated)
	assert.Equal(t, 2030, obj.Expires.Year())
	assert.Equal(t, "c", obj.Child.ID)
	assert.Nil(t, obj.Parent)
	assert.NotNil(t, obj.Children)
	assert.Empty(t, obj.Children)
	assert.Nil(t, obj.Extras)
}

func TestDecode_OptionalFieldsPresent(t *testing.T) {
	t.Parallel()

	doc := parseDocument(t, `{
		"name": "n",
		"label": "l",
		"kind": "advanced",
		"count": 2,
		"limit": 10,
		"retries": 0,
		"enabled": false,
		"flag": false,
		"visible": false,
		"created": "2022-01-01T10:20:30.123456Z",
		"updated": "2022-02-01T00:00:00+02:00",
		"expires": "2023-01-01T00:00:00Z",
		"child": {"id": "c"},
		"parent": {"id": "p"},
		"children": [{"id": "a"}, {"id": "b"}],
		"extras": [{"id": "x"}]
	}`)

	obj, err := eventline.DecodeObject[testObject](doc)
	require.NoError(t, err)

	require.NotNil(t, obj.Label)
	assert.Equal(t, "l", *obj.Label)
	assert.Equal(t, "advanced", obj.Kind)
	require.NotNil(t, obj.Limit)
	assert.Equal(t, 10, *obj.Limit)
	assert.Equal(t, 0, obj.Retries)
	require.NotNil(t, obj.Flag)
	assert.False(t, *obj.Flag)
	assert.False(t, obj.Visible)
	assert.Equal(t, 123456000, obj.Created.Nanosecond())
	require.NotNil(t, obj.Updated)
	assert.Equal(t, time.Date(2022, 1, 31, 22, 0, 0, 0, time.UTC), obj.Updated.UTC())
	assert.Equal(t, 2023, obj.Expires.Year())
	require.NotNil(t, obj.Parent)
	assert.Equal(t, "p", obj.Parent.ID)
	assert.Equal(t, []testChild{{ID: "a"}, {ID: "b"}}, obj.Children)
	assert.Equal(t, []testChild{{ID: "x"}}, obj.Extras)
}

func TestDecode_NullOptionalFieldsBehaveAsAbsent(t *testing.T) {
	t.Parallel()

	doc := parseDocument(t, `{
		"name": "n",
		"label": null,
		"kind": null,
		"count": 1,
		"limit": null,
		"retries": null,
		"enabled": true,
		"flag": null,
		"visible": null,
		"created": "2022-01-01T00:00:00Z",
		"updated": null,
		"child": {"id": "c"},
		"parent": null,
		"children": [],
		"extras": null
	}`)

	obj, err := eventline.DecodeObject[testObject](doc)
	require.NoError(t, err)

	assert.Nil(t, obj.Label)
	assert.Equal(t, "basic", obj.Kind)
	assert.Nil(t, obj.Limit)
	assert.Equal(t, 3, obj.Retries)
	assert.Nil(t, obj.Flag)
	assert.True(t, obj.Visible)
	assert.Nil(t, obj.Updated)
	assert.Nil(t, obj.Parent)
	assert.Nil(t, obj.Extras)
}

func TestDecode_MissingRequiredField(t *testing.T) {
	t.Parallel()

	for _, field := range []string{"name", "count", "enabled", "created", "child", "children"} {
		t.Run(field, func(t *testing.T) {
			t.Parallel()

			doc := parseDocument(t, minimalTestObject).(map[string]interface{})
			delete(doc, field)

			obj, err := eventline.DecodeObject[testObject](doc)
			require.Error(t, err)
			assert.Nil(t, obj)
			assert.ErrorIs(t, err, eventline.ErrInvalidObject)

			var invalidErr *eventline.InvalidObjectError

			require.ErrorAs(t, err, &invalidErr)
			assert.Equal(t, eventline.MissingField, invalidErr.Kind)
			assert.Equal(t, field, invalidErr.Field)
			assert.Equal(t, "test_object", invalidErr.ObjectName)
			assert.Equal(t, "invalid test_object: missing field '"+field+"'", err.Error())
		})
	}
}

func TestDecode_NullRequiredField(t *testing.T) {
	t.Parallel()

	for _, field := range []string{"name", "count", "enabled", "created", "child", "children"} {
		t.Run(field, func(t *testing.T) {
			t.Parallel()

			doc := parseDocument(t, minimalTestObject).(map[string]interface{})
			doc[field] = nil

			_, err := eventline.DecodeObject[testObject](doc)

			var invalidErr *eventline.InvalidObjectError

			require.ErrorAs(t, err, &invalidErr)
			assert.Equal(t, eventline.MissingField, invalidErr.Kind)
			assert.Equal(t, field, invalidErr.Field)
			assert.Equal(t, "missing field '"+field+"'", invalidErr.Reason)
		})
	}
}

func TestDecode_ExactIntegerForms(t *testing.T) {
	t.Parallel()

	for value, expected := range map[string]int{"42": 42, "1e3": 1000, "2.0": 2, "-1.5E2": -150, "12500e-2": 125} {
		doc := parseDocument(t, minimalTestObject).(map[string]interface{})
		doc["count"] = json.Number(value)

		obj, err := eventline.DecodeObject[testObject](doc)
		require.NoError(t, err, value)
		assert.Equal(t, expected, obj.Count, value)
	}
}

func TestDecode_WrongType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		field    string
		value    interface{}
		expected string
		reason   string
	}{
		{"name", 42.0, eventline.KindString, "field 'name' is not a string"},
		{"label", true, eventline.KindString, "field 'label' is not a string"},
		{"count", "1", eventline.KindInteger, "field 'count' is not an integer"},
		{"count", json.Number("1.5"), eventline.KindInteger, "field 'count' is not an integer"},
		{"count", 1.5, eventline.KindInteger, "field 'count' is not an integer"},
		{"count", json.Number("1.25e1"), eventline.KindInteger, "field 'count' is not an integer"},
		{"count", json.Number("9.3e18"), eventline.KindInteger, "field 'count' is not an integer"},
		{"count", json.Number("1e400"), eventline.KindInteger, "field 'count' is not an integer"},
		{"enabled", "true", eventline.KindBoolean, "field 'enabled' is not a boolean"},
		{"created", json.Number("0"), eventline.KindString, "field 'created' is not a string"},
		{"child", "c", eventline.KindObject, "field 'child' is not an object"},
		{"parent", []interface{}{}, eventline.KindObject, "field 'parent' is not an object"},
		{"children", map[string]interface{}{}, eventline.KindArray, "field 'children' is not an array"},
	}

	for _, tt := range tests {
		t.Run(tt.field+"/"+tt.reason, func(t *testing.T) {
			t.Parallel()

			doc := parseDocument(t, minimalTestObject).(map[string]interface{})
			doc[tt.field] = tt.value

			_, err := eventline.DecodeObject[testObject](doc)

			var invalidErr *eventline.InvalidObjectError

			require.ErrorAs(t, err, &invalidErr)
			assert.Equal(t, eventline.WrongType, invalidErr.Kind)
			assert.Equal(t, tt.field, invalidErr.Field)
			assert.Equal(t, tt.expected, invalidErr.Expected)
			assert.Equal(t, tt.value, invalidErr.Value)
			assert.Equal(t, tt.reason, invalidErr.Reason)
		})
	}
}

func TestDecode_InvalidDatetime(t *testing.T) {
	t.Parallel()

	doc := parseDocument(t, minimalTestObject).(map[string]interface{})
	doc["created"] = "yesterday"

	_, err := eventline.DecodeObject[testObject](doc)

	var invalidErr *eventline.InvalidObjectError

	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, eventline.InvalidFormat, invalidErr.Kind)
	assert.Equal(t, "created", invalidErr.Field)
	assert.Equal(t, "yesterday", invalidErr.Value)
	assert.Equal(t, "field 'created' is not a valid datetime", invalidErr.Reason)

	var parseErr *time.ParseError

	assert.True(t, errors.As(err, &parseErr))
}

func TestDecode_ArrayElementNotObject(t *testing.T) {
	t.Parallel()

	doc := parseDocument(t, minimalTestObject).(map[string]interface{})
	doc["children"] = []interface{}{map[string]interface{}{"id": "a"}, "b"}

	_, err := eventline.DecodeObject[testObject](doc)

	var invalidErr *eventline.InvalidObjectError

	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, eventline.ArrayElementNotObject, invalidErr.Kind)
	assert.Equal(t, 1, invalidErr.Index)
	assert.Equal(t, "b", invalidErr.Value)
	assert.Equal(t, "invalid test_object: element at index 1 of field 'children' is not an object", err.Error())
}

func TestDecode_NestedErrorNamesNestedObject(t *testing.T) {
	t.Parallel()

	doc := parseDocument(t, minimalTestObject).(map[string]interface{})
	doc["children"] = []interface{}{map[string]interface{}{"id": "a"}, map[string]interface{}{}}

	_, err := eventline.DecodeObject[testObject](doc)

	var invalidErr *eventline.InvalidObjectError

	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, "test_child", invalidErr.ObjectName)
	assert.Equal(t, eventline.MissingField, invalidErr.Kind)
	assert.Equal(t, "id", invalidErr.Field)
}

func TestDecode_FirstViolationWins(t *testing.T) {
	t.Parallel()

	doc := parseDocument(t, `{"count": "x", "enabled": "y"}`)

	_, err := eventline.DecodeObject[testObject](doc)

	var invalidErr *eventline.InvalidObjectError

	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, eventline.MissingField, invalidErr.Kind)
	assert.Equal(t, "name", invalidErr.Field)
}

func TestDecode_NotAnObject(t *testing.T) {
	t.Parallel()

	_, err := eventline.DecodeObject[testObject](parseDocument(t, `[1, 2]`))

	var invalidErr *eventline.InvalidObjectError

	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, eventline.WrongType, invalidErr.Kind)
	assert.Equal(t, eventline.KindObject, invalidErr.Expected)
}

func TestDecode_Idempotent(t *testing.T) {
	t.Parallel()

	doc := parseDocument(t, minimalTestObject)

	first, err := eventline.DecodeObject[testObject](doc)
	require.NoError(t, err)

	second, err := eventline.DecodeObject[testObject](doc)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestObjectReader_ErrIsNilOnSuccess(t *testing.T) {
	t.Parallel()

	var id string

	r := eventline.NewObjectReader("thing", map[string]interface{}{"id": "x"})
	r.String("id", &id)

	require.NoError(t, r.Err())
	assert.Equal(t, "x", id)
}
