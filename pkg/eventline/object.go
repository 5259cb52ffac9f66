package eventline

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// JSON kinds named in InvalidObjectError.Expected.
const (
	KindString  = "string"
	KindInteger = "integer"
	KindBoolean = "boolean"
	KindObject  = "object"
	KindArray   = "array"
)

// ReadableObject is implemented by every type decoded from a document.
//
// ReadData performs the field reads for the type; it must not keep the reader
// after returning.
type ReadableObject interface {
	ObjectName() string
	ReadData(r *ObjectReader)
}

// ObjectPointer is satisfied by *T when *T implements ReadableObject. It lets
// generic helpers allocate and decode values of T.
type ObjectPointer[T any] interface {
	*T
	ReadableObject
}

// ObjectReader reads typed fields out of a JSON object.
//
// The first failing read is recorded and every following read becomes a
// no-op, so ReadData implementations are flat lists of calls and the caller
// checks Err once.
type ObjectReader struct {
	name string
	data map[string]interface{}
	err  error
}

// NewObjectReader creates a reader for the object named name.
func NewObjectReader(name string, data map[string]interface{}) *ObjectReader {
	return &ObjectReader{name: name, data: data}
}

// Err returns the first error encountered, if any.
func (r *ObjectReader) Err() error {
	return r.err
}

// Decode decodes doc into obj. doc must be a JSON object.
func Decode(doc Document, obj ReadableObject) error {
	data, ok := doc.(map[string]interface{})
	if !ok {
		return &InvalidObjectError{
			ObjectName: obj.ObjectName(),
			Kind:       WrongType,
			Expected:   KindObject,
			Index:      -1,
			Value:      doc,
			Reason:     "value is not an object",
		}
	}

	r := NewObjectReader(obj.ObjectName(), data)
	obj.ReadData(r)

	return r.Err()
}

// DecodeObject allocates a T and decodes doc into it. It returns nil on
// error.
func DecodeObject[T any, P ObjectPointer[T]](doc Document) (*T, error) {
	obj := new(T)

	err := Decode(doc, P(obj))
	if err != nil {
		return nil, err
	}

	return obj, nil
}

// String reads a required string.
func (r *ObjectReader) String(key string, dst *string) {
	if value, ok := readValue(r, key, true, KindString, asString); ok {
		*dst = value
	}
}

// OptionalString reads an optional string; *dst is nil when the field is
// absent or null.
func (r *ObjectReader) OptionalString(key string, dst **string) {
	*dst = nil
	if value, ok := readValue(r, key, false, KindString, asString); ok {
		*dst = &value
	}
}

// StringDefault reads an optional string, using def when it is absent or
// null.
func (r *ObjectReader) StringDefault(key string, dst *string, def string) {
	*dst = def
	if value, ok := readValue(r, key, false, KindString, asString); ok {
		*dst = value
	}
}

// Integer reads a required integer.
func (r *ObjectReader) Integer(key string, dst *int) {
	if value, ok := readValue(r, key, true, KindInteger, asInteger); ok {
		*dst = value
	}
}

// OptionalInteger reads an optional integer; *dst is nil when the field is
// absent or null.
func (r *ObjectReader) OptionalInteger(key string, dst **int) {
	*dst = nil
	if value, ok := readValue(r, key, false, KindInteger, asInteger); ok {
		*dst = &value
	}
}

// IntegerDefault reads an optional integer, using def when it is absent or
// null.
func (r *ObjectReader) IntegerDefault(key string, dst *int, def int) {
	*dst = def
	if value, ok := readValue(r, key, false, KindInteger, asInteger); ok {
		*dst = value
	}
}

// Boolean reads a required boolean.
func (r *ObjectReader) Boolean(key string, dst *bool) {
	if value, ok := readValue(r, key, true, KindBoolean, asBoolean); ok {
		*dst = value
	}
}

// OptionalBoolean reads an optional boolean; *dst is nil when the field is
// absent or null.
func (r *ObjectReader) OptionalBoolean(key string, dst **bool) {
	*dst = nil
	if value, ok := readValue(r, key, false, KindBoolean, asBoolean); ok {
		*dst = &value
	}
}

// BooleanDefault reads an optional boolean, using def when it is absent or
// null.
func (r *ObjectReader) BooleanDefault(key string, dst *bool, def bool) {
	*dst = def
	if value, ok := readValue(r, key, false, KindBoolean, asBoolean); ok {
		*dst = value
	}
}

// Datetime reads a required RFC 3339 timestamp.
func (r *ObjectReader) Datetime(key string, dst *time.Time) {
	if value, ok := r.datetime(key, true); ok {
		*dst = value
	}
}

// OptionalDatetime reads an optional RFC 3339 timestamp; *dst is nil when the
// field is absent or null.
func (r *ObjectReader) OptionalDatetime(key string, dst **time.Time) {
	*dst = nil
	if value, ok := r.datetime(key, false); ok {
		*dst = &value
	}
}

// DatetimeDefault reads an optional RFC 3339 timestamp, using def when it is
// absent or null.
func (r *ObjectReader) DatetimeDefault(key string, dst *time.Time, def time.Time) {
	*dst = def
	if value, ok := r.datetime(key, false); ok {
		*dst = value
	}
}

func (r *ObjectReader) datetime(key string, required bool) (time.Time, bool) {
	s, ok := readValue(r, key, required, KindString, asString)
	if !ok {
		return time.Time{}, false
	}

	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		r.fail(&InvalidObjectError{
			Kind:   InvalidFormat,
			Field:  key,
			Index:  -1,
			Value:  s,
			Reason: fmt.Sprintf("field '%s' is not a valid datetime", key),
			Err:    err,
		})

		return time.Time{}, false
	}

	return t, true
}

// ReadObject reads a required nested object into dst.
func ReadObject[T any, P ObjectPointer[T]](r *ObjectReader, key string, dst *T) {
	data, ok := readValue(r, key, true, KindObject, asObject)
	if !ok {
		return
	}

	var value T
	if r.decodeNested(data, P(&value)) {
		*dst = value
	}
}

// ReadOptionalObject reads an optional nested object; *dst is nil when the
// field is absent or null.
func ReadOptionalObject[T any, P ObjectPointer[T]](r *ObjectReader, key string, dst **T) {
	*dst = nil

	data, ok := readValue(r, key, false, KindObject, asObject)
	if !ok {
		return
	}

	value := new(T)
	if r.decodeNested(data, P(value)) {
		*dst = value
	}
}

// ReadObjectArray reads a required array of objects into dst.
func ReadObjectArray[T any, P ObjectPointer[T]](r *ObjectReader, key string, dst *[]T) {
	if values, ok := readObjectArray[T, P](r, key, true); ok {
		*dst = values
	}
}

// ReadOptionalObjectArray reads an optional array of objects; *dst is nil when
// the field is absent or null.
func ReadOptionalObjectArray[T any, P ObjectPointer[T]](r *ObjectReader, key string, dst *[]T) {
	*dst = nil
	if values, ok := readObjectArray[T, P](r, key, false); ok {
		*dst = values
	}
}

func readObjectArray[T any, P ObjectPointer[T]](r *ObjectReader, key string, required bool) ([]T, bool) {
	array, ok := readValue(r, key, required, KindArray, asArray)
	if !ok {
		return nil, false
	}

	values := make([]T, len(array))

	for i, element := range array {
		data, isObject := element.(map[string]interface{})
		if !isObject {
			r.fail(&InvalidObjectError{
				Kind:     ArrayElementNotObject,
				Field:    key,
				Expected: KindObject,
				Index:    i,
				Value:    element,
				Reason:   fmt.Sprintf("element at index %d of field '%s' is not an object", i, key),
			})

			return nil, false
		}

		if !r.decodeNested(data, P(&values[i])) {
			return nil, false
		}
	}

	return values, true
}

// decodeNested runs obj.ReadData on data and propagates its error, which
// names the nested object.
func (r *ObjectReader) decodeNested(data map[string]interface{}, obj ReadableObject) bool {
	nested := NewObjectReader(obj.ObjectName(), data)
	obj.ReadData(nested)

	if nested.err != nil {
		r.err = nested.err

		return false
	}

	return true
}

func (r *ObjectReader) fail(err *InvalidObjectError) {
	if err.ObjectName == "" {
		err.ObjectName = r.name
	}

	r.err = err
}

// readValue fetches key and converts it. It returns false when the reader has
// already failed, the field is absent or null, or the conversion failed.
func readValue[T any](r *ObjectReader, key string, required bool, kind string, convert func(interface{}) (T, bool)) (T, bool) {
	var zero T

	if r.err != nil {
		return zero, false
	}

	value := r.data[key]
	if value == nil {
		if required {
			r.fail(&InvalidObjectError{
				Kind:   MissingField,
				Field:  key,
				Index:  -1,
				Reason: fmt.Sprintf("missing field '%s'", key),
			})
		}

		return zero, false
	}

	converted, ok := convert(value)
	if !ok {
		r.fail(&InvalidObjectError{
			Kind:     WrongType,
			Field:    key,
			Expected: kind,
			Index:    -1,
			Value:    value,
			Reason:   fmt.Sprintf("field '%s' is not %s %s", key, article(kind), kind),
		})

		return zero, false
	}

	return converted, true
}

func article(word string) string {
	if word != "" && strings.ContainsRune("aeiou", rune(word[0])) {
		return "an"
	}

	return "a"
}

func asString(value interface{}) (string, bool) {
	s, ok := value.(string)

	return s, ok
}

func asBoolean(value interface{}) (bool, bool) {
	b, ok := value.(bool)

	return b, ok
}

func asObject(value interface{}) (map[string]interface{}, bool) {
	m, ok := value.(map[string]interface{})

	return m, ok
}

func asArray(value interface{}) ([]interface{}, bool) {
	a, ok := value.([]interface{})

	return a, ok
}

// asInteger accepts numbers holding an exact integer value that fits in an
// int.
func asInteger(value interface{}) (int, bool) {
	var i int64

	switch v := value.(type) {
	case json.Number:
		n, ok := numberToInt64(v)
		if !ok {
			return 0, false
		}

		i = n
	case float64:
		if v != math.Trunc(v) || v < math.MinInt64 || v >= math.MaxInt64 {
			return 0, false
		}

		i = int64(v)
	case int:
		return v, true
	case int64:
		i = v
	default:
		return 0, false
	}

	if i < math.MinInt || i > math.MaxInt {
		return 0, false
	}

	return int(i), true
}

const maxExponent = 20

// numberToInt64 accepts plain integers and exact values written with a
// fraction or an exponent, such as "1e3" or "2.0".
func numberToInt64(n json.Number) (int64, bool) {
	if i, err := strconv.ParseInt(string(n), 10, 64); err == nil {
		return i, true
	}

	// int64 values have at most 19 digits; larger exponents are not worth an
	// exact parse.
	if i := strings.IndexAny(string(n), "eE"); i >= 0 {
		exp, err := strconv.Atoi(string(n)[i+1:])
		if err != nil || exp < -maxExponent || exp > maxExponent {
			return 0, false
		}
	}

	r, ok := new(big.Rat).SetString(string(n))
	if !ok || !r.IsInt() || !r.Num().IsInt64() {
		return 0, false
	}

	return r.Num().Int64(), true
}

// objectString formats an object for display, e.g. "<eventline.account abc>".
func objectString(name, id string) string {
	if id == "" {
		return "<eventline." + name + ">"
	}

	return "<eventline." + name + " " + id + ">"
}
