package service

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// accessor reads one candidate value out of a decoded JSON object
type accessor func(data map[string]interface{}) interface{}

// field returns an accessor for a nested key path, e.g. field("shipping_address", "phone")
func field(path ...string) accessor {
	return func(data map[string]interface{}) interface{} {
		return lookup(data, path...)
	}
}

// in returns an accessor that reads path from obj rather than the order root
func in(obj map[string]interface{}, path ...string) accessor {
	return func(map[string]interface{}) interface{} {
		return lookup(obj, path...)
	}
}

// literal returns an accessor that always yields v
func literal(v interface{}) accessor {
	return func(map[string]interface{}) interface{} {
		return v
	}
}

func lookup(data map[string]interface{}, path ...string) interface{} {
	var cur interface{} = data
	for _, key := range path {
		m, ok := cur.(map[string]interface{})
		if !ok {
			return nil
		}
		cur = m[key]
	}
	return cur
}

// firstObject returns the first element of the array at path when it is an object
func firstObject(data map[string]interface{}, path ...string) map[string]interface{} {
	items, ok := lookup(data, path...).([]interface{})
	if !ok || len(items) == 0 {
		return map[string]interface{}{}
	}
	item, ok := items[0].(map[string]interface{})
	if !ok {
		return map[string]interface{}{}
	}
	return item
}

// firstTruthy evaluates accessors in order and returns the first truthy scalar.
// Nested objects and arrays are skipped since they have no text form.
func firstTruthy(data map[string]interface{}, chain ...accessor) interface{} {
	for _, get := range chain {
		if v := get(data); truthy(v) && isScalar(v) {
			return v
		}
	}
	return nil
}

// firstDefined evaluates accessors in order and returns the first non-null value.
// Unlike firstTruthy a numeric zero is accepted, so a 0 shipping cost stops the chain.
func firstDefined(data map[string]interface{}, chain ...accessor) interface{} {
	for _, get := range chain {
		if v := get(data); v != nil {
			return v
		}
	}
	return nil
}

// truthy follows JSON-value truthiness: null, false, 0, NaN and "" are false;
// objects and arrays, even empty ones, are true.
func truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case json.Number:
		f, err := t.Float64()
		return err == nil && f != 0 && !math.IsNaN(f)
	case float64:
		return t != 0 && !math.IsNaN(t)
	case int:
		return t != 0
	case int64:
		return t != 0
	default:
		return true
	}
}

func isScalar(v interface{}) bool {
	switch v.(type) {
	case map[string]interface{}, []interface{}:
		return false
	default:
		return true
	}
}

func isNumber(v interface{}) bool {
	switch v.(type) {
	case json.Number, float64, int, int64:
		return true
	default:
		return false
	}
}

// toText renders a decoded JSON value as display text
func toText(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		// Canonical form: 1.5e2 is "150", 2.0 is "2"
		if d, err := decimal.NewFromString(t.String()); err == nil {
			return d.String()
		}
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}
