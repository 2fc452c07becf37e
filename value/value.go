// Package value defines golox's runtime value representation and the
// dynamic-typing rules spec.md §4.4 attaches to it: truthiness, equality,
// and stringification.
//
// The teacher's objects package (objects/objects.go) represents every
// runtime value as a GoMixObject interface implemented by one concrete
// wrapper struct per type (Float, Str, Bool, ...), each carrying its own
// GetType/ToString/ToObject methods. golox instead represents a value with
// Go's own `any`, tagged implicitly by its dynamic type (nil, bool,
// float64, string, Callable) and dispatches on that type directly with a
// type switch in the handful of functions below. This is the idiomatic Go
// rendering of the same tagged-union idea the teacher's interface
// hierarchy expresses — one fewer allocation per value, and no method set
// to extend every time a rule changes.
package value

import "strconv"

// Value is any golox runtime value: nil, bool, float64, string, or
// Callable. There is no separate wrapper type — a bare Go `any` holding one
// of these is a well-formed Value.
type Value = any

// IsTruthy implements spec.md §4.4's truthiness rule: nil and the boolean
// false are falsy; every other value, including 0 and the empty string, is
// truthy.
func IsTruthy(v Value) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	default:
		return true
	}
}

// IsEqual implements spec.md §4.4's equality rule: values of different
// dynamic types are never equal (no coercion), nil equals only nil, and
// floats compare with Go's own `==` — meaning NaN is unequal to itself,
// same as IEEE 754 and the same as golox's host language.
func IsEqual(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch av := a.(type) {
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	default:
		// Callables compare by identity, matching Go's own rule for
		// incomparable-by-value reference types.
		return a == b
	}
}

// Stringify renders v the way `print` and the REPL echo it. Numbers use the
// shortest decimal that round-trips, per spec.md's rule that integral
// values print without a trailing ".0" mandated by a fixed-precision
// formatter — this is the idiomatic replacement for the teacher's
// objects.Float.ToString, which always used `%f` and so always printed a
// fixed number of fractional digits regardless of the value.
func Stringify(v Value) string {
	switch t := v.(type) {
	case nil:
		return "nil"
	case bool:
		if t {
			return "true"
		}
		return "false"
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case string:
		return t
	case Callable:
		return t.String()
	default:
		return "nil"
	}
}

// TypeName names v's dynamic type the way the `type` native builtin
// reports it.
func TypeName(v Value) string {
	switch v.(type) {
	case nil:
		return "nil"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case Callable:
		return "function"
	default:
		return "unknown"
	}
}
