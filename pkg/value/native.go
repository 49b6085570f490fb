package value

import "fmt"

// ToNative converts a value into plain Go types for codec marshaling.
func ToNative(v Value) any {
	switch v := v.(type) {
	case *None:
		return nil
	case *Boolean:
		return v.Value
	case *Integer:
		return v.Value
	case *Float:
		return v.Value
	case *String:
		return v.Value
	case *Array:
		out := make([]any, 0, len(v.Elements))
		for _, e := range v.Elements {
			out = append(out, ToNative(e))
		}
		return out
	case *Map:
		out := make(map[string]any, len(v.Pairs))
		for k, e := range v.Pairs {
			out[k] = ToNative(e)
		}
		return out
	case *Native:
		return v.Value
	default:
		return v.Inspect()
	}
}

// FromNative converts plain Go types back into values after unmarshaling.
// It covers the shapes produced by encoding/json and cbor decoding into any.
func FromNative(val any) Value {
	switch v := val.(type) {
	case nil:
		return NONE
	case bool:
		return Bool(v)
	case int:
		return &Integer{Value: int64(v)}
	case int64:
		return &Integer{Value: v}
	case uint64:
		return &Integer{Value: int64(v)}
	case float64:
		// json decodes all numbers as float64; keep integral ones integral
		if v == float64(int64(v)) {
			return &Integer{Value: int64(v)}
		}
		return &Float{Value: v}
	case string:
		return &String{Value: v}
	case []byte:
		return &Native{Value: v}
	case []any:
		elements := make([]Value, 0, len(v))
		for _, e := range v {
			elements = append(elements, FromNative(e))
		}
		return &Array{Elements: elements}
	case map[string]any:
		pairs := make(map[string]Value, len(v))
		for k, e := range v {
			pairs[k] = FromNative(e)
		}
		return &Map{Pairs: pairs}
	case map[any]any:
		pairs := make(map[string]Value, len(v))
		for k, e := range v {
			pairs[fmt.Sprintf("%v", k)] = FromNative(e)
		}
		return &Map{Pairs: pairs}
	default:
		return &String{Value: fmt.Sprintf("%v", v)}
	}
}
