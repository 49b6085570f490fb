package value

// Kind identifies the concrete type of a Value using an enum for fast
// comparisons.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindNone
	KindBoolean
	KindInteger
	KindFloat
	KindString
	KindArray
	KindMap
	KindModule
	KindError
	KindFunction
	KindNative
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "NONE"
	case KindBoolean:
		return "BOOLEAN"
	case KindInteger:
		return "INTEGER"
	case KindFloat:
		return "FLOAT"
	case KindString:
		return "STRING"
	case KindArray:
		return "ARRAY"
	case KindMap:
		return "MAP"
	case KindModule:
		return "MODULE"
	case KindError:
		return "ERROR"
	case KindFunction:
		return "FUNCTION"
	case KindNative:
		return "NATIVE"
	default:
		return "INVALID"
	}
}
