package value

// Kind identifies which payload variant a Value currently holds.
type Kind uint8

const (
	NullKind Kind = iota
	BoolKind
	IntKind
	UIntKind
	RealKind
	StringKind
	ArrayKind
	ObjectKind
)

// rank orders kinds for cross-kind comparison: Null < Int < UInt < Real <
// String < Bool < Array < Object.
var rank = map[Kind]int{
	NullKind:   0,
	IntKind:    1,
	UIntKind:   2,
	RealKind:   3,
	StringKind: 4,
	BoolKind:   5,
	ArrayKind:  6,
	ObjectKind: 7,
}

func (k Kind) String() string {
	switch k {
	case NullKind:
		return "null"
	case BoolKind:
		return "bool"
	case IntKind:
		return "int"
	case UIntKind:
		return "uint"
	case RealKind:
		return "real"
	case StringKind:
		return "string"
	case ArrayKind:
		return "array"
	case ObjectKind:
		return "object"
	default:
		return "unknown"
	}
}
