package base64

// Padding marks six-bit groups of a final chunk that carry no data.
const Padding byte = '='

// symbolKind is the classification of a single input character.
type symbolKind uint8

const (
	symbolInvalid symbolKind = iota
	symbolValue
	symbolPadding
)

// symbol is a classified input character. value is only meaningful
// when kind is symbolValue.
type symbol struct {
	kind  symbolKind
	value byte
}

// encodeSymbol maps the low six bits of v to the standard alphabet.
func encodeSymbol(v byte) byte {
	v &= 0x3F
	switch {
	case v < 26:
		return 'A' + v
	case v < 52:
		return 'a' + v - 26
	case v < 62:
		return '0' + v - 52
	case v == 62:
		return '+'
	default:
		return '/'
	}
}

// classify accepts both the standard and the URL safe alphabet.
func classify(c byte) symbol {
	switch {
	case c >= 'A' && c <= 'Z':
		return symbol{kind: symbolValue, value: c - 'A'}
	case c >= 'a' && c <= 'z':
		return symbol{kind: symbolValue, value: c - 'a' + 26}
	case c >= '0' && c <= '9':
		return symbol{kind: symbolValue, value: c - '0' + 52}
	case c == '+' || c == '-':
		return symbol{kind: symbolValue, value: 62}
	case c == '/' || c == '_':
		return symbol{kind: symbolValue, value: 63}
	case c == Padding:
		return symbol{kind: symbolPadding}
	default:
		return symbol{kind: symbolInvalid}
	}
}
