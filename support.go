package x690

/*
support.go contains small shared constants and formatting helpers used
by the framing engine, the CER chunking logic and the typed codecs. It
exists alongside err.go and common.go rather than folding into either:
the constants here are byte-level wire masks, not general-purpose
string/number helpers.
*/

import "bytes"

const (
	// indefByte is the high bit of a length or INTEGER/ENUMERATED leading
	// octet: in a length octet it distinguishes short form (clear) from
	// long/indefinite form (set); in a two's-complement leading octet it
	// is the sign bit.
	indefByte byte = 0x80

	// shortByte masks the low seven bits of a long-form length octet,
	// i.e. the count of subsequent length octets.
	shortByte byte = 0x7F

	// cmpndByte is the constructed/compound bit (bit 6) of an identifier
	// octet.
	cmpndByte byte = 0x20

	hexDigits = "0123456789ABCDEF"
)

// indefEoC is the two-octet end-of-contents marker that terminates an
// indefinite-length constructed value.
var indefEoC = []byte{0x00, 0x00}

// bidx returns the index of the first occurrence of needle within
// haystack, or -1 if absent.
func bidx(haystack, needle []byte) int { return bytes.Index(haystack, needle) }

var errorBadLength error = mkerr("malformed length")

/*
errorBadTypeForConstructor returns an error indicating that x is not one
of the Go types a given ASN.1 constructor (named by typ) knows how to
marshal.
*/
func errorBadTypeForConstructor(typ string, x any) error {
	got := "<nil>"
	if x != nil {
		got = refTypeOf(x).String()
	}
	return mkerrf("invalid type for ", typ, " constructor: ", got)
}

/*
codecErrorf builds an error from the concatenation of parts, same as
[mkerrf], but additionally understands [error], [EncodingRule] and other
[Kind]-bearing values so call sites that mix sentinel errors, rule
names and literal text don't need to pre-stringify them.
*/
func codecErrorf(parts ...any) error {
	return mkerrf(stringifyParts(parts)...)
}

/*
primitiveErrorf builds an error for typed-codec (Primitive) failures.
It is a thin alias over [codecErrorf] kept distinct so that call sites
in the per-type codec files read as primitive-level diagnostics.
*/
func primitiveErrorf(parts ...any) error {
	return mkerrf(stringifyParts(parts)...)
}

// stringifyParts normalizes mixed-type varargs down to the string/int
// vocabulary that mkerrf already knows how to concatenate.
func stringifyParts(parts []any) []any {
	out := make([]any, 0, len(parts))
	for _, p := range parts {
		switch v := p.(type) {
		case string, int:
			out = append(out, v)
		case error:
			out = append(out, v.Error())
		case fmt_Stringer:
			out = append(out, v.String())
		case byte:
			out = append(out, "0x"+string(hexDigits[v>>4])+string(hexDigits[v&0xF]))
		default:
			out = append(out, "<not supported>")
		}
	}
	return out
}

// fmt_Stringer avoids importing "fmt" solely for the Stringer interface.
type fmt_Stringer interface{ String() string }

/*
compositeErrorf builds an error for SEQUENCE/SET/CHOICE (composite) engine
failures. A thin alias over [codecErrorf], kept distinct so call sites in
seq.go, set.go and runtime.go read as composite-level diagnostics.
*/
func compositeErrorf(parts ...any) error {
	return mkerrf(stringifyParts(parts)...)
}

/*
choiceErrorf builds an error for CHOICE resolution failures. A thin alias
over [codecErrorf], kept distinct so call sites in choice.go read as
CHOICE-level diagnostics.
*/
func choiceErrorf(parts ...any) error {
	return mkerrf(stringifyParts(parts)...)
}

/*
generalErrorf builds an error for conditions that don't cleanly belong to
the codec, primitive, composite or CHOICE diagnostic categories.
*/
func generalErrorf(parts ...any) error {
	return mkerrf(stringifyParts(parts)...)
}

/*
constraintViolationf builds an error describing a failed [Constraint] or
[ConstraintGroup] evaluation.
*/
func constraintViolationf(parts ...any) error {
	return mkerrf(stringifyParts(parts)...)
}
