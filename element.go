package x690

/*
element.go contains the language-neutral, single-node Element API: a thin
constructor/encoder/decoder pair built atop [TLV] and [PDU] for callers who
want to work with one tag/length/value node directly rather than through a
typed Go value and the [Marshal]/[Unmarshal] machinery.
*/

/*
Element implements a single TLV node: class, construction, tag number, and
the raw content octets. It is the one-node counterpart to the typed
[Primitive] values (e.g. [BitString], [ObjectIdentifier]) produced and
consumed elsewhere in this package.
*/
type Element struct {
	rule  EncodingRule
	class int
	cmpnd bool
	tag   int
	value []byte
}

/*
NewElement returns an empty, primitive [Element] of the given class and
tag number under rule. The construction bit defaults to primitive; use
[Element.SetConstructed] to mark it constructed.
*/
func NewElement(rule EncodingRule, class, tag int) Element {
	return Element{rule: rule, class: class, tag: tag}
}

/*
SetConstructed marks the receiver as holding a concatenation of child
Elements rather than raw content octets, and returns the receiver for
chaining.
*/
func (e Element) SetConstructed(constructed bool) Element {
	e.cmpnd = constructed
	return e
}

/*
SetValue assigns the content octets of the receiver, copying src so the
caller's buffer remains immutable, and returns the receiver for chaining.
*/
func (e Element) SetValue(src []byte) Element {
	e.value = append([]byte(nil), src...)
	return e
}

func (e Element) Class() int         { return e.class }
func (e Element) Tag() int           { return e.tag }
func (e Element) Constructed() bool  { return e.cmpnd }
func (e Element) Rule() EncodingRule { return e.rule }

/*
Value returns a copy of the receiver's content octets.
*/
func (e Element) Value() []byte { return append([]byte(nil), e.value...) }

/*
Encode returns the total T‖L‖V encoding of the receiver under its own
[EncodingRule].
*/
func (e Element) Encode() []byte {
	tlv := e.rule.newTLV(e.class, e.tag, len(e.value), e.cmpnd, e.value...)
	return encodeTLV(tlv, nil)
}

/*
PDU returns a freshly allocated [PDU] positioned at the start of the
receiver's own T‖L‖V encoding, for callers that need to hand the node
off to the lower-level buffer-and-offset API (e.g. [Unmarshal]).
*/
func (e Element) PDU() PDU {
	pkt := e.rule.New(e.Encode()...)
	pkt.SetOffset(0)
	return pkt
}

/*
DecodeOne parses exactly one TLV node from the head of src under rule,
returning the resulting [Element] alongside the number of bytes consumed.
It does not recurse into constructed content; callers that need the
sub-Elements of a constructed value should call DecodeOne again against
the returned Element's Value.
*/
func DecodeOne(rule EncodingRule, src []byte) (el Element, consumed int, err error) {
	pkt := rule.New(src...)
	pkt.SetOffset(0)

	var tlv TLV
	if tlv, err = pkt.TLV(); err == nil {
		el = Element{
			rule:  rule,
			class: tlv.Class,
			cmpnd: tlv.Compound,
			tag:   tlv.Tag,
			value: append([]byte(nil), tlv.Value...),
		}
		consumed = pkt.Offset()
	}

	return
}
