package x690

import "testing"

func TestElement_encodeDecode(t *testing.T) {
	for _, rule := range []EncodingRule{BER, DER} {
		el := NewElement(rule, ClassUniversal, TagBoolean).SetValue([]byte{0xFF})

		enc := el.Encode()

		dec, consumed, err := DecodeOne(rule, enc)
		if err != nil {
			t.Fatalf("%s failed [DecodeOne, %s]: %v", t.Name(), rule, err)
		}
		if consumed != len(enc) {
			t.Fatalf("%s consumed mismatch [%s]: want %d, got %d",
				t.Name(), rule, len(enc), consumed)
		}
		if dec.Class() != ClassUniversal || dec.Tag() != TagBoolean {
			t.Fatalf("%s header mismatch [%s]: got class %d tag %d",
				t.Name(), rule, dec.Class(), dec.Tag())
		}
		if string(dec.Value()) != "\xFF" {
			t.Fatalf("%s value mismatch [%s]: got %#v", t.Name(), rule, dec.Value())
		}
	}
}

func TestElement_constructed(t *testing.T) {
	el := NewElement(BER, ClassUniversal, TagSequence).SetConstructed(true)
	if !el.Constructed() {
		t.Fatalf("%s: expected constructed Element", t.Name())
	}
}

func TestElement_pduBridge(t *testing.T) {
	el := NewElement(DER, ClassUniversal, TagInteger).SetValue([]byte{0x02})

	pkt := el.PDU()
	if pkt.Type() != DER {
		t.Fatalf("%s: expected DER PDU, got %s", t.Name(), pkt.Type())
	}

	back, err := ElementOf(pkt)
	if err != nil {
		t.Fatalf("%s failed [ElementOf]: %v", t.Name(), err)
	}
	if back.Class() != el.Class() || back.Tag() != el.Tag() || string(back.Value()) != string(el.Value()) {
		t.Fatalf("%s: round-trip mismatch: got class=%d tag=%d value=%#v",
			t.Name(), back.Class(), back.Tag(), back.Value())
	}
	if pkt.Offset() != 0 {
		t.Fatalf("%s: ElementOf must not advance the PDU offset, got %d", t.Name(), pkt.Offset())
	}
}
