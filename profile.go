package x690

/*
profile.go defines the canonicality restrictions each [EncodingRule]
imposes on top of plain BER, as a single lookup instead of scattered
"== DER" or "== CER" comparisons.

ITU-T Rec. X.690 clause 11 ("Restrictions on BER used by both CER and
DER") applies the same set of canonical-form rules to CER and DER
alike — minimal-length encoding, no superfluous leading zero octet,
SET OF elements sorted into ascending octet order. CER additionally
imposes clause 9's large-value chunking (definite-length primitives
capped at 1000 content octets, with longer values re-encoded as a
constructed, indefinite-length run of segments), which DER forbids
outright by requiring a single definite-length primitive.

Before this type existed, each of those rules was implemented as its
own ad hoc rule comparison, and several (SET OF ordering, minimal
length) checked only DER, silently skipping the CER half of clause 11.
Centralizing the table here is what fixed that gap everywhere at once.
*/
type strictnessProfile struct {
	// Canonical is set for any rule bound by clause 11's restrictions:
	// minimal-length encoding, no superfluous leading zero length
	// octet, zeroed BIT STRING padding bits. True for CER and DER.
	Canonical bool

	// MinimalLength requires the shortest possible definite-length
	// form and rejects a superfluous leading zero length octet.
	MinimalLength bool

	// OrderedSetOf requires SET OF element encodings be sorted into
	// ascending octet order before concatenation.
	OrderedSetOf bool

	// ChunkThreshold is the greatest number of content octets a
	// chunkable string-like primitive (OCTET STRING, BIT STRING) may
	// carry before [EncodingRule] demands it be segmented into a
	// constructed run of indefinite-length parts. Zero disables
	// chunking regardless of content size.
	ChunkThreshold int
}

var (
	berStrictness = strictnessProfile{}
	cerStrictness = strictnessProfile{Canonical: true, MinimalLength: true, OrderedSetOf: true, ChunkThreshold: 1000}
	derStrictness = strictnessProfile{Canonical: true, MinimalLength: true, OrderedSetOf: true}
)

/*
profile returns the [strictnessProfile] describing the canonicality
restrictions the receiver instance imposes.
*/
func (r EncodingRule) profile() strictnessProfile {
	switch r {
	case CER:
		return cerStrictness
	case DER:
		return derStrictness
	default:
		return berStrictness
	}
}
