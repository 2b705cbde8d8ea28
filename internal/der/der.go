// Package der assembles the DER encoding of distinguished names as
// specified in ITU-T X.690, delegating tag/length/value framing to
// cryptobyte and keeping only the composition rules: string-type
// content encoding and the canonical SET OF ordering.
package der

import (
	"bytes"
	"encoding/asn1"
	"errors"
	"fmt"
	"sort"
	"unicode/utf16"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// ErrUnsupportedTag is returned when a string value is requested under
// a tag the encoder has no content rule for.
var ErrUnsupportedTag = errors.New("der: unsupported string tag")

// Universal string tags not declared by cryptobyte/asn1.
const (
	TagNumericString   = cbasn1.Tag(18)
	TagVisibleString   = cbasn1.Tag(26)
	TagUniversalString = cbasn1.Tag(28)
	TagBMPString       = cbasn1.Tag(30)
)

// String encodes value as a primitive string element with the given
// universal tag. UTF-16 and UCS-4 tags transcode the value; every
// other supported tag emits the raw bytes.
func String(tag cbasn1.Tag, value string) ([]byte, error) {
	contents, err := stringContents(tag, value)
	if err != nil {
		return nil, err
	}
	var b cryptobyte.Builder
	b.AddASN1(tag, func(c *cryptobyte.Builder) {
		c.AddBytes(contents)
	})
	return b.Bytes()
}

// stringContents produces the contents octets for a string value under
// the given tag.
func stringContents(tag cbasn1.Tag, value string) ([]byte, error) {
	switch tag {
	case cbasn1.UTF8String, cbasn1.PrintableString, cbasn1.IA5String,
		cbasn1.T61String, cbasn1.UTCTime, cbasn1.GeneralizedTime,
		TagNumericString, TagVisibleString:
		return []byte(value), nil
	case TagBMPString:
		units := utf16.Encode([]rune(value))
		out := make([]byte, 0, 2*len(units))
		for _, u := range units {
			out = append(out, byte(u>>8), byte(u))
		}
		return out, nil
	case TagUniversalString:
		runes := []rune(value)
		out := make([]byte, 0, 4*len(runes))
		for _, r := range runes {
			out = append(out, byte(r>>24), byte(r>>16), byte(r>>8), byte(r))
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: 0x%02x", ErrUnsupportedTag, uint8(tag))
	}
}

// AttributeTypeAndValue encodes one SEQUENCE { type, value } element:
// the attribute OID followed by its string value under tag.
func AttributeTypeAndValue(oid asn1.ObjectIdentifier, tag cbasn1.Tag, value string) ([]byte, error) {
	contents, err := stringContents(tag, value)
	if err != nil {
		return nil, err
	}
	var b cryptobyte.Builder
	b.AddASN1(cbasn1.SEQUENCE, func(seq *cryptobyte.Builder) {
		seq.AddASN1ObjectIdentifier(oid)
		seq.AddASN1(tag, func(v *cryptobyte.Builder) {
			v.AddBytes(contents)
		})
	})
	return b.Bytes()
}

// SetOf wraps already-encoded elements into a SET OF. With more than
// one element the encodings are first sorted lexicographically, as DER
// requires (X.690 11.6); a single element needs no sort. The input
// slice is not modified.
func SetOf(elems [][]byte) ([]byte, error) {
	ordered := elems
	if len(elems) > 1 {
		ordered = make([][]byte, len(elems))
		copy(ordered, elems)
		sort.Slice(ordered, func(i, j int) bool {
			return bytes.Compare(ordered[i], ordered[j]) < 0
		})
	}
	var b cryptobyte.Builder
	b.AddASN1(cbasn1.SET, func(set *cryptobyte.Builder) {
		for _, e := range ordered {
			set.AddBytes(e)
		}
	})
	return b.Bytes()
}

// Sequence wraps already-encoded elements into a SEQUENCE, preserving
// their order.
func Sequence(elems [][]byte) ([]byte, error) {
	var b cryptobyte.Builder
	b.AddASN1(cbasn1.SEQUENCE, func(seq *cryptobyte.Builder) {
		for _, e := range elems {
			seq.AddBytes(e)
		}
	})
	return b.Bytes()
}
