// Package oid provides the object identifier value type used to tag
// distinguished name attributes, together with a read-only registry of
// well-known attribute types.
package oid

import (
	"encoding/asn1"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Errors returned when constructing an OID.
var (
	// ErrEmptyOID is returned when an OID has fewer than two arcs.
	ErrEmptyOID = errors.New("oid: at least two arcs required")

	// ErrNegativeArc is returned when an OID contains a negative arc.
	ErrNegativeArc = errors.New("oid: arcs must be non-negative")
)

// OID is an immutable object identifier: an ordered sequence of
// non-negative integer arcs. The zero value is the empty OID.
//
// OID is a comparable value type: two OIDs are equal under == exactly
// when their arc sequences are equal, so an OID can be used directly
// as a map key.
type OID struct {
	dotted string
}

// New constructs an OID from its arcs.
func New(arcs ...int) (OID, error) {
	if len(arcs) < 2 {
		return OID{}, ErrEmptyOID
	}
	var b strings.Builder
	for i, arc := range arcs {
		if arc < 0 {
			return OID{}, fmt.Errorf("%w: arc %d is %d", ErrNegativeArc, i, arc)
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.Itoa(arc))
	}
	return OID{dotted: b.String()}, nil
}

// Parse parses a dotted-decimal string such as "2.5.4.3".
func Parse(s string) (OID, error) {
	parts := strings.Split(s, ".")
	if len(parts) < 2 {
		return OID{}, fmt.Errorf("%w: %q", ErrEmptyOID, s)
	}
	arcs := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 {
			return OID{}, fmt.Errorf("oid: invalid arc %q in %q", p, s)
		}
		arcs[i] = v
	}
	return New(arcs...)
}

// MustParse is like Parse but panics on error. It is intended for
// package-level declarations of well-known identifiers.
func MustParse(s string) OID {
	o, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return o
}

// IsZero reports whether o is the zero OID.
func (o OID) IsZero() bool {
	return o.dotted == ""
}

// Equal reports whether o and other have the same arc sequence.
func (o OID) Equal(other OID) bool {
	return o == other
}

// String returns the dotted-decimal form, e.g. "2.5.4.3".
func (o OID) String() string {
	return o.dotted
}

// Arcs returns a fresh copy of the arc sequence.
func (o OID) Arcs() []int {
	if o.dotted == "" {
		return nil
	}
	parts := strings.Split(o.dotted, ".")
	arcs := make([]int, len(parts))
	for i, p := range parts {
		// Parse validated every arc at construction.
		arcs[i], _ = strconv.Atoi(p)
	}
	return arcs
}

// ASN1 returns the OID as an encoding/asn1 object identifier, for
// handing to DER encoders.
func (o OID) ASN1() asn1.ObjectIdentifier {
	return asn1.ObjectIdentifier(o.Arcs())
}
