package dn

import (
	"fmt"
	"strings"

	"github.com/oba-ldap/dnkit/oid"
)

// RDN is a relative distinguished name: a non-empty set of attributes.
// Insertion order is preserved for display and iteration, but equality
// is set-based, so two RDNs built from the same attributes in a
// different order compare equal.
type RDN struct {
	attrs []Attribute
}

// NewRDN constructs an RDN from one or more attributes. It returns
// ErrEmptyRDN when no attributes are given and ErrDuplicateAttribute
// when the same (type, value, string type) triple appears twice.
// Same-typed attributes with distinct values are legal; that is what
// makes an RDN multi-valued.
func NewRDN(attrs ...Attribute) (RDN, error) {
	if len(attrs) == 0 {
		return RDN{}, ErrEmptyRDN
	}
	seen := make(map[Attribute]struct{}, len(attrs))
	for _, a := range attrs {
		if _, dup := seen[a]; dup {
			return RDN{}, fmt.Errorf("%w: %s", ErrDuplicateAttribute, a)
		}
		seen[a] = struct{}{}
	}
	cp := make([]Attribute, len(attrs))
	copy(cp, attrs)
	return RDN{attrs: cp}, nil
}

// MustNewRDN is like NewRDN but panics on error. It is intended for
// tests and package-level declarations.
func MustNewRDN(attrs ...Attribute) RDN {
	r, err := NewRDN(attrs...)
	if err != nil {
		panic(err)
	}
	return r
}

// Len returns the number of attributes.
func (r RDN) Len() int {
	return len(r.attrs)
}

// Attributes returns the attributes in insertion order. The returned
// slice is a copy.
func (r RDN) Attributes() []Attribute {
	cp := make([]Attribute, len(r.attrs))
	copy(cp, r.attrs)
	return cp
}

// AttributesForOID returns, in insertion order, every attribute whose
// type matches typ. A miss yields an empty result, not an error.
func (r RDN) AttributesForOID(typ oid.OID) []Attribute {
	var out []Attribute
	for _, a := range r.attrs {
		if a.typ == typ {
			out = append(out, a)
		}
	}
	return out
}

// Equal reports whether r and other contain the same attribute set,
// regardless of insertion order.
func (r RDN) Equal(other RDN) bool {
	if len(r.attrs) != len(other.attrs) {
		return false
	}
	set := make(map[Attribute]struct{}, len(r.attrs))
	for _, a := range r.attrs {
		set[a] = struct{}{}
	}
	for _, a := range other.attrs {
		if _, ok := set[a]; !ok {
			return false
		}
	}
	return true
}

// String returns the RFC 4514 fragment for the RDN: attribute
// fragments joined by "+" in insertion order. Display order is
// caller-controlled; only the DER form re-sorts multi-valued RDNs.
func (r RDN) String() string {
	if len(r.attrs) == 1 {
		return r.attrs[0].String()
	}
	parts := make([]string, len(r.attrs))
	for i, a := range r.attrs {
		parts[i] = a.String()
	}
	return strings.Join(parts, "+")
}
