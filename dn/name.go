package dn

import (
	"strings"

	"github.com/oba-ldap/dnkit/internal/der"
	"github.com/oba-ldap/dnkit/oid"
)

// Name is an X.501 distinguished name: an ordered sequence of RDNs,
// stored least-specific first as in a certificate subject. The empty
// Name is the root (anonymous) name and is valid.
//
// Unlike RDN equality, Name equality is sequence equality: the same
// RDNs in a different order are a different name.
type Name struct {
	rdns []RDN
}

// NewName constructs a name from RDNs in certificate order, most
// significant (for example C=...) first.
func NewName(rdns ...RDN) Name {
	cp := make([]RDN, len(rdns))
	copy(cp, rdns)
	return Name{rdns: cp}
}

// Len returns the number of RDNs.
func (n Name) Len() int {
	return len(n.rdns)
}

// RDNs returns the RDN sequence in stored order. The returned slice is
// a copy.
func (n Name) RDNs() []RDN {
	cp := make([]RDN, len(n.rdns))
	copy(cp, n.rdns)
	return cp
}

// AttributesForOID returns every attribute across all RDNs whose type
// matches typ, in RDN-then-attribute order.
func (n Name) AttributesForOID(typ oid.OID) []Attribute {
	var out []Attribute
	for _, r := range n.rdns {
		out = append(out, r.AttributesForOID(typ)...)
	}
	return out
}

// Equal reports sequence equality: the names must contain equal RDNs
// at every position.
func (n Name) Equal(other Name) bool {
	if len(n.rdns) != len(other.rdns) {
		return false
	}
	for i := range n.rdns {
		if !n.rdns[i].Equal(other.rdns[i]) {
			return false
		}
	}
	return true
}

// String returns the RFC 4514 form of the name. RFC 4514 orders RDNs
// most specific first, the reverse of the stored certificate order, so
// a name built as C=US, O=Example Corp, CN=example.com renders as
// "CN=example.com,O=Example Corp,C=US".
func (n Name) String() string {
	if len(n.rdns) == 0 {
		return ""
	}
	parts := make([]string, len(n.rdns))
	for i, r := range n.rdns {
		parts[len(n.rdns)-1-i] = r.String()
	}
	return strings.Join(parts, ",")
}

// Bytes returns the DER encoding of the name as the RFC 5280 RDNSequence:
// a SEQUENCE OF RelativeDistinguishedName in stored order, each RDN a
// SET OF AttributeTypeAndValue. Multi-valued RDNs are canonically
// sorted inside their SET, so the output is byte-stable regardless of
// attribute insertion order; because of that, equal names always
// produce identical bytes, making the result usable as a hash key for
// a Name.
func (n Name) Bytes() ([]byte, error) {
	rdns := make([][]byte, len(n.rdns))
	for i, r := range n.rdns {
		elems := make([][]byte, len(r.attrs))
		for j, a := range r.attrs {
			tag, ok := a.stringType.tag()
			if !ok {
				return nil, &UnsupportedEncodingError{Type: a.stringType}
			}
			elem, err := der.AttributeTypeAndValue(a.typ.ASN1(), tag, a.value)
			if err != nil {
				return nil, err
			}
			elems[j] = elem
		}
		set, err := der.SetOf(elems)
		if err != nil {
			return nil, err
		}
		rdns[i] = set
	}
	return der.Sequence(rdns)
}
