package dn

import (
	"fmt"
	"strings"

	"github.com/oba-ldap/dnkit/oid"
)

// defaultStringTypes holds the attribute types whose values default to
// something other than UTF8String, per RFC 5280 appendix A.
var defaultStringTypes = map[oid.OID]StringType{
	oid.Country:             PrintableString,
	oid.SerialNumber:        PrintableString,
	oid.DNQualifier:         PrintableString,
	oid.JurisdictionCountry: PrintableString,
	oid.DomainComponent:     IA5String,
	oid.EmailAddress:        IA5String,
}

// Attribute is one typed attribute/value pair of a relative
// distinguished name. It is an immutable value: two attributes are
// equal under == (and Equal) exactly when OID, value, and string type
// all match, so Attribute can be used directly as a map key.
type Attribute struct {
	typ        oid.OID
	value      string
	stringType StringType
}

// NewAttribute constructs an attribute, inferring the string type from
// the attribute type: most attributes default to UTF8String, country
// and serial-number style attributes to PrintableString, and domain
// component and email address to IA5String.
func NewAttribute(typ oid.OID, value string) (Attribute, error) {
	st, ok := defaultStringTypes[typ]
	if !ok {
		st = UTF8String
	}
	return NewAttributeTyped(typ, value, st)
}

// NewAttributeTyped constructs an attribute with an explicit string
// type. The value is validated against the type's character set and
// the X.520 upper bound for the attribute type; a violation is a
// construction-time failure, never a later one.
func NewAttributeTyped(typ oid.OID, value string, st StringType) (Attribute, error) {
	if typ.IsZero() {
		return Attribute{}, &InvalidAttributeValueError{OID: typ.String(), Type: st, Reason: "attribute type OID is empty"}
	}
	if _, ok := st.tag(); !ok {
		return Attribute{}, &UnsupportedEncodingError{Type: st}
	}
	if value == "" {
		return Attribute{}, &InvalidAttributeValueError{OID: typ.String(), Type: st, Reason: "value is empty"}
	}
	if reason := st.validate(value); reason != "" {
		return Attribute{}, &InvalidAttributeValueError{OID: typ.String(), Type: st, Reason: reason}
	}
	if bound, ok := oid.UpperBound(typ); ok {
		if n := len([]rune(value)); n > bound {
			return Attribute{}, &InvalidAttributeValueError{
				OID:    typ.String(),
				Type:   st,
				Reason: fmt.Sprintf("value length %d exceeds upper bound %d", n, bound),
			}
		}
	}
	return Attribute{typ: typ, value: value, stringType: st}, nil
}

// OID returns the attribute type.
func (a Attribute) OID() oid.OID {
	return a.typ
}

// Value returns the attribute value.
func (a Attribute) Value() string {
	return a.value
}

// Type returns the string type the value encodes as.
func (a Attribute) Type() StringType {
	return a.stringType
}

// Equal reports structural equality over (OID, value, string type).
func (a Attribute) Equal(other Attribute) bool {
	return a == other
}

// String returns the RFC 4514 fragment "<type>=<escaped value>". The
// attribute type renders as its registered short name; without a
// registry entry the dotted numeric form prefixed by "OID." is used.
func (a Attribute) String() string {
	name, ok := oid.ShortName(a.typ)
	if !ok {
		name = "OID." + a.typ.String()
	}
	var b strings.Builder
	b.Grow(len(name) + 1 + len(a.value))
	b.WriteString(name)
	b.WriteByte('=')
	b.WriteString(escapeValue(a.value))
	return b.String()
}
