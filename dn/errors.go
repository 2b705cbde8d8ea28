package dn

import (
	"errors"
	"fmt"
)

// Construction and encoding errors.
var (
	// ErrEmptyRDN is returned when a relative distinguished name is
	// constructed with no attributes.
	ErrEmptyRDN = errors.New("dn: RDN must have at least one attribute")

	// ErrDuplicateAttribute is returned when a relative distinguished
	// name is constructed with two identical attributes. Multi-valued
	// RDNs are legal, but each attribute must be distinct.
	ErrDuplicateAttribute = errors.New("dn: duplicate attribute in RDN")

	// ErrInvalidAttributeValue is the class matched (via errors.Is) by
	// every InvalidAttributeValueError.
	ErrInvalidAttributeValue = errors.New("dn: invalid attribute value")

	// ErrMalformedString is the class matched by every
	// MalformedStringError.
	ErrMalformedString = errors.New("dn: malformed RFC 4514 string")

	// ErrUnsupportedEncoding is the class matched by every
	// UnsupportedEncodingError.
	ErrUnsupportedEncoding = errors.New("dn: unsupported string encoding")
)

// InvalidAttributeValueError reports a value that fails the
// character-set, emptiness, or length rule for its string type. It is
// returned at attribute construction, never later.
type InvalidAttributeValueError struct {
	OID    string // dotted attribute type
	Type   StringType
	Reason string
}

// Error implements the error interface.
func (e *InvalidAttributeValueError) Error() string {
	return fmt.Sprintf("dn: invalid value for attribute %s (%s): %s", e.OID, e.Type, e.Reason)
}

// Is allows InvalidAttributeValueError to match ErrInvalidAttributeValue.
func (e *InvalidAttributeValueError) Is(target error) bool {
	return target == ErrInvalidAttributeValue
}

// MalformedStringError reports an RFC 4514 string that violates the
// distinguishedName grammar or contains an invalid escape sequence.
type MalformedStringError struct {
	Input  string // offending fragment
	Reason string
}

// Error implements the error interface.
func (e *MalformedStringError) Error() string {
	return fmt.Sprintf("dn: malformed RFC 4514 string %q: %s", e.Input, e.Reason)
}

// Is allows MalformedStringError to match ErrMalformedString.
func (e *MalformedStringError) Is(target error) bool {
	return target == ErrMalformedString
}

// UnsupportedEncodingError reports a string type with no DER tag
// mapping in the encoder.
type UnsupportedEncodingError struct {
	Type StringType
}

// Error implements the error interface.
func (e *UnsupportedEncodingError) Error() string {
	return fmt.Sprintf("dn: string type %d has no DER tag mapping", int(e.Type))
}

// Is allows UnsupportedEncodingError to match ErrUnsupportedEncoding.
func (e *UnsupportedEncodingError) Is(target error) bool {
	return target == ErrUnsupportedEncoding
}
