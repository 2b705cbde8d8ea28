package dn

import (
	"fmt"
	"time"
	"unicode/utf16"
	"unicode/utf8"

	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"

	"github.com/oba-ldap/dnkit/internal/der"
)

// StringType identifies the ASN.1 encoding class requested for an
// attribute value. It determines the DER tag used on encode and the
// character-set validation applied at construction.
type StringType int

const (
	// UTF8String is the default encoding for directory strings.
	UTF8String StringType = iota

	// PrintableString restricts values to A-Za-z0-9 '()+,-./:=? and space.
	PrintableString

	// IA5String restricts values to 7-bit ASCII.
	IA5String

	// UTCTime holds a YYMMDDHHMMSSZ timestamp.
	UTCTime

	// GeneralizedTime holds a YYYYMMDDHHMMSSZ timestamp.
	GeneralizedTime

	// T61String is the legacy 8-bit teletex encoding.
	T61String

	// BMPString holds characters from the Unicode basic multilingual
	// plane, encoded as UCS-2.
	BMPString

	// UniversalString holds any Unicode character, encoded as UCS-4.
	UniversalString

	// VisibleString restricts values to printable ASCII (0x20-0x7E).
	VisibleString

	// NumericString restricts values to digits and space.
	NumericString
)

// String returns the ASN.1 name of the string type.
func (st StringType) String() string {
	switch st {
	case UTF8String:
		return "UTF8String"
	case PrintableString:
		return "PrintableString"
	case IA5String:
		return "IA5String"
	case UTCTime:
		return "UTCTime"
	case GeneralizedTime:
		return "GeneralizedTime"
	case T61String:
		return "T61String"
	case BMPString:
		return "BMPString"
	case UniversalString:
		return "UniversalString"
	case VisibleString:
		return "VisibleString"
	case NumericString:
		return "NumericString"
	default:
		return "unknown"
	}
}

// tag returns the universal DER tag for the string type. The second
// result is false for values outside the enumeration.
func (st StringType) tag() (cbasn1.Tag, bool) {
	switch st {
	case UTF8String:
		return cbasn1.UTF8String, true
	case PrintableString:
		return cbasn1.PrintableString, true
	case IA5String:
		return cbasn1.IA5String, true
	case UTCTime:
		return cbasn1.UTCTime, true
	case GeneralizedTime:
		return cbasn1.GeneralizedTime, true
	case T61String:
		return cbasn1.T61String, true
	case BMPString:
		return der.TagBMPString, true
	case UniversalString:
		return der.TagUniversalString, true
	case VisibleString:
		return der.TagVisibleString, true
	case NumericString:
		return der.TagNumericString, true
	default:
		return 0, false
	}
}

// validate checks value against the character-set constraint implied
// by the string type. It returns a human-readable reason on failure
// and the empty string on success.
func (st StringType) validate(value string) string {
	switch st {
	case UTF8String, UniversalString:
		if !utf8.ValidString(value) {
			return "not valid UTF-8"
		}
	case PrintableString:
		for _, r := range value {
			if !isPrintableRune(r) {
				return fmt.Sprintf("character %q not allowed in PrintableString", r)
			}
		}
	case IA5String:
		for _, r := range value {
			if r > 127 {
				return fmt.Sprintf("character %q not allowed in IA5String", r)
			}
		}
	case VisibleString:
		for _, r := range value {
			if r < 0x20 || r > 0x7E {
				return fmt.Sprintf("character %q not allowed in VisibleString", r)
			}
		}
	case NumericString:
		for _, r := range value {
			if (r < '0' || r > '9') && r != ' ' {
				return fmt.Sprintf("character %q not allowed in NumericString", r)
			}
		}
	case T61String:
		if !utf8.ValidString(value) {
			return "not valid UTF-8"
		}
	case BMPString:
		if !utf8.ValidString(value) {
			return "not valid UTF-8"
		}
		for _, r := range value {
			if r > 0xFFFF || utf16.IsSurrogate(r) {
				return fmt.Sprintf("character %q outside the basic multilingual plane", r)
			}
		}
	case UTCTime:
		if _, err := time.Parse("060102150405Z", value); err != nil {
			return "not a YYMMDDHHMMSSZ timestamp"
		}
	case GeneralizedTime:
		if _, err := time.Parse("20060102150405Z", value); err != nil {
			return "not a YYYYMMDDHHMMSSZ timestamp"
		}
	}
	return ""
}

// isPrintableRune reports whether r belongs to the ASN.1
// PrintableString alphabet.
func isPrintableRune(r rune) bool {
	switch {
	case 'a' <= r && r <= 'z':
		return true
	case 'A' <= r && r <= 'Z':
		return true
	case '0' <= r && r <= '9':
		return true
	}
	switch r {
	case ' ', '\'', '(', ')', '+', ',', '-', '.', '/', ':', '=', '?':
		return true
	}
	return false
}
