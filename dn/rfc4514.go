package dn

import (
	"encoding/asn1"
	"encoding/hex"
	"strings"
	"unicode/utf16"

	"github.com/oba-ldap/dnkit/oid"
)

// escapeValue applies the RFC 4514 section 2.4 escaping rules to an
// attribute value: the characters , + " \ < > ; always escape, # and
// space escape only at the start of the value, space also at the end,
// and NUL becomes \00.
func escapeValue(v string) string {
	var b strings.Builder
	b.Grow(len(v))
	for i := 0; i < len(v); i++ {
		c := v[i]
		switch {
		case c == ',' || c == '+' || c == '"' || c == '\\' || c == '<' || c == '>' || c == ';':
			b.WriteByte('\\')
			b.WriteByte(c)
		case c == '#' && i == 0:
			b.WriteByte('\\')
			b.WriteByte(c)
		case c == ' ' && (i == 0 || i == len(v)-1):
			b.WriteByte('\\')
			b.WriteByte(c)
		case c == 0:
			b.WriteString(`\00`)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// ParseName parses an RFC 4514 string into a Name. The textual form is
// most specific first, so the parsed RDNs are stored in reverse, which
// restores certificate order. The empty string parses to the empty
// (root) name.
//
// Legacy RFC 2253 forms are accepted on input: quoted values and
// #hex-encoded BER values.
func ParseName(s string) (Name, error) {
	if s == "" {
		return Name{}, nil
	}
	rdnParts, err := splitUnescaped(s, ',')
	if err != nil {
		return Name{}, err
	}
	rdns := make([]RDN, len(rdnParts))
	for i, part := range rdnParts {
		rdn, err := parseRDN(part)
		if err != nil {
			return Name{}, err
		}
		// Reverse into stored (certificate) order.
		rdns[len(rdnParts)-1-i] = rdn
	}
	return Name{rdns: rdns}, nil
}

// parseRDN parses one "attr=value" or "attr=value+attr=value" segment.
func parseRDN(s string) (RDN, error) {
	avaParts, err := splitUnescaped(s, '+')
	if err != nil {
		return RDN{}, err
	}
	attrs := make([]Attribute, len(avaParts))
	for i, part := range avaParts {
		a, err := parseAVA(part)
		if err != nil {
			return RDN{}, err
		}
		attrs[i] = a
	}
	return NewRDN(attrs...)
}

// parseAVA parses a single attributeTypeAndValue fragment.
func parseAVA(s string) (Attribute, error) {
	eq := indexUnescaped(s, '=')
	if eq < 0 {
		return Attribute{}, &MalformedStringError{Input: s, Reason: "missing '='"}
	}
	typ, err := parseAttributeType(strings.TrimSpace(s[:eq]))
	if err != nil {
		return Attribute{}, err
	}
	raw := s[eq+1:]
	if strings.HasPrefix(raw, "#") {
		value, st, err := decodeHexValue(raw)
		if err != nil {
			return Attribute{}, err
		}
		return NewAttributeTyped(typ, value, st)
	}
	value, err := unescapeValue(raw)
	if err != nil {
		return Attribute{}, err
	}
	return NewAttribute(typ, value)
}

// parseAttributeType resolves an attribute type descriptor: a short
// name such as CN, a dotted numeric OID, or the "OID."-prefixed dotted
// form this package emits for unregistered types.
func parseAttributeType(s string) (oid.OID, error) {
	if s == "" {
		return oid.OID{}, &MalformedStringError{Input: s, Reason: "empty attribute type"}
	}
	if o, ok := oid.ByShortName(s); ok {
		return o, nil
	}
	dotted := strings.TrimPrefix(s, "OID.")
	dotted = strings.TrimPrefix(dotted, "oid.")
	if o, err := oid.Parse(dotted); err == nil {
		return o, nil
	}
	return oid.OID{}, &MalformedStringError{Input: s, Reason: "unknown attribute type"}
}

// splitUnescaped splits s on every occurrence of sep that is neither
// escaped nor inside a quoted value.
func splitUnescaped(s string, sep byte) ([]string, error) {
	var parts []string
	var buf []byte
	esc := false
	quoted := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if esc {
			buf = append(buf, '\\', c)
			esc = false
			continue
		}
		switch c {
		case '\\':
			esc = true
			continue
		case '"':
			quoted = !quoted
		}
		if c == sep && !quoted {
			parts = append(parts, string(buf))
			buf = buf[:0]
			continue
		}
		buf = append(buf, c)
	}
	if esc {
		return nil, &MalformedStringError{Input: s, Reason: "dangling escape at end of input"}
	}
	if quoted {
		return nil, &MalformedStringError{Input: s, Reason: "unterminated quoted value"}
	}
	parts = append(parts, string(buf))
	return parts, nil
}

// indexUnescaped returns the index of the first unescaped occurrence
// of c in s, or -1.
func indexUnescaped(s string, c byte) int {
	esc := false
	for i := 0; i < len(s); i++ {
		if esc {
			esc = false
			continue
		}
		switch s[i] {
		case '\\':
			esc = true
		case c:
			return i
		}
	}
	return -1
}

// unescapeValue reverses escapeValue. A backslash must be followed by
// a special character or a hex pair; anything else is malformed.
func unescapeValue(v string) (string, error) {
	// Legacy RFC 2253 quoted value.
	if n := len(v); n >= 2 && v[0] == '"' && v[n-1] == '"' {
		v = v[1 : n-1]
	}
	var b strings.Builder
	b.Grow(len(v))
	for i := 0; i < len(v); i++ {
		c := v[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		if i+1 >= len(v) {
			return "", &MalformedStringError{Input: v, Reason: "dangling escape at end of value"}
		}
		next := v[i+1]
		if isEscapable(next) {
			b.WriteByte(next)
			i++
			continue
		}
		if i+2 < len(v) && isHexDigit(v[i+1]) && isHexDigit(v[i+2]) {
			decoded, err := hex.DecodeString(v[i+1 : i+3])
			if err != nil {
				return "", &MalformedStringError{Input: v, Reason: "invalid hex escape"}
			}
			b.WriteByte(decoded[0])
			i += 2
			continue
		}
		// A lone hex digit at the end of the value is also malformed.
		if isHexDigit(next) {
			return "", &MalformedStringError{Input: v, Reason: "truncated hex escape"}
		}
		return "", &MalformedStringError{Input: v, Reason: "invalid escape sequence \\" + string(next)}
	}
	return b.String(), nil
}

// isEscapable reports whether c may follow a backslash as a literal.
func isEscapable(c byte) bool {
	switch c {
	case ',', '+', '"', '\\', '<', '>', ';', '#', '=', ' ':
		return true
	}
	return false
}

// isHexDigit reports whether c is an ASCII hex digit.
func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// decodeHexValue decodes the legacy "#<hex>" value form: the hex
// string is the BER encoding of the attribute value, so both the
// string type and the value are recovered from it.
func decodeHexValue(raw string) (string, StringType, error) {
	buf, err := hex.DecodeString(raw[1:])
	if err != nil {
		return "", 0, &MalformedStringError{Input: raw, Reason: "invalid hex string"}
	}
	var rv asn1.RawValue
	rest, err := asn1.Unmarshal(buf, &rv)
	if err != nil || len(rest) != 0 {
		return "", 0, &MalformedStringError{Input: raw, Reason: "hex string is not a BER value"}
	}
	switch rv.Tag {
	case asn1.TagUTF8String:
		return string(rv.Bytes), UTF8String, nil
	case asn1.TagPrintableString:
		return string(rv.Bytes), PrintableString, nil
	case asn1.TagIA5String:
		return string(rv.Bytes), IA5String, nil
	case asn1.TagNumericString:
		return string(rv.Bytes), NumericString, nil
	case asn1.TagT61String:
		return string(rv.Bytes), T61String, nil
	case asn1.TagUTCTime:
		return string(rv.Bytes), UTCTime, nil
	case asn1.TagGeneralizedTime:
		return string(rv.Bytes), GeneralizedTime, nil
	case tagVisibleString:
		return string(rv.Bytes), VisibleString, nil
	case asn1.TagBMPString:
		if len(rv.Bytes)%2 != 0 {
			return "", 0, &MalformedStringError{Input: raw, Reason: "odd-length BMPString"}
		}
		units := make([]uint16, len(rv.Bytes)/2)
		for i := range units {
			units[i] = uint16(rv.Bytes[2*i])<<8 | uint16(rv.Bytes[2*i+1])
		}
		return string(utf16.Decode(units)), BMPString, nil
	case tagUniversalString:
		if len(rv.Bytes)%4 != 0 {
			return "", 0, &MalformedStringError{Input: raw, Reason: "invalid UniversalString length"}
		}
		runes := make([]rune, len(rv.Bytes)/4)
		for i := range runes {
			runes[i] = rune(rv.Bytes[4*i])<<24 | rune(rv.Bytes[4*i+1])<<16 |
				rune(rv.Bytes[4*i+2])<<8 | rune(rv.Bytes[4*i+3])
		}
		return string(runes), UniversalString, nil
	default:
		return "", 0, &MalformedStringError{Input: raw, Reason: "unsupported tag in hex value"}
	}
}

// Universal tags encoding/asn1 has no constant for.
const (
	tagVisibleString   = 26
	tagUniversalString = 28
)
