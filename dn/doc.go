// Package dn implements the X.509 distinguished name data model:
// typed attribute/value pairs, relative distinguished names (RDNs),
// and ordered RDN sequences, with RFC 4514 text serialization and
// canonical DER output.
//
// # Overview
//
// The package provides:
//
//   - Attribute: one (OID, value, string type) triple with
//     construction-time character-set validation
//   - RDN: a non-empty attribute set with order-independent equality
//   - Name: an ordered RDN sequence with order-sensitive equality
//   - RFC 4514 rendering, escaping, and parsing
//   - DER encoding per RFC 5280, with the X.690 canonical SET OF sort
//
// # Building a Name
//
// Names are built from certificate order (least specific RDN first):
//
//	c, _ := dn.NewAttribute(oid.Country, "US")
//	o, _ := dn.NewAttribute(oid.Organization, "Example Corp")
//	cn, _ := dn.NewAttribute(oid.CommonName, "example.com")
//	name := dn.NewName(dn.MustNewRDN(c), dn.MustNewRDN(o), dn.MustNewRDN(cn))
//
//	name.String() // "CN=example.com,O=Example Corp,C=US"
//	der, _ := name.Bytes()
//
// The RFC 4514 string renders RDNs most specific first, the reverse of
// the stored order; the DER form keeps the stored order.
//
// # Equality
//
// All types are immutable values. Attribute equality is structural,
// RDN equality ignores insertion order, and Name equality is strictly
// positional. Equal names always produce identical DER bytes, so
// Name.Bytes output can serve as a map key.
package dn
