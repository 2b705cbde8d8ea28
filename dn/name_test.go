package dn

import (
	"bytes"
	"crypto/x509/pkix"
	"encoding/asn1"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/oba-ldap/dnkit/oid"
)

func exampleName(t *testing.T) Name {
	t.Helper()
	return NewName(
		MustNewRDN(mustAttr(t, oid.Country, "US")),
		MustNewRDN(mustAttr(t, oid.Organization, "Example Corp")),
		MustNewRDN(mustAttr(t, oid.CommonName, "example.com")),
	)
}

func TestName_String(t *testing.T) {
	t.Run("reverses stored order", func(t *testing.T) {
		want := "CN=example.com,O=Example Corp,C=US"
		if got := exampleName(t).String(); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		if got := NewName().String(); got != "" {
			t.Errorf("expected empty string, got %q", got)
		}
	})

	t.Run("single rdn", func(t *testing.T) {
		n := NewName(MustNewRDN(mustAttr(t, oid.CommonName, "example.com")))
		if got := n.String(); got != "CN=example.com" {
			t.Errorf("expected CN=example.com, got %q", got)
		}
	})

	t.Run("multi-valued rdn keeps insertion order", func(t *testing.T) {
		n := NewName(
			MustNewRDN(mustAttr(t, oid.Country, "US")),
			MustNewRDN(
				mustAttr(t, oid.OrganizationalUnit, "Sales"),
				mustAttr(t, oid.CommonName, "alice"),
			),
		)
		want := "OU=Sales+CN=alice,C=US"
		if got := n.String(); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})
}

func TestName_Equal(t *testing.T) {
	us := MustNewRDN(mustAttr(t, oid.Country, "US"))
	corp := MustNewRDN(mustAttr(t, oid.Organization, "Example Corp"))

	if !NewName(us, corp).Equal(NewName(us, corp)) {
		t.Error("expected identical sequences to be equal")
	}
	if NewName(us, corp).Equal(NewName(corp, us)) {
		t.Error("expected reversed sequences to be unequal")
	}
	if NewName(us).Equal(NewName(us, corp)) {
		t.Error("expected differing lengths to be unequal")
	}
	if !NewName().Equal(NewName()) {
		t.Error("expected empty names to be equal")
	}

	// RDN-level set semantics still apply inside a position.
	cn := mustAttr(t, oid.CommonName, "x")
	ou := mustAttr(t, oid.OrganizationalUnit, "y")
	if !NewName(MustNewRDN(cn, ou)).Equal(NewName(MustNewRDN(ou, cn))) {
		t.Error("expected names equal when RDN attribute order differs")
	}
}

func TestName_AttributesForOID(t *testing.T) {
	ou1 := mustAttr(t, oid.OrganizationalUnit, "Sales")
	ou2 := mustAttr(t, oid.OrganizationalUnit, "Engineering")
	n := NewName(
		MustNewRDN(mustAttr(t, oid.Country, "US")),
		MustNewRDN(ou1),
		MustNewRDN(ou2, mustAttr(t, oid.CommonName, "x")),
	)

	got := n.AttributesForOID(oid.OrganizationalUnit)
	if len(got) != 2 || got[0] != ou1 || got[1] != ou2 {
		t.Errorf("expected RDN-then-attribute order, got %v", got)
	}
	if miss := n.AttributesForOID(oid.Locality); len(miss) != 0 {
		t.Errorf("expected empty result on miss, got %v", miss)
	}
}

func TestName_RDNsCopied(t *testing.T) {
	n := exampleName(t)
	rdns := n.RDNs()
	rdns[0] = MustNewRDN(mustAttr(t, oid.Country, "DE"))
	if n.RDNs()[0].String() != "C=US" {
		t.Error("Name mutated through RDNs result")
	}
}

func TestName_Bytes(t *testing.T) {
	t.Run("empty name is empty sequence", func(t *testing.T) {
		got, err := NewName().Bytes()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.Equal(got, []byte{0x30, 0x00}) {
			t.Errorf("expected 30 00, got % x", got)
		}
	})

	t.Run("single utf8 attribute", func(t *testing.T) {
		a, err := NewAttribute(oid.CommonName, "ab")
		if err != nil {
			t.Fatal(err)
		}
		got, err := NewName(MustNewRDN(a)).Bytes()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []byte{
			0x30, 0x0d, // SEQUENCE
			0x31, 0x0b, // SET
			0x30, 0x09, // SEQUENCE
			0x06, 0x03, 0x55, 0x04, 0x03, // OID 2.5.4.3
			0x0c, 0x02, 'a', 'b', // UTF8String "ab"
		}
		if !bytes.Equal(got, want) {
			t.Errorf("expected % x, got % x", want, got)
		}
	})

	t.Run("rdns encode in stored order", func(t *testing.T) {
		raw, err := exampleName(t).Bytes()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var seq pkix.RDNSequence
		rest, err := asn1.Unmarshal(raw, &seq)
		if err != nil {
			t.Fatalf("stdlib failed to decode output: %v", err)
		}
		if len(rest) != 0 {
			t.Fatalf("trailing bytes after RDNSequence: % x", rest)
		}
		want := pkix.RDNSequence{
			{{Type: asn1.ObjectIdentifier{2, 5, 4, 6}, Value: "US"}},
			{{Type: asn1.ObjectIdentifier{2, 5, 4, 10}, Value: "Example Corp"}},
			{{Type: asn1.ObjectIdentifier{2, 5, 4, 3}, Value: "example.com"}},
		}
		if diff := cmp.Diff(want, seq); diff != "" {
			t.Errorf("decoded RDNSequence mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("matches stdlib encoding for printable values", func(t *testing.T) {
		c, err := NewAttributeTyped(oid.Country, "US", PrintableString)
		if err != nil {
			t.Fatal(err)
		}
		cn, err := NewAttributeTyped(oid.CommonName, "example.com", PrintableString)
		if err != nil {
			t.Fatal(err)
		}
		got, err := NewName(MustNewRDN(c), MustNewRDN(cn)).Bytes()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want, err := asn1.Marshal(pkix.RDNSequence{
			{{Type: asn1.ObjectIdentifier{2, 5, 4, 6}, Value: "US"}},
			{{Type: asn1.ObjectIdentifier{2, 5, 4, 3}, Value: "example.com"}},
		})
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("expected % x, got % x", want, got)
		}
	})

	t.Run("multi-valued rdn is byte-stable", func(t *testing.T) {
		cn := mustAttr(t, oid.CommonName, "alice")
		ou := mustAttr(t, oid.OrganizationalUnit, "Sales")

		forward, err := NewName(MustNewRDN(cn, ou)).Bytes()
		if err != nil {
			t.Fatal(err)
		}
		reversed, err := NewName(MustNewRDN(ou, cn)).Bytes()
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(forward, reversed) {
			t.Errorf("DER output depends on attribute insertion order:\n% x\n% x", forward, reversed)
		}
	})

	t.Run("bmp value transcodes", func(t *testing.T) {
		a, err := NewAttributeTyped(oid.CommonName, "ab", BMPString)
		if err != nil {
			t.Fatal(err)
		}
		raw, err := NewName(MustNewRDN(a)).Bytes()
		if err != nil {
			t.Fatal(err)
		}
		want := []byte{
			0x30, 0x0f,
			0x31, 0x0d,
			0x30, 0x0b,
			0x06, 0x03, 0x55, 0x04, 0x03,
			0x1e, 0x04, 0x00, 'a', 0x00, 'b', // BMPString UCS-2
		}
		if !bytes.Equal(raw, want) {
			t.Errorf("expected % x, got % x", want, raw)
		}
	})
}

// TestName_RoundTrip encodes a name, decodes it with the standard
// library, rebuilds a Name from the decoded sequence, and expects
// structural equality.
func TestName_RoundTrip(t *testing.T) {
	original := NewName(
		MustNewRDN(mustAttr(t, oid.Country, "US")),
		MustNewRDN(mustAttr(t, oid.StateOrProvince, "California")),
		MustNewRDN(mustAttr(t, oid.Organization, "Example Corp")),
		MustNewRDN(mustAttr(t, oid.CommonName, "example.com")),
	)
	raw, err := original.Bytes()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var seq pkix.RDNSequence
	if _, err := asn1.Unmarshal(raw, &seq); err != nil {
		t.Fatalf("stdlib failed to decode output: %v", err)
	}

	rdns := make([]RDN, 0, len(seq))
	for _, set := range seq {
		attrs := make([]Attribute, 0, len(set))
		for _, atv := range set {
			typ, err := oid.New(atv.Type...)
			if err != nil {
				t.Fatal(err)
			}
			value, ok := atv.Value.(string)
			if !ok {
				t.Fatalf("unexpected decoded value %T", atv.Value)
			}
			a, err := NewAttribute(typ, value)
			if err != nil {
				t.Fatal(err)
			}
			attrs = append(attrs, a)
		}
		rdn, err := NewRDN(attrs...)
		if err != nil {
			t.Fatal(err)
		}
		rdns = append(rdns, rdn)
	}

	rebuilt := NewName(rdns...)
	if !original.Equal(rebuilt) {
		t.Errorf("round trip changed the name: %q != %q", original, rebuilt)
	}
}
