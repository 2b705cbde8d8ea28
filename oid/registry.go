package oid

// Well-known X.520 and PKCS#9 attribute type identifiers.
var (
	CommonName           = MustParse("2.5.4.3")
	Surname              = MustParse("2.5.4.4")
	SerialNumber         = MustParse("2.5.4.5")
	Country              = MustParse("2.5.4.6")
	Locality             = MustParse("2.5.4.7")
	StateOrProvince      = MustParse("2.5.4.8")
	StreetAddress        = MustParse("2.5.4.9")
	Organization         = MustParse("2.5.4.10")
	OrganizationalUnit   = MustParse("2.5.4.11")
	Title                = MustParse("2.5.4.12")
	Description          = MustParse("2.5.4.13")
	SearchGuide          = MustParse("2.5.4.14")
	BusinessCategory     = MustParse("2.5.4.15")
	PostalAddress        = MustParse("2.5.4.16")
	PostalCode           = MustParse("2.5.4.17")
	PostOfficeBox        = MustParse("2.5.4.18")
	TelephoneNumber      = MustParse("2.5.4.20")
	Name                 = MustParse("2.5.4.41")
	GivenName            = MustParse("2.5.4.42")
	Initials             = MustParse("2.5.4.43")
	GenerationQualifier  = MustParse("2.5.4.44")
	UniqueIdentifier     = MustParse("2.5.4.45")
	DNQualifier          = MustParse("2.5.4.46")
	Pseudonym            = MustParse("2.5.4.65")
	DomainComponent      = MustParse("0.9.2342.19200300.100.1.25")
	UserID               = MustParse("0.9.2342.19200300.100.1.1")
	EmailAddress         = MustParse("1.2.840.113549.1.9.1")
	UnstructuredName     = MustParse("1.2.840.113549.1.9.2")
	JurisdictionLocality = MustParse("1.3.6.1.4.1.311.60.2.1.1")
	JurisdictionState    = MustParse("1.3.6.1.4.1.311.60.2.1.2")
	JurisdictionCountry  = MustParse("1.3.6.1.4.1.311.60.2.1.3")
)

// shortNames holds the attribute types RFC 4514 section 3 gives a
// registered short name. Only these abbreviate in DN strings; every
// other attribute type renders in dotted form.
var shortNames = map[OID]string{
	CommonName:         "CN",
	Locality:           "L",
	StateOrProvince:    "ST",
	Organization:       "O",
	OrganizationalUnit: "OU",
	Country:            "C",
	StreetAddress:      "STREET",
	DomainComponent:    "DC",
	UserID:             "UID",
}

// byShortName is the inverse of shortNames, keyed by upper-case name.
var byShortName = func() map[string]OID {
	m := make(map[string]OID, len(shortNames))
	for o, n := range shortNames {
		m[n] = o
	}
	return m
}()

// descriptiveNames maps well-known attribute types to their X.520
// descriptor, for diagnostics and lookup tooling.
var descriptiveNames = map[OID]string{
	CommonName:           "commonName",
	Surname:              "surname",
	SerialNumber:         "serialNumber",
	Country:              "countryName",
	Locality:             "localityName",
	StateOrProvince:      "stateOrProvinceName",
	StreetAddress:        "streetAddress",
	Organization:         "organizationName",
	OrganizationalUnit:   "organizationalUnitName",
	Title:                "title",
	Description:          "description",
	SearchGuide:          "searchGuide",
	BusinessCategory:     "businessCategory",
	PostalAddress:        "postalAddress",
	PostalCode:           "postalCode",
	PostOfficeBox:        "postOfficeBox",
	TelephoneNumber:      "telephoneNumber",
	Name:                 "name",
	GivenName:            "givenName",
	Initials:             "initials",
	GenerationQualifier:  "generationQualifier",
	UniqueIdentifier:     "x500UniqueIdentifier",
	DNQualifier:          "dnQualifier",
	Pseudonym:            "pseudonym",
	DomainComponent:      "domainComponent",
	UserID:               "userId",
	EmailAddress:         "emailAddress",
	UnstructuredName:     "unstructuredName",
	JurisdictionLocality: "jurisdictionLocalityName",
	JurisdictionState:    "jurisdictionStateOrProvinceName",
	JurisdictionCountry:  "jurisdictionCountryName",
}

// upperBounds holds the X.520 upper bounds on attribute value length,
// counted in characters.
// https://www.itu.int/ITU-T/formal-language/itu-t/x/x520/2001/UpperBounds.html
var upperBounds = map[OID]int{
	CommonName:          64,
	Surname:             40,
	SerialNumber:        64,
	Country:             2,
	Locality:            128,
	StateOrProvince:     128,
	StreetAddress:       128,
	Organization:        64,
	OrganizationalUnit:  64,
	Title:               64,
	Description:         1024,
	BusinessCategory:    128,
	PostalCode:          40,
	PostOfficeBox:       40,
	TelephoneNumber:     32,
	GivenName:           16,
	Initials:            5,
	GenerationQualifier: 3,
	Pseudonym:           128,
	EmailAddress:        255,
}

// ShortName returns the RFC 4514 short name registered for o, if any.
func ShortName(o OID) (string, bool) {
	n, ok := shortNames[o]
	return n, ok
}

// ByShortName resolves an RFC 4514 short name, case-insensitively.
func ByShortName(name string) (OID, bool) {
	o, ok := byShortName[upper(name)]
	return o, ok
}

// DescriptiveName returns the X.520 descriptor for o, if registered.
func DescriptiveName(o OID) (string, bool) {
	n, ok := descriptiveNames[o]
	return n, ok
}

// UpperBound returns the X.520 upper bound on value length for o, in
// characters. The second result is false when no bound is registered.
func UpperBound(o OID) (int, bool) {
	n, ok := upperBounds[o]
	return n, ok
}

// upper ASCII-uppercases s. Short names are always ASCII.
func upper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'a' <= c && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}
