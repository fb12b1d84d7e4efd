package generator

// IdentityProvider supplies the synthetic personal and business strings
// the generators need. It must draw from the same seeded source as the
// rest of the run to keep output reproducible.
type IdentityProvider interface {
	FirstName() string
	LastName() string
	StreetAddress() string
	City() string
	StateAbbr() string
	PostalCode() string
	CompanyName() string
	CatchPhrase() string
	PhoneNumber() string
}
