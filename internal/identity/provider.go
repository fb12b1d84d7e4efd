package identity

import (
	"fmt"
	"strings"

	"shopforge/internal/sampling"
)

// Provider synthesizes plausible personal and business strings from
// fixed word pools. All draws come from the shared seeded source, so a
// run is reproducible end to end.
type Provider struct {
	src *sampling.Source
}

// NewProvider creates a Provider backed by the given random source.
func NewProvider(src *sampling.Source) *Provider {
	return &Provider{src: src}
}

func (p *Provider) pick(pool []string) string {
	return pool[p.src.Intn(len(pool))]
}

// FirstName returns a common given name.
func (p *Provider) FirstName() string { return p.pick(firstNames) }

// LastName returns a common family name.
func (p *Provider) LastName() string { return p.pick(lastNames) }

// StreetAddress returns a house number with street name and suffix.
func (p *Provider) StreetAddress() string {
	return fmt.Sprintf("%d %s %s", p.src.IntBetween(100, 9999), p.pick(streetNames), p.pick(streetSuffixes))
}

// City returns a town name.
func (p *Provider) City() string { return p.pick(cities) }

// StateAbbr returns a two-letter US state abbreviation.
func (p *Provider) StateAbbr() string { return p.pick(stateAbbrs) }

// PostalCode returns a five-digit ZIP code.
func (p *Provider) PostalCode() string {
	return fmt.Sprintf("%05d", p.src.IntBetween(10000, 99999))
}

// CompanyName returns a business name built from a surname and suffix.
func (p *Provider) CompanyName() string {
	if p.src.Float64() < 0.3 {
		return fmt.Sprintf("%s-%s %s", p.pick(lastNames), p.pick(lastNames), p.pick(companySuffixes))
	}
	return fmt.Sprintf("%s %s", p.pick(lastNames), p.pick(companySuffixes))
}

// CatchPhrase returns a three-part marketing phrase used for product
// names.
func (p *Provider) CatchPhrase() string {
	return strings.Join([]string{p.pick(phraseAdjectives), p.pick(phraseDescriptors), p.pick(phraseNouns)}, " ")
}

// PhoneNumber returns a ###-###-#### formatted number.
func (p *Provider) PhoneNumber() string {
	return fmt.Sprintf("%03d-%03d-%04d", p.src.IntBetween(200, 999), p.src.IntBetween(200, 999), p.src.IntBetween(0, 9999))
}
