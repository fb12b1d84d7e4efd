package generator

import (
	"fmt"
	"strings"

	"shopforge/internal/config"
	"shopforge/internal/models"
	"shopforge/internal/sampling"
)

var emailDomains = []string{
	"example.com", "retailmail.com", "shopmail.com", "gmail.com", "outlook.com",
}

// CustomerGenerator produces the customer table with globally unique
// emails.
type CustomerGenerator struct {
	cfg   *config.Config
	src   *sampling.Source
	ident IdentityProvider
}

// NewCustomerGenerator creates a customer generator.
func NewCustomerGenerator(cfg *config.Config, src *sampling.Source, ident IdentityProvider) *CustomerGenerator {
	return &CustomerGenerator{cfg: cfg, src: src, ident: ident}
}

// Generate builds exactly cfg.Targets.Customers rows. The email
// uniqueness set lives only for the duration of this call.
func (g *CustomerGenerator) Generate() []models.Customer {
	customers := make([]models.Customer, 0, g.cfg.Targets.Customers)
	seenEmails := make(map[string]bool, g.cfg.Targets.Customers)
	for id := 1; id <= g.cfg.Targets.Customers; id++ {
		firstName := g.ident.FirstName()
		lastName := g.ident.LastName()
		customers = append(customers, models.Customer{
			ID:               id,
			FirstName:        firstName,
			LastName:         lastName,
			Email:            g.buildEmail(firstName, lastName, seenEmails),
			Phone:            g.ident.PhoneNumber(),
			Address:          g.ident.StreetAddress(),
			City:             g.ident.City(),
			State:            g.ident.StateAbbr(),
			Zip:              g.ident.PostalCode(),
			Country:          "USA",
			RegistrationDate: g.src.DateBetween(g.cfg.Dates.RegistrationStart, g.cfg.Dates.RegistrationEnd),
		})
	}
	return customers
}

// buildEmail forms first.last@domain and resolves collisions by
// appending an increasing numeric suffix. Deterministic, never fails.
func (g *CustomerGenerator) buildEmail(firstName, lastName string, seen map[string]bool) string {
	base := strings.ToLower(firstName) + "." + strings.ToLower(lastName)
	domain := emailDomains[g.src.Intn(len(emailDomains))]
	candidate := base + "@" + domain
	for suffix := 1; seen[candidate]; suffix++ {
		candidate = fmt.Sprintf("%s%d@%s", base, suffix, domain)
	}
	seen[candidate] = true
	return candidate
}
