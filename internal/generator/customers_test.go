package generator

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopforge/internal/config"
	"shopforge/internal/identity"
	"shopforge/internal/sampling"
)

func TestCustomerEmailsAreUniqueAndWellFormed(t *testing.T) {
	cfg := config.Default()
	cfg.Targets.Customers = 2000
	src := sampling.New(71)

	customers := NewCustomerGenerator(cfg, src, identity.NewProvider(src)).Generate()
	require.Len(t, customers, 2000)

	domains := make(map[string]bool, len(emailDomains))
	for _, d := range emailDomains {
		domains[d] = true
	}
	re := regexp.MustCompile(`^[a-z]+\.[a-z]+\d*@`)
	seen := make(map[string]bool, len(customers))
	for _, c := range customers {
		require.False(t, seen[c.Email], "duplicate email %q", c.Email)
		seen[c.Email] = true

		assert.Regexp(t, re, c.Email)
		at := strings.LastIndex(c.Email, "@")
		require.Greater(t, at, 0)
		assert.True(t, domains[c.Email[at+1:]], "unexpected domain in %q", c.Email)
	}
}

func TestBuildEmailResolvesCollisionsDeterministically(t *testing.T) {
	src := sampling.New(72)
	g := NewCustomerGenerator(config.Default(), src, identity.NewProvider(src))

	seen := map[string]bool{}
	first := g.buildEmail("Ada", "Lovelace", seen)
	second := g.buildEmail("Ada", "Lovelace", seen)

	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasPrefix(first, "ada.lovelace@"))
	assert.True(t, strings.HasPrefix(second, "ada.lovelace"))
}
