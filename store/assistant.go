package store

import (
	"ak-storefront/models"
	"regexp"
)

// recommendationPattern matches the "ID: <token>" marker the style assistant
// is instructed to emit when it recommends a product.
var recommendationPattern = regexp.MustCompile(`(?i)ID:\s*([\w-]+)`)

// CatalogDigest is the catalog projection handed to the external style assistant.
func (s *Store) CatalogDigest() []models.CatalogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.CatalogEntry, len(s.products))
	for i, p := range s.products {
		out[i] = models.CatalogEntry{ID: p.ID, Name: p.Name(models.LanguageEnglish), Category: p.Category}
	}
	return out
}

// ResolveRecommendation finds the product referenced by an assistant reply.
// The reply itself is not stored.
func (s *Store) ResolveRecommendation(text string) (models.Product, bool) {
	m := recommendationPattern.FindStringSubmatch(text)
	if m == nil {
		return models.Product{}, false
	}
	return s.Product(m[1])
}
