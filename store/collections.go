package store

import (
	"ak-storefront/models"
	"fmt"
	"strings"
)

// RecentlyViewedLimit caps the recently viewed list.
const RecentlyViewedLimit = 10

// MaxRating is the highest star rating a review can carry.
const MaxRating = 5

// Wishlist returns the wishlisted product ids, most recently added first.
func (s *Store) Wishlist() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string{}, s.wishlist...)
}

// IsInWishlist reports whether id is wishlisted.
func (s *Store) IsInWishlist(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return contains(s.wishlist, id)
}

// ToggleWishlist adds id to the front of the wishlist, or removes it if present.
// It returns the new membership.
func (s *Store) ToggleWishlist(id string) bool {
	if id == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if w, removed := without(s.wishlist, id); removed {
		s.wishlist = w
		s.persist(KeyWishlist, s.wishlist)
		return false
	}
	s.wishlist = append([]string{id}, s.wishlist...)
	s.persist(KeyWishlist, s.wishlist)
	return true
}

// RecentlyViewed returns product ids, most recent first.
func (s *Store) RecentlyViewed() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string{}, s.recent...)
}

// AddRecentlyViewed moves id to the front of the list, keeping at most RecentlyViewedLimit ids.
func (s *Store) AddRecentlyViewed(id string) {
	if id == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.addRecentlyViewedLocked(id)
}

func (s *Store) addRecentlyViewedLocked(id string) {
	rest, _ := without(s.recent, id)
	next := append([]string{id}, rest...)
	if len(next) > RecentlyViewedLimit {
		next = next[:RecentlyViewedLimit]
	}
	s.recent = next
	s.persist(KeyRecent, s.recent)
}

// Reviews returns reviews for productID, newest first. An empty id returns all reviews.
func (s *Store) Reviews(productID string) []models.Review {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.Review{}
	for _, r := range s.reviews {
		if productID == "" || r.ProductID == productID {
			r.Photos = append([]string{}, r.Photos...)
			out = append(out, r)
		}
	}
	return out
}

// AddReview validates r and puts it at the front of the reviews.
// A missing user name falls back to the session user, then to "Guest".
func (s *Store) AddReview(r models.Review) (models.Review, error) {
	switch {
	case r.ProductID == "":
		return models.Review{}, fmt.Errorf("%w: product id is required", ErrInvalidReview)
	case r.Rating < 1 || r.Rating > MaxRating:
		return models.Review{}, fmt.Errorf("%w: rating must be between 1 and %d", ErrInvalidReview, MaxRating)
	case strings.TrimSpace(r.Comment) == "" && len(r.Photos) == 0:
		return models.Review{}, fmt.Errorf("%w: a comment or a photo is required", ErrInvalidReview)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if r.ID == "" {
		r.ID = s.newID()
	}
	if r.Date == "" {
		r.Date = s.now().Format("2006-01-02")
	}
	if strings.TrimSpace(r.UserName) == "" {
		r.UserName = "Guest"
		if s.session != nil && s.session.Name != "" {
			r.UserName = s.session.Name
		}
	}
	r.Comment = strings.TrimSpace(r.Comment)
	r.Photos = append([]string{}, r.Photos...)

	s.reviews = append([]models.Review{r}, s.reviews...)
	s.persist(KeyReviews, s.reviews)
	r.Photos = append([]string{}, r.Photos...)
	return r, nil
}
