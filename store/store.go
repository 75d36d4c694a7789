// Package store holds the storefront's authoritative state: catalog, cart, orders,
// wishlist, recently viewed products, reviews, language and session.
//
// Every slice is hydrated from a vault.Store when the Store is built and written
// back synchronously by each mutation, before the mutation returns. Operations are
// serialized by a single mutex, so they are observed in the order they were issued.
package store

import (
	"ak-storefront/models"
	"ak-storefront/vault"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Persisted slice keys. The vault adds its own namespace prefix.
const (
	KeySession  = "active_session"
	KeyLanguage = "lang"
	KeyProducts = "products"
	KeyCart     = "cart"
	KeyOrders   = "orders"
	KeyWishlist = "wishlist"
	KeyRecent   = "recent"
	KeyReviews  = "reviews"
)

// CartPolicy decides what AddToCart does with a line identical to an existing one.
type CartPolicy string

const (
	// CartAppend always adds a new line.
	CartAppend CartPolicy = "append"
	// CartMerge adds the quantity to the existing line with the same product, size and color.
	CartMerge CartPolicy = "merge"
)

// Store is the storefront domain state. Build it with New; the zero value is not usable.
type Store struct {
	mu sync.Mutex

	kv             *vault.Store
	logger         *log.Logger
	now            func() time.Time
	newID          func() string
	cartPolicy     CartPolicy
	deliveryFee    float64
	freeThreshold  float64
	seed           []models.Product
	onPersistError func(slice string, err error)

	session   *models.User
	language  models.Language
	products  []models.Product
	cart      []models.CartItem
	orders    []models.Order
	wishlist  []string
	recent    []string
	reviews   []models.Review
	hydration map[string]vault.ReadStatus
}

// Option configures a Store.
type Option func(*Store)

// WithSeedCatalog replaces the built-in catalog used when no products are persisted.
// An empty catalog is ignored.
func WithSeedCatalog(products []models.Product) Option {
	return func(s *Store) {
		if len(products) > 0 {
			s.seed = products
		}
	}
}

// WithCartPolicy sets how identical cart lines are handled.
func WithCartPolicy(p CartPolicy) Option {
	return func(s *Store) {
		if p == CartAppend || p == CartMerge {
			s.cartPolicy = p
		}
	}
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides the uuid generator used for products, cart lines and reviews.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// WithLogger sets the logger for persistence failures.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithDeliveryFee sets the delivery fee charged on subtotals below threshold.
func WithDeliveryFee(fee, threshold float64) Option {
	return func(s *Store) {
		s.deliveryFee = fee
		s.freeThreshold = threshold
	}
}

// WithPersistErrorHandler registers fn to be called whenever a slice fails to persist.
func WithPersistErrorHandler(fn func(slice string, err error)) Option {
	return func(s *Store) { s.onPersistError = fn }
}

// New builds a Store and hydrates every slice from kv. Missing or corrupt slices
// start from their defaults; Hydration reports which.
func New(kv *vault.Store, opts ...Option) *Store {
	s := &Store{
		kv:         kv,
		logger:     log.Default(),
		now:        time.Now,
		newID:      uuid.NewString,
		cartPolicy: CartAppend,
		seed:       DefaultCatalog(),
		hydration:  make(map[string]vault.ReadStatus),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.hydrate()
	return s
}

func (s *Store) hydrate() {
	var status vault.ReadStatus

	s.session, status = vault.ReadOr[*models.User](s.kv, KeySession, nil)
	s.hydration[KeySession] = status

	s.language, status = vault.ReadOr(s.kv, KeyLanguage, models.LanguageEnglish)
	if !s.language.Valid() {
		s.language, status = models.LanguageEnglish, vault.Corrupt
	}
	s.hydration[KeyLanguage] = status

	s.products, status = vault.ReadOr[[]models.Product](s.kv, KeyProducts, nil)
	if status != vault.Loaded {
		s.products = s.seedCatalog()
	}
	s.hydration[KeyProducts] = status

	s.cart, status = vault.ReadOr(s.kv, KeyCart, []models.CartItem{})
	s.hydration[KeyCart] = status
	if s.assignMissingLineIDs() {
		s.persist(KeyCart, s.cart)
	}

	s.orders, status = vault.ReadOr(s.kv, KeyOrders, []models.Order{})
	s.hydration[KeyOrders] = status

	s.wishlist, status = vault.ReadOr(s.kv, KeyWishlist, []string{})
	s.wishlist = distinct(s.wishlist)
	s.hydration[KeyWishlist] = status

	s.recent, status = vault.ReadOr(s.kv, KeyRecent, []string{})
	s.recent = distinct(s.recent)
	if len(s.recent) > RecentlyViewedLimit {
		s.recent = s.recent[:RecentlyViewedLimit]
	}
	s.hydration[KeyRecent] = status

	s.reviews, status = vault.ReadOr(s.kv, KeyReviews, []models.Review{})
	s.hydration[KeyReviews] = status

	// A persisted JSON null decodes as a nil slice; keep them non-nil for callers.
	if s.products == nil {
		s.products = []models.Product{}
	}
	if s.cart == nil {
		s.cart = []models.CartItem{}
	}
	if s.orders == nil {
		s.orders = []models.Order{}
	}
	if s.wishlist == nil {
		s.wishlist = []string{}
	}
	if s.recent == nil {
		s.recent = []string{}
	}
	if s.reviews == nil {
		s.reviews = []models.Review{}
	}
}

func (s *Store) seedCatalog() []models.Product {
	out := make([]models.Product, len(s.seed))
	for i, p := range s.seed {
		out[i] = p.Clone()
		if out[i].CreatedAt.IsZero() {
			out[i].CreatedAt = s.now()
		}
	}
	return out
}

// assignMissingLineIDs gives an id to cart lines stored before lines had one.
func (s *Store) assignMissingLineIDs() bool {
	changed := false
	for i := range s.cart {
		if s.cart[i].LineID == "" {
			s.cart[i].LineID = s.newID()
			changed = true
		}
	}
	return changed
}

// persist writes one slice. A failed write leaves the in-memory mutation in place.
func (s *Store) persist(key string, value any) {
	if err := s.kv.Save(key, value); err != nil {
		s.persistFailed(key, err)
	}
}

func (s *Store) clearKey(key string) {
	if err := s.kv.Clear(key); err != nil {
		s.persistFailed(key, err)
	}
}

func (s *Store) persistFailed(key string, err error) {
	s.logger.Printf("store: %s not persisted: %v", key, err)
	if s.onPersistError != nil {
		s.onPersistError(key, err)
	}
}

// Hydration reports how each slice was loaded at construction.
func (s *Store) Hydration() map[string]vault.ReadStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]vault.ReadStatus, len(s.hydration))
	for k, v := range s.hydration {
		out[k] = v
	}
	return out
}

// Session returns a copy of the active user, or nil.
func (s *Store) Session() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil
	}
	u := *s.session
	return &u
}

// SetSession replaces the active user. Nil clears the persisted session.
func (s *Store) SetSession(u *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u == nil {
		s.session = nil
		s.clearKey(KeySession)
		return
	}
	cp := *u
	s.session = &cp
	s.persist(KeySession, s.session)
}

// Logout ends the session and empties the cart, in memory and in storage.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = nil
	s.cart = []models.CartItem{}
	s.clearKey(KeySession)
	s.clearKey(KeyCart)
}

// Language returns the active locale.
func (s *Store) Language() models.Language {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.language
}

// SetLanguage switches the active locale.
func (s *Store) SetLanguage(lang models.Language) error {
	if !lang.Valid() {
		return ErrInvalidLanguage
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.language = lang
	s.persist(KeyLanguage, s.language)
	return nil
}
