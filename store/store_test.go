package store

import (
	"ak-storefront/models"
	"ak-storefront/vault"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	quietLogger = log.New(io.Discard, "", 0)
	fixedNow    = time.Date(2026, time.October, 14, 15, 4, 5, 0, time.UTC)
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newTestStore(t *testing.T, backend vault.Backend, opts ...Option) *Store {
	t.Helper()
	base := []Option{
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(sequentialIDs()),
		WithLogger(quietLogger),
	}
	return New(vault.NewStore(backend, quietLogger), append(base, opts...)...)
}

func product(id string, price float64, stock int) models.Product {
	return models.Product{
		ID:       id,
		NameEn:   "Product " + id,
		NameAr:   "منتج " + id,
		Price:    price,
		Category: models.CategoryWomen,
		Sizes:    []string{"S", "M"},
		Colors:   []string{"Black"},
		Images:   []string{"https://img/" + id + ".jpg"},
		Stock:    stock,
	}
}

func TestFreshStoreDefaults(t *testing.T) {
	s := newTestStore(t, vault.NewMemoryBackend())

	assert.GreaterOrEqual(t, len(s.Products()), 1)
	assert.Equal(t, "m1", s.Products()[0].ID)
	assert.Empty(t, s.Cart())
	assert.Empty(t, s.Orders())
	assert.Empty(t, s.Wishlist())
	assert.Empty(t, s.RecentlyViewed())
	assert.Empty(t, s.Reviews(""))
	assert.Nil(t, s.Session())
	assert.Equal(t, models.LanguageEnglish, s.Language())

	for key, status := range s.Hydration() {
		assert.Equal(t, vault.Missing, status, key)
	}
}

func TestHydrationFallsBackOnCorruptSlices(t *testing.T) {
	mem := vault.NewMemoryBackend()
	require.NoError(t, mem.Set("ak_vault_products", "not base64 at all!"))
	require.NoError(t, mem.Set("ak_vault_lang", mustEncode(t, "fr")))

	s := newTestStore(t, mem)

	assert.Equal(t, "m1", s.Products()[0].ID)
	assert.Equal(t, models.LanguageEnglish, s.Language())
	h := s.Hydration()
	assert.Equal(t, vault.Corrupt, h[KeyProducts])
	assert.Equal(t, vault.Corrupt, h[KeyLanguage])
	assert.Equal(t, vault.Missing, h[KeyCart])
}

func TestSeedCatalogOption(t *testing.T) {
	s := newTestStore(t, vault.NewMemoryBackend(), WithSeedCatalog([]models.Product{product("w1", 90, 3)}))

	require.Len(t, s.Products(), 1)
	assert.Equal(t, "w1", s.Products()[0].ID)
	assert.Equal(t, fixedNow, s.Products()[0].CreatedAt)
}

func TestStateSurvivesRestart(t *testing.T) {
	mem := vault.NewMemoryBackend()
	s := newTestStore(t, mem)

	s.SetSession(&models.User{ID: "u1", Name: "Aisha", LoginMethod: models.LoginPhone, Identifier: "+97455555555"})
	require.NoError(t, s.SetLanguage(models.LanguageArabic))
	_, err := s.AddProductToCart(models.AddToCartRequest{ProductID: "m1", Quantity: 2, SelectedSize: "M", SelectedColor: "Black"})
	require.NoError(t, err)
	s.ToggleWishlist("m1")
	s.AddRecentlyViewed("m1")
	_, err = s.AddReview(models.Review{ProductID: "m1", Rating: 5, Comment: "ممتاز"})
	require.NoError(t, err)

	reopened := newTestStore(t, mem)

	assert.Equal(t, s.Session(), reopened.Session())
	assert.Equal(t, models.LanguageArabic, reopened.Language())
	assert.Equal(t, s.Cart(), reopened.Cart())
	assert.Equal(t, s.Products(), reopened.Products())
	assert.Equal(t, []string{"m1"}, reopened.Wishlist())
	assert.Equal(t, []string{"m1"}, reopened.RecentlyViewed())
	assert.Equal(t, s.Reviews(""), reopened.Reviews(""))
	h := reopened.Hydration()
	for _, key := range []string{KeySession, KeyLanguage, KeyCart, KeyWishlist, KeyRecent, KeyReviews} {
		assert.Equal(t, vault.Loaded, h[key], key)
	}
	assert.Equal(t, vault.Missing, h[KeyOrders])
}

func TestLegacyCartLinesGetIDs(t *testing.T) {
	mem := vault.NewMemoryBackend()
	legacy := []models.CartItem{{Product: product("w1", 50, 2), Quantity: 1}}
	require.NoError(t, mem.Set("ak_vault_cart", mustEncode(t, legacy)))

	s := newTestStore(t, mem)

	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, "id-1", cart[0].LineID)
	assert.Equal(t, cart, newTestStore(t, mem).Cart())
}

func TestLogoutClearsSessionAndCart(t *testing.T) {
	mem := vault.NewMemoryBackend()
	s := newTestStore(t, mem)

	s.SetSession(&models.User{ID: "u1", Name: "Omar", LoginMethod: models.LoginEmail, Identifier: "omar@example.com"})
	_, err := s.AddProductToCart(models.AddToCartRequest{ProductID: "m1", Quantity: 1})
	require.NoError(t, err)

	s.Logout()

	assert.Nil(t, s.Session())
	assert.Empty(t, s.Cart())
	_, err = mem.Get("ak_vault_active_session")
	assert.ErrorIs(t, err, vault.ErrNotFound)
	_, err = mem.Get("ak_vault_cart")
	assert.ErrorIs(t, err, vault.ErrNotFound)

	reopened := newTestStore(t, mem)
	assert.Nil(t, reopened.Session())
	assert.Empty(t, reopened.Cart())
}

func TestSetSessionNilClearsPersistedSession(t *testing.T) {
	mem := vault.NewMemoryBackend()
	s := newTestStore(t, mem)

	s.SetSession(&models.User{ID: "u1"})
	s.SetSession(nil)

	_, err := mem.Get("ak_vault_active_session")
	assert.ErrorIs(t, err, vault.ErrNotFound)
}

func TestSessionIsACopy(t *testing.T) {
	s := newTestStore(t, vault.NewMemoryBackend())
	u := &models.User{ID: "u1", Name: "Noor"}
	s.SetSession(u)

	u.Name = "changed"
	got := s.Session()
	got.Name = "also changed"

	assert.Equal(t, "Noor", s.Session().Name)
}

func TestSetLanguageRejectsUnknown(t *testing.T) {
	s := newTestStore(t, vault.NewMemoryBackend())

	assert.ErrorIs(t, s.SetLanguage("fr"), ErrInvalidLanguage)
	assert.Equal(t, models.LanguageEnglish, s.Language())
}

type brokenBackend struct {
	*vault.MemoryBackend
	fail bool
}

func (b *brokenBackend) Set(key, value string) error {
	if b.fail {
		return errors.New("disk full")
	}
	return b.MemoryBackend.Set(key, value)
}

func TestPersistFailureKeepsInMemoryState(t *testing.T) {
	backend := &brokenBackend{MemoryBackend: vault.NewMemoryBackend()}
	var failed []string
	s := newTestStore(t, backend, WithPersistErrorHandler(func(slice string, err error) {
		failed = append(failed, slice)
	}))

	backend.fail = true
	assert.True(t, s.ToggleWishlist("m1"))

	assert.Equal(t, []string{"m1"}, s.Wishlist())
	assert.Equal(t, []string{KeyWishlist}, failed)
	assert.Empty(t, newTestStore(t, backend.MemoryBackend).Wishlist())
}

func TestHydrationDropsRepeatedIDs(t *testing.T) {
	mem := vault.NewMemoryBackend()
	require.NoError(t, mem.Set("ak_vault_recent", mustEncode(t, []string{"a", "a", "b", "", "a"})))
	require.NoError(t, mem.Set("ak_vault_wishlist", mustEncode(t, []string{"m1", "m1"})))

	s := newTestStore(t, mem)
	assert.Equal(t, []string{"a", "b"}, s.RecentlyViewed())
	assert.Equal(t, []string{"m1"}, s.Wishlist())

	s.AddRecentlyViewed("b")
	assert.Equal(t, []string{"b", "a"}, s.RecentlyViewed())
	assert.False(t, s.ToggleWishlist("m1"))
	assert.Empty(t, s.Wishlist())
}

func TestConcurrentShoppers(t *testing.T) {
	const workers = 40
	s := storeWith(t, product("c", 25, 1000))
	snapshot, _ := s.Product("c")

	var checkouts atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, ok := s.ViewProduct("c")
			assert.True(t, ok)
			_, err := s.AddProductToCart(models.AddToCartRequest{ProductID: "c", Quantity: 1})
			assert.NoError(t, err)
			_, err = s.PlaceOrder(models.Order{Items: []models.CartItem{{Product: snapshot, Quantity: 2}}})
			assert.NoError(t, err)
			if _, err := s.Checkout(models.CheckoutRequest{Name: "Noor", Phone: "5550", Email: "n@ak.qa"}); err == nil {
				checkouts.Add(1)
			} else {
				assert.ErrorIs(t, err, ErrEmptyCart)
			}
		}()
	}
	wg.Wait()

	left := 0
	for _, line := range s.Cart() {
		left += line.Quantity
	}
	sold := 2*workers + workers - left

	got, _ := s.Product("c")
	assert.Equal(t, workers, got.Views)
	assert.Equal(t, sold, got.SalesCount)
	assert.Equal(t, 1000-sold, got.Stock)
	assert.Len(t, s.Orders(), workers+int(checkouts.Load()))
	assert.Equal(t, []string{"c"}, s.RecentlyViewed())

	ids := map[string]bool{}
	for _, o := range s.Orders() {
		assert.False(t, ids[o.ID], o.ID)
		ids[o.ID] = true
	}
}

func mustEncode(t *testing.T, v any) string {
	t.Helper()
	s, err := vault.Encode(v)
	require.NoError(t, err)
	return s
}
