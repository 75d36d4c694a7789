package vault

import (
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quietLogger = log.New(io.Discard, "", 0)

type failingBackend struct{ err error }

func (f failingBackend) Get(string) (string, error) { return "", f.err }
func (f failingBackend) Set(string, string) error   { return f.err }
func (f failingBackend) Delete(string) error        { return f.err }
func (f failingBackend) Close() error               { return nil }

func TestStoreNamespacesKeys(t *testing.T) {
	mem := NewMemoryBackend()
	s := NewStore(mem, quietLogger)

	require.NoError(t, s.Save("cart", []int{1, 2}))
	assert.Equal(t, []string{"ak_vault_cart"}, mem.Keys())

	var out []int
	require.NoError(t, s.Read("cart", &out))
	assert.Equal(t, []int{1, 2}, out)
}

func TestStoreReadOrStatuses(t *testing.T) {
	mem := NewMemoryBackend()
	s := NewStore(mem, quietLogger)

	v, status := ReadOr(s, "lang", "en")
	assert.Equal(t, "en", v)
	assert.Equal(t, Missing, status)

	require.NoError(t, mem.Set("ak_vault_lang", "garbage!"))
	v, status = ReadOr(s, "lang", "en")
	assert.Equal(t, "en", v)
	assert.Equal(t, Corrupt, status)

	require.NoError(t, s.Save("lang", "ar"))
	v, status = ReadOr(s, "lang", "en")
	assert.Equal(t, "ar", v)
	assert.Equal(t, Loaded, status)
}

func TestStoreClear(t *testing.T) {
	s := NewStore(NewMemoryBackend(), quietLogger)

	require.NoError(t, s.Save("active_session", map[string]string{"id": "u1"}))
	require.NoError(t, s.Clear("active_session"))
	require.NoError(t, s.Clear("active_session"))

	var out map[string]string
	assert.ErrorIs(t, s.Read("active_session", &out), ErrNotFound)
}

func TestStoreSurfacesBackendFailures(t *testing.T) {
	boom := errors.New("quota exceeded")
	s := NewStore(failingBackend{err: boom}, quietLogger)

	assert.ErrorIs(t, s.Save("orders", []string{}), boom)
	assert.ErrorIs(t, s.Clear("orders"), boom)

	v, status := ReadOr(s, "orders", []string{"x"})
	assert.Equal(t, []string{"x"}, v)
	assert.Equal(t, Corrupt, status)
}

func TestStoreWithPrefix(t *testing.T) {
	mem := NewMemoryBackend()
	s := NewStore(mem, quietLogger).WithPrefix("test_")

	require.NoError(t, s.Save("recent", []string{"m1"}))
	assert.Equal(t, []string{"test_recent"}, mem.Keys())
}

func TestFileBackendPersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	fb, err := NewFileBackend(dir)
	require.NoError(t, err)
	s := NewStore(fb, quietLogger)
	require.NoError(t, s.Save("products", []sample{{Name: "فستان", Price: 120}}))

	reopened, err := NewFileBackend(dir)
	require.NoError(t, err)
	var out []sample
	require.NoError(t, NewStore(reopened, quietLogger).Read("products", &out))
	assert.Equal(t, []sample{{Name: "فستان", Price: 120}}, out)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "ak_vault_products.vault", entries[0].Name())
}

func TestFileBackendMissingAndDelete(t *testing.T) {
	fb, err := NewFileBackend(filepath.Join(t.TempDir(), "nested"))
	require.NoError(t, err)

	_, err = fb.Get("absent")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, fb.Delete("absent"))

	require.NoError(t, fb.Set("k", "v"))
	require.NoError(t, fb.Delete("k"))
	_, err = fb.Get("k")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileBackendSanitizesKeys(t *testing.T) {
	dir := t.TempDir()
	fb, err := NewFileBackend(dir)
	require.NoError(t, err)

	require.NoError(t, fb.Set("../escape", "v"))
	v, err := fb.Get("../escape")
	require.NoError(t, err)
	assert.Equal(t, "v", v)

	_, err = os.Stat(filepath.Join(filepath.Dir(dir), "escape.vault"))
	assert.True(t, os.IsNotExist(err))
}
