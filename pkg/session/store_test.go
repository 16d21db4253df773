package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerbaras/anitrack/pkg/api"
)

func newTestStore(t *testing.T, handler http.Handler) (*Store, *TokenFile) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	tokens := NewTokenFile(filepath.Join(t.TempDir(), "token"))
	client := api.New(srv.URL, 5*time.Second, tokens.Current)
	return NewStore(client, tokens), tokens
}

func serveUser(user api.User) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(user)
	})
}

func serveUnauthorized() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Could not validate credentials"})
	})
}

// isAuthenticated must equal (user != nil) at every observable point.
func TestAuthenticatedIffUserResolved(t *testing.T) {
	store, _ := newTestStore(t, serveUser(api.User{ID: 7, Username: "alice"}))

	check := func() {
		assert.Equal(t, store.User() != nil, store.IsAuthenticated())
	}

	check()
	require.NoError(t, store.Login(context.Background(), "tok"))
	check()
	assert.True(t, store.IsAuthenticated())

	store.Logout()
	check()
	assert.False(t, store.IsAuthenticated())
}

func TestLoginResolvesUser(t *testing.T) {
	store, tokens := newTestStore(t, serveUser(api.User{ID: 7, Username: "alice", Email: "a@b.c"}))

	require.NoError(t, store.Login(context.Background(), "tok"))

	assert.Equal(t, Authenticated, store.State())
	require.NotNil(t, store.User())
	assert.Equal(t, 7, store.User().ID)
	assert.Equal(t, "tok", tokens.Current())
}

func TestLoginThenLogoutLeavesNoTrace(t *testing.T) {
	store, tokens := newTestStore(t, serveUser(api.User{ID: 7, Username: "alice"}))
	path := tokens.path

	require.NoError(t, store.Login(context.Background(), "tok"))
	store.Logout()

	assert.False(t, store.IsAuthenticated())
	assert.Nil(t, store.User())
	assert.Empty(t, tokens.Current())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "token file must be gone after logout")
}

// A failed identity fetch self-heals: the stale token is discarded and
// the session lands in Anonymous, regardless of prior state.
func TestFetchUserFailureClearsSession(t *testing.T) {
	store, tokens := newTestStore(t, serveUnauthorized())
	require.NoError(t, tokens.Save("expired-token"))

	store.FetchUser(context.Background())

	assert.Equal(t, Anonymous, store.State())
	assert.Nil(t, store.User())
	assert.Empty(t, tokens.Current())
}

func TestPersistedTokenStartsPending(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "token")
	require.NoError(t, os.WriteFile(path, []byte("survivor\n"), 0o600))

	tokens := NewTokenFile(path)
	client := api.New("http://localhost:0", time.Second, tokens.Current)
	store := NewStore(client, tokens)

	assert.Equal(t, PendingUser, store.State())
	assert.False(t, store.IsAuthenticated(), "pending is not authenticated until /auth/me confirms")
}

func TestLoginWithBadTokenSelfHeals(t *testing.T) {
	store, tokens := newTestStore(t, serveUnauthorized())

	// Login itself reports no error; the bad token is simply discarded.
	require.NoError(t, store.Login(context.Background(), "bogus"))

	assert.Equal(t, Anonymous, store.State())
	assert.Empty(t, tokens.Current())
}

func TestRegisterReturnsCreatedUserWithoutAuthenticating(t *testing.T) {
	store, _ := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/register", r.URL.Path)
		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(api.User{ID: 12, Username: payload["username"], Email: payload["email"]})
	}))

	user, err := store.Register(context.Background(), "bob", "bob@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, 12, user.ID)

	assert.False(t, store.IsAuthenticated())
	assert.Equal(t, Anonymous, store.State())
}

func TestRegisterSurfacesBackendDetailVerbatim(t *testing.T) {
	store, _ := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Email already registered"})
	}))

	_, err := store.Register(context.Background(), "bob", "bob@example.com", "hunter22")

	var regErr *RegistrationError
	require.ErrorAs(t, err, &regErr)
	assert.Equal(t, "Email already registered", regErr.Detail)
	assert.False(t, store.IsAuthenticated())
}

func TestRegisterValidatesBeforeSending(t *testing.T) {
	store, _ := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("invalid input must not reach the backend")
	}))

	_, err := store.Register(context.Background(), "bob", "not-an-email", "hunter22")

	var regErr *RegistrationError
	require.ErrorAs(t, err, &regErr)
	assert.Equal(t, "a valid email address is required", regErr.Detail)
}

func TestSubscribeDeliversSnapshots(t *testing.T) {
	store, _ := newTestStore(t, serveUser(api.User{ID: 7, Username: "alice"}))
	updates := store.Subscribe()

	require.NoError(t, store.Login(context.Background(), "tok"))

	// Login produces PendingUser then Authenticated.
	first := <-updates
	assert.Equal(t, PendingUser, first.State)
	second := <-updates
	assert.Equal(t, Authenticated, second.State)
	require.NotNil(t, second.User)
	assert.Equal(t, "alice", second.User.Username)

	store.Logout()
	third := <-updates
	assert.Equal(t, Anonymous, third.State)
	assert.Nil(t, third.User)
}
