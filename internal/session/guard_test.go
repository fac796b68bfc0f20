package session

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestGuard(store Store) *Guard {
	g := NewGuard(store, zerolog.Nop())
	g.now = func() time.Time { return fixedNow }
	return g
}

// fakeToken builds an unsigned JWT-shaped token whose payload carries exp.
func fakeToken(exp time.Time) string {
	payload, _ := json.Marshal(map[string]int64{"exp": exp.Unix()})
	return fmt.Sprintf("header.%s.signature", base64.RawURLEncoding.EncodeToString(payload))
}

func TestGuard_Authenticated(t *testing.T) {
	store := NewMemoryStore()
	g := newTestGuard(store)

	require.NoError(t, g.Login(fakeToken(fixedNow.Add(time.Hour)), &User{Username: "alice", Role: "staff"}))

	assert.True(t, g.IsAuthenticated())

	user, ok := g.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "alice", user.Username)

	token, ok := g.Token()
	require.True(t, ok)
	assert.NotEmpty(t, token)
}

func TestGuard_EmptyStore(t *testing.T) {
	g := newTestGuard(NewMemoryStore())
	assert.False(t, g.IsAuthenticated())

	_, ok := g.CurrentUser()
	assert.False(t, ok)
}

func TestGuard_TokenWithoutUser(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.SetToken(fakeToken(fixedNow.Add(time.Hour))))

	g := newTestGuard(store)
	assert.False(t, g.IsAuthenticated())
}

func TestGuard_ExpiredTokenClearsStore(t *testing.T) {
	store := NewMemoryStore()
	g := newTestGuard(store)

	require.NoError(t, g.Login(fakeToken(fixedNow.Add(-time.Second)), &User{Username: "alice"}))

	assert.False(t, g.IsAuthenticated())

	token, err := store.GetToken()
	require.NoError(t, err)
	assert.Empty(t, token, "expired session must be cleared")

	user, err := store.GetUser()
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestGuard_ExpiryBoundary(t *testing.T) {
	store := NewMemoryStore()
	g := newTestGuard(store)

	// exp exactly now is not in the future, so the session is dead.
	require.NoError(t, g.Login(fakeToken(fixedNow), &User{Username: "alice"}))
	assert.False(t, g.IsAuthenticated())

	require.NoError(t, g.Login(fakeToken(fixedNow.Add(time.Second)), &User{Username: "alice"}))
	assert.True(t, g.IsAuthenticated())
}

func TestGuard_MalformedTokenClearsStore(t *testing.T) {
	cases := []struct {
		name  string
		token string
	}{
		{"not a jwt", "just-a-string"},
		{"two segments", "a.b"},
		{"bad base64", "a.!!!.c"},
		{"payload not json", "a." + base64.RawURLEncoding.EncodeToString([]byte("nope")) + ".c"},
		{"no exp claim", "a." + base64.RawURLEncoding.EncodeToString([]byte(`{"sub":"x"}`)) + ".c"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := NewMemoryStore()
			g := newTestGuard(store)
			require.NoError(t, g.Login(tc.token, &User{Username: "alice"}))

			assert.False(t, g.IsAuthenticated())

			token, err := store.GetToken()
			require.NoError(t, err)
			assert.Empty(t, token)
		})
	}
}

func TestGuard_Logout(t *testing.T) {
	store := NewMemoryStore()
	g := newTestGuard(store)

	require.NoError(t, g.Login(fakeToken(fixedNow.Add(time.Hour)), &User{Username: "alice"}))
	require.True(t, g.IsAuthenticated())

	require.NoError(t, g.Logout())
	assert.False(t, g.IsAuthenticated())
}

func TestGuard_FileStoreRoundTrip(t *testing.T) {
	path := t.TempDir() + "/session.json"
	store := NewFileStore(path)
	g := newTestGuard(store)

	require.NoError(t, g.Login(fakeToken(fixedNow.Add(time.Hour)), &User{ID: "u1", Username: "alice", Role: "admin"}))

	// A fresh store over the same file sees the same session.
	reopened := newTestGuard(NewFileStore(path))
	assert.True(t, reopened.IsAuthenticated())

	user, ok := reopened.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "admin", user.Role)
}

func TestFileStore_ClearMissingFile(t *testing.T) {
	store := NewFileStore(t.TempDir() + "/absent.json")
	assert.NoError(t, store.Clear())
}

func TestFileStore_CorruptFileTreatedAsEmpty(t *testing.T) {
	path := t.TempDir() + "/session.json"
	require.NoError(t, os.WriteFile(path, []byte("{corrupt"), 0o600))

	store := NewFileStore(path)
	token, err := store.GetToken()
	require.NoError(t, err)
	assert.Empty(t, token)
}
