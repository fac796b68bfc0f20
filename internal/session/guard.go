package session

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Guard answers "is this session still usable?" from cached state alone.
// It reads the token's exp claim without verifying the signature: the
// server re-verifies every request, so the client only needs to know
// whether sending the token is worthwhile.
type Guard struct {
	store Store
	log   zerolog.Logger
	now   func() time.Time
}

func NewGuard(store Store, log zerolog.Logger) *Guard {
	return &Guard{store: store, log: log, now: time.Now}
}

// Login caches the token/user pair after a successful authentication.
func (g *Guard) Login(token string, user *User) error {
	if err := g.store.SetToken(token); err != nil {
		return err
	}
	return g.store.SetUser(user)
}

// Logout discards the cached session.
func (g *Guard) Logout() error {
	return g.store.Clear()
}

// IsAuthenticated reports whether a token and user are cached and the
// token's exp claim is still in the future. Any decode failure or an
// expired token clears the store: a session we cannot prove valid is
// treated as no session at all.
func (g *Guard) IsAuthenticated() bool {
	token, err := g.store.GetToken()
	if err != nil || token == "" {
		return false
	}
	user, err := g.store.GetUser()
	if err != nil || user == nil {
		return false
	}

	exp, err := tokenExpiry(token)
	if err != nil {
		g.log.Debug().Err(err).Msg("session token unreadable, clearing")
		_ = g.store.Clear()
		return false
	}
	if !exp.After(g.now()) {
		g.log.Debug().Time("exp", exp).Msg("session token expired, clearing")
		_ = g.store.Clear()
		return false
	}
	return true
}

// Token returns the cached token when the session is authenticated.
func (g *Guard) Token() (string, bool) {
	if !g.IsAuthenticated() {
		return "", false
	}
	token, err := g.store.GetToken()
	if err != nil {
		return "", false
	}
	return token, true
}

// CurrentUser returns the cached user when the session is authenticated.
func (g *Guard) CurrentUser() (*User, bool) {
	if !g.IsAuthenticated() {
		return nil, false
	}
	user, err := g.store.GetUser()
	if err != nil || user == nil {
		return nil, false
	}
	return user, true
}

type tokenClaims struct {
	Exp int64 `json:"exp"`
}

// tokenExpiry decodes the JWT payload segment as base64url JSON and reads
// the exp claim (Unix seconds). No signature check happens here.
func tokenExpiry(token string) (time.Time, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return time.Time{}, errMalformedToken
	}
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return time.Time{}, err
	}
	var claims tokenClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return time.Time{}, err
	}
	if claims.Exp == 0 {
		return time.Time{}, errMissingExpiry
	}
	return time.Unix(claims.Exp, 0), nil
}
