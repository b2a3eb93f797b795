// Package sessions binds a request to a signed-in user. A session is a signed
// cookie token whose id must also be present in the Registry; logout removes it.
package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"health-server/entities"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"

	themeKey = "theme"
)

type Claims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// Session is the authenticated identity handed to use cases.
type Session struct {
	ID     string
	UserID string
}

type Manager struct {
	secret   []byte
	ttl      time.Duration
	registry Registry
}

func NewManager(secret string, ttl time.Duration, registry Registry) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl, registry: registry}
}

func (m *Manager) TTL() time.Duration { return m.ttl }

// Issue signs a token for userID and registers its session id.
func (m *Manager) Issue(ctx context.Context, userID string) (string, *Session, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", nil, fmt.Errorf("sign session token: %w", err)
	}
	if err := m.registry.Put(ctx, claims.ID, userID, m.ttl); err != nil {
		return "", nil, err
	}
	return token, &Session{ID: claims.ID, UserID: userID}, nil
}

// Verify checks the token signature and expiry and that the session is still registered.
func (m *Manager) Verify(ctx context.Context, tokenStr string) (*Session, error) {
	if tokenStr == "" {
		return nil, entities.ErrUnauthenticated
	}
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entities.ErrUnauthenticated, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.ID == "" || claims.UserID == "" {
		return nil, entities.ErrUnauthenticated
	}

	userID, err := m.registry.Lookup(ctx, claims.ID)
	if errors.Is(err, ErrSessionMissing) {
		return nil, entities.ErrUnauthenticated
	}
	if err != nil {
		return nil, err
	}
	if userID != claims.UserID {
		return nil, entities.ErrUnauthenticated
	}
	return &Session{ID: claims.ID, UserID: userID}, nil
}

func (m *Manager) Revoke(ctx context.Context, sessionID string) error {
	return m.registry.Delete(ctx, sessionID)
}

// Theme returns the session's display theme, light when unset.
func (m *Manager) Theme(ctx context.Context, sessionID string) (string, error) {
	theme, err := m.registry.GetValue(ctx, sessionID, themeKey)
	if errors.Is(err, ErrSessionMissing) {
		return ThemeLight, nil
	}
	if err != nil {
		return "", err
	}
	return theme, nil
}

func (m *Manager) SetTheme(ctx context.Context, sessionID, theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return entities.NewValidationError("theme", "must be light or dark")
	}
	return m.registry.SetValue(ctx, sessionID, themeKey, theme, m.ttl)
}
