// Package auth checks admin credentials and issues signed, expiring tokens.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/zaqqye/linkbio/internal/models"
	"github.com/zaqqye/linkbio/internal/store"
	"github.com/zaqqye/linkbio/internal/utils"
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrUnknownAdmin  = errors.New("admin no longer exists")
	ErrMissingSecret = errors.New("signing secret is empty")
)

// ErrAdminLookup means the store could not be asked about the token holder;
// the token itself may still be valid.
var ErrAdminLookup = errors.New("admin lookup failed")

type Config struct {
	Secret    []byte
	Issuer    string
	ExpiresIn time.Duration
}

type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type Authenticator struct {
	store store.Store
	cfg   Config
	now   func() time.Time
}

func New(s store.Store, cfg Config) *Authenticator {
	if cfg.ExpiresIn <= 0 {
		cfg.ExpiresIn = time.Hour
	}
	return &Authenticator{store: s, cfg: cfg, now: time.Now}
}

// Authenticate reports whether password matches the stored hash for
// username. Any lookup failure counts as a mismatch.
func (a *Authenticator) Authenticate(ctx context.Context, username, password string) (models.Admin, bool) {
	admin, err := a.store.FindAdmin(ctx, username)
	if err != nil {
		return models.Admin{}, false
	}
	if !utils.CheckPassword(admin.PasswordHash, password) {
		return models.Admin{}, false
	}
	return admin, true
}

// IssueToken signs a token for admin.
func (a *Authenticator) IssueToken(admin models.Admin) (string, time.Time, error) {
	if len(a.cfg.Secret) == 0 {
		return "", time.Time{}, ErrMissingSecret
	}
	now := a.now().UTC()
	exp := now.Add(a.cfg.ExpiresIn)
	claims := Claims{
		Username: admin.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    a.cfg.Issuer,
			Subject:   admin.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
			ID:        uuid.NewString(),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.cfg.Secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, exp, nil
}

// Validate verifies the signature, issuer and expiry of raw and checks the
// admin it names still exists.
func (a *Authenticator) Validate(ctx context.Context, raw string) (*Claims, error) {
	if len(a.cfg.Secret) == 0 {
		return nil, ErrMissingSecret
	}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(a.now),
	}
	if a.cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.cfg.Issuer))
	}
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return a.cfg.Secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Username == "" {
		return nil, ErrInvalidToken
	}
	if _, err := a.store.FindAdmin(ctx, claims.Username); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUnknownAdmin
		}
		return nil, fmt.Errorf("%w: %w", ErrAdminLookup, err)
	}
	return claims, nil
}
