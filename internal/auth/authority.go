// Package auth implements the session authority: it mints signed,
// time-bounded identity tokens and validates the tokens presented on every
// protected request.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const bearerPrefix = "Bearer "

var (
	ErrMissingToken    = errors.New("authorization token not provided")
	ErrMalformedHeader = errors.New("malformed authorization header")
	ErrExpired         = errors.New("token has expired")
	ErrInvalidToken    = errors.New("invalid token")
)

// Authority mints and verifies HS256-signed session tokens. It holds no state
// beyond the signing secret, which is read-only after construction, so a
// single instance is safe for concurrent use.
type Authority struct {
	secret          []byte
	defaultLifetime time.Duration
}

// NewAuthority creates an Authority signing with secret. Tokens minted with a
// non-positive lifetime fall back to defaultLifetime.
func NewAuthority(secret []byte, defaultLifetime time.Duration) *Authority {
	return &Authority{
		secret:          secret,
		defaultLifetime: defaultLifetime,
	}
}

// Mint issues a session token for the given user. The token is self-contained
// and never recorded server-side; it stays valid until its expiry regardless
// of later logouts or password changes.
func (a *Authority) Mint(userID int64, lifetime time.Duration) (string, error) {
	return a.mint(userID, "", lifetime)
}

// MintReset issues a short-lived password reset token carrying jti, so the
// reset flow can track redemption of the token it mailed out.
func (a *Authority) MintReset(userID int64, jti string, lifetime time.Duration) (string, error) {
	return a.mint(userID, jti, lifetime)
}

func (a *Authority) mint(userID int64, jti string, lifetime time.Duration) (string, error) {
	if lifetime <= 0 {
		lifetime = a.defaultLifetime
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		ID:        jti,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(a.secret)
}

// VerifyHeader authenticates a raw Authorization header value and returns the
// caller's user ID. The header must use the literal "Bearer " scheme prefix;
// anything else is rejected before the token is even parsed.
func (a *Authority) VerifyHeader(header string) (int64, error) {
	if header == "" {
		return 0, ErrMissingToken
	}

	if !strings.HasPrefix(header, bearerPrefix) {
		return 0, ErrMalformedHeader
	}

	tokenStr := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))

	claims, err := a.parse(tokenStr)
	if err != nil {
		return 0, err
	}

	return subjectID(claims)
}

// VerifyResetToken authenticates a password reset token and returns the
// target user ID together with the token's JTI.
func (a *Authority) VerifyResetToken(tokenStr string) (int64, string, error) {
	claims, err := a.parse(tokenStr)
	if err != nil {
		return 0, "", err
	}

	if claims.ID == "" {
		return 0, "", ErrInvalidToken
	}

	userID, err := subjectID(claims)
	if err != nil {
		return 0, "", err
	}

	return userID, claims.ID, nil
}

func (a *Authority) parse(tokenStr string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}

	_, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return a.secret, nil
	},
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}

		return nil, ErrInvalidToken
	}

	return claims, nil
}

func subjectID(claims *jwt.RegisteredClaims) (int64, error) {
	if claims.Subject == "" {
		return 0, ErrInvalidToken
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}

	return userID, nil
}
