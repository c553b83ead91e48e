package token

import (
	"errors"
	"fmt"
	"time"

	"am-hris/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalid = errors.New("token: invalid")
	ErrExpired = errors.New("token: expired")
)

type Claims struct {
	UserID         string `json:"user_id"`
	OrganizationID string `json:"organization_id"`
	Role           string `json:"role"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies HS256 access tokens.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (i *Issuer) Issue(caller domain.Caller) (string, time.Time, error) {
	issuedAt := i.now()
	expiresAt := issuedAt.Add(i.ttl)
	claims := Claims{
		UserID:         caller.UserID.String(),
		OrganizationID: caller.OrganizationID.String(),
		Role:           string(caller.Role),
		Name:           caller.Name,
		Email:          caller.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   caller.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Parse verifies the signature and expiry and rebuilds the caller.
func (i *Issuer) Parse(raw string) (domain.Caller, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(i.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Caller{}, ErrExpired
		}
		return domain.Caller{}, ErrInvalid
	}
	if !tok.Valid {
		return domain.Caller{}, ErrInvalid
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return domain.Caller{}, ErrInvalid
	}
	orgID, err := uuid.Parse(claims.OrganizationID)
	if err != nil {
		return domain.Caller{}, ErrInvalid
	}
	role := domain.Role(claims.Role)
	if !role.Valid() {
		return domain.Caller{}, ErrInvalid
	}

	return domain.Caller{
		UserID:         userID,
		OrganizationID: orgID,
		Role:           role,
		Name:           claims.Name,
		Email:          claims.Email,
	}, nil
}
