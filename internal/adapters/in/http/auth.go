package http

import (
	"errors"
	"net/http"
	"strings"

	"freight/internal/core/domain/model/identity"
	"freight/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const identityContextKey = "freight.identity"

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid bearer token")
)

// Claims is the token payload the marketplace trusts. Subject carries the user id.
type Claims struct {
	Role     string `json:"role"`
	Company  string `json:"company,omitempty"`
	MCNumber string `json:"mc_number,omitempty"`
	jwt.RegisteredClaims
}

// TokenParser verifies HS256 bearer tokens and turns their claims into an identity.
type TokenParser struct {
	secret []byte
}

func NewTokenParser(secret string) *TokenParser {
	return &TokenParser{secret: []byte(secret)}
}

// Parse verifies raw and builds the identity variant named by its role claim.
func (p *TokenParser) Parse(raw string) (identity.Identity, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return p.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}

	who, err := identity.Parse(claims.Role, id, claims.Company, claims.MCNumber)
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}
	return who, nil
}

// Authenticate rejects requests without a valid bearer token with 401 and stores the
// caller identity on the echo context otherwise.
func Authenticate(parser *TokenParser) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(raw) == "" {
				return unauthenticated(c)
			}

			who, err := parser.Parse(strings.TrimSpace(raw))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{Code: "unauthenticated", Message: ErrInvalidToken.Error()})
			}

			c.Set(identityContextKey, who)
			return next(c)
		}
	}
}

func caller(c echo.Context) (identity.Identity, error) {
	who, ok := c.Get(identityContextKey).(identity.Identity)
	if !ok || who == nil {
		return nil, ErrMissingToken
	}
	return who, nil
}

func unauthenticated(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, ErrorResponse{Code: "unauthenticated", Message: ErrMissingToken.Error()})
}
