package http_test

import (
	"testing"
	"time"

	httpadapter "freight/internal/adapters/in/http"
	"freight/internal/core/domain/model/identity"
	"freight/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, method jwt.SigningMethod, key any, claims httpadapter.Claims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return signed
}

func TestTokenParser_Parse(t *testing.T) {
	parser := httpadapter.NewTokenParser(testSecret)
	id := kernel.NewUUID()
	valid := jwt.RegisteredClaims{Subject: id.String(), ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}

	t.Run("carrier", func(t *testing.T) {
		raw := sign(t, jwt.SigningMethodHS256, []byte(testSecret), httpadapter.Claims{
			Role: "carrier", Company: "Road Runner LLC", MCNumber: "MC-100", RegisteredClaims: valid,
		})

		who, err := parser.Parse(raw)

		require.NoError(t, err)
		carrier, ok := who.(identity.Carrier)
		require.True(t, ok)
		assert.True(t, carrier.ID().IsEqual(id))
		assert.Equal(t, "MC-100", carrier.MCNumber())
	})

	t.Run("admin", func(t *testing.T) {
		raw := sign(t, jwt.SigningMethodHS256, []byte(testSecret), httpadapter.Claims{Role: "admin", RegisteredClaims: valid})

		who, err := parser.Parse(raw)

		require.NoError(t, err)
		assert.True(t, identity.IsAdmin(who))
	})

	rejected := []struct {
		name string
		raw  func(t *testing.T) string
	}{
		{"wrong secret", func(t *testing.T) string {
			return sign(t, jwt.SigningMethodHS256, []byte("other"), httpadapter.Claims{Role: "admin", RegisteredClaims: valid})
		}},
		{"expired", func(t *testing.T) string {
			expired := valid
			expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
			return sign(t, jwt.SigningMethodHS256, []byte(testSecret), httpadapter.Claims{Role: "admin", RegisteredClaims: expired})
		}},
		{"no expiry", func(t *testing.T) string {
			return sign(t, jwt.SigningMethodHS256, []byte(testSecret), httpadapter.Claims{
				Role: "admin", RegisteredClaims: jwt.RegisteredClaims{Subject: id.String()},
			})
		}},
		{"carrier without mc number", func(t *testing.T) string {
			return sign(t, jwt.SigningMethodHS256, []byte(testSecret), httpadapter.Claims{
				Role: "carrier", Company: "Road Runner LLC", RegisteredClaims: valid,
			})
		}},
		{"unknown role", func(t *testing.T) string {
			return sign(t, jwt.SigningMethodHS256, []byte(testSecret), httpadapter.Claims{Role: "dispatcher", RegisteredClaims: valid})
		}},
		{"subject is not a uuid", func(t *testing.T) string {
			bad := valid
			bad.Subject = "user-1"
			return sign(t, jwt.SigningMethodHS256, []byte(testSecret), httpadapter.Claims{Role: "admin", RegisteredClaims: bad})
		}},
		{"alg none", func(t *testing.T) string {
			return sign(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, httpadapter.Claims{Role: "admin", RegisteredClaims: valid})
		}},
	}

	for _, tc := range rejected {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parser.Parse(tc.raw(t))
			require.ErrorIs(t, err, httpadapter.ErrInvalidToken)
		})
	}
}
