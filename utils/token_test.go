package utils

import (
	"testing"
	"time"

	"github.com/educify/educify-backend/models"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := models.User{
		ID:    uuid.New(),
		Email: "student@example.com",
		Role:  "student",
	}

	signed, err := GenerateToken(user)
	require.NoError(t, err)

	parsed, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, user.ID.String(), claims["id"])
	assert.Equal(t, "student@example.com", claims["email"])
	assert.Equal(t, "student", claims["role"])

	exp := int64(claims["exp"].(float64))
	wantExp := time.Now().Add(7 * 24 * time.Hour).Unix()
	assert.InDelta(t, wantExp, exp, 60)
}

func TestGenerateTokenRejectedWithWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	signed, err := GenerateToken(models.User{ID: uuid.New(), Email: "a@b.co", Role: "tutor"})
	require.NoError(t, err)

	_, err = jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte("other-secret"), nil
	})
	assert.Error(t, err)
}
