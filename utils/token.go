package utils

import (
	"time"

	config "github.com/educify/educify-backend/configs"
	"github.com/educify/educify-backend/models"
	"github.com/golang-jwt/jwt/v4"
)

const tokenTTL = 7 * 24 * time.Hour

// GenerateToken signs a session token carrying the user's id, email and
// role. Every protected route trusts these claims after jwtware verifies
// the signature.
func GenerateToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"id":    user.ID.String(),
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Config("JWT_SECRET")))
}
