package auth

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/cowebsLB/mounifull/config"
)

// Shoppers are anonymous: a session token is all the identity the
// storefront has, and it is what keys the persisted cart, saved address and
// saved-order records.
const sessionTTL = 30 * 24 * time.Hour

// POST /auth/session
func CreateSession(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := "guest_" + randomHex(16)

		expiresAt := time.Now().Add(sessionTTL)
		token, err := issueSessionToken(cfg.JWTSecret, sessionID, expiresAt)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"session_id": sessionID,
			"token":      token,
			"expires_at": expiresAt,
		})
	}
}

func randomHex(n int) string {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "rand_guest"
	}
	return hex.EncodeToString(bytes)
}

func issueSessionToken(secret, sessionID string, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"session_id": sessionID,
		"role":       "guest",
		"exp":        expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
