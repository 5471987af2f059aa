package identity

import (
	"net/http"
	"strings"

	"github.com/beka-birhanu/icare/service"
	"github.com/beka-birhanu/icare/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// ContextPlayerID is the key used to store the player's ID in the Gin context.
	ContextPlayerID = "playerID"
	// ContextPlayerClaims is the key used to store all token claims in the Gin context.
	ContextPlayerClaims = "playerClaims"
)

// Authoriz rejects requests without a valid bearer token and attaches the
// player's ID to the context.
func Authoriz(ts i.Tokenizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		claims, err := ts.Decode(parts[1])
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		raw, _ := claims[service.ClaimPlayerID].(string)
		playerID, err := uuid.Parse(raw)
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Set(ContextPlayerClaims, claims)
		c.Set(ContextPlayerID, playerID)
		c.Next()
	}
}

// PlayerID returns the player ID Authoriz attached to the context.
func PlayerID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(ContextPlayerID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
