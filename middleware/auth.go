package middleware

import (
	redis_models "Whist/models/redis"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	// Context keys set by AuthRequired
	PlayerKey = "playerId"
	RoomKey   = "roomId"

	tokenCookie     = "Authorization"
	sessionTokenKey = "token"
)

// AuthRequired checks the player token and stores the player and room ids in the
// context.
func AuthRequired(issuer *TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := TokenFromRequest(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		playerID, err := issuer.Parse(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		roomID, ok := redis_models.RoomIDFromPlayerID(playerID)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(PlayerKey, playerID)
		c.Set(RoomKey, roomID)
		c.Next()
	}
}

// TokenFromRequest looks for the token in the Authorization header, then the
// Authorization cookie, then the session.
func TokenFromRequest(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	if cookie, err := c.Cookie(tokenCookie); err == nil && cookie != "" {
		return cookie
	}
	if token, ok := sessions.Default(c).Get(sessionTokenKey).(string); ok {
		return token
	}
	return ""
}

// RememberToken stores the token in the session so browser clients need not
// resend it.
func RememberToken(c *gin.Context, token string) error {
	session := sessions.Default(c)
	session.Set(sessionTokenKey, token)
	return session.Save()
}

// PlayerID returns the player id set by AuthRequired.
func PlayerID(c *gin.Context) string {
	return c.GetString(PlayerKey)
}

// RoomID returns the room id set by AuthRequired.
func RoomID(c *gin.Context) string {
	return c.GetString(RoomKey)
}
