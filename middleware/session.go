package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bellezamay-cart/utils"
)

// SessionCookie names the signed cart-session cookie. Carts are anonymous;
// the cookie only pins a shopper's browser to one snapshot key.
const SessionCookie = "bm_cart_session"

const sessionKeyContext = "session_id"

// SessionMiddleware resolves the request's cart session. A missing, expired
// or tampered cookie is never an error; the shopper just gets a fresh empty
// cart under a new session id.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var sid uuid.UUID

		if raw, err := c.Cookie(SessionCookie); err == nil {
			if claims, err := utils.ValidateSessionToken(raw); err == nil {
				sid = claims.SessionID
			}
		}

		if sid == uuid.Nil {
			sid = uuid.New()
			token, err := utils.GenerateSessionToken(sid)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
				c.Abort()
				return
			}
			maxAge := int((30 * 24 * time.Hour).Seconds())
			c.SetCookie(SessionCookie, token, maxAge, "/", "", false, true)
		}

		c.Set(sessionKeyContext, sid)
		c.Next()
	}
}

// SessionID returns the request's cart session id set by SessionMiddleware.
func SessionID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(sessionKeyContext)
	if !exists {
		return uuid.Nil, false
	}
	sid, ok := v.(uuid.UUID)
	return sid, ok
}
