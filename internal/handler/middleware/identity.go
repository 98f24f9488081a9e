package middleware

import (
	"net/http"

	"shareit/internal/handler/httperr"
	"shareit/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserIDHeader carries the caller identity, set by the gateway in front of
// this service. An absent header is passed through as uuid.Nil so the
// usecase layer can answer with its "user not defined" error.
const UserIDHeader = "X-Sharer-User-Id"

const ctxUserIDKey = "user_id"

func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(UserIDHeader)
		if raw == "" {
			c.Next()
			return
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest,
				errs.Wrap(err, "invalid user id header"), "Invalid "+UserIDHeader+" header", nil)
			return
		}
		c.Set(ctxUserIDKey, id)
		c.Next()
	}
}

// CallerID returns the authenticated caller id, or uuid.Nil when the
// identity header was absent.
func CallerID(c *gin.Context) uuid.UUID {
	if v, exists := c.Get(ctxUserIDKey); exists {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}
