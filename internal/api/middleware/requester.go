package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gemveer/inventory/internal/auth"
	"github.com/gemveer/inventory/internal/domain"
)

// requesterKey is the gin context key carrying the authenticated requester
const requesterKey = "requester"

// Requester builds the authenticated requester exactly once at the transport
// boundary. Downstream code takes the value as given and never re-derives
// identity from the request.
//
// A bearer token wins when present. Without one, the caller-supplied
// userId/role query pair is accepted as already authenticated upstream. A
// malformed or missing identity yields an anonymous requester, which every
// scoped operation fails closed on.
func Requester(tokens *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var requester domain.Requester

		if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
			if parsed, err := tokens.Parse(strings.TrimPrefix(header, "Bearer ")); err == nil {
				requester = parsed
			}
		} else {
			if raw := c.Query("userId"); raw != "" {
				if id, err := uuid.Parse(raw); err == nil {
					requester.ID = id
				}
			}
			requester.Role = domain.Role(c.Query("role"))
		}

		c.Set(requesterKey, requester)
		c.Next()
	}
}

// RequesterFrom returns the requester placed in the context by Requester.
// Absent middleware, the zero requester is returned and fails closed.
func RequesterFrom(c *gin.Context) domain.Requester {
	if value, ok := c.Get(requesterKey); ok {
		if requester, ok := value.(domain.Requester); ok {
			return requester
		}
	}
	return domain.Requester{}
}
