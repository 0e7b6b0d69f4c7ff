package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// ownerIDKey stores the authenticated owner's ID in the request context.
const ownerIDKey = contextKey("ownerID")

// WithOwnerID returns a copy of ctx carrying the owner ID.
func WithOwnerID(ctx context.Context, ownerID string) context.Context {
	return context.WithValue(ctx, ownerIDKey, ownerID)
}

// OwnerIDFromCtx retrieves the owner ID from a standard context.
func OwnerIDFromCtx(ctx context.Context) (string, bool) {
	ownerID, ok := ctx.Value(ownerIDKey).(string)
	if !ok || ownerID == "" {
		return "", false
	}
	return ownerID, true
}

// GetOwnerIDFromContext retrieves the authenticated owner ID from the Gin request.
// It returns the owner ID and a boolean indicating if it was found.
func GetOwnerIDFromContext(c *gin.Context) (string, bool) {
	if c.Request == nil {
		return "", false
	}
	return OwnerIDFromCtx(c.Request.Context())
}
