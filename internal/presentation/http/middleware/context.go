package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sokoni/sokoni-api/internal/domain/enum"
)

// GetCreatorID returns the authenticated user's ID from the request
// context, or uuid.Nil when the request is unauthenticated.
func GetCreatorID(c *gin.Context) uuid.UUID {
	v, exists := c.Get("creator_id")
	if !exists {
		return uuid.Nil
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}

// GetCreatorKind returns the authenticated user's kind from the request
// context. Defaults to employee when unset so a missing claim never
// escalates privileges.
func GetCreatorKind(c *gin.Context) enum.CreatorKind {
	v, exists := c.Get("creator_kind")
	if !exists {
		return enum.CreatorKindEmployee
	}
	kind, ok := v.(enum.CreatorKind)
	if !ok {
		return enum.CreatorKindEmployee
	}
	return kind
}
