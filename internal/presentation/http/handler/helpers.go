package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sokoni/sokoni-api/internal/presentation/http/dto/response"
)

// parseIDParam parses a uuid path parameter and writes the error response
// itself, so call sites can simply return on !ok.
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.BadRequest(c, "Invalid "+name+" format")
		return uuid.Nil, false
	}
	return id, true
}
