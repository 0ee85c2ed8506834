package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jobforge/jobforge/internal/index"
	"github.com/jobforge/jobforge/internal/pkg/errcode"
	"github.com/jobforge/jobforge/internal/pkg/response"
)

const defaultSearchLimit = 5

type IndexHandler struct {
	index *index.VectorIndex
}

func NewIndexHandler(idx *index.VectorIndex) *IndexHandler {
	return &IndexHandler{index: idx}
}

func (h *IndexHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.Error(c, errcode.ErrInvalid, "query required")
		return
	}
	limit := defaultSearchLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			response.Error(c, errcode.ErrInvalid, "invalid limit")
			return
		}
		limit = parsed
	}
	results, err := h.index.Search(c.Request.Context(), query, limit)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"items": results})
}

func (h *IndexHandler) Status(c *gin.Context) {
	count, err := h.index.Count(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{
		"collection": h.index.Collection(),
		"chunks":     count,
	})
}

// Reset drops and recreates the collection without reingesting.
func (h *IndexHandler) Reset(c *gin.Context) {
	if err := h.index.Reset(c.Request.Context()); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"collection": h.index.Collection()})
}
