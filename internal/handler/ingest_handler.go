package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jobforge/jobforge/internal/pkg/response"
	"github.com/jobforge/jobforge/internal/service"
)

type IngestHandler struct {
	ingest *service.IngestService
}

func NewIngestHandler(ingest *service.IngestService) *IngestHandler {
	return &IngestHandler{ingest: ingest}
}

func (h *IngestHandler) Ingest(c *gin.Context) {
	summary, err := h.ingest.Ingest(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, summary)
}

// Reindex drops the collection and rebuilds it from the source.
func (h *IngestHandler) Reindex(c *gin.Context) {
	summary, err := h.ingest.Reindex(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, summary)
}
