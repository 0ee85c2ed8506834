package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jobforge/jobforge/internal/model"
	"github.com/jobforge/jobforge/internal/pkg/errcode"
	"github.com/jobforge/jobforge/internal/pkg/response"
	"github.com/jobforge/jobforge/internal/service"
)

type GenerateHandler struct {
	generation *service.GenerationService
}

func NewGenerateHandler(generation *service.GenerationService) *GenerateHandler {
	return &GenerateHandler{generation: generation}
}

var artifactTypes = map[string]model.ArtifactType{
	string(model.ArtifactResumeBullets):   model.ArtifactResumeBullets,
	string(model.ArtifactCoverLetter):     model.ArtifactCoverLetter,
	string(model.ArtifactATSAnalysis):     model.ArtifactATSAnalysis,
	string(model.ArtifactLinkedInMessage): model.ArtifactLinkedInMessage,
}

func bindGenerationRequest(c *gin.Context, req *model.GenerationRequest) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error(c, errcode.ErrInvalid, "invalid request")
		return false
	}
	if strings.TrimSpace(req.JobDescription) == "" {
		response.Error(c, errcode.ErrInvalid, "job_description required")
		return false
	}
	return true
}

// All generates the four artifacts in one call.
func (h *GenerateHandler) All(c *gin.Context) {
	var req model.GenerationRequest
	if !bindGenerationRequest(c, &req) {
		return
	}
	result, err := h.generation.GenerateAll(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, result)
}

// One regenerates a single artifact named by the path parameter.
func (h *GenerateHandler) One(c *gin.Context) {
	artifact, ok := artifactTypes[c.Param("artifact")]
	if !ok {
		response.Error(c, errcode.ErrInvalid, "unknown artifact type")
		return
	}
	var req model.GenerationRequest
	if !bindGenerationRequest(c, &req) {
		return
	}
	text, err := h.generation.Generate(c.Request.Context(), artifact, req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"artifact": artifact, "text": text})
}
