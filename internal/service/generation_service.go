package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/jobforge/jobforge/internal/ai"
	"github.com/jobforge/jobforge/internal/model"
	"github.com/jobforge/jobforge/internal/prompt"
)

const (
	// ResumeNotProvided is the placeholder callers may pass when no resume
	// text is available; it triggers the retrieval fallback like an empty
	// string does.
	ResumeNotProvided = "Resume content not provided for ATS analysis."

	// atsFallbackQuery stands in for the resume when none was supplied.
	atsFallbackQuery = "resume work experience projects skills education background"

	// achievementFallback is used when the index has nothing to offer the
	// LinkedIn message.
	achievementFallback = "relevant experience in the field"

	defaultContextLimit = 5
	atsFallbackLimit    = 10
)

// GenerationService produces the four application artifacts. Each artifact
// follows the same shape: retrieve context, render a template, ask the
// completion model.
type GenerationService struct {
	generator ai.IGenerator
	retriever *Retriever
	cache     *expirable.LRU[string, string]
}

func NewGenerationService(generator ai.IGenerator, retriever *Retriever) *GenerationService {
	cache := expirable.NewLRU[string, string](1000, nil, 2*time.Hour)
	return &GenerationService{
		generator: generator,
		retriever: retriever,
		cache:     cache,
	}
}

func (s *GenerationService) ResumeBullets(ctx context.Context, req model.GenerationRequest) (string, error) {
	background := s.retriever.Context(ctx, req.JobDescription, defaultContextLimit)
	return s.complete(ctx, prompt.ResumeBullets, map[string]string{
		"job_description": req.JobDescription,
		"context":         background,
		"name":            req.CandidateName,
	})
}

func (s *GenerationService) CoverLetter(ctx context.Context, req model.GenerationRequest) (string, error) {
	background := s.retriever.Context(ctx, req.JobDescription, defaultContextLimit)
	return s.complete(ctx, prompt.CoverLetter, map[string]string{
		"job_description": req.JobDescription,
		"company_name":    req.CompanyName,
		"role_title":      req.RoleTitle,
		"context":         background,
	})
}

// ATSAnalysis scores the resume against the job description. When no resume
// text was supplied it analyzes the indexed background instead, pulling a
// wider net of passages with a fixed query.
func (s *GenerationService) ATSAnalysis(ctx context.Context, req model.GenerationRequest) (string, error) {
	resume := req.ResumeContent
	if strings.TrimSpace(resume) == "" || resume == ResumeNotProvided {
		resume = s.retriever.Context(ctx, atsFallbackQuery, atsFallbackLimit)
	}
	return s.complete(ctx, prompt.ATSAnalysis, map[string]string{
		"job_description": req.JobDescription,
		"resume_content":  resume,
	})
}

func (s *GenerationService) LinkedInMessage(ctx context.Context, req model.GenerationRequest) (string, error) {
	achievement := achievementFallback
	results, err := s.retriever.Search(ctx, req.JobDescription, 1)
	if err != nil {
		logutil.GetLogger(ctx).Error("achievement lookup failed", zap.Error(err))
	} else if len(results) > 0 {
		achievement = results[0].Text
	}
	return s.complete(ctx, prompt.LinkedInMessage, map[string]string{
		"job_description": req.JobDescription,
		"company_name":    req.CompanyName,
		"role_title":      req.RoleTitle,
		"achievement":     achievement,
	})
}

// Generate produces a single artifact by type.
func (s *GenerationService) Generate(ctx context.Context, artifact model.ArtifactType, req model.GenerationRequest) (string, error) {
	switch artifact {
	case model.ArtifactResumeBullets:
		return s.ResumeBullets(ctx, req)
	case model.ArtifactCoverLetter:
		return s.CoverLetter(ctx, req)
	case model.ArtifactATSAnalysis:
		return s.ATSAnalysis(ctx, req)
	case model.ArtifactLinkedInMessage:
		return s.LinkedInMessage(ctx, req)
	default:
		return "", fmt.Errorf("unknown artifact type: %s", artifact)
	}
}

// GenerateAll produces all four artifacts. Completion failures are isolated
// per artifact and replaced with an error placeholder; template errors are
// caller bugs and propagate.
func (s *GenerationService) GenerateAll(ctx context.Context, req model.GenerationRequest) (*model.GenerationResult, error) {
	result := &model.GenerationResult{}
	steps := []struct {
		artifact model.ArtifactType
		run      func(context.Context, model.GenerationRequest) (string, error)
		out      *string
	}{
		{model.ArtifactResumeBullets, s.ResumeBullets, &result.ResumeBullets},
		{model.ArtifactCoverLetter, s.CoverLetter, &result.CoverLetter},
		{model.ArtifactATSAnalysis, s.ATSAnalysis, &result.ATSAnalysis},
		{model.ArtifactLinkedInMessage, s.LinkedInMessage, &result.LinkedInMessage},
	}
	for _, step := range steps {
		text, err := step.run(ctx, req)
		if err != nil {
			if prompt.IsTemplateError(err) {
				return nil, err
			}
			logutil.GetLogger(ctx).Error("artifact generation failed",
				zap.String("artifact", string(step.artifact)), zap.Error(err))
			text = fmt.Sprintf("Error generating %s: %v", step.artifact, err)
		}
		*step.out = text
	}
	return result, nil
}

func (s *GenerationService) complete(ctx context.Context, templateName string, fields map[string]string) (string, error) {
	rendered, err := prompt.Render(templateName, fields)
	if err != nil {
		return "", err
	}
	cacheKey := s.cacheKey(templateName, rendered)
	if cached, ok := s.cache.Get(cacheKey); ok {
		return cached, nil
	}
	text, err := s.generator.Generate(ctx, rendered)
	if err != nil {
		return "", err
	}
	s.cache.Add(cacheKey, text)
	return text, nil
}

func (s *GenerationService) cacheKey(templateName, rendered string) string {
	hash := sha256.Sum256([]byte(rendered))
	return templateName + ":" + hex.EncodeToString(hash[:])
}
