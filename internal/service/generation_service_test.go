package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jobforge/jobforge/internal/model"
)

var errStub = errors.New("stub failure")

type stubGenerator struct {
	output  string
	failOn  string
	prompts []string
}

func (g *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	if g.failOn != "" && strings.Contains(prompt, g.failOn) {
		return "", errStub
	}
	return g.output, nil
}

func testRequest() model.GenerationRequest {
	return model.GenerationRequest{
		JobDescription: "Senior backend engineer, Go and Postgres.",
		CompanyName:    "Acme",
		RoleTitle:      "Senior Backend Engineer",
		CandidateName:  "Sam Doe",
	}
}

func newTestGeneration(gen *stubGenerator, searcher *stubSearcher) *GenerationService {
	return NewGenerationService(gen, NewRetriever(searcher))
}

func TestResumeBulletsUsesRetrievedContext(t *testing.T) {
	gen := &stubGenerator{output: "• Shipped things."}
	searcher := &stubSearcher{results: []model.SearchResult{{Text: "Led a migration to Go services."}}}
	svc := newTestGeneration(gen, searcher)

	got, err := svc.ResumeBullets(context.Background(), testRequest())
	require.NoError(t, err)
	require.Equal(t, "• Shipped things.", got)
	require.Len(t, gen.prompts, 1)
	require.Contains(t, gen.prompts[0], "Led a migration to Go services.")
	require.Contains(t, gen.prompts[0], "Sam Doe")
	require.Equal(t, 5, searcher.lastLimit)
}

func TestATSAnalysisWithResumeSkipsRetrieval(t *testing.T) {
	gen := &stubGenerator{output: "**Score**: 80%"}
	searcher := &stubSearcher{}
	svc := newTestGeneration(gen, searcher)

	req := testRequest()
	req.ResumeContent = "Ten years of Go experience."
	_, err := svc.ATSAnalysis(context.Background(), req)
	require.NoError(t, err)
	require.Zero(t, searcher.calls)
	require.Contains(t, gen.prompts[0], "Ten years of Go experience.")
}

func TestATSAnalysisFallsBackToRetrieval(t *testing.T) {
	gen := &stubGenerator{output: "**Score**: 60%"}
	searcher := &stubSearcher{results: []model.SearchResult{{Text: "Built data pipelines."}}}
	svc := newTestGeneration(gen, searcher)

	for _, resume := range []string{"", "   ", ResumeNotProvided} {
		gen.prompts = nil
		req := testRequest()
		req.ResumeContent = resume
		_, err := svc.ATSAnalysis(context.Background(), req)
		require.NoError(t, err)
		require.Equal(t, atsFallbackQuery, searcher.lastQuery)
		require.Equal(t, atsFallbackLimit, searcher.lastLimit)
		require.Contains(t, gen.prompts[0], "Built data pipelines.")
	}
}

func TestLinkedInMessageTopMatchAsAchievement(t *testing.T) {
	gen := &stubGenerator{output: "Hi [RECRUITER_NAME],"}
	searcher := &stubSearcher{results: []model.SearchResult{
		{Text: "Cut deploy times by 70%."},
		{Text: "Mentored four engineers."},
	}}
	svc := newTestGeneration(gen, searcher)

	_, err := svc.LinkedInMessage(context.Background(), testRequest())
	require.NoError(t, err)
	require.Equal(t, 1, searcher.lastLimit)
	require.Contains(t, gen.prompts[0], "Cut deploy times by 70%.")
	require.NotContains(t, gen.prompts[0], "Mentored four engineers.")
}

func TestLinkedInMessageFallbackAchievement(t *testing.T) {
	gen := &stubGenerator{output: "Hi [RECRUITER_NAME],"}
	svc := newTestGeneration(gen, &stubSearcher{})

	_, err := svc.LinkedInMessage(context.Background(), testRequest())
	require.NoError(t, err)
	require.Contains(t, gen.prompts[0], "relevant experience in the field")
}

func TestGenerateAllIsolatesCompletionFailure(t *testing.T) {
	gen := &stubGenerator{output: "ok", failOn: "cover letter writer"}
	svc := newTestGeneration(gen, &stubSearcher{})

	result, err := svc.GenerateAll(context.Background(), testRequest())
	require.NoError(t, err)
	require.Equal(t, "ok", result.ResumeBullets)
	require.Equal(t, "ok", result.ATSAnalysis)
	require.Equal(t, "ok", result.LinkedInMessage)
	require.Contains(t, result.CoverLetter, "Error generating cover_letter")
}

func TestGenerateUnknownArtifact(t *testing.T) {
	svc := newTestGeneration(&stubGenerator{output: "ok"}, &stubSearcher{})
	_, err := svc.Generate(context.Background(), model.ArtifactType("poem"), testRequest())
	require.Error(t, err)
}

func TestGenerateCachesIdenticalPrompts(t *testing.T) {
	gen := &stubGenerator{output: "ok"}
	svc := newTestGeneration(gen, &stubSearcher{})

	_, err := svc.ResumeBullets(context.Background(), testRequest())
	require.NoError(t, err)
	_, err = svc.ResumeBullets(context.Background(), testRequest())
	require.NoError(t, err)
	require.Len(t, gen.prompts, 1)
}
