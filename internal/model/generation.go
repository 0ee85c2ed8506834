package model

// ArtifactType names one of the four generated application materials.
type ArtifactType string

const (
	ArtifactResumeBullets   ArtifactType = "resume_bullets"
	ArtifactCoverLetter     ArtifactType = "cover_letter"
	ArtifactATSAnalysis     ArtifactType = "ats_analysis"
	ArtifactLinkedInMessage ArtifactType = "linkedin_message"
)

// GenerationRequest bundles the caller-supplied fields shared by the four
// artifact operations. ResumeContent is optional; when blank the ATS
// analysis falls back to retrieved passages.
type GenerationRequest struct {
	JobDescription string `json:"job_description"`
	CompanyName    string `json:"company_name"`
	RoleTitle      string `json:"role_title"`
	CandidateName  string `json:"candidate_name"`
	ResumeContent  string `json:"resume_content"`
}

// GenerationResult holds the four independently generated artifacts.
// Each field is either generated text or an error placeholder; a failure in
// one never blanks the others.
type GenerationResult struct {
	ResumeBullets   string `json:"resume_bullets"`
	CoverLetter     string `json:"cover_letter"`
	ATSAnalysis     string `json:"ats_analysis"`
	LinkedInMessage string `json:"linkedin_message"`
}

// IngestSummary reports the outcome of one ingest pass over a source.
type IngestSummary struct {
	FilesSeen    int      `json:"files_seen"`
	DocsIndexed  int      `json:"docs_indexed"`
	ChunksStored int      `json:"chunks_stored"`
	Skipped      []string `json:"skipped,omitempty"`
}
