package job

import (
	"context"

	"github.com/jobforge/jobforge/internal/service"
)

// ReindexJob periodically rebuilds the vector index from the document
// source, picking up files added or edited since the last pass.
type ReindexJob struct {
	ingest *service.IngestService
}

func NewReindexJob(ingest *service.IngestService) *ReindexJob {
	return &ReindexJob{ingest: ingest}
}

func (j *ReindexJob) Name() string {
	return "reindex"
}

func (j *ReindexJob) Run(ctx context.Context) error {
	if j.ingest == nil {
		return nil
	}
	_, err := j.ingest.Reindex(ctx)
	return err
}
