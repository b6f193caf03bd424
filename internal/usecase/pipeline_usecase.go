package usecase

import (
	"context"

	"github.com/google/uuid"
)

// PipelineUsecase runs one persisted podcast generation job end to end
type PipelineUsecase interface {
	// Run executes the job. Failures inside the pipeline are recorded on the
	// job and not returned; an error means the job itself could not be loaded or updated.
	Run(ctx context.Context, jobID uuid.UUID) error
}
