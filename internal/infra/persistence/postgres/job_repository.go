package postgres

import (
	"context"

	"audiobrew/internal/domain/entity"
	"audiobrew/internal/domain/repository"
	"audiobrew/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// jobRepository implements the repository.JobRepository interface.
type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository is the constructor for jobRepository.
func NewJobRepository(db *gorm.DB) repository.JobRepository {
	return &jobRepository{
		db: db,
	}
}

func (repo *jobRepository) Create(ctx context.Context, job *entity.PodcastJob) error {
	jobM := fromJobDomain(job)

	if err := repo.db.WithContext(ctx).Create(jobM).Error; err != nil {
		return classifyWriteError(err, "failed to create podcast job")
	}

	job.CreatedAt = jobM.CreatedAt
	job.UpdatedAt = jobM.UpdatedAt

	return nil
}

func (repo *jobRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PodcastJob, error) {
	return repo.findOne(repo.db.WithContext(ctx).Where("id = ?", id))
}

func (repo *jobRepository) FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*entity.PodcastJob, error) {
	return repo.findOne(repo.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID))
}

func (repo *jobRepository) findOne(query *gorm.DB) (*entity.PodcastJob, error) {
	var jobM model.PodcastJobModel

	if err := query.First(&jobM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrJobNotFound
		}

		return nil, errors.Wrap(err, "failed to find podcast job")
	}

	return toJobDomain(&jobM), nil
}

// UpdateStatus writes the new status and error text, and the timestamps that are set.
func (repo *jobRepository) UpdateStatus(ctx context.Context, id uuid.UUID, update repository.JobStatusUpdate) error {
	updates := map[string]any{
		"status": string(update.Status),
		"error":  update.Error,
	}
	if update.StartedAt != nil {
		updates["started_at"] = *update.StartedAt
	}
	if update.FinishedAt != nil {
		updates["finished_at"] = *update.FinishedAt
	}

	result := repo.db.WithContext(ctx).
		Model(&model.PodcastJobModel{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update podcast job")
	}

	if result.RowsAffected == 0 {
		return repository.ErrJobNotFound
	}

	return nil
}

func (repo *jobRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.PodcastJobModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete user podcast jobs")
	}

	return nil
}

func toJobDomain(jobM *model.PodcastJobModel) *entity.PodcastJob {
	return &entity.PodcastJob{
		ID:         jobM.ID,
		UserID:     jobM.UserID,
		EmailIDs:   []string(jobM.EmailIDs),
		Title:      jobM.Title,
		Status:     entity.JobStatus(jobM.Status),
		Error:      jobM.Error,
		CreatedAt:  jobM.CreatedAt,
		UpdatedAt:  jobM.UpdatedAt,
		StartedAt:  jobM.StartedAt,
		FinishedAt: jobM.FinishedAt,
	}
}

func fromJobDomain(job *entity.PodcastJob) *model.PodcastJobModel {
	return &model.PodcastJobModel{
		ID:         job.ID,
		UserID:     job.UserID,
		EmailIDs:   datatypes.NewJSONSlice(job.EmailIDs),
		Title:      job.Title,
		Status:     string(job.Status),
		Error:      job.Error,
		CreatedAt:  job.CreatedAt,
		UpdatedAt:  job.UpdatedAt,
		StartedAt:  job.StartedAt,
		FinishedAt: job.FinishedAt,
	}
}
