package postgres

import (
	"context"

	"audiobrew/internal/domain/entity"
	"audiobrew/internal/domain/repository"
	"audiobrew/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// podcastRepository implements the repository.PodcastRepository interface.
type podcastRepository struct {
	db *gorm.DB
}

// NewPodcastRepository is the constructor for podcastRepository.
func NewPodcastRepository(db *gorm.DB) repository.PodcastRepository {
	return &podcastRepository{
		db: db,
	}
}

func (repo *podcastRepository) Create(ctx context.Context, podcast *entity.Podcast) error {
	podcastM := fromPodcastDomain(podcast)

	if err := repo.db.WithContext(ctx).Create(podcastM).Error; err != nil {
		return classifyWriteError(err, "failed to create podcast")
	}

	podcast.CreatedAt = podcastM.CreatedAt

	return nil
}

func (repo *podcastRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Podcast, error) {
	var podcastModels []*model.PodcastModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&podcastModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list podcasts")
	}

	podcasts := make([]*entity.Podcast, 0, len(podcastModels))
	for _, podcastM := range podcastModels {
		podcasts = append(podcasts, toPodcastDomain(podcastM))
	}

	return podcasts, nil
}

func (repo *podcastRepository) FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*entity.Podcast, error) {
	var podcastM model.PodcastModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&podcastM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPodcastNotFound
		}

		return nil, errors.Wrap(err, "failed to find podcast")
	}

	return toPodcastDomain(&podcastM), nil
}

func (repo *podcastRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.PodcastModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete podcast")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPodcastNotFound
	}

	return nil
}

func (repo *podcastRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.PodcastModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete user podcasts")
	}

	return nil
}

func toPodcastDomain(podcastM *model.PodcastModel) *entity.Podcast {
	return &entity.Podcast{
		ID:             podcastM.ID,
		UserID:         podcastM.UserID,
		Title:          podcastM.Title,
		ScriptMarkdown: podcastM.ScriptMarkdown,
		AudioURL:       podcastM.AudioURL,
		Duration:       podcastM.Duration,
		SourceEmails:   podcastM.SourceEmails,
		CreatedAt:      podcastM.CreatedAt,
	}
}

func fromPodcastDomain(podcast *entity.Podcast) *model.PodcastModel {
	return &model.PodcastModel{
		ID:             podcast.ID,
		UserID:         podcast.UserID,
		Title:          podcast.Title,
		ScriptMarkdown: podcast.ScriptMarkdown,
		AudioURL:       podcast.AudioURL,
		Duration:       podcast.Duration,
		SourceEmails:   podcast.SourceEmails,
		CreatedAt:      podcast.CreatedAt,
	}
}
