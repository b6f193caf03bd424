// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"

	"audiobrew/internal/domain/entity"
	domainerrors "audiobrew/internal/domain/errors"
	"audiobrew/internal/domain/repository"
	"audiobrew/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// credentialRepository implements the repository.CredentialRepository interface.
type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(db *gorm.DB) repository.CredentialRepository {
	return &credentialRepository{
		db: db,
	}
}

// FindByUser retrieves the Gmail connection stored for a user.
func (repo *credentialRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.CredentialBundle, error) {
	var connM model.GmailConnectionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&connM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find gmail connection")
	}

	return toCredentialDomain(&connM)
}

// Upsert inserts the connection or replaces the stored bundle and email.
func (repo *credentialRepository) Upsert(ctx context.Context, userID uuid.UUID, bundle *entity.CredentialBundle) error {
	connM, err := fromCredentialDomain(userID, bundle)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"credentials", "email", "updated_at"}),
		}).
		Create(connM).Error; err != nil {
		return classifyWriteError(err, "failed to save gmail connection")
	}

	return nil
}

// DeleteByUser removes the user's connection, if any.
func (repo *credentialRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.GmailConnectionModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete gmail connection")
	}

	return nil
}

func toCredentialDomain(connM *model.GmailConnectionModel) (*entity.CredentialBundle, error) {
	bundle := new(entity.CredentialBundle)
	if err := json.Unmarshal(connM.Credentials, bundle); err != nil {
		return nil, errors.Wrap(err, "failed to decode stored credentials")
	}
	bundle.Email = connM.Email

	return bundle, nil
}

func fromCredentialDomain(userID uuid.UUID, bundle *entity.CredentialBundle) (*model.GmailConnectionModel, error) {
	raw, err := json.Marshal(bundle)
	if err != nil {
		return nil, domainerrors.ErrInvalidCredentialBundle.WrapMessage(err.Error())
	}

	return &model.GmailConnectionModel{
		UserID:      userID,
		Credentials: raw,
		Email:       bundle.Email,
	}, nil
}
