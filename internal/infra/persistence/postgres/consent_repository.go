package postgres

import (
	"context"

	"editorradar/internal/domain/entity"
	domainerrors "editorradar/internal/domain/errors"
	"editorradar/internal/domain/repository"
	"editorradar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// consentRepository implements the domain.ConsentRepository interface.
type consentRepository struct {
	db *gorm.DB
}

// NewConsentRepository is the constructor for consentRepository.
func NewConsentRepository(db *gorm.DB) repository.ConsentRepository {
	return &consentRepository{db: db}
}

// Append inserts a consent decision. Rows are never updated.
func (repo *consentRepository) Append(ctx context.Context, record *entity.ConsentRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	consentM := fromConsentDomain(record)

	if err := repo.db.WithContext(ctx).Create(consentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrInvalidInput.WrapMessage("consent record already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append consent record")
	}

	return nil
}

// FindLatestByUser returns the most recent decision of the user.
func (repo *consentRepository) FindLatestByUser(ctx context.Context, userID uuid.UUID) (*entity.ConsentRecord, error) {
	var consentM model.ConsentRecordModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		First(&consentM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConsentNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find latest consent record")
	}

	return toConsentDomain(&consentM), nil
}
