package postgres

import (
	"context"
	"strings"
	"time"

	"editorradar/internal/domain/entity"
	domainerrors "editorradar/internal/domain/errors"
	"editorradar/internal/domain/repository"
	"editorradar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// editorLocationRepository implements the domain.EditorLocationRepository interface.
type editorLocationRepository struct {
	db *gorm.DB
}

// NewEditorLocationRepository is the constructor for editorLocationRepository.
func NewEditorLocationRepository(db *gorm.DB) repository.EditorLocationRepository {
	return &editorLocationRepository{db: db}
}

// FindByEditorID retrieves the editor's location record.
func (repo *editorLocationRepository) FindByEditorID(ctx context.Context, editorID uuid.UUID) (*entity.EditorLocation, error) {
	var locationM model.EditorLocationModel
	err := repo.db.WithContext(ctx).
		Where("editor_id = ?", editorID).
		First(&locationM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEditorLocationNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find editor location")
	}

	return toEditorLocationDomain(&locationM), nil
}

// Upsert writes the record and its geography column in one statement.
func (repo *editorLocationRepository) Upsert(ctx context.Context, location *entity.EditorLocation) error {
	locationM := fromEditorLocationDomain(location)

	query := `
		INSERT INTO editor_locations (
			editor_id, latitude, longitude, location,
			city, state, country, country_code,
			visibility_enabled, visibility_level,
			created_at, updated_at
		) VALUES (
			?, ?, ?, ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography,
			?, ?, ?, ?,
			?, ?,
			NOW(), NOW()
		)
		ON CONFLICT (editor_id) DO UPDATE SET
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			location = EXCLUDED.location,
			city = EXCLUDED.city,
			state = EXCLUDED.state,
			country = EXCLUDED.country,
			country_code = EXCLUDED.country_code,
			visibility_enabled = EXCLUDED.visibility_enabled,
			visibility_level = EXCLUDED.visibility_level,
			updated_at = NOW()
		RETURNING created_at, updated_at
	`

	var stamps struct {
		CreatedAt time.Time
		UpdatedAt time.Time
	}
	err := repo.db.WithContext(ctx).
		Raw(query,
			locationM.EditorID, locationM.Latitude, locationM.Longitude,
			locationM.Longitude, locationM.Latitude,
			locationM.City, locationM.State, locationM.Country, locationM.CountryCode,
			locationM.VisibilityEnabled, locationM.VisibilityLevel,
		).
		Scan(&stamps).Error
	if err != nil {
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidInput.WrapMessage("editor location violates table constraints")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert editor location")
	}

	location.CreatedAt = stamps.CreatedAt
	location.UpdatedAt = stamps.UpdatedAt

	return nil
}

// FindCandidatesWithin runs a bounding-box prefilter followed by PostGIS ST_DWithin on the
// geography column and joins the profile projection. It is served by a read replica when one is configured.
func (repo *editorLocationRepository) FindCandidatesWithin(ctx context.Context, center entity.GeoPoint, radiusKm float64) ([]*entity.EditorCandidate, error) {
	box, boxArgs := newBoundingBox(center, radiusKm).clause("l")

	var sb strings.Builder
	sb.WriteString(`
		SELECT
			l.editor_id, l.latitude, l.longitude,
			l.city, l.state, l.country, l.country_code,
			l.visibility_enabled, l.visibility_level,
			l.created_at, l.updated_at,
			p.display_name, p.avatar_url, p.rating, p.review_count,
			p.hourly_rate, p.skills, p.available
		FROM editor_locations l
		LEFT JOIN editor_profiles p ON p.editor_id = l.editor_id
		WHERE l.visibility_enabled = true
		  AND `)
	sb.WriteString(box)
	sb.WriteString(`
		  AND ST_DWithin(
		    l.location,
		    ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography,
		    ?
		  )
		ORDER BY l.editor_id
	`)

	args := append(boxArgs, center.Lng, center.Lat, radiusKm*1000)

	var rows []*model.EditorCandidateRow
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Raw(sb.String(), args...).
		Scan(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find editor candidates within radius")
	}

	candidates := make([]*entity.EditorCandidate, 0, len(rows))
	for _, row := range rows {
		candidates = append(candidates, toEditorCandidateDomain(row))
	}

	return candidates, nil
}
