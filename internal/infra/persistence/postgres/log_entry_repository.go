// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"shiplog/internal/domain/entity"
	domainerrors "shiplog/internal/domain/errors"
	"shiplog/internal/domain/repository"
	"shiplog/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// logEntryRepository implements the domain's LogEntryRepository interface using GORM.
type logEntryRepository struct {
	db *gorm.DB
}

// NewLogEntryRepository is the constructor for logEntryRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewLogEntryRepository(db *gorm.DB) repository.LogEntryRepository {
	return &logEntryRepository{db: db}
}

// CreateEntries persists a batch of entries. Re-synced entries upsert on id so
// a device retry never produces duplicates.
func (repo *logEntryRepository) CreateEntries(ctx context.Context, entries []*entity.LogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	models := make([]*model.LogEntryModel, 0, len(entries))
	for _, entry := range entries {
		models = append(models, fromLogEntryDomain(entry))
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(models).Error
	if err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required entry fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create log entries")
	}

	return nil
}

// FindRecent returns the newest non-archived entries, bounded by limit.
func (repo *logEntryRepository) FindRecent(ctx context.Context, limit int) ([]*entity.LogEntry, error) {
	var models []*model.LogEntryModel
	err := repo.db.WithContext(ctx).
		Where("archived = ?", false).
		Order("timestamp DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find recent log entries")
	}

	return toLogEntryDomains(models), nil
}

// FindArchived returns every entry belonging to an archived voyage.
func (repo *logEntryRepository) FindArchived(ctx context.Context) ([]*entity.LogEntry, error) {
	var models []*model.LogEntryModel
	err := repo.db.WithContext(ctx).
		Where("archived = ?", true).
		Order("timestamp DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find archived log entries")
	}

	return toLogEntryDomains(models), nil
}

// ArchiveVoyage flags every entry of the voyage as archived.
func (repo *logEntryRepository) ArchiveVoyage(ctx context.Context, voyageID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LogEntryModel{}).
		Where("voyage_id = ?", voyageID).
		Update("archived", true)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to archive voyage")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVoyageNotFound
	}

	return nil
}

// UnarchiveVoyage restores an archived voyage to the live log.
func (repo *logEntryRepository) UnarchiveVoyage(ctx context.Context, voyageID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LogEntryModel{}).
		Where("voyage_id = ?", voyageID).
		Update("archived", false)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to unarchive voyage")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVoyageNotFound
	}

	return nil
}

// DeleteEntry removes one entry and reports whether it existed.
func (repo *logEntryRepository) DeleteEntry(ctx context.Context, id uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.LogEntryModel{})
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to delete log entry")
	}

	return result.RowsAffected > 0, nil
}

// DeleteVoyage removes every entry of the voyage and reports whether any existed.
func (repo *logEntryRepository) DeleteVoyage(ctx context.Context, voyageID uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("voyage_id = ?", voyageID).
		Delete(&model.LogEntryModel{})
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to delete voyage entries")
	}

	return result.RowsAffected > 0, nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

func toLogEntryDomains(models []*model.LogEntryModel) []*entity.LogEntry {
	entries := make([]*entity.LogEntry, 0, len(models))
	for _, m := range models {
		entries = append(entries, toLogEntryDomain(m))
	}

	return entries
}

// toLogEntryDomain converts a GORM LogEntryModel to a domain LogEntry entity.
func toLogEntryDomain(data *model.LogEntryModel) *entity.LogEntry {
	if data == nil {
		return nil
	}

	return &entity.LogEntry{
		ID:                   data.ID,
		Timestamp:            data.Timestamp,
		Latitude:             data.Latitude,
		Longitude:            data.Longitude,
		EntryType:            entity.EntryType(data.EntryType),
		VoyageID:             data.VoyageID,
		Source:               entity.EntrySource(data.Source),
		IsOnWater:            data.IsOnWater,
		SpeedKts:             data.SpeedKts,
		CourseDeg:            data.CourseDeg,
		CumulativeDistanceNM: data.CumulativeDistanceNM,
		WindSpeedKts:         data.WindSpeedKts,
		WindDirectionDeg:     data.WindDirectionDeg,
		Title:                data.Title,
		Note:                 data.Note,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

// fromLogEntryDomain converts a domain LogEntry entity to a GORM LogEntryModel for persistence.
func fromLogEntryDomain(data *entity.LogEntry) *model.LogEntryModel {
	if data == nil {
		return nil
	}

	return &model.LogEntryModel{
		ID:                   data.ID,
		Timestamp:            data.Timestamp,
		Latitude:             data.Latitude,
		Longitude:            data.Longitude,
		EntryType:            data.EntryType.String(),
		VoyageID:             data.VoyageID,
		Source:               string(data.Source),
		IsOnWater:            data.IsOnWater,
		SpeedKts:             data.SpeedKts,
		CourseDeg:            data.CourseDeg,
		CumulativeDistanceNM: data.CumulativeDistanceNM,
		WindSpeedKts:         data.WindSpeedKts,
		WindDirectionDeg:     data.WindDirectionDeg,
		Title:                data.Title,
		Note:                 data.Note,
	}
}
