package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/kokushiworks/exam_bank/keys"
	"github.com/kokushiworks/exam_bank/models"
	"gorm.io/gorm"
)

// QuestionStore is the single write path to the question collection.
// Uniqueness lives on the canonical key, which Upsert recomputes from the
// display number before every write so the index can never drift from the
// normalizer.
type QuestionStore struct {
	db *gorm.DB
}

func New(db *gorm.DB) *QuestionStore {
	return &QuestionStore{db: db}
}

// Transaction runs fn against a store bound to one transaction.
func (s *QuestionStore) Transaction(ctx context.Context, fn func(*QuestionStore) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&QuestionStore{db: tx})
	})
}

// Upsert inserts rec, or updates the stored row sharing its canonical key
// in place, preserving that row's identity. The returned id is the stored
// identity either way.
func (s *QuestionStore) Upsert(ctx context.Context, rec *models.QuestionRecord) (uuid.UUID, error) {
	rec.CanonicalKey = keys.Normalize(rec.DisplayNumber)

	var existing models.QuestionRecord
	err := s.db.WithContext(ctx).First(&existing, "canonical_key = ?", rec.CanonicalKey).Error
	switch {
	case err == nil:
		rec.ID = existing.ID
		rec.CreatedAt = existing.CreatedAt
		if err := s.db.WithContext(ctx).Save(rec).Error; err != nil {
			return uuid.Nil, err
		}
		return rec.ID, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
			return uuid.Nil, err
		}
		return rec.ID, nil
	default:
		return uuid.Nil, err
	}
}

// GetAll returns a full snapshot of the collection, in no defined order.
func (s *QuestionStore) GetAll(ctx context.Context) ([]models.QuestionRecord, error) {
	var records []models.QuestionRecord
	if err := s.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// ListDistinctYears returns the exam-year labels present in the store,
// descending by their natural string order.
func (s *QuestionStore) ListDistinctYears(ctx context.Context) ([]string, error) {
	var years []string
	err := s.db.WithContext(ctx).
		Model(&models.QuestionRecord{}).
		Distinct("exam_year").
		Order("exam_year DESC").
		Pluck("exam_year", &years).Error
	if err != nil {
		return nil, err
	}
	return years, nil
}

// DeleteByYear removes every record of one exam year and reports how many
// rows went. Maintenance path; nothing else ever deletes records.
func (s *QuestionStore) DeleteByYear(ctx context.Context, year string) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("exam_year = ?", year).
		Delete(&models.QuestionRecord{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (s *QuestionStore) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.QuestionRecord{}).Count(&count).Error
	return count, err
}
