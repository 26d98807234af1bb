package repository

import (
	"context"
	"errors"

	"github.com/blaisecz/sleep-diary/internal/domain"
	"github.com/blaisecz/sleep-diary/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SleepRecordRepository stores one daily record per user and date.
type SleepRecordRepository interface {
	Get(ctx context.Context, userID uuid.UUID, date string) (*domain.DailySleepRecord, error)
	// GetRange returns records with from <= date <= to, keyed by date.
	GetRange(ctx context.Context, userID uuid.UUID, from, to string) (map[string]domain.DailySleepRecord, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.SleepRecordFilter) ([]domain.DailySleepRecord, error)
	// Put inserts the record or overwrites the stored record for its date.
	Put(ctx context.Context, record *domain.DailySleepRecord) error
	Delete(ctx context.Context, userID uuid.UUID, date string) error
}

type sleepRecordRepository struct {
	db *gorm.DB
}

func NewSleepRecordRepository(db *gorm.DB) SleepRecordRepository {
	return &sleepRecordRepository{db: db}
}

func (r *sleepRecordRepository) Get(ctx context.Context, userID uuid.UUID, date string) (*domain.DailySleepRecord, error) {
	var record domain.DailySleepRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *sleepRecordRepository) GetRange(ctx context.Context, userID uuid.UUID, from, to string) (map[string]domain.DailySleepRecord, error) {
	var records []domain.DailySleepRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]domain.DailySleepRecord, len(records))
	for _, rec := range records {
		byDate[rec.Date] = rec
	}
	return byDate, nil
}

func (r *sleepRecordRepository) List(ctx context.Context, userID uuid.UUID, filter domain.SleepRecordFilter) ([]domain.DailySleepRecord, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC")

	// Date keys are zero-padded, so string comparison orders them.
	if filter.From != "" {
		query = query.Where("date >= ?", filter.From)
	}
	if filter.To != "" {
		query = query.Where("date <= ?", filter.To)
	}

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err != nil {
			return nil, errors.Join(domain.ErrInvalidInput, err)
		}
		query = query.Where("date < ?", cursor.Date)
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var records []domain.DailySleepRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *sleepRecordRepository) Put(ctx context.Context, record *domain.DailySleepRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	return r.db.WithContext(ctx).
		Omit("User").
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"bed_time", "wake_time", "bed_time_iso", "wake_time_iso", "duration",
				"deep", "light", "rem", "awake", "actual_sleep", "total_sleep_duration",
				"score", "source", "is_manual_entry", "session_count", "synced_at", "updated_at",
			}),
		}).
		Create(record).Error
}

func (r *sleepRecordRepository) Delete(ctx context.Context, userID uuid.UUID, date string) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Delete(&domain.DailySleepRecord{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
