package db

import (
	"errors"
	"time"

	"github.com/annavey/moodwell/internal/models"
	"gorm.io/gorm"
)

type DailyLogRepository struct {
	database *gorm.DB
}

func NewDailyLogRepository(database *gorm.DB) *DailyLogRepository {
	return &DailyLogRepository{database: database}
}

func (repo *DailyLogRepository) ListByUser(userID uint) ([]models.DailyLog, error) {
	logs := make([]models.DailyLog, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// ListByUserRange returns logs whose effective timestamp falls within the
// inclusive [start, end] window, newest first.
func (repo *DailyLogRepository) ListByUserRange(userID uint, start time.Time, end time.Time) ([]models.DailyLog, error) {
	logs := make([]models.DailyLog, 0)
	if err := repo.database.
		Where("user_id = ? AND created_at >= ? AND created_at <= ?", userID, start, end).
		Order("created_at DESC, id DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// ListByUserSince returns logs at or after the cutoff, oldest first.
func (repo *DailyLogRepository) ListByUserSince(userID uint, since time.Time) ([]models.DailyLog, error) {
	logs := make([]models.DailyLog, 0)
	if err := repo.database.
		Where("user_id = ? AND created_at >= ?", userID, since).
		Order("created_at ASC, id ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *DailyLogRepository) ListRecent(userID uint, limit int) ([]models.DailyLog, error) {
	logs := make([]models.DailyLog, 0)
	query := repo.database.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *DailyLogRepository) ListByUserDayRange(userID uint, dayStart time.Time, dayEnd time.Time) ([]models.DailyLog, error) {
	logs := make([]models.DailyLog, 0)
	if err := repo.database.
		Where("user_id = ? AND created_at >= ? AND created_at <= ?", userID, dayStart, dayEnd).
		Order("created_at DESC, id DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *DailyLogRepository) FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.DailyLog, bool, error) {
	entry := models.DailyLog{}
	result := repo.database.
		Where("user_id = ? AND created_at >= ? AND created_at <= ?", userID, dayStart, dayEnd).
		Order("created_at DESC, id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.DailyLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DailyLog{}, false, nil
	}
	return entry, true, nil
}

func (repo *DailyLogRepository) FindByIDForUser(logID string, userID uint) (models.DailyLog, bool, error) {
	entry := models.DailyLog{}
	err := repo.database.
		Where("id = ? AND user_id = ?", logID, userID).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.DailyLog{}, false, nil
	}
	if err != nil {
		return models.DailyLog{}, false, err
	}
	return entry, true, nil
}

func (repo *DailyLogRepository) GroupBySleepQuality(userID uint) ([]models.SleepQualityStat, error) {
	stats := make([]models.SleepQualityStat, 0)
	if err := repo.database.
		Model(&models.DailyLog{}).
		Select("sleep_quality, COUNT(*) AS count, AVG(sleep_hours) AS avg_sleep_hours").
		Where("user_id = ?", userID).
		Group("sleep_quality").
		Order("sleep_quality ASC").
		Scan(&stats).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

func (repo *DailyLogRepository) Create(entry *models.DailyLog) error {
	return repo.database.Create(entry).Error
}

func (repo *DailyLogRepository) Save(entry *models.DailyLog) error {
	return repo.database.Save(entry).Error
}

func (repo *DailyLogRepository) Delete(entry *models.DailyLog) error {
	return repo.database.Delete(entry).Error
}
