package services

import (
	"errors"
	"time"

	"github.com/annavey/moodwell/internal/models"
	"github.com/google/uuid"
)

var (
	ErrDuplicateDailyLog = errors.New("a log already exists for this day")
	ErrEditWindowClosed  = errors.New("logs can only be edited on the day they were created")
	ErrLogNotFound       = errors.New("log not found")
)

// LogWriteRepository is the slice of the daily-log store the invariant layer
// mutates through.
type LogWriteRepository interface {
	FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.DailyLog, bool, error)
	ListByUserDayRange(userID uint, dayStart time.Time, dayEnd time.Time) ([]models.DailyLog, error)
	FindByIDForUser(logID string, userID uint) (models.DailyLog, bool, error)
	Create(entry *models.DailyLog) error
	Save(entry *models.DailyLog) error
	Delete(entry *models.DailyLog) error
}

// LogService wraps raw persistence with the one-log-per-calendar-day rule and
// the creation-day edit window. Day boundaries follow the configured server
// location.
type LogService struct {
	logs      LogWriteRepository
	publisher LogPublisher
	location  *time.Location
	clock     func() time.Time
}

func NewLogService(logs LogWriteRepository, publisher LogPublisher, location *time.Location) *LogService {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	if location == nil {
		location = time.UTC
	}
	return &LogService{
		logs:      logs,
		publisher: publisher,
		location:  location,
		clock:     time.Now,
	}
}

// CreateLog persists a new daily log effective at the given instant (default:
// now) after verifying no log exists for that calendar day. Announces the new
// record to subscribers.
func (service *LogService) CreateLog(userID uint, input LogEntryInput, effectiveAt *time.Time) (models.DailyLog, error) {
	if err := input.Validate(); err != nil {
		return models.DailyLog{}, err
	}

	effective := service.clock()
	if effectiveAt != nil {
		effective = *effectiveAt
	}

	dayStart, dayEnd := DayBounds(effective, service.location)
	_, found, err := service.logs.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return models.DailyLog{}, err
	}
	if found {
		return models.DailyLog{}, ErrDuplicateDailyLog
	}

	entry := models.DailyLog{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: effective,
		UpdatedAt: effective,
	}
	input.apply(&entry)

	if err := service.logs.Create(&entry); err != nil {
		return models.DailyLog{}, err
	}

	service.publisher.Publish(LogEvent{Type: EventNewLog, Data: entry})
	return entry, nil
}

// UpdateLog applies field updates to an owned log, but only on the calendar
// day the log was created. A log owned by a different user is reported as
// not found.
func (service *LogService) UpdateLog(userID uint, logID string, input LogEntryInput) (models.DailyLog, error) {
	entry, found, err := service.logs.FindByIDForUser(logID, userID)
	if err != nil {
		return models.DailyLog{}, err
	}
	if !found {
		return models.DailyLog{}, ErrLogNotFound
	}

	if !SameCalendarDay(service.clock(), entry.CreatedAt, service.location) {
		return models.DailyLog{}, ErrEditWindowClosed
	}

	if err := input.Validate(); err != nil {
		return models.DailyLog{}, err
	}

	input.apply(&entry)
	entry.UpdatedAt = service.clock()
	if err := service.logs.Save(&entry); err != nil {
		return models.DailyLog{}, err
	}
	return entry, nil
}

// DeleteLog removes an owned log at any time and announces the deletion.
func (service *LogService) DeleteLog(userID uint, logID string) error {
	entry, found, err := service.logs.FindByIDForUser(logID, userID)
	if err != nil {
		return err
	}
	if !found {
		return ErrLogNotFound
	}

	if err := service.logs.Delete(&entry); err != nil {
		return err
	}

	service.publisher.Publish(LogEvent{Type: EventDeleteLog, Data: map[string]string{"id": entry.ID}})
	return nil
}

// DeduplicateDay reconciles a day that holds more than one log, which can
// only arise from concurrent creations racing past the pre-insert check. The
// most recently created log is retained and the rest are deleted.
func (service *LogService) DeduplicateDay(userID uint, day time.Time) (models.DailyLog, error) {
	dayStart, dayEnd := DayBounds(day, service.location)
	entries, err := service.logs.ListByUserDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return models.DailyLog{}, err
	}
	if len(entries) == 0 {
		return models.DailyLog{}, ErrLogNotFound
	}

	retained := entries[0]
	for index := 1; index < len(entries); index++ {
		duplicate := entries[index]
		if err := service.logs.Delete(&duplicate); err != nil {
			return models.DailyLog{}, err
		}
		service.publisher.Publish(LogEvent{Type: EventDeleteLog, Data: map[string]string{"id": duplicate.ID}})
	}
	return retained, nil
}
