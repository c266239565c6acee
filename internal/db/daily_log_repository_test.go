package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/annavey/moodwell/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func openTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "moodwell-test.db")
	database, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("resolve sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return database
}

func createTestUser(t *testing.T, database *gorm.DB, email string) models.User {
	t.Helper()

	user := models.User{
		Email:     email,
		Name:      "Test User",
		CreatedAt: time.Now().UTC(),
	}
	if err := NewUserRepository(database).Create(&user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func seedLog(t *testing.T, repo *DailyLogRepository, userID uint, createdAt time.Time, mood int, sleepQuality int, sleepHours float64) models.DailyLog {
	t.Helper()

	entry := models.DailyLog{
		ID:                 uuid.NewString(),
		UserID:             userID,
		CreatedAt:          createdAt,
		UpdatedAt:          createdAt,
		MoodLevel:          mood,
		AnxietyLevel:       2,
		StressLevel:        3,
		SleepQuality:       sleepQuality,
		SleepHours:         sleepHours,
		PhysicalActivity:   "Walking",
		SocialInteractions: "Quiet day",
	}
	if err := repo.Create(&entry); err != nil {
		t.Fatalf("create log: %v", err)
	}
	return entry
}

func TestListByUserRangeInclusiveBounds(t *testing.T) {
	database := openTestDatabase(t)
	repo := NewDailyLogRepository(database)
	user := createTestUser(t, database, "range@example.com")

	inside := seedLog(t, repo, user.ID, time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC), 4, 3, 7)
	atStart := seedLog(t, repo, user.ID, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 3, 3, 7)
	seedLog(t, repo, user.ID, time.Date(2024, 2, 2, 9, 0, 0, 0, time.UTC), 2, 3, 7)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 23, 59, 59, 999000000, time.UTC)
	logs, err := repo.ListByUserRange(user.ID, start, end)
	if err != nil {
		t.Fatalf("ListByUserRange: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("got %d logs, want 2", len(logs))
	}
	if logs[0].ID != inside.ID || logs[1].ID != atStart.ID {
		t.Fatalf("expected newest first, got %s then %s", logs[0].ID, logs[1].ID)
	}
}

func TestListByUserRangeScopedToOwner(t *testing.T) {
	database := openTestDatabase(t)
	repo := NewDailyLogRepository(database)
	owner := createTestUser(t, database, "owner@example.com")
	other := createTestUser(t, database, "other@example.com")

	day := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	seedLog(t, repo, owner.ID, day, 4, 3, 7)
	seedLog(t, repo, other.ID, day, 1, 1, 4)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 23, 59, 59, 999000000, time.UTC)
	logs, err := repo.ListByUserRange(owner.ID, start, end)
	if err != nil {
		t.Fatalf("ListByUserRange: %v", err)
	}
	if len(logs) != 1 || logs[0].UserID != owner.ID {
		t.Fatalf("cross-user leakage: %#v", logs)
	}
}

func TestFindByUserAndDayRange(t *testing.T) {
	database := openTestDatabase(t)
	repo := NewDailyLogRepository(database)
	user := createTestUser(t, database, "day@example.com")

	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	created := seedLog(t, repo, user.ID, day.Add(10*time.Hour), 4, 3, 7)

	entry, found, err := repo.FindByUserAndDayRange(user.ID, day, day.AddDate(0, 0, 1).Add(-time.Millisecond))
	if err != nil {
		t.Fatalf("FindByUserAndDayRange: %v", err)
	}
	if !found || entry.ID != created.ID {
		t.Fatalf("found = %v, entry = %+v", found, entry)
	}

	nextDay := day.AddDate(0, 0, 1)
	_, found, err = repo.FindByUserAndDayRange(user.ID, nextDay, nextDay.AddDate(0, 0, 1).Add(-time.Millisecond))
	if err != nil {
		t.Fatalf("FindByUserAndDayRange next day: %v", err)
	}
	if found {
		t.Fatal("adjacent day must be empty")
	}
}

func TestFindByIDForUserHidesForeignRows(t *testing.T) {
	database := openTestDatabase(t)
	repo := NewDailyLogRepository(database)
	owner := createTestUser(t, database, "owner2@example.com")
	other := createTestUser(t, database, "other2@example.com")

	created := seedLog(t, repo, owner.ID, time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC), 4, 3, 7)

	_, found, err := repo.FindByIDForUser(created.ID, other.ID)
	if err != nil {
		t.Fatalf("FindByIDForUser: %v", err)
	}
	if found {
		t.Fatal("foreign user must not see the row")
	}

	entry, found, err := repo.FindByIDForUser(created.ID, owner.ID)
	if err != nil {
		t.Fatalf("FindByIDForUser owner: %v", err)
	}
	if !found || entry.ID != created.ID {
		t.Fatalf("owner lookup failed: found=%v entry=%+v", found, entry)
	}
}

func TestGroupBySleepQuality(t *testing.T) {
	database := openTestDatabase(t)
	repo := NewDailyLogRepository(database)
	user := createTestUser(t, database, "sleep@example.com")

	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	seedLog(t, repo, user.ID, base, 3, 2, 5)
	seedLog(t, repo, user.ID, base.AddDate(0, 0, 1), 3, 2, 6)
	seedLog(t, repo, user.ID, base.AddDate(0, 0, 2), 3, 4, 8)

	stats, err := repo.GroupBySleepQuality(user.ID)
	if err != nil {
		t.Fatalf("GroupBySleepQuality: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("got %d groups, want 2", len(stats))
	}
	if stats[0].SleepQuality != 2 || stats[0].Count != 2 || stats[0].AvgSleepHours != 5.5 {
		t.Fatalf("quality-2 group = %+v", stats[0])
	}
	if stats[1].SleepQuality != 4 || stats[1].Count != 1 || stats[1].AvgSleepHours != 8 {
		t.Fatalf("quality-4 group = %+v", stats[1])
	}
}

func TestListRecentHonorsLimit(t *testing.T) {
	database := openTestDatabase(t)
	repo := NewDailyLogRepository(database)
	user := createTestUser(t, database, "recent@example.com")

	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	for offset := 0; offset < 5; offset++ {
		seedLog(t, repo, user.ID, base.AddDate(0, 0, offset), 3, 3, 7)
	}

	logs, err := repo.ListRecent(user.ID, 3)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(logs) != 3 {
		t.Fatalf("got %d logs, want 3", len(logs))
	}
	for index := 1; index < len(logs); index++ {
		if logs[index].CreatedAt.After(logs[index-1].CreatedAt) {
			t.Fatal("ListRecent must run newest first")
		}
	}
}

func TestMigrationsAreIdempotent(t *testing.T) {
	databasePath := filepath.Join(t.TempDir(), "moodwell-migrate.db")

	for attempt := 0; attempt < 2; attempt++ {
		database, err := OpenSQLite(databasePath)
		if err != nil {
			t.Fatalf("open attempt %d: %v", attempt, err)
		}
		sqlDB, err := database.DB()
		if err != nil {
			t.Fatalf("resolve sql db: %v", err)
		}
		if err := sqlDB.Close(); err != nil {
			t.Fatalf("close attempt %d: %v", attempt, err)
		}
	}

	database, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("final open: %v", err)
	}
	var applied int64
	if err := database.Raw(`SELECT COUNT(*) FROM schema_migrations`).Scan(&applied).Error; err != nil {
		t.Fatalf("count applied migrations: %v", err)
	}
	if applied == 0 {
		t.Fatal("expected at least one applied migration")
	}

	var duplicates int64
	if err := database.Raw(
		`SELECT COUNT(*) FROM (SELECT version FROM schema_migrations GROUP BY version HAVING COUNT(*) > 1)`,
	).Scan(&duplicates).Error; err != nil {
		t.Fatalf("count duplicate versions: %v", err)
	}
	if duplicates != 0 {
		t.Fatalf("found %d duplicated migration versions", duplicates)
	}

	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("resolve sql db: %v", err)
	}
	if err := sqlDB.Close(); err != nil {
		t.Fatalf("final close: %v", err)
	}
}
