package repositories

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"fitness_backend/internal/database"
	"fitness_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var repoDBCounter atomic.Int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(database.Options{
		Driver: database.DriverSQLite,
		DSN:    fmt.Sprintf("file:repo_%d?mode=memory&cache=shared", repoDBCounter.Add(1)),
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func newClass(t *testing.T, db *gorm.DB, capacity int) *models.Class {
	t.Helper()
	class := &models.Class{
		ProgramID:       "program",
		TrainerID:       "trainer",
		Date:            models.AddDays(models.Today(), 1),
		StartTime:       models.NewClock(time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC)),
		EndTime:         models.NewClock(time.Date(0, 1, 1, 10, 0, 0, 0, time.UTC)),
		MaxParticipants: capacity,
		IsActive:        true,
	}
	require.NoError(t, NewClassRepository().Create(db, class))
	return class
}

func enrolled(t *testing.T, db *gorm.DB, id string) int {
	t.Helper()
	var c models.Class
	require.NoError(t, db.First(&c, "id = ?", id).Error)
	return c.EnrolledCount
}

func TestIncrementEnrolled_StopsAtCapacity(t *testing.T) {
	db := newTestDB(t)
	repo := NewClassRepository()
	class := newClass(t, db, 2)

	require.NoError(t, repo.IncrementEnrolled(db, class.ID))
	require.NoError(t, repo.IncrementEnrolled(db, class.ID))
	assert.ErrorIs(t, repo.IncrementEnrolled(db, class.ID), ErrClassFull)
	assert.Equal(t, 2, enrolled(t, db, class.ID))
}

func TestDecrementEnrolled_NeverNegative(t *testing.T) {
	db := newTestDB(t)
	repo := NewClassRepository()
	class := newClass(t, db, 2)

	require.NoError(t, repo.IncrementEnrolled(db, class.ID))
	require.NoError(t, repo.DecrementEnrolled(db, class.ID))
	require.NoError(t, repo.DecrementEnrolled(db, class.ID))
	assert.Equal(t, 0, enrolled(t, db, class.ID))
}

func TestBookingCancel_OnlyOnce(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingRepository()

	booking := &models.Booking{
		UserID:   "user",
		ClassID:  "class",
		Status:   models.BookingStatusConfirmed,
		BookedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.Create(db, booking))

	require.NoError(t, repo.Cancel(db, booking.ID, time.Now().UTC()))
	assert.ErrorIs(t, repo.Cancel(db, booking.ID, time.Now().UTC()), ErrBookingNotConfirmed)

	has, err := repo.HasConfirmed(db, "user", "class")
	require.NoError(t, err)
	assert.False(t, has)
}

func TestClearExpiredMemberships(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository()
	today := models.Today()

	membershipID := "plan"
	expiredEnd := models.AddDays(today, -1)
	activeEnd := models.AddDays(today, 10)

	expired := &models.User{Email: "old@example.com", PasswordHash: "x", FirstName: "A", LastName: "B",
		Role: models.UserRoleMember, IsActive: true, MembershipID: &membershipID, MembershipEnd: &expiredEnd}
	active := &models.User{Email: "new@example.com", PasswordHash: "x", FirstName: "C", LastName: "D",
		Role: models.UserRoleMember, IsActive: true, MembershipID: &membershipID, MembershipEnd: &activeEnd}
	require.NoError(t, repo.Create(db, expired))
	require.NoError(t, repo.Create(db, active))

	affected, err := repo.ClearExpiredMemberships(db, today)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	reloaded, err := repo.FindByID(db, expired.ID)
	require.NoError(t, err)
	assert.Nil(t, reloaded.MembershipID)

	reloaded, err = repo.FindByID(db, active.ID)
	require.NoError(t, err)
	assert.NotNil(t, reloaded.MembershipID)
}
