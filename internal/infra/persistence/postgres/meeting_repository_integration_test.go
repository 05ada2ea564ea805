package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"freshware/internal/domain/entity"
	"freshware/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// testDB connects to the database named by FRESHWARE_TEST_DSN and migrates
// the meetings table. Tests that need a real database skip when the variable
// is unset, so the rest of the suite stays runnable without one.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("FRESHWARE_TEST_DSN")
	if dsn == "" {
		t.Skip("FRESHWARE_TEST_DSN not set")
	}

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error)
	require.NoError(t, db.AutoMigrate(&model.MeetingModel{}))

	return db
}

func providerMeeting(accountID uuid.UUID, externalID string) *entity.Meeting {
	now := time.Now().UTC().Truncate(time.Second)

	return &entity.Meeting{
		ID:          uuid.New(),
		AccountID:   accountID,
		ContactName: "Jamie Doe",
		ScheduledAt: now.Add(24 * time.Hour),
		Status:      entity.MeetingStatusScheduled,
		Source:      entity.ProviderYouCanBookMe,
		ExternalID:  &externalID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestMeetingRepository_UpsertByExternalIDRedelivery(t *testing.T) {
	db := testDB(t)
	repo := NewMeetingRepository(db)
	ctx := context.Background()

	accountID := uuid.New()
	externalID := "bk_" + uuid.NewString()
	t.Cleanup(func() {
		db.Where("external_id = ?", externalID).Delete(&model.MeetingModel{})
	})

	first := providerMeeting(accountID, externalID)
	require.NoError(t, repo.UpsertByExternalID(ctx, first))

	// A redelivery of the same booking carries fresher fields and must land
	// on the existing row instead of inserting a second one.
	second := providerMeeting(accountID, externalID)
	second.ContactName = "Jamie A. Doe"
	second.ScheduledAt = first.ScheduledAt.Add(2 * time.Hour)
	second.Status = entity.MeetingStatusCanceled
	second.UpdatedAt = first.UpdatedAt.Add(time.Minute)
	require.NoError(t, repo.UpsertByExternalID(ctx, second))

	var count int64
	require.NoError(t, db.Model(&model.MeetingModel{}).
		Where("external_id = ?", externalID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var row model.MeetingModel
	require.NoError(t, db.First(&row, "external_id = ?", externalID).Error)
	assert.Equal(t, first.ID, row.ID, "redelivery must keep the original row")
	assert.Equal(t, "Jamie A. Doe", row.ContactName)
	assert.Equal(t, string(entity.MeetingStatusCanceled), row.Status)
	assert.Equal(t, second.ScheduledAt, row.ScheduledAt.UTC())
}
