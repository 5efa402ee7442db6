package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/graymont-pd/casefilebackend/models"
)

func seedDetention(t *testing.T, db *gorm.DB, suspectID, createdBy uint, intake time.Time) models.Detention {
	t.Helper()
	d := models.Detention{
		SuspectID:  suspectID,
		IntakeTime: intake,
		Reason:     "Questioning",
		CreatedBy:  createdBy,
	}
	require.NoError(t, db.Create(&d).Error)
	return d
}

func TestDetentionCreateAndList(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormDetentionRepository(db)
	suspectRepo := NewGormSuspectRepository(db)
	officer := seedUser(t, db, "officer", "Officer One", models.RoleConstable, "Central")
	suspect := seedSuspect(t, db, suspectRepo, "John Smith", nil)

	intake := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	d := models.Detention{
		SuspectID:  suspect.ID,
		IntakeTime: intake,
		Reason:     "Questioning",
		CreatedBy:  officer.ID,
	}
	require.NoError(t, repo.Create(&d))

	detentions, err := repo.List()
	require.NoError(t, err)
	require.Len(t, detentions, 1)
	got := detentions[0]
	assert.Equal(t, "John Smith", got.SuspectName)
	assert.Equal(t, "Officer One", got.OfficerName)
	assert.Equal(t, "Questioning", got.Reason)
	assert.Equal(t, "Still Detained", got.Duration)
	assert.Nil(t, got.ReleaseTime)
}

func TestDetentionListNewestIntakeFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormDetentionRepository(db)
	suspectRepo := NewGormSuspectRepository(db)
	officer := seedUser(t, db, "officer", "Officer One", models.RoleConstable, "Central")
	suspect := seedSuspect(t, db, suspectRepo, "John Smith", nil)

	older := seedDetention(t, db, suspect.ID, officer.ID, time.Date(2024, 6, 14, 9, 0, 0, 0, time.UTC))
	newer := seedDetention(t, db, suspect.ID, officer.ID, time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC))

	detentions, err := repo.List()
	require.NoError(t, err)
	require.Len(t, detentions, 2)
	assert.Equal(t, newer.ID, detentions[0].ID)
	assert.Equal(t, older.ID, detentions[1].ID)
}

func TestDetentionRelease(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormDetentionRepository(db)
	suspectRepo := NewGormSuspectRepository(db)
	officer := seedUser(t, db, "officer", "Officer One", models.RoleConstable, "Central")
	suspect := seedSuspect(t, db, suspectRepo, "John Smith", nil)
	d := seedDetention(t, db, suspect.ID, officer.ID, time.Now().Add(-3*time.Hour))

	require.NoError(t, repo.Release(d.ID))

	var released models.Detention
	require.NoError(t, db.First(&released, d.ID).Error)
	require.NotNil(t, released.ReleaseTime)

	// releasing again succeeds without moving the stored release time
	require.NoError(t, repo.Release(d.ID))

	var again models.Detention
	require.NoError(t, db.First(&again, d.ID).Error)
	require.NotNil(t, again.ReleaseTime)
	assert.Equal(t, *released.ReleaseTime, *again.ReleaseTime)
}

func TestDetentionReleaseNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormDetentionRepository(db)

	assert.ErrorIs(t, repo.Release(9999), gorm.ErrRecordNotFound)
}
