package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/graymont-pd/casefilebackend/database"
	"github.com/graymont-pd/casefilebackend/models"
)

func newComplaintRepo(db *gorm.DB) ComplaintRepository {
	return NewGormComplaintRepository(db, database.NewCaseNumberGenerator())
}

func seedComplaint(t *testing.T, db *gorm.DB, status string, createdBy uint) models.Complaint {
	t.Helper()
	c := models.Complaint{
		CaseNumber:      fmt.Sprintf("CASE-TEST-%d", time.Now().UnixNano()),
		ComplainantName: "A Complainant",
		CrimeType:       "Theft",
		CrimeLocation:   "Market Street",
		Description:     "Reported theft",
		Status:          status,
		Priority:        models.PriorityMedium,
		CreatedBy:       createdBy,
	}
	require.NoError(t, db.Create(&c).Error)
	return c
}

func TestComplaintCreateAssignsCaseNumber(t *testing.T) {
	db := newTestDB(t)
	repo := newComplaintRepo(db)
	officer := seedUser(t, db, "officer", "Officer One", models.RoleInvestigator, "Central")

	c := &models.Complaint{
		ComplainantName: "A Complainant",
		CrimeType:       "Burglary",
		CrimeLocation:   "Elm Street",
		Description:     "Broken window",
		Priority:        models.PriorityHigh,
		CreatedBy:       officer.ID,
	}
	require.NoError(t, repo.Create(c))
	assert.Regexp(t, `^CASE-\d{8}-\d{6}$`, c.CaseNumber)

	// status falls back to the column default
	var stored models.Complaint
	require.NoError(t, db.First(&stored, c.ID).Error)
	assert.Equal(t, models.StatusUnderInvestigation, stored.Status)
}

func TestComplaintListJoinsOfficerNames(t *testing.T) {
	db := newTestDB(t)
	repo := newComplaintRepo(db)
	officer := seedUser(t, db, "officer", "Officer One", models.RoleInvestigator, "Central")

	assigned := seedComplaint(t, db, models.StatusUnderInvestigation, officer.ID)
	require.NoError(t, db.Model(&assigned).Update("assigned_officer_id", officer.ID).Error)
	unassigned := seedComplaint(t, db, models.StatusUnderInvestigation, officer.ID)

	complaints, err := repo.List()
	require.NoError(t, err)
	require.Len(t, complaints, 2)

	byID := map[uint]models.ComplaintResponse{}
	for _, c := range complaints {
		byID[c.ID] = c
	}
	require.NotNil(t, byID[assigned.ID].AssignedOfficerName)
	assert.Equal(t, "Officer One", *byID[assigned.ID].AssignedOfficerName)
	assert.Nil(t, byID[unassigned.ID].AssignedOfficerName)
}

func TestComplaintGetNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := newComplaintRepo(db)

	_, err := repo.GetByID(12345)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestComplaintCloseTwice(t *testing.T) {
	db := newTestDB(t)
	repo := newComplaintRepo(db)
	officer := seedUser(t, db, "closer", "Closing Officer", models.RoleBranchHead, "Central")
	c := seedComplaint(t, db, models.StatusUnderInvestigation, officer.ID)

	require.NoError(t, repo.Close(c.ID, "Case solved", "Suspect charged", officer.ID))

	var closed models.Complaint
	require.NoError(t, db.First(&closed, c.ID).Error)
	assert.Equal(t, models.StatusClosed, closed.Status)
	require.NotNil(t, closed.ClosedDate)
	require.NotNil(t, closed.ClosureReason)
	assert.Equal(t, "Case solved", *closed.ClosureReason)
	require.NotNil(t, closed.ClosureNotes)
	assert.Equal(t, "Suspect charged", *closed.ClosureNotes)
	require.NotNil(t, closed.ClosedByOfficerID)
	assert.Equal(t, officer.ID, *closed.ClosedByOfficerID)

	// second close is rejected and changes nothing
	err := repo.Close(c.ID, "Different reason", "", officer.ID)
	assert.ErrorIs(t, err, ErrComplaintClosed)

	var after models.Complaint
	require.NoError(t, db.First(&after, c.ID).Error)
	assert.Equal(t, *closed.ClosedDate, *after.ClosedDate)
	assert.Equal(t, "Case solved", *after.ClosureReason)
}

func TestComplaintCloseNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := newComplaintRepo(db)

	err := repo.Close(999, "reason", "", 1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestComplaintStats(t *testing.T) {
	db := newTestDB(t)
	repo := newComplaintRepo(db)
	officer := seedUser(t, db, "officer", "Officer One", models.RoleInvestigator, "Central")

	seedComplaint(t, db, models.StatusUnderInvestigation, officer.ID)
	seedComplaint(t, db, models.StatusUnderInvestigation, officer.ID)
	seedComplaint(t, db, models.StatusCharged, officer.ID)
	seedComplaint(t, db, models.StatusClosed, officer.ID)

	stats, err := repo.Stats()
	require.NoError(t, err)
	assert.EqualValues(t, 4, stats.Total)
	assert.EqualValues(t, 2, stats.UnderInvestigation)
	assert.EqualValues(t, 1, stats.Charged)
	assert.EqualValues(t, 1, stats.Closed)
}

func TestComplaintStatsCountsUnknownStatusInTotalOnly(t *testing.T) {
	db := newTestDB(t)
	repo := newComplaintRepo(db)
	officer := seedUser(t, db, "officer", "Officer One", models.RoleInvestigator, "Central")

	seedComplaint(t, db, models.StatusClosed, officer.ID)
	seedComplaint(t, db, "Reopened", officer.ID)

	stats, err := repo.Stats()
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.Total)
	assert.EqualValues(t, 0, stats.UnderInvestigation)
	assert.EqualValues(t, 0, stats.Charged)
	assert.EqualValues(t, 1, stats.Closed)
}
