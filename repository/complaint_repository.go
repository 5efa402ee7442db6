package repository

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"

	"github.com/graymont-pd/casefilebackend/database"
	"github.com/graymont-pd/casefilebackend/models"
)

// psql builds the joined read queries executed through gorm's Raw API.
// Question placeholders work for both sqlite and mysql.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

type GormComplaintRepository struct {
	db          *gorm.DB
	caseNumbers *database.CaseNumberGenerator
}

func NewGormComplaintRepository(db *gorm.DB, caseNumbers *database.CaseNumberGenerator) ComplaintRepository {
	return &GormComplaintRepository{db: db, caseNumbers: caseNumbers}
}

// complaintRow is the scan target for the joined list/detail queries.
type complaintRow struct {
	models.Complaint     `gorm:"embedded"`
	AssignedOfficerName  *string `gorm:"column:assigned_officer_name"`
	ClosedByOfficerName  *string `gorm:"column:closed_by_officer_name"`
	CreatedByOfficerName *string `gorm:"column:created_by_officer_name"`
}

// Create assigns a fresh case number and inserts the record. Status is left
// to the column default.
func (r *GormComplaintRepository) Create(complaint *models.Complaint) error {
	complaint.CaseNumber = r.caseNumbers.Next()
	return r.db.Create(complaint).Error
}

// List returns all complaints, newest-reported first, joined with the
// assigned and closing officers' names.
func (r *GormComplaintRepository) List() ([]models.ComplaintResponse, error) {
	qb := psql.Select(
		"c.*",
		"assigned.full_name AS assigned_officer_name",
		"closer.full_name AS closed_by_officer_name",
	).
		From("complaints c").
		LeftJoin("users assigned ON c.assigned_officer_id = assigned.id").
		LeftJoin("users closer ON c.closed_by_officer_id = closer.id").
		OrderBy("c.created_at DESC")

	sqlStr, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build SQL for complaint list: %w", err)
	}

	var rows []complaintRow
	if err := r.db.Raw(sqlStr, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	complaints := make([]models.ComplaintResponse, 0, len(rows))
	for _, row := range rows {
		complaints = append(complaints, models.NewComplaintResponse(
			row.Complaint, row.AssignedOfficerName, row.ClosedByOfficerName, nil))
	}
	return complaints, nil
}

// GetByID returns one complaint with the assigned, closing and creating
// officers' names joined in.
func (r *GormComplaintRepository) GetByID(id uint) (*models.ComplaintResponse, error) {
	qb := psql.Select(
		"c.*",
		"assigned.full_name AS assigned_officer_name",
		"closer.full_name AS closed_by_officer_name",
		"creator.full_name AS created_by_officer_name",
	).
		From("complaints c").
		LeftJoin("users assigned ON c.assigned_officer_id = assigned.id").
		LeftJoin("users closer ON c.closed_by_officer_id = closer.id").
		LeftJoin("users creator ON c.created_by = creator.id").
		Where(sq.Eq{"c.id": id})

	sqlStr, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build SQL for complaint detail: %w", err)
	}

	var rows []complaintRow
	if err := r.db.Raw(sqlStr, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	row := rows[0]
	resp := models.NewComplaintResponse(
		row.Complaint, row.AssignedOfficerName, row.ClosedByOfficerName, row.CreatedByOfficerName)
	return &resp, nil
}

// Close sets the full closure field set in one guarded update. The guard on
// status makes the transition atomic: a complaint can only move to Closed
// once, no matter how many officers race on it.
func (r *GormComplaintRepository) Close(id uint, reason, notes string, closedBy uint) error {
	now := time.Now()
	res := r.db.Model(&models.Complaint{}).
		Where("id = ? AND status <> ?", id, models.StatusClosed).
		Updates(map[string]interface{}{
			"status":               models.StatusClosed,
			"closed_date":          now,
			"closure_reason":       reason,
			"closure_notes":        notes,
			"closed_by_officer_id": closedBy,
			"updated_at":           now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&models.Complaint{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
		return ErrComplaintClosed
	}
	return nil
}

// Stats counts complaints grouped by status. Statuses outside the known
// three still count toward the total.
func (r *GormComplaintRepository) Stats() (*models.ComplaintStats, error) {
	qb := psql.Select("status", "COUNT(*) AS count").
		From("complaints").
		GroupBy("status")

	sqlStr, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build SQL for complaint stats: %w", err)
	}

	var rows []struct {
		Status string
		Count  int64
	}
	if err := r.db.Raw(sqlStr, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	stats := &models.ComplaintStats{}
	for _, row := range rows {
		stats.Total += row.Count
		switch row.Status {
		case models.StatusUnderInvestigation:
			stats.UnderInvestigation = row.Count
		case models.StatusCharged:
			stats.Charged = row.Count
		case models.StatusClosed:
			stats.Closed = row.Count
		}
	}
	return stats, nil
}
