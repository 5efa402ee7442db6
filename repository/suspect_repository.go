package repository

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"

	"github.com/graymont-pd/casefilebackend/models"
)

type GormSuspectRepository struct {
	db *gorm.DB
}

func NewGormSuspectRepository(db *gorm.DB) SuspectRepository {
	return &GormSuspectRepository{db: db}
}

// suspectRow is the scan target for the joined list/detail queries. The
// complaint's crime_type is aliased so it cannot collide with a suspect
// column of the same name in future schema changes.
type suspectRow struct {
	models.Suspect       `gorm:"embedded"`
	ComplaintCaseNumber  *string `gorm:"column:complaint_case_number"`
	ComplaintCrimeType   *string `gorm:"column:complaint_crime_type"`
	ComplaintDescription *string `gorm:"column:complaint_description"`
	ComplaintStatus      *string `gorm:"column:complaint_status"`
}

// Create inserts the suspect and assigns the display identifier derived
// from the generated primary key, both inside one transaction so no reader
// can observe a row without its display id.
func (r *GormSuspectRepository) Create(suspect *models.Suspect) (string, error) {
	var displayID string
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(suspect).Error; err != nil {
			return err
		}
		displayID = fmt.Sprintf("SUS-%s-%04d", time.Now().Format("20060102"), suspect.ID)
		return tx.Model(&models.Suspect{}).
			Where("id = ?", suspect.ID).
			Update("suspect_id", displayID).Error
	})
	if err != nil {
		return "", err
	}
	suspect.SuspectID = &displayID
	return displayID, nil
}

func (r *GormSuspectRepository) List() ([]models.SuspectResponse, error) {
	return r.list(nil)
}

func (r *GormSuspectRepository) ListByComplaint(complaintID uint) ([]models.SuspectResponse, error) {
	return r.list(sq.Eq{"s.complaint_id": complaintID})
}

func (r *GormSuspectRepository) list(where interface{}) ([]models.SuspectResponse, error) {
	qb := psql.Select(
		"s.*",
		"c.case_number AS complaint_case_number",
		"c.crime_type AS complaint_crime_type",
	).
		From("suspects s").
		LeftJoin("complaints c ON s.complaint_id = c.id").
		OrderBy("s.created_at DESC")
	if where != nil {
		qb = qb.Where(where)
	}

	sqlStr, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build SQL for suspect list: %w", err)
	}

	var rows []suspectRow
	if err := r.db.Raw(sqlStr, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	suspects := make([]models.SuspectResponse, 0, len(rows))
	for _, row := range rows {
		suspects = append(suspects, models.NewSuspectResponse(
			row.Suspect, row.ComplaintCaseNumber, row.ComplaintCrimeType, nil, nil))
	}
	return suspects, nil
}

// GetByID returns one suspect with the full linked-complaint detail.
func (r *GormSuspectRepository) GetByID(id uint) (*models.SuspectResponse, error) {
	qb := psql.Select(
		"s.*",
		"c.case_number AS complaint_case_number",
		"c.crime_type AS complaint_crime_type",
		"c.description AS complaint_description",
		"c.status AS complaint_status",
	).
		From("suspects s").
		LeftJoin("complaints c ON s.complaint_id = c.id").
		Where(sq.Eq{"s.id": id})

	sqlStr, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build SQL for suspect detail: %w", err)
	}

	var rows []suspectRow
	if err := r.db.Raw(sqlStr, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	row := rows[0]
	resp := models.NewSuspectResponse(
		row.Suspect, row.ComplaintCaseNumber, row.ComplaintCrimeType,
		row.ComplaintDescription, row.ComplaintStatus)
	return &resp, nil
}
