package repository

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/graymont-pd/casefilebackend/models"
)

type GormDetentionRepository struct {
	db *gorm.DB
}

func NewGormDetentionRepository(db *gorm.DB) DetentionRepository {
	return &GormDetentionRepository{db: db}
}

type detentionRow struct {
	models.Detention `gorm:"embedded"`
	SuspectName      string `gorm:"column:suspect_name"`
	OfficerName      string `gorm:"column:officer_name"`
}

// Create inserts a custody record. The suspect reference is enforced by the
// foreign-key constraint on suspect_id.
func (r *GormDetentionRepository) Create(detention *models.Detention) error {
	return r.db.Create(detention).Error
}

// List returns all detentions, newest intake first, joined with the suspect
// and the creating officer. Inner joins: a detention only appears while its
// suspect and creator rows exist.
func (r *GormDetentionRepository) List() ([]models.DetentionResponse, error) {
	qb := psql.Select(
		"d.*",
		"s.name AS suspect_name",
		"u.full_name AS officer_name",
	).
		From("detentions d").
		Join("suspects s ON d.suspect_id = s.id").
		Join("users u ON d.created_by = u.id").
		OrderBy("d.intake_time DESC")

	sqlStr, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build SQL for detention list: %w", err)
	}

	var rows []detentionRow
	if err := r.db.Raw(sqlStr, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	detentions := make([]models.DetentionResponse, 0, len(rows))
	for _, row := range rows {
		detentions = append(detentions, models.NewDetentionResponse(
			row.Detention, row.SuspectName, row.OfficerName))
	}
	return detentions, nil
}

// Release stamps the release time on a detention that is still open. The
// guard on release_time makes the operation idempotent: releasing an
// already-released detention succeeds without overwriting the stored time.
func (r *GormDetentionRepository) Release(id uint) error {
	res := r.db.Model(&models.Detention{}).
		Where("id = ? AND release_time IS NULL", id).
		Update("release_time", time.Now())
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&models.Detention{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
	}
	return nil
}
