package repository

import (
	"gorm.io/gorm"

	"github.com/graymont-pd/casefilebackend/models"
)

type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create inserts a new user after checking the username and branch-head
// invariants. The checks and the insert run in one transaction so two
// concurrent creates cannot both pass.
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).
			Where("username = ?", user.Username).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrUsernameTaken
		}

		if user.Role == models.RoleBranchHead {
			if err := tx.Model(&models.User{}).
				Where("role = ? AND station = ?", models.RoleBranchHead, user.Station).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return ErrBranchHeadExists
			}
		}

		return tx.Create(user).Error
	})
}

func (r *GormUserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Update changes the mutable profile fields. Username and password are not
// touched here. The branch-head check excludes the row being updated.
func (r *GormUserRepository) Update(id uint, fullName, role, station string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			return err
		}

		if role == models.RoleBranchHead {
			var count int64
			if err := tx.Model(&models.User{}).
				Where("role = ? AND station = ? AND id <> ?", models.RoleBranchHead, station, id).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return ErrBranchHeadExists
			}
		}

		user.FullName = fullName
		user.Role = role
		user.Station = station
		return tx.Save(&user).Error
	})
}

func (r *GormUserRepository) Delete(id uint) error {
	res := r.db.Delete(&models.User{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListAll returns every account, newest first.
func (r *GormUserRepository) ListAll() ([]models.User, error) {
	var users []models.User
	err := r.db.Order("created_at DESC").Find(&users).Error
	return users, err
}
