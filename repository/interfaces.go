package repository

import (
	"github.com/graymont-pd/casefilebackend/models"
)

// UserRepository manages station personnel accounts.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	Update(id uint, fullName, role, station string) error
	Delete(id uint) error
	ListAll() ([]models.User, error)
}

// ComplaintRepository manages case records and their closure lifecycle.
type ComplaintRepository interface {
	Create(complaint *models.Complaint) error
	List() ([]models.ComplaintResponse, error)
	GetByID(id uint) (*models.ComplaintResponse, error)
	Close(id uint, reason, notes string, closedBy uint) error
	Stats() (*models.ComplaintStats, error)
}

// SuspectRepository manages suspect records. Create returns the assigned
// display identifier.
type SuspectRepository interface {
	Create(suspect *models.Suspect) (string, error)
	List() ([]models.SuspectResponse, error)
	ListByComplaint(complaintID uint) ([]models.SuspectResponse, error)
	GetByID(id uint) (*models.SuspectResponse, error)
}

// DetentionRepository manages custody records.
type DetentionRepository interface {
	Create(detention *models.Detention) error
	List() ([]models.DetentionResponse, error)
	Release(id uint) error
}
