package models

import (
	"fmt"
	"time"
)

// Suspect is a person of interest, optionally linked to a complaint.
// The display identifier is assigned in a second write after the row is
// created, so SuspectID can be briefly empty; read paths fall back to
// DisplayID.
type Suspect struct {
	ID                   uint       `json:"id" gorm:"primaryKey"`
	SuspectID            *string    `json:"-" gorm:"column:suspect_id;uniqueIndex"`
	Name                 string     `json:"name" gorm:"not null"`
	Gender               string     `json:"gender" gorm:"not null"`
	DateOfBirth          *time.Time `json:"dateOfBirth"`
	Address              string     `json:"address"`
	IdentificationNumber string     `json:"identificationNumber"`
	ComplaintID          *uint      `json:"complaintId"`
	Complaint            *Complaint `json:"-" gorm:"foreignKey:ComplaintID"`
	CreatedAt            time.Time  `json:"createdAt"`
}

// DisplayID returns the assigned display identifier, or the defensive
// fallback used while the two-step assignment has not completed.
func (s *Suspect) DisplayID() string {
	if s.SuspectID != nil && *s.SuspectID != "" {
		return *s.SuspectID
	}
	return fmt.Sprintf("SUS-%06d", s.ID)
}

// Age returns whole years between DateOfBirth and today, accounting for
// whether the birthday has occurred yet this year. Nil when unknown.
func (s *Suspect) Age(today time.Time) *int {
	if s.DateOfBirth == nil {
		return nil
	}
	dob := *s.DateOfBirth
	age := today.Year() - dob.Year()
	if dob.AddDate(age, 0, 0).After(today) {
		age--
	}
	return &age
}

// SuspectResponse is the API representation of a suspect with the joined
// complaint fields. A suspect with no linked case carries nulls there.
type SuspectResponse struct {
	ID                   uint       `json:"id"`
	SuspectID            string     `json:"suspectId"`
	Name                 string     `json:"name"`
	Gender               string     `json:"gender"`
	DateOfBirth          *time.Time `json:"dateOfBirth"`
	Age                  *int       `json:"age"`
	Address              string     `json:"address"`
	IdentificationNumber string     `json:"identificationNumber"`
	ComplaintID          *uint      `json:"complaintId"`
	ComplaintCaseNumber  *string    `json:"complaintCaseNumber"`
	CrimeType            *string    `json:"crimeType"`
	ComplaintDescription *string    `json:"complaintDescription,omitempty"`
	ComplaintStatus      *string    `json:"complaintStatus,omitempty"`
	CreatedAt            time.Time  `json:"createdAt"`
}

// NewSuspectResponse is the single row-to-record mapping for suspects.
// Description and status are only populated on the detail view.
func NewSuspectResponse(s Suspect, caseNumber, crimeType, description, status *string) SuspectResponse {
	return SuspectResponse{
		ID:                   s.ID,
		SuspectID:            s.DisplayID(),
		Name:                 s.Name,
		Gender:               s.Gender,
		DateOfBirth:          s.DateOfBirth,
		Age:                  s.Age(time.Now()),
		Address:              s.Address,
		IdentificationNumber: s.IdentificationNumber,
		ComplaintID:          s.ComplaintID,
		ComplaintCaseNumber:  caseNumber,
		CrimeType:            crimeType,
		ComplaintDescription: description,
		ComplaintStatus:      status,
		CreatedAt:            s.CreatedAt,
	}
}
