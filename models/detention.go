package models

import (
	"fmt"
	"time"
)

// Detention is a custody record for a suspect. A null ReleaseTime means the
// suspect is currently detained; once set it is never overwritten.
type Detention struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	SuspectID   uint       `json:"suspectId" gorm:"not null"`
	Suspect     *Suspect   `json:"-" gorm:"foreignKey:SuspectID"`
	IntakeTime  time.Time  `json:"intakeTime" gorm:"not null"`
	ReleaseTime *time.Time `json:"releaseTime"`
	Reason      string     `json:"reason" gorm:"not null"`
	CreatedBy   uint       `json:"createdBy" gorm:"not null"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Duration describes the custody window in whole hours, or the
// still-detained state when no release has been recorded.
func (d *Detention) Duration() string {
	if d.ReleaseTime == nil {
		return "Still Detained"
	}
	return fmt.Sprintf("%d hours", int(d.ReleaseTime.Sub(d.IntakeTime).Hours()))
}

// DetentionResponse is the API representation of a detention, joined with
// the suspect and creating-officer names.
type DetentionResponse struct {
	ID          uint       `json:"id"`
	SuspectID   uint       `json:"suspectId"`
	SuspectName string     `json:"suspectName"`
	IntakeTime  time.Time  `json:"intakeTime"`
	ReleaseTime *time.Time `json:"releaseTime"`
	Reason      string     `json:"reason"`
	CreatedBy   uint       `json:"createdBy"`
	OfficerName string     `json:"officerName"`
	CreatedAt   time.Time  `json:"createdAt"`
	Duration    string     `json:"duration"`
}

// NewDetentionResponse is the single row-to-record mapping for detentions.
func NewDetentionResponse(d Detention, suspectName, officerName string) DetentionResponse {
	return DetentionResponse{
		ID:          d.ID,
		SuspectID:   d.SuspectID,
		SuspectName: suspectName,
		IntakeTime:  d.IntakeTime,
		ReleaseTime: d.ReleaseTime,
		Reason:      d.Reason,
		CreatedBy:   d.CreatedBy,
		OfficerName: officerName,
		CreatedAt:   d.CreatedAt,
		Duration:    d.Duration(),
	}
}
