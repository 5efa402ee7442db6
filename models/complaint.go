package models

import (
	"fmt"
	"time"
)

// Complaint statuses. New cases rely on the column default.
const (
	StatusUnderInvestigation = "Under Investigation"
	StatusCharged            = "Charged"
	StatusClosed             = "Closed"
)

// Complaint priorities.
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// ValidPriority reports whether priority is one of the three levels.
func ValidPriority(priority string) bool {
	switch priority {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Complaint is a reported case record. The closure fields stay null until
// the case is closed, at which point they are all set in one update.
type Complaint struct {
	ID                 uint      `json:"id" gorm:"primaryKey"`
	CaseNumber         string    `json:"caseNumber" gorm:"uniqueIndex;not null"`
	ComplainantName    string    `json:"complainantName" gorm:"not null"`
	ComplainantContact string    `json:"complainantContact"`
	CrimeType          string    `json:"crimeType" gorm:"not null"`
	CrimeLocation      string    `json:"crimeLocation" gorm:"not null"`
	Description        string    `json:"description" gorm:"not null"`
	DateReported       time.Time `json:"dateReported" gorm:"autoCreateTime"`
	Status             string    `json:"status" gorm:"not null;default:'Under Investigation'"`
	Priority           string    `json:"priority" gorm:"not null"`
	AssignedOfficerID  *uint     `json:"assignedOfficerId"`
	CreatedBy          uint      `json:"createdBy" gorm:"not null"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`

	ClosedDate        *time.Time `json:"closedDate"`
	ClosureReason     *string    `json:"closureReason"`
	ClosureNotes      *string    `json:"closureNotes"`
	ClosedByOfficerID *uint      `json:"closedByOfficerId"`
}

// DaysOpen reports how long the case has been (or was) open, in whole days.
// Closed cases measure up to their closure date, open ones up to now.
func (c *Complaint) DaysOpen(now time.Time) string {
	end := now
	if c.Status == StatusClosed && c.ClosedDate != nil {
		end = *c.ClosedDate
	}
	return fmt.Sprintf("%d days", int(end.Sub(c.DateReported).Hours()/24))
}

// StatusBadge returns the dashboard badge for the stored status.
func (c *Complaint) StatusBadge() string {
	switch c.Status {
	case StatusClosed:
		return "🔴 Closed"
	case StatusUnderInvestigation:
		return "🟡 Under Investigation"
	case StatusCharged:
		return "🔵 Charged"
	default:
		return "⚪ " + c.Status
	}
}

// PriorityBadge returns the dashboard badge for the stored priority.
func (c *Complaint) PriorityBadge() string {
	switch c.Priority {
	case PriorityHigh:
		return "🔴 High"
	case PriorityMedium:
		return "🟡 Medium"
	case PriorityLow:
		return "🟢 Low"
	default:
		return "⚪ " + c.Priority
	}
}

// ComplaintResponse is the API representation of a complaint: the stored
// record plus joined officer names and the derived display fields. Names
// from missing joins serialize as null rather than sentinel strings.
type ComplaintResponse struct {
	Complaint
	AssignedOfficerName  *string `json:"assignedOfficerName"`
	ClosedByOfficerName  *string `json:"closedByOfficerName"`
	CreatedByOfficerName *string `json:"createdByOfficerName,omitempty"`
	DaysOpen             string  `json:"daysOpen"`
	CurrentStatusBadge   string  `json:"currentStatusBadge"`
	PriorityBadge        string  `json:"priorityBadge"`
}

// NewComplaintResponse is the single row-to-record mapping for complaints.
// creatorName is only populated on the detail view.
func NewComplaintResponse(c Complaint, assignedName, closedByName, creatorName *string) ComplaintResponse {
	return ComplaintResponse{
		Complaint:            c,
		AssignedOfficerName:  assignedName,
		ClosedByOfficerName:  closedByName,
		CreatedByOfficerName: creatorName,
		DaysOpen:             c.DaysOpen(time.Now()),
		CurrentStatusBadge:   c.StatusBadge(),
		PriorityBadge:        c.PriorityBadge(),
	}
}

// ComplaintStats aggregates case counts by status. Unrecognized status
// values count toward Total only.
type ComplaintStats struct {
	Total              int64 `json:"total"`
	UnderInvestigation int64 `json:"underInvestigation"`
	Charged            int64 `json:"charged"`
	Closed             int64 `json:"closed"`
}
