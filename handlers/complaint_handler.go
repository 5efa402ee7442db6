package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/graymont-pd/casefilebackend/models"
	"github.com/graymont-pd/casefilebackend/repository"
)

type ComplaintHandler struct {
	ComplaintRepo repository.ComplaintRepository
}

type ComplaintCreatePayload struct {
	ComplainantName    string `json:"complainantName"`
	ComplainantContact string `json:"complainantContact"`
	CrimeType          string `json:"crimeType"`
	CrimeLocation      string `json:"crimeLocation"`
	Description        string `json:"description"`
	Priority           string `json:"priority"`
	AssignedOfficerID  *uint  `json:"assignedOfficerId"`
}

// ComplaintCreateResponse carries the generated case number back to the
// caller alongside the usual success envelope.
type ComplaintCreateResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	CaseNumber string `json:"caseNumber"`
}

type CloseComplaintPayload struct {
	ClosureReason     string `json:"closureReason"`
	ClosureNotes      string `json:"closureNotes"`
	ClosedByOfficerID *uint  `json:"closedByOfficerId"`
}

func (h *ComplaintHandler) ListComplaints(w http.ResponseWriter, r *http.Request) {
	complaints, err := h.ComplaintRepo.List()
	if err != nil {
		writeRepoError(w, err, "Complaint not found", "Failed to retrieve complaints")
		return
	}
	writeJSON(w, http.StatusOK, complaints)
}

func (h *ComplaintHandler) GetComplaint(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid complaint ID format")
		return
	}

	complaint, err := h.ComplaintRepo.GetByID(id)
	if err != nil {
		writeRepoError(w, err, "Complaint not found", "Failed to retrieve complaint")
		return
	}
	writeJSON(w, http.StatusOK, complaint)
}

func (h *ComplaintHandler) CreateComplaint(w http.ResponseWriter, r *http.Request) {
	var payload ComplaintCreatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if payload.ComplainantName == "" || payload.CrimeType == "" ||
		payload.CrimeLocation == "" || payload.Description == "" || payload.Priority == "" {
		writeError(w, http.StatusBadRequest, "All fields are required")
		return
	}
	if !models.ValidPriority(payload.Priority) {
		writeError(w, http.StatusBadRequest, "Invalid priority. Must be 'High', 'Medium', or 'Low'")
		return
	}

	complaint := &models.Complaint{
		ComplainantName:    payload.ComplainantName,
		ComplainantContact: payload.ComplainantContact,
		CrimeType:          payload.CrimeType,
		CrimeLocation:      payload.CrimeLocation,
		Description:        payload.Description,
		Priority:           payload.Priority,
		AssignedOfficerID:  payload.AssignedOfficerID,
		CreatedBy:          CallerID(r),
	}

	if err := h.ComplaintRepo.Create(complaint); err != nil {
		writeRepoError(w, err, "Complaint not found", "Failed to create complaint")
		return
	}

	writeJSON(w, http.StatusOK, ComplaintCreateResponse{
		Success:    true,
		Message:    "Complaint created successfully",
		CaseNumber: complaint.CaseNumber,
	})
}

// CloseComplaint moves a case to Closed, setting the whole closure field
// set atomically. Closing an already-closed case is rejected.
func (h *ComplaintHandler) CloseComplaint(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid complaint ID format")
		return
	}

	var payload CloseComplaintPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if payload.ClosureReason == "" {
		writeError(w, http.StatusBadRequest, "Closure reason is required")
		return
	}

	closedBy := CallerID(r)
	if payload.ClosedByOfficerID != nil {
		closedBy = *payload.ClosedByOfficerID
	}

	if err := h.ComplaintRepo.Close(id, payload.ClosureReason, payload.ClosureNotes, closedBy); err != nil {
		writeRepoError(w, err, "Complaint not found", "Failed to close complaint")
		return
	}

	writeJSON(w, http.StatusOK, SuccessResponse{Success: true, Message: "Complaint closed successfully"})
}

func (h *ComplaintHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.ComplaintRepo.Stats()
	if err != nil {
		writeRepoError(w, err, "Complaint not found", "Failed to get stats")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
