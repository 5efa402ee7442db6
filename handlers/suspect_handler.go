package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/graymont-pd/casefilebackend/models"
	"github.com/graymont-pd/casefilebackend/repository"
)

type SuspectHandler struct {
	SuspectRepo repository.SuspectRepository
}

type SuspectCreatePayload struct {
	Name                 string `json:"name"`
	Gender               string `json:"gender"`
	DateOfBirth          string `json:"dateOfBirth"`
	Address              string `json:"address"`
	IdentificationNumber string `json:"identificationNumber"`
	ComplaintID          *uint  `json:"complaintId"`
}

// SuspectCreateResponse carries the assigned display identifier back to the
// caller alongside the usual success envelope.
type SuspectCreateResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	SuspectID string `json:"suspectId"`
}

func (h *SuspectHandler) ListSuspects(w http.ResponseWriter, r *http.Request) {
	suspects, err := h.SuspectRepo.List()
	if err != nil {
		writeRepoError(w, err, "Suspect not found", "Failed to retrieve suspects")
		return
	}
	writeJSON(w, http.StatusOK, suspects)
}

func (h *SuspectHandler) ListSuspectsByComplaint(w http.ResponseWriter, r *http.Request) {
	complaintID, err := idParam(r, "complaintId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid complaint ID format")
		return
	}

	suspects, err := h.SuspectRepo.ListByComplaint(complaintID)
	if err != nil {
		writeRepoError(w, err, "Suspect not found", "Failed to retrieve suspects")
		return
	}
	writeJSON(w, http.StatusOK, suspects)
}

func (h *SuspectHandler) GetSuspect(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid suspect ID format")
		return
	}

	suspect, err := h.SuspectRepo.GetByID(id)
	if err != nil {
		writeRepoError(w, err, "Suspect not found", "Failed to retrieve suspect")
		return
	}
	writeJSON(w, http.StatusOK, suspect)
}

func (h *SuspectHandler) CreateSuspect(w http.ResponseWriter, r *http.Request) {
	var payload SuspectCreatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if payload.Name == "" || payload.Gender == "" {
		writeError(w, http.StatusBadRequest, "Name and gender are required")
		return
	}

	suspect := &models.Suspect{
		Name:                 payload.Name,
		Gender:               payload.Gender,
		Address:              payload.Address,
		IdentificationNumber: payload.IdentificationNumber,
		ComplaintID:          payload.ComplaintID,
	}
	if payload.DateOfBirth != "" {
		dob, err := parseTimestamp(payload.DateOfBirth)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid dateOfBirth format")
			return
		}
		suspect.DateOfBirth = &dob
	}

	displayID, err := h.SuspectRepo.Create(suspect)
	if err != nil {
		writeRepoError(w, err, "Suspect not found", "Failed to create suspect")
		return
	}

	writeJSON(w, http.StatusOK, SuspectCreateResponse{
		Success:   true,
		Message:   "Suspect created successfully",
		SuspectID: displayID,
	})
}
