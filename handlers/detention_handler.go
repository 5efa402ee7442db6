package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/graymont-pd/casefilebackend/models"
	"github.com/graymont-pd/casefilebackend/repository"
)

type DetentionHandler struct {
	DetentionRepo repository.DetentionRepository
}

type DetentionCreatePayload struct {
	SuspectID  uint   `json:"suspectId"`
	IntakeTime string `json:"intakeTime"`
	Reason     string `json:"reason"`
}

func (h *DetentionHandler) ListDetentions(w http.ResponseWriter, r *http.Request) {
	detentions, err := h.DetentionRepo.List()
	if err != nil {
		writeRepoError(w, err, "Detention record not found", "Failed to retrieve detentions")
		return
	}
	writeJSON(w, http.StatusOK, detentions)
}

func (h *DetentionHandler) CreateDetention(w http.ResponseWriter, r *http.Request) {
	var payload DetentionCreatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if payload.SuspectID == 0 || payload.IntakeTime == "" || payload.Reason == "" {
		writeError(w, http.StatusBadRequest, "Suspect, intake time and reason are required")
		return
	}
	intakeTime, err := parseTimestamp(payload.IntakeTime)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid intakeTime format")
		return
	}

	detention := &models.Detention{
		SuspectID:  payload.SuspectID,
		IntakeTime: intakeTime,
		Reason:     payload.Reason,
		CreatedBy:  CallerID(r),
	}

	if err := h.DetentionRepo.Create(detention); err != nil {
		writeRepoError(w, err, "Detention record not found", "Failed to create detention record")
		return
	}

	writeJSON(w, http.StatusOK, SuccessResponse{Success: true, Message: "Detention record created successfully"})
}

// ReleaseSuspect stamps the release time on an open detention. Releasing an
// already-released detention reports success without changing the record.
func (h *DetentionHandler) ReleaseSuspect(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid detention ID format")
		return
	}

	if err := h.DetentionRepo.Release(id); err != nil {
		writeRepoError(w, err, "Detention record not found", "Failed to release suspect")
		return
	}

	writeJSON(w, http.StatusOK, SuccessResponse{Success: true, Message: "Suspect released successfully"})
}
