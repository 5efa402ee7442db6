package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/graymont-pd/casefilebackend/repository"
)

// exposeErrorDetails controls whether 500 bodies carry the underlying error
// text. Station deployments run on trusted networks and want the detail;
// it can be turned off via EXPOSE_ERROR_DETAILS=false.
var exposeErrorDetails = true

// SetExposeErrorDetails configures 500-response verbosity at startup.
func SetExposeErrorDetails(v bool) {
	exposeErrorDetails = v
}

// SuccessResponse is the {success, message} body used by write endpoints.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// writeJSON writes v as a JSON response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.S().Errorw("failed to encode JSON response", "error", err)
	}
}

// writeError writes the API's error body shape: {"error": "..."}.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeRepoError maps a repository failure onto the error taxonomy: domain
// rule violations become 400s, missing rows 404s, everything else a 500.
func writeRepoError(w http.ResponseWriter, err error, notFoundMsg, failurePrefix string) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		writeError(w, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, repository.ErrUsernameTaken):
		writeError(w, http.StatusBadRequest, "Username already exists")
	case errors.Is(err, repository.ErrBranchHeadExists):
		writeError(w, http.StatusBadRequest, "This branch already has a branch head. Please assign a different branch or role.")
	case errors.Is(err, repository.ErrComplaintClosed):
		writeError(w, http.StatusBadRequest, "Complaint is already closed")
	default:
		zap.S().Errorw(failurePrefix, "error", err)
		msg := failurePrefix
		if exposeErrorDetails {
			msg += ": " + err.Error()
		}
		writeError(w, http.StatusInternalServerError, msg)
	}
}
