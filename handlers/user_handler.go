package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/graymont-pd/casefilebackend/models"
	"github.com/graymont-pd/casefilebackend/repository"
)

const invalidRoleMessage = "Invalid role. Must be 'admin', 'branch_head', 'investigator', or 'constable'"

type UserHandler struct {
	UserRepo repository.UserRepository
}

type UserCreatePayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
	Station  string `json:"station"`
}

type UserUpdatePayload struct {
	FullName string `json:"fullName"`
	Role     string `json:"role"`
	Station  string `json:"station"`
}

// ListUsers returns all accounts, newest first. Password hashes never
// serialize.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserRepo.ListAll()
	if err != nil {
		writeRepoError(w, err, "User not found", "Failed to retrieve users")
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var payload UserCreatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if payload.Username == "" || payload.Password == "" || payload.FullName == "" ||
		payload.Role == "" || payload.Station == "" {
		writeError(w, http.StatusBadRequest, "All fields are required")
		return
	}
	if !models.ValidRole(payload.Role) {
		writeError(w, http.StatusBadRequest, invalidRoleMessage)
		return
	}
	if len(payload.Password) < 6 {
		writeError(w, http.StatusBadRequest, "Password must be at least 6 characters long")
		return
	}

	user := &models.User{
		Username: payload.Username,
		Role:     payload.Role,
		FullName: payload.FullName,
		Station:  payload.Station,
	}
	if err := user.SetPassword(payload.Password); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	if err := h.UserRepo.Create(user); err != nil {
		writeRepoError(w, err, "User not found", "Failed to create user")
		return
	}

	writeJSON(w, http.StatusOK, SuccessResponse{Success: true, Message: "User created successfully"})
}

// UpdateUser changes full name, role and station. Username and password are
// not mutable here.
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	var payload UserUpdatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if payload.FullName == "" || payload.Role == "" || payload.Station == "" {
		writeError(w, http.StatusBadRequest, "All fields are required")
		return
	}
	if !models.ValidRole(payload.Role) {
		writeError(w, http.StatusBadRequest, invalidRoleMessage)
		return
	}

	if err := h.UserRepo.Update(id, payload.FullName, payload.Role, payload.Station); err != nil {
		writeRepoError(w, err, "User not found", "Failed to update user")
		return
	}

	writeJSON(w, http.StatusOK, SuccessResponse{Success: true, Message: "User updated successfully"})
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	if id == CallerID(r) {
		writeError(w, http.StatusBadRequest, "You cannot delete your own account")
		return
	}

	if err := h.UserRepo.Delete(id); err != nil {
		writeRepoError(w, err, "User not found", "Failed to delete user")
		return
	}

	writeJSON(w, http.StatusOK, SuccessResponse{Success: true, Message: "User deleted successfully"})
}
