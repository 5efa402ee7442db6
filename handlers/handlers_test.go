package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/graymont-pd/casefilebackend/database"
	"github.com/graymont-pd/casefilebackend/models"
	"github.com/graymont-pd/casefilebackend/repository"
)

var testJWTSecret = []byte("test-secret")

type testEnv struct {
	db     *gorm.DB
	router *chi.Mux
	auth   *AuthHandler
}

// newTestEnv wires the full API against an in-memory SQLite database, with
// the same route table the server uses. The bootstrap admin is seeded so
// anonymous writes have an officer to fall back to.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrateModels(db))
	require.NoError(t, database.SeedBootstrapAdmin(db))

	userRepo := repository.NewGormUserRepository(db)
	complaintRepo := repository.NewGormComplaintRepository(db, database.NewCaseNumberGenerator())
	suspectRepo := repository.NewGormSuspectRepository(db)
	detentionRepo := repository.NewGormDetentionRepository(db)

	auth := &AuthHandler{UserRepo: userRepo, JWTSecret: testJWTSecret, TokenTTL: time.Hour}
	userHandler := &UserHandler{UserRepo: userRepo}
	complaintHandler := &ComplaintHandler{ComplaintRepo: complaintRepo}
	suspectHandler := &SuspectHandler{SuspectRepo: suspectRepo}
	detentionHandler := &DetentionHandler{DetentionRepo: detentionRepo}

	r := chi.NewRouter()
	r.Use(IdentityMiddleware(userRepo, testJWTSecret))
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", auth.Login)

		r.Route("/complaints", func(r chi.Router) {
			r.Get("/", complaintHandler.ListComplaints)
			r.Post("/", complaintHandler.CreateComplaint)
			r.Get("/stats", complaintHandler.GetStats)
			r.Get("/{id}", complaintHandler.GetComplaint)
			r.Put("/{id}/close", complaintHandler.CloseComplaint)
		})

		r.Route("/suspects", func(r chi.Router) {
			r.Get("/", suspectHandler.ListSuspects)
			r.Post("/", suspectHandler.CreateSuspect)
			r.Get("/by-complaint/{complaintId}", suspectHandler.ListSuspectsByComplaint)
			r.Get("/{id}", suspectHandler.GetSuspect)
		})

		r.Route("/detentions", func(r chi.Router) {
			r.Get("/", detentionHandler.ListDetentions)
			r.Post("/", detentionHandler.CreateDetention)
			r.Put("/{id}/release", detentionHandler.ReleaseSuspect)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", userHandler.ListUsers)
			r.Post("/", userHandler.CreateUser)
			r.Put("/{id}", userHandler.UpdateUser)
			r.Delete("/{id}", userHandler.DeleteUser)
		})
	})

	return &testEnv{db: db, router: r, auth: auth}
}

// request performs an HTTP round trip through the router. A non-empty token
// is sent as a bearer credential.
func (e *testEnv) request(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// createUserViaAPI provisions a user through the public endpoint and returns
// its id from the users listing.
func (e *testEnv) createUserViaAPI(t *testing.T, username, password, role, fullName, station string) uint {
	t.Helper()

	rec := e.request(t, http.MethodPost, "/api/users", UserCreatePayload{
		Username: username,
		Password: password,
		Role:     role,
		FullName: fullName,
		Station:  station,
	}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var user models.User
	require.NoError(t, e.db.Where("username = ?", username).First(&user).Error)
	return user.ID
}

// loginToken logs in and returns the issued session token.
func (e *testEnv) loginToken(t *testing.T, username, password string) string {
	t.Helper()

	rec := e.request(t, http.MethodPost, "/api/auth/login", LoginPayload{
		Username: username,
		Password: password,
	}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}
