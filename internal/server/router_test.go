package server

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rumbo-app/orientation-backend/internal/handlers"
	"github.com/rumbo-app/orientation-backend/internal/logger"
	"github.com/rumbo-app/orientation-backend/internal/middleware"
	"github.com/rumbo-app/orientation-backend/internal/repos"
	"github.com/rumbo-app/orientation-backend/internal/services"
	"github.com/rumbo-app/orientation-backend/internal/types"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	// A fresh connection would be a fresh in-memory database.
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(
		&types.Profile{},
		&types.Institution{},
		&types.Program{},
		&types.Trajectory{},
		&types.Recommendation{},
		&types.Feedback{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	profileRepo := repos.NewProfileRepo(db, log)
	institutionRepo := repos.NewInstitutionRepo(db, log)
	programRepo := repos.NewProgramRepo(db, log)
	trajectoryRepo := repos.NewTrajectoryRepo(db, log)
	recommendationRepo := repos.NewRecommendationRepo(db, log)
	feedbackRepo := repos.NewFeedbackRepo(db, log)

	router := NewRouter(RouterConfig{
		RequestLogMiddleware:  middleware.NewRequestLogMiddleware(log),
		ProfileHandler:        handlers.NewProfileHandler(log, services.NewProfileService(db, log, profileRepo)),
		InstitutionHandler:    handlers.NewInstitutionHandler(log, services.NewInstitutionService(db, log, institutionRepo)),
		ProgramHandler:        handlers.NewProgramHandler(log, services.NewProgramService(db, log, programRepo)),
		TrajectoryHandler:     handlers.NewTrajectoryHandler(log, services.NewTrajectoryService(db, log, trajectoryRepo)),
		RecommendationHandler: handlers.NewRecommendationHandler(log, services.NewRecommendationService(db, log, profileRepo, programRepo, trajectoryRepo, recommendationRepo)),
		FeedbackHandler:       handlers.NewFeedbackHandler(log, services.NewFeedbackService(db, log, feedbackRepo)),
	})
	return router, db
}

func perform(router *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(recorder.Body.Bytes(), out); err != nil {
		t.Fatalf("decode body %q: %v", recorder.Body.String(), err)
	}
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder := perform(router, http.MethodGet, "/health", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", recorder.Code)
	}

	var payload map[string]string
	decodeBody(t, recorder, &payload)
	if payload["status"] != "healthy" {
		t.Errorf("status = %q, want healthy", payload["status"])
	}
	if payload["version"] != handlers.Version {
		t.Errorf("version = %q, want %q", payload["version"], handlers.Version)
	}
	if payload["environment"] == "" {
		t.Error("environment missing")
	}
	if _, err := time.Parse(time.RFC3339, payload["timestamp"]); err != nil {
		t.Errorf("timestamp %q not RFC3339: %v", payload["timestamp"], err)
	}
}

func TestUnknownRecommendationReturns404Envelope(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder := perform(router, http.MethodGet, "/api/v1/recommendations/"+uuid.NewString(), nil)
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", recorder.Code)
	}

	var envelope handlers.ErrorEnvelope
	decodeBody(t, recorder, &envelope)
	if envelope.Error.Code != "recommendation_not_found" {
		t.Errorf("code = %q, want recommendation_not_found", envelope.Error.Code)
	}
	if envelope.Error.Message == "" {
		t.Error("message missing from error envelope")
	}
}

func TestMalformedParamsAndBodiesReturn400(t *testing.T) {
	router, _ := newTestRouter(t)

	cases := []struct {
		name     string
		method   string
		path     string
		body     []byte
		wantCode string
	}{
		{"bad_recommendation_id", http.MethodGet, "/api/v1/recommendations/not-a-uuid", nil, "invalid_recommendation_id"},
		{"bad_profile_id", http.MethodGet, "/api/v1/profiles/not-a-uuid", nil, "invalid_profile_id"},
		{"bad_program_id", http.MethodGet, "/api/v1/programs/not-a-uuid", nil, "invalid_program_id"},
		{"generate_missing_profile_id", http.MethodPost, "/api/v1/recommendations", []byte(`{}`), "invalid_body"},
		{"generate_malformed_json", http.MethodPost, "/api/v1/recommendations", []byte(`{`), "invalid_body"},
		{"profile_malformed_json", http.MethodPost, "/api/v1/profiles", []byte(`{`), "invalid_body"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := perform(router, tc.method, tc.path, tc.body)
			if recorder.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", recorder.Code)
			}
			var envelope handlers.ErrorEnvelope
			decodeBody(t, recorder, &envelope)
			if envelope.Error.Code != tc.wantCode {
				t.Errorf("code = %q, want %q", envelope.Error.Code, tc.wantCode)
			}
		})
	}
}

func TestGenerateAndFetchOverHTTP(t *testing.T) {
	router, db := newTestRouter(t)

	now := time.Now().UTC()
	institution := &types.Institution{
		ID: uuid.New(), Name: "Universidad Tecnológica", ShortName: "UT",
		Type: types.InstitutionUniversity, Province: "Córdoba",
		CreatedAt: now, UpdatedAt: now,
	}
	if err := db.Create(institution).Error; err != nil {
		t.Fatalf("seed institution: %v", err)
	}
	program := &types.Program{
		ID: uuid.New(), InstitutionID: institution.ID, Name: "Programación",
		Type: types.ProgramTechnical, Area: "technology", Modality: types.ModalityInPerson,
		CreatedAt: now, UpdatedAt: now,
	}
	if err := db.Create(program).Error; err != nil {
		t.Fatalf("seed program: %v", err)
	}

	recorder := perform(router, http.MethodPost, "/api/v1/profiles", []byte(`{"interest_areas":["Technology"]}`))
	if recorder.Code != http.StatusCreated {
		t.Fatalf("create profile status = %d, body = %s", recorder.Code, recorder.Body.String())
	}
	var profile types.Profile
	decodeBody(t, recorder, &profile)
	if profile.ID == uuid.Nil {
		t.Fatal("profile id missing")
	}

	recorder = perform(router, http.MethodPost, "/api/v1/recommendations", []byte(`{"profile_id":"`+profile.ID.String()+`"}`))
	if recorder.Code != http.StatusCreated {
		t.Fatalf("generate status = %d, body = %s", recorder.Code, recorder.Body.String())
	}
	var generated services.RecommendationResponse
	decodeBody(t, recorder, &generated)
	if len(generated.Programs) != 1 {
		t.Fatalf("got %d programs, want 1", len(generated.Programs))
	}
	// Only the interest factor applies.
	if math.Abs(generated.Programs[0].Score-0.40) > 1e-9 {
		t.Errorf("score = %v, want 0.40", generated.Programs[0].Score)
	}
	if generated.Programs[0].Program == nil || generated.Programs[0].Program.Name != "Programación" {
		t.Errorf("program brief = %+v, want Programación", generated.Programs[0].Program)
	}

	recorder = perform(router, http.MethodGet, "/api/v1/recommendations/"+generated.ID.String(), nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("fetch status = %d, body = %s", recorder.Code, recorder.Body.String())
	}
	var fetched services.RecommendationResponse
	decodeBody(t, recorder, &fetched)
	if fetched.ID != generated.ID || fetched.ProfileID != profile.ID {
		t.Errorf("fetched ids = %s/%s, want %s/%s", fetched.ID, fetched.ProfileID, generated.ID, profile.ID)
	}
	if len(fetched.Programs) != 1 || fetched.Programs[0].ProgramID != program.ID {
		t.Fatalf("fetched programs = %+v, want the seeded program", fetched.Programs)
	}
}
