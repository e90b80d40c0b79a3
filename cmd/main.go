package main

import (
  "fmt"
  "os"
  "strings"
  "github.com/rumbo-app/orientation-backend/internal/db"
  "github.com/rumbo-app/orientation-backend/internal/handlers"
  "github.com/rumbo-app/orientation-backend/internal/logger"
  "github.com/rumbo-app/orientation-backend/internal/middleware"
  "github.com/rumbo-app/orientation-backend/internal/repos"
  "github.com/rumbo-app/orientation-backend/internal/server"
  "github.com/rumbo-app/orientation-backend/internal/services"
  "github.com/rumbo-app/orientation-backend/internal/utils"
)

func main() {
  // Logger
  logMode := os.Getenv("LOG_MODE")
  if logMode == "" {
    logMode = "development"
  }
  log, err := logger.New(logMode)
  if err != nil {
    fmt.Printf("Failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  // Postgres
  postgresService, err := db.NewPostgresService(log)
  if err != nil {
    log.Error("Postgres init failed", "error", err)
    os.Exit(1)
  }
  if err = postgresService.AutoMigrateAll(); err != nil {
    log.Warn("Postgres auto migration failed", "error", err)
  }
  thePG := postgresService.DB()

  // Repos
  log.Info("Setting up Repos from main...")
  profileRepo := repos.NewProfileRepo(thePG, log)
  institutionRepo := repos.NewInstitutionRepo(thePG, log)
  programRepo := repos.NewProgramRepo(thePG, log)
  trajectoryRepo := repos.NewTrajectoryRepo(thePG, log)
  recommendationRepo := repos.NewRecommendationRepo(thePG, log)
  feedbackRepo := repos.NewFeedbackRepo(thePG, log)

  // Services
  log.Info("Setting up Services from main...")
  profileService := services.NewProfileService(thePG, log, profileRepo)
  institutionService := services.NewInstitutionService(thePG, log, institutionRepo)
  programService := services.NewProgramService(thePG, log, programRepo)
  trajectoryService := services.NewTrajectoryService(thePG, log, trajectoryRepo)
  feedbackService := services.NewFeedbackService(thePG, log, feedbackRepo)
  recommendationService := services.NewRecommendationService(thePG, log, profileRepo, programRepo, trajectoryRepo, recommendationRepo)

  // Handlers
  log.Info("Setting up handlers from main...")
  profileHandler := handlers.NewProfileHandler(log, profileService)
  institutionHandler := handlers.NewInstitutionHandler(log, institutionService)
  programHandler := handlers.NewProgramHandler(log, programService)
  trajectoryHandler := handlers.NewTrajectoryHandler(log, trajectoryService)
  recommendationHandler := handlers.NewRecommendationHandler(log, recommendationService)
  feedbackHandler := handlers.NewFeedbackHandler(log, feedbackService)

  // Middleware
  log.Info("Setting up middleware from main...")
  requestLogMiddleware := middleware.NewRequestLogMiddleware(log)

  // Router
  log.Info("Setting up router from main...")
  corsOrigins := utils.GetEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173", log)
  router := server.NewRouter(server.RouterConfig{
    CORSOrigins:           splitOrigins(corsOrigins),
    RequestLogMiddleware:  requestLogMiddleware,
    ProfileHandler:        profileHandler,
    InstitutionHandler:    institutionHandler,
    ProgramHandler:        programHandler,
    TrajectoryHandler:     trajectoryHandler,
    RecommendationHandler: recommendationHandler,
    FeedbackHandler:       feedbackHandler,
  })

  port := utils.GetEnv("PORT", "8080", log)
  fmt.Printf("Server listening on :%s\n", port)
  if err := router.Run(":" + port); err != nil {
    log.Error("Server failed", "error", err)
  }
}

func splitOrigins(raw string) []string {
  parts := strings.Split(raw, ",")
  origins := make([]string, 0, len(parts))
  for _, part := range parts {
    part = strings.TrimSpace(part)
    if part != "" {
      origins = append(origins, part)
    }
  }
  return origins
}
