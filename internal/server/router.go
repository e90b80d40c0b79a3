package server

import (
  "github.com/gin-contrib/cors"
  "github.com/gin-gonic/gin"
  "github.com/rumbo-app/orientation-backend/internal/handlers"
  "github.com/rumbo-app/orientation-backend/internal/middleware"
)

type RouterConfig struct {
  CORSOrigins           []string
  RequestLogMiddleware  *middleware.RequestLogMiddleware
  ProfileHandler        *handlers.ProfileHandler
  InstitutionHandler    *handlers.InstitutionHandler
  ProgramHandler        *handlers.ProgramHandler
  TrajectoryHandler     *handlers.TrajectoryHandler
  RecommendationHandler *handlers.RecommendationHandler
  FeedbackHandler       *handlers.FeedbackHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()

  // Cors
  origins := cfg.CORSOrigins
  if len(origins) == 0 {
    origins = []string{
      "http://localhost:3000",
      "http://localhost:5173",
    }
  }
  router.Use(cors.New(cors.Config{
    AllowOrigins:     origins,
    AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
    AllowCredentials: true,
  }))

  router.GET("/health", handlers.HealthCheck)

  api := router.Group("/api/v1")
  if cfg.RequestLogMiddleware != nil {
    api.Use(cfg.RequestLogMiddleware.Handle())
  }
  {
    // Profiles
    api.POST("/profiles", cfg.ProfileHandler.Create)
    api.GET("/profiles/:id", cfg.ProfileHandler.GetByID)
    api.PATCH("/profiles/:id", cfg.ProfileHandler.Update)
    // Institutions
    api.GET("/institutions", cfg.InstitutionHandler.List)
    api.GET("/institutions/:id", cfg.InstitutionHandler.GetByID)
    // Programs
    api.GET("/programs", cfg.ProgramHandler.List)
    api.GET("/programs/:id", cfg.ProgramHandler.GetByID)
    // Trajectories
    api.GET("/trajectories", cfg.TrajectoryHandler.List)
    api.GET("/trajectories/:id", cfg.TrajectoryHandler.GetByID)
    // Recommendations
    api.POST("/recommendations", cfg.RecommendationHandler.Generate)
    api.GET("/recommendations/:id", cfg.RecommendationHandler.GetByID)
    // Feedback
    api.POST("/feedback", cfg.FeedbackHandler.Create)
  }

  return router
}
