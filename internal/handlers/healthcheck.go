package handlers

import (
  "net/http"
  "os"
  "time"
  "github.com/gin-gonic/gin"
)

const Version = "0.1.0"

func HealthCheck(c *gin.Context) {
  environment := os.Getenv("ENVIRONMENT")
  if environment == "" {
    environment = "development"
  }
  c.JSON(http.StatusOK, gin.H{
    "status":      "healthy",
    "version":     Version,
    "environment": environment,
    "timestamp":   time.Now().UTC().Format(time.RFC3339),
  })
}
