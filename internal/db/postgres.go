package db

import (
  "fmt"
  "gorm.io/driver/postgres"
  "gorm.io/gorm"
  "github.com/rumbo-app/orientation-backend/internal/logger"
  "github.com/rumbo-app/orientation-backend/internal/types"
  "github.com/rumbo-app/orientation-backend/internal/utils"
)

type PostgresService struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
  serviceLog := log.With("service", "PostgresService")

  log.Info("Loading environment variables...")
  postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", log)
  postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
  postgresUser := utils.GetEnv("POSTGRES_USER", "orientation", log)
  postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
  postgresName := utils.GetEnv("POSTGRES_NAME", "orientation_db", log)
  log.Debug("Environment variables loaded")

  dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

  log.Info("Connecting to Postgres...")
  db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
    DisableForeignKeyConstraintWhenMigrating: true,
  })
  if err != nil {
    log.Error("Failed to connect to Postgres", "error", err)
    return nil, fmt.Errorf("Failed to connect to Postgres: %w", err)
  }

  return &PostgresService{db: db, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
  s.log.Info("Auto migrating postgres tables...")
  err := s.db.AutoMigrate(
    &types.Profile{},
    &types.Institution{},
    &types.Program{},
    &types.Trajectory{},
    &types.Recommendation{},
    &types.Feedback{},
  )
  if err != nil {
    s.log.Error("Auto migration failed for postgres tables", "error", err)
    return err
  }
  s.log.Info("Configuring foreign key relationships for postgres tables...")
  if err := s.db.Exec(`
    ALTER TABLE "programs"
    ADD CONSTRAINT "fk_programs_institution_id"
    FOREIGN KEY ("institution_id")
    REFERENCES "institutions"("id")
    ON DELETE CASCADE
  `).Error; err != nil {
    return fmt.Errorf("Failed to add fk_programs_institution_id: %w", err)
  }
  if err := s.db.Exec(`
    ALTER TABLE "trajectories"
    ADD CONSTRAINT "fk_trajectories_program_id"
    FOREIGN KEY ("program_id")
    REFERENCES "programs"("id")
    ON DELETE SET NULL
  `).Error; err != nil {
    return fmt.Errorf("Failed to add fk_trajectories_program_id: %w", err)
  }
  if err := s.db.Exec(`
    ALTER TABLE "recommendations"
    ADD CONSTRAINT "fk_recommendations_profile_id"
    FOREIGN KEY ("profile_id")
    REFERENCES "profiles"("id")
    ON DELETE CASCADE
  `).Error; err != nil {
    return fmt.Errorf("Failed to add fk_recommendations_profile_id: %w", err)
  }
  if err := s.db.Exec(`
    ALTER TABLE "feedback"
    ADD CONSTRAINT "fk_feedback_profile_id"
    FOREIGN KEY ("profile_id")
    REFERENCES "profiles"("id")
    ON DELETE SET NULL
  `).Error; err != nil {
    return fmt.Errorf("Failed to add fk_feedback_profile_id: %w", err)
  }
  return nil
}

func (s *PostgresService) DB() *gorm.DB {
  return s.db
}
