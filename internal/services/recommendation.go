package services

import (
  "context"
  "encoding/json"
  "fmt"
  "sort"
  "time"

  "github.com/google/uuid"
  "gorm.io/datatypes"
  "gorm.io/gorm"

  "github.com/rumbo-app/orientation-backend/internal/apierr"
  "github.com/rumbo-app/orientation-backend/internal/logger"
  "github.com/rumbo-app/orientation-backend/internal/recommender"
  "github.com/rumbo-app/orientation-backend/internal/repos"
  "github.com/rumbo-app/orientation-backend/internal/types"
)

const (
  DefaultRecommendationLimit = 10
  MaxRecommendationLimit     = 50
)

// StoredProgram is one entry of the persisted snapshot: the program reference
// plus everything computed at generation time. It is self-describing so a
// later read never has to re-score.
type StoredProgram struct {
  ProgramID           uuid.UUID                       `json:"program_id"`
  Score               float64                         `json:"score"`
  Reasons             []recommender.ReasonDetail      `json:"reasons"`
  MatchedTrajectories []recommender.MatchedTrajectory `json:"matched_trajectories"`
}

type InstitutionBrief struct {
  ID        uuid.UUID `json:"id"`
  Name      string    `json:"name"`
  ShortName string    `json:"short_name,omitempty"`
}

// ProgramBrief carries the display attributes resolved live from the catalog.
type ProgramBrief struct {
  ID            uuid.UUID         `json:"id"`
  Name          string            `json:"name"`
  Type          types.ProgramType `json:"type"`
  DurationYears *float64          `json:"duration_years,omitempty"`
  Modality      types.Modality    `json:"modality"`
  Area          string            `json:"area"`
  Institution   *InstitutionBrief `json:"institution,omitempty"`
}

// RecommendedProgram is a snapshot entry joined with its live display data.
// Program is nil when the catalog program was deleted after generation; the
// frozen score, reasons and trajectories are still returned as stored.
type RecommendedProgram struct {
  ProgramID           uuid.UUID                       `json:"program_id"`
  Program             *ProgramBrief                   `json:"program,omitempty"`
  Score               float64                         `json:"score"`
  Reasons             []recommender.ReasonDetail      `json:"reasons"`
  MatchedTrajectories []recommender.MatchedTrajectory `json:"matched_trajectories"`
}

type RecommendationResponse struct {
  ID        uuid.UUID            `json:"id"`
  ProfileID uuid.UUID            `json:"profile_id"`
  CreatedAt time.Time            `json:"created_at"`
  Programs  []RecommendedProgram `json:"programs"`
}

type RecommendationService interface {
  Generate(ctx context.Context, tx *gorm.DB, profileID uuid.UUID, limit int) (*RecommendationResponse, error)
  GetByID(ctx context.Context, tx *gorm.DB, recommendationID uuid.UUID) (*RecommendationResponse, error)
}

type recommendationService struct {
  db             *gorm.DB
  log            *logger.Logger
  weights        recommender.Weights
  profileRepo    repos.ProfileRepo
  programRepo    repos.ProgramRepo
  trajectoryRepo repos.TrajectoryRepo
  recRepo        repos.RecommendationRepo
}

func NewRecommendationService(
  db *gorm.DB,
  baseLog *logger.Logger,
  profileRepo repos.ProfileRepo,
  programRepo repos.ProgramRepo,
  trajectoryRepo repos.TrajectoryRepo,
  recRepo repos.RecommendationRepo,
) RecommendationService {
  serviceLog := baseLog.With("service", "RecommendationService")
  return &recommendationService{
    db:             db,
    log:            serviceLog,
    weights:        recommender.DefaultWeights(),
    profileRepo:    profileRepo,
    programRepo:    programRepo,
    trajectoryRepo: trajectoryRepo,
    recRepo:        recRepo,
  }
}

type scoredProgram struct {
  program             *types.Program
  score               float64
  reasons             []recommender.ReasonDetail
  matchedTrajectories []recommender.MatchedTrajectory
}

func (rs *recommendationService) Generate(ctx context.Context, tx *gorm.DB, profileID uuid.UUID, limit int) (*RecommendationResponse, error) {
  transaction := tx
  if transaction == nil {
    transaction = rs.db
  }

  if limit < 1 {
    limit = DefaultRecommendationLimit
  }
  if limit > MaxRecommendationLimit {
    limit = MaxRecommendationLimit
  }

  profiles, err := rs.profileRepo.GetByIDs(ctx, transaction, []uuid.UUID{profileID})
  if err != nil {
    rs.log.Error("Generate failed loading profile", "error", err, "profile_id", profileID)
    return nil, fmt.Errorf("load profile: %w", err)
  }
  if len(profiles) == 0 || profiles[0] == nil {
    return nil, apierr.ProfileNotFound()
  }
  profile := profiles[0]

  // One catalog fetch, then pure computation over the fetched set.
  programs, err := rs.programRepo.ListAll(ctx, transaction)
  if err != nil {
    rs.log.Error("Generate failed loading catalog", "error", err)
    return nil, fmt.Errorf("load catalog: %w", err)
  }

  scored := make([]scoredProgram, 0, len(programs))
  for _, program := range programs {
    score, reasons := recommender.Score(profile, program, rs.weights)
    if score <= 0 {
      continue
    }
    trajectories, err := rs.trajectoryRepo.GetVerifiedByProgramID(ctx, transaction, program.ID, recommender.MaxMatchedTrajectories)
    if err != nil {
      rs.log.Error("Generate failed loading trajectories", "error", err, "program_id", program.ID)
      return nil, fmt.Errorf("load trajectories: %w", err)
    }
    scored = append(scored, scoredProgram{
      program:             program,
      score:               score,
      reasons:             reasons,
      matchedTrajectories: recommender.MatchTrajectories(profile, trajectories),
    })
  }

  // Stable: equal scores keep catalog order.
  sort.SliceStable(scored, func(i, j int) bool {
    return scored[i].score > scored[j].score
  })
  if len(scored) > limit {
    scored = scored[:limit]
  }

  stored := make([]StoredProgram, 0, len(scored))
  response := make([]RecommendedProgram, 0, len(scored))
  for _, entry := range scored {
    storedEntry := StoredProgram{
      ProgramID:           entry.program.ID,
      Score:               recommender.Round3(entry.score),
      Reasons:             entry.reasons,
      MatchedTrajectories: entry.matchedTrajectories,
    }
    stored = append(stored, storedEntry)
    response = append(response, RecommendedProgram{
      ProgramID:           storedEntry.ProgramID,
      Program:             programBrief(entry.program),
      Score:               storedEntry.Score,
      Reasons:             storedEntry.Reasons,
      MatchedTrajectories: storedEntry.MatchedTrajectories,
    })
  }

  payload, err := json.Marshal(stored)
  if err != nil {
    return nil, fmt.Errorf("marshal snapshot: %w", err)
  }

  recommendation := &types.Recommendation{
    ID:        uuid.New(),
    ProfileID: profileID,
    Programs:  datatypes.JSON(payload),
    CreatedAt: time.Now().UTC(),
    UpdatedAt: time.Now().UTC(),
  }
  if _, err := rs.recRepo.Create(ctx, transaction, []*types.Recommendation{recommendation}); err != nil {
    rs.log.Error("Generate failed persisting recommendation", "error", err, "profile_id", profileID)
    return nil, fmt.Errorf("save recommendation: %w", err)
  }

  rs.log.Info("Generated recommendation",
    "recommendation_id", recommendation.ID,
    "profile_id", profileID,
    "programs", len(response),
  )
  return &RecommendationResponse{
    ID:        recommendation.ID,
    ProfileID: profileID,
    CreatedAt: recommendation.CreatedAt,
    Programs:  response,
  }, nil
}

func (rs *recommendationService) GetByID(ctx context.Context, tx *gorm.DB, recommendationID uuid.UUID) (*RecommendationResponse, error) {
  transaction := tx
  if transaction == nil {
    transaction = rs.db
  }

  recommendations, err := rs.recRepo.GetByIDs(ctx, transaction, []uuid.UUID{recommendationID})
  if err != nil {
    rs.log.Error("GetByID failed loading recommendation", "error", err, "recommendation_id", recommendationID)
    return nil, fmt.Errorf("load recommendation: %w", err)
  }
  if len(recommendations) == 0 || recommendations[0] == nil {
    return nil, apierr.RecommendationNotFound()
  }
  recommendation := recommendations[0]

  var stored []StoredProgram
  if err := json.Unmarshal(recommendation.Programs, &stored); err != nil {
    rs.log.Error("GetByID failed decoding snapshot", "error", err, "recommendation_id", recommendationID)
    return nil, fmt.Errorf("decode snapshot: %w", err)
  }

  programIDs := make([]uuid.UUID, 0, len(stored))
  for _, entry := range stored {
    programIDs = append(programIDs, entry.ProgramID)
  }
  programs, err := rs.programRepo.GetByIDs(ctx, transaction, programIDs)
  if err != nil {
    rs.log.Error("GetByID failed resolving programs", "error", err, "recommendation_id", recommendationID)
    return nil, fmt.Errorf("resolve programs: %w", err)
  }
  byID := make(map[uuid.UUID]*types.Program, len(programs))
  for _, program := range programs {
    byID[program.ID] = program
  }

  response := make([]RecommendedProgram, 0, len(stored))
  for _, entry := range stored {
    // A deleted program keeps its frozen entry with blank display fields.
    response = append(response, RecommendedProgram{
      ProgramID:           entry.ProgramID,
      Program:             programBrief(byID[entry.ProgramID]),
      Score:               entry.Score,
      Reasons:             entry.Reasons,
      MatchedTrajectories: entry.MatchedTrajectories,
    })
  }

  return &RecommendationResponse{
    ID:        recommendation.ID,
    ProfileID: recommendation.ProfileID,
    CreatedAt: recommendation.CreatedAt,
    Programs:  response,
  }, nil
}

func programBrief(program *types.Program) *ProgramBrief {
  if program == nil {
    return nil
  }
  brief := &ProgramBrief{
    ID:            program.ID,
    Name:          program.Name,
    Type:          program.Type,
    DurationYears: program.DurationYears,
    Modality:      program.Modality,
    Area:          program.Area,
  }
  if program.Institution != nil {
    brief.Institution = &InstitutionBrief{
      ID:        program.Institution.ID,
      Name:      program.Institution.Name,
      ShortName: program.Institution.ShortName,
    }
  }
  return brief
}
