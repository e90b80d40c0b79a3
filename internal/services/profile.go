package services

import (
  "context"
  "errors"
  "fmt"
  "net/http"
  "time"

  "github.com/google/uuid"
  "gorm.io/datatypes"
  "gorm.io/gorm"

  "github.com/rumbo-app/orientation-backend/internal/apierr"
  "github.com/rumbo-app/orientation-backend/internal/logger"
  "github.com/rumbo-app/orientation-backend/internal/normalization"
  "github.com/rumbo-app/orientation-backend/internal/repos"
  "github.com/rumbo-app/orientation-backend/internal/types"
)

type ProfileCreateInput struct {
  Province           string                  `json:"province"`
  Locality           string                  `json:"locality"`
  WorksWhileStudying types.WorkWhileStudying `json:"works_while_studying"`
  PreferredModality  types.Modality          `json:"preferred_modality"`
  MaxWeeklyHours     *int                    `json:"max_weekly_hours"`
  HasTechnicalDegree *bool                   `json:"has_technical_degree"`
  InterestAreas      []string                `json:"interest_areas"`
}

// ProfileUpdateInput is a partial update: nil fields are left untouched.
type ProfileUpdateInput struct {
  Province           *string                  `json:"province"`
  Locality           *string                  `json:"locality"`
  WorksWhileStudying *types.WorkWhileStudying `json:"works_while_studying"`
  PreferredModality  *types.Modality          `json:"preferred_modality"`
  MaxWeeklyHours     *int                     `json:"max_weekly_hours"`
  HasTechnicalDegree *bool                    `json:"has_technical_degree"`
  InterestAreas      []string                 `json:"interest_areas"`
}

type ProfileService interface {
  Create(ctx context.Context, tx *gorm.DB, input ProfileCreateInput) (*types.Profile, error)
  GetByID(ctx context.Context, tx *gorm.DB, profileID uuid.UUID) (*types.Profile, error)
  Update(ctx context.Context, tx *gorm.DB, profileID uuid.UUID, input ProfileUpdateInput) (*types.Profile, error)
}

type profileService struct {
  db          *gorm.DB
  log         *logger.Logger
  profileRepo repos.ProfileRepo
}

func NewProfileService(db *gorm.DB, baseLog *logger.Logger, profileRepo repos.ProfileRepo) ProfileService {
  serviceLog := baseLog.With("service", "ProfileService")
  return &profileService{db: db, log: serviceLog, profileRepo: profileRepo}
}

func (ps *profileService) Create(ctx context.Context, tx *gorm.DB, input ProfileCreateInput) (*types.Profile, error) {
  if err := validateProfileEnums(input.WorksWhileStudying, input.PreferredModality); err != nil {
    return nil, err
  }

  now := time.Now().UTC()
  profile := &types.Profile{
    ID:                 uuid.New(),
    Province:           normalization.ParsePlaceName(input.Province),
    Locality:           normalization.ParsePlaceName(input.Locality),
    WorksWhileStudying: input.WorksWhileStudying,
    PreferredModality:  input.PreferredModality,
    MaxWeeklyHours:     input.MaxWeeklyHours,
    HasTechnicalDegree: input.HasTechnicalDegree,
    InterestAreas:      normalizeAreas(input.InterestAreas),
    CreatedAt:          now,
    UpdatedAt:          now,
  }

  if _, err := ps.profileRepo.Create(ctx, tx, []*types.Profile{profile}); err != nil {
    ps.log.Error("Create profile failed", "error", err)
    return nil, fmt.Errorf("create profile: %w", err)
  }
  return profile, nil
}

func (ps *profileService) GetByID(ctx context.Context, tx *gorm.DB, profileID uuid.UUID) (*types.Profile, error) {
  profiles, err := ps.profileRepo.GetByIDs(ctx, tx, []uuid.UUID{profileID})
  if err != nil {
    ps.log.Error("GetByID profile failed", "error", err, "profile_id", profileID)
    return nil, fmt.Errorf("get profile: %w", err)
  }
  if len(profiles) == 0 || profiles[0] == nil {
    return nil, apierr.ProfileNotFound()
  }
  return profiles[0], nil
}

func (ps *profileService) Update(ctx context.Context, tx *gorm.DB, profileID uuid.UUID, input ProfileUpdateInput) (*types.Profile, error) {
  profile, err := ps.GetByID(ctx, tx, profileID)
  if err != nil {
    return nil, err
  }

  if input.WorksWhileStudying != nil && *input.WorksWhileStudying != "" && !input.WorksWhileStudying.Valid() {
    return nil, apierr.New(http.StatusBadRequest, "invalid_works_while_studying", errors.New("invalid works_while_studying value"))
  }
  if input.PreferredModality != nil && *input.PreferredModality != "" && !input.PreferredModality.Valid() {
    return nil, apierr.New(http.StatusBadRequest, "invalid_preferred_modality", errors.New("invalid preferred_modality value"))
  }

  if input.Province != nil {
    profile.Province = normalization.ParsePlaceName(*input.Province)
  }
  if input.Locality != nil {
    profile.Locality = normalization.ParsePlaceName(*input.Locality)
  }
  if input.WorksWhileStudying != nil {
    profile.WorksWhileStudying = *input.WorksWhileStudying
  }
  if input.PreferredModality != nil {
    profile.PreferredModality = *input.PreferredModality
  }
  if input.MaxWeeklyHours != nil {
    profile.MaxWeeklyHours = input.MaxWeeklyHours
  }
  if input.HasTechnicalDegree != nil {
    profile.HasTechnicalDegree = input.HasTechnicalDegree
  }
  if input.InterestAreas != nil {
    profile.InterestAreas = normalizeAreas(input.InterestAreas)
  }
  profile.UpdatedAt = time.Now().UTC()

  if _, err := ps.profileRepo.Update(ctx, tx, profile); err != nil {
    ps.log.Error("Update profile failed", "error", err, "profile_id", profileID)
    return nil, fmt.Errorf("update profile: %w", err)
  }
  return profile, nil
}

func validateProfileEnums(works types.WorkWhileStudying, modality types.Modality) error {
  if works != "" && !works.Valid() {
    return apierr.New(http.StatusBadRequest, "invalid_works_while_studying", errors.New("invalid works_while_studying value"))
  }
  if modality != "" && !modality.Valid() {
    return apierr.New(http.StatusBadRequest, "invalid_preferred_modality", errors.New("invalid preferred_modality value"))
  }
  return nil
}

func normalizeAreas(areas []string) datatypes.JSONSlice[string] {
  if areas == nil {
    return nil
  }
  normalized := make([]string, 0, len(areas))
  for _, area := range areas {
    parsed := normalization.ParseInputString(area)
    if parsed == "" {
      continue
    }
    normalized = append(normalized, parsed)
  }
  return datatypes.NewJSONSlice(normalized)
}
