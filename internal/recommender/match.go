package recommender

import (
  "fmt"
  "github.com/google/uuid"
  "github.com/rumbo-app/orientation-backend/internal/types"
)

// MaxMatchedTrajectories caps how many stories accompany one recommended
// program. The cap applies to the considered set, not to match quality.
const MaxMatchedTrajectories = 3

// MatchedTrajectory is a life story surfaced next to a recommended program.
type MatchedTrajectory struct {
  ID          uuid.UUID `json:"id"`
  Title       string    `json:"title"`
  MatchReason string    `json:"match_reason"`
}

// MatchTrajectories picks up to MaxMatchedTrajectories verified trajectories
// and attaches a single match reason to each. Pure: the caller supplies the
// candidate set (normally the program's verified trajectories in catalog
// order).
func MatchTrajectories(profile *types.Profile, trajectories []*types.Trajectory) []MatchedTrajectory {
  matched := []MatchedTrajectory{}
  for _, trajectory := range trajectories {
    if trajectory == nil || !trajectory.IsVerified {
      continue
    }
    if len(matched) >= MaxMatchedTrajectories {
      break
    }
    matched = append(matched, MatchedTrajectory{
      ID:          trajectory.ID,
      Title:       trajectory.Title,
      MatchReason: matchReason(profile, trajectory),
    })
  }
  return matched
}

// matchReason applies the rule list in priority order; the first rule that
// applies wins. The generic fallback always matches, so a verified trajectory
// is never excluded for lack of a specific reason.
func matchReason(profile *types.Profile, trajectory *types.Trajectory) string {
  if profile.WorksWhileStudying == types.WorkYes && trajectory.ContextBool("worked_while_studying") {
    return "Also worked while studying"
  }
  if profile.Province != "" && trajectory.ContextString("province") == profile.Province {
    return fmt.Sprintf("Studied in %s", profile.Province)
  }
  if trajectory.HasTag("first_generation") {
    return "First in their family to attend higher education"
  }
  if trajectory.HasTag("career_change") {
    return "Changed program along the way"
  }
  if trajectory.HasTag("remote_learning") && profile.PreferredModality == types.ModalityRemote {
    return "Studied remotely"
  }
  return "Chose this program in a similar situation"
}
