package recommender

import (
  "fmt"
  "math"
  "strings"
  "github.com/rumbo-app/orientation-backend/internal/types"
)

// ReasonDetail explains one factor's contribution to a program's score.
type ReasonDetail struct {
  Factor       string  `json:"factor"`
  Description  string  `json:"description"`
  Weight       float64 `json:"weight"`
  Contribution float64 `json:"contribution"`
}

// Score rates a program against a profile. Pure and deterministic: no I/O, no
// state, same inputs always produce the same output.
//
// Each factor is evaluated independently and contributes at most its weight;
// only the highest applicable tier fires. Missing or unset inputs yield zero
// contribution for that factor, never an error. A reason is emitted only when
// its factor contributed. The returned score is the unrounded sum of
// contributions; individual contributions are rounded to 3 decimals for
// display.
func Score(profile *types.Profile, program *types.Program, weights Weights) (float64, []ReasonDetail) {
  score := 0.0
  reasons := []ReasonDetail{}

  addReason := func(factor, description string, weight, contribution float64) {
    score += contribution
    reasons = append(reasons, ReasonDetail{
      Factor:       factor,
      Description:  description,
      Weight:       weight,
      Contribution: Round3(contribution),
    })
  }

  // 1. Interest match
  if len(profile.InterestAreas) > 0 && program.Area != "" {
    if containsString(profile.InterestAreas, program.Area) {
      addReason(
        FactorInterestMatch,
        fmt.Sprintf("Matches your interest in %s", AreaDisplayName(program.Area)),
        weights.InterestMatch,
        weights.InterestMatch,
      )
    }
  }

  // 2. Work compatibility
  if profile.WorksWhileStudying == types.WorkYes || profile.WorksWhileStudying == types.WorkMaybe {
    if program.WorkCompatible != nil && *program.WorkCompatible {
      description := "Compatible with working"
      if program.Shift != "" {
        description = fmt.Sprintf("Compatible with working (%s)", ShiftDisplayName(program.Shift))
      }
      addReason(FactorWorkCompatible, description, weights.WorkCompatible, weights.WorkCompatible)
    } else if program.Shift == types.ShiftEvening {
      addReason(
        FactorWorkCompatible,
        "Evening shift, may fit around a job",
        weights.WorkCompatible,
        weights.WorkCompatible*eveningShiftFraction,
      )
    }
  }

  // 3. Modality match
  if profile.PreferredModality != "" && profile.PreferredModality != types.ModalityNoPreference {
    if program.Modality == profile.PreferredModality {
      addReason(
        FactorModalityMatch,
        fmt.Sprintf("%s modality, as you prefer", ModalityDisplayName(program.Modality)),
        weights.ModalityMatch,
        weights.ModalityMatch,
      )
    } else if program.Modality == types.ModalityHybrid {
      addReason(
        FactorModalityMatch,
        "Hybrid modality (flexible)",
        weights.ModalityMatch,
        weights.ModalityMatch*hybridFraction,
      )
    }
  }

  // 4. Location
  if profile.Province != "" {
    if program.InstitutionProvince() == profile.Province {
      addReason(
        FactorLocation,
        fmt.Sprintf("Available in %s", profile.Province),
        weights.Location,
        weights.Location,
      )
    } else if program.Modality == types.ModalityRemote {
      addReason(
        FactorLocation,
        "Fully remote, accessible from anywhere",
        weights.Location,
        weights.Location*remoteAnywhereFraction,
      )
    }
  }

  // 5. Duration
  if program.DurationYears != nil {
    years := *program.DurationYears
    if years <= shortDurationYears {
      addReason(
        FactorDuration,
        fmt.Sprintf("Short duration (%s)", durationDisplay(years)),
        weights.Duration,
        weights.Duration,
      )
    } else if years <= midDurationYears {
      addReason(
        FactorDuration,
        fmt.Sprintf("Medium duration (%s)", durationDisplay(years)),
        weights.Duration,
        weights.Duration*midDurationFraction,
      )
    }
  }

  return score, reasons
}

func Round3(value float64) float64 {
  return math.Round(value*1000) / 1000
}

func containsString(haystack []string, needle string) bool {
  for _, candidate := range haystack {
    if candidate == needle {
      return true
    }
  }
  return false
}

func durationDisplay(years float64) string {
  if years == 1 {
    return "1 year"
  }
  return fmt.Sprintf("%g years", years)
}

var areaNames = map[string]string{
  "technology":      "Technology",
  "health":          "Health",
  "social_sciences": "Social Sciences",
  "exact_sciences":  "Exact Sciences",
  "arts":            "Arts & Design",
  "business":        "Business",
  "education":       "Education",
  "engineering":     "Engineering",
  "law":             "Law",
  "communication":   "Communication",
  "agriculture":     "Agriculture & Environment",
  "trades":          "Trades",
}

func AreaDisplayName(area string) string {
  if name, ok := areaNames[area]; ok {
    return name
  }
  words := strings.Split(area, "_")
  for i, word := range words {
    if word == "" {
      continue
    }
    words[i] = strings.ToUpper(word[:1]) + word[1:]
  }
  return strings.Join(words, " ")
}

func ModalityDisplayName(modality types.Modality) string {
  switch modality {
  case types.ModalityInPerson:
    return "In-person"
  case types.ModalityRemote:
    return "Remote"
  case types.ModalityHybrid:
    return "Hybrid"
  default:
    return string(modality)
  }
}

func ShiftDisplayName(shift types.Shift) string {
  switch shift {
  case types.ShiftMorning:
    return "morning shift"
  case types.ShiftAfternoon:
    return "afternoon shift"
  case types.ShiftEvening:
    return "evening shift"
  case types.ShiftFlexible:
    return "flexible schedule"
  default:
    return string(shift)
  }
}
