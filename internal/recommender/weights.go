package recommender

// Factor identifiers, stable across persisted snapshots.
const (
  FactorInterestMatch  = "interest_match"
  FactorWorkCompatible = "work_compatible"
  FactorModalityMatch  = "modality_match"
  FactorLocation       = "location"
  FactorDuration       = "duration"
)

// Weights is the factor weight table. It is plain immutable configuration:
// construct one, hand it to Score, never mutate it.
type Weights struct {
  InterestMatch  float64
  WorkCompatible float64
  ModalityMatch  float64
  Location       float64
  Duration       float64
}

// DefaultWeights sum to 1.0, which bounds every total score to [0, 1].
func DefaultWeights() Weights {
  return Weights{
    InterestMatch:  0.40,
    WorkCompatible: 0.25,
    ModalityMatch:  0.15,
    Location:       0.10,
    Duration:       0.10,
  }
}

// Partial-credit fractions per factor.
const (
  eveningShiftFraction   = 0.70
  hybridFraction         = 0.50
  remoteAnywhereFraction = 0.80
  midDurationFraction    = 0.50
)

// Duration thresholds in years.
const (
  shortDurationYears = 3.0
  midDurationYears   = 5.0
)
