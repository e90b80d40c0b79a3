package types

// WorkWhileStudying is the profile's answer to whether they plan to work
// during their studies.
type WorkWhileStudying string

const (
  WorkYes   WorkWhileStudying = "yes"
  WorkNo    WorkWhileStudying = "no"
  WorkMaybe WorkWhileStudying = "maybe"
)

func (w WorkWhileStudying) Valid() bool {
  switch w {
  case WorkYes, WorkNo, WorkMaybe:
    return true
  }
  return false
}

// Modality covers both program modality and profile preference. Programs only
// ever carry InPerson, Remote or Hybrid; NoPreference is profile-side.
type Modality string

const (
  ModalityInPerson     Modality = "in_person"
  ModalityRemote       Modality = "remote"
  ModalityHybrid       Modality = "hybrid"
  ModalityNoPreference Modality = "no_preference"
)

func (m Modality) Valid() bool {
  switch m {
  case ModalityInPerson, ModalityRemote, ModalityHybrid, ModalityNoPreference:
    return true
  }
  return false
}

func (m Modality) ValidForProgram() bool {
  switch m {
  case ModalityInPerson, ModalityRemote, ModalityHybrid:
    return true
  }
  return false
}

type Shift string

const (
  ShiftMorning   Shift = "morning"
  ShiftAfternoon Shift = "afternoon"
  ShiftEvening   Shift = "evening"
  ShiftFlexible  Shift = "flexible"
)

func (s Shift) Valid() bool {
  switch s {
  case ShiftMorning, ShiftAfternoon, ShiftEvening, ShiftFlexible:
    return true
  }
  return false
}

type ProgramType string

const (
  ProgramDegree    ProgramType = "degree"
  ProgramTechnical ProgramType = "technical"
  ProgramCourse    ProgramType = "course"
)

func (p ProgramType) Valid() bool {
  switch p {
  case ProgramDegree, ProgramTechnical, ProgramCourse:
    return true
  }
  return false
}

type InstitutionType string

const (
  InstitutionUniversity InstitutionType = "university"
  InstitutionInstitute  InstitutionType = "institute"
  InstitutionOther      InstitutionType = "other"
)

// Outcome is how a recorded trajectory ended up.
type Outcome string

const (
  OutcomeCompleted  Outcome = "completed"
  OutcomeSwitched   Outcome = "switched"
  OutcomeDropped    Outcome = "dropped"
  OutcomeInProgress Outcome = "in_progress"
)

func (o Outcome) Valid() bool {
  switch o {
  case OutcomeCompleted, OutcomeSwitched, OutcomeDropped, OutcomeInProgress:
    return true
  }
  return false
}

type FeedbackTarget string

const (
  FeedbackTargetRecommendation FeedbackTarget = "recommendation"
  FeedbackTargetTrajectory     FeedbackTarget = "trajectory"
  FeedbackTargetProgram        FeedbackTarget = "program"
)

func (f FeedbackTarget) Valid() bool {
  switch f {
  case FeedbackTargetRecommendation, FeedbackTargetTrajectory, FeedbackTargetProgram:
    return true
  }
  return false
}
