package recommender

import (
	"math"
	"testing"

	"gorm.io/datatypes"

	"github.com/rumbo-app/orientation-backend/internal/types"
)

func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func programWithInstitution(province string) *types.Program {
	return &types.Program{
		Institution: &types.Institution{Province: province},
	}
}

func TestScoreInterestMatchOnly(t *testing.T) {
	profile := &types.Profile{
		InterestAreas: datatypes.NewJSONSlice([]string{"technology"}),
	}
	program := &types.Program{
		Area:     "technology",
		Modality: types.ModalityInPerson,
	}

	score, reasons := Score(profile, program, DefaultWeights())

	if !almostEqual(score, 0.40) {
		t.Fatalf("score = %v, want 0.40", score)
	}
	if len(reasons) != 1 {
		t.Fatalf("got %d reasons, want 1", len(reasons))
	}
	if reasons[0].Factor != FactorInterestMatch {
		t.Errorf("factor = %q, want %q", reasons[0].Factor, FactorInterestMatch)
	}
	if !almostEqual(reasons[0].Contribution, 0.40) {
		t.Errorf("contribution = %v, want 0.40", reasons[0].Contribution)
	}
}

func TestScoreWorkCompatibility(t *testing.T) {
	cases := []struct {
		name             string
		works            types.WorkWhileStudying
		workCompatible   *bool
		shift            types.Shift
		wantContribution float64
		wantReason       bool
	}{
		{
			name:             "full_credit_when_flagged",
			works:            types.WorkYes,
			workCompatible:   boolPtr(true),
			wantContribution: 0.25,
			wantReason:       true,
		},
		{
			name:             "maybe_also_qualifies",
			works:            types.WorkMaybe,
			workCompatible:   boolPtr(true),
			wantContribution: 0.25,
			wantReason:       true,
		},
		{
			name:             "evening_shift_partial",
			works:            types.WorkYes,
			workCompatible:   boolPtr(false),
			shift:            types.ShiftEvening,
			wantContribution: 0.25 * 0.70,
			wantReason:       true,
		},
		{
			name:             "unset_flag_evening_partial",
			works:            types.WorkYes,
			shift:            types.ShiftEvening,
			wantContribution: 0.25 * 0.70,
			wantReason:       true,
		},
		{
			name:       "no_credit_when_not_working",
			works:      types.WorkNo,
			workCompatible: boolPtr(true),
			wantReason: false,
		},
		{
			name:       "no_credit_when_unset",
			workCompatible: boolPtr(true),
			wantReason: false,
		},
		{
			name:       "no_credit_morning_incompatible",
			works:      types.WorkYes,
			workCompatible: boolPtr(false),
			shift:      types.ShiftMorning,
			wantReason: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			profile := &types.Profile{WorksWhileStudying: tc.works}
			program := &types.Program{
				Modality:       types.ModalityInPerson,
				WorkCompatible: tc.workCompatible,
				Shift:          tc.shift,
			}
			score, reasons := Score(profile, program, DefaultWeights())
			if !tc.wantReason {
				if len(reasons) != 0 {
					t.Fatalf("got %d reasons, want none", len(reasons))
				}
				if score != 0 {
					t.Fatalf("score = %v, want 0", score)
				}
				return
			}
			if len(reasons) != 1 {
				t.Fatalf("got %d reasons, want 1", len(reasons))
			}
			if reasons[0].Factor != FactorWorkCompatible {
				t.Errorf("factor = %q, want %q", reasons[0].Factor, FactorWorkCompatible)
			}
			if !almostEqual(reasons[0].Contribution, Round3(tc.wantContribution)) {
				t.Errorf("contribution = %v, want %v", reasons[0].Contribution, Round3(tc.wantContribution))
			}
			if !almostEqual(score, tc.wantContribution) {
				t.Errorf("score = %v, want %v", score, tc.wantContribution)
			}
		})
	}
}

func TestScoreModalityMatch(t *testing.T) {
	cases := []struct {
		name             string
		preference       types.Modality
		programModality  types.Modality
		wantContribution float64
		wantReason       bool
	}{
		{"exact_match", types.ModalityRemote, types.ModalityRemote, 0.15, true},
		{"hybrid_partial", types.ModalityRemote, types.ModalityHybrid, 0.15 * 0.50, true},
		{"mismatch_no_credit", types.ModalityRemote, types.ModalityInPerson, 0, false},
		{"no_preference_no_credit", types.ModalityNoPreference, types.ModalityRemote, 0, false},
		{"unset_preference_no_credit", "", types.ModalityHybrid, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			profile := &types.Profile{PreferredModality: tc.preference}
			program := &types.Program{Modality: tc.programModality}
			score, reasons := Score(profile, program, DefaultWeights())
			if !tc.wantReason {
				if len(reasons) != 0 {
					t.Fatalf("got %d reasons, want none", len(reasons))
				}
				return
			}
			if len(reasons) != 1 || reasons[0].Factor != FactorModalityMatch {
				t.Fatalf("reasons = %+v, want one modality_match reason", reasons)
			}
			if !almostEqual(score, tc.wantContribution) {
				t.Errorf("score = %v, want %v", score, tc.wantContribution)
			}
		})
	}
}

func TestScoreLocation(t *testing.T) {
	t.Run("same_province_full_credit", func(t *testing.T) {
		profile := &types.Profile{Province: "Córdoba"}
		program := programWithInstitution("Córdoba")
		program.Modality = types.ModalityInPerson

		score, reasons := Score(profile, program, DefaultWeights())
		if !almostEqual(score, 0.10) {
			t.Fatalf("score = %v, want 0.10", score)
		}
		if len(reasons) != 1 || reasons[0].Factor != FactorLocation {
			t.Fatalf("reasons = %+v, want one location reason", reasons)
		}
		if got := reasons[0].Description; got != "Available in Córdoba" {
			t.Errorf("description = %q, want the matching province mentioned", got)
		}
	})

	t.Run("remote_program_partial_credit", func(t *testing.T) {
		profile := &types.Profile{Province: "Mendoza"}
		program := programWithInstitution("Buenos Aires")
		program.Modality = types.ModalityRemote

		score, reasons := Score(profile, program, DefaultWeights())
		if !almostEqual(score, 0.10*0.80) {
			t.Fatalf("score = %v, want %v", score, 0.10*0.80)
		}
		if len(reasons) != 1 || reasons[0].Factor != FactorLocation {
			t.Fatalf("reasons = %+v, want one location reason", reasons)
		}
	})

	t.Run("no_province_no_credit", func(t *testing.T) {
		profile := &types.Profile{}
		program := programWithInstitution("Córdoba")
		program.Modality = types.ModalityRemote

		score, reasons := Score(profile, program, DefaultWeights())
		if score != 0 || len(reasons) != 0 {
			t.Fatalf("score = %v reasons = %d, want zero without a province", score, len(reasons))
		}
	})

	t.Run("missing_institution_no_credit", func(t *testing.T) {
		profile := &types.Profile{Province: "Córdoba"}
		program := &types.Program{Modality: types.ModalityInPerson}

		score, reasons := Score(profile, program, DefaultWeights())
		if score != 0 || len(reasons) != 0 {
			t.Fatalf("score = %v reasons = %d, want zero without an institution", score, len(reasons))
		}
	})
}

func TestScoreDuration(t *testing.T) {
	cases := []struct {
		name             string
		duration         *float64
		wantContribution float64
		wantReason       bool
	}{
		{"short_full_credit", floatPtr(2), 0.10, true},
		{"exactly_three_full_credit", floatPtr(3), 0.10, true},
		{"medium_partial_credit", floatPtr(4.5), 0.10 * 0.50, true},
		{"exactly_five_partial_credit", floatPtr(5), 0.10 * 0.50, true},
		{"long_no_credit", floatPtr(7), 0, false},
		{"unset_no_credit", nil, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			profile := &types.Profile{}
			program := &types.Program{
				Modality:      types.ModalityInPerson,
				DurationYears: tc.duration,
			}
			score, reasons := Score(profile, program, DefaultWeights())
			if !tc.wantReason {
				if len(reasons) != 0 {
					t.Fatalf("got %d reasons, want none", len(reasons))
				}
				return
			}
			if len(reasons) != 1 || reasons[0].Factor != FactorDuration {
				t.Fatalf("reasons = %+v, want one duration reason", reasons)
			}
			if !almostEqual(score, tc.wantContribution) {
				t.Errorf("score = %v, want %v", score, tc.wantContribution)
			}
		})
	}
}

func TestScoreBoundsAndReasonInvariant(t *testing.T) {
	// A profile and program that light up every factor at full credit.
	profile := &types.Profile{
		Province:           "Córdoba",
		WorksWhileStudying: types.WorkYes,
		PreferredModality:  types.ModalityRemote,
		InterestAreas:      datatypes.NewJSONSlice([]string{"technology"}),
	}
	program := &types.Program{
		Area:           "technology",
		Modality:       types.ModalityRemote,
		WorkCompatible: boolPtr(true),
		DurationYears:  floatPtr(2),
		Institution:    &types.Institution{Province: "Córdoba"},
	}

	score, reasons := Score(profile, program, DefaultWeights())
	if score < 0 || score > 1+1e-9 {
		t.Fatalf("score = %v, out of [0,1]", score)
	}
	if !almostEqual(score, 1.0) {
		t.Fatalf("score = %v, want 1.0 with every factor at full credit", score)
	}
	if len(reasons) != 5 {
		t.Fatalf("got %d reasons, want 5", len(reasons))
	}
	for _, reason := range reasons {
		if reason.Contribution <= 0 {
			t.Errorf("factor %q emitted with contribution %v", reason.Factor, reason.Contribution)
		}
		if reason.Contribution > reason.Weight+1e-9 {
			t.Errorf("factor %q contribution %v exceeds weight %v", reason.Factor, reason.Contribution, reason.Weight)
		}
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	profile := &types.Profile{
		Province:           "Santa Fe",
		WorksWhileStudying: types.WorkMaybe,
		PreferredModality:  types.ModalityHybrid,
		InterestAreas:      datatypes.NewJSONSlice([]string{"health", "technology"}),
	}
	program := &types.Program{
		Area:          "health",
		Modality:      types.ModalityHybrid,
		Shift:         types.ShiftEvening,
		DurationYears: floatPtr(4),
		Institution:   &types.Institution{Province: "Santa Fe"},
	}

	firstScore, firstReasons := Score(profile, program, DefaultWeights())
	secondScore, secondReasons := Score(profile, program, DefaultWeights())

	if firstScore != secondScore {
		t.Fatalf("scores differ: %v vs %v", firstScore, secondScore)
	}
	if len(firstReasons) != len(secondReasons) {
		t.Fatalf("reason counts differ: %d vs %d", len(firstReasons), len(secondReasons))
	}
	for i := range firstReasons {
		if firstReasons[i] != secondReasons[i] {
			t.Errorf("reason %d differs: %+v vs %+v", i, firstReasons[i], secondReasons[i])
		}
	}
}

func TestScoreEmptyInputsScoreZero(t *testing.T) {
	score, reasons := Score(&types.Profile{}, &types.Program{Modality: types.ModalityInPerson}, DefaultWeights())
	if score != 0 {
		t.Fatalf("score = %v, want 0 for an empty profile", score)
	}
	if len(reasons) != 0 {
		t.Fatalf("got %d reasons, want none", len(reasons))
	}
}

func TestAreaDisplayName(t *testing.T) {
	cases := []struct {
		area string
		want string
	}{
		{"technology", "Technology"},
		{"social_sciences", "Social Sciences"},
		{"marine_biology", "Marine Biology"},
	}
	for _, tc := range cases {
		if got := AreaDisplayName(tc.area); got != tc.want {
			t.Errorf("AreaDisplayName(%q) = %q, want %q", tc.area, got, tc.want)
		}
	}
}
