package recommender

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/rumbo-app/orientation-backend/internal/types"
)

func verifiedTrajectory(title string) *types.Trajectory {
	return &types.Trajectory{
		ID:         uuid.New(),
		Title:      title,
		IsVerified: true,
	}
}

func TestMatchReasonPriority(t *testing.T) {
	cases := []struct {
		name       string
		profile    *types.Profile
		trajectory *types.Trajectory
		want       string
	}{
		{
			name:    "worked_while_studying_wins",
			profile: &types.Profile{WorksWhileStudying: types.WorkYes, Province: "Córdoba"},
			trajectory: &types.Trajectory{
				IsVerified: true,
				Context:    datatypes.JSONMap{"worked_while_studying": true, "province": "Córdoba"},
				Tags:       datatypes.NewJSONSlice([]string{"first_generation"}),
			},
			want: "Also worked while studying",
		},
		{
			name:    "maybe_does_not_trigger_worked_rule",
			profile: &types.Profile{WorksWhileStudying: types.WorkMaybe, Province: "Córdoba"},
			trajectory: &types.Trajectory{
				IsVerified: true,
				Context:    datatypes.JSONMap{"worked_while_studying": true, "province": "Córdoba"},
			},
			want: "Studied in Córdoba",
		},
		{
			name:    "province_match",
			profile: &types.Profile{Province: "Mendoza"},
			trajectory: &types.Trajectory{
				IsVerified: true,
				Context:    datatypes.JSONMap{"province": "Mendoza"},
			},
			want: "Studied in Mendoza",
		},
		{
			name:    "first_generation_tag",
			profile: &types.Profile{},
			trajectory: &types.Trajectory{
				IsVerified: true,
				Tags:       datatypes.NewJSONSlice([]string{"first_generation", "career_change"}),
			},
			want: "First in their family to attend higher education",
		},
		{
			name:    "career_change_tag",
			profile: &types.Profile{},
			trajectory: &types.Trajectory{
				IsVerified: true,
				Tags:       datatypes.NewJSONSlice([]string{"career_change"}),
			},
			want: "Changed program along the way",
		},
		{
			name:    "remote_learning_needs_remote_preference",
			profile: &types.Profile{PreferredModality: types.ModalityRemote},
			trajectory: &types.Trajectory{
				IsVerified: true,
				Tags:       datatypes.NewJSONSlice([]string{"remote_learning"}),
			},
			want: "Studied remotely",
		},
		{
			name:    "remote_learning_without_preference_falls_through",
			profile: &types.Profile{PreferredModality: types.ModalityInPerson},
			trajectory: &types.Trajectory{
				IsVerified: true,
				Tags:       datatypes.NewJSONSlice([]string{"remote_learning"}),
			},
			want: "Chose this program in a similar situation",
		},
		{
			name:       "generic_fallback",
			profile:    &types.Profile{},
			trajectory: &types.Trajectory{IsVerified: true},
			want:       "Chose this program in a similar situation",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := matchReason(tc.profile, tc.trajectory)
			if got != tc.want {
				t.Fatalf("matchReason = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestMatchTrajectoriesCap(t *testing.T) {
	profile := &types.Profile{}
	trajectories := []*types.Trajectory{
		verifiedTrajectory("first"),
		verifiedTrajectory("second"),
		verifiedTrajectory("third"),
		verifiedTrajectory("fourth"),
		verifiedTrajectory("fifth"),
	}

	matched := MatchTrajectories(profile, trajectories)
	if len(matched) != MaxMatchedTrajectories {
		t.Fatalf("got %d matches, want %d", len(matched), MaxMatchedTrajectories)
	}
	for i, want := range []string{"first", "second", "third"} {
		if matched[i].Title != want {
			t.Errorf("match %d = %q, want %q", i, matched[i].Title, want)
		}
	}
}

func TestMatchTrajectoriesSkipsUnverified(t *testing.T) {
	profile := &types.Profile{}
	unverified := &types.Trajectory{ID: uuid.New(), Title: "hidden"}
	trajectories := []*types.Trajectory{unverified, verifiedTrajectory("shown")}

	matched := MatchTrajectories(profile, trajectories)
	if len(matched) != 1 {
		t.Fatalf("got %d matches, want 1", len(matched))
	}
	if matched[0].Title != "shown" {
		t.Errorf("matched %q, want the verified trajectory", matched[0].Title)
	}
}

func TestMatchTrajectoriesEveryEntryGetsAReason(t *testing.T) {
	profile := &types.Profile{}
	matched := MatchTrajectories(profile, []*types.Trajectory{
		verifiedTrajectory("a"),
		verifiedTrajectory("b"),
	})
	for _, entry := range matched {
		if entry.MatchReason == "" {
			t.Errorf("trajectory %q has no match reason", entry.Title)
		}
	}
}
