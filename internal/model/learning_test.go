package model

import "testing"

func TestDifficultyLevelValid(t *testing.T) {
	for _, d := range []DifficultyLevel{Beginner, Intermediate, Advanced} {
		if !d.Valid() {
			t.Errorf("%s should be valid", d)
		}
	}
	for _, d := range []DifficultyLevel{"", "expert", "BEGINNER"} {
		if d.Valid() {
			t.Errorf("%q should be invalid", d)
		}
	}
}

func TestProfileForFallsBackToIntermediate(t *testing.T) {
	unknown := ProfileFor("expert")
	if unknown != difficultyProfiles[Intermediate] {
		t.Errorf("unknown difficulty should map to intermediate profile, got %+v", unknown)
	}
}

func TestLearningJobTerminal(t *testing.T) {
	cases := map[string]bool{
		JobStatusPending:   false,
		JobStatusRunning:   false,
		JobStatusCompleted: true,
		JobStatusFailed:    true,
	}
	for status, want := range cases {
		j := &LearningJob{Status: status}
		if j.Terminal() != want {
			t.Errorf("Terminal() for %s = %v, want %v", status, j.Terminal(), want)
		}
	}
}
