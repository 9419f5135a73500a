package domain

import (
	"testing"
	"time"
)

func TestLearningPlan_ComputeProgress(t *testing.T) {
	tests := []struct {
		name string
		plan LearningPlan
		want int
	}{
		{
			"no milestones keeps explicit progress",
			LearningPlan{Progress: 40},
			40,
		},
		{
			"half complete",
			LearningPlan{Milestones: []Milestone{{Completed: true}, {Completed: false}}},
			50,
		},
		{
			"all complete",
			LearningPlan{Milestones: []Milestone{{Completed: true}, {Completed: true}}},
			100,
		},
		{
			"none complete",
			LearningPlan{Milestones: []Milestone{{}, {}, {}}},
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.plan.ComputeProgress(); got != tt.want {
				t.Errorf("ComputeProgress() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLearningPlan_FindMilestone(t *testing.T) {
	plan := LearningPlan{Milestones: []Milestone{
		{ID: "m1", Title: "Basics"},
		{ID: "m2", Title: "Advanced"},
	}}

	if m := plan.FindMilestone("m2"); m == nil || m.Title != "Advanced" {
		t.Errorf("FindMilestone(m2) = %+v", m)
	}
	if m := plan.FindMilestone("m9"); m != nil {
		t.Errorf("FindMilestone(m9) should be nil, got %+v", m)
	}
}

func TestLearningPlan_Validate(t *testing.T) {
	valid := LearningPlan{Title: "Learn Go", Progress: 0}

	t.Run("valid", func(t *testing.T) {
		if err := valid.Validate(); err != nil {
			t.Errorf("Validate() = %v", err)
		}
	})

	t.Run("missing title", func(t *testing.T) {
		p := valid
		p.Title = " "
		if err := p.Validate(); err == nil {
			t.Error("expected error for blank title")
		}
	})

	t.Run("progress out of range", func(t *testing.T) {
		p := valid
		p.Progress = 101
		if err := p.Validate(); err == nil {
			t.Error("expected error for progress > 100")
		}
	})

	t.Run("milestone without title", func(t *testing.T) {
		p := valid
		p.Milestones = []Milestone{{Title: ""}}
		if err := p.Validate(); err == nil {
			t.Error("expected error for untitled milestone")
		}
	})
}

func TestMilestone_TargetDateTime(t *testing.T) {
	m := Milestone{TargetDate: "2025-06-01T00:00:00"}
	got := m.TargetDateTime()
	if got.IsZero() {
		t.Fatal("TargetDateTime() should parse local date time")
	}
	if got.Year() != 2025 || got.Month() != time.June {
		t.Errorf("TargetDateTime() = %v", got)
	}
}
