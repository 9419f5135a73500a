// Package domain defines the core domain models for the SkillShare client.
package domain

import (
	"strings"
	"time"
)

// Learning plan constraints.
const (
	MaxPlanTitleLength       = 120
	MaxPlanDescriptionLength = 2000
	MaxPlanTags              = 20
)

// Milestone is a single step inside a learning plan.
type Milestone struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	TargetDate  string `json:"targetDate,omitempty"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

// TargetDateTime parses TargetDate. Returns the zero time when absent.
func (m *Milestone) TargetDateTime() time.Time {
	return parseBackendTime(m.TargetDate)
}

// LearningPlan tracks a structured learning goal with milestones and a
// target completion date.
type LearningPlan struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Milestones  []Milestone `json:"milestones,omitempty"`
	Owner       *User       `json:"user,omitempty"`
	StartDate   string      `json:"startDate,omitempty"`
	TargetDate  string      `json:"targetDate,omitempty"`
	Tags        []string    `json:"tags,omitempty"`
	Progress    int         `json:"progress"`
	CreatedAt   string      `json:"createdAt,omitempty"`
	UpdatedAt   string      `json:"updatedAt,omitempty"`
}

// CompletedMilestones counts milestones marked complete.
func (p *LearningPlan) CompletedMilestones() int {
	n := 0
	for i := range p.Milestones {
		if p.Milestones[i].Completed {
			n++
		}
	}
	return n
}

// ComputeProgress derives the progress percentage from milestone
// completion. Plans without milestones keep their explicit progress value.
func (p *LearningPlan) ComputeProgress() int {
	if len(p.Milestones) == 0 {
		return p.Progress
	}
	return p.CompletedMilestones() * 100 / len(p.Milestones)
}

// FindMilestone returns the milestone with the given ID, or nil.
func (p *LearningPlan) FindMilestone(id string) *Milestone {
	for i := range p.Milestones {
		if p.Milestones[i].ID == id {
			return &p.Milestones[i]
		}
	}
	return nil
}

// Validate validates plan fields against backend constraints.
func (p *LearningPlan) Validate() error {
	var violations []string

	if strings.TrimSpace(p.Title) == "" {
		violations = append(violations, "title is required")
	} else if len(p.Title) > MaxPlanTitleLength {
		violations = append(violations, "title exceeds 120 characters")
	}

	if len(p.Description) > MaxPlanDescriptionLength {
		violations = append(violations, "description exceeds 2000 characters")
	}

	if len(p.Tags) > MaxPlanTags {
		violations = append(violations, "too many tags")
	}

	if p.Progress < 0 || p.Progress > 100 {
		violations = append(violations, "progress must be between 0 and 100")
	}

	for i := range p.Milestones {
		if strings.TrimSpace(p.Milestones[i].Title) == "" {
			violations = append(violations, "milestone title is required")
			break
		}
	}

	if len(violations) > 0 {
		return ErrValidation.WithDetails(strings.Join(violations, "; "))
	}
	return nil
}
