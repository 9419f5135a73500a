// Package client provides the SkillShare API client.
package client

import (
	"context"

	"github.com/skillshare/skillshare-go/internal/core/domain"
)

const plansPath = "/api/plans"

// PlanClient wraps the learning-plan endpoints.
type PlanClient struct {
	t *Transport
}

// NewPlanClient creates a plan client.
func NewPlanClient(t *Transport) *PlanClient {
	return &PlanClient{t: t}
}

// List fetches the caller's learning plans.
func (c *PlanClient) List(ctx context.Context, page, size int) (Page[domain.LearningPlan], error) {
	body, err := c.t.GetRaw(ctx, plansPath, pageQuery(page, size), true)
	if err != nil {
		return Page[domain.LearningPlan]{}, err
	}
	return DecodePage[domain.LearningPlan](body)
}

// ByUser fetches another user's public plans.
func (c *PlanClient) ByUser(ctx context.Context, userID string, page, size int) (Page[domain.LearningPlan], error) {
	body, err := c.t.GetRaw(ctx, "/api/users/"+userID+"/plans", pageQuery(page, size), true)
	if err != nil {
		return Page[domain.LearningPlan]{}, err
	}
	return DecodePage[domain.LearningPlan](body)
}

// Get fetches a single plan by ID.
func (c *PlanClient) Get(ctx context.Context, id string) (*domain.LearningPlan, error) {
	var p domain.LearningPlan
	if err := c.t.Get(ctx, plansPath+"/"+id, nil, true, &p); err != nil {
		return nil, mapNotFound(err, domain.ErrPlanNotFound)
	}
	return &p, nil
}

// Create creates a learning plan. The plan is validated locally before
// any network call.
func (c *PlanClient) Create(ctx context.Context, p domain.LearningPlan) (*domain.LearningPlan, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var created domain.LearningPlan
	if err := c.t.Post(ctx, plansPath, p, true, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update modifies an owned plan.
func (c *PlanClient) Update(ctx context.Context, id string, p domain.LearningPlan) (*domain.LearningPlan, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var updated domain.LearningPlan
	if err := c.t.Put(ctx, plansPath+"/"+id, p, true, &updated); err != nil {
		return nil, mapNotFound(err, domain.ErrPlanNotFound)
	}
	return &updated, nil
}

// Delete removes an owned plan.
func (c *PlanClient) Delete(ctx context.Context, id string) error {
	return mapNotFound(c.t.Delete(ctx, plansPath+"/"+id, true), domain.ErrPlanNotFound)
}

// SetMilestoneCompleted marks a milestone done or not done and returns
// the plan with its recomputed progress.
func (c *PlanClient) SetMilestoneCompleted(ctx context.Context, planID, milestoneID string, completed bool) (*domain.LearningPlan, error) {
	body := map[string]bool{"completed": completed}

	var p domain.LearningPlan
	err := c.t.Put(ctx, plansPath+"/"+planID+"/milestones/"+milestoneID, body, true, &p)
	if err != nil {
		return nil, mapNotFound(err, domain.ErrMilestoneNotFound)
	}
	return &p, nil
}
