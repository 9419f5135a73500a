package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/skillshare/skillshare-go/internal/cli/output"
	"github.com/skillshare/skillshare-go/internal/client"
	"github.com/skillshare/skillshare-go/internal/core/domain"
)

// PlanCommand returns the plan subcommand group.
func PlanCommand() *cli.Command {
	return &cli.Command{
		Name:  "plan",
		Usage: "Manage learning plans",
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List learning plans",
				Flags:  pagingFlags(),
				Action: planList,
			},
			{
				Name:      "by-user",
				Usage:     "List plans by a user",
				ArgsUsage: "USER_ID",
				Flags:     pagingFlags(),
				Action:    planByUser,
			},
			{
				Name:      "get",
				Usage:     "Show a plan with its milestones",
				ArgsUsage: "PLAN_ID",
				Action:    planGet,
			},
			{
				Name:  "create",
				Usage: "Create a learning plan",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "title",
						Usage:    "Plan title",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "description",
						Aliases: []string{"d"},
						Usage:   "Plan description",
					},
					&cli.StringFlag{
						Name:  "start",
						Usage: "Start date (YYYY-MM-DD)",
					},
					&cli.StringFlag{
						Name:  "target",
						Usage: "Target completion date (YYYY-MM-DD)",
					},
					&cli.StringSliceFlag{
						Name:    "tag",
						Aliases: []string{"t"},
						Usage:   "Plan tag (repeatable)",
					},
					&cli.StringSliceFlag{
						Name:    "milestone",
						Aliases: []string{"m"},
						Usage:   "Milestone title (repeatable, in order)",
					},
				},
				Action: planCreate,
			},
			{
				Name:      "update",
				Usage:     "Update a plan you own",
				ArgsUsage: "PLAN_ID",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title", Usage: "New title"},
					&cli.StringFlag{Name: "description", Aliases: []string{"d"}, Usage: "New description"},
					&cli.StringFlag{Name: "target", Usage: "New target date (YYYY-MM-DD)"},
					&cli.StringSliceFlag{Name: "tag", Aliases: []string{"t"}, Usage: "Replacement tags (repeatable)"},
				},
				Action: planUpdate,
			},
			{
				Name:      "delete",
				Usage:     "Delete a plan you own",
				ArgsUsage: "PLAN_ID",
				Flags:     []cli.Flag{forceFlag()},
				Action:    planDelete,
			},
			{
				Name:      "complete",
				Usage:     "Mark a milestone complete",
				ArgsUsage: "PLAN_ID MILESTONE_ID",
				Action:    planComplete,
			},
			{
				Name:      "reopen",
				Usage:     "Mark a milestone incomplete again",
				ArgsUsage: "PLAN_ID MILESTONE_ID",
				Action:    planReopen,
			},
		},
	}
}

func planList(c *cli.Context) error {
	rt, err := getRuntime(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Context, requestTimeout)
	defer cancel()

	page, err := rt.plans.List(ctx, c.Int("page"), defaultPageSize(c, rt))
	if err != nil {
		return err
	}
	return renderPlanPage(c, rt, page)
}

func planByUser(c *cli.Context) error {
	userID := c.Args().First()
	if userID == "" {
		return fmt.Errorf("user ID required")
	}

	rt, err := getRuntime(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Context, requestTimeout)
	defer cancel()

	page, err := rt.plans.ByUser(ctx, userID, c.Int("page"), defaultPageSize(c, rt))
	if err != nil {
		return err
	}
	return renderPlanPage(c, rt, page)
}

func planGet(c *cli.Context) error {
	id := c.Args().First()
	if id == "" {
		return fmt.Errorf("plan ID required")
	}

	rt, err := getRuntime(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Context, requestTimeout)
	defer cancel()

	p, err := rt.plans.Get(ctx, id)
	if err != nil {
		return err
	}

	f := formatter(c, rt)
	if _, ok := f.(*output.TableFormatter); !ok {
		return f.Format(c.App.Writer, p)
	}

	fmt.Fprintf(c.App.Writer, "%s  (%d%% complete)\n", p.Title, p.ComputeProgress())
	if p.Description != "" {
		fmt.Fprintf(c.App.Writer, "%s\n", p.Description)
	}
	if len(p.Tags) > 0 {
		fmt.Fprintf(c.App.Writer, "Tags: %v\n", p.Tags)
	}
	fmt.Fprintln(c.App.Writer)

	table := &output.Table{
		Headers: []string{"MILESTONE", "TITLE", "TARGET", "DONE"},
	}
	for i := range p.Milestones {
		m := &p.Milestones[i]
		done := " "
		if m.Completed {
			done = "x"
		}
		table.AddRow(truncateID(m.ID), m.Title, formatWhen(m.TargetDateTime()), done)
	}
	return table.Render(c.App.Writer)
}

func planCreate(c *cli.Context) error {
	rt, err := getRuntime(c)
	if err != nil {
		return err
	}
	if err := requireAuth(c, rt, "/plans/new"); err != nil {
		return err
	}

	plan := domain.LearningPlan{
		Title:       c.String("title"),
		Description: c.String("description"),
		StartDate:   c.String("start"),
		TargetDate:  c.String("target"),
		Tags:        c.StringSlice("tag"),
	}
	for _, title := range c.StringSlice("milestone") {
		plan.Milestones = append(plan.Milestones, domain.Milestone{Title: title})
	}

	ctx, cancel := context.WithTimeout(c.Context, requestTimeout)
	defer cancel()

	created, err := rt.plans.Create(ctx, plan)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "Plan %s created with %d milestones.\n",
		truncateID(created.ID), len(created.Milestones))
	return nil
}

func planUpdate(c *cli.Context) error {
	id := c.Args().First()
	if id == "" {
		return fmt.Errorf("plan ID required")
	}

	rt, err := getRuntime(c)
	if err != nil {
		return err
	}
	if err := requireAuth(c, rt, "/plans/"+id+"/edit"); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Context, requestTimeout)
	defer cancel()

	current, err := rt.plans.Get(ctx, id)
	if err != nil {
		return err
	}

	updated := *current
	if c.IsSet("title") {
		updated.Title = c.String("title")
	}
	if c.IsSet("description") {
		updated.Description = c.String("description")
	}
	if c.IsSet("target") {
		updated.TargetDate = c.String("target")
	}
	if c.IsSet("tag") {
		updated.Tags = c.StringSlice("tag")
	}

	if _, err := rt.plans.Update(ctx, id, updated); err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "Plan %s updated.\n", truncateID(id))
	return nil
}

func planDelete(c *cli.Context) error {
	id := c.Args().First()
	if id == "" {
		return fmt.Errorf("plan ID required")
	}

	rt, err := getRuntime(c)
	if err != nil {
		return err
	}
	if err := requireAuth(c, rt, "/plans/"+id+"/edit"); err != nil {
		return err
	}

	if !confirm(c, fmt.Sprintf("Delete plan '%s'?", truncateID(id))) {
		fmt.Fprintln(c.App.Writer, "Cancelled.")
		return nil
	}

	ctx, cancel := context.WithTimeout(c.Context, requestTimeout)
	defer cancel()

	if err := rt.plans.Delete(ctx, id); err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "Plan %s deleted.\n", truncateID(id))
	return nil
}

func planComplete(c *cli.Context) error {
	return planSetMilestone(c, true)
}

func planReopen(c *cli.Context) error {
	return planSetMilestone(c, false)
}

func planSetMilestone(c *cli.Context, completed bool) error {
	planID := c.Args().Get(0)
	milestoneID := c.Args().Get(1)
	if planID == "" || milestoneID == "" {
		return fmt.Errorf("plan ID and milestone ID required")
	}

	rt, err := getRuntime(c)
	if err != nil {
		return err
	}
	if err := requireAuth(c, rt, "/plans/"+planID); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Context, requestTimeout)
	defer cancel()

	p, err := rt.plans.SetMilestoneCompleted(ctx, planID, milestoneID, completed)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "Plan %s is now %d%% complete.\n",
		truncateID(planID), p.ComputeProgress())
	return nil
}

func renderPlanPage(c *cli.Context, rt *runtime, page client.Page[domain.LearningPlan]) error {
	f := formatter(c, rt)
	if _, ok := f.(*output.TableFormatter); !ok {
		return f.Format(c.App.Writer, page.Items)
	}

	table := &output.Table{
		Headers: []string{"ID", "TITLE", "OWNER", "MILESTONES", "PROGRESS", "TARGET"},
	}
	for i := range page.Items {
		p := &page.Items[i]
		owner := "-"
		if p.Owner != nil {
			owner = p.Owner.DisplayName()
		}
		table.AddRow(
			truncateID(p.ID),
			p.Title,
			owner,
			fmt.Sprintf("%d/%d", p.CompletedMilestones(), len(p.Milestones)),
			fmt.Sprintf("%d%%", p.ComputeProgress()),
			orDash(p.TargetDate),
		)
	}
	if err := f.Format(c.App.Writer, table); err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "\nPage %d of %d (%d total)\n",
		page.Number+1, page.TotalPages, page.TotalElements)
	return nil
}
