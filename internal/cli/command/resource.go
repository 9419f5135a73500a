package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/skillshare/skillshare-go/internal/cli/output"
	"github.com/skillshare/skillshare-go/internal/client"
	"github.com/skillshare/skillshare-go/internal/core/domain"
	"github.com/skillshare/skillshare-go/internal/core/form"
	"github.com/skillshare/skillshare-go/internal/core/validate"
)

// ResourceCommand returns the resource subcommand group.
func ResourceCommand() *cli.Command {
	return &cli.Command{
		Name:    "resource",
		Aliases: []string{"res"},
		Usage:   "Browse and publish learning resources",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List resources (cached pages serve when offline)",
				Flags: append(pagingFlags(),
					&cli.StringFlag{
						Name:    "category",
						Aliases: []string{"C"},
						Usage:   "Filter by skill category",
					},
					&cli.StringFlag{
						Name:    "type",
						Aliases: []string{"t"},
						Usage:   "Filter by type (VIDEO, ARTICLE, COURSE, BOOK, PODCAST, OTHER)",
					},
				),
				Action: resourceList,
			},
			{
				Name:      "search",
				Usage:     "Search resources by keyword",
				ArgsUsage: "KEYWORD",
				Flags:     pagingFlags(),
				Action:    resourceSearch,
			},
			{
				Name:      "get",
				Usage:     "Show a resource",
				ArgsUsage: "RESOURCE_ID",
				Action:    resourceGet,
			},
			{
				Name:  "create",
				Usage: "Publish a resource",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "title",
						Usage:    "Resource title",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "url",
						Usage:    "Resource URL",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "description",
						Aliases: []string{"d"},
						Usage:   "Resource description",
					},
					&cli.StringFlag{
						Name:    "category",
						Aliases: []string{"C"},
						Usage:   "Skill category",
					},
					&cli.StringFlag{
						Name:    "type",
						Aliases: []string{"t"},
						Value:   string(domain.ResourceOther),
						Usage:   "Resource type",
					},
				},
				Action: resourceCreate,
			},
			{
				Name:      "update",
				Usage:     "Update a resource you own",
				ArgsUsage: "RESOURCE_ID",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title", Usage: "New title"},
					&cli.StringFlag{Name: "url", Usage: "New URL"},
					&cli.StringFlag{Name: "description", Aliases: []string{"d"}, Usage: "New description"},
					&cli.StringFlag{Name: "category", Aliases: []string{"C"}, Usage: "New skill category"},
					&cli.StringFlag{Name: "type", Aliases: []string{"t"}, Usage: "New resource type"},
				},
				Action: resourceUpdate,
			},
			{
				Name:      "delete",
				Usage:     "Delete a resource you own",
				ArgsUsage: "RESOURCE_ID",
				Flags:     []cli.Flag{forceFlag()},
				Action:    resourceDelete,
			},
			{
				Name:      "like",
				Usage:     "Like a resource",
				ArgsUsage: "RESOURCE_ID",
				Action:    resourceLike,
			},
		},
	}
}

func resourceList(c *cli.Context) error {
	rt, err := getRuntime(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Context, requestTimeout)
	defer cancel()

	page, err := rt.resources.List(ctx, client.ListQuery{
		Page:     c.Int("page"),
		Size:     defaultPageSize(c, rt),
		Category: c.String("category"),
		Type:     domain.ResourceType(strings.ToUpper(c.String("type"))),
	})
	if err != nil {
		return err
	}
	return renderResourcePage(c, rt, page)
}

func resourceSearch(c *cli.Context) error {
	keyword := c.Args().First()
	if keyword == "" {
		return fmt.Errorf("keyword required")
	}

	rt, err := getRuntime(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Context, requestTimeout)
	defer cancel()

	page, err := rt.resources.Search(ctx, keyword, c.Int("page"), defaultPageSize(c, rt))
	if err != nil {
		return err
	}
	return renderResourcePage(c, rt, page)
}

func resourceGet(c *cli.Context) error {
	id := c.Args().First()
	if id == "" {
		return fmt.Errorf("resource ID required")
	}

	rt, err := getRuntime(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Context, requestTimeout)
	defer cancel()

	r, err := rt.resources.Get(ctx, id)
	if err != nil {
		return err
	}
	return formatter(c, rt).Format(c.App.Writer, r)
}

func resourceCreate(c *cli.Context) error {
	rt, err := getRuntime(c)
	if err != nil {
		return err
	}
	if err := requireAuth(c, rt, "/resources/new"); err != nil {
		return err
	}

	// Same rules as the publish form: the request never leaves the
	// machine with a blank title or a malformed URL.
	f := form.New(form.Values{
		"title": c.String("title"),
		"url":   c.String("url"),
	}, form.Static(validate.Schema{
		"title": {validate.Required()},
		"url":   {validate.Required(), validate.URL()},
	}))
	if err := validateInput(f, "title", "url"); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Context, requestTimeout)
	defer cancel()

	created, err := rt.resources.Create(ctx, domain.Resource{
		Title:         f.Value("title"),
		URL:           f.Value("url"),
		Description:   c.String("description"),
		SkillCategory: c.String("category"),
		ResourceType:  domain.ResourceType(strings.ToUpper(c.String("type"))),
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "Resource %s published.\n", truncateID(created.ID))
	return nil
}

func resourceUpdate(c *cli.Context) error {
	id := c.Args().First()
	if id == "" {
		return fmt.Errorf("resource ID required")
	}

	rt, err := getRuntime(c)
	if err != nil {
		return err
	}
	if err := requireAuth(c, rt, "/resources/"+id+"/edit"); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Context, requestTimeout)
	defer cancel()

	current, err := rt.resources.Get(ctx, id)
	if err != nil {
		return err
	}

	updated := *current
	if c.IsSet("title") {
		updated.Title = c.String("title")
	}
	if c.IsSet("url") {
		updated.URL = c.String("url")
	}
	if c.IsSet("description") {
		updated.Description = c.String("description")
	}
	if c.IsSet("category") {
		updated.SkillCategory = c.String("category")
	}
	if c.IsSet("type") {
		updated.ResourceType = domain.ResourceType(strings.ToUpper(c.String("type")))
	}

	if _, err := rt.resources.Update(ctx, id, updated); err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "Resource %s updated.\n", truncateID(id))
	return nil
}

func resourceDelete(c *cli.Context) error {
	id := c.Args().First()
	if id == "" {
		return fmt.Errorf("resource ID required")
	}

	rt, err := getRuntime(c)
	if err != nil {
		return err
	}
	if err := requireAuth(c, rt, "/resources/"+id+"/edit"); err != nil {
		return err
	}

	if !confirm(c, fmt.Sprintf("Delete resource '%s'?", truncateID(id))) {
		fmt.Fprintln(c.App.Writer, "Cancelled.")
		return nil
	}

	ctx, cancel := context.WithTimeout(c.Context, requestTimeout)
	defer cancel()

	if err := rt.resources.Delete(ctx, id); err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "Resource %s deleted.\n", truncateID(id))
	return nil
}

func resourceLike(c *cli.Context) error {
	id := c.Args().First()
	if id == "" {
		return fmt.Errorf("resource ID required")
	}

	rt, err := getRuntime(c)
	if err != nil {
		return err
	}
	if err := requireAuth(c, rt, "/resources/"+id); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Context, requestTimeout)
	defer cancel()

	r, err := rt.resources.Like(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "Resource %s now has %d likes.\n", truncateID(id), r.LikeCount)
	return nil
}

func renderResourcePage(c *cli.Context, rt *runtime, page client.Page[domain.Resource]) error {
	f := formatter(c, rt)
	if _, ok := f.(*output.TableFormatter); !ok {
		return f.Format(c.App.Writer, page.Items)
	}

	table := &output.Table{
		Headers: []string{"ID", "TITLE", "TYPE", "CATEGORY", "LIKES", "OWNER"},
	}
	for i := range page.Items {
		r := &page.Items[i]
		owner := "-"
		if r.Owner != nil {
			owner = r.Owner.DisplayName()
		}
		table.AddRow(
			truncateID(r.ID),
			r.Title,
			string(r.ResourceType),
			orDash(r.SkillCategory),
			fmt.Sprintf("%d", r.LikeCount),
			owner,
		)
	}
	if err := f.Format(c.App.Writer, table); err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "\nPage %d of %d (%d total)\n",
		page.Number+1, page.TotalPages, page.TotalElements)
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func pagingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "page",
			Aliases: []string{"p"},
			Value:   0,
			Usage:   "Page number (zero based)",
		},
		&cli.IntFlag{
			Name:  "size",
			Usage: "Page size",
		},
	}
}

func forceFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:    "force",
		Aliases: []string{"f"},
		Usage:   "Skip confirmation",
	}
}
