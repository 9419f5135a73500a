package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/skillshare/skillshare-go/internal/cli/output"
	"github.com/skillshare/skillshare-go/internal/client"
	"github.com/skillshare/skillshare-go/internal/core/domain"
)

// UserCommand returns the user subcommand group.
func UserCommand() *cli.Command {
	return &cli.Command{
		Name:  "user",
		Usage: "Look up users and manage your profile",
		Subcommands: []*cli.Command{
			{
				Name:      "get",
				Usage:     "Show a user profile",
				ArgsUsage: "USER_ID",
				Action:    userGet,
			},
			{
				Name:      "search",
				Usage:     "Search users by name or email",
				ArgsUsage: "QUERY",
				Flags:     pagingFlags(),
				Action:    userSearch,
			},
			{
				Name:  "update",
				Usage: "Update your own profile",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "Display name"},
					&cli.StringFlag{Name: "bio", Usage: "Short bio"},
					&cli.StringFlag{Name: "location", Usage: "Location"},
					&cli.StringFlag{Name: "occupation", Usage: "Occupation"},
					&cli.StringFlag{Name: "website", Usage: "Website URL"},
				},
				Action: userUpdate,
			},
			{
				Name:      "follow",
				Usage:     "Follow a user",
				ArgsUsage: "USER_ID",
				Action:    userFollow,
			},
			{
				Name:      "unfollow",
				Usage:     "Unfollow a user",
				ArgsUsage: "USER_ID",
				Action:    userUnfollow,
			},
			{
				Name:      "followers",
				Usage:     "List a user's followers",
				ArgsUsage: "USER_ID",
				Flags:     pagingFlags(),
				Action:    userFollowers,
			},
			{
				Name:      "following",
				Usage:     "List who a user follows",
				ArgsUsage: "USER_ID",
				Flags:     pagingFlags(),
				Action:    userFollowing,
			},
		},
	}
}

func userGet(c *cli.Context) error {
	id := c.Args().First()
	if id == "" {
		return fmt.Errorf("user ID required")
	}

	rt, err := getRuntime(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Context, requestTimeout)
	defer cancel()

	u, err := rt.users.Get(ctx, id)
	if err != nil {
		return err
	}
	return formatter(c, rt).Format(c.App.Writer, u)
}

func userSearch(c *cli.Context) error {
	query := c.Args().First()
	if query == "" {
		return fmt.Errorf("query required")
	}

	rt, err := getRuntime(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Context, requestTimeout)
	defer cancel()

	page, err := rt.users.Search(ctx, query, c.Int("page"), defaultPageSize(c, rt))
	if err != nil {
		return err
	}
	return renderUserPage(c, rt, page)
}

func userUpdate(c *cli.Context) error {
	rt, err := getRuntime(c)
	if err != nil {
		return err
	}
	if err := requireAuth(c, rt, "/profile/edit"); err != nil {
		return err
	}

	snap := rt.session.Current()
	profile := *snap.User
	if c.IsSet("name") {
		profile.Name = c.String("name")
	}
	if c.IsSet("bio") {
		profile.Bio = c.String("bio")
	}
	if c.IsSet("location") {
		profile.Location = c.String("location")
	}
	if c.IsSet("occupation") {
		profile.Occupation = c.String("occupation")
	}
	if c.IsSet("website") {
		profile.Website = c.String("website")
	}

	if err := profile.Validate(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Context, requestTimeout)
	defer cancel()

	updated, err := rt.users.UpdateProfile(ctx, profile)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "Profile updated for %s.\n", updated.DisplayName())
	return nil
}

func userFollow(c *cli.Context) error {
	return setFollowing(c, true)
}

func userUnfollow(c *cli.Context) error {
	return setFollowing(c, false)
}

func setFollowing(c *cli.Context, follow bool) error {
	id := c.Args().First()
	if id == "" {
		return fmt.Errorf("user ID required")
	}

	rt, err := getRuntime(c)
	if err != nil {
		return err
	}
	if err := requireAuth(c, rt, "/users/"+id); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Context, requestTimeout)
	defer cancel()

	me := rt.session.Current().User.ID
	if follow {
		if _, err := rt.users.Follow(ctx, id, me); err != nil {
			return err
		}
		fmt.Fprintf(c.App.Writer, "Now following %s.\n", truncateID(id))
		return nil
	}

	if _, err := rt.users.Unfollow(ctx, id, me); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "Unfollowed %s.\n", truncateID(id))
	return nil
}

func userFollowers(c *cli.Context) error {
	return listRelation(c, "followers")
}

func userFollowing(c *cli.Context) error {
	return listRelation(c, "following")
}

func listRelation(c *cli.Context, relation string) error {
	id := c.Args().First()
	if id == "" {
		return fmt.Errorf("user ID required")
	}

	rt, err := getRuntime(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Context, requestTimeout)
	defer cancel()

	var page client.Page[domain.User]
	if relation == "followers" {
		page, err = rt.users.Followers(ctx, id, c.Int("page"), defaultPageSize(c, rt))
	} else {
		page, err = rt.users.Following(ctx, id, c.Int("page"), defaultPageSize(c, rt))
	}
	if err != nil {
		return err
	}
	return renderUserPage(c, rt, page)
}

func renderUserPage(c *cli.Context, rt *runtime, page client.Page[domain.User]) error {
	f := formatter(c, rt)
	if _, ok := f.(*output.TableFormatter); !ok {
		return f.Format(c.App.Writer, page.Items)
	}

	table := &output.Table{
		Headers: []string{"ID", "NAME", "EMAIL", "FOLLOWERS", "FOLLOWING"},
	}
	for i := range page.Items {
		u := &page.Items[i]
		table.AddRow(
			truncateID(u.ID),
			u.DisplayName(),
			u.Email,
			fmt.Sprintf("%d", u.FollowersCount),
			fmt.Sprintf("%d", u.FollowingCount),
		)
	}
	if err := f.Format(c.App.Writer, table); err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "\nPage %d of %d (%d total)\n",
		page.Number+1, page.TotalPages, page.TotalElements)
	return nil
}
