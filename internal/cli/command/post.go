package command

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/skillshare/skillshare-go/internal/cli/output"
	"github.com/skillshare/skillshare-go/internal/client"
	"github.com/skillshare/skillshare-go/internal/core/domain"
)

// PostCommand returns the post subcommand group.
func PostCommand() *cli.Command {
	return &cli.Command{
		Name:  "post",
		Usage: "Read and write feed posts",
		Subcommands: []*cli.Command{
			{
				Name:   "feed",
				Usage:  "Show the post feed",
				Flags:  pagingFlags(),
				Action: postFeed,
			},
			{
				Name:      "search",
				Usage:     "Search posts by keyword",
				ArgsUsage: "KEYWORD",
				Flags:     pagingFlags(),
				Action:    postSearch,
			},
			{
				Name:      "by-user",
				Usage:     "List posts by a user",
				ArgsUsage: "USER_ID",
				Flags:     pagingFlags(),
				Action:    postByUser,
			},
			{
				Name:   "commitments",
				Usage:  "List posts with open time commitments",
				Flags:  pagingFlags(),
				Action: postCommitments,
			},
			{
				Name:   "committed",
				Usage:  "List posts you have committed to",
				Flags:  pagingFlags(),
				Action: postCommitted,
			},
			{
				Name:      "get",
				Usage:     "Show a post with its comments",
				ArgsUsage: "POST_ID",
				Action:    postGet,
			},
			{
				Name:  "create",
				Usage: "Publish a post",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "title",
						Usage:    "Post title",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "content",
						Usage:    "Post body",
						Required: true,
					},
					&cli.StringSliceFlag{
						Name:  "image",
						Usage: "Image URL (repeatable, max 4)",
					},
					&cli.StringFlag{
						Name:  "video",
						Usage: "Video URL",
					},
					&cli.IntFlag{
						Name:  "goal",
						Usage: "Commitment goal (number of participants)",
					},
					&cli.TimestampFlag{
						Name:   "deadline",
						Usage:  "Commitment deadline (RFC 3339)",
						Layout: time.RFC3339,
					},
				},
				Action: postCreate,
			},
			{
				Name:      "update",
				Usage:     "Edit a post you own",
				ArgsUsage: "POST_ID",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "title",
						Usage: "New title",
					},
					&cli.StringFlag{
						Name:  "content",
						Usage: "New body",
					},
					&cli.StringFlag{
						Name:  "video",
						Usage: "New video URL",
					},
					&cli.IntFlag{
						Name:  "goal",
						Usage: "New commitment goal",
					},
				},
				Action: postUpdate,
			},
			{
				Name:      "delete",
				Usage:     "Delete a post you own",
				ArgsUsage: "POST_ID",
				Flags:     []cli.Flag{forceFlag()},
				Action:    postDelete,
			},
			{
				Name:      "like",
				Usage:     "Like a post",
				ArgsUsage: "POST_ID",
				Action:    postLike,
			},
			{
				Name:      "unlike",
				Usage:     "Remove a like from a post",
				ArgsUsage: "POST_ID",
				Action:    postUnlike,
			},
			{
				Name:      "commit",
				Usage:     "Commit to a post's time commitment",
				ArgsUsage: "POST_ID",
				Action:    postCommit,
			},
			{
				Name:      "withdraw",
				Usage:     "Withdraw a commitment",
				ArgsUsage: "POST_ID",
				Action:    postWithdraw,
			},
			{
				Name:      "comment",
				Usage:     "Comment on a post",
				ArgsUsage: "POST_ID CONTENT",
				Action:    postComment,
			},
		},
	}
}

func postFeed(c *cli.Context) error {
	rt, err := getRuntime(c)
	if err != nil {
		return err
	}
	// The feed is personalized, so it needs the signed-in user's ID.
	if err := requireAuth(c, rt, "/feed"); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Context, requestTimeout)
	defer cancel()

	page, err := rt.posts.Feed(ctx, rt.session.Current().User.ID, c.Int("page"), defaultPageSize(c, rt))
	if err != nil {
		return err
	}
	return renderPostPage(c, rt, page)
}

func postSearch(c *cli.Context) error {
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

	page, err := rt.posts.Search(ctx, keyword, c.Int("page"), defaultPageSize(c, rt))
	if err != nil {
		return err
	}
	return renderPostPage(c, rt, page)
}

func postByUser(c *cli.Context) error {
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

	page, err := rt.posts.ByUser(ctx, userID, c.Int("page"), defaultPageSize(c, rt))
	if err != nil {
		return err
	}
	return renderPostPage(c, rt, page)
}

func postCommitments(c *cli.Context) error {
	rt, err := getRuntime(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Context, requestTimeout)
	defer cancel()

	page, err := rt.posts.OpenCommitments(ctx, c.Int("page"), defaultPageSize(c, rt))
	if err != nil {
		return err
	}
	return renderPostPage(c, rt, page)
}

func postGet(c *cli.Context) error {
	id := c.Args().First()
	if id == "" {
		return fmt.Errorf("post ID required")
	}

	rt, err := getRuntime(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Context, requestTimeout)
	defer cancel()

	p, err := rt.posts.Get(ctx, id)
	if err != nil {
		return err
	}

	f := formatter(c, rt)
	if _, ok := f.(*output.TableFormatter); !ok {
		return f.Format(c.App.Writer, p)
	}

	author := "-"
	if p.Author != nil {
		author = p.Author.DisplayName()
	}
	fmt.Fprintf(c.App.Writer, "%s\n", p.Title)
	fmt.Fprintf(c.App.Writer, "by %s, %s\n\n", author, formatWhen(p.CreatedAtTime()))
	fmt.Fprintf(c.App.Writer, "%s\n\n", p.Content)
	fmt.Fprintf(c.App.Writer, "Likes: %d", p.LikeCount)
	if p.CommitmentGoal > 0 {
		status := "open"
		if !p.CommitmentOpen() {
			status = "closed"
		}
		fmt.Fprintf(c.App.Writer, "  Commitments: %d/%d (%s)", p.CommitCount, p.CommitmentGoal, status)
	}
	fmt.Fprintln(c.App.Writer)

	if len(p.Comments) > 0 {
		fmt.Fprintf(c.App.Writer, "\nComments:\n")
		for i := range p.Comments {
			cm := &p.Comments[i]
			who := "-"
			if cm.Author != nil {
				who = cm.Author.DisplayName()
			}
			fmt.Fprintf(c.App.Writer, "  [%s] %s: %s\n",
				formatWhen(cm.CreatedAtTime()), who, cm.Content)
		}
	}
	return nil
}

func postCreate(c *cli.Context) error {
	rt, err := getRuntime(c)
	if err != nil {
		return err
	}
	if err := requireAuth(c, rt, "/posts/new"); err != nil {
		return err
	}

	post := domain.Post{
		Title:          c.String("title"),
		Content:        c.String("content"),
		Images:         c.StringSlice("image"),
		VideoURL:       c.String("video"),
		CommitmentGoal: c.Int("goal"),
	}
	if deadline := c.Timestamp("deadline"); deadline != nil && !deadline.IsZero() {
		post.CommitmentDeadline = deadline.Format(time.RFC3339)
	}

	ctx, cancel := context.WithTimeout(c.Context, requestTimeout)
	defer cancel()

	created, err := rt.posts.Create(ctx, post)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "Post %s published.\n", truncateID(created.ID))
	return nil
}

func postCommitted(c *cli.Context) error {
	rt, err := getRuntime(c)
	if err != nil {
		return err
	}
	if err := requireAuth(c, rt, "/commitments"); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Context, requestTimeout)
	defer cancel()

	page, err := rt.posts.Committed(ctx, c.Int("page"), defaultPageSize(c, rt))
	if err != nil {
		return err
	}
	return renderPostPage(c, rt, page)
}

func postUpdate(c *cli.Context) error {
	id := c.Args().First()
	if id == "" {
		return fmt.Errorf("post ID required")
	}

	rt, err := getRuntime(c)
	if err != nil {
		return err
	}
	if err := requireAuth(c, rt, "/posts/"+id+"/edit"); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Context, requestTimeout)
	defer cancel()

	current, err := rt.posts.Get(ctx, id)
	if err != nil {
		return err
	}

	updated := *current
	if c.IsSet("title") {
		updated.Title = c.String("title")
	}
	if c.IsSet("content") {
		updated.Content = c.String("content")
	}
	if c.IsSet("video") {
		updated.VideoURL = c.String("video")
	}
	if c.IsSet("goal") {
		updated.CommitmentGoal = c.Int("goal")
	}

	if _, err := rt.posts.Update(ctx, id, updated); err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "Post %s updated.\n", truncateID(id))
	return nil
}

func postDelete(c *cli.Context) error {
	id := c.Args().First()
	if id == "" {
		return fmt.Errorf("post ID required")
	}

	rt, err := getRuntime(c)
	if err != nil {
		return err
	}
	if err := requireAuth(c, rt, "/posts/"+id+"/edit"); err != nil {
		return err
	}

	if !confirm(c, fmt.Sprintf("Delete post '%s'?", truncateID(id))) {
		fmt.Fprintln(c.App.Writer, "Cancelled.")
		return nil
	}

	ctx, cancel := context.WithTimeout(c.Context, requestTimeout)
	defer cancel()

	if err := rt.posts.Delete(ctx, id); err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "Post %s deleted.\n", truncateID(id))
	return nil
}

func postLike(c *cli.Context) error {
	return postToggle(c, "like", func(ctx context.Context, rt *runtime, id string) (*domain.Post, error) {
		if err := rt.posts.Like(ctx, id, rt.session.Current().User.ID); err != nil {
			return nil, err
		}
		// The like endpoint returns no body; refetch for the counts.
		return rt.posts.Get(ctx, id)
	})
}

func postUnlike(c *cli.Context) error {
	return postToggle(c, "unlike", func(ctx context.Context, rt *runtime, id string) (*domain.Post, error) {
		if err := rt.posts.Unlike(ctx, id, rt.session.Current().User.ID); err != nil {
			return nil, err
		}
		return rt.posts.Get(ctx, id)
	})
}

func postCommit(c *cli.Context) error {
	return postToggle(c, "commit to", func(ctx context.Context, rt *runtime, id string) (*domain.Post, error) {
		return rt.posts.Commit(ctx, id)
	})
}

func postWithdraw(c *cli.Context) error {
	return postToggle(c, "withdraw from", func(ctx context.Context, rt *runtime, id string) (*domain.Post, error) {
		return rt.posts.WithdrawCommitment(ctx, id)
	})
}

func postToggle(c *cli.Context, verb string, fn func(context.Context, *runtime, string) (*domain.Post, error)) error {
	id := c.Args().First()
	if id == "" {
		return fmt.Errorf("post ID required")
	}

	rt, err := getRuntime(c)
	if err != nil {
		return err
	}
	if err := requireAuth(c, rt, "/posts/"+id); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Context, requestTimeout)
	defer cancel()

	p, err := fn(ctx, rt, id)
	if err != nil {
		return fmt.Errorf("%s post: %w", verb, err)
	}

	fmt.Fprintf(c.App.Writer, "Post %s: %d likes, %d commitments.\n",
		truncateID(id), p.LikeCount, p.CommitCount)
	return nil
}

func postComment(c *cli.Context) error {
	id := c.Args().First()
	content := strings.Join(c.Args().Tail(), " ")
	if id == "" || content == "" {
		return fmt.Errorf("post ID and comment content required")
	}

	rt, err := getRuntime(c)
	if err != nil {
		return err
	}
	if err := requireAuth(c, rt, "/posts/"+id); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Context, requestTimeout)
	defer cancel()

	p, err := rt.posts.AddComment(ctx, id, content)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "Comment added. Post %s has %d comments.\n",
		truncateID(id), len(p.Comments))
	return nil
}

func renderPostPage(c *cli.Context, rt *runtime, page client.Page[domain.Post]) error {
	f := formatter(c, rt)
	if _, ok := f.(*output.TableFormatter); !ok {
		return f.Format(c.App.Writer, page.Items)
	}

	table := &output.Table{
		Headers: []string{"ID", "TITLE", "AUTHOR", "LIKES", "COMMITS", "POSTED"},
	}
	for i := range page.Items {
		p := &page.Items[i]
		author := "-"
		if p.Author != nil {
			author = p.Author.DisplayName()
		}
		commits := "-"
		if p.CommitmentGoal > 0 {
			commits = fmt.Sprintf("%d/%d", p.CommitCount, p.CommitmentGoal)
		}
		table.AddRow(
			truncateID(p.ID),
			p.Title,
			author,
			fmt.Sprintf("%d", p.LikeCount),
			commits,
			formatWhen(p.CreatedAtTime()),
		)
	}
	if err := f.Format(c.App.Writer, table); err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "\nPage %d of %d (%d total)\n",
		page.Number+1, page.TotalPages, page.TotalElements)
	return nil
}

// formatWhen renders a timestamp for table cells.
func formatWhen(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02 15:04")
}
