package command

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	cliconfig "github.com/skillshare/skillshare-go/internal/cli/config"
	"github.com/skillshare/skillshare-go/internal/cli/output"
	"github.com/skillshare/skillshare-go/internal/core/domain"
	"github.com/skillshare/skillshare-go/internal/infra/confloader"
	"github.com/skillshare/skillshare-go/internal/infra/shutdown"
	"github.com/skillshare/skillshare-go/internal/telemetry/logger"
)

// NotificationCommand returns the notification subcommand group.
func NotificationCommand() *cli.Command {
	return &cli.Command{
		Name:    "notification",
		Aliases: []string{"notif"},
		Usage:   "Read and manage notifications",
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List notifications",
				Flags:  pagingFlags(),
				Action: notificationList,
			},
			{
				Name:   "unread",
				Usage:  "Show the unread notification count",
				Action: notificationUnread,
			},
			{
				Name:      "read",
				Usage:     "Mark a notification read",
				ArgsUsage: "NOTIFICATION_ID",
				Action:    notificationRead,
			},
			{
				Name:   "read-all",
				Usage:  "Mark all notifications read",
				Action: notificationReadAll,
			},
			{
				Name:   "watch",
				Usage:  "Poll for new notifications until interrupted",
				Action: notificationWatch,
			},
		},
	}
}

func notificationList(c *cli.Context) error {
	rt, err := getRuntime(c)
	if err != nil {
		return err
	}
	if err := requireAuth(c, rt, "/notifications"); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Context, requestTimeout)
	defer cancel()

	page, err := rt.notifications.List(ctx, c.Int("page"), defaultPageSize(c, rt))
	if err != nil {
		return err
	}

	f := formatter(c, rt)
	if _, ok := f.(*output.TableFormatter); !ok {
		return f.Format(c.App.Writer, page.Items)
	}

	table := &output.Table{
		Headers: []string{"ID", "TYPE", "MESSAGE", "FROM", "WHEN", "READ"},
	}
	for i := range page.Items {
		n := &page.Items[i]
		table.AddRow(
			truncateID(n.ID),
			string(n.Type),
			n.Message,
			notificationActor(n),
			formatWhen(n.CreatedAtTime()),
			readMark(n.Read),
		)
	}
	return f.Format(c.App.Writer, table)
}

func notificationUnread(c *cli.Context) error {
	rt, err := getRuntime(c)
	if err != nil {
		return err
	}
	if err := requireAuth(c, rt, "/notifications"); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Context, requestTimeout)
	defer cancel()

	count, err := rt.notifications.UnreadCount(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "%d unread\n", count)
	return nil
}

func notificationRead(c *cli.Context) error {
	id := c.Args().First()
	if id == "" {
		return fmt.Errorf("notification ID required")
	}

	rt, err := getRuntime(c)
	if err != nil {
		return err
	}
	if err := requireAuth(c, rt, "/notifications"); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Context, requestTimeout)
	defer cancel()

	if err := rt.notifications.MarkRead(ctx, id); err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "Notification %s marked read.\n", truncateID(id))
	return nil
}

func notificationReadAll(c *cli.Context) error {
	rt, err := getRuntime(c)
	if err != nil {
		return err
	}
	if err := requireAuth(c, rt, "/notifications"); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Context, requestTimeout)
	defer cancel()

	if err := rt.notifications.MarkAllRead(ctx); err != nil {
		return err
	}

	fmt.Fprintln(c.App.Writer, "All notifications marked read.")
	return nil
}

// notificationWatch polls the notification feed and prints new entries
// as they arrive. Runs until Ctrl-C.
func notificationWatch(c *cli.Context) error {
	rt, err := getRuntime(c)
	if err != nil {
		return err
	}
	if err := requireAuth(c, rt, "/notifications"); err != nil {
		return err
	}

	handler := shutdown.NewHandler(5 * time.Second)
	ctx, cancel := context.WithCancel(c.Context)
	defer cancel()
	handler.OnShutdown(func(context.Context) error {
		cancel()
		return nil
	})

	// Long-running sessions pick up log-level changes without a restart.
	if cw := watchLogLevel(c, rt); cw != nil {
		defer cw.Stop()
	}

	fmt.Fprintln(c.App.Writer, "Watching for notifications (Ctrl-C to stop)...")

	watchErr := make(chan error, 1)
	go func() {
		watchErr <- rt.notifications.Watch(ctx, func(n domain.Notification) {
			fmt.Fprintf(c.App.Writer, "[%s] %s %s: %s\n",
				formatWhen(n.CreatedAtTime()), string(n.Type), notificationActor(&n), n.Message)
		})
	}()

	go func() {
		<-watchErr
		handler.Trigger()
	}()

	return handler.Wait()
}

// watchLogLevel re-reads the config file on change and applies the
// logging level. Returns nil when the watch cannot be set up; watch
// mode still works without it.
func watchLogLevel(c *cli.Context, rt *runtime) *confloader.Watcher {
	path := c.String("config")
	if path == "" {
		path = cliconfig.DefaultConfigPath()
	}

	cw, err := confloader.NewWatcher(confloader.WithWatcherLogger(rt.log))
	if err != nil {
		rt.log.Debug("config watcher unavailable", "error", err)
		return nil
	}
	if err := cw.Watch(path); err != nil {
		cw.Stop()
		return nil
	}
	cw.OnChange(func(string) {
		cfg, err := cliconfig.Load(path, nil)
		if err != nil {
			rt.log.Warn("config reload failed", "error", err)
			return
		}
		logger.SetLevel(cfg.Logging.Level)
	})
	cw.StartAsync()
	return cw
}

func notificationActor(n *domain.Notification) string {
	if n.Actor == nil {
		return "-"
	}
	return n.Actor.DisplayName()
}

func readMark(read bool) string {
	if read {
		return "x"
	}
	return " "
}
