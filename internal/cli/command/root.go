package command

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	cliconfig "github.com/skillshare/skillshare-go/internal/cli/config"
	"github.com/skillshare/skillshare-go/internal/cli/output"
	"github.com/skillshare/skillshare-go/internal/client"
	"github.com/skillshare/skillshare-go/internal/client/guard"
	"github.com/skillshare/skillshare-go/internal/core/form"
	"github.com/skillshare/skillshare-go/internal/infra/tlsroots"
	"github.com/skillshare/skillshare-go/internal/state"
	"github.com/skillshare/skillshare-go/internal/telemetry/logger"
	"github.com/skillshare/skillshare-go/internal/telemetry/metric"
)

// requestTimeout bounds a single API call.
const requestTimeout = 30 * time.Second

const runtimeKey = "runtime"

// App assembles the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:  "skillshare-cli",
		Usage: "SkillShare command-line client",
		Flags: globalFlags(),
		Commands: []*cli.Command{
			AuthCommand(),
			ResourceCommand(),
			PostCommand(),
			PlanCommand(),
			UserCommand(),
			NotificationCommand(),
			ConfigCommand(),
			SystemCommand(),
		},
		After: func(c *cli.Context) error {
			if rt, ok := c.App.Metadata[runtimeKey].(*runtime); ok && rt != nil {
				return rt.close()
			}
			return nil
		},
	}
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to the CLI config file",
			EnvVars: []string{"SKILLSHARE_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "server",
			Aliases: []string{"s"},
			Usage:   "Backend base URL (e.g., http://localhost:8080)",
			EnvVars: []string{"SKILLSHARE_SERVER_URL"},
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json, yaml",
		},
		&cli.BoolFlag{
			Name:    "wide",
			Aliases: []string{"w"},
			Usage:   "Show wide output (more columns, no truncation)",
		},
		&cli.BoolFlag{
			Name:  "no-headers",
			Usage: "Omit table headers",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"V"},
			Usage:   "Enable debug logging",
		},
	}
}

// runtime holds the wired client stack shared by all commands. It is
// built lazily on the first command that needs it and closed by the
// app's After hook.
type runtime struct {
	cfg       *cliconfig.CLIConfig
	log       logger.Logger
	metrics   *metric.Registry
	store     *state.Store
	tokens    *state.TokenStore
	guard     *guard.Guard
	transport *client.Transport

	session       *client.SessionManager
	resources     *client.ResourceClient
	posts         *client.PostClient
	plans         *client.PlanClient
	users         *client.UserClient
	notifications *client.NotificationClient
}

func (rt *runtime) close() error {
	if rt.store != nil {
		return rt.store.Close()
	}
	return nil
}

// getRuntime returns the shared runtime, building it on first use.
func getRuntime(c *cli.Context) (*runtime, error) {
	if rt, ok := c.App.Metadata[runtimeKey].(*runtime); ok && rt != nil {
		return rt, nil
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	logLevel := cfg.Logging.Level
	if c.Bool("verbose") {
		logLevel = "debug"
	}
	log, err := logger.New(logger.Config{
		Level:  logLevel,
		Format: cfg.Logging.Format,
		Output: os.Stderr,
	})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	metrics := metric.NewRegistry()

	store, err := state.Open(state.Config{Dir: cfg.State.Dir}, log)
	if err != nil {
		return nil, fmt.Errorf("open state store: %w", err)
	}

	tokens, err := state.NewTokenStore(store, cfg.State.KeyFile)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("open token store: %w", err)
	}

	cache := state.NewPageCache(store, cfg.State.CacheTTL, metrics)

	transportOpts := []client.Option{
		client.WithTokenSource(tokens),
		client.WithMetrics(metrics),
		client.WithLogger(log),
	}
	if cfg.Server.CAFile != "" {
		pool, err := tlsroots.NewPool()
		if err != nil {
			store.Close()
			return nil, fmt.Errorf("load system roots: %w", err)
		}
		if err := pool.AddCertFile(cfg.Server.CAFile); err != nil {
			store.Close()
			return nil, fmt.Errorf("load server CA: %w", err)
		}
		transportOpts = append(transportOpts, client.WithHTTPClient(&http.Client{
			Timeout: requestTimeout,
			Transport: &http.Transport{
				TLSClientConfig: pool.TLSConfig(),
			},
		}))
	}

	transport := client.NewTransport(cfg.Server.URL, transportOpts...)

	rt := &runtime{
		cfg:           cfg,
		log:           log,
		metrics:       metrics,
		store:         store,
		tokens:        tokens,
		guard:         guard.New(),
		transport:     transport,
		session:       client.NewSessionManager(transport, tokens, metrics, log),
		resources:     client.NewResourceClient(transport, cache),
		posts:         client.NewPostClient(transport),
		plans:         client.NewPlanClient(transport),
		users:         client.NewUserClient(transport),
		notifications: client.NewNotificationClient(transport, log),
	}

	if c.App.Metadata == nil {
		c.App.Metadata = map[string]any{}
	}
	c.App.Metadata[runtimeKey] = rt
	return rt, nil
}

// loadConfig loads the CLI config, layering file, environment, and
// command-line flags.
func loadConfig(c *cli.Context) (*cliconfig.CLIConfig, error) {
	overrides := map[string]any{}
	if c.IsSet("server") {
		overrides["server.url"] = c.String("server")
	}
	if c.IsSet("output") {
		overrides["output.format"] = c.String("output")
	}
	return cliconfig.Load(c.String("config"), overrides)
}

// requireAuth restores the stored session and checks the route guard for
// the app route the command corresponds to. A rejected token is evicted
// before the guard runs, so the decision reflects the real session state.
func requireAuth(c *cli.Context, rt *runtime, route string) error {
	ctx, cancel := context.WithTimeout(c.Context, requestTimeout)
	defer cancel()

	if err := rt.session.ValidateToken(ctx); err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	d := rt.guard.Evaluate(rt.session.Current().Authenticated(), route)
	if !d.Allow {
		return fmt.Errorf("sign in required for %s (run 'skillshare-cli auth login', then retry %s)",
			route, guard.Next(d.RedirectTo))
	}
	return nil
}

// formatter builds the output formatter from global flags and config.
func formatter(c *cli.Context, rt *runtime) output.Formatter {
	format := rt.cfg.Output.Format
	if c.IsSet("output") {
		format = c.String("output")
	}
	f := output.NewFormatter(output.Format(format), c.Bool("wide"))
	if tf, ok := f.(*output.TableFormatter); ok {
		tf.NoHeaders = c.Bool("no-headers")
	}
	return f
}

// defaultPageSize resolves the page size for list commands.
func defaultPageSize(c *cli.Context, rt *runtime) int {
	if c.IsSet("size") {
		return c.Int("size")
	}
	return rt.cfg.Output.PageSize
}

// validateInput validates the whole form and returns the first failing
// field's message. Fields are checked in the given order so the error a
// user sees is deterministic.
func validateInput(f *form.Form, fields ...string) error {
	if f.ValidateAll() {
		return nil
	}
	for _, field := range fields {
		if msg, ok := f.Error(field); ok {
			return fmt.Errorf("%s: %s", field, msg)
		}
	}
	return fmt.Errorf("invalid input")
}

// confirm asks for interactive confirmation unless --force is set.
func confirm(c *cli.Context, prompt string) bool {
	if c.Bool("force") {
		return true
	}
	fmt.Fprintf(c.App.Writer, "%s [y/N]: ", prompt)
	var answer string
	fmt.Scanln(&answer)
	return answer == "y" || answer == "Y"
}

// PrintError prints an error message to stderr.
func PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}

// truncateID shortens long IDs for display.
func truncateID(id string) string {
	if len(id) <= 16 {
		return id
	}
	return id[:13] + "..."
}
