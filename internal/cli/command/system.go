package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/common/expfmt"
	"github.com/urfave/cli/v2"

	"github.com/skillshare/skillshare-go/internal/core/domain"
	"github.com/skillshare/skillshare-go/internal/infra/buildinfo"
)

// SystemCommand returns the system subcommand group.
func SystemCommand() *cli.Command {
	return &cli.Command{
		Name:    "system",
		Aliases: []string{"sys"},
		Usage:   "Client diagnostics",
		Subcommands: []*cli.Command{
			{
				Name:   "version",
				Usage:  "Show version and build information",
				Action: systemVersion,
			},
			{
				Name:   "ping",
				Usage:  "Check that the backend is reachable",
				Action: systemPing,
			},
			{
				Name:   "metrics",
				Usage:  "Dump client metrics in Prometheus text format",
				Action: systemMetrics,
			},
		},
	}
}

func systemVersion(c *cli.Context) error {
	rt, err := getRuntime(c)
	if err != nil {
		return err
	}
	return formatter(c, rt).Format(c.App.Writer, buildinfo.Get())
}

// systemPing probes the backend without a token. Any HTTP status means
// the server answered; only a transport failure counts as unreachable.
func systemPing(c *cli.Context) error {
	rt, err := getRuntime(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Context, requestTimeout)
	defer cancel()

	if _, err := rt.transport.GetRaw(ctx, "/api/posts/feed", nil, false); err != nil {
		if errors.Is(err, domain.ErrTransport) {
			return fmt.Errorf("backend unreachable at %s: %w", rt.cfg.Server.URL, err)
		}
	}

	fmt.Fprintf(c.App.Writer, "✓ %s is reachable\n", rt.cfg.Server.URL)
	return nil
}

func systemMetrics(c *cli.Context) error {
	rt, err := getRuntime(c)
	if err != nil {
		return err
	}

	families, err := rt.metrics.Gatherer().Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	enc := expfmt.NewEncoder(c.App.Writer, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encode metrics: %w", err)
		}
	}
	return nil
}
