package command

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	cliconfig "github.com/skillshare/skillshare-go/internal/cli/config"
)

// ConfigCommand returns the config subcommand group.
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Manage local CLI configuration",
		Subcommands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Show the effective configuration",
				Action: configShow,
			},
			{
				Name:   "path",
				Usage:  "Print the config file path",
				Action: configPath,
			},
			{
				Name:      "set",
				Usage:     "Set a config value and write the config file",
				ArgsUsage: "KEY VALUE",
				Action:    configSet,
			},
			{
				Name:  "init",
				Usage: "Write a config file with the defaults",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "force",
						Aliases: []string{"f"},
						Usage:   "Overwrite an existing file",
					},
				},
				Action: configInit,
			},
		},
	}
}

func configShow(c *cli.Context) error {
	rt, err := getRuntime(c)
	if err != nil {
		return err
	}
	return formatter(c, rt).Format(c.App.Writer, rt.cfg)
}

func configPath(c *cli.Context) error {
	path := c.String("config")
	if path == "" {
		path = cliconfig.DefaultConfigPath()
	}
	fmt.Fprintln(c.App.Writer, path)
	return nil
}

func configSet(c *cli.Context) error {
	if c.NArg() != 2 {
		return fmt.Errorf("usage: skillshare-cli config set KEY VALUE (e.g. output.format json)")
	}
	key, value := c.Args().Get(0), c.Args().Get(1)

	if _, err := cliconfig.Set(c.String("config"), key, value); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "Set %s = %s\n", key, value)
	return nil
}

func configInit(c *cli.Context) error {
	path := c.String("config")
	if path == "" {
		path = cliconfig.DefaultConfigPath()
	}

	if _, err := os.Stat(path); err == nil && !c.Bool("force") {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := cliconfig.Save(cliconfig.Default(), path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	fmt.Fprintf(c.App.Writer, "Wrote %s\n", path)
	return nil
}
