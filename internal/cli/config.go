package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/linkage/pkg/config"
	errs "github.com/matzehuels/linkage/pkg/errors"
)

func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or initialize the settings file",
	}
	cmd.AddCommand(c.configShowCommand())
	cmd.AddCommand(c.configInitCommand())
	return cmd
}

func (c *CLI) configShowCommand() *cobra.Command {
	var sets []string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runConfigShow(cmd.Context(), sets)
		},
	}
	setFlag(cmd, &sets)
	return cmd
}

func (c *CLI) runConfigShow(ctx context.Context, sets []string) error {
	settings, path, err := c.loadSettings(sets)
	if err != nil {
		return err
	}
	loggerFromContext(ctx).Debug("effective settings", "path", path, "overrides", len(sets))
	printDetail("# %s", path)
	return config.Encode(stdout, settings)
}

func (c *CLI) configInitCommand() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a settings file with the default segment lengths",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.configPath
			if len(args) == 1 {
				path = args[0]
			}
			return runConfigInit(cmd.Context(), path, force)
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func runConfigInit(ctx context.Context, explicit string, force bool) error {
	path, err := config.Path(explicit)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil && !force {
		return errs.New(errs.ErrCodeInvalidInput, "%s already exists (use --force to overwrite)", path)
	}
	if err := config.Write(path, config.Default()); err != nil {
		return err
	}
	loggerFromContext(ctx).Debug("wrote settings", "path", path)
	printSuccess("Wrote %s", path)
	printArm(config.Default().Arm)
	printNewline()
	printNextStep("Try it", appName+" solve --x 0.8 --config "+path)
	return nil
}
