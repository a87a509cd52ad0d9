// Package cmd provides the root command and CLI setup for grouplist.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/grouplist/internal/adapter"
	"github.com/mouse-blink/grouplist/internal/config"
	"github.com/mouse-blink/grouplist/internal/controller"
	"github.com/mouse-blink/grouplist/internal/log"
	m "github.com/mouse-blink/grouplist/internal/model"
)

var groupStore adapter.GroupStore

// newUI builds the host for a command. Tests replace it with a mock.
var newUI = func(cmd *cobra.Command, opts ...controller.Option) controller.UI {
	return controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()), opts...)
}

func init() {
	groupStore = adapter.NewGroupStore()
}

var configFlag string
var logLevelFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grouplist",
		Short: "Grouped list position mapper",
		Long: `Grouplist maps the flat positions of a scrollable list onto groups of
header, item and footer rows, and keeps that mapping in step as the groups
are edited.

Group files are YAML:
  groups:
    - title: Fruits
      items: [{title: apple}, {title: pear}]
      footer: 2 fruits

Without group files the built-in demo groups are used.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "path to a grouplist.yaml defaults file")
	cmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level: debug, info, warn or error")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies the global flags over it.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return nil, err
	}

	if logLevelFlag != "" {
		cfg.LogLevel = logLevelFlag
	}

	return cfg, nil
}

// loadGroups reads the group files named by args, falling back to the files
// listed in the config and then to the demo groups.
func loadGroups(ctx context.Context, args []string, cfg *config.Config) ([]m.Group, error) {
	paths := args
	if len(paths) == 0 {
		paths = cfg.Groups
	}

	if len(paths) == 0 {
		return adapter.DemoGroups(), nil
	}

	groups, err := groupStore.Load(ctx, parsePaths(paths)...)
	if err != nil {
		return nil, fmt.Errorf("failed to load groups: %w", err)
	}

	return groups, nil
}

// runUI resolves config, logging and groups, then hands the groups to run.
func runUI(cmd *cobra.Command, args []string, configure func(*config.Config) error,
	run func(controller.UI, []m.Group) error,
) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if configure != nil {
		if err := configure(cfg); err != nil {
			return err
		}
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := log.New(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	groups, err := loadGroups(cmd.Context(), args, cfg)
	if err != nil {
		return err
	}

	ui := newUI(cmd,
		controller.WithColumns(cfg.Columns),
		controller.WithFormat(controller.Format(cfg.Format)),
		controller.WithLogger(logger),
	)

	return run(ui, groups)
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
