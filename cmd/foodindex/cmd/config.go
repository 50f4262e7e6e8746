package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dietsurvey/foodindex/internal/config"
	"github.com/dietsurvey/foodindex/internal/output"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long: `Manage the foodindex configuration.

Configuration precedence (lowest to highest):
  1. Hardcoded defaults
  2. User config (~/.config/foodindex/config.yaml)
  3. Project config (.foodindex.yaml in --config-dir)
  4. Environment variables (FOODINDEX_*)`,
		Example: `  # Create user config with defaults
  foodindex config init

  # Show effective configuration
  foodindex config show

  # Print user config file path
  foodindex config path`,
	}

	cmd.AddCommand(newConfigInitCmd(a))
	cmd.AddCommand(newConfigShowCmd(a))
	cmd.AddCommand(newConfigPathCmd())

	return cmd
}

func newConfigInitCmd(a *app) *cobra.Command {
	var (
		force   bool
		project bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file with defaults",
		Long: `Write the default configuration to the user config file, or with
--project to .foodindex.yaml in --config-dir. An existing file is kept
unless --force is given, in which case it is backed up first.`,
		Example: `  foodindex config init
  foodindex config init --project --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := config.GetUserConfigPath()
			if project {
				path = filepath.Join(a.configDir, config.ProjectConfigNames[0])
			}
			return runConfigInit(output.New(cmd.OutOrStdout()), path, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file after backing it up")
	cmd.Flags().BoolVar(&project, "project", false, "Write the project config instead of the user config")

	return cmd
}

func runConfigInit(out *output.Writer, path string, force bool) error {
	_, statErr := os.Stat(path)
	exists := statErr == nil

	if exists && !force {
		out.Warning("Configuration already exists")
		out.Statusf("📁", "Location: %s", path)
		out.Newline()
		out.Status("💡", "Use --force to overwrite it (a backup is kept)")
		return nil
	}

	var backupPath string
	if exists {
		var err error
		if backupPath, err = config.BackupFile(path); err != nil {
			return fmt.Errorf("failed to backup config: %w", err)
		}
	}

	if err := config.NewConfig().WriteYAML(path); err != nil {
		return err
	}

	out.Success("Created configuration")
	out.Statusf("📁", "Location: %s", path)
	if backupPath != "" {
		out.Statusf("💾", "Backup: %s", backupPath)
	}
	return nil
}

func newConfigShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Long: `Show the configuration after merging defaults, the user config,
the project config and environment variables.`,
		Example: `  foodindex config show
  foodindex config show --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.config()
			if err != nil {
				return err
			}

			out := a.out(cmd)
			if out.IsJSON() {
				return out.JSON(cfg)
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}
			if src := config.FindProjectConfig(a.configDir); src != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "# project config: %s\n", src)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print user config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), config.GetUserConfigPath())
			return err
		},
	}
}
