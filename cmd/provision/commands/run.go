package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/provision/internal/app"
	"go.trai.ch/provision/internal/core/domain"
)

func (c *CLI) newInstallCmd() *cobra.Command {
	return c.newModeCmd(domain.ModeInstall, "Install all tasks, or the one given with --task")
}

func (c *CLI) newUpdateCmd() *cobra.Command {
	return c.newModeCmd(domain.ModeUpdate, "Update all tasks, or the one given with --task")
}

func (c *CLI) newUninstallCmd() *cobra.Command {
	return c.newModeCmd(domain.ModeUninstall, "Uninstall all tasks, or the one given with --task")
}

func (c *CLI) newModeCmd(mode domain.Mode, short string) *cobra.Command {
	return &cobra.Command{
		Use:   mode.String(),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			task, _ := cmd.Flags().GetString("task")
			pick, _ := cmd.Flags().GetBool("select")
			return c.app.Run(cmd.Context(), app.RunOptions{
				ConfigPath: configPath,
				Task:       task,
				Mode:       mode,
				Select:     pick,
			})
		},
	}
}
