// Package commands implements the CLI commands for the provision tool.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/provision/internal/adapters/detector"
	"go.trai.ch/provision/internal/app"
	"go.trai.ch/provision/internal/build"
	"go.trai.ch/provision/internal/core/domain"
)

// DefaultConfigPath is used when --config is not given.
const DefaultConfigPath = "./machine_setup.yaml"

// Runner is the application surface the CLI drives.
type Runner interface {
	Run(ctx context.Context, opts app.RunOptions) error
	List(ctx context.Context, configPath string, w io.Writer) error
}

// LogControl receives the resolved logging flags before any subcommand runs.
type LogControl interface {
	SetOutputMode(mode detector.OutputMode)
	SetLevel(level domain.LogLevel)
}

// CLI represents the command line interface for provision.
type CLI struct {
	app     Runner
	rootCmd *cobra.Command
	log     LogControl
}

// New creates a new CLI instance with the given app. log may be nil.
func New(a Runner, log LogControl) *CLI {
	rootCmd := &cobra.Command{
		Use:           "provision",
		Short:         "Provision a machine from a declarative task list",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate("provision version {{.Version}}\n")
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", DefaultConfigPath, "Path to the config file (yaml, yml or json)")
	rootCmd.PersistentFlags().StringP("task", "t", "", "Run a single task")
	rootCmd.PersistentFlags().BoolP("select", "s", false, "Pick the task to run interactively")
	rootCmd.PersistentFlags().StringP("output", "o", "auto", "Log format: auto, pretty or json")
	rootCmd.PersistentFlags().StringP("level", "l", "info", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Log at debug level, overriding --level")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
		log:     log,
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		level, err := resolveLevel(cmd)
		if err != nil {
			return err
		}
		if c.log != nil {
			flag, _ := cmd.Flags().GetString("output")
			c.log.SetOutputMode(detector.ResolveMode(detector.DetectEnvironment(), flag))
			c.log.SetLevel(level)
		}
		return nil
	}

	rootCmd.AddCommand(c.newInstallCmd())
	rootCmd.AddCommand(c.newUpdateCmd())
	rootCmd.AddCommand(c.newUninstallCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func resolveLevel(cmd *cobra.Command) (domain.LogLevel, error) {
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		return domain.LogLevelDebug, nil
	}
	name, _ := cmd.Flags().GetString("level")
	return domain.ParseLogLevel(name)
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error writers for the root command.
func (c *CLI) SetOutput(out, errOut io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(errOut)
}
