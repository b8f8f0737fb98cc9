package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/iudanet/lingosync/internal/client/iocli"
)

// BuildInfo сведения о сборке, задаются через ldflags
type BuildInfo struct {
	Version   string
	BuildDate string
	GitCommit string
}

// rootOptions глобальные флаги
type rootOptions struct {
	configFile string
}

// NewRootCommand creates the root command of the lingosync client
func NewRootCommand(build BuildInfo, stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "lingosync",
		Short: "LingoSync - language learning progress sync",
		Long: `Keeps learner progress on this device and synchronizes it
with the LingoSync server under an anonymous identity.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "Config file (default $HOME/.lingosync.yaml)")
	registerConfigFlags(cmd.PersistentFlags())

	// run открывает клиент на время одной команды
	run := func(fn func(c *Cli, ctx context.Context, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(cmd.Flags(), opts.configFile)
			if err != nil {
				return err
			}

			app, err := Open(cmd.Context(), cfg, iocli.New(cmd.OutOrStdout()), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() {
				if err := app.Close(); err != nil {
					app.Logger.Error("failed to close client", "error", err)
				}
			}()

			return fn(app.Cli, cmd.Context(), args)
		}
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "login",
			Short: "Sign in anonymously and remember this device",
			Args:  cobra.NoArgs,
			RunE: run(func(c *Cli, ctx context.Context, _ []string) error {
				return c.runLogin(ctx)
			}),
		},
		&cobra.Command{
			Use:   "logout",
			Short: "Forget the device identity, keep local progress",
			Args:  cobra.NoArgs,
			RunE: run(func(c *Cli, ctx context.Context, _ []string) error {
				return c.runLogout(ctx)
			}),
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show identity and sync status",
			Args:  cobra.NoArgs,
			RunE: run(func(c *Cli, ctx context.Context, _ []string) error {
				return c.runStatus(ctx)
			}),
		},
		&cobra.Command{
			Use:   "keys",
			Short: "List synced keys and their merge strategies",
			Args:  cobra.NoArgs,
			RunE: run(func(c *Cli, ctx context.Context, _ []string) error {
				return c.runKeys(ctx)
			}),
		},
		&cobra.Command{
			Use:   "get <key>",
			Short: "Print the local value of a key",
			Args:  cobra.ExactArgs(1),
			RunE: run(func(c *Cli, ctx context.Context, args []string) error {
				return c.runGet(ctx, args[0])
			}),
		},
		&cobra.Command{
			Use:   "save <key> <json>",
			Short: "Store a value locally and upload it in the background",
			Args:  cobra.ExactArgs(2),
			RunE: run(func(c *Cli, ctx context.Context, args []string) error {
				return c.runSave(ctx, args[0], args[1])
			}),
		},
		&cobra.Command{
			Use:   "push",
			Short: "Upload all local progress",
			Args:  cobra.NoArgs,
			RunE: run(func(c *Cli, ctx context.Context, _ []string) error {
				return c.runPush(ctx)
			}),
		},
		&cobra.Command{
			Use:   "pull",
			Short: "Download progress and merge it into local state",
			Args:  cobra.NoArgs,
			RunE: run(func(c *Cli, ctx context.Context, _ []string) error {
				return c.runPull(ctx)
			}),
		},
		&cobra.Command{
			Use:   "push-key <key>",
			Short: "Upload a single synced key",
			Args:  cobra.ExactArgs(1),
			RunE: run(func(c *Cli, ctx context.Context, args []string) error {
				return c.runPushKey(ctx, args[0])
			}),
		},
		newVersionCommand(build),
	)

	return cmd
}

func newVersionCommand(build BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "LingoSync Client\n")
			_, _ = fmt.Fprintf(out, "Version:    %s\n", build.Version)
			_, _ = fmt.Fprintf(out, "Build Date: %s\n", build.BuildDate)
			_, _ = fmt.Fprintf(out, "Git Commit: %s\n", build.GitCommit)
		},
	}
}
