package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/grom-dev/bot-api-spec/internal/cmd"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	workingDir string
	logLevel   string
	watch      bool
)

var rootCmd = &cobra.Command{
	Use:   "botapigen",
	Short: "Generate Go bindings for a bot API type catalogue",
	Long: `botapigen reads the type catalogue listed in botapigen.yaml and
writes one Go file per declared type, with JSON encoding and decoding.

  botapigen generate          # write the bindings
  botapigen generate --watch  # regenerate on every catalogue change
  botapigen check             # validate the catalogue only`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write the bindings of the catalogue",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, args []string) error {
		s, err := settings()
		if err != nil {
			return err
		}

		if !watch {
			return cmd.Run(s)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return cmd.Watch(ctx, s)
	},
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate and resolve the catalogue without writing anything",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, args []string) error {
		s, err := settings()
		if err != nil {
			return err
		}

		summary, err := cmd.Check(s)
		if err != nil {
			return err
		}

		out := c.OutOrStdout()
		fmt.Fprintf(out, "Catalogue valid\n")
		fmt.Fprintf(out, "  Files: %d\n", len(summary.Files))
		fmt.Fprintf(out, "  Declarations: %d (%d unions)\n", summary.Declarations, summary.Unions)
		fmt.Fprintf(out, "  Back-references: %d\n", summary.BackRefs)
		fmt.Fprintf(out, "  Digest: blake3:%s\n", summary.Digest)
		return nil
	},
}

func init() {
	addGlobalFlags(rootCmd.PersistentFlags())

	generateCmd.Flags().BoolVarP(&watch, "watch", "w", false, "regenerate whenever the catalogue changes")

	rootCmd.AddCommand(generateCmd, checkCmd)
}

func addGlobalFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&workingDir, "dir", "d", "", "directory holding botapigen.yaml (default: current directory)")
	fs.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
}

func settings() (cmd.Settings, error) {
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		return cmd.Settings{}, fmt.Errorf(`invalid log level "%s"`, logLevel)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()

	wd := workingDir
	if wd == "" {
		wd, err = os.Getwd()
		if err != nil {
			return cmd.Settings{}, fmt.Errorf("failed to determine working directory: %w", err)
		}
	}

	return cmd.Settings{
		WorkingDir: wd,
		Logger:     logger,
	}, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
