package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/MKhiriev/triboferrin/internal/bot"
	"github.com/MKhiriev/triboferrin/internal/config"
	"github.com/MKhiriev/triboferrin/internal/logger"
)

// populated via -ldflags at build time
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "triboferrin",
		Short: "Discord bot with layered configuration",
		Long: "Triboferrin is a Discord bot. Its configuration is resolved from built-in\n" +
			"defaults, an optional TOML file, TRIBOFERRIN_* environment variables, RUST_LOG\n" +
			"and command-line flags, in that order of precedence.",
		Version:       buildInfo(),
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringP("config", "c", "", "path to a TOML config file")
	cmd.Flags().String("log-level", "", "log verbosity: trace, debug, info, warn or error")
	cmd.Flags().String("discord-token", "", "Discord bot token")
	cmd.Flags().String("discord-api-url", "", "alternative Discord API base URL")

	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	args := argsFromFlags(cmd.Flags())

	cfg, err := config.Resolve(args)
	if err != nil {
		return err
	}

	log, err := logger.New("bot", cfg.LogLevel)
	if err != nil {
		return err
	}
	log.Debug().Any("args", args).Any("config", cfg).Msg("resolved configs")

	b, err := bot.New(cfg, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return b.Run(ctx)
}

// argsFromFlags converts parsed flags into config.Args. Flags the user did
// not pass map to nil so their absence survives into resolution.
func argsFromFlags(fs *pflag.FlagSet) config.Args {
	configPath, _ := fs.GetString("config")
	return config.Args{
		ConfigPath:    configPath,
		LogLevel:      flagValue(fs, "log-level"),
		DiscordToken:  flagValue(fs, "discord-token"),
		DiscordAPIURL: flagValue(fs, "discord-api-url"),
	}
}

// flagValue returns the flag's value only when the user actually passed it.
// Resolution needs the difference between an absent flag and one explicitly
// set to the empty string.
func flagValue(fs *pflag.FlagSet, name string) *string {
	if !fs.Changed(name) {
		return nil
	}
	val, _ := fs.GetString(name)
	return &val
}

func buildInfo() string {
	version, date, commit := buildVersion, buildDate, buildCommit
	if version == "" {
		version = "N/A"
	}
	if date == "" {
		date = "N/A"
	}
	if commit == "" {
		commit = "N/A"
	}

	return fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
}
