package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Veraticus/sarcastic-confessional/internal/common"
	"github.com/Veraticus/sarcastic-confessional/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev"

// newRootCmd builds the command tree. Each tree owns its own viper
// instance so flags and config never leak between invocations.
func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "confess",
		Short: "🕯️  Der sarkastische Beichtstuhl",
		Long: `confess: A confessional booth with a judgmental monk.

Tell the monk what you did. He sorts your sin into a category, charges you
karma debt for it and lets you know exactly what he thinks of you.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd, v, cfgFile)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, v)
		},
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/confess/config.yaml)")
	flags.String("data-file", "", "ledger file (default: "+config.DefaultDataPath+")")
	flags.Uint64("seed", 0, "seed for response selection (0 picks a random seed)")
	flags.String("log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	flags.String("log-format", config.DefaultLogFormat, "log format (console, json)")

	// Bind flags to viper
	_ = v.BindPFlag(config.KeyDataPath, flags.Lookup("data-file"))
	_ = v.BindPFlag(config.KeySeed, flags.Lookup("seed"))
	_ = v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	_ = v.BindPFlag(config.KeyLogFormat, flags.Lookup("log-format"))

	// Add commands
	rootCmd.AddCommand(sayCmd(v))
	rootCmd.AddCommand(statsCmd(v))
	rootCmd.AddCommand(historyCmd(v))
	rootCmd.AddCommand(resetCmd(v))
	rootCmd.AddCommand(batchCmd(v))
	rootCmd.AddCommand(schemaCmd())
	rootCmd.AddCommand(tuiCmd(v))
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func main() {
	// Set up signal handling
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("Received interrupt signal, shutting down gracefully...")
		cancel()
	}()

	err := newRootCmd().ExecuteContext(ctx)
	cancel() // Always cleanup

	if err != nil {
		fmt.Fprintln(os.Stderr, common.UserMessage(err))
		var userErr *common.UserError
		if errors.As(err, &userErr) && userErr.Err != nil {
			slog.Debug("command failed", "error", userErr.Err)
		}
		os.Exit(1)
	}
}

func initConfig(cmd *cobra.Command, v *viper.Viper, cfgFile string) error {
	// Set up config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		// Search for config in standard locations
		v.AddConfigPath(fmt.Sprintf("%s/.config/confess", home))
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Environment variables
	v.SetEnvPrefix("CONFESS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	config.SetDefaults(v)

	// Set up logging
	if err := common.SetupLogger(cmd.ErrOrStderr(), v.GetString(config.KeyLogLevel), v.GetString(config.KeyLogFormat)); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "confess version %s\n", version)
		},
	}
}
