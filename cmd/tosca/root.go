package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nauticalab/tosca-profile/internal/cli"
	"github.com/nauticalab/tosca-profile/internal/document"
)

var (
	// Global flags (available to all commands)
	cfgFile string
	verbose bool

	// configErr is set by initConfig and reported before any command runs.
	configErr error

	// backend is resolved once from flags, environment and config file
	// before any command runs.
	backend document.Backend
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tosca",
	Short: "Inspect TOSCA-style infrastructure templates",
	Long: `tosca loads YAML infrastructure templates (version, description, inputs,
node templates, outputs) and reports on their structure.

It checks that the recognized top-level sections are present, prints
sections in document order, and lists node templates with their types.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogging()
		if configErr != nil {
			return configErr
		}

		config, err := cli.LoadCLIConfig(viper.GetViper())
		if err != nil {
			return err
		}
		backend, err = config.Backend()
		if err != nil {
			return err
		}
		slog.Debug("resolved parser backend", "parser", backend)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.tosca.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().String("parser", "", "YAML parser backend: yaml.v3 or goccy")
	if err := viper.BindPFlag("parser", rootCmd.PersistentFlags().Lookup("parser")); err != nil {
		panic(err)
	}

	// Add subcommands to root
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(templatesCmd)
	rootCmd.AddCommand(versionCmd)
}

// initConfig loads configuration from the config file and environment.
func initConfig() {
	viper.SetEnvPrefix("TOSCA")
	viper.AutomaticEnv()

	configErr = cli.ReadConfigFile(viper.GetViper(), cfgFile)
	if configErr == nil && viper.ConfigFileUsed() != "" {
		slog.Debug("using config file", "file", viper.ConfigFileUsed())
	}
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	// Using TextHandler for CLI friendliness
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}

// baseOptions builds the options shared by every file-reading command.
func baseOptions(files []string) cli.Options {
	return cli.Options{
		Files:   files,
		Backend: backend,
		Verbose: verbose,
	}
}
