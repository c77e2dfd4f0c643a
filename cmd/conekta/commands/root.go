package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nysertxs/conekta-go/internal/constants"
	"github.com/nysertxs/conekta-go/pkg/conekta"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Viper keys bound to the persistent flags.
const (
	keyConfig  = "config"
	keyOutput  = "output"
	keyVerbose = "verbose"
)

// NewRootCommand creates the conekta command tree.
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "conekta",
		Short: "Conekta API CLI",
		Long: `A command-line interface for the Conekta order-management API.

This CLI lists and inspects orders and customers, captures, cancels and
refunds orders, and manages the private key used to reach the API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringP(keyConfig, "c", "", "config file (default is $HOME/.conekta/config.yml)")
	rootCmd.PersistentFlags().StringP("api", "a", "", "API endpoint URL")
	rootCmd.PersistentFlags().StringP("key", "k", "", "private API key")
	rootCmd.PersistentFlags().StringP(keyOutput, "o", constants.OutputTable, "output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolP(keyVerbose, "v", false, "verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag(keyConfig, rootCmd.PersistentFlags().Lookup(keyConfig))
	_ = viper.BindPFlag(conekta.KeyAPIEndpoint, rootCmd.PersistentFlags().Lookup("api"))
	_ = viper.BindPFlag(conekta.KeyPrivateKey, rootCmd.PersistentFlags().Lookup("key"))
	_ = viper.BindPFlag(keyOutput, rootCmd.PersistentFlags().Lookup(keyOutput))
	_ = viper.BindPFlag(keyVerbose, rootCmd.PersistentFlags().Lookup(keyVerbose))

	// Add commands
	rootCmd.AddCommand(NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(NewConfigureCommand())
	rootCmd.AddCommand(NewOrdersCommand())
	rootCmd.AddCommand(NewCustomersCommand())

	return rootCmd
}

// initConfig reads the config file and CONEKTA_* environment variables.
// A missing config file is not an error.
func initConfig(cmd *cobra.Command) error {
	cfgFile := viper.GetString(keyConfig)

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		configDir, err := defaultConfigDir()
		if err != nil {
			return err
		}

		// Search config in ~/.conekta/config.yml
		viper.AddConfigPath(configDir)
		viper.SetConfigType(constants.ConfigFileType)
		viper.SetConfigName(constants.ConfigFileName)
	}

	// Read in environment variables that match
	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("reading config file: %w", err)
	}

	if viper.GetBool(keyVerbose) {
		fmt.Fprintln(cmd.ErrOrStderr(), "Using config file:", viper.ConfigFileUsed())
	}

	return nil
}

func defaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, constants.ConfigDirName), nil
}
