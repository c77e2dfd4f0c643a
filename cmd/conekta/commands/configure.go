package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nysertxs/conekta-go/internal/auth"
	"github.com/nysertxs/conekta-go/internal/constants"
	"github.com/nysertxs/conekta-go/pkg/conekta"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// ErrNoKeyEntered is returned when the key prompt is left empty.
var ErrNoKeyEntered = errors.New("no private key entered")

// Config represents the CLI configuration file.
type Config struct {
	APIEndpoint string `json:"api_endpoint,omitempty" yaml:"api_endpoint,omitempty"`
	PrivateKey  string `json:"private_key,omitempty"  yaml:"private_key,omitempty"`
	APIVersion  string `json:"api_version,omitempty"  yaml:"api_version,omitempty"`
	Locale      string `json:"locale,omitempty"       yaml:"locale,omitempty"`
	Output      string `json:"output,omitempty"       yaml:"output,omitempty"`
}

// pinger is implemented by clients that can check their credentials.
type pinger interface {
	Ping(ctx context.Context) (time.Duration, error)
}

// NewConfigureCommand creates the configure command.
func NewConfigureCommand() *cobra.Command {
	var (
		locale string
		verify bool
	)

	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Store the API key and endpoint",
		Long: `Store the private API key and endpoint in the config file.

The key is taken from --key, or prompted for without echo when omitted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			if locale != "" {
				config.Locale = locale
			}

			if config.PrivateKey == "" {
				key, err := promptForKey(cmd)
				if err != nil {
					return err
				}

				config.PrivateKey = key
				viper.Set(conekta.KeyPrivateKey, key)
			}

			if verify {
				err := verifyKey(cmd)
				if err != nil {
					return err
				}
			}

			path, err := saveConfig(config)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Configuration saved to %s (key %s)\n", path, auth.MaskKey(config.PrivateKey))

			return nil
		},
	}

	cmd.Flags().StringVar(&locale, "locale", "", "language of API error messages (es, en)")
	cmd.Flags().BoolVar(&verify, "verify", false, "check the key against the API before saving")

	return cmd
}

// loadConfig reads the current settings, flags included.
func loadConfig() *Config {
	return &Config{
		APIEndpoint: viper.GetString(conekta.KeyAPIEndpoint),
		PrivateKey:  viper.GetString(conekta.KeyPrivateKey),
		APIVersion:  viper.GetString(conekta.KeyAPIVersion),
		Locale:      viper.GetString(conekta.KeyLocale),
		Output:      viper.GetString(keyOutput),
	}
}

// promptForKey reads the key without echo from a terminal, or as one line
// from any other input.
func promptForKey(cmd *cobra.Command) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), "Private key: ")

	var key string

	if file, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		byteKey, err := term.ReadPassword(int(file.Fd()))
		if err != nil {
			return "", fmt.Errorf("failed to read private key: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout())

		key = string(byteKey)
	} else {
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read private key: %w", err)
		}

		key = line
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return "", ErrNoKeyEntered
	}

	return key, nil
}

func verifyKey(cmd *cobra.Command) error {
	client, err := CreateClient(cmd)
	if err != nil {
		return err
	}

	if p, ok := client.(pinger); ok {
		elapsed, err := p.Ping(commandContext(cmd))
		if err != nil {
			return fmt.Errorf("failed to verify private key: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Key verified in %s\n", elapsed.Round(time.Millisecond))
	}

	return nil
}

// saveConfig writes config to the --config file, the file it was read
// from, or $HOME/.conekta/config.yml.
func saveConfig(config *Config) (string, error) {
	configFile := viper.GetString(keyConfig)
	if configFile == "" {
		configFile = viper.ConfigFileUsed()
	}

	if configFile == "" {
		configDir, err := defaultConfigDir()
		if err != nil {
			return "", err
		}

		configFile = filepath.Join(configDir, constants.ConfigFileName+"."+constants.ConfigFileType)
	}

	err := os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return configFile, nil
}
