package commands

import (
	"context"
	"fmt"

	"github.com/nysertxs/conekta-go/pkg/conekta"
	"github.com/nysertxs/conekta-go/pkg/conektaclient"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// CreateClient builds a client from the config file, CONEKTA_* variables
// and the persistent flags, in increasing order of precedence.
func CreateClient(cmd *cobra.Command) (conekta.Client, error) {
	config := conekta.ConfigFromViper(viper.GetViper())

	if viper.GetBool(keyVerbose) {
		logger := log.New()
		logger.SetOutput(cmd.ErrOrStderr())
		logger.SetLevel(log.DebugLevel)

		config.Debug = true
		config.Logger = conekta.NewLogrusLogger(logger.WithField("component", "conekta-cli"))
	}

	client, err := conektaclient.New(commandContext(cmd), config)
	if err != nil {
		return nil, fmt.Errorf("%w, run 'conekta configure' or set CONEKTA_PRIVATE_KEY", err)
	}

	return client, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}
