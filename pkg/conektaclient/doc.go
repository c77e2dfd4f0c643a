// Package conektaclient provides the primary entry point for constructing a
// Conekta API client that implements the conekta.Client interface.
//
// It layers configuration, HTTP transport and key-based authentication on
// top of the resource interfaces and types defined in the conekta package.
// Most applications should import conektaclient to build a client, then use
// the returned conekta.Client to reach the resource clients, for example
// Orders() and Customers().
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/nysertxs/conekta-go/pkg/conekta"
//	  "github.com/nysertxs/conekta-go/pkg/conektaclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Minimal: a private key against https://api.conekta.io.
//	  cli, err := conektaclient.NewWithKey(ctx, "key_test_...")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with full configuration:
//	  cli, err = conektaclient.New(ctx, &conekta.Config{
//	    PrivateKey: "key_test_...",
//	    Locale:     "en",
//	    RetryMax:   2, // only for callers whose writes are safe to repeat
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  orders, err := cli.Orders().List(ctx, conekta.NewListParams().WithLimit(10))
//	  if err != nil { log.Fatal(err) }
//	  _ = orders
//	}
//
// # Keys from the environment
//
// When Config.PrivateKey is empty the key is read from CONEKTA_PRIVATE_KEY
// on every request. NewFromViper builds the whole Config from a viper
// instance, so a config file and CONEKTA_* variables can be combined.
//
// # Helpers
//
// The package also provides convenience constructors NewWithKey,
// NewWithEndpoint, NewFromViper and NewWithTransport that wrap New with the
// appropriate configuration.
package conektaclient
