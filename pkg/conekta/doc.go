// Package conekta provides types, interfaces, and helpers for working with
// the Conekta order-management API.
//
// # Overview
//
// The conekta package defines the domain types (Order, LineItem, Charge,
// Refund, Customer, ...) and the interfaces for resource-oriented clients
// (OrdersClient, CustomersClient). A concrete implementation is provided
// by the conektaclient package, which wires configuration, transport and
// authentication.
//
// Getting a client
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
//	  cli, err := conektaclient.New(ctx, &conekta.Config{PrivateKey: "key_test_..."})
//	  if err != nil { log.Fatal(err) }
//
//	  order, err := cli.Orders().Retrieve(ctx, "ord_123")
//	  if err != nil { log.Fatal(err) }
//	  _ = order
//	}
//
// # Pagination
//
// List operations return a Collection holding one page. FetchNext and
// FetchPrevious return the adjacent page as a new Collection; the page
// they were called on is left untouched. Without a cursor in the requested
// direction they fail with ErrNoNextPage or ErrNoPreviousPage and no
// request is made:
//
//	page, err := cli.Orders().List(ctx, conekta.NewListParams().WithLimit(20))
//	for err == nil {
//	  for _, order := range page.Data { _ = order }
//	  if !page.HasNext() { break }
//	  page, err = page.FetchNext(ctx)
//	}
//
// Collect walks a list from its first page and concatenates the elements.
//
// # Errors
//
// Every operation returns exactly one of a value or an error:
//   - *TransportError when no HTTP response was obtained,
//   - *APIError for any non-2xx status, carrying the decoded error body or
//     the raw body text,
//   - *DecodeError when a 2xx body does not match the expected shape,
//   - *PaginationError when a page cannot be fetched.
//
// IsNotFound, IsUnauthorized, IsValidation and IsProcessing branch on the
// common API failures. Nothing is retried unless Config.RetryMax is set.
//
// # Interceptors and metrics
//
// An InterceptorChain runs hooks around every round trip. NewMetrics
// exports Prometheus request counters and latency histograms through it.
package conekta
