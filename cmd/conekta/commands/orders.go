package commands

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nysertxs/conekta-go/pkg/conekta"
	"github.com/spf13/cobra"
)

// NewOrdersCommand creates the orders command group.
func NewOrdersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "orders",
		Aliases: []string{"order", "ord"},
		Short:   "Manage orders",
		Long:    "List, inspect, capture, cancel and refund Conekta orders",
	}

	cmd.AddCommand(newOrdersListCommand())
	cmd.AddCommand(newOrdersGetCommand())
	cmd.AddCommand(newOrdersActionCommand("capture", "Capture a pre-authorized order", "Order %s captured", conekta.OrdersClient.Capture))
	cmd.AddCommand(newOrdersActionCommand("cancel", "Cancel an order", "Order %s canceled", conekta.OrdersClient.Cancel))
	cmd.AddCommand(newOrdersRefundCommand())
	cmd.AddCommand(newOrdersLineItemsCommand())

	return cmd
}

// pageFlags are the list flags shared by every list command.
type pageFlags struct {
	limit    int
	next     string
	previous string
	search   string
	filters  []string
	allPages bool
}

func (f *pageFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.limit, "limit", 0, "page size")
	cmd.Flags().StringVar(&f.next, "next", "", "start after this cursor")
	cmd.Flags().StringVar(&f.previous, "previous", "", "start before this cursor")
	cmd.Flags().StringVar(&f.search, "search", "", "free-text search")
	cmd.Flags().StringArrayVar(&f.filters, "filter", nil, "filter as key=value (repeatable)")
	cmd.Flags().BoolVar(&f.allPages, "all", false, "fetch all pages")
}

// request builds the first page request. --next and --previous become
// the starting cursor, never a filter.
func (f *pageFlags) request() (conekta.PageRequest, error) {
	params := conekta.NewListParams().WithLimit(f.limit).WithSearch(f.search)

	for _, filter := range f.filters {
		key, value, ok := strings.Cut(filter, "=")
		if !ok || key == "" {
			return conekta.PageRequest{}, fmt.Errorf("%w: %q", ErrInvalidFilter, filter)
		}

		params.WithFilter(key, value)
	}

	req := conekta.PageRequest{Query: params, Limit: f.limit}

	switch {
	case f.next != "" && f.previous != "":
		return conekta.PageRequest{}, conekta.ErrConflictingCursors
	case f.next != "":
		req.Direction, req.Cursor = conekta.Forward, f.next
	case f.previous != "":
		req.Direction, req.Cursor = conekta.Backward, f.previous
	}

	return req, nil
}

// collectPages returns the elements of first, or of every page when
// --all is set. Listings started with --previous are walked backward.
func collectPages[T any](cmd *cobra.Command, flags *pageFlags, first *conekta.Collection[T]) ([]T, error) {
	if !flags.allPages {
		return first.Data, nil
	}

	collect := conekta.Collect[T]
	if flags.previous != "" {
		collect = conekta.CollectPrevious[T]
	}

	all, err := collect(commandContext(cmd), first, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch all pages: %w", err)
	}

	return all, nil
}

// printCursors tells the user how to reach the adjacent pages.
func printCursors[T any](out io.Writer, flags *pageFlags, page *conekta.Collection[T]) {
	if flags.allPages {
		return
	}

	if next, ok := page.Next(); ok && page.HasNext() {
		fmt.Fprintf(out, "More results: --next %s\n", next)
	}

	if previous, ok := page.Previous(); ok {
		fmt.Fprintf(out, "Previous results: --previous %s\n", previous)
	}
}

func newOrdersListCommand() *cobra.Command {
	var (
		flags    pageFlags
		customer string
		status   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List orders",
		Long:  "List orders with optional search and filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			req, err := flags.request()
			if err != nil {
				return err
			}

			if customer != "" {
				req.Query.WithFilter("customer_info.customer_id", customer)
			}

			if status != "" {
				req.Query.WithFilter("payment_status", status)
			}

			page, err := client.Orders().Page(commandContext(cmd), req)
			if err != nil {
				return fmt.Errorf("failed to list orders: %w", err)
			}

			orders, err := collectPages(cmd, &flags, page)
			if err != nil {
				return err
			}

			return renderOutput(cmd, orders, func(out io.Writer) error {
				if len(orders) == 0 {
					fmt.Fprintln(out, "No orders found")

					return nil
				}

				rows := make([][]string, 0, len(orders))
				for _, order := range orders {
					rows = append(rows, orderRow(&order))
				}

				err := renderTable(out, []string{"ID", "Status", "Amount", "Customer", "Created"}, rows)
				if err != nil {
					return err
				}

				printCursors(out, &flags, page)

				return nil
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&customer, "customer", "", "only orders of this customer id")
	cmd.Flags().StringVar(&status, "status", "", "only orders with this payment status")

	return cmd
}

func orderRow(order *conekta.Order) []string {
	customer := ""
	if order.CustomerInfo != nil {
		customer = order.CustomerInfo.Name
		if customer == "" {
			customer = order.CustomerInfo.Email
		}
	}

	return []string{
		order.ID,
		valueOrDash(order.PaymentStatus),
		formatAmount(order.Amount, order.Currency),
		valueOrDash(customer),
		formatTimestamp(order.CreatedAt),
	}
}

func newOrdersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ORDER_ID",
		Short: "Get order details",
		Long:  "Display an order with its line items and charges",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			order, err := client.Orders().Retrieve(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to get order: %w", err)
			}

			return renderOrder(cmd, order)
		},
	}
}

// renderOrder prints one order with its line items and charges.
func renderOrder(cmd *cobra.Command, order *conekta.Order) error {
	return renderOutput(cmd, order, func(out io.Writer) error {
		rows := [][]string{
			{"ID", order.ID},
			{"Status", valueOrDash(order.PaymentStatus)},
			{"Amount", formatAmount(order.Amount, order.Currency)},
			{"Refunded", formatAmount(order.AmountRefunded, order.Currency)},
			{"Live", strconv.FormatBool(order.Livemode)},
			{"Created", formatTimestamp(order.CreatedAt)},
			{"Updated", formatTimestamp(order.UpdatedAt)},
		}

		if order.CustomerInfo != nil {
			rows = append(rows,
				[]string{"Customer", valueOrDash(order.CustomerInfo.Name)},
				[]string{"Email", valueOrDash(order.CustomerInfo.Email)},
			)
		}

		err := renderTable(out, []string{"Property", "Value"}, rows)
		if err != nil {
			return err
		}

		if order.LineItems != nil && order.LineItems.Len() > 0 {
			fmt.Fprintln(out, "\nLine items:")

			err = renderTable(out, lineItemHeader, lineItemRows(order.LineItems.Data, order.Currency))
			if err != nil {
				return err
			}
		}

		if order.Charges != nil && order.Charges.Len() > 0 {
			fmt.Fprintln(out, "\nCharges:")

			chargeRows := make([][]string, 0, order.Charges.Len())
			for _, charge := range order.Charges.Data {
				method := "-"
				if charge.PaymentMethod != nil {
					method = charge.PaymentMethod.Type
					if charge.PaymentMethod.Last4 != "" {
						method += " " + charge.PaymentMethod.Last4
					}
				}

				chargeRows = append(chargeRows, []string{
					charge.ID,
					valueOrDash(charge.Status),
					formatAmount(charge.Amount, charge.Currency),
					method,
				})
			}

			return renderTable(out, []string{"ID", "Status", "Amount", "Payment Method"}, chargeRows)
		}

		return nil
	})
}

// orderAction is an OrdersClient method taking only an order id.
type orderAction func(conekta.OrdersClient, context.Context, string) (*conekta.Order, error)

func newOrdersActionCommand(use, short, successMessage string, action orderAction) *cobra.Command {
	return &cobra.Command{
		Use:   use + " ORDER_ID",
		Short: short,
		Long:  short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			order, err := action(client.Orders(), commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to %s order: %w", use, err)
			}

			return renderOutput(cmd, order, func(out io.Writer) error {
				_, err := fmt.Fprintf(out, successMessage+" (%s)\n", order.ID, valueOrDash(order.PaymentStatus))

				return err
			})
		},
	}
}

func newOrdersRefundCommand() *cobra.Command {
	var (
		reason string
		amount string
	)

	cmd := &cobra.Command{
		Use:   "refund ORDER_ID",
		Short: "Refund an order",
		Long:  "Refund an order fully, or partially when --amount is given (e.g. --amount 12.50)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := &conekta.RefundParams{Reason: reason}

			if amount != "" {
				cents, err := parseAmount(amount)
				if err != nil {
					return err
				}

				params.Amount = &cents
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			order, err := client.Orders().Refund(commandContext(cmd), args[0], params)
			if err != nil {
				return fmt.Errorf("failed to refund order: %w", err)
			}

			return renderOutput(cmd, order, func(out io.Writer) error {
				_, err := fmt.Fprintf(out, "Order %s refunded: %s of %s (%s)\n",
					order.ID,
					formatAmount(order.AmountRefunded, order.Currency),
					formatAmount(order.Amount, order.Currency),
					valueOrDash(order.PaymentStatus),
				)

				return err
			})
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "requested_by_client", "refund reason")
	cmd.Flags().StringVar(&amount, "amount", "", "partial refund amount in currency units")

	return cmd
}

var lineItemHeader = []string{"ID", "Name", "SKU", "Quantity", "Unit Price", "Amount"}

func lineItemRows(items []conekta.LineItem, currency string) [][]string {
	rows := make([][]string, 0, len(items))

	for _, item := range items {
		amount := item.Amount
		if amount == 0 {
			amount = item.UnitPrice * item.Quantity
		}

		rows = append(rows, []string{
			item.ID,
			item.Name,
			valueOrDash(item.SKU),
			strconv.FormatInt(item.Quantity, 10),
			formatAmount(item.UnitPrice, currency),
			formatAmount(amount, currency),
		})
	}

	return rows
}

func newOrdersLineItemsCommand() *cobra.Command {
	var (
		flags    pageFlags
		currency string
	)

	cmd := &cobra.Command{
		Use:     "line-items ORDER_ID",
		Aliases: []string{"items"},
		Short:   "List the line items of an order",
		Long:    "List the line items of an order, following pagination under the order",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			req, err := flags.request()
			if err != nil {
				return err
			}

			page, err := client.Orders().LineItems().Page(commandContext(cmd), args[0], req)
			if err != nil {
				return fmt.Errorf("failed to list line items: %w", err)
			}

			items, err := collectPages(cmd, &flags, page)
			if err != nil {
				return err
			}

			return renderOutput(cmd, items, func(out io.Writer) error {
				if len(items) == 0 {
					fmt.Fprintln(out, "No line items found")

					return nil
				}

				err := renderTable(out, lineItemHeader, lineItemRows(items, currency))
				if err != nil {
					return err
				}

				printCursors(out, &flags, page)

				return nil
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&currency, "currency", "", "currency shown next to amounts")

	return cmd
}
