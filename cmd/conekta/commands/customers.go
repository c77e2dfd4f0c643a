package commands

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/nysertxs/conekta-go/pkg/conekta"
	"github.com/spf13/cobra"
)

// NewCustomersCommand creates the customers command group.
func NewCustomersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "customers",
		Aliases: []string{"customer", "cus"},
		Short:   "Manage customers",
		Long:    "List and inspect Conekta customers",
	}

	cmd.AddCommand(newCustomersListCommand())
	cmd.AddCommand(newCustomersGetCommand())

	return cmd
}

func newCustomersListCommand() *cobra.Command {
	var flags pageFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List customers",
		Long:  "List customers with optional search and filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			req, err := flags.request()
			if err != nil {
				return err
			}

			page, err := client.Customers().Page(commandContext(cmd), req)
			if err != nil {
				return fmt.Errorf("failed to list customers: %w", err)
			}

			customers, err := collectPages(cmd, &flags, page)
			if err != nil {
				return err
			}

			return renderOutput(cmd, customers, func(out io.Writer) error {
				if len(customers) == 0 {
					fmt.Fprintln(out, "No customers found")

					return nil
				}

				rows := make([][]string, 0, len(customers))
				for _, customer := range customers {
					rows = append(rows, []string{
						customer.ID,
						customer.Name,
						valueOrDash(customer.Email),
						valueOrDash(customer.Phone),
						formatTimestamp(customer.CreatedAt),
					})
				}

				err := renderTable(out, []string{"ID", "Name", "Email", "Phone", "Created"}, rows)
				if err != nil {
					return err
				}

				printCursors(out, &flags, page)

				return nil
			})
		},
	}

	flags.register(cmd)

	return cmd
}

func newCustomersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CUSTOMER_ID",
		Short: "Get customer details",
		Long:  "Display a customer and its metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			customer, err := client.Customers().Retrieve(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to get customer: %w", err)
			}

			return renderOutput(cmd, customer, func(out io.Writer) error {
				return renderTable(out, []string{"Property", "Value"}, customerRows(customer))
			})
		},
	}
}

func customerRows(customer *conekta.Customer) [][]string {
	rows := [][]string{
		{"ID", customer.ID},
		{"Name", customer.Name},
		{"Email", valueOrDash(customer.Email)},
		{"Phone", valueOrDash(customer.Phone)},
		{"Corporate", strconv.FormatBool(customer.Corporate)},
		{"Live", strconv.FormatBool(customer.Livemode)},
		{"Created", formatTimestamp(customer.CreatedAt)},
	}

	keys := make([]string, 0, len(customer.Metadata))
	for key := range customer.Metadata {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		rows = append(rows, []string{"metadata." + key, customer.Metadata[key]})
	}

	return rows
}
