package commands

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/goccy/go-json"
	"github.com/nysertxs/conekta-go/internal/constants"
	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Static errors for err113 compliance.
var (
	ErrUnknownOutput = errors.New("unknown output format")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidFilter = errors.New("filter must be key=value")
)

const timeLayout = "2006-01-02 15:04:05"

// renderOutput writes data in the selected output format. The table
// format is delegated to renderTable.
func renderOutput(cmd *cobra.Command, data interface{}, renderTable func(io.Writer) error) error {
	out := cmd.OutOrStdout()

	output := viper.GetString(keyOutput)
	switch output {
	case constants.OutputJSON:
		encoded, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}

		_, err = fmt.Fprintln(out, string(encoded))

		return err
	case constants.OutputYAML:
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)

		err := encoder.Encode(data)
		if err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}

		return encoder.Close()
	case constants.OutputTable, "":
		return renderTable(out)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownOutput, output)
	}
}

// renderTable writes one table with the given header and rows.
func renderTable(out io.Writer, header []string, rows [][]string) error {
	table := tablewriter.NewWriter(out)
	table.Header(cells(header)...)

	for _, row := range rows {
		_ = table.Append(cells(row)...)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func cells(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, value := range values {
		out[i] = value
	}

	return out
}

// formatAmount renders an amount in cents as "35.00 MXN".
func formatAmount(cents int64, currency string) string {
	amount := decimal.New(cents, -2).StringFixed(2)
	if currency == "" {
		return amount
	}

	return amount + " " + currency
}

// parseAmount converts a decimal amount such as "12.5" into cents.
func parseAmount(value string) (int64, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrInvalidAmount, value, err)
	}

	cents := amount.Shift(2)
	if !cents.IsPositive() || !cents.Equal(cents.Truncate(0)) {
		return 0, fmt.Errorf("%w %q: must be positive with at most two decimals", ErrInvalidAmount, value)
	}

	return cents.IntPart(), nil
}

// formatTimestamp renders a Unix timestamp in UTC, or "" for zero.
func formatTimestamp(unix int64) string {
	if unix == 0 {
		return ""
	}

	return time.Unix(unix, 0).UTC().Format(timeLayout)
}

func valueOrDash(value string) string {
	if value == "" {
		return "-"
	}

	return value
}
