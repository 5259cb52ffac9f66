package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/exograd/eventline-go/internal/constants"
)

const (
	defaultIndent = 2

	timeLayout = "2006-01-02 15:04:05"
)

// OutputFormat returns the --output format. Without an explicit format, tables
// are rendered on terminals and JSON everywhere else.
func OutputFormat(out io.Writer) (string, error) {
	format := viper.GetString("output")

	switch format {
	case "":
		if isTerminal(out) {
			return constants.FormatTable, nil
		}

		return constants.FormatJSON, nil
	case constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
		return format, nil
	default:
		return "", fmt.Errorf("%w %q, use table, json or yaml", constants.ErrUnknownFormat, format)
	}
}

func isTerminal(out io.Writer) bool {
	file, ok := out.(*os.File)

	return ok && term.IsTerminal(int(file.Fd()))
}

// Table is the tabular rendering of a value.
type Table struct {
	Header []string
	Rows   [][]string
}

// AddRow appends a row.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// Render writes data to the command output in the selected format; table is
// only used for the table format.
func Render(cmd *cobra.Command, data interface{}, table *Table) error {
	out := cmd.OutOrStdout()

	format, err := OutputFormat(out)
	if err != nil {
		return err
	}

	switch format {
	case constants.FormatJSON:
		return RenderJSON(out, data)
	case constants.FormatYAML:
		return RenderYAML(out, data)
	default:
		return RenderTable(out, table)
	}
}

// RenderJSON writes data as indented JSON.
func RenderJSON(out io.Writer, data interface{}) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// RenderYAML writes data as YAML.
func RenderYAML(out io.Writer, data interface{}) error {
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(defaultIndent)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return encoder.Close()
}

// RenderTable writes table with tablewriter.
func RenderTable(out io.Writer, table *Table) error {
	writer := tablewriter.NewWriter(out)
	writer.Header(cells(table.Header)...)

	for _, row := range table.Rows {
		err := writer.Append(cells(row)...)
		if err != nil {
			return fmt.Errorf("failed to append table row: %w", err)
		}
	}

	err := writer.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func cells(values []string) []interface{} {
	result := make([]interface{}, len(values))
	for i, value := range values {
		result[i] = value
	}

	return result
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return constants.NotAvailable
	}

	return t.UTC().Format(timeLayout)
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return constants.NotAvailable
	}

	return formatTime(*t)
}

func formatOptionalString(s *string) string {
	if s == nil || *s == "" {
		return constants.NotAvailable
	}

	return *s
}

func formatBool(b bool) string {
	if b {
		return constants.BooleanTrue
	}

	return constants.BooleanFalse
}
