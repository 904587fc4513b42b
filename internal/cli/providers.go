package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tessro/sift/internal/provider"
)

var providersFormat string

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List the supported provider adapters",
	Long:  "List each adapter's terminal event, audit skip set, and accumulation behavior.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeProviders(cmd.OutOrStdout(), provider.Infos(), providersFormat)
	},
}

func writeProviders(w io.Writer, infos []provider.Info, format string) error {
	switch strings.ToLower(format) {
	case "", "table":
		return writeProvidersTable(w, infos)
	case "plain":
		return writeProvidersPlain(w, infos)
	case "yaml":
		return writeProvidersYAML(w, infos)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func writeProvidersTable(w io.Writer, infos []provider.Info) error {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	tw.Style().Options.SeparateHeader = true

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignCenter},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignCenter},
		{Number: 3, Align: text.AlignLeft, AlignHeader: text.AlignCenter},
		{Number: 4, Align: text.AlignCenter, AlignHeader: text.AlignCenter},
		{Number: 5, Align: text.AlignLeft, AlignHeader: text.AlignCenter, WidthMax: 60},
	})

	tw.AppendHeader(table.Row{"Provider", "Terminal Event", "Skips", "Accumulates", "Notes"})
	for _, info := range infos {
		tw.AppendRow(table.Row{
			info.Name,
			orDash(info.TerminalEvent),
			orDash(strings.Join(info.SkipEventTypes, ", ")),
			yesNo(info.Accumulates),
			orDash(info.Notes),
		})
	}

	_ = tw.Render()
	return nil
}

func writeProvidersPlain(w io.Writer, infos []provider.Info) error {
	for _, info := range infos {
		line := fmt.Sprintf("%s\t%s\t%s\t%s",
			info.Name,
			orDash(info.TerminalEvent),
			orDash(strings.Join(info.SkipEventTypes, ",")),
			yesNo(info.Accumulates),
		)
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func writeProvidersYAML(w io.Writer, infos []provider.Info) error {
	return yaml.NewEncoder(w).Encode(infos)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func init() {
	providersCmd.Flags().StringVar(&providersFormat, "format", "table", "output format: table, plain, or yaml")
	rootCmd.AddCommand(providersCmd)
}
