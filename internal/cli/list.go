package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/folio-labs/folio/internal/catalog"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list <kind>",
	Short: "List catalog records of one kind",
	Long: `List every tag, tool, or material in the catalog, in the order the
records were first added.`,
	Example: "  folio list tools\n  folio list tags --json",
	Args:    cobra.ExactArgs(1),
	RunE:    runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	kind, err := parseKindArg(args[0])
	if err != nil {
		return err
	}

	reg, _, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	entries, err := reg.Entries(kind)
	if err != nil {
		return err
	}

	if listJSON {
		return printJSON(cmd, entries)
	}
	if len(entries) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No %ss in the catalog.\n", kind)
		return nil
	}
	return printEntryTable(cmd, kind, entries)
}

func printEntryTable(cmd *cobra.Command, kind catalog.Kind, entries []catalog.Entry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	if kind == catalog.KindTag {
		fmt.Fprintln(w, "ID\tNAME")
		for _, e := range entries {
			fmt.Fprintf(w, "%d\t%s\n", e.ID, e.Name)
		}
		return w.Flush()
	}

	fmt.Fprintln(w, "ID\tNAME\tURL")
	for _, e := range entries {
		url := e.URL
		if url == "" {
			url = "-"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\n", e.ID, e.Name, url)
	}
	return w.Flush()
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
