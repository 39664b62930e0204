package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var getJSON bool

var getCmd = &cobra.Command{
	Use:     "get <kind> <id>",
	Short:   "Show a single catalog record",
	Example: "  folio get tool 1",
	Args:    cobra.ExactArgs(2),
	RunE:    runGet,
}

func init() {
	getCmd.Flags().BoolVar(&getJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	kind, err := parseKindArg(args[0])
	if err != nil {
		return err
	}
	id, err := parseIDArg(args[1])
	if err != nil {
		return err
	}

	reg, _, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	entry, err := reg.Lookup(kind, id)
	if err != nil {
		return err
	}

	if getJSON {
		return printJSON(cmd, entry)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Kind: %s\n", entry.Kind)
	fmt.Fprintf(out, "ID:   %d\n", entry.ID)
	fmt.Fprintf(out, "Name: %s\n", entry.Name)
	if entry.URL != "" {
		fmt.Fprintf(out, "URL:  %s\n", entry.URL)
	}
	return nil
}
