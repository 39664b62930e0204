package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/folio-labs/folio/internal/catalog"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show catalog location and record counts",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	reg, summary, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	counts := reg.Counts()
	fmt.Fprintf(out, "Catalog:   %s\n", summary.Source)
	fmt.Fprintf(out, "Version:   %s\n", summary.Version)
	fmt.Fprintf(out, "Tags:      %d\n", counts[catalog.KindTag])
	fmt.Fprintf(out, "Tools:     %d\n", counts[catalog.KindTool])
	fmt.Fprintf(out, "Materials: %d\n", counts[catalog.KindMaterial])
	fmt.Fprintf(out, "Projects:  %d\n", summary.Projects.Len())
	return nil
}
