package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/folio-labs/folio/internal/project"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List projects and their attachment counts",
	Long: `List the projects declared in the catalog file. The DANGLING column
counts referenced ids that are missing from the catalog.`,
	Args: cobra.NoArgs,
	RunE: runProjects,
}

func init() {
	rootCmd.AddCommand(projectsCmd)
}

func runProjects(cmd *cobra.Command, args []string) error {
	reg, summary, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	projects := summary.Projects.All()
	if len(projects) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No projects in the catalog.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tTAGS\tTOOLS\tMATERIALS\tDANGLING")
	for _, p := range projects {
		dangling := 0
		for _, ids := range project.Dangling(reg, p) {
			dangling += len(ids)
		}
		title := p.Title
		if title == "" {
			title = "-"
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\t%d\n", p.ID, title, len(p.Tags), len(p.Tools), len(p.Materials), dangling)
	}
	return w.Flush()
}
