package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/folio-labs/folio/internal/project"
)

var resolveJSON bool

var resolveCmd = &cobra.Command{
	Use:   "resolve <project-id>",
	Short: "Resolve a project's tags, tools, and materials",
	Long: `Look up every id a project references and print the full records.
Fails if any referenced id is missing from the catalog.`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	id, err := parseIDArg(args[0])
	if err != nil {
		return err
	}

	reg, summary, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	p, err := summary.Projects.Find(id)
	if err != nil {
		return err
	}
	resolved, err := project.Resolve(reg, p)
	if err != nil {
		return err
	}

	if resolveJSON {
		return printJSON(cmd, resolved)
	}
	printResolved(cmd.OutOrStdout(), resolved)
	return nil
}

func printResolved(w io.Writer, r *project.Resolved) {
	title := r.Title
	if title == "" {
		title = "(untitled)"
	}
	fmt.Fprintf(w, "Project %d: %s\n", r.ID, title)

	names := make([]string, 0, len(r.Tags))
	for _, t := range r.Tags {
		names = append(names, t.Name)
	}
	if len(names) == 0 {
		fmt.Fprintln(w, "Tags:      -")
	} else {
		fmt.Fprintf(w, "Tags:      %s\n", strings.Join(names, ", "))
	}

	fmt.Fprintln(w, "Tools:")
	if len(r.Tools) == 0 {
		fmt.Fprintln(w, "  -")
	}
	for _, t := range r.Tools {
		printLinked(w, t.Name, t.URL)
	}

	fmt.Fprintln(w, "Materials:")
	if len(r.Materials) == 0 {
		fmt.Fprintln(w, "  -")
	}
	for _, m := range r.Materials {
		printLinked(w, m.Name, m.URL)
	}
}

func printLinked(w io.Writer, name, url string) {
	if url == "" {
		fmt.Fprintf(w, "  %s\n", name)
		return
	}
	fmt.Fprintf(w, "  %s <%s>\n", name, url)
}
