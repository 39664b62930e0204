package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/folio-labs/folio/internal/catalog"
	"github.com/folio-labs/folio/internal/config"
	"github.com/folio-labs/folio/internal/importer"
	"github.com/folio-labs/folio/internal/manifest"
	"github.com/folio-labs/folio/internal/project"
)

var validateStrict bool

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a catalog file for errors",
	Long: `Validate a catalog file against the catalog schema, check its format
version, and load it into a scratch registry.

Duplicate ids and project references to missing records are reported as
warnings. Use --strict to treat warnings as errors.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "Fail on warnings")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := config.CatalogFile(catalogPath)
	if len(args) == 1 {
		path = args[0]
	}

	out := cmd.OutOrStdout()
	okColor := color.New(color.FgGreen)
	errColor := color.New(color.FgRed)
	warnColor := color.New(color.FgYellow)

	result, err := manifest.ValidateFile(path)
	if err != nil {
		return err
	}
	if !result.Valid {
		errColor.Fprintf(out, "✗ %s has %d schema issue(s):\n", path, len(result.Issues))
		for _, issue := range result.Issues {
			fmt.Fprintf(out, "  %s\n", issue)
		}
		return fmt.Errorf("%s failed schema validation", path)
	}

	doc, err := manifest.Parse(path)
	if err != nil {
		return err
	}
	if err := manifest.CheckVersion(doc); err != nil {
		errColor.Fprintf(out, "✗ %v\n", err)
		return fmt.Errorf("%s has an unsupported version", path)
	}

	// The command reports problems itself, so the scratch load stays quiet.
	reg := catalog.New()
	summary, err := importer.New(reg, zap.NewNop()).Load(cmd.Context(), doc)
	if err != nil {
		errColor.Fprintf(out, "✗ %v\n", err)
		return fmt.Errorf("%s contains invalid records", path)
	}

	warnings := 0
	duplicates := doc.DuplicateIDs()
	for _, kind := range catalog.AllKinds() {
		if ids := duplicates[kind]; len(ids) > 0 {
			warnColor.Fprintf(out, "! duplicate %s ids %v (last occurrence wins)\n", kind, ids)
			warnings++
		}
	}
	for _, p := range summary.Projects.All() {
		dangling := project.Dangling(reg, p)
		for _, kind := range catalog.AllKinds() {
			if ids := dangling[kind]; len(ids) > 0 {
				warnColor.Fprintf(out, "! project %d references missing %s ids %v\n", p.ID, kind, ids)
				warnings++
			}
		}
	}

	if warnings > 0 && validateStrict {
		errColor.Fprintf(out, "✗ %s has %d warning(s)\n", path, warnings)
		return fmt.Errorf("%s failed strict validation", path)
	}

	okColor.Fprintf(out, "✓ %s is valid", path)
	if warnings > 0 {
		fmt.Fprintf(out, " (%d warning(s))", warnings)
	}
	fmt.Fprintln(out)
	return nil
}
