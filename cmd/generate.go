package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/authorlist/authorlist"
	"github.com/lehigh-university-libraries/authorlist/config"
	"github.com/lehigh-university-libraries/authorlist/helpers"
	"github.com/lehigh-university-libraries/authorlist/profile"
	"github.com/lehigh-university-libraries/authorlist/roster"
	"github.com/lehigh-university-libraries/authorlist/table"
	"github.com/lehigh-university-libraries/authorlist/validate"
)

// DefaultOutput is written in the working directory when -o is not given.
const DefaultOutput = "authors.xml"

// generateOptions holds everything one generate run needs.
type generateOptions struct {
	Spreadsheet string
	ConfigPath  string
	SchemaPath  string
	Output      string
	ProfileName string
	ProfileFile string
	Ordering    string
	Collation   string
	Sheet       string
	Format      string
	NoHeader    bool

	// Now stamps cal:creationDate (default: time.Now)
	Now func() time.Time
	// Stderr receives configuration diagnostics (default: os.Stderr)
	Stderr io.Writer
}

var genOpts generateOptions

var generateCmd = &cobra.Command{
	Use:   "generate <spreadsheet>",
	Short: "Generate an author list from a spreadsheet",
	Long: `Read an author spreadsheet and write an INSPIRE author-list document.

Arguments:
  spreadsheet  Author sheet (.ods, .xlsx, .csv, .tsv)

The publication reference is read from the pub_ref key of the TOML file
given with --toml. A missing or unreadable file is reported and the
reference is left empty.

With --schema the written document is validated and the verdict printed.
Validation never changes or removes the written file.

Examples:
  authorlist generate authors.ods --toml paper.toml
  authorlist generate authors.xlsx --profile collaboration -o list.xml
  authorlist generate authors.csv --ordering first-seen --schema authors.xsd`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := genOpts
		opts.Spreadsheet = args[0]
		opts.Stderr = cmd.ErrOrStderr()
		return runGenerate(opts, cmd.OutOrStdout())
	},
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&genOpts.ConfigPath, "toml", "", "TOML file with the pub_ref key")
	f.StringVar(&genOpts.SchemaPath, "schema", "", "XSD schema to validate the output against")
	f.StringVarP(&genOpts.Output, "output", "o", DefaultOutput, "Output file")
	f.StringVarP(&genOpts.ProfileName, "profile", "p", "", "Output profile name (default: minimal)")
	f.StringVar(&genOpts.ProfileFile, "profile-file", "", "Custom profile YAML file")
	f.StringVar(&genOpts.Ordering, "ordering", "", "Override affiliation ordering (first-seen, lexicographic)")
	f.StringVar(&genOpts.Collation, "collation", "", "Override lexicographic collation (codepoint, unicode)")
	f.StringVar(&genOpts.Sheet, "sheet", "", "Worksheet name (default: first sheet)")
	f.StringVar(&genOpts.Format, "format", "", "Spreadsheet format (default: detect from extension)")
	f.BoolVar(&genOpts.NoHeader, "no-header", false, "First row is data, not column titles")
}

func runGenerate(opts generateOptions, stdout io.Writer) error {
	p, err := resolveProfile(opts)
	if err != nil {
		return err
	}

	readOpts := table.NewReadOptions()
	readOpts.Format = opts.Format
	readOpts.Sheet = opts.Sheet
	readOpts.Header = !opts.NoHeader

	rows, err := table.Load(opts.Spreadsheet, readOpts)
	if err != nil {
		return err
	}

	for i, row := range rows {
		if !row.ExternalID.Valid {
			continue
		}
		if err := helpers.CheckORCID(row.ExternalID.Value); err != nil {
			slog.Warn("suspicious author identifier", "row", i+1, "family", row.FamilyName.String(), "err", err)
		}
	}

	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	var stderr io.Writer = os.Stderr
	if opts.Stderr != nil {
		stderr = opts.Stderr
	}

	doc, idx := authorlist.Generate(rows, authorlist.BuildOptions{
		Profile:              p,
		Created:              now(),
		PublicationReference: config.PublicationReferenceTo(stderr, opts.ConfigPath),
	})

	output := opts.Output
	if output == "" {
		output = DefaultOutput
	}
	data, err := authorlist.WriteFile(output, doc)
	if err != nil {
		return err
	}

	slog.Info("wrote author list",
		"path", output,
		"profile", p.Name,
		"authors", len(doc.Authors.Persons),
		"organizations", idx.Len())

	if opts.SchemaPath == "" {
		return nil
	}

	result := validate.Bytes(data, opts.SchemaPath)
	if result.Err != nil {
		slog.Warn("validation did not run", "schema", opts.SchemaPath, "err", result.Err)
	}
	fmt.Fprintln(stdout, result.Verdict())
	return nil
}

func resolveProfile(opts generateOptions) (*profile.Profile, error) {
	registry, err := loadProfiles()
	if err != nil {
		return nil, err
	}

	p, err := registry.Resolve(opts.ProfileName, opts.ProfileFile)
	if err != nil {
		return nil, err
	}

	if opts.Ordering != "" {
		p.Ordering = roster.Ordering(opts.Ordering)
	}
	if opts.Collation != "" {
		p.Collation = roster.Collation(opts.Collation)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	slog.Debug("using profile", "name", p.Name, "ordering", p.Ordering, "collation", p.Collation)
	return p, nil
}
