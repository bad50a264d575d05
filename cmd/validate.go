package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/authorlist/authorlist"
	"github.com/lehigh-university-libraries/authorlist/validate"
)

var (
	validateSchema  string
	validateVerbose bool
)

// errInvalid is returned after the verdict has been printed.
var errInvalid = errors.New("document failed validation")

var validateCmd = &cobra.Command{
	Use:   "validate <document>",
	Short: "Validate an author list against an XSD schema",
	Long: `Validate an existing author-list document against an XSD schema.

The verdict is printed to stdout and the exit status is non-zero when the
document is invalid or validation could not run.

Examples:
  authorlist validate authors.xml --schema authors.xsd
  authorlist validate authors.xml --schema authors.xsd --verbose`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(args[0], validateSchema, validateVerbose, cmd.OutOrStdout())
	},
}

func init() {
	validateCmd.Flags().StringVar(&validateSchema, "schema", "", "XSD schema file")
	validateCmd.Flags().BoolVarP(&validateVerbose, "verbose", "v", false, "List every violation and check cross references")
	_ = validateCmd.MarkFlagRequired("schema")
}

func runValidate(docPath, schemaPath string, verbose bool, stdout io.Writer) error {
	result := validate.File(docPath, schemaPath)
	fmt.Fprintln(stdout, result.Verdict())

	if verbose {
		for i, e := range result.Errors {
			fmt.Fprintf(stdout, "  %d. %s\n", i+1, e)
		}
		if err := checkReferences(docPath, stdout); err != nil {
			return err
		}
	}

	if result.Err != nil {
		return result.Err
	}
	if !result.Valid {
		return errInvalid
	}
	return nil
}

// checkReferences reports dangling identifier references, which an XSD
// cannot express.
func checkReferences(docPath string, stdout io.Writer) (err error) {
	f, err := os.Open(docPath)
	if err != nil {
		return fmt.Errorf("opening document: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing document: %w", cerr)
		}
	}()

	doc, err := authorlist.Parse(f)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "\nDocument summary:\n")
	fmt.Fprintf(stdout, "  Organizations: %d\n", len(doc.Organizations.Items))
	fmt.Fprintf(stdout, "  Authors: %d\n", len(doc.Authors.Persons))

	if err := doc.Check(); err != nil {
		fmt.Fprintf(stdout, "  References: %s\n", err)
		return errInvalid
	}
	fmt.Fprintln(stdout, "  References: ok")
	return nil
}
