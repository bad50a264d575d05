package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/authorlist/table"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List supported spreadsheet formats",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tEXTENSIONS\tDESCRIPTION")
		for _, name := range table.List() {
			f, _ := table.Get(name)
			fmt.Fprintf(w, "%s\t%s\t%s\n", name, strings.Join(f.Extensions(), ", "), f.Description())
		}
		return w.Flush()
	},
}
