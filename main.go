package main

import (
	"github.com/lehigh-university-libraries/authorlist/cmd"

	// Register spreadsheet readers
	_ "github.com/lehigh-university-libraries/authorlist/table/csv"
	_ "github.com/lehigh-university-libraries/authorlist/table/ods"
	_ "github.com/lehigh-university-libraries/authorlist/table/xlsx"
)

func main() {
	cmd.Execute()
}
