// Package output provides utilities for formatting and displaying
// amortization schedules.
package output

import (
	"fmt"

	"github.com/GuilhermeDReis/finch/pkg/finance"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(schedule []finance.Installment) {
	p := message.NewPrinter(language.English)
	fmt.Printf("# | Payment       | Interest      | Principal     | Balance\n")
	fmt.Printf("_ | _____________ | _____________ | _____________ | _____________\n")
	for _, row := range schedule {
		_, _ = p.Printf("%d | $%.2f | $%.2f | $%.2f | $%.2f\n",
			row.Number, row.Payment, row.Interest, row.Principal, row.RemainingBalance)
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(schedule []finance.Installment) {
	fmt.Printf("\"installment\",\"payment\",\"interest\",\"principal\",\"remaining balance\"\n")
	for _, row := range schedule {
		fmt.Printf("\"%d\",\"%.2f\",\"%.2f\",\"%.2f\",\"%.2f\"\n",
			row.Number, row.Payment, row.Interest, row.Principal, row.RemainingBalance)
	}
}
