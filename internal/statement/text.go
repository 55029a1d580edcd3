package statement

import (
	"fmt"
	"strings"

	"github.com/metinatakli/theatrical-statements/internal/domain"
)

func (p *Printer) PrintText(stmt domain.Statement) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Statement for %s\n", stmt.Customer)

	for _, line := range stmt.Lines {
		fmt.Fprintf(&b, "  %s: $%s (%d seats)\n", line.PlayName, groupedAmount(line.Amount), line.Audience)
	}

	fmt.Fprintf(&b, "Amount owed is $%s\n", groupedAmount(stmt.AmountOwed))
	fmt.Fprintf(&b, "You earned %s credits\n", stmt.EarnedCredits.String())

	return b.String()
}
