package domain

import "github.com/shopspring/decimal"

// Statement is the read-only view of a calculated invoice that renderers
// consume.
type Statement struct {
	Customer      string
	Lines         []StatementLine
	AmountOwed    decimal.Decimal
	EarnedCredits decimal.Decimal
}

type StatementLine struct {
	PlayName string
	Genre    Genre
	Audience int
	Amount   decimal.Decimal
	Credits  decimal.Decimal
}
