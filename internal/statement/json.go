package statement

import (
	"encoding/json"
	"fmt"

	"github.com/metinatakli/theatrical-statements/internal/domain"
)

type jsonStatement struct {
	Customer      string     `json:"customer"`
	Items         []jsonItem `json:"items"`
	AmountOwed    string     `json:"amountOwed"`
	EarnedCredits string     `json:"earnedCredits"`
}

type jsonItem struct {
	Play          string `json:"play"`
	Genre         string `json:"genre"`
	Seats         int    `json:"seats"`
	AmountOwed    string `json:"amountOwed"`
	EarnedCredits string `json:"earnedCredits"`
}

func (p *Printer) PrintJSON(stmt domain.Statement) (string, error) {
	doc := jsonStatement{
		Customer:      stmt.Customer,
		Items:         make([]jsonItem, len(stmt.Lines)),
		AmountOwed:    fixedAmount(stmt.AmountOwed),
		EarnedCredits: stmt.EarnedCredits.String(),
	}

	for i, line := range stmt.Lines {
		doc.Items[i] = jsonItem{
			Play:          line.PlayName,
			Genre:         line.Genre.String(),
			Seats:         line.Audience,
			AmountOwed:    fixedAmount(line.Amount),
			EarnedCredits: line.Credits.String(),
		}
	}

	out, err := json.MarshalIndent(doc, "", "\t")
	if err != nil {
		return "", fmt.Errorf("marshal json statement: %w", err)
	}

	return string(out) + "\n", nil
}
