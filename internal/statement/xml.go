package statement

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/metinatakli/theatrical-statements/internal/domain"
	"github.com/shopspring/decimal"
)

const xmlHeader = `<?xml version="1.0" encoding="utf-8"?>` + "\n"

type xmlStatement struct {
	XMLName       xml.Name `xml:"Statement"`
	Customer      string   `xml:"Customer"`
	Items         xmlItems `xml:"Items"`
	AmountOwed    string   `xml:"AmountOwed"`
	EarnedCredits string   `xml:"EarnedCredits"`
}

type xmlItems struct {
	Items []xmlItem `xml:"Item"`
}

type xmlItem struct {
	Play          string `xml:"Play"`
	Genre         string `xml:"Genre,omitempty"`
	AmountOwed    string `xml:"AmountOwed"`
	EarnedCredits string `xml:"EarnedCredits"`
	Seats         int    `xml:"Seats"`
}

func (p *Printer) PrintXML(stmt domain.Statement) (string, error) {
	doc := xmlStatement{
		Customer:      stmt.Customer,
		AmountOwed:    fixedAmount(stmt.AmountOwed),
		EarnedCredits: stmt.EarnedCredits.String(),
		Items:         xmlItems{Items: make([]xmlItem, len(stmt.Lines))},
	}

	for i, line := range stmt.Lines {
		doc.Items.Items[i] = xmlItem{
			Play:          line.PlayName,
			Genre:         line.Genre.String(),
			AmountOwed:    fixedAmount(line.Amount),
			EarnedCredits: line.Credits.String(),
			Seats:         line.Audience,
		}
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal xml statement: %w", err)
	}

	return xmlHeader + string(out) + "\n", nil
}

// ParseXML reads a statement produced by PrintXML. Amounts come back rounded
// to the two places they were printed with.
func ParseXML(r io.Reader) (domain.Statement, error) {
	var doc xmlStatement

	err := xml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return domain.Statement{}, fmt.Errorf("decode xml statement: %w", err)
	}

	stmt := domain.Statement{
		Customer: doc.Customer,
		Lines:    make([]domain.StatementLine, len(doc.Items.Items)),
	}

	stmt.AmountOwed, err = decimal.NewFromString(doc.AmountOwed)
	if err != nil {
		return domain.Statement{}, fmt.Errorf("parse amount owed: %w", err)
	}

	stmt.EarnedCredits, err = decimal.NewFromString(doc.EarnedCredits)
	if err != nil {
		return domain.Statement{}, fmt.Errorf("parse earned credits: %w", err)
	}

	for i, item := range doc.Items.Items {
		line := domain.StatementLine{
			PlayName: item.Play,
			Genre:    domain.Genre(item.Genre),
			Audience: item.Seats,
		}

		line.Amount, err = decimal.NewFromString(item.AmountOwed)
		if err != nil {
			return domain.Statement{}, fmt.Errorf("parse amount of %q: %w", item.Play, err)
		}

		line.Credits, err = decimal.NewFromString(item.EarnedCredits)
		if err != nil {
			return domain.Statement{}, fmt.Errorf("parse credits of %q: %w", item.Play, err)
		}

		stmt.Lines[i] = line
	}

	return stmt, nil
}
