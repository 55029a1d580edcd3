// Package statement renders calculated invoices for customers.
package statement

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/metinatakli/theatrical-statements/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var ErrUnknownFormat = errors.New("unknown statement format")

type Format string

const (
	FormatText Format = "text"
	FormatXML  Format = "xml"
	FormatJSON Format = "json"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatXML, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// ContentType is the media type a rendered statement is served with.
func (f Format) ContentType() string {
	switch f {
	case FormatXML:
		return "application/xml; charset=utf-8"
	case FormatJSON:
		return "application/json"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Printer renders statements. The zero value is ready to use and safe for
// concurrent use.
type Printer struct{}

func NewPrinter() *Printer {
	return &Printer{}
}

func (p *Printer) Print(format Format, stmt domain.Statement) (string, error) {
	switch format {
	case FormatText:
		return p.PrintText(stmt), nil
	case FormatXML:
		return p.PrintXML(stmt)
	case FormatJSON:
		return p.PrintJSON(stmt)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// roundAmount applies the rounding every format shares: two places, half
// away from zero.
func roundAmount(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

func fixedAmount(d decimal.Decimal) string {
	return roundAmount(d).StringFixed(2)
}

// groupedAmount formats d as 1,234.50. Only the whole part goes through the
// locale printer; the cents come from the exact decimal string.
func groupedAmount(d decimal.Decimal) string {
	whole, cents, _ := strings.Cut(fixedAmount(d), ".")

	sign := ""
	if rest, ok := strings.CutPrefix(whole, "-"); ok {
		sign, whole = "-", rest
	}

	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		// beyond int64
		return sign + groupDigits(whole) + "." + cents
	}

	p := message.NewPrinter(language.AmericanEnglish)
	return sign + p.Sprintf("%d", n) + "." + cents
}

func groupDigits(digits string) string {
	var b strings.Builder

	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	return b.String()
}
