package domain

import "github.com/shopspring/decimal"

// Invoice aggregates the performances a customer attended. Totals are only
// readable after Calculate; earlier reads return ErrNotCalculated.
type Invoice struct {
	customer      string
	performances  []*Performance
	amountOwed    decimal.Decimal
	earnedCredits decimal.Decimal
	calculated    bool
}

func NewInvoice(customer string, performances []*Performance) *Invoice {
	ps := make([]*Performance, len(performances))
	copy(ps, performances)

	return &Invoice{
		customer:     customer,
		performances: ps,
	}
}

func (i *Invoice) Customer() string {
	return i.customer
}

func (i *Invoice) Performances() []*Performance {
	ps := make([]*Performance, len(i.performances))
	copy(ps, i.performances)

	return ps
}

func (i *Invoice) Calculated() bool {
	return i.calculated
}

// Calculate prices every performance from scratch and rolls the results into
// the invoice totals. Calling it again yields the same totals.
func (i *Invoice) Calculate() error {
	amountOwed := decimal.Zero
	earnedCredits := decimal.Zero

	for _, p := range i.performances {
		err := p.price()
		if err != nil {
			i.calculated = false
			return err
		}

		amountOwed = amountOwed.Add(p.amount)
		earnedCredits = earnedCredits.Add(p.credits)
	}

	i.amountOwed = amountOwed
	i.earnedCredits = earnedCredits
	i.calculated = true

	return nil
}

func (i *Invoice) AmountOwed() (decimal.Decimal, error) {
	if !i.calculated {
		return decimal.Zero, ErrNotCalculated
	}

	return i.amountOwed, nil
}

func (i *Invoice) EarnedCredits() (decimal.Decimal, error) {
	if !i.calculated {
		return decimal.Zero, ErrNotCalculated
	}

	return i.earnedCredits, nil
}

// PerformancesByName returns, in invoice order, the performances of plays
// whose name matches exactly.
func (i *Invoice) PerformancesByName(name string) []*Performance {
	var matches []*Performance

	for _, p := range i.performances {
		if p.play.name == name {
			matches = append(matches, p)
		}
	}

	return matches
}

// Statement projects the calculated invoice into a snapshot for rendering.
func (i *Invoice) Statement() (Statement, error) {
	if !i.calculated {
		return Statement{}, ErrNotCalculated
	}

	lines := make([]StatementLine, len(i.performances))
	for idx, p := range i.performances {
		lines[idx] = StatementLine{
			PlayName: p.play.name,
			Genre:    p.play.genre,
			Audience: p.audience,
			Amount:   p.amount,
			Credits:  p.credits,
		}
	}

	return Statement{
		Customer:      i.customer,
		Lines:         lines,
		AmountOwed:    i.amountOwed,
		EarnedCredits: i.earnedCredits,
	}, nil
}
