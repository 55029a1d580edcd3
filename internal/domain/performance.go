package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Performance is one attended showing of a play. Its amount and credits are
// filled in by Invoice.Calculate.
type Performance struct {
	play     Play
	audience int
	amount   decimal.Decimal
	credits  decimal.Decimal
	priced   bool
}

func NewPerformance(play Play, audience int) (*Performance, error) {
	if audience < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidAudience, audience)
	}

	return &Performance{play: play, audience: audience}, nil
}

func (p *Performance) Play() Play {
	return p.play
}

func (p *Performance) Audience() int {
	return p.audience
}

func (p *Performance) Amount() (decimal.Decimal, error) {
	if !p.priced {
		return decimal.Zero, ErrNotCalculated
	}

	return p.amount, nil
}

func (p *Performance) Credits() (decimal.Decimal, error) {
	if !p.priced {
		return decimal.Zero, ErrNotCalculated
	}

	return p.credits, nil
}

func (p *Performance) price() error {
	amount, err := p.play.genre.Amount(p.play.lines, p.audience)
	if err != nil {
		return fmt.Errorf("pricing %q: %w", p.play.name, err)
	}

	credits, err := p.play.genre.Credits(p.audience)
	if err != nil {
		return fmt.Errorf("crediting %q: %w", p.play.name, err)
	}

	p.amount = amount
	p.credits = credits
	p.priced = true

	return nil
}
