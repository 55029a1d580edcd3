package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Base value shared by every genre: the play's line count clamped to
// [minBaseLines, maxBaseLines], one currency unit per linesPerUnit lines.
const (
	minBaseLines = 1000
	maxBaseLines = 4000
	linesPerUnit = 10
)

// Every performance earns one credit per attendee above this threshold.
const volumeCreditThreshold = 30

const (
	tragedyAudienceThreshold = 30
	tragedyExtraPerSeat      = 10
)

const (
	comedyAudienceThreshold = 20
	comedyPerSeat           = 3
	comedyLargeAudienceFee  = 100
	comedyExtraPerSeat      = 5
	comedyCreditDivisor     = 5
)

type pricingStrategy struct {
	amountOf  func(base decimal.Decimal, audience int) decimal.Decimal
	creditsOf func(audience int) decimal.Decimal
}

var (
	tragedyStrategy = pricingStrategy{
		amountOf: func(base decimal.Decimal, audience int) decimal.Decimal {
			return base.Add(perSeat(tragedyExtraPerSeat, excess(audience, tragedyAudienceThreshold)))
		},
		creditsOf: func(int) decimal.Decimal {
			return decimal.Zero
		},
	}

	comedyStrategy = pricingStrategy{
		amountOf: func(base decimal.Decimal, audience int) decimal.Decimal {
			amount := base.Add(perSeat(comedyPerSeat, audience))
			if audience > comedyAudienceThreshold {
				amount = amount.
					Add(decimal.NewFromInt(comedyLargeAudienceFee)).
					Add(perSeat(comedyExtraPerSeat, excess(audience, comedyAudienceThreshold)))
			}

			return amount
		},
		creditsOf: func(audience int) decimal.Decimal {
			return decimal.NewFromInt(int64(audience)).
				Div(decimal.NewFromInt(comedyCreditDivisor)).
				Floor()
		},
	}

	// History splits the base value evenly between the tragedy and comedy
	// rules and sums what they charge.
	historyStrategy = combine(tragedyStrategy, comedyStrategy)

	strategies = map[Genre]pricingStrategy{
		GenreTragedy: tragedyStrategy,
		GenreComedy:  comedyStrategy,
		GenreHistory: historyStrategy,
	}
)

// combine builds a strategy that is the pointwise sum of parts, each part
// receiving an equal share of the base value.
func combine(parts ...pricingStrategy) pricingStrategy {
	share := decimal.NewFromInt(int64(len(parts)))

	return pricingStrategy{
		amountOf: func(base decimal.Decimal, audience int) decimal.Decimal {
			portion := base.Div(share)
			total := decimal.Zero
			for _, p := range parts {
				total = total.Add(p.amountOf(portion, audience))
			}

			return total
		},
		creditsOf: func(audience int) decimal.Decimal {
			total := decimal.Zero
			for _, p := range parts {
				total = total.Add(p.creditsOf(audience))
			}

			return total
		},
	}
}

// Amount prices a single performance of a play of this genre.
func (g Genre) Amount(lines, audience int) (decimal.Decimal, error) {
	s, err := g.strategy()
	if err != nil {
		return decimal.Zero, err
	}

	return s.amountOf(baseValue(lines), audience), nil
}

// Credits returns the volume credits a performance earns, including the
// genre bonus.
func (g Genre) Credits(audience int) (decimal.Decimal, error) {
	s, err := g.strategy()
	if err != nil {
		return decimal.Zero, err
	}

	volume := decimal.NewFromInt(int64(excess(audience, volumeCreditThreshold)))

	return volume.Add(s.creditsOf(audience)), nil
}

func (g Genre) strategy() (pricingStrategy, error) {
	s, ok := strategies[g]
	if !ok {
		return pricingStrategy{}, fmt.Errorf("%w: %q", ErrUnknownGenre, g)
	}

	return s, nil
}

func baseValue(lines int) decimal.Decimal {
	clamped := min(max(lines, minBaseLines), maxBaseLines)
	return decimal.NewFromInt(int64(clamped)).Div(decimal.NewFromInt(linesPerUnit))
}

func excess(value, threshold int) int {
	return max(value-threshold, 0)
}

// perSeat multiplies in decimal so that large audiences cannot overflow int.
func perSeat(rate int64, seats int) decimal.Decimal {
	return decimal.NewFromInt(rate).Mul(decimal.NewFromInt(int64(seats)))
}
