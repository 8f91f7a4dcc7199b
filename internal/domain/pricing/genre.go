package pricing

import "theater_billing/internal/domain/entities"

// genrePricing is the per-genre pricing rule. The set of implementations is closed:
// adding a genre means adding an entities.Genre constant and a case in pricingFor.
type genrePricing interface {
	amount(t Table, audience int) (int64, bool)
	extraCredits(t Table, audience int) int
}

type tragedyPricing struct{}

func (tragedyPricing) amount(t Table, audience int) (int64, bool) {
	result := t.TragedyBaseAmount
	if audience > t.TragedyAudienceThreshold {
		extra, ok := mulInt64(t.TragedyOverBaseCapacityPerPerson, int64(audience-t.TragedyAudienceThreshold))
		if !ok {
			return 0, false
		}
		return addInt64(result, extra)
	}
	return result, true
}

func (tragedyPricing) extraCredits(Table, int) int {
	return 0
}

type comedyPricing struct{}

func (comedyPricing) amount(t Table, audience int) (int64, bool) {
	result := t.ComedyBaseAmount
	ok := true
	if audience > t.ComedyAudienceThreshold {
		var extra int64
		extra, ok = mulInt64(t.ComedyOverBaseCapacityPerPerson, int64(audience-t.ComedyAudienceThreshold))
		if ok {
			extra, ok = addInt64(t.ComedyOverBaseCapacityAmount, extra)
		}
		if ok {
			result, ok = addInt64(result, extra)
		}
	}
	if !ok {
		return 0, false
	}
	perAudience, ok := mulInt64(t.ComedyAmountPerAudience, int64(audience))
	if !ok {
		return 0, false
	}
	return addInt64(result, perAudience)
}

func (comedyPricing) extraCredits(t Table, audience int) int {
	return audience / t.ComedyExtraVolumeFactor
}

func pricingFor(g entities.Genre) genrePricing {
	switch g {
	case entities.GenreTragedy:
		return tragedyPricing{}
	case entities.GenreComedy:
		return comedyPricing{}
	}
	return nil
}
