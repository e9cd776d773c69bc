package restaurant

import (
	"math/rand"

	"github.com/shopspring/decimal"
)

// Rand is the randomness capability the enricher draws from. *rand.Rand
// satisfies it; tests inject fixed-outcome stubs.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Delivery field ranges for synthesized values.
const (
	minDeliveryMinutes = 15
	maxDeliveryMinutes = 45
	acceptingOrdersP   = 0.9
)

var (
	minDeliveryFee = decimal.NewFromFloat(1.00)
	feeSpread      = decimal.NewFromFloat(5.00)
)

// Enricher appends delivery-operational fields a provider does not supply.
// It never fails: every draw lands in a fixed range.
type Enricher struct {
	rng Rand
}

func NewEnricher(rng Rand) *Enricher {
	return &Enricher{rng: rng}
}

// NewSeededEnricher builds an enricher over math/rand with the given seed,
// for deterministic mock output.
func NewSeededEnricher(seed int64) *Enricher {
	return NewEnricher(rand.New(rand.NewSource(seed)))
}

// Enrich fills the delivery-operational fields, touching only those the
// restaurant does not already carry.
func (e *Enricher) Enrich(r Restaurant) Restaurant {
	if r.DeliveryTime == 0 {
		r.DeliveryTime = minDeliveryMinutes + e.rng.Intn(maxDeliveryMinutes-minDeliveryMinutes+1)
	}
	if r.DeliveryFee.IsZero() {
		// $1.00 - $6.00, two decimal places.
		fee := minDeliveryFee.Add(feeSpread.Mul(decimal.NewFromFloat(e.rng.Float64())))
		r.DeliveryFee = fee.Round(2)
	}
	if r.AcceptingOrders == nil {
		r.AcceptingOrders = boolPtr(e.rng.Float64() < acceptingOrdersP)
	}
	return r
}

// EnrichAll enriches a result set in place-order.
func (e *Enricher) EnrichAll(restaurants []Restaurant) []Restaurant {
	enriched := make([]Restaurant, len(restaurants))
	for i, r := range restaurants {
		enriched[i] = e.Enrich(r)
	}
	return enriched
}
