package domain

import (
	"encoding/json"
	"strings"
)

// TrainerTier is a trainer's pricing plan. Only meaningful when the user's
// role is TRAINER.
type TrainerTier string

const (
	TierStarter TrainerTier = "STARTER"
	TierGrowth  TrainerTier = "GROWTH"
	TierScale   TrainerTier = "SCALE"
	TierPro     TrainerTier = "PRO"

	TierUnknown TrainerTier = "UNKNOWN"
)

// ParseTrainerTier maps a raw token to a TrainerTier with unknown-value
// fallback.
func ParseTrainerTier(s string) TrainerTier {
	switch t := TrainerTier(strings.ToUpper(s)); t {
	case TierStarter, TierGrowth, TierScale, TierPro:
		return t
	default:
		return TierUnknown
	}
}

// UnmarshalJSON decodes a trainer tier token with unknown-value fallback.
func (t *TrainerTier) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*t = ParseTrainerTier(s)
	return nil
}

// MaxClients returns the client cap for the tier. Tier boundaries coincide
// with the billing breakpoints at 5 and 15 clients; unknown tiers get the
// starter cap.
func (t TrainerTier) MaxClients() int {
	switch t {
	case TierStarter:
		return 5
	case TierGrowth:
		return 15
	case TierScale:
		return 30
	case TierPro:
		return 100
	default:
		return 5
	}
}

// Marginal per-client prices by billing band.
const (
	priceFirstBand  = 10.0 // clients 1-5
	priceSecondBand = 7.5  // clients 6-15
	priceThirdBand  = 5.0  // clients 16+
)

// MonthlyBilling computes the trainer's monthly bill for the given client
// count using progressive marginal pricing: the first 5 clients at $10 each,
// clients 6-15 at $7.50 each, and every client above 15 at $5 each. On the
// PRO plan, clients above the plan cap carry no marginal cost. The result is
// plain float64 arithmetic matching the billing backend.
func (t TrainerTier) MonthlyBilling(clientCount int) float64 {
	n := clientCount
	if n < 0 {
		n = 0
	}
	if t == TierPro && n > t.MaxClients() {
		n = t.MaxClients()
	}
	first := minInt(n, 5)
	second := minInt(maxInt(n-5, 0), 10)
	third := maxInt(n-15, 0)
	return float64(first)*priceFirstBand +
		float64(second)*priceSecondBand +
		float64(third)*priceThirdBand
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
