package entity

// Verdict is the tri-state outcome of checking a point against the delivery zone.
type Verdict string

const (
	// VerdictUnknown means no coordinates were evaluated. It never blocks checkout.
	VerdictUnknown    Verdict = "unknown"
	VerdictEligible   Verdict = "eligible"
	VerdictIneligible Verdict = "ineligible"
)

// IsKnown reports whether the verdict came from an actual evaluation.
func (v Verdict) IsKnown() bool {
	return v == VerdictEligible || v == VerdictIneligible
}

// Evaluation is a verdict together with the distance it was based on.
type Evaluation struct {
	Verdict    Verdict  `json:"verdict"`
	DistanceKm *float64 `json:"distance_km,omitempty"`
}
