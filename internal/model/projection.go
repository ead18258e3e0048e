package model

// MonthlyCost is one point of the net-cost series: cumulative net cost under
// each option at the end of the given month (1-based).
type MonthlyCost struct {
	Month int     `json:"month"`
	Buy   float64 `json:"netCostBuy"`
	Lease float64 `json:"netCostLease"`
}

// BuySummary holds the purchase-side scalars shown alongside the series.
type BuySummary struct {
	MonthlyPayment    float64 `json:"monthlyPayment"`
	TotalPurchaseCost float64 `json:"totalPurchaseCost"`
	LoanAmount        float64 `json:"loanAmount"`
	EndValueAtHorizon float64 `json:"endValueAtHorizon"`
	NetCostAtHorizon  float64 `json:"netCostAtHorizon"`
}

// LeaseSummary holds the lease-side scalars shown alongside the series.
type LeaseSummary struct {
	MonthlyPayment      float64 `json:"monthlyPayment"`
	DriveOff            float64 `json:"driveOff"`
	TotalLeasePayments  float64 `json:"totalLeasePayments"`
	MileagePenalty      float64 `json:"mileagePenalty"`
	DispositionFee      float64 `json:"dispositionFee"`
	NetCostFullTerm     float64 `json:"netCostFullTerm"`
	NetCostAtHorizon    float64 `json:"netCostAtHorizon"`
}

// Recommendation is the horizon-end verdict.
type Recommendation int

const (
	// RecommendEither means both options cost roughly the same.
	RecommendEither Recommendation = iota
	// RecommendLease means leasing is cheaper over the horizon.
	RecommendLease
	// RecommendBuy means buying is cheaper over the horizon.
	RecommendBuy
)

func (r Recommendation) String() string {
	switch r {
	case RecommendLease:
		return "lease"
	case RecommendBuy:
		return "buy"
	default:
		return "either"
	}
}

// MarshalJSON emits the recommendation as its string form.
func (r Recommendation) MarshalJSON() ([]byte, error) {
	return []byte(`"` + r.String() + `"`), nil
}

// Projection is the full output of one scenario run: the month-by-month
// series plus the horizon-end comparison. Built fresh per scenario, never
// mutated afterward.
type Projection struct {
	Months []MonthlyCost `json:"months"`
	Buy    BuySummary    `json:"buy"`
	Lease  LeaseSummary  `json:"lease"`

	// Difference is Buy.NetCostAtHorizon - Lease.NetCostAtHorizon; positive
	// means leasing is cheaper.
	Difference     float64        `json:"difference"`
	Recommendation Recommendation `json:"recommendation"`
}
