package goal

import (
	"hotleads/internal/domain"
)

// Progress holds the realized metrics for a goal's month plus the raw
// (unclamped) percentage of each target achieved.
type Progress struct {
	Goal domain.Goal `json:"meta"`

	LeadsGenerated int     `json:"leadsGerados"`
	SalesRealized  float64 `json:"vendasRealizadas"`
	ConversionReal float64 `json:"conversaoReal"`

	LeadsProgress      float64 `json:"progressoLeads"`
	RevenueProgress    float64 `json:"progressoVendas"`
	ConversionProgress float64 `json:"progressoConversao"`
}

// Display returns a copy with each progress percentage clamped to [0, 100]
// for rendering. The unclamped values stay on the receiver.
func (p Progress) Display() Progress {
	p.LeadsProgress = clamp(p.LeadsProgress)
	p.RevenueProgress = clamp(p.RevenueProgress)
	p.ConversionProgress = clamp(p.ConversionProgress)
	return p
}

// Compute derives a goal's progress from the full lead list.
//
// Lead count follows the entry date; revenue follows the sale date, so a
// lead entered in a prior month but sold inside the target month counts
// toward this month's revenue. The conversion ratio mixes the two axes
// (won-by-sale-date over late-stage-by-entry-date) — that matches the
// dashboard's historical behavior and is kept intentionally.
func Compute(g domain.Goal, leads []domain.Lead) (Progress, error) {
	start, end, err := g.MonthWindow()
	if err != nil {
		return Progress{}, err
	}

	p := Progress{Goal: g}
	var wonInWindow, lateStageEntered int

	for i := range leads {
		l := &leads[i]

		if l.EntryDate.InMonth(start, end) {
			p.LeadsGenerated++
			if domain.IsLateStage(l.Status) {
				lateStageEntered++
			}
		}

		if l.IsWon() && l.SaleDate != nil && l.SaleDate.InMonth(start, end) {
			wonInWindow++
			if l.SaleValue != nil {
				p.SalesRealized += *l.SaleValue
			}
		}
	}

	p.ConversionReal = ratio(float64(wonInWindow), float64(lateStageEntered)) * 100
	p.LeadsProgress = ratio(float64(p.LeadsGenerated), float64(g.LeadTarget)) * 100
	p.RevenueProgress = ratio(p.SalesRealized, g.RevenueTarget) * 100
	p.ConversionProgress = ratio(p.ConversionReal, g.ConversionTarget) * 100

	return p, nil
}

// ratio guards against zero denominators: progress against a zero target is
// zero, never Inf or NaN.
func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
