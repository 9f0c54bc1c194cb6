package domain

import (
	"fmt"
	"time"
)

const monthLayout = "2006-01"

// Goal is a monthly target for lead volume, revenue and conversion rate.
// Realized metrics are never stored; they are derived from the lead list.
type Goal struct {
	ID               string    `json:"id"`
	UserID           int64     `json:"-"`
	Month            string    `json:"mesAno" validate:"required"`
	LeadTarget       int       `json:"metaLeads" validate:"gte=0"`
	RevenueTarget    float64   `json:"metaVendas" validate:"gte=0"`
	ConversionTarget float64   `json:"taxaConversaoMeta" validate:"gte=0,lte=100"`
	CreatedAt        time.Time `json:"createdAt"`
}

// MonthWindow returns the half-open local-time window [start, end) covering
// the goal's target month.
func (g Goal) MonthWindow() (start, end time.Time, err error) {
	t, err := time.ParseInLocation(monthLayout, g.Month, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid goal month %q: %w", g.Month, err)
	}
	return t, t.AddDate(0, 1, 0), nil
}
