// Package analytics computes dashboard KPIs and chart-ready groupings from
// the in-memory lead collection. Everything here is a pure function of its
// inputs, safe to re-run on every snapshot push.
package analytics

import (
	"time"

	"hotleads/internal/domain"
)

// Period restricts the lead list by entry date, evaluated in local time.
type Period string

const (
	PeriodAll       Period = "all"
	PeriodThisMonth Period = "thisMonth"
	PeriodThisYear  Period = "thisYear"
)

// Filter narrows the lead list before aggregation. An Owner that is not in
// the settings owner list is ignored rather than producing an empty result.
type Filter struct {
	Period Period
	Owner  string
}

// Bucket is one chart entry: a canonical label and its lead count.
type Bucket struct {
	Name  string `json:"name"`
	Count int    `json:"value"`
}

// Summary holds every dashboard aggregate, derived in one pass over the
// filtered list.
type Summary struct {
	TotalLeads     int     `json:"totalLeads"`
	ActiveLeads    int     `json:"activeLeads"`
	ConversionRate float64 `json:"conversionRate"`
	TotalSoldValue float64 `json:"totalSoldValue"`

	LeadsByStatus  []Bucket `json:"leadsByStatus"`
	LeadsByOrigin  []Bucket `json:"leadsByOrigin"`
	LeadsByProduct []Bucket `json:"leadsByProduct"`
}

// ApplyFilter returns the leads matching the filter. now anchors the
// thisMonth / thisYear windows so results are reproducible in tests.
func ApplyFilter(leads []domain.Lead, settings domain.Settings, f Filter, now time.Time) []domain.Lead {
	ownerFilter := f.Owner
	if ownerFilter != "" && !settings.HasOwner(ownerFilter) {
		ownerFilter = ""
	}

	out := make([]domain.Lead, 0, len(leads))
	for _, l := range leads {
		if ownerFilter != "" && l.Owner != ownerFilter {
			continue
		}
		if !matchesPeriod(l.EntryDate, f.Period, now) {
			continue
		}
		out = append(out, l)
	}
	return out
}

func matchesPeriod(d domain.Date, p Period, now time.Time) bool {
	switch p {
	case PeriodThisMonth:
		return d.Year() == now.Year() && d.Month() == now.Month()
	case PeriodThisYear:
		return d.Year() == now.Year()
	default:
		return true
	}
}

// Summarize computes all dashboard aggregates for the filtered lead list.
// Groupings iterate the settings lists in declared order, so output ordering
// is stable run to run; zero-count buckets never reach the charts. Leads
// whose enum value fell out of the settings list contribute to the totals
// but to no bucket.
func Summarize(leads []domain.Lead, settings domain.Settings, f Filter, now time.Time) Summary {
	filtered := ApplyFilter(leads, settings, f, now)

	var (
		won       int
		lateStage int
		byStatus  = make(map[string]int)
		byOrigin  = make(map[string]int)
		byProduct = make(map[string]int)
	)

	s := Summary{TotalLeads: len(filtered)}

	for i := range filtered {
		l := &filtered[i]

		switch l.Status {
		case domain.StatusWon, domain.StatusLost, domain.StatusNurturing:
		default:
			s.ActiveLeads++
		}

		if domain.IsLateStage(l.Status) {
			lateStage++
		}
		if l.IsWon() {
			won++
			s.TotalSoldValue += l.SoldValue()
		}

		byStatus[l.Status]++
		byOrigin[l.Source]++
		byProduct[l.Product]++
	}

	if lateStage > 0 {
		s.ConversionRate = float64(won) / float64(lateStage) * 100
	}

	s.LeadsByStatus = buckets(settings.Statuses, byStatus)
	s.LeadsByOrigin = buckets(settings.Sources, byOrigin)
	s.LeadsByProduct = buckets(settings.Products, byProduct)

	return s
}

func buckets(order []string, counts map[string]int) []Bucket {
	out := make([]Bucket, 0, len(order))
	for _, name := range order {
		if n := counts[name]; n > 0 {
			out = append(out, Bucket{Name: name, Count: n})
		}
	}
	return out
}
