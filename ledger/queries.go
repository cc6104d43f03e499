package ledger

import (
	"sort"
	"time"

	"studioviking-backend/models"
	"studioviking-backend/utils"
)

// Pure views over a ledger snapshot. Nothing here touches the store.

// DayStats is the dashboard summary for one professional's day.
type DayStats struct {
	AppointmentCount int     `json:"appointmentCount"`
	ServiceRevenue   float64 `json:"serviceRevenue"`
	BarRevenue       float64 `json:"barRevenue"`
	TotalRevenue     float64 `json:"totalRevenue"`
}

// DailyAgenda filters appointments to one date, scoped by professional
// (Admin sees everyone), sorted ascending by time of day. HH:mm is
// zero-padded and fixed width, so string order is chronological order.
func DailyAgenda(appointments []models.Appointment, date string, filter models.Professional) []models.Appointment {
	var agenda []models.Appointment
	for _, apt := range appointments {
		if apt.Date != date {
			continue
		}
		if filter != models.ProfessionalAdmin && apt.Professional != filter {
			continue
		}
		agenda = append(agenda, apt)
	}
	sort.SliceStable(agenda, func(i, j int) bool {
		return agenda[i].Time < agenda[j].Time
	})
	return agenda
}

// TodayRevenue sums today's non-cancelled appointment prices scoped by
// professional. Bar revenue is studio-wide: only the administrative
// view rolls it into the total; individual practitioners never see it.
func TodayRevenue(appointments []models.Appointment, sales []models.Sale, filter models.Professional, now time.Time) DayStats {
	today := utils.DateOf(now)
	var stats DayStats
	for _, apt := range appointments {
		if apt.Date != today || apt.Status == models.StatusCancelled {
			continue
		}
		if filter != models.ProfessionalAdmin && apt.Professional != filter {
			continue
		}
		stats.AppointmentCount++
		stats.ServiceRevenue += apt.Price
	}
	for _, sale := range sales {
		if sale.Date == today {
			stats.BarRevenue += sale.Total
		}
	}
	stats.TotalRevenue = stats.ServiceRevenue
	if filter == models.ProfessionalAdmin {
		stats.TotalRevenue += stats.BarRevenue
	}
	return stats
}

// NextUpcoming returns the first agenda entry strictly after nowHHmm.
// The agenda must already be time-sorted (DailyAgenda output). The
// comparison is on the fixed-width HH:mm strings.
func NextUpcoming(agenda []models.Appointment, nowHHmm string) (models.Appointment, bool) {
	for _, apt := range agenda {
		if apt.Time > nowHHmm {
			return apt, true
		}
	}
	return models.Appointment{}, false
}

// WeekdayRevenue is one Monday-first bucket of the weekly chart.
type WeekdayRevenue struct {
	Day      string  `json:"day"`
	Tattoo   float64 `json:"tattoo"`
	Piercing float64 `json:"piercing"`
	Bar      float64 `json:"bar"`
}

var weekdayLabels = [7]string{"Seg", "Ter", "Qua", "Qui", "Sex", "Sab", "Dom"}

// WeeklyRevenueByCategory buckets every non-cancelled appointment and
// every sale by the weekday of its own date, Monday first, Sunday
// last. Buckets collapse across calendar weeks on purpose: the chart
// reads as a typical week, not the current one. Unparseable dates are
// skipped.
func WeeklyRevenueByCategory(appointments []models.Appointment, sales []models.Sale) [7]WeekdayRevenue {
	var buckets [7]WeekdayRevenue
	for i := range buckets {
		buckets[i].Day = weekdayLabels[i]
	}
	for _, apt := range appointments {
		if apt.Status == models.StatusCancelled {
			continue
		}
		idx, ok := utils.WeekdayIndex(apt.Date)
		if !ok {
			continue
		}
		switch apt.Professional {
		case models.ProfessionalDavid:
			buckets[idx].Tattoo += apt.Price
		case models.ProfessionalJey:
			buckets[idx].Piercing += apt.Price
		case models.ProfessionalAdmin:
			// Admin never owns appointments.
		}
	}
	for _, sale := range sales {
		idx, ok := utils.WeekdayIndex(sale.Date)
		if !ok {
			continue
		}
		buckets[idx].Bar += sale.Total
	}
	return buckets
}

// Totals is the all-time revenue split used by the financial summary.
type Totals struct {
	Tattoo   float64 `json:"tattoo"`
	Piercing float64 `json:"piercing"`
	Bar      float64 `json:"bar"`
}

// CategoryTotals sums non-cancelled appointment revenue per
// practitioner plus total bar revenue, across all dates.
func CategoryTotals(appointments []models.Appointment, sales []models.Sale) Totals {
	var totals Totals
	for _, apt := range appointments {
		if apt.Status == models.StatusCancelled {
			continue
		}
		switch apt.Professional {
		case models.ProfessionalDavid:
			totals.Tattoo += apt.Price
		case models.ProfessionalJey:
			totals.Piercing += apt.Price
		case models.ProfessionalAdmin:
			// Admin never owns appointments.
		}
	}
	for _, sale := range sales {
		totals.Bar += sale.Total
	}
	return totals
}
