package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studioviking-backend/ledger"
	"studioviking-backend/models"
	"studioviking-backend/utils"
)

// DashboardController serves the day-at-a-glance view.
type DashboardController struct {
	Ledger *ledger.Ledger
}

// DashboardOverview mirrors the dashboard cards: today's numbers plus
// the next client coming in.
type DashboardOverview struct {
	Stats ledger.DayStats     `json:"stats"`
	Next  *models.Appointment `json:"next,omitempty"`
}

// GetDashboard returns today's stats for the viewing professional.
func (dc *DashboardController) GetDashboard(c *gin.Context) {
	professional, err := professionalFilter(c)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	now := dc.Ledger.Now()
	appointments := dc.Ledger.Appointments()
	sales := dc.Ledger.Sales()

	overview := DashboardOverview{
		Stats: ledger.TodayRevenue(appointments, sales, professional, now),
	}

	agenda := ledger.DailyAgenda(appointments, utils.DateOf(now), professional)
	pending := agenda[:0]
	for _, apt := range agenda {
		if apt.Status != models.StatusCancelled {
			pending = append(pending, apt)
		}
	}
	if next, ok := ledger.NextUpcoming(pending, utils.TimeOfDay(now)); ok {
		overview.Next = &next
	}

	c.JSON(http.StatusOK, overview)
}
