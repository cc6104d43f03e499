// controllers/financial.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studioviking-backend/ledger"
)

// FinancialController serves the revenue report.
type FinancialController struct {
	Ledger *ledger.Ledger
}

// FinancialReport is the full financial view: all-time totals per
// category plus the weekday revenue chart.
type FinancialReport struct {
	Totals ledger.Totals            `json:"totals"`
	Weekly [7]ledger.WeekdayRevenue `json:"weekly"`
}

// GetFinancialReport returns category totals and the weekly chart.
func (fc *FinancialController) GetFinancialReport(c *gin.Context) {
	appointments := fc.Ledger.Appointments()
	sales := fc.Ledger.Sales()

	report := FinancialReport{
		Totals: ledger.CategoryTotals(appointments, sales),
		Weekly: ledger.WeeklyRevenueByCategory(appointments, sales),
	}

	c.JSON(http.StatusOK, report)
}
