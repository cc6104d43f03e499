package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"studioviking-backend/ledger"
	"studioviking-backend/models"
	"studioviking-backend/utils"
)

// AgendaController serves the appointment book.
type AgendaController struct {
	Ledger *ledger.Ledger
}

// CreateAppointmentInput defines the expected JSON structure for booking a session
type CreateAppointmentInput struct {
	ClientID     string   `json:"clientId" binding:"required"`
	ServiceID    string   `json:"serviceId" binding:"required"`
	Date         string   `json:"date" binding:"required"`
	Time         string   `json:"time" binding:"required"`
	Professional string   `json:"professional" binding:"required"`
	Price        *float64 `json:"price"`
}

// UpdateStatusInput defines the expected JSON structure for a status transition
type UpdateStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// GetAgenda returns the appointments for one date, scoped by
// professional and sorted by time of day.
func (ac *AgendaController) GetAgenda(c *gin.Context) {
	professional, err := professionalFilter(c)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	date := c.DefaultQuery("date", utils.DateOf(ac.Ledger.Now()))
	agenda := ledger.DailyAgenda(ac.Ledger.Appointments(), date, professional)

	c.JSON(http.StatusOK, agenda)
}

// CreateAppointment books a new session.
func (ac *AgendaController) CreateAppointment(c *gin.Context) {
	var input CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	professional, err := models.ParseProfessional(input.Professional)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	appointment, err := ac.Ledger.CreateAppointment(ledger.NewAppointment{
		ClientID:      input.ClientID,
		ServiceID:     input.ServiceID,
		Date:          input.Date,
		Time:          input.Time,
		Professional:  professional,
		PriceOverride: input.Price,
	})
	if err != nil {
		if errors.Is(err, ledger.ErrInvalidInput) {
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create appointment")
		}
		return
	}

	c.JSON(http.StatusCreated, appointment)
}

// UpdateAppointmentStatus moves an appointment along its lifecycle.
func (ac *AgendaController) UpdateAppointmentStatus(c *gin.Context) {
	appointmentID := c.Param("id")

	var input UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	status, err := models.ParseAppointmentStatus(input.Status)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	appointment, err := ac.Ledger.TransitionStatus(appointmentID, status)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrNotFound):
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		case errors.Is(err, ledger.ErrInvalidTransition):
			utils.RespondWithError(c, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update appointment")
		}
		return
	}

	c.JSON(http.StatusOK, appointment)
}
