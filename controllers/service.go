// controllers/service.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"studioviking-backend/ledger"
	"studioviking-backend/models"
	"studioviking-backend/utils"
)

// ServiceController serves the service catalog.
type ServiceController struct {
	Ledger *ledger.Ledger
}

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	Name         string  `json:"name" binding:"required"`
	BasePrice    float64 `json:"basePrice" binding:"min=0"`
	DurationMin  int     `json:"durationMin" binding:"required,min=1"`
	Professional string  `json:"professional" binding:"required"`
}

// GetServices retrieves the full service catalog, optionally scoped to
// one practitioner.
func (sc *ServiceController) GetServices(c *gin.Context) {
	services := sc.Ledger.Services()

	if value := c.Query("professional"); value != "" {
		professional, err := models.ParseProfessional(value)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		filtered := services[:0]
		for _, service := range services {
			if service.Professional == professional {
				filtered = append(filtered, service)
			}
		}
		services = filtered
	}

	c.JSON(http.StatusOK, services)
}

// CreateService adds a catalog entry.
func (sc *ServiceController) CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	professional, err := models.ParseProfessional(input.Professional)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	service, err := sc.Ledger.AddService(ledger.NewService{
		Name:         input.Name,
		BasePrice:    input.BasePrice,
		DurationMin:  input.DurationMin,
		Professional: professional,
	})
	if err != nil {
		if errors.Is(err, ledger.ErrInvalidInput) {
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service")
		}
		return
	}

	c.JSON(http.StatusCreated, service)
}
