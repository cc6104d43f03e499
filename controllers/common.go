package controllers

import (
	"github.com/gin-gonic/gin"

	"studioviking-backend/models"
)

// professionalFilter reads the viewing professional from the request.
// Absent means the administrative view, which aggregates across
// practitioners.
func professionalFilter(c *gin.Context) (models.Professional, error) {
	value := c.Query("professional")
	if value == "" {
		return models.ProfessionalAdmin, nil
	}
	return models.ParseProfessional(value)
}
