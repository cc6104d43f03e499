package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"studioviking-backend/ledger"
	"studioviking-backend/utils"
)

// ClientController serves the client directory.
type ClientController struct {
	Ledger *ledger.Ledger
}

// CreateClientInput defines the expected JSON structure for registering a client
type CreateClientInput struct {
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Instagram string `json:"instagram"`
	BirthDate string `json:"birthDate"`
	Notes     string `json:"notes"`
}

// UpdateClientInput defines the expected JSON structure for updating a client
type UpdateClientInput struct {
	Name      *string `json:"name"`
	Phone     *string `json:"phone"`
	Instagram *string `json:"instagram"`
	BirthDate *string `json:"birthDate"`
	Notes     *string `json:"notes"`
}

// CreateClient registers a new client
func (cc *ClientController) CreateClient(c *gin.Context) {
	var input CreateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	client, err := cc.Ledger.AddClient(ledger.NewClient{
		Name:      input.Name,
		Phone:     input.Phone,
		Instagram: input.Instagram,
		BirthDate: input.BirthDate,
		Notes:     input.Notes,
	})
	if err != nil {
		if errors.Is(err, ledger.ErrInvalidInput) {
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create client")
		}
		return
	}

	c.JSON(http.StatusCreated, client)
}

// GetClients retrieves the client directory, optionally filtered by a
// case-insensitive name search.
func (cc *ClientController) GetClients(c *gin.Context) {
	clients := cc.Ledger.Clients()

	if search := strings.ToLower(c.Query("search")); search != "" {
		filtered := clients[:0]
		for _, client := range clients {
			if strings.Contains(strings.ToLower(client.Name), search) {
				filtered = append(filtered, client)
			}
		}
		clients = filtered
	}

	c.JSON(http.StatusOK, clients)
}

// UpdateClient updates an existing client. Past appointments keep the
// denormalized name they were created with.
func (cc *ClientController) UpdateClient(c *gin.Context) {
	clientID := c.Param("id")

	var input UpdateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var found bool
	for _, existing := range cc.Ledger.Clients() {
		if existing.ID != clientID {
			continue
		}
		found = true

		if input.Name != nil {
			existing.Name = *input.Name
		}
		if input.Phone != nil {
			if !utils.ValidatePhone(*input.Phone) {
				utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
				return
			}
			existing.Phone = *input.Phone
		}
		if input.Instagram != nil {
			existing.Instagram = *input.Instagram
		}
		if input.BirthDate != nil {
			existing.BirthDate = *input.BirthDate
		}
		if input.Notes != nil {
			existing.Notes = *input.Notes
		}

		updated, err := cc.Ledger.UpdateClient(existing)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update client")
			return
		}
		c.JSON(http.StatusOK, updated)
		return
	}

	if !found {
		utils.RespondWithError(c, http.StatusNotFound, "Client not found")
	}
}
