package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studioviking-backend/ai"
	"studioviking-backend/utils"
)

// AIController serves the text-generation assistant. Responses carry a
// sequence number; a response that lost the race to a newer request is
// flagged stale and not stored as the latest result.
type AIController struct {
	Generator  *ai.Client
	Dispatcher *ai.Dispatcher
}

// ConceptInput defines the expected JSON structure for a concept request
type ConceptInput struct {
	Prompt string `json:"prompt" binding:"required"`
}

// MessageInput defines the expected JSON structure for a client-message request
type MessageInput struct {
	Kind       string `json:"kind" binding:"required"`
	ClientName string `json:"clientName" binding:"required"`
	Details    string `json:"details"`
}

// GenerateConcept produces a tattoo concept from a free-text idea.
func (ac *AIController) GenerateConcept(c *gin.Context) {
	var input ConceptInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	seq := ac.Dispatcher.Begin()
	text := ac.Generator.GenerateConcept(input.Prompt)
	accepted := ac.Dispatcher.Complete(seq, text)

	c.JSON(http.StatusOK, gin.H{
		"result":   text,
		"sequence": seq,
		"stale":    !accepted,
	})
}

// GenerateMessage produces a client-facing message of the given kind.
func (ac *AIController) GenerateMessage(c *gin.Context) {
	var input MessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	kind, err := ai.ParseMessageKind(input.Kind)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	seq := ac.Dispatcher.Begin()
	text := ac.Generator.GenerateMessage(kind, input.ClientName, input.Details)
	accepted := ac.Dispatcher.Complete(seq, text)

	c.JSON(http.StatusOK, gin.H{
		"result":   text,
		"sequence": seq,
		"stale":    !accepted,
	})
}

// GetLatest returns the most recently accepted generation result.
func (ac *AIController) GetLatest(c *gin.Context) {
	text, seq := ac.Dispatcher.Latest()
	c.JSON(http.StatusOK, gin.H{
		"result":   text,
		"sequence": seq,
	})
}
