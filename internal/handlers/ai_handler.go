package handlers

import (
	"net/http"
	"os"

	"kasir-pos/internal/ai"

	"github.com/gin-gonic/gin"
)

type AskRequest struct {
	Message string `json:"message" binding:"required"`
}

// AskAI lets an admin ask the store assistant about inventory and sales.
func AskAI(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, KindValidation, "Message is required")
		return
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fail(c, http.StatusInternalServerError, KindInternal, "Server missing Gemini API key")
		return
	}

	response, err := ai.RunAgent(req.Message, apiKey)
	if err != nil {
		fail(c, http.StatusInternalServerError, KindInternal, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": response})
}
