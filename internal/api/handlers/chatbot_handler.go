package handlers

import (
	"net/http"

	"github.com/gecwayanad/admission-go/internal/application"
	"github.com/gecwayanad/admission-go/internal/domain/knowledge"
	"github.com/gecwayanad/admission-go/internal/seed"
	"github.com/gecwayanad/admission-go/pkg/response"
	"github.com/gin-gonic/gin"
)

type ChatbotHandler struct {
	svc *application.KnowledgeService
}

func NewChatbotHandler(svc *application.KnowledgeService) *ChatbotHandler {
	return &ChatbotHandler{svc: svc}
}

func (h *ChatbotHandler) Query(c *gin.Context) {
	var input knowledge.QueryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Query is required"})
		return
	}

	answer, err := h.svc.Answer(input.Query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Chatbot error"})
		return
	}

	c.JSON(http.StatusOK, response.AnswerResponse{Answer: answer})
}

func (h *ChatbotHandler) Seed(c *gin.Context) {
	entries, err := seed.KnowledgeEntries()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Seed failed"})
		return
	}

	if err := h.svc.Seed(entries); err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Seed failed"})
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Knowledge base seeded"})
}
