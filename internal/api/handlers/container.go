package handlers

import (
	"github.com/gecwayanad/admission-go/internal/application"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Auth    *AuthHandler
	Student *StudentHandler
	Admin   *AdminHandler
	Chatbot *ChatbotHandler
	Router  *gin.Engine
}

func New(svc *application.Services, router *gin.Engine) *Handlers {
	h := &Handlers{
		Auth:    NewAuthHandler(svc.Auth),
		Student: NewStudentHandler(svc.Admission),
		Admin:   NewAdminHandler(svc.Admission),
		Chatbot: NewChatbotHandler(svc.Knowledge),
		Router:  router,
	}
	return h
}
