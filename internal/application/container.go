package application

import (
	"github.com/gecwayanad/admission-go/internal/repository"
)

type Services struct {
	Auth      *AuthService
	Admission *AdmissionService
	Knowledge *KnowledgeService
}

func New(repos *repository.Repos) *Services {
	return &Services{
		Auth:      NewAuthService(repos),
		Admission: NewAdmissionService(repos),
		Knowledge: NewKnowledgeService(repos),
	}
}
