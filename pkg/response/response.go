package response

import "github.com/gecwayanad/admission-go/internal/domain/student"

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse is returned on student registration and login.
type TokenResponse struct {
	Token   string          `json:"token"`
	Student student.Student `json:"student"`
}

type AdminInfo struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Branch   string `json:"branch"`
}

type AdminTokenResponse struct {
	Token string    `json:"token"`
	Admin AdminInfo `json:"admin"`
}

type AnswerResponse struct {
	Answer string `json:"answer"`
}

// VerifyResponse carries the refreshed record after a document review.
type VerifyResponse struct {
	Message string          `json:"message"`
	Student student.Student `json:"student"`
}
