package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gecwayanad/admission-go/internal/application"
	"github.com/gecwayanad/admission-go/internal/domain/admin"
	"github.com/gecwayanad/admission-go/internal/domain/student"
	"github.com/gecwayanad/admission-go/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type AuthHandler struct {
	svc *application.AuthService
}

func NewAuthHandler(svc *application.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Register godoc
// @Summary Student registration by KEAM application number
// @Tags auth
// @Accept json
// @Produce json
// @Param input body student.RegisterInput true "Registration info"
// @Success 201 {object} response.TokenResponse "Token and created record"
// @Failure 400 {object} response.ErrorResponse "Invalid input or already registered"
// @Failure 500 {object} response.ErrorResponse "Failed to register"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var input student.RegisterInput

	if err := c.ShouldBindJSON(&input); err != nil {
		// Try to produce friendly validation messages for the frontend
		var verr validator.ValidationErrors
		if errors.As(err, &verr) {
			msgs := make([]string, 0, len(verr))

			labels := map[string]string{
				"KeamAppNumber": "KEAM application number",
				"Password":      "password",
			}

			for _, fe := range verr {
				field := fe.StructField()
				lbl, ok := labels[field]
				if !ok {
					lbl = strings.ToLower(field)
				}

				var msg string
				switch fe.Tag() {
				case "required":
					msg = fmt.Sprintf("%s is required", lbl)
				case "min":
					msg = fmt.Sprintf("%s must be at least %s characters", lbl, fe.Param())
				default:
					msg = fmt.Sprintf("%s is invalid", lbl)
				}
				msgs = append(msgs, msg)
			}

			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: strings.Join(msgs, "; ")})
			return
		}

		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	stu, token, err := h.svc.RegisterStudent(input)
	if err != nil {
		if errors.Is(err, application.ErrAlreadyRegistered) {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Already registered"})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, response.TokenResponse{Token: token, Student: stu})
}

// Login godoc
// @Summary Student login
// @Tags auth
// @Accept json
// @Produce json
// @Param input body student.LoginInput true "Credentials"
// @Success 200 {object} response.TokenResponse "Token and record"
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 401 {object} response.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var input student.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	stu, token, err := h.svc.LoginStudent(input.KeamAppNumber, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, response.TokenResponse{Token: token, Student: stu})
}

// AdminLogin godoc
// @Summary Admin login
// @Tags auth
// @Accept json
// @Produce json
// @Param input body admin.LoginInput true "Credentials"
// @Success 200 {object} response.AdminTokenResponse "Token and admin info"
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 401 {object} response.ErrorResponse "Invalid credentials"
// @Router /auth/admin/login [post]
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var input admin.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	adm, token, err := h.svc.LoginAdmin(input.Username, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, response.AdminTokenResponse{
		Token: token,
		Admin: response.AdminInfo{
			Username: adm.Username,
			Role:     adm.Role,
			Branch:   adm.Branch,
		},
	})
}

// SeedAdmin upserts the default admin account.
func (h *AuthHandler) SeedAdmin(c *gin.Context) {
	if err := h.svc.SeedDefaultAdmin(); err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Admin seeded: " + application.DefaultAdminUsername})
}
