package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gecwayanad/admission-go/internal/application"
	"github.com/gecwayanad/admission-go/internal/domain/student"
	"github.com/gecwayanad/admission-go/pkg/response"
	"github.com/gecwayanad/admission-go/pkg/utils"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc *application.AdmissionService
}

func NewAdminHandler(svc *application.AdmissionService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) GetStudents(c *gin.Context) {
	branch, err := utils.GetAdminBranchFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	students, err := h.svc.ListStudents(branch)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, students)
}

func (h *AdminHandler) VerifyDocument(c *gin.Context) {
	branch, err := utils.GetAdminBranchFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input student.VerifyDocumentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	stu, err := h.svc.VerifyDocument(branch, input)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.VerifyResponse{
		Message: fmt.Sprintf("Document %s", input.Status),
		Student: stu,
	})
}

func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	branch, err := utils.GetAdminBranchFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input student.UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	stu, err := h.svc.UpdateStatus(branch, input.StudentID, input.Status)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stu)
}

func (h *AdminHandler) UpdateRemarks(c *gin.Context) {
	branch, err := utils.GetAdminBranchFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input student.UpdateRemarksInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	stu, err := h.svc.UpdateRemarks(branch, input.StudentID, input.AdminRemarks)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stu)
}

func (h *AdminHandler) handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrStudentNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Student not found"})
	case errors.Is(err, application.ErrDocumentNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Document not found"})
	case errors.Is(err, application.ErrInvalidStatus), errors.Is(err, application.ErrInvalidDocStatus):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
	}
}
