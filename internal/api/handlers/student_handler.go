package handlers

import (
	"errors"
	"net/http"
	"path/filepath"

	"github.com/gecwayanad/admission-go/internal/application"
	"github.com/gecwayanad/admission-go/internal/domain/student"
	"github.com/gecwayanad/admission-go/minio"
	"github.com/gecwayanad/admission-go/pkg/response"
	"github.com/gecwayanad/admission-go/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type StudentHandler struct {
	svc *application.AdmissionService
}

func NewStudentHandler(svc *application.AdmissionService) *StudentHandler {
	return &StudentHandler{svc: svc}
}

// Profile godoc
// @Summary Get the authenticated student's admission record
// @Tags student
// @Security BearerAuth
// @Produce json
// @Success 200 {object} student.Student
// @Failure 404 {object} response.ErrorResponse "Record not found"
// @Router /student/profile [get]
func (h *StudentHandler) Profile(c *gin.Context) {
	studentID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	stu, err := h.svc.GetStudent(studentID)
	if err != nil {
		if errors.Is(err, application.ErrStudentNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Student profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, stu)
}

// Update godoc
// @Summary Partially update the student's profile
// @Description Supplied field groups replace the stored group wholesale; omitted groups are untouched.
// @Tags student
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body student.UpdateStudentInput true "Fields to update"
// @Success 200 {object} student.Student
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 404 {object} response.ErrorResponse "Record not found"
// @Router /student/update [put]
func (h *StudentHandler) Update(c *gin.Context) {
	studentID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input student.UpdateStudentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	stu, err := h.svc.UpdateProfile(studentID, input)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stu)
}

// Upload accepts one multipart file under "document" plus an optional
// display name, stores the content in the object store and appends a
// Pending document entry to the student's record.
func (h *StudentHandler) Upload(c *gin.Context) {
	studentID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	fileHeader, err := c.FormFile("document")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Please upload a file"})
		return
	}

	name := c.PostForm("name")
	if name == "" {
		name = fileHeader.Filename
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to read file"})
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	objectName := uuid.New().String() + filepath.Ext(fileHeader.Filename)
	if err := minio.UploadObject(c.Request.Context(), objectName, contentType, file, fileHeader.Size); err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to store file"})
		return
	}

	stu, err := h.svc.AppendDocument(studentID, name, "/uploads/"+objectName)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stu)
}

// Download streams a stored document back to the client.
func (h *StudentHandler) Download(c *gin.Context) {
	objectName := c.Param("file")
	if objectName == "" || objectName == "/" {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Missing file name"})
		return
	}
	// Wildcard params keep their leading slash
	if objectName[0] == '/' {
		objectName = objectName[1:]
	}

	data, contentType, err := minio.DownloadObject(c.Request.Context(), objectName)
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "File not found"})
		return
	}

	c.Data(http.StatusOK, contentType, data)
}

func (h *StudentHandler) handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrStudentNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Student not found"})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
	}
}
