package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gecwayanad/admission-go/internal/application"
	"github.com/gecwayanad/admission-go/internal/domain/admin"
	"github.com/gecwayanad/admission-go/internal/domain/student"
	"github.com/gecwayanad/admission-go/pkg/response"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// createBranchAdmin provisions a branch-scoped admin directly in the
// database and returns a logged-in token.
func createBranchAdmin(t *testing.T, username, branch string) string {
	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	adm := admin.Admin{
		Username: username,
		Password: string(hashed),
		Role:     admin.RoleHOD,
		Branch:   branch,
	}
	require.NoError(t, gormDB.Create(&adm).Error)

	return loginAdmin(t, username, "secret123")
}

// createDocument appends a document row for a student, bypassing the
// upload endpoint (which needs the object store).
func createDocument(t *testing.T, studentID uint, name string) student.Document {
	doc := student.Document{
		StudentID: studentID,
		Name:      name,
		URL:       "/uploads/" + name,
		Status:    student.DocStatusPending,
	}
	require.NoError(t, gormDB.Create(&doc).Error)
	return doc
}

func parseStudent(t *testing.T, body []byte) student.Student {
	var stu student.Student
	require.NoError(t, json.Unmarshal(body, &stu))
	return stu
}

func TestUpdateStatusFlow(t *testing.T) {
	_, stu := registerStudent(t, "KEAM2025200", "secret123")
	adminToken := loginAdmin(t, application.DefaultAdminUsername, application.DefaultAdminPassword)

	body := map[string]interface{}{"studentId": stu.ID, "status": student.StatusVerified}
	resp := doRequest(t, "POST", "/admin/update-status", adminToken, body, http.StatusOK)
	require.Equal(t, student.StatusVerified, parseStudent(t, resp.Body.Bytes()).Status)

	// repeating the same status is a no-op success
	resp = doRequest(t, "POST", "/admin/update-status", adminToken, body, http.StatusOK)
	require.Equal(t, student.StatusVerified, parseStudent(t, resp.Body.Bytes()).Status)

	// any status can follow any other
	body["status"] = student.StatusSubmitted
	resp = doRequest(t, "POST", "/admin/update-status", adminToken, body, http.StatusOK)
	require.Equal(t, student.StatusSubmitted, parseStudent(t, resp.Body.Bytes()).Status)
}

func TestUpdateStatusInvalidValue(t *testing.T) {
	_, stu := registerStudent(t, "KEAM2025201", "secret123")
	adminToken := loginAdmin(t, application.DefaultAdminUsername, application.DefaultAdminPassword)

	body := map[string]interface{}{"studentId": stu.ID, "status": "Enrolled"}
	resp := doRequest(t, "POST", "/admin/update-status", adminToken, body, http.StatusBadRequest)
	require.Contains(t, resp.Body.String(), "invalid admission status")
}

func TestUpdateStatusUnknownStudent(t *testing.T) {
	adminToken := loginAdmin(t, application.DefaultAdminUsername, application.DefaultAdminPassword)

	body := map[string]interface{}{"studentId": 999999, "status": student.StatusVerified}
	resp := doRequest(t, "POST", "/admin/update-status", adminToken, body, http.StatusNotFound)
	require.Contains(t, resp.Body.String(), "Student not found")
}

func TestBranchScoping(t *testing.T) {
	_, stu := registerStudent(t, "KEAM2025202", "secret123")
	studentToken := loginStudent(t, "KEAM2025202", "secret123")
	cseToken := createBranchAdmin(t, "hod_cse", "CSE")

	// no branch set yet: invisible to the scoped admin
	resp := doRequest(t, "GET", "/admin/students", cseToken, nil, http.StatusOK)
	require.NotContains(t, resp.Body.String(), "KEAM2025202")

	body := map[string]interface{}{"studentId": stu.ID, "status": student.StatusVerified}
	doRequest(t, "POST", "/admin/update-status", cseToken, body, http.StatusNotFound)

	// student picks CSE, record enters the admin's scope
	update := map[string]interface{}{"branch": "CSE"}
	doRequest(t, "PUT", "/student/update", studentToken, update, http.StatusOK)

	resp = doRequest(t, "GET", "/admin/students", cseToken, nil, http.StatusOK)
	require.Contains(t, resp.Body.String(), "KEAM2025202")

	resp = doRequest(t, "POST", "/admin/update-status", cseToken, body, http.StatusOK)
	require.Equal(t, student.StatusVerified, parseStudent(t, resp.Body.Bytes()).Status)
}

func TestBranchScopingOtherBranchHidden(t *testing.T) {
	_, stu := registerStudent(t, "KEAM2025203", "secret123")
	studentToken := loginStudent(t, "KEAM2025203", "secret123")
	eceToken := createBranchAdmin(t, "hod_ece", "ECE")

	update := map[string]interface{}{"branch": "CSE"}
	doRequest(t, "PUT", "/student/update", studentToken, update, http.StatusOK)

	resp := doRequest(t, "GET", "/admin/students", eceToken, nil, http.StatusOK)
	require.NotContains(t, resp.Body.String(), "KEAM2025203")

	body := map[string]interface{}{"studentId": stu.ID, "status": student.StatusAdmitted}
	resp = doRequest(t, "POST", "/admin/update-status", eceToken, body, http.StatusNotFound)
	require.Contains(t, resp.Body.String(), "Student not found")
}

func TestVerifyDocumentFlow(t *testing.T) {
	_, stu := registerStudent(t, "KEAM2025204", "secret123")
	doc := createDocument(t, stu.ID, "keam-scorecard.pdf")
	adminToken := loginAdmin(t, application.DefaultAdminUsername, application.DefaultAdminPassword)

	body := map[string]interface{}{
		"studentId":     stu.ID,
		"documentId":    doc.ID,
		"status":        student.DocStatusRejected,
		"adminFeedback": "Scan is unreadable",
	}
	resp := doRequest(t, "POST", "/admin/verify", adminToken, body, http.StatusOK)

	var result response.VerifyResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	require.Equal(t, "Document Rejected", result.Message)
	require.Len(t, result.Student.Documents, 1)
	require.Equal(t, student.DocStatusRejected, result.Student.Documents[0].Status)
	require.Equal(t, "Scan is unreadable", result.Student.Documents[0].AdminFeedback)

	// student status is never derived from document review
	require.Equal(t, student.StatusSubmitted, result.Student.Status)

	// re-review with empty feedback keeps the earlier feedback
	body["status"] = student.DocStatusVerified
	body["adminFeedback"] = ""
	resp = doRequest(t, "POST", "/admin/verify", adminToken, body, http.StatusOK)
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	require.Equal(t, student.DocStatusVerified, result.Student.Documents[0].Status)
	require.Equal(t, "Scan is unreadable", result.Student.Documents[0].AdminFeedback)
}

func TestVerifyDocumentConcurrentWrites(t *testing.T) {
	_, stu := registerStudent(t, "KEAM2025210", "secret123")
	doc := createDocument(t, stu.ID, "income-certificate.pdf")
	adminToken := loginAdmin(t, application.DefaultAdminUsername, application.DefaultAdminPassword)

	payloads := []map[string]interface{}{
		{"studentId": stu.ID, "documentId": doc.ID, "status": student.DocStatusVerified, "adminFeedback": "looks good"},
		{"studentId": stu.ID, "documentId": doc.ID, "status": student.DocStatusRejected, "adminFeedback": "resubmit a clearer scan"},
	}

	var wg sync.WaitGroup
	codes := make([]int, len(payloads))
	for i, p := range payloads {
		wg.Add(1)
		go func(i int, p map[string]interface{}) {
			defer wg.Done()
			body, _ := json.Marshal(p)
			req := httptest.NewRequest("POST", "/admin/verify", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer "+adminToken)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			codes[i] = w.Code
		}(i, p)
	}
	wg.Wait()

	for i, code := range codes {
		require.Equal(t, http.StatusOK, code, "request %d failed", i)
	}

	// the stored row must equal exactly one of the submitted pairs,
	// never a mix of the two writes
	var stored student.Document
	require.NoError(t, gormDB.First(&stored, doc.ID).Error)
	first := stored.Status == student.DocStatusVerified && stored.AdminFeedback == "looks good"
	second := stored.Status == student.DocStatusRejected && stored.AdminFeedback == "resubmit a clearer scan"
	require.True(t, first || second, "mixed write persisted: %+v", stored)
}

func TestVerifyDocumentUnknownDocument(t *testing.T) {
	_, stu := registerStudent(t, "KEAM2025205", "secret123")
	adminToken := loginAdmin(t, application.DefaultAdminUsername, application.DefaultAdminPassword)

	body := map[string]interface{}{
		"studentId":  stu.ID,
		"documentId": 999999,
		"status":     student.DocStatusVerified,
	}
	resp := doRequest(t, "POST", "/admin/verify", adminToken, body, http.StatusNotFound)
	require.Contains(t, resp.Body.String(), "Document not found")
}

func TestUpdateRemarksOverwrites(t *testing.T) {
	_, stu := registerStudent(t, "KEAM2025206", "secret123")
	adminToken := loginAdmin(t, application.DefaultAdminUsername, application.DefaultAdminPassword)

	body := map[string]interface{}{"studentId": stu.ID, "adminRemarks": "first note"}
	resp := doRequest(t, "POST", "/admin/update-remarks", adminToken, body, http.StatusOK)
	require.Equal(t, "first note", parseStudent(t, resp.Body.Bytes()).AdminRemarks)

	body["adminRemarks"] = "second note"
	resp = doRequest(t, "POST", "/admin/update-remarks", adminToken, body, http.StatusOK)
	require.Equal(t, "second note", parseStudent(t, resp.Body.Bytes()).AdminRemarks)
}

func TestProfilePartialUpdate(t *testing.T) {
	studentToken, _ := registerStudent(t, "KEAM2025207", "secret123")

	update := map[string]interface{}{
		"personalDetails": map[string]string{"name": "Anjali K", "email": "anjali@test.com"},
		"category":        "SC",
	}
	resp := doRequest(t, "PUT", "/student/update", studentToken, update, http.StatusOK)
	stu := parseStudent(t, resp.Body.Bytes())
	require.Equal(t, "SC", stu.Category)
	require.NotNil(t, stu.PersonalDetails)
	require.Equal(t, "Anjali K", stu.PersonalDetails.Data().Name)
	require.Nil(t, stu.GuardianDetails)

	// a second update with another group leaves the first intact
	update = map[string]interface{}{
		"guardianDetails": map[string]string{"name": "Suresh", "relation": "Father"},
	}
	resp = doRequest(t, "PUT", "/student/update", studentToken, update, http.StatusOK)
	stu = parseStudent(t, resp.Body.Bytes())
	require.NotNil(t, stu.PersonalDetails)
	require.Equal(t, "Anjali K", stu.PersonalDetails.Data().Name)
	require.Equal(t, "Suresh", stu.GuardianDetails.Data().Name)
}

func TestProfileUpdateRejectsUnknownBranch(t *testing.T) {
	studentToken, _ := registerStudent(t, "KEAM2025208", "secret123")

	update := map[string]interface{}{"branch": "IT"}
	doRequest(t, "PUT", "/student/update", studentToken, update, http.StatusBadRequest)
}

func TestProfileReflectsAdminActions(t *testing.T) {
	studentToken, stu := registerStudent(t, "KEAM2025209", "secret123")
	adminToken := loginAdmin(t, application.DefaultAdminUsername, application.DefaultAdminPassword)

	body := map[string]interface{}{"studentId": stu.ID, "status": student.StatusActionRequired}
	doRequest(t, "POST", "/admin/update-status", adminToken, body, http.StatusOK)

	resp := doRequest(t, "GET", "/student/profile", studentToken, nil, http.StatusOK)
	require.Equal(t, student.StatusActionRequired, parseStudent(t, resp.Body.Bytes()).Status)
}
