package application

import (
	"errors"

	"github.com/gecwayanad/admission-go/internal/domain/admin"
	"github.com/gecwayanad/admission-go/internal/domain/student"
	"github.com/gecwayanad/admission-go/internal/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrStudentNotFound  = errors.New("student not found")
	ErrDocumentNotFound = errors.New("document not found")
	ErrInvalidStatus    = errors.New("invalid admission status")
	ErrInvalidDocStatus = errors.New("invalid document status")
)

// AdmissionService implements the admission-state and document-verification
// workflow: status overwrites, per-document verification, and the
// branch-scope policy gating admin access.
//
// Out-of-scope access to a specific student surfaces as ErrStudentNotFound
// rather than a permission error, so callers cannot probe which record IDs
// exist outside their scope.
type AdmissionService struct {
	Repos *repository.Repos
}

func NewAdmissionService(repos *repository.Repos) *AdmissionService {
	return &AdmissionService{
		Repos: repos,
	}
}

// branchCanAccess reports whether an admin scoped to adminBranch may act on
// stu. A record with no branch set is visible only to "All"-scoped admins.
func branchCanAccess(adminBranch string, stu student.Student) bool {
	if adminBranch == admin.BranchAll {
		return true
	}
	return stu.Branch != "" && stu.Branch == adminBranch
}

// getScoped loads a student and applies the branch-scope rule. Only a
// genuinely missing record maps to ErrStudentNotFound; store failures
// surface as-is.
func (s *AdmissionService) getScoped(adminBranch string, studentID uint) (student.Student, error) {
	stu, err := s.Repos.Student.GetByID(studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return student.Student{}, ErrStudentNotFound
		}
		return student.Student{}, err
	}
	if !branchCanAccess(adminBranch, stu) {
		return student.Student{}, ErrStudentNotFound
	}
	return stu, nil
}

// ListStudents returns records visible under the admin's branch scope.
func (s *AdmissionService) ListStudents(adminBranch string) ([]student.Student, error) {
	if adminBranch == admin.BranchAll {
		return s.Repos.Student.ListAll()
	}
	return s.Repos.Student.ListByBranch(adminBranch)
}

// GetStudent reads one record by ID. Used for the applicant's own-profile
// view; ownership is checked by the caller against the token principal.
func (s *AdmissionService) GetStudent(studentID uint) (student.Student, error) {
	stu, err := s.Repos.Student.GetByID(studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return student.Student{}, ErrStudentNotFound
		}
		return student.Student{}, err
	}
	return stu, nil
}

// UpdateStatus overwrites the admission status. There is deliberately no
// transition graph: any status may follow any other, so an admin can always
// correct a mistake (Admitted back to Submitted included).
func (s *AdmissionService) UpdateStatus(adminBranch string, studentID uint, status string) (student.Student, error) {
	if !student.ValidStatus(status) {
		return student.Student{}, ErrInvalidStatus
	}

	if _, err := s.getScoped(adminBranch, studentID); err != nil {
		return student.Student{}, err
	}

	if err := s.Repos.Student.UpdateStatus(studentID, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return student.Student{}, ErrStudentNotFound
		}
		return student.Student{}, err
	}

	return s.GetStudent(studentID)
}

// VerifyDocument overwrites one document's status and optionally its
// feedback. Empty feedback leaves the prior feedback untouched. The
// student's own status is never modified here; flagging "Action Required"
// is a separate, manual admin call.
func (s *AdmissionService) VerifyDocument(adminBranch string, input student.VerifyDocumentInput) (student.Student, error) {
	if !student.ValidDocStatus(input.Status) {
		return student.Student{}, ErrInvalidDocStatus
	}

	if _, err := s.getScoped(adminBranch, input.StudentID); err != nil {
		return student.Student{}, err
	}

	doc, err := s.Repos.Student.GetDocument(input.StudentID, input.DocumentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return student.Student{}, ErrDocumentNotFound
		}
		return student.Student{}, err
	}

	doc.Status = input.Status
	if input.AdminFeedback != "" {
		doc.AdminFeedback = input.AdminFeedback
	}
	if err := s.Repos.Student.SaveDocument(&doc); err != nil {
		return student.Student{}, err
	}

	return s.GetStudent(input.StudentID)
}

// UpdateRemarks overwrites the admin remarks wholesale. Latest write wins;
// prior remarks are not retained.
func (s *AdmissionService) UpdateRemarks(adminBranch string, studentID uint, remarks string) (student.Student, error) {
	if _, err := s.getScoped(adminBranch, studentID); err != nil {
		return student.Student{}, err
	}

	if err := s.Repos.Student.UpdateRemarks(studentID, remarks); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return student.Student{}, ErrStudentNotFound
		}
		return student.Student{}, err
	}

	return s.GetStudent(studentID)
}

// UpdateProfile applies the supplied field groups. A supplied group replaces
// the stored group wholesale; omitted groups are left unchanged.
func (s *AdmissionService) UpdateProfile(studentID uint, input student.UpdateStudentInput) (student.Student, error) {
	stu, err := s.Repos.Student.GetByID(studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return student.Student{}, ErrStudentNotFound
		}
		return student.Student{}, err
	}

	if input.PersonalDetails != nil {
		v := datatypes.NewJSONType(*input.PersonalDetails)
		stu.PersonalDetails = &v
	}
	if input.GuardianDetails != nil {
		v := datatypes.NewJSONType(*input.GuardianDetails)
		stu.GuardianDetails = &v
	}
	if input.AcademicDetails != nil {
		v := datatypes.NewJSONType(*input.AcademicDetails)
		stu.AcademicDetails = &v
	}
	if input.Category != nil {
		stu.Category = *input.Category
	}
	if input.Branch != nil {
		stu.Branch = *input.Branch
	}

	if err := s.Repos.Student.Save(&stu); err != nil {
		return student.Student{}, err
	}
	return s.GetStudent(studentID)
}

// AppendDocument adds a new document entry with status Pending. Names are
// not de-duplicated; each upload gets its own identity and lifecycle.
func (s *AdmissionService) AppendDocument(studentID uint, name, url string) (student.Student, error) {
	if _, err := s.Repos.Student.GetByID(studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return student.Student{}, ErrStudentNotFound
		}
		return student.Student{}, err
	}

	doc := student.Document{
		StudentID: studentID,
		Name:      name,
		URL:       url,
		Status:    student.DocStatusPending,
	}
	if err := s.Repos.Student.AddDocument(&doc); err != nil {
		return student.Student{}, err
	}

	return s.GetStudent(studentID)
}
