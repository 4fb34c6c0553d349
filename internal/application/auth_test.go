package application

import (
	"errors"
	"testing"
	"time"

	"github.com/gecwayanad/admission-go/internal/api/middleware"
	"github.com/gecwayanad/admission-go/internal/domain/admin"
	"github.com/gecwayanad/admission-go/internal/domain/student"
	"github.com/gecwayanad/admission-go/internal/repository"
	"github.com/gecwayanad/admission-go/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupAuthServiceMocks(t *testing.T) (*AuthService, *mock.MockStudentRepo, *mock.MockAdminRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockStudent := mock.NewMockStudentRepo(ctrl)
	mockAdmin := mock.NewMockAdminRepo(ctrl)
	repos := &repository.Repos{
		Student: mockStudent,
		Admin:   mockAdmin,
	}
	svc := NewAuthService(repos)
	return svc, mockStudent, mockAdmin
}

func stubStudentToken(t *testing.T, token string) {
	oldGen := middleware.GenerateStudentToken
	middleware.GenerateStudentToken = func(studentID uint, exp time.Duration) (string, error) {
		return token, nil
	}
	t.Cleanup(func() { middleware.GenerateStudentToken = oldGen })
}

func stubAdminToken(t *testing.T, token string) {
	oldGen := middleware.GenerateAdminToken
	middleware.GenerateAdminToken = func(a admin.Admin, exp time.Duration) (string, error) {
		return token, nil
	}
	t.Cleanup(func() { middleware.GenerateAdminToken = oldGen })
}

// --------------------- RegisterStudent ---------------------
func TestRegisterStudent_Success(t *testing.T) {
	svc, mockStudent, _ := setupAuthServiceMocks(t)
	stubStudentToken(t, "token123")

	mockStudent.EXPECT().GetByAppNumber("KEAM2025001").Return(student.Student{}, gorm.ErrRecordNotFound)
	var saved student.Student
	mockStudent.EXPECT().Save(gomock.Any()).DoAndReturn(func(s *student.Student) error {
		s.ID = 1
		saved = *s
		return nil
	})

	stu, token, err := svc.RegisterStudent(student.RegisterInput{
		KeamAppNumber: "KEAM2025001",
		Password:      "secret123",
	})
	assert.NoError(t, err)
	assert.Equal(t, "token123", token)
	assert.Equal(t, "KEAM2025001", stu.KeamAppNumber)
	assert.Equal(t, student.StatusSubmitted, saved.Status)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.Password), []byte("secret123")))
}

func TestRegisterStudent_AlreadyRegistered(t *testing.T) {
	svc, mockStudent, _ := setupAuthServiceMocks(t)

	mockStudent.EXPECT().GetByAppNumber("KEAM2025001").Return(student.Student{ID: 1}, nil)

	_, _, err := svc.RegisterStudent(student.RegisterInput{
		KeamAppNumber: "KEAM2025001",
		Password:      "secret123",
	})
	assert.Equal(t, ErrAlreadyRegistered, err)
}

func TestRegisterStudent_DuplicateOnSaveRace(t *testing.T) {
	svc, mockStudent, _ := setupAuthServiceMocks(t)

	// the lookup misses but a racing registration wins the insert,
	// so Save trips the unique index
	mockStudent.EXPECT().GetByAppNumber("KEAM2025001").Return(student.Student{}, gorm.ErrRecordNotFound)
	mockStudent.EXPECT().Save(gomock.Any()).Return(gorm.ErrDuplicatedKey)

	_, _, err := svc.RegisterStudent(student.RegisterInput{
		KeamAppNumber: "KEAM2025001",
		Password:      "secret123",
	})
	assert.Equal(t, ErrAlreadyRegistered, err)
}

// --------------------- LoginStudent ---------------------
func TestLoginStudent_Success(t *testing.T) {
	svc, mockStudent, _ := setupAuthServiceMocks(t)
	stubStudentToken(t, "token123")

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	stu := student.Student{ID: 1, KeamAppNumber: "KEAM2025001", Password: string(hashed)}
	mockStudent.EXPECT().GetByAppNumber("KEAM2025001").Return(stu, nil)

	got, token, err := svc.LoginStudent("KEAM2025001", "secret123")
	assert.NoError(t, err)
	assert.Equal(t, "KEAM2025001", got.KeamAppNumber)
	assert.Equal(t, "token123", token)
}

func TestLoginStudent_InvalidPassword(t *testing.T) {
	svc, mockStudent, _ := setupAuthServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	stu := student.Student{ID: 1, KeamAppNumber: "KEAM2025001", Password: string(hashed)}
	mockStudent.EXPECT().GetByAppNumber("KEAM2025001").Return(stu, nil)

	_, token, err := svc.LoginStudent("KEAM2025001", "wrong")
	assert.Equal(t, ErrInvalidCredentials, err)
	assert.Empty(t, token)
}

func TestLoginStudent_NotFound(t *testing.T) {
	svc, mockStudent, _ := setupAuthServiceMocks(t)

	mockStudent.EXPECT().GetByAppNumber("KEAM2025099").Return(student.Student{}, errors.New("record not found"))

	_, token, err := svc.LoginStudent("KEAM2025099", "secret123")
	assert.Equal(t, ErrInvalidCredentials, err)
	assert.Empty(t, token)
}

// --------------------- LoginAdmin ---------------------
func TestLoginAdmin_Success(t *testing.T) {
	svc, _, mockAdmin := setupAuthServiceMocks(t)
	stubAdminToken(t, "admintoken")

	hashed, _ := bcrypt.GenerateFromPassword([]byte(DefaultAdminPassword), bcrypt.DefaultCost)
	adm := admin.Admin{
		ID:       1,
		Username: DefaultAdminUsername,
		Password: string(hashed),
		Role:     admin.RoleAdmissionClerk,
		Branch:   admin.BranchAll,
	}
	mockAdmin.EXPECT().GetByUsername(DefaultAdminUsername).Return(adm, nil)

	got, token, err := svc.LoginAdmin(DefaultAdminUsername, DefaultAdminPassword)
	assert.NoError(t, err)
	assert.Equal(t, admin.BranchAll, got.Branch)
	assert.Equal(t, "admintoken", token)
}

func TestLoginAdmin_InvalidPassword(t *testing.T) {
	svc, _, mockAdmin := setupAuthServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte(DefaultAdminPassword), bcrypt.DefaultCost)
	adm := admin.Admin{ID: 1, Username: DefaultAdminUsername, Password: string(hashed)}
	mockAdmin.EXPECT().GetByUsername(DefaultAdminUsername).Return(adm, nil)

	_, token, err := svc.LoginAdmin(DefaultAdminUsername, "wrong")
	assert.Equal(t, ErrInvalidCredentials, err)
	assert.Empty(t, token)
}

// --------------------- SeedDefaultAdmin ---------------------
func TestSeedDefaultAdmin_CreatesWhenMissing(t *testing.T) {
	svc, _, mockAdmin := setupAuthServiceMocks(t)

	mockAdmin.EXPECT().GetByUsername(DefaultAdminUsername).Return(admin.Admin{}, gorm.ErrRecordNotFound)
	var saved admin.Admin
	mockAdmin.EXPECT().Save(gomock.Any()).DoAndReturn(func(a *admin.Admin) error {
		saved = *a
		return nil
	})

	err := svc.SeedDefaultAdmin()
	assert.NoError(t, err)
	assert.Equal(t, DefaultAdminUsername, saved.Username)
	assert.Equal(t, admin.RoleAdmissionClerk, saved.Role)
	assert.Equal(t, admin.BranchAll, saved.Branch)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.Password), []byte(DefaultAdminPassword)))
}

func TestSeedDefaultAdmin_UpsertsExisting(t *testing.T) {
	svc, _, mockAdmin := setupAuthServiceMocks(t)

	existing := admin.Admin{ID: 1, Username: DefaultAdminUsername, Password: "stale", Branch: "CSE"}
	mockAdmin.EXPECT().GetByUsername(DefaultAdminUsername).Return(existing, nil)
	var saved admin.Admin
	mockAdmin.EXPECT().Save(gomock.Any()).DoAndReturn(func(a *admin.Admin) error {
		saved = *a
		return nil
	})

	err := svc.SeedDefaultAdmin()
	assert.NoError(t, err)
	assert.Equal(t, uint(1), saved.ID)
	assert.Equal(t, admin.BranchAll, saved.Branch)
}
