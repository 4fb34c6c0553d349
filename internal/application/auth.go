package application

import (
	"errors"

	"github.com/gecwayanad/admission-go/internal/api/middleware"
	"github.com/gecwayanad/admission-go/internal/domain/admin"
	"github.com/gecwayanad/admission-go/internal/domain/student"
	"github.com/gecwayanad/admission-go/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrAlreadyRegistered   = errors.New("already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrPasswordHashFailure = errors.New("failed to hash password")
)

// Default admin seeded at startup (and via /auth/seed-admin).
const (
	DefaultAdminUsername = "admin_gecw"
	DefaultAdminPassword = "admin123"
)

type AuthService struct {
	Repos *repository.Repos
}

func NewAuthService(repos *repository.Repos) *AuthService {
	return &AuthService{
		Repos: repos,
	}
}

// RegisterStudent creates the admission record with only identity and
// credential set. Status defaults to Submitted; everything else is filled
// in later through profile updates.
func (s *AuthService) RegisterStudent(input student.RegisterInput) (student.Student, string, error) {
	_, err := s.Repos.Student.GetByAppNumber(input.KeamAppNumber)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return student.Student{}, "", err
	}
	if err == nil {
		return student.Student{}, "", ErrAlreadyRegistered
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return student.Student{}, "", ErrPasswordHashFailure
	}

	stu := student.Student{
		KeamAppNumber: input.KeamAppNumber,
		Password:      string(hashed),
		Status:        student.StatusSubmitted,
	}
	if err := s.Repos.Student.Save(&stu); err != nil {
		// Two racing registrations can both pass the lookup above; the
		// loser hits the unique index on keam_app_number.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return student.Student{}, "", ErrAlreadyRegistered
		}
		return student.Student{}, "", err
	}

	token, err := middleware.GenerateStudentToken(stu.ID, middleware.TokenExpiry)
	if err != nil {
		return student.Student{}, "", err
	}
	return stu, token, nil
}

func (s *AuthService) LoginStudent(appNumber, password string) (student.Student, string, error) {
	stu, err := s.Repos.Student.GetByAppNumber(appNumber)
	if err != nil {
		return student.Student{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stu.Password), []byte(password)); err != nil {
		return student.Student{}, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateStudentToken(stu.ID, middleware.TokenExpiry)
	if err != nil {
		return student.Student{}, "", err
	}
	return stu, token, nil
}

func (s *AuthService) LoginAdmin(username, password string) (admin.Admin, string, error) {
	adm, err := s.Repos.Admin.GetByUsername(username)
	if err != nil {
		return admin.Admin{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(adm.Password), []byte(password)); err != nil {
		return admin.Admin{}, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateAdminToken(adm, middleware.TokenExpiry)
	if err != nil {
		return admin.Admin{}, "", err
	}
	return adm, token, nil
}

// SeedDefaultAdmin upserts the built-in admin account so a fresh deployment
// is usable without manual provisioning.
func (s *AuthService) SeedDefaultAdmin() error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(DefaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return ErrPasswordHashFailure
	}

	adm, err := s.Repos.Admin.GetByUsername(DefaultAdminUsername)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	adm.Username = DefaultAdminUsername
	adm.Password = string(hashed)
	adm.Role = admin.RoleAdmissionClerk
	adm.Branch = admin.BranchAll
	return s.Repos.Admin.Save(&adm)
}
