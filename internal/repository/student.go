package repository

import (
	"github.com/gecwayanad/admission-go/internal/domain/student"
	"gorm.io/gorm"
)

type StudentRepo interface {
	GetByAppNumber(appNumber string) (student.Student, error)
	GetByID(id uint) (student.Student, error)
	ListAll() ([]student.Student, error)
	ListByBranch(branch string) ([]student.Student, error)
	Save(s *student.Student) error
	UpdateStatus(id uint, status string) error
	UpdateRemarks(id uint, remarks string) error
	AddDocument(doc *student.Document) error
	GetDocument(studentID, docID uint) (student.Document, error)
	SaveDocument(doc *student.Document) error
	WithTx(tx *gorm.DB) StudentRepo
}

type DBStudentRepo struct {
	db *gorm.DB
}

func NewStudentRepo(db *gorm.DB) *DBStudentRepo {
	return &DBStudentRepo{
		db: db,
	}
}

func (r *DBStudentRepo) GetByAppNumber(appNumber string) (student.Student, error) {
	var s student.Student
	if err := r.db.Preload("Documents").Where("keam_app_number = ?", appNumber).First(&s).Error; err != nil {
		return s, err
	}
	return s, nil
}

func (r *DBStudentRepo) GetByID(id uint) (student.Student, error) {
	var s student.Student
	if err := r.db.Preload("Documents").First(&s, id).Error; err != nil {
		return s, err
	}
	return s, nil
}

func (r *DBStudentRepo) ListAll() ([]student.Student, error) {
	var students []student.Student
	err := r.db.Preload("Documents").Order("created_at desc").Find(&students).Error
	return students, err
}

func (r *DBStudentRepo) ListByBranch(branch string) ([]student.Student, error) {
	var students []student.Student
	err := r.db.Preload("Documents").Where("branch = ?", branch).Order("created_at desc").Find(&students).Error
	return students, err
}

func (r *DBStudentRepo) Save(s *student.Student) error {
	return r.db.Omit("Documents").Save(s).Error
}

// UpdateStatus is a single-column overwrite; concurrent writers race with
// last-write-wins, there is no version check.
func (r *DBStudentRepo) UpdateStatus(id uint, status string) error {
	res := r.db.Model(&student.Student{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DBStudentRepo) UpdateRemarks(id uint, remarks string) error {
	res := r.db.Model(&student.Student{}).Where("id = ?", id).Update("admin_remarks", remarks)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DBStudentRepo) AddDocument(doc *student.Document) error {
	return r.db.Create(doc).Error
}

func (r *DBStudentRepo) GetDocument(studentID, docID uint) (student.Document, error) {
	var doc student.Document
	if err := r.db.Where("id = ? AND student_id = ?", docID, studentID).First(&doc).Error; err != nil {
		return doc, err
	}
	return doc, nil
}

func (r *DBStudentRepo) SaveDocument(doc *student.Document) error {
	return r.db.Save(doc).Error
}

func (r *DBStudentRepo) WithTx(tx *gorm.DB) StudentRepo {
	if tx == nil {
		return r
	}
	return &DBStudentRepo{
		db: tx,
	}
}
