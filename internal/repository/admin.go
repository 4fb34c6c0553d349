package repository

import (
	"github.com/gecwayanad/admission-go/internal/domain/admin"
	"gorm.io/gorm"
)

type AdminRepo interface {
	GetByUsername(username string) (admin.Admin, error)
	Save(a *admin.Admin) error
	WithTx(tx *gorm.DB) AdminRepo
}

type DBAdminRepo struct {
	db *gorm.DB
}

func NewAdminRepo(db *gorm.DB) *DBAdminRepo {
	return &DBAdminRepo{
		db: db,
	}
}

func (r *DBAdminRepo) GetByUsername(username string) (admin.Admin, error) {
	var a admin.Admin
	if err := r.db.Where("username = ?", username).First(&a).Error; err != nil {
		return a, err
	}
	return a, nil
}

func (r *DBAdminRepo) Save(a *admin.Admin) error {
	return r.db.Save(a).Error
}

func (r *DBAdminRepo) WithTx(tx *gorm.DB) AdminRepo {
	if tx == nil {
		return r
	}
	return &DBAdminRepo{
		db: tx,
	}
}
