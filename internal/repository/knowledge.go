package repository

import (
	"github.com/gecwayanad/admission-go/internal/domain/knowledge"
	"gorm.io/gorm"
)

type KnowledgeRepo interface {
	ListAll() ([]knowledge.Entry, error)
	Count() (int64, error)
	CreateBatch(entries []knowledge.Entry) error
	WithTx(tx *gorm.DB) KnowledgeRepo
}

type DBKnowledgeRepo struct {
	db *gorm.DB
}

func NewKnowledgeRepo(db *gorm.DB) *DBKnowledgeRepo {
	return &DBKnowledgeRepo{
		db: db,
	}
}

// ListAll returns entries in primary-key order. Lookup depends on this:
// the first matching entry in iteration order wins.
func (r *DBKnowledgeRepo) ListAll() ([]knowledge.Entry, error) {
	var entries []knowledge.Entry
	err := r.db.Order("id asc").Find(&entries).Error
	return entries, err
}

func (r *DBKnowledgeRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&knowledge.Entry{}).Count(&count).Error
	return count, err
}

func (r *DBKnowledgeRepo) CreateBatch(entries []knowledge.Entry) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.Create(&entries).Error
}

func (r *DBKnowledgeRepo) WithTx(tx *gorm.DB) KnowledgeRepo {
	if tx == nil {
		return r
	}
	return &DBKnowledgeRepo{
		db: tx,
	}
}
