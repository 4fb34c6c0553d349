package repository

//go:generate mockgen -destination=mock/repos.go -package=mock github.com/gecwayanad/admission-go/internal/repository StudentRepo,AdminRepo,KnowledgeRepo

import (
	"gorm.io/gorm"
)

type Repos struct {
	Student   StudentRepo
	Admin     AdminRepo
	Knowledge KnowledgeRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		Student:   NewStudentRepo(db),
		Admin:     NewAdminRepo(db),
		Knowledge: NewKnowledgeRepo(db),
		db:        db,
	}
}

func (r *Repos) Begin() *gorm.DB {
	return r.db.Begin()
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		Student:   r.Student.WithTx(tx),
		Admin:     r.Admin.WithTx(tx),
		Knowledge: r.Knowledge.WithTx(tx),
		db:        tx,
	}
}

func (r *Repos) ExecTx(fn func(*Repos) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
