package repository

import (
	"encontrapsi/internal/domain/entity"

	"gorm.io/gorm"
)

type QuestionRepository interface {
	FindAll(db *gorm.DB) ([]entity.Question, error)
	FindByIDs(db *gorm.DB, ids []uint) ([]entity.Question, error)
}
