package repository

import (
	"encontrapsi/internal/domain/entity"
	domainRepo "encontrapsi/internal/domain/repository"

	"gorm.io/gorm"
)

type questionRepository struct{}

func NewQuestionRepository() domainRepo.QuestionRepository {
	return &questionRepository{}
}

func (r *questionRepository) FindAll(db *gorm.DB) ([]entity.Question, error) {
	var questions []entity.Question
	err := db.Preload("Options", func(db *gorm.DB) *gorm.DB {
		return db.Order("question_options.label ASC")
	}).Order("order_num ASC").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindByIDs(db *gorm.DB, ids []uint) ([]entity.Question, error) {
	var questions []entity.Question
	err := db.Preload("Options", func(db *gorm.DB) *gorm.DB {
		return db.Order("question_options.label ASC")
	}).Where("id IN ?", ids).Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}
