package repository

import (
	"github.com/yourusername/trivia-game-api/internal/domain/entity"
)

// QuestionRepository определяет методы для работы с вопросами
type QuestionRepository interface {
	Create(question *entity.Question) error
	GetByID(id uint) (*entity.Question, error)
	// GetAll возвращает все вопросы, упорядоченные по возрастанию ID
	GetAll() ([]entity.Question, error)
	// GetByCategory возвращает вопросы указанной категории в естественном порядке
	GetByCategory(categoryID uint) ([]entity.Question, error)
	Delete(id uint) error
}
