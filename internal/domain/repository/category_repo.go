package repository

import (
	"github.com/yourusername/trivia-game-api/internal/domain/entity"
)

// CategoryRepository определяет методы для работы с категориями.
// Категории доступны только для чтения.
type CategoryRepository interface {
	GetAll() ([]entity.Category, error)
	GetByID(id uint) (*entity.Category, error)
}
