package service

import (
	"fmt"
	"math/rand"

	"github.com/yourusername/trivia-game-api/internal/domain/entity"
	"github.com/yourusername/trivia-game-api/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-game-api/internal/pkg/errors"
)

// AllCategories — значение селектора категории, означающее "все категории"
const AllCategories uint = 0

// QuizService выбирает случайные вопросы для игры
type QuizService struct {
	questionRepo repository.QuestionRepository
}

// NewQuizService создает новый сервис викторины
func NewQuizService(questionRepo repository.QuestionRepository) *QuizService {
	return &QuizService{questionRepo: questionRepo}
}

// NextQuestion возвращает случайный вопрос из пула кандидатов, исключая уже
// заданные вопросы. Когда пул исчерпан, возвращается (nil, nil): "вопросов
// больше нет" — это не ошибка.
//
// Выборка идет напрямую из множества pool − previous, а не через
// повторные попытки с отбрасыванием: гарантированно завершается, даже если
// previousIDs содержит ID, отсутствующие в пуле.
func (s *QuizService) NextQuestion(categoryID uint, previousIDs []uint) (*entity.Question, error) {
	var (
		pool []entity.Question
		err  error
	)
	if categoryID == AllCategories {
		pool, err = s.questionRepo.GetAll()
	} else {
		pool, err = s.questionRepo.GetByCategory(categoryID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get quiz candidate pool: %w", err)
	}

	if len(pool) == 0 {
		return nil, fmt.Errorf("%w: no questions in quiz category %d", apperrors.ErrValidation, categoryID)
	}

	asked := make(map[uint]struct{}, len(previousIDs))
	for _, id := range previousIDs {
		asked[id] = struct{}{}
	}

	remaining := make([]entity.Question, 0, len(pool))
	for _, question := range pool {
		if _, ok := asked[question.ID]; !ok {
			remaining = append(remaining, question)
		}
	}

	if len(remaining) == 0 {
		return nil, nil
	}

	question := remaining[rand.Intn(len(remaining))]
	return &question, nil
}
