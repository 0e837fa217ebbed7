package service

import (
	"fmt"

	"github.com/yourusername/trivia-game-api/internal/domain/entity"
	"github.com/yourusername/trivia-game-api/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-game-api/internal/pkg/errors"
)

// QuestionService предоставляет методы для работы с вопросами и категориями
type QuestionService struct {
	questionRepo repository.QuestionRepository
	categoryRepo repository.CategoryRepository
}

// NewQuestionService создает новый сервис вопросов
func NewQuestionService(
	questionRepo repository.QuestionRepository,
	categoryRepo repository.CategoryRepository,
) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
	}
}

// Categories возвращает отображение id категории -> название
func (s *QuestionService) Categories() (map[uint]string, error) {
	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	formatted := make(map[uint]string, len(categories))
	for _, category := range categories {
		formatted[category.ID] = category.Type
	}
	return formatted, nil
}

// ListQuestions возвращает страницу вопросов (по возрастанию ID), общее
// количество вопросов и отображение категорий. Пустая страница считается
// ошибкой not-found, а не пустым успехом.
func (s *QuestionService) ListQuestions(page int) ([]entity.Question, int, map[uint]string, error) {
	questions, err := s.questionRepo.GetAll()
	if err != nil {
		return nil, 0, nil, fmt.Errorf("failed to get questions: %w", err)
	}

	current := PaginateQuestions(questions, page)
	if len(current) == 0 {
		return nil, 0, nil, apperrors.ErrNotFound
	}

	categories, err := s.Categories()
	if err != nil {
		return nil, 0, nil, err
	}

	return current, len(questions), categories, nil
}

// ListByCategory возвращает страницу вопросов категории, название категории
// и общее количество совпадений. Сначала проверяется существование самой
// категории: неизвестная категория — not-found до обращения к вопросам.
func (s *QuestionService) ListByCategory(categoryID uint, page int) ([]entity.Question, string, int, error) {
	category, err := s.categoryRepo.GetByID(categoryID)
	if err != nil {
		return nil, "", 0, err
	}

	questions, err := s.questionRepo.GetByCategory(categoryID)
	if err != nil {
		return nil, "", 0, fmt.Errorf("failed to get questions for category %d: %w", categoryID, err)
	}

	current := PaginateQuestions(questions, page)
	if len(current) == 0 {
		return nil, "", 0, apperrors.ErrNotFound
	}

	return current, category.Type, len(questions), nil
}

// SearchQuestions возвращает все вопросы, текст которых содержит подстроку
// поиска (без учёта регистра, без пагинации). Ноль совпадений — not-found.
func (s *QuestionService) SearchQuestions(term string) ([]entity.Question, error) {
	questions, err := s.questionRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get questions: %w", err)
	}

	matched := make([]entity.Question, 0)
	for _, question := range questions {
		if question.MatchesSearch(term) {
			matched = append(matched, question)
		}
	}

	if len(matched) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return matched, nil
}

// CreateQuestion сохраняет новый вопрос и возвращает его с присвоенным ID
func (s *QuestionService) CreateQuestion(text, answer string, categoryID uint, difficulty int) (*entity.Question, error) {
	question := &entity.Question{
		Text:       text,
		Answer:     answer,
		Category:   categoryID,
		Difficulty: difficulty,
	}

	if !question.IsComplete() {
		return nil, fmt.Errorf("%w: question, answer, category and difficulty are required", apperrors.ErrValidation)
	}

	if err := s.questionRepo.Create(question); err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}
	return question, nil
}

// DeleteQuestion удаляет вопрос по ID. Отсутствующий ID — not-found,
// повторное удаление того же ID вернет ту же ошибку.
func (s *QuestionService) DeleteQuestion(id uint) error {
	if _, err := s.questionRepo.GetByID(id); err != nil {
		return err
	}

	if err := s.questionRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete question %d: %w", id, err)
	}
	return nil
}

// AllQuestions возвращает полный список вопросов для экспорта
func (s *QuestionService) AllQuestions() ([]entity.Question, error) {
	questions, err := s.questionRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get questions: %w", err)
	}
	return questions, nil
}
