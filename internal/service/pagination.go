package service

import (
	"github.com/yourusername/trivia-game-api/internal/domain/entity"
)

// QuestionsPerPage задает фиксированный размер страницы вопросов
const QuestionsPerPage = 10

// PaginateQuestions возвращает страницу вопросов: срез
// [(page-1)*size : (page-1)*size+size] от упорядоченной последовательности.
// Страница за пределами данных дает пустой срез — решение о том, что это
// ошибка, принимает вызывающая сторона. Без переноса и без привязки
// к последней странице.
func PaginateQuestions(questions []entity.Question, page int) []entity.Question {
	if page < 1 {
		page = 1
	}

	// Проверяем номер страницы до вычисления смещения: для гигантских
	// page произведение (page-1)*size переполняется и срез паникует
	lastPage := (len(questions) + QuestionsPerPage - 1) / QuestionsPerPage
	if page > lastPage {
		return nil
	}

	start := (page - 1) * QuestionsPerPage

	end := start + QuestionsPerPage
	if end > len(questions) {
		end = len(questions)
	}

	return questions[start:end]
}
