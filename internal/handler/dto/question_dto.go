package dto

import (
	"github.com/yourusername/trivia-game-api/internal/domain/entity"
)

// QuestionResponse представляет вопрос в ответе API
type QuestionResponse struct {
	ID         uint   `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   uint   `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// NewQuestionResponse создает DTO из сущности вопроса
func NewQuestionResponse(question *entity.Question) *QuestionResponse {
	return &QuestionResponse{
		ID:         question.ID,
		Question:   question.Text,
		Answer:     question.Answer,
		Category:   question.Category,
		Difficulty: question.Difficulty,
	}
}

// NewQuestionListResponse создает список DTO из списка сущностей
func NewQuestionListResponse(questions []entity.Question) []QuestionResponse {
	response := make([]QuestionResponse, len(questions))
	for i := range questions {
		response[i] = *NewQuestionResponse(&questions[i])
	}
	return response
}
