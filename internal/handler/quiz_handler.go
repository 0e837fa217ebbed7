package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-game-api/internal/handler/dto"
	"github.com/yourusername/trivia-game-api/internal/service"
)

// QuizHandler обрабатывает игровые запросы викторины
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler создает новый обработчик викторины
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// QuizCategoryRequest представляет селектор категории.
// ID задан указателем: ноль — валидное значение-селектор "все категории".
type QuizCategoryRequest struct {
	ID   *uint  `json:"id" binding:"required"`
	Type string `json:"type"`
}

// PlayQuizRequest представляет запрос следующего вопроса игры
type PlayQuizRequest struct {
	QuizCategory      *QuizCategoryRequest `json:"quiz_category" binding:"required"`
	PreviousQuestions []uint               `json:"previous_questions" binding:"required"`
}

// PlayQuiz возвращает случайный ещё не заданный вопрос выбранной категории.
// При исчерпании пула question равен null — игра окончена.
// POST /quizzes
func (h *QuizHandler) PlayQuiz(c *gin.Context) {
	var req PlayQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, UnprocessableBody())
		return
	}

	question, err := h.quizService.NextQuestion(*req.QuizCategory.ID, req.PreviousQuestions)
	if err != nil {
		respondError(c, err)
		return
	}

	if question == nil {
		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"question": nil,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"question": dto.NewQuestionResponse(question),
	})
}
