package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-game-api/internal/handler/dto"
	"github.com/yourusername/trivia-game-api/internal/service"
)

// QuestionHandler обрабатывает запросы, связанные с вопросами
type QuestionHandler struct {
	questionService *service.QuestionService
}

// NewQuestionHandler создает новый обработчик вопросов
func NewQuestionHandler(questionService *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// pageFromQuery читает номер страницы из query-параметра.
// Отсутствующее или невалидное значение трактуется как первая страница.
func pageFromQuery(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	return page
}

// ListQuestions возвращает страницу вопросов вместе с общим количеством
// и отображением категорий
// GET /questions?page=N
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	questions, total, categories, err := h.questionService.ListQuestions(pageFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"questions":        dto.NewQuestionListResponse(questions),
		"total_questions":  total,
		"current_category": nil,
		"categories":       categories,
	})
}

// CreateQuestionRequest представляет запрос на создание вопроса
type CreateQuestionRequest struct {
	Question   *string `json:"question" binding:"required"`
	Answer     *string `json:"answer" binding:"required"`
	Category   *uint   `json:"category" binding:"required"`
	Difficulty *int    `json:"difficulty" binding:"required"`
}

// CreateQuestion создает новый вопрос
// POST /questions
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, UnprocessableBody())
		return
	}

	question, err := h.questionService.CreateQuestion(*req.Question, *req.Answer, *req.Category, *req.Difficulty)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("New Question with id %d added!!", question.ID),
	})
}

// DeleteQuestion удаляет вопрос по ID из пути
// DELETE /questions/:id
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID := c.MustGet("questionID").(uint) // Получаем из контекста

	if err := h.questionService.DeleteQuestion(questionID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":             true,
		"deleted_question_id": questionID,
	})
}

// SearchQuestionsRequest представляет запрос поиска по подстроке.
// Указатель отличает отсутствующее поле (422) от пустой строки,
// которая совпадает со всеми вопросами.
type SearchQuestionsRequest struct {
	SearchTerm *string `json:"searchTerm" binding:"required"`
}

// SearchQuestions возвращает вопросы, содержащие подстроку поиска
// POST /search
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req SearchQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, UnprocessableBody())
		return
	}

	matched, err := h.questionService.SearchQuestions(*req.SearchTerm)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"questions":       dto.NewQuestionListResponse(matched),
		"total_questions": len(matched),
	})
}
