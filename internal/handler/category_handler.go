package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-game-api/internal/handler/dto"
	"github.com/yourusername/trivia-game-api/internal/service"
)

// CategoryHandler обрабатывает запросы, связанные с категориями
type CategoryHandler struct {
	questionService *service.QuestionService
}

// NewCategoryHandler создает новый обработчик категорий
func NewCategoryHandler(questionService *service.QuestionService) *CategoryHandler {
	return &CategoryHandler{questionService: questionService}
}

// ListCategories возвращает отображение id категории -> название
// GET /categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.questionService.Categories()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"categories": categories,
	})
}

// GetQuestionsByCategory возвращает страницу вопросов категории
// GET /categories/:id/questions?page=N
func (h *CategoryHandler) GetQuestionsByCategory(c *gin.Context) {
	categoryID := c.MustGet("categoryID").(uint) // Получаем из контекста

	questions, currentCategory, total, err := h.questionService.ListByCategory(categoryID, pageFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"questions":        dto.NewQuestionListResponse(questions),
		"current_category": currentCategory,
		"total_questions":  total,
	})
}
