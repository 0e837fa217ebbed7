package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/trivia-game-api/internal/domain/entity"
	"github.com/yourusername/trivia-game-api/internal/middleware"
	"github.com/yourusername/trivia-game-api/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ============================================================================
// Моки репозиториев — обработчики тестируются поверх реальных сервисов
// ============================================================================

// MockQuestionRepo реализует repository.QuestionRepository
type MockQuestionRepo struct {
	mock.Mock
}

func (m *MockQuestionRepo) Create(question *entity.Question) error {
	args := m.Called(question)
	return args.Error(0)
}

func (m *MockQuestionRepo) GetByID(id uint) (*entity.Question, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Question), args.Error(1)
}

func (m *MockQuestionRepo) GetAll() ([]entity.Question, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

func (m *MockQuestionRepo) GetByCategory(categoryID uint) ([]entity.Question, error) {
	args := m.Called(categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

func (m *MockQuestionRepo) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockCategoryRepo реализует repository.CategoryRepository
type MockCategoryRepo struct {
	mock.Mock
}

func (m *MockCategoryRepo) GetAll() ([]entity.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Category), args.Error(1)
}

func (m *MockCategoryRepo) GetByID(id uint) (*entity.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

// newTestRouter собирает роутер с теми же маршрутами, что и cmd/api
func newTestRouter(questionRepo *MockQuestionRepo, categoryRepo *MockCategoryRepo) *gin.Engine {
	questionService := service.NewQuestionService(questionRepo, categoryRepo)
	quizService := service.NewQuizService(questionRepo)

	questionHandler := NewQuestionHandler(questionService)
	categoryHandler := NewCategoryHandler(questionService)
	quizHandler := NewQuizHandler(quizService)

	router := gin.New()
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, NotFoundBody())
	})

	router.GET("/categories", categoryHandler.ListCategories)

	categoryWithID := router.Group("/categories/:id")
	categoryWithID.Use(middleware.ExtractUintParam("id", "categoryID"))
	{
		categoryWithID.GET("/questions", categoryHandler.GetQuestionsByCategory)
	}

	router.GET("/questions", questionHandler.ListQuestions)
	router.GET("/questions/export", questionHandler.ExportQuestions)
	router.POST("/questions", questionHandler.CreateQuestion)
	router.DELETE("/questions/:id",
		middleware.ExtractUintParam("id", "questionID"),
		questionHandler.DeleteQuestion,
	)

	router.POST("/search", questionHandler.SearchQuestions)
	router.POST("/quizzes", quizHandler.PlayQuiz)

	return router
}

// doRequest выполняет запрос к тестовому роутеру с опциональным JSON body
func doRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		bodyBytes, _ := json.Marshal(body)
		req, _ = http.NewRequest(method, path, bytes.NewReader(bodyBytes))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, path, nil)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// parseJSONResponse парсит JSON ответ из *httptest.ResponseRecorder
func parseJSONResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err, "Response body should be valid JSON: %s", w.Body.String())
	return resp
}

// seedQuestions создает упорядоченный набор вопросов для тестов
func seedQuestions(count int, categoryID uint) []entity.Question {
	questions := make([]entity.Question, 0, count)
	for i := 1; i <= count; i++ {
		questions = append(questions, entity.Question{
			ID:         uint(i),
			Text:       "Question",
			Answer:     "Answer",
			Category:   categoryID,
			Difficulty: 1,
		})
	}
	return questions
}
