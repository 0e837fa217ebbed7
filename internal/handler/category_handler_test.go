package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/trivia-game-api/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-game-api/internal/pkg/errors"
)

func TestListCategories(t *testing.T) {
	// Arrange
	questionRepo := new(MockQuestionRepo)
	categoryRepo := new(MockCategoryRepo)
	categoryRepo.On("GetAll").Return([]entity.Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
		{ID: 6, Type: "Sports"},
	}, nil)
	router := newTestRouter(questionRepo, categoryRepo)

	// Act
	w := doRequest(router, http.MethodGet, "/categories", nil)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	resp := parseJSONResponse(t, w)
	assert.Equal(t, true, resp["success"])
	categories := resp["categories"].(map[string]interface{})
	assert.Equal(t, "Science", categories["1"])
	assert.Equal(t, "Art", categories["2"])
	assert.Equal(t, "Sports", categories["6"])
}

func TestGetQuestionsByCategory_Success(t *testing.T) {
	// Arrange
	questionRepo := new(MockQuestionRepo)
	categoryRepo := new(MockCategoryRepo)
	categoryRepo.On("GetByID", uint(3)).Return(&entity.Category{ID: 3, Type: "Geography"}, nil)
	questionRepo.On("GetByCategory", uint(3)).Return(seedQuestions(4, 3), nil)
	router := newTestRouter(questionRepo, categoryRepo)

	// Act
	w := doRequest(router, http.MethodGet, "/categories/3/questions", nil)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	resp := parseJSONResponse(t, w)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "Geography", resp["current_category"])
	assert.Equal(t, float64(4), resp["total_questions"])
	questions := resp["questions"].([]interface{})
	for _, raw := range questions {
		q := raw.(map[string]interface{})
		assert.Equal(t, float64(3), q["category"], "в выборке только вопросы запрошенной категории")
	}
}

func TestGetQuestionsByCategory_UnknownCategory(t *testing.T) {
	questionRepo := new(MockQuestionRepo)
	categoryRepo := new(MockCategoryRepo)
	categoryRepo.On("GetByID", uint(999999)).Return(nil, apperrors.ErrNotFound)
	router := newTestRouter(questionRepo, categoryRepo)

	w := doRequest(router, http.MethodGet, "/categories/999999/questions", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	resp := parseJSONResponse(t, w)
	assert.Equal(t, "Resource not Found", resp["message"])
	questionRepo.AssertNotCalled(t, "GetByCategory", mock.Anything)
}

func TestGetQuestionsByCategory_EmptyPage(t *testing.T) {
	questionRepo := new(MockQuestionRepo)
	categoryRepo := new(MockCategoryRepo)
	categoryRepo.On("GetByID", uint(2)).Return(&entity.Category{ID: 2, Type: "Art"}, nil)
	questionRepo.On("GetByCategory", uint(2)).Return(seedQuestions(4, 2), nil)
	router := newTestRouter(questionRepo, categoryRepo)

	w := doRequest(router, http.MethodGet, "/categories/2/questions?page=50", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
