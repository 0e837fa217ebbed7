package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yourusername/trivia-game-api/internal/pkg/errors"
)

// NotFoundBody формирует тело ответа 404 в едином формате API
func NotFoundBody() gin.H {
	return gin.H{
		"success": false,
		"error":   http.StatusNotFound,
		"message": "Resource not Found",
	}
}

// UnprocessableBody формирует тело ответа 422 в едином формате API
func UnprocessableBody() gin.H {
	return gin.H{
		"success": false,
		"error":   http.StatusUnprocessableEntity,
		"message": "Unprocessable Entity",
	}
}

// respondError переводит ошибку сервиса в один из двух кодов API:
// 404 для отсутствующих ресурсов/страниц/совпадений, 422 для всего
// остального. Отдельного кода для внутренних сбоев нет, детали таких
// ошибок остаются в логе.
func respondError(c *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrNotFound) {
		c.JSON(http.StatusNotFound, NotFoundBody())
		return
	}

	if !errors.Is(err, apperrors.ErrValidation) {
		log.Printf("[Handler] Unexpected error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(http.StatusUnprocessableEntity, UnprocessableBody())
}
