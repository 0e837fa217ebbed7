package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-game-api/internal/config"
	"github.com/yourusername/trivia-game-api/internal/handler"
	"github.com/yourusername/trivia-game-api/internal/middleware"
	pgRepo "github.com/yourusername/trivia-game-api/internal/repository/postgres"
	"github.com/yourusername/trivia-game-api/internal/service"
	"github.com/yourusername/trivia-game-api/pkg/database"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	// Готовим схему и справочник категорий
	if err := database.SetupSchema(db); err != nil {
		log.Printf("Failed to set up database schema: %v", err)
		os.Exit(1)
	}

	// Инициализируем репозитории
	questionRepo := pgRepo.NewQuestionRepo(db)
	categoryRepo := pgRepo.NewCategoryRepo(db)

	// Инициализируем сервисы
	questionService := service.NewQuestionService(questionRepo, categoryRepo)
	quizService := service.NewQuizService(questionRepo)

	// Инициализируем обработчики
	questionHandler := handler.NewQuestionHandler(questionService)
	categoryHandler := handler.NewCategoryHandler(questionService)
	quizHandler := handler.NewQuizHandler(quizService)

	// Инициализируем роутер Gin
	router := gin.Default()

	// Настройка доверенных прокси для корректной работы c.ClientIP()
	isProduction := gin.Mode() == gin.ReleaseMode
	if isProduction {
		if err := router.SetTrustedProxies(nil); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	} else {
		if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	}

	// Настройка CORS: открытый API для любого фронтенда
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "DELETE"},
		AllowHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}))

	// Неизвестные маршруты отвечают в едином формате ошибок API
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handler.NotFoundBody())
	})

	// Настраиваем маршруты API
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

	// Настраиваем HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
		}
	}()

	// Ждем сигнала остановки и завершаем работу корректно
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	log.Println("Server exited properly")
}
