package database

import (
	"fmt"
	"log"
	"time"

	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yourusername/trivia-game-api/internal/domain/entity"
)

// seedCategories — стартовый набор категорий. Категории в этой системе
// доступны только для чтения и заполняются один раз при пустой таблице.
var seedCategories = []entity.Category{
	{ID: 1, Type: "Science"},
	{ID: 2, Type: "Art"},
	{ID: 3, Type: "Geography"},
	{ID: 4, Type: "History"},
	{ID: 5, Type: "Entertainment"},
	{ID: 6, Type: "Sports"},
}

// NewPostgresDB создает новое подключение к PostgreSQL
func NewPostgresDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(gormPostgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Настройка пула соединений
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// SetupSchema создает таблицы вопросов и категорий и заполняет
// справочник категорий, если он пуст
func SetupSchema(db *gorm.DB) error {
	log.Println("Настройка схемы базы данных...")

	if err := db.AutoMigrate(&entity.Category{}, &entity.Question{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	var count int64
	if err := db.Model(&entity.Category{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if count == 0 {
		log.Println("Таблица категорий пуста, загружаем стартовый справочник")
		if err := db.Create(&seedCategories).Error; err != nil {
			return fmt.Errorf("failed to seed categories: %w", err)
		}
	}

	log.Println("Схема базы данных готова.")
	return nil
}
