package entity

import (
	"strings"
)

// Question представляет вопрос викторины
type Question struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Text       string `gorm:"column:question;size:1000;not null" json:"question"`
	Answer     string `gorm:"size:500;not null" json:"answer"`
	Category   uint   `gorm:"not null;index" json:"category"`
	Difficulty int    `gorm:"not null" json:"difficulty"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// MatchesSearch проверяет, содержит ли текст вопроса подстроку поиска.
// Сравнение выполняется без учёта регистра на стороне приложения,
// чтобы не зависеть от операторов конкретной СУБД (ILIKE и т.п.).
func (q *Question) MatchesSearch(term string) bool {
	return strings.Contains(strings.ToLower(q.Text), strings.ToLower(term))
}

// IsComplete проверяет, что все обязательные поля вопроса заполнены.
// Нулевая категория не заполнена: ноль зарезервирован под селектор
// "все категории" и не адресует запись справочника.
func (q *Question) IsComplete() bool {
	return q.Text != "" && q.Answer != "" && q.Category != 0 && q.Difficulty != 0
}
