package models

import "time"

// DateLayout - формат полей postedAt/appliedAt в хранимом JSON ("YYYY-MM-DD")
const DateLayout = "2006-01-02"

// EarlyAccessDays - срок раннего доступа новой вакансии
const EarlyAccessDays = 3

// Job - вакансия. JSON-теги соответствуют документам в ключе "jobsfi".
type Job struct {
	ID              int    `json:"id"`
	Title           string `json:"title"`
	Company         string `json:"company"`
	Location        string `json:"location"`
	Salary          string `json:"salary"` // Свободный текст, диапазон
	Description     string `json:"description"`
	Employer        string `json:"employer"`
	Category        string `json:"category"`
	IsOpen          bool   `json:"isOpen"`
	PostedAt        string `json:"postedAt,omitempty"`
	CreatedByWallet string `json:"createdByWallet,omitempty"`

	// Ранний доступ: вакансия видна до PublicReleaseDate только подписчикам
	IsEarlyAccess     bool       `json:"isEarlyAccess,omitempty"`
	PublicReleaseDate *time.Time `json:"publicReleaseDate,omitempty"`
}

// Released сообщает, наступила ли публичная дата релиза.
func (j *Job) Released(now time.Time) bool {
	return j.PublicReleaseDate != nil && !j.PublicReleaseDate.After(now)
}
