package models

// Provider represents the organization offering a course (Udemy, Coursera, ...)
type Provider struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	Name    string `json:"name" gorm:"not null"`
	Website string `json:"website"`
}
