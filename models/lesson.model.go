package models

// Lesson is the atomic content unit, ordered within its chapter by position.
type Lesson struct {
	ID        uint     `json:"id" gorm:"primaryKey"`
	ChapterID uint     `json:"chapter_id" gorm:"index;not null"`
	Title     string   `json:"title" gorm:"not null"`
	Content   string   `json:"content" gorm:"type:text"`
	Position  int      `json:"position"`
	Chapter   *Chapter `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}
