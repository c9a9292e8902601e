package models

// Chapter is an ordered subdivision of a course. Position defines display
// and iteration order (ascending).
type Chapter struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	CourseID    uint    `json:"course_id" gorm:"index;not null"`
	Title       string  `json:"title" gorm:"not null"`
	Description string  `json:"description" gorm:"type:text"`
	Position    int     `json:"position"`
	Course      *Course `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}
