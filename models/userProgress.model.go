package models

// UserProgress tracks one user's completion state for exactly one lesson.
// Completed is stored and served as 0/1. At most one row may exist per
// (user, lesson) pair; the toggle path enforces this by checking before
// inserting.
type UserProgress struct {
	ID        uint     `json:"id" gorm:"primaryKey"`
	UserID    uint     `json:"user_id" gorm:"index;not null"`
	CourseID  uint     `json:"course_id" gorm:"index;not null"`
	ChapterID uint     `json:"chapter_id" gorm:"index"`
	LessonID  uint     `json:"lesson_id" gorm:"index"`
	Completed int      `json:"completed" gorm:"not null;default:0"`
	User      *User    `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Course    *Course  `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Chapter   *Chapter `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Lesson    *Lesson  `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// TableName keeps the original singular table name.
func (UserProgress) TableName() string {
	return "user_progress"
}
