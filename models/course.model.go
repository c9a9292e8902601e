package models

// Course is a top-level learning unit composed of ordered chapters.
// Both owner references are nullable: a course survives deletion of its
// creator or provider as an orphan.
type Course struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      *uint     `json:"user_id" gorm:"index"`
	ProviderID  *uint     `json:"provider_id" gorm:"index"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text"`
	ImageURL    string    `json:"image_url"`
	User        *User     `json:"-" gorm:"constraint:OnDelete:SET NULL"`
	Provider    *Provider `json:"-" gorm:"constraint:OnDelete:SET NULL"`
}
