package models

import "time"

// Feedback stores a user's feedback text together with the sentiment
// score produced at creation time. ResponseTime is the elapsed
// milliseconds of the sentiment-analysis call, not a timestamp.
type Feedback struct {
	ID            int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID        string    `json:"user_id" gorm:"type:uuid;not null;index"`
	ProductID     *int64    `json:"product_id,omitempty" gorm:"index"`
	FeedbackText  string    `json:"feedback_text" gorm:"type:text;not null"`
	FeedbackScore int       `json:"feedback_score" gorm:"not null"`
	ResponseTime  int64     `json:"response_time" gorm:"not null"`
	FeedbackTime  time.Time `json:"feedback_time" gorm:"autoCreateTime"`

	// associations
	User    *User    `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Product *Product `json:"-" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE;"`
}

func (Feedback) TableName() string {
	return "feedback"
}
