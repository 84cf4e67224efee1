package models

type Music struct {
	ID        int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	ProductID int64  `json:"product_id" gorm:"uniqueIndex;not null"`
	Producer  string `json:"producer" gorm:"not null"`
	Artist    string `json:"artist" gorm:"not null"`
	Duration  int    `json:"duration" gorm:"not null"`

	// association
	Product *Product `json:"-" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE;"`
}

func (Music) TableName() string {
	return "music"
}
