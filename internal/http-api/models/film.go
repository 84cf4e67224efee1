package models

type Film struct {
	ID          int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	ProductID   int64  `json:"product_id" gorm:"uniqueIndex;not null"`
	Director    string `json:"director" gorm:"not null"`
	Duration    int    `json:"duration" gorm:"not null"`
	Description string `json:"description"`

	// association
	Product *Product `json:"-" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE;"`
}

func (Film) TableName() string {
	return "film"
}
