package models

type Book struct {
	ID          int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	ProductID   int64  `json:"product_id" gorm:"uniqueIndex;not null"`
	Publisher   string `json:"publisher" gorm:"not null"`
	Author      string `json:"author" gorm:"not null"`
	ISBN        string `json:"isbn" gorm:"column:isbn;not null"`
	Description string `json:"description"`

	// association
	Product *Product `json:"-" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE;"`
}

func (Book) TableName() string {
	return "book"
}
