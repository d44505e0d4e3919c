// internal/models/catalog.go
package models

type Category struct {
	BaseModel
	Name        string  `json:"name" gorm:"size:100;uniqueIndex;not null"`
	Description string  `json:"description" gorm:"type:text"`
	Image       *string `json:"image" gorm:"size:512"`

	SubCategories []SubCategory `json:"subCategories,omitempty" gorm:"foreignKey:CategoryID"`
}

type SubCategory struct {
	BaseModel
	Name        string `json:"name" gorm:"size:100;not null;uniqueIndex:idx_sub_categories_category_name"`
	CategoryID  uint   `json:"categoryID" gorm:"not null;uniqueIndex:idx_sub_categories_category_name"`
	Description string `json:"description" gorm:"type:text"`

	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}

type Size struct {
	BaseModel
	Name string `json:"name" gorm:"size:50;uniqueIndex;not null"`
}

type Color struct {
	BaseModel
	Name    string `json:"name" gorm:"size:50;uniqueIndex;not null"`
	HexCode string `json:"hexCode" gorm:"size:7"`
}

type Brand struct {
	BaseModel
	Name        string  `json:"name" gorm:"size:100;uniqueIndex;not null"`
	Description string  `json:"description" gorm:"type:text"`
	Logo        *string `json:"logo" gorm:"size:512"`
}
