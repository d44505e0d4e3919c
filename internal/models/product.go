// internal/models/product.go
package models

type Product struct {
	BaseModel
	ProductName   string        `json:"productName" gorm:"size:255;not null"`
	CategoryID    uint          `json:"categoryID" gorm:"not null;index"`
	SubCategoryID uint          `json:"subCategoryID" gorm:"not null;index"`
	Image1        *string       `json:"image1" gorm:"size:512"`
	Image2        *string       `json:"image2" gorm:"size:512"`
	Image3        *string       `json:"image3" gorm:"size:512"`
	Image4        *string       `json:"image4" gorm:"size:512"`
	Image5        *string       `json:"image5" gorm:"size:512"`
	PurchasePrice float64       `json:"purchasePrice" gorm:"type:decimal(10,2);not null"`
	SellingPrice  float64       `json:"sellingPrice" gorm:"type:decimal(10,2);not null"`
	Stock         int           `json:"stock" gorm:"not null;default:0"`
	Description   *string       `json:"description" gorm:"type:text"`
	Status        ProductStatus `json:"status" gorm:"type:varchar(20);not null;default:'active';index"`

	// Relationships
	Category    *Category    `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	SubCategory *SubCategory `json:"subCategory,omitempty" gorm:"foreignKey:SubCategoryID"`
}

// SetImage stores path under one of the image1..image5 field names.
func (p *Product) SetImage(field, path string) {
	switch field {
	case "image1":
		p.Image1 = &path
	case "image2":
		p.Image2 = &path
	case "image3":
		p.Image3 = &path
	case "image4":
		p.Image4 = &path
	case "image5":
		p.Image5 = &path
	}
}

// Images returns the stored image paths in field order, skipping empty slots.
func (p *Product) Images() []string {
	var images []string
	for _, image := range []*string{p.Image1, p.Image2, p.Image3, p.Image4, p.Image5} {
		if image != nil && *image != "" {
			images = append(images, *image)
		}
	}
	return images
}
