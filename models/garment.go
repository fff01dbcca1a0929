package models

import (
	"strings"

	"github.com/go-playground/validator"
	"gorm.io/gorm"
)

type Garment struct {
	JsonModel
	Name        string  `gorm:"uniqueIndex:idx_garment_name_category" json:"name"`
	Category    string  `gorm:"uniqueIndex:idx_garment_name_category" json:"category"`
	Fabric      string  `json:"fabric"`
	Sizes       string  `json:"sizes"`
	Price       float64 `json:"price"`
	Available   bool    `gorm:"default:true" json:"available"`
	Description *string `gorm:"type:text" json:"description"`
	Gender      string  `json:"gender"` // Men, Women, Unisex
	Season      string  `json:"season"` // Summer, Winter, All
	ImageURL    *string `json:"image_url"`
	BuyLink     *string `json:"buy_link"`
	Region      string  `json:"region"`   // North, South, East, West
	Occasion    string  `json:"occasion"` // Wedding, Festival, Casual, Formal, Party
}

var GarmentCategories = []string{
	"Saree",
	"Lehenga",
	"Salwar Kameez",
	"Kurta Pajama",
	"Sherwani",
	"Dhoti",
	"Nehru Jacket",
	"Indo-Western",
	"Vesti",
}

var GarmentOccasions = []string{"Wedding", "Festival", "Casual", "Formal", "Party"}

func ValidateGarmentCategory(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, category := range GarmentCategories {
		if strings.EqualFold(category, value) {
			return true
		}
	}
	return false
}

// GarmentFilter is the typed query built from dropdown selections, the
// user message vocabulary and assistant-extracted criteria. Keywords are
// OR-matched as substrings; the optional fields restrict the result set.
type GarmentFilter struct {
	Keywords []string `json:"keywords"`
	Category *string  `json:"category"`
	Occasion *string  `json:"occasion"`
	Fabric   *string  `json:"fabric"`
	Region   *string  `json:"region"`
	Gender   *string  `json:"gender"`
}

func (f GarmentFilter) Empty() bool {
	return len(f.Keywords) == 0 && f.Category == nil && f.Occasion == nil &&
		f.Fabric == nil && f.Region == nil && f.Gender == nil
}

// Merge fills unset fields of f from other. Explicit values in f win, so
// dropdown filters override whatever the heuristics or the model guessed.
func (f GarmentFilter) Merge(other GarmentFilter) GarmentFilter {
	merged := f
	merged.Keywords = append(merged.Keywords, other.Keywords...)
	if merged.Category == nil {
		merged.Category = other.Category
	}
	if merged.Occasion == nil {
		merged.Occasion = other.Occasion
	}
	if merged.Fabric == nil {
		merged.Fabric = other.Fabric
	}
	if merged.Region == nil {
		merged.Region = other.Region
	}
	if merged.Gender == nil {
		merged.Gender = other.Gender
	}
	return merged
}

// FindGarments runs the catalog lookup. Category and occasion restrict by
// exact match (case-insensitive), fabric/region/gender by substring as the
// extraction is free text. Keywords OR-match against the descriptive
// columns. Rows come back in stable insertion order, an empty result is
// not an error.
func FindGarments(db *gorm.DB, filter GarmentFilter) ([]Garment, error) {
	query := db.Model(&Garment{})
	if filter.Category != nil && *filter.Category != "" {
		query = query.Where("LOWER(category) = LOWER(?)", *filter.Category)
	}
	if filter.Occasion != nil && *filter.Occasion != "" {
		query = query.Where("LOWER(occasion) = LOWER(?)", *filter.Occasion)
	}
	if filter.Fabric != nil && *filter.Fabric != "" {
		query = query.Where("LOWER(fabric) LIKE ?", likePattern(*filter.Fabric))
	}
	if filter.Region != nil && *filter.Region != "" {
		query = query.Where("LOWER(region) LIKE ?", likePattern(*filter.Region))
	}
	if filter.Gender != nil && *filter.Gender != "" {
		query = query.Where("LOWER(gender) = LOWER(?)", *filter.Gender)
	}
	if len(filter.Keywords) > 0 {
		clauses := make([]string, 0, len(filter.Keywords))
		args := make([]interface{}, 0, len(filter.Keywords)*6)
		for _, keyword := range filter.Keywords {
			pattern := likePattern(keyword)
			clauses = append(clauses, "(LOWER(name) LIKE ? OR LOWER(category) LIKE ? OR LOWER(fabric) LIKE ? OR LOWER(occasion) LIKE ? OR LOWER(region) LIKE ? OR LOWER(COALESCE(description, '')) LIKE ?)")
			args = append(args, pattern, pattern, pattern, pattern, pattern, pattern)
		}
		query = query.Where(strings.Join(clauses, " OR "), args...)
	}
	var garments []Garment
	if err := query.Order("id").Find(&garments).Error; err != nil {
		return nil, err
	}
	return garments, nil
}

func ListCategories(db *gorm.DB) ([]string, error) {
	var categories []string
	err := db.Model(&Garment{}).Distinct("category").Order("category").Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func likePattern(value string) string {
	return "%" + strings.ToLower(strings.TrimSpace(value)) + "%"
}
