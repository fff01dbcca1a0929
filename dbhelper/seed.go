package dbhelper

import (
	"log"

	"gorm.io/gorm"

	"dressapi/models"
	"dressapi/services"
)

// SeedGarments loads the catalog once. The table is read-only for the
// public surface, so an already populated table is left untouched.
func SeedGarments(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Garment{}).Count(&count).Error; err != nil {
		log.Fatalf("Failed to check garment catalog: %v", err)
	}
	if count > 0 {
		return
	}
	garments := seedGarments()
	if err := db.Create(&garments).Error; err != nil {
		log.Fatalf("Failed to seed garment catalog: %v", err)
	}
	log.Printf("Seeded %d garments", len(garments))
}

func seedGarments() []models.Garment {
	return []models.Garment{
		{Name: "Banarasi Silk Saree", Category: "Saree", Fabric: "Silk", Sizes: "Free Size", Price: 149.99, Available: true,
			Description: services.StrPointer("Elegant Banarasi silk saree with gold zari work"), Gender: "Women", Season: "All",
			ImageURL: services.StrPointer("https://placehold.co/400x500/silk/white/png?text=Banarasi+Silk+Saree"),
			BuyLink:  services.StrPointer("https://www.amazon.com/banarasi-silk-saree"), Region: "North", Occasion: "Wedding"},
		{Name: "Kanjivaram Silk Saree", Category: "Saree", Fabric: "Silk", Sizes: "Free Size", Price: 199.99, Available: true,
			Description: services.StrPointer("Traditional South Indian Kanjivaram silk saree with temple border"), Gender: "Women", Season: "All",
			ImageURL: services.StrPointer("https://placehold.co/400x500/gold/white/png?text=Kanjivaram+Silk+Saree"),
			BuyLink:  services.StrPointer("https://www.amazon.com/kanjivaram-silk-saree"), Region: "South", Occasion: "Wedding"},
		{Name: "Cotton Handloom Saree", Category: "Saree", Fabric: "Cotton", Sizes: "Free Size", Price: 59.99, Available: true,
			Description: services.StrPointer("Comfortable cotton handloom saree for daily wear"), Gender: "Women", Season: "Summer",
			ImageURL: services.StrPointer("https://placehold.co/400x500/lightblue/white/png?text=Cotton+Handloom+Saree"),
			BuyLink:  services.StrPointer("https://www.amazon.com/cotton-handloom-saree"), Region: "East", Occasion: "Casual"},
		{Name: "Georgette Printed Saree", Category: "Saree", Fabric: "Georgette", Sizes: "Free Size", Price: 45.99, Available: true,
			Description: services.StrPointer("Lightweight georgette saree with modern prints"), Gender: "Women", Season: "All",
			ImageURL: services.StrPointer("https://placehold.co/400x500/pink/white/png?text=Georgette+Printed+Saree"),
			BuyLink:  services.StrPointer("https://www.amazon.com/georgette-printed-saree"), Region: "West", Occasion: "Casual"},
		{Name: "Bridal Lehenga Choli", Category: "Lehenga", Fabric: "Velvet", Sizes: "S,M,L,XL", Price: 299.99, Available: true,
			Description: services.StrPointer("Heavy embroidered bridal lehenga with zari and stonework"), Gender: "Women", Season: "Winter",
			ImageURL: services.StrPointer("https://placehold.co/400x500/red/white/png?text=Bridal+Lehenga+Choli"),
			BuyLink:  services.StrPointer("https://www.amazon.com/bridal-lehenga-choli"), Region: "North", Occasion: "Wedding"},
		{Name: "Silk Lehenga Choli", Category: "Lehenga", Fabric: "Silk", Sizes: "S,M,L", Price: 149.99, Available: true,
			Description: services.StrPointer("Festive silk lehenga with golden embroidery"), Gender: "Women", Season: "All",
			ImageURL: services.StrPointer("https://placehold.co/400x500/maroon/white/png?text=Silk+Lehenga+Choli"),
			BuyLink:  services.StrPointer("https://www.amazon.com/silk-lehenga-choli"), Region: "West", Occasion: "Festival"},
		{Name: "Cotton Chaniya Choli", Category: "Lehenga", Fabric: "Cotton", Sizes: "S,M,L,XL", Price: 79.99, Available: true,
			Description: services.StrPointer("Traditional Gujarati style chaniya choli for Navratri"), Gender: "Women", Season: "All",
			ImageURL: services.StrPointer("https://placehold.co/400x500/orange/white/png?text=Cotton+Chaniya+Choli"),
			BuyLink:  services.StrPointer("https://www.amazon.com/cotton-chaniya-choli"), Region: "West", Occasion: "Festival"},
		{Name: "Anarkali Salwar Suit", Category: "Salwar Kameez", Fabric: "Georgette", Sizes: "S,M,L,XL,XXL", Price: 89.99, Available: true,
			Description: services.StrPointer("Floor length Anarkali suit with embroidered bodice"), Gender: "Women", Season: "All",
			ImageURL: services.StrPointer("https://placehold.co/400x500/teal/white/png?text=Anarkali+Salwar+Suit"),
			BuyLink:  services.StrPointer("https://www.amazon.com/anarkali-salwar-suit"), Region: "North", Occasion: "Party"},
		{Name: "Punjabi Patiala Suit", Category: "Salwar Kameez", Fabric: "Cotton", Sizes: "S,M,L,XL", Price: 69.99, Available: true,
			Description: services.StrPointer("Traditional Punjabi Patiala suit with printed dupatta"), Gender: "Women", Season: "Summer",
			ImageURL: services.StrPointer("https://placehold.co/400x500/yellow/white/png?text=Punjabi+Patiala+Suit"),
			BuyLink:  services.StrPointer("https://www.amazon.com/punjabi-patiala-suit"), Region: "North", Occasion: "Casual"},
		{Name: "Straight Cut Salwar Suit", Category: "Salwar Kameez", Fabric: "Crepe", Sizes: "S,M,L,XL", Price: 79.99, Available: true,
			Description: services.StrPointer("Elegant straight cut salwar suit for formal occasions"), Gender: "Women", Season: "All",
			ImageURL: services.StrPointer("https://placehold.co/400x500/navy/white/png?text=Straight+Cut+Salwar"),
			BuyLink:  services.StrPointer("https://www.amazon.com/straight-cut-salwar-suit"), Region: "North", Occasion: "Formal"},
		{Name: "Silk Kurta Pajama", Category: "Kurta Pajama", Fabric: "Silk", Sizes: "38,40,42,44", Price: 89.99, Available: true,
			Description: services.StrPointer("Traditional silk kurta pajama for special occasions"), Gender: "Men", Season: "All",
			ImageURL: services.StrPointer("https://placehold.co/400x500/beige/black/png?text=Silk+Kurta+Pajama"),
			BuyLink:  services.StrPointer("https://www.amazon.com/silk-kurta-pajama"), Region: "North", Occasion: "Wedding"},
		{Name: "Cotton Kurta Pajama", Category: "Kurta Pajama", Fabric: "Cotton", Sizes: "38,40,42,44,46", Price: 49.99, Available: true,
			Description: services.StrPointer("Comfortable cotton kurta pajama for daily wear"), Gender: "Men", Season: "Summer",
			ImageURL: services.StrPointer("https://placehold.co/400x500/white/black/png?text=Cotton+Kurta+Pajama"),
			BuyLink:  services.StrPointer("https://www.amazon.com/cotton-kurta-pajama"), Region: "North", Occasion: "Casual"},
		{Name: "Embroidered Kurta Pajama", Category: "Kurta Pajama", Fabric: "Cotton Blend", Sizes: "38,40,42,44", Price: 69.99, Available: true,
			Description: services.StrPointer("Kurta with intricate embroidery for festive occasions"), Gender: "Men", Season: "All",
			ImageURL: services.StrPointer("https://placehold.co/400x500/green/white/png?text=Embroidered+Kurta"),
			BuyLink:  services.StrPointer("https://www.amazon.com/embroidered-kurta-pajama"), Region: "North", Occasion: "Festival"},
		{Name: "Wedding Sherwani", Category: "Sherwani", Fabric: "Silk", Sizes: "38,40,42,44", Price: 249.99, Available: true,
			Description: services.StrPointer("Royal wedding sherwani with heavy embroidery"), Gender: "Men", Season: "Winter",
			ImageURL: services.StrPointer("https://placehold.co/400x500/darkred/white/png?text=Wedding+Sherwani"),
			BuyLink:  services.StrPointer("https://www.amazon.com/wedding-sherwani"), Region: "North", Occasion: "Wedding"},
		{Name: "Indo-Western Sherwani", Category: "Sherwani", Fabric: "Polyester Blend", Sizes: "38,40,42,44,46", Price: 149.99, Available: true,
			Description: services.StrPointer("Modern Indo-Western sherwani for reception"), Gender: "Men", Season: "All",
			ImageURL: services.StrPointer("https://placehold.co/400x500/gray/white/png?text=Indo+Western+Sherwani"),
			BuyLink:  services.StrPointer("https://www.amazon.com/indo-western-sherwani"), Region: "North", Occasion: "Party"},
		{Name: "Traditional Dhoti", Category: "Dhoti", Fabric: "Cotton", Sizes: "Free Size", Price: 29.99, Available: true,
			Description: services.StrPointer("Pure cotton traditional dhoti"), Gender: "Men", Season: "All",
			ImageURL: services.StrPointer("https://placehold.co/400x500/white/black/png?text=Traditional+Dhoti"),
			BuyLink:  services.StrPointer("https://www.amazon.com/traditional-dhoti"), Region: "South", Occasion: "Festival"},
		{Name: "Silk Dhoti", Category: "Dhoti", Fabric: "Silk", Sizes: "Free Size", Price: 39.99, Available: true,
			Description: services.StrPointer("Premium silk dhoti for special occasions"), Gender: "Men", Season: "All",
			ImageURL: services.StrPointer("https://placehold.co/400x500/ivory/black/png?text=Silk+Dhoti"),
			BuyLink:  services.StrPointer("https://www.amazon.com/silk-dhoti"), Region: "South", Occasion: "Wedding"},
		{Name: "Silk Nehru Jacket", Category: "Nehru Jacket", Fabric: "Silk", Sizes: "38,40,42,44", Price: 79.99, Available: true,
			Description: services.StrPointer("Elegant silk Nehru jacket for formal occasions"), Gender: "Men", Season: "All",
			ImageURL: services.StrPointer("https://placehold.co/400x500/black/white/png?text=Silk+Nehru+Jacket"),
			BuyLink:  services.StrPointer("https://www.amazon.com/silk-nehru-jacket"), Region: "North", Occasion: "Formal"},
		{Name: "Printed Nehru Jacket", Category: "Nehru Jacket", Fabric: "Cotton Blend", Sizes: "38,40,42,44,46", Price: 59.99, Available: true,
			Description: services.StrPointer("Stylish printed Nehru jacket for festive wear"), Gender: "Men", Season: "All",
			ImageURL: services.StrPointer("https://placehold.co/400x500/purple/white/png?text=Printed+Nehru+Jacket"),
			BuyLink:  services.StrPointer("https://www.amazon.com/printed-nehru-jacket"), Region: "North", Occasion: "Festival"},
		{Name: "Indo-Western Gown", Category: "Indo-Western", Fabric: "Georgette", Sizes: "S,M,L,XL", Price: 119.99, Available: true,
			Description: services.StrPointer("Fusion Indo-Western gown for reception"), Gender: "Women", Season: "All",
			ImageURL: services.StrPointer("https://placehold.co/400x500/rose/white/png?text=Indo+Western+Gown"),
			BuyLink:  services.StrPointer("https://www.amazon.com/indo-western-gown"), Region: "North", Occasion: "Party"},
		{Name: "Indo-Western Suit", Category: "Indo-Western", Fabric: "Crepe", Sizes: "S,M,L,XL", Price: 99.99, Available: true,
			Description: services.StrPointer("Modern Indo-Western suit for women"), Gender: "Women", Season: "All",
			ImageURL: services.StrPointer("https://placehold.co/400x500/coral/white/png?text=Indo+Western+Suit"),
			BuyLink:  services.StrPointer("https://www.amazon.com/indo-western-suit"), Region: "North", Occasion: "Party"},
		{Name: "Traditional Vesti", Category: "Vesti", Fabric: "Cotton", Sizes: "Free Size", Price: 24.99, Available: true,
			Description: services.StrPointer("Traditional South Indian vesti/dhoti"), Gender: "Men", Season: "All",
			ImageURL: services.StrPointer("https://placehold.co/400x500/cream/black/png?text=Traditional+Vesti"),
			BuyLink:  services.StrPointer("https://www.amazon.com/traditional-vesti"), Region: "South", Occasion: "Festival"},
		{Name: "Silk Vesti", Category: "Vesti", Fabric: "Silk", Sizes: "Free Size", Price: 34.99, Available: true,
			Description: services.StrPointer("Premium silk vesti for temple visits and special occasions"), Gender: "Men", Season: "All",
			ImageURL: services.StrPointer("https://placehold.co/400x500/gold/black/png?text=Silk+Vesti"),
			BuyLink:  services.StrPointer("https://www.amazon.com/silk-vesti"), Region: "South", Occasion: "Wedding"},
	}
}
