package models

type ChatMessageIn struct {
	SessionID string  `json:"session_id"`
	Message   string  `json:"message" validate:"required,max=2000"`
	Category  *string `json:"category" validate:"omitempty,garmentcategory"`
	Occasion  *string `json:"occasion" validate:"omitempty,max=50"`
}

type GarmentCardOut struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Fabric      string  `json:"fabric"`
	Sizes       string  `json:"sizes"`
	Price       float64 `json:"price"`
	Available   bool    `json:"available"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	BuyLink     *string `json:"buy_link"`
	Region      string  `json:"region"`
	Occasion    string  `json:"occasion"`
}

type ChatMessageOut struct {
	SessionID string           `json:"session_id"`
	Reply     string           `json:"reply"`
	Cached    bool             `json:"cached"`
	Garments  []GarmentCardOut `json:"garments"`
}

type ChatHistoryOut struct {
	SessionID string     `json:"session_id"`
	Turns     []ChatTurn `json:"turns"`
}

type RecentChatOut struct {
	UserMessage string `json:"user_message"`
	BotResponse string `json:"bot_response"`
	Timestamp   string `json:"timestamp"`
}

type GarmentListOut struct {
	Garments []GarmentCardOut `json:"garments"`
}

type CategoriesOut struct {
	Categories []string `json:"categories"`
}

type AdminLoginIn struct {
	Password string `json:"password" validate:"required"`
}

type AdminLoginOut struct {
	AccessToken string `json:"access_token"`
}

type GarmentUpdateIn struct {
	Name        *string  `json:"name" validate:"omitempty,max=100"`
	Category    *string  `json:"category" validate:"omitempty,garmentcategory"`
	Fabric      *string  `json:"fabric" validate:"omitempty,max=50"`
	Sizes       *string  `json:"sizes" validate:"omitempty,max=100"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Available   *bool    `json:"available"`
	Description *string  `json:"description" validate:"omitempty,max=500"`
	Gender      *string  `json:"gender" validate:"omitempty,oneof=Men Women Unisex"`
	Season      *string  `json:"season" validate:"omitempty,max=20"`
	ImageURL    *string  `json:"image_url" validate:"omitempty,url"`
	BuyLink     *string  `json:"buy_link" validate:"omitempty,url"`
	Region      *string  `json:"region" validate:"omitempty,max=20"`
	Occasion    *string  `json:"occasion" validate:"omitempty,max=50"`
}

func GarmentCard(garment Garment) GarmentCardOut {
	return GarmentCardOut{
		ID:          garment.ID,
		Name:        garment.Name,
		Category:    garment.Category,
		Fabric:      garment.Fabric,
		Sizes:       garment.Sizes,
		Price:       garment.Price,
		Available:   garment.Available,
		Description: garment.Description,
		ImageURL:    garment.ImageURL,
		BuyLink:     garment.BuyLink,
		Region:      garment.Region,
		Occasion:    garment.Occasion,
	}
}

func GarmentCards(garments []Garment) []GarmentCardOut {
	cards := make([]GarmentCardOut, 0, len(garments))
	for _, garment := range garments {
		cards = append(cards, GarmentCard(garment))
	}
	return cards
}
