package dto

type CreatePropertyRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	City         string `json:"city"`
	Address      string `json:"address"`
	NightlyCents int64  `json:"nightly_cents"`
	MaxGuests    int    `json:"max_guests"`
}

type UpdatePropertyRequest struct {
	Title        *string `json:"title,omitempty"`
	Description  *string `json:"description,omitempty"`
	City         *string `json:"city,omitempty"`
	Address      *string `json:"address,omitempty"`
	NightlyCents *int64  `json:"nightly_cents,omitempty"`
	MaxGuests    *int    `json:"max_guests,omitempty"`
}

type ListPropertiesQuery struct {
	City  string `query:"city"`
	Page  int    `query:"page"`
	Limit int    `query:"limit"`
}
