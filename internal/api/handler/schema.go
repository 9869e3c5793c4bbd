package handler

import "github.com/99minutos/commerce-api/internal/core/domain"

// --- Auth ---

type credentialsRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Products ---

type productRequest struct {
	Name      string   `json:"name"`
	Price     float64  `json:"price"     validate:"gte=0"`
	Color     int      `json:"color"`
	Thumbnail string   `json:"thumbnail"`
	DetailImg []string `json:"detailimg"`
	ColorImg  []string `json:"colorimg"`
	Size      []string `json:"size"`
	Type      string   `json:"type"`
	Gender    string   `json:"gender"`
}

// --- Users ---

type userRequest struct {
	Email       string         `json:"email"    validate:"required"`
	Password    string         `json:"password" validate:"required"`
	PhoneNumber string         `json:"phoneNumber"`
	Address     domain.Address `json:"address"`
	Avatar      string         `json:"avatar"`
}

// userUpdateRequest carries the current password as confirmation.
type userUpdateRequest struct {
	Email       string         `json:"email"`
	Password    string         `json:"password"`
	PhoneNumber string         `json:"phoneNumber"`
	Address     domain.Address `json:"address"`
	Avatar      string         `json:"avatar"`
}

type accountSettingRequest struct {
	NewEmail    string `json:"newEmail"    validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

type userRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// --- Carts ---

type cartItemRequest struct {
	URLImg      string  `json:"urlImg"`
	ProductName string  `json:"productName" validate:"required"`
	Size        string  `json:"size"`
	Price       float64 `json:"price"       validate:"gte=0"`
}

type checkoutRequest struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	City        string `json:"city"`
	PhoneNumber string `json:"phoneNumber"`
}

// --- Pages (documentation only) ---

type productPage struct {
	Results      []domain.Product `json:"results"`
	TotalRecords int              `json:"totalRecords"`
}

type userPage struct {
	Results      []domain.User `json:"results"`
	TotalRecords int           `json:"totalRecords"`
}

type customerPage struct {
	Results      []domain.Customer `json:"results"`
	TotalRecords int               `json:"totalRecords"`
}

type errorBody struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	NameInput string `json:"nameInput,omitempty"`
}
