package dto

import "time"

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

// CreateUserRequest covers both the one-time super-admin bootstrap and
// admin creation by a super admin.
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UpdateImageRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type BuyRequest struct {
	CustomerName string `json:"customerName"`
}

// SaleRecord is a ledger row joined with the listing title at query time.
type SaleRecord struct {
	ID           uint      `json:"id"`
	ImageID      uint      `json:"image_id"`
	CustomerName string    `json:"customer_name"`
	PurchaseDate time.Time `json:"purchase_date"`
	ProductName  string    `json:"product_name"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
