package transport

// ErrorResponse is the single error envelope for every non-2xx body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	CodeBadRequest   = "bad_request"
	CodeUnauthorized = "unauthorized"
	CodeNotFound     = "not_found"
	CodeConflict     = "conflict"
	CodeInternal     = "internal"
	CodeUnavailable  = "unavailable"
)

// Pointer fields on purpose: the product update is a full replace and
// absent fields are written through as NULL.
type ProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
}

type AddToCartRequest struct {
	UserID    uint `json:"userId"`
	ProductID uint `json:"productId"`
	Quantity  uint `json:"quantity"`
}

type UpdateCartRequest struct {
	UserID    uint `json:"userId"`
	ProductID uint `json:"productId"`
	Quantity  uint `json:"quantity"`
}

// CartLine is one cart row joined with its product, the line total
// computed in SQL.
type CartLine struct {
	ID         uint     `json:"id"`
	ProductID  uint     `json:"product_id"`
	Name       *string  `json:"name"`
	Price      *float64 `json:"price"`
	Quantity   uint     `json:"quantity"`
	TotalPrice *float64 `json:"total_price"`
}

type CreateOrderRequest struct {
	UserID      uint    `json:"userId"`
	TotalAmount float64 `json:"totalAmount"`
}

type UpdateOrderRequest struct {
	OrderID uint   `json:"orderId"`
	Status  string `json:"status"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}
