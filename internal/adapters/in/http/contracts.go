package http

// Request and response bodies of the marketplace HTTP API.

// ListProductRequest is the body of POST /api/v1/products.
type ListProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       int64  `json:"price"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	ProductID int64 `json:"product_id"`
}

// ValidateOrderRequest is the body of POST /api/v1/orders/:id/validate.
type ValidateOrderRequest struct {
	Approve bool `json:"approve"`
}

// AssignDeliveryRequest is the body of POST /api/v1/orders/:id/delivery.
type AssignDeliveryRequest struct {
	CourierID string `json:"courier_id"`
}

// UpdateDeliveryStatusRequest is the body of PATCH /api/v1/orders/:id/delivery.
type UpdateDeliveryStatusRequest struct {
	Completed bool `json:"completed"`
}

// ApproveValidatorRequest is the body of POST /api/v1/admin/validators.
type ApproveValidatorRequest struct {
	ValidatorID string `json:"validator_id"`
}

// AssignRoleRequest is the body of POST /api/v1/admin/roles.
type AssignRoleRequest struct {
	ActorID string `json:"actor_id"`
	Role    string `json:"role"`
}

// CreatedResponse carries the identifier assigned to a new resource.
type CreatedResponse struct {
	ID int64 `json:"id"`
}

// ProductResponse is the body of GET /api/v1/products/:id.
type ProductResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       int64  `json:"price"`
	SellerID    string `json:"seller_id"`
}

// OrderResponse is the body of GET /api/v1/orders/:id.
type OrderResponse struct {
	ID                  int64   `json:"id"`
	ProductID           int64   `json:"product_id"`
	BuyerID             string  `json:"buyer_id"`
	SellerID            string  `json:"seller_id"`
	ValidatorID         *string `json:"validator_id,omitempty"`
	CourierID           *string `json:"courier_id,omitempty"`
	Status              string  `json:"status"`
	IsValidated         bool    `json:"is_validated"`
	CompletionRequested bool    `json:"completion_requested"`
}

// RoleResponse is the body of GET /api/v1/roles/:id.
type RoleResponse struct {
	ActorID string `json:"actor_id"`
	Role    string `json:"role,omitempty"`
}

// ValidatorResponse is the body of GET /api/v1/validators/:id.
type ValidatorResponse struct {
	ValidatorID string `json:"validator_id"`
	Approved    bool   `json:"approved"`
}

// CountsResponse is the body of GET /api/v1/counts.
type CountsResponse struct {
	Products int64 `json:"products"`
	Orders   int64 `json:"orders"`
}

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
