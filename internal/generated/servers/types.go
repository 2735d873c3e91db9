package servers

import (
	"encoding/json"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

const BearerAuthScopes = "bearerAuth.Scopes"

// Error codes carried in Error.Code.
const (
	CodeUnauthorized      = "unauthorized"
	CodeForbidden         = "forbidden"
	CodeInvalidTransition = "invalid_transition"
	CodeAlreadyAssigned   = "already_assigned"
	CodeInvalidOTP        = "invalid_otp"
	CodeValidationError   = "validation_error"
	CodeNotFound          = "not_found"
	CodeConflict          = "conflict"
	CodeInternal          = "internal"
)

// Error defines model for Error.
type Error struct {
	Code    string `json:"code"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Message defines model for Message.
type Message struct {
	Message string `json:"message"`
}

// RegisterRequest defines model for RegisterRequest.
type RegisterRequest struct {
	Name         string   `json:"name" validate:"required"`
	Email        string   `json:"email" validate:"required,email"`
	Password     string   `json:"password" validate:"required,min=6"`
	Phone        string   `json:"phone,omitempty"`
	Roles        []string `json:"roles,omitempty" validate:"omitempty,dive,oneof=customer merchant agent admin"`
	LicenseNo    string   `json:"license_no,omitempty"`
	VehicleNo    string   `json:"vehicle_no,omitempty"`
	ShopName     string   `json:"shop_name,omitempty"`
	ShopAddress  string   `json:"shop_address,omitempty"`
	WorkingHours string   `json:"working_hours,omitempty"`
	JoinWhatsapp bool     `json:"join_whatsapp,omitempty"`
}

// LoginRequest defines model for LoginRequest.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse defines model for AuthResponse.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      User      `json:"user"`
}

// User defines model for User.
type User struct {
	Id           openapi_types.UUID `json:"id"`
	Name         string             `json:"name"`
	Email        string             `json:"email"`
	Phone        string             `json:"phone"`
	Roles        []string           `json:"roles"`
	ActiveRole   string             `json:"active_role"`
	IsOnline     bool               `json:"is_online"`
	LicenseNo    string             `json:"license_no,omitempty"`
	VehicleNo    string             `json:"vehicle_no,omitempty"`
	ShopName     string             `json:"shop_name,omitempty"`
	ShopAddress  string             `json:"shop_address,omitempty"`
	WorkingHours string             `json:"working_hours,omitempty"`
	ProfilePhoto string             `json:"profile_photo,omitempty"`
	JoinWhatsapp bool               `json:"join_whatsapp"`
	CreatedAt    time.Time          `json:"created_at"`
}

// SwitchRoleRequest defines model for SwitchRoleRequest.
type SwitchRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// ToggleOnlineResponse defines model for ToggleOnlineResponse.
type ToggleOnlineResponse struct {
	IsOnline bool `json:"is_online"`
}

// ProfileUpdateRequest defines model for ProfileUpdateRequest.
type ProfileUpdateRequest struct {
	Name         *string `json:"name,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	ProfilePhoto *string `json:"profile_photo,omitempty"`
}

// Store defines model for Store.
type Store struct {
	Id           openapi_types.UUID `json:"id"`
	MerchantId   openapi_types.UUID `json:"merchant_id"`
	Name         string             `json:"name"`
	Address      string             `json:"address"`
	Lat          float64            `json:"lat"`
	Lng          float64            `json:"lng"`
	ImageUrl     string             `json:"image_url"`
	IsOpen       bool               `json:"is_open"`
	WorkingHours string             `json:"working_hours"`
	Rating       float64            `json:"rating"`
	TotalOrders  int                `json:"total_orders"`
}

// StoreDetail defines model for StoreDetail.
type StoreDetail struct {
	Store
	Products []Product `json:"products"`
}

// CreateStoreRequest defines model for CreateStoreRequest.
type CreateStoreRequest struct {
	Name         string  `json:"name" validate:"required"`
	Address      string  `json:"address"`
	Lat          float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng          float64 `json:"lng" validate:"gte=-180,lte=180"`
	ImageUrl     string  `json:"image_url"`
	WorkingHours string  `json:"working_hours"`
}

// UpdateStoreRequest defines model for UpdateStoreRequest.
type UpdateStoreRequest struct {
	Name         *string `json:"name,omitempty"`
	IsOpen       *bool   `json:"is_open,omitempty"`
	WorkingHours *string `json:"working_hours,omitempty"`
}

// Size defines model for Size.
type Size struct {
	Id            openapi_types.UUID `json:"id"`
	Name          string             `json:"name"`
	PriceModifier float64            `json:"price_modifier"`
	IsDefault     bool               `json:"is_default"`
}

// Variant defines model for Variant.
type Variant struct {
	Id                openapi_types.UUID `json:"id"`
	Name              string             `json:"name"`
	VariantType       string             `json:"variant_type"`
	Price             float64            `json:"price"`
	SubscriptionDays  int                `json:"subscription_days"`
	SubscriptionPrice float64            `json:"subscription_price"`
	Sizes             []Size             `json:"sizes"`
}

// Product defines model for Product.
type Product struct {
	Id          openapi_types.UUID `json:"id"`
	StoreId     openapi_types.UUID `json:"store_id"`
	MerchantId  openapi_types.UUID `json:"merchant_id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	BaseType    string             `json:"base_type"`
	ImageUrl    string             `json:"image_url"`
	Variants    []Variant          `json:"variants"`
}

// SizeInput defines model for SizeInput.
type SizeInput struct {
	Name          string  `json:"name" validate:"required"`
	PriceModifier float64 `json:"price_modifier" validate:"gte=0"`
	IsDefault     bool    `json:"is_default"`
}

// VariantInput defines model for VariantInput.
type VariantInput struct {
	Name              string      `json:"name" validate:"required"`
	VariantType       string      `json:"variant_type"`
	Price             float64     `json:"price" validate:"gte=0"`
	SubscriptionDays  int         `json:"subscription_days" validate:"gte=0"`
	SubscriptionPrice float64     `json:"subscription_price" validate:"gte=0"`
	Sizes             []SizeInput `json:"sizes" validate:"dive"`
}

// CreateProductRequest defines model for CreateProductRequest.
type CreateProductRequest struct {
	StoreId     openapi_types.UUID `json:"store_id" validate:"required"`
	Name        string             `json:"name" validate:"required"`
	Description string             `json:"description"`
	BaseType    string             `json:"base_type"`
	ImageUrl    string             `json:"image_url"`
	Variants    []VariantInput     `json:"variants" validate:"required,min=1,dive"`
}

// CartItem defines model for CartItem.
type CartItem struct {
	ItemId       openapi_types.UUID  `json:"item_id"`
	ProductId    openapi_types.UUID  `json:"product_id"`
	VariantId    openapi_types.UUID  `json:"variant_id"`
	SizeId       *openapi_types.UUID `json:"size_id"`
	ProductName  string              `json:"product_name"`
	ProductImage string              `json:"product_image"`
	VariantName  string              `json:"variant_name"`
	SizeName     string              `json:"size_name"`
	Price        float64             `json:"price"`
	Quantity     int                 `json:"quantity"`
	ItemTotal    float64             `json:"item_total"`
}

// CartPromotions defines model for CartPromotions.
type CartPromotions struct {
	GiftEligible        bool   `json:"gift_eligible"`
	GiftMessage         string `json:"gift_message"`
	UpsellMessage       string `json:"upsell_message"`
	FreeDeliveryApplied bool   `json:"free_delivery_applied"`
	FreeDeliveryMessage string `json:"free_delivery_message"`
}

// Cart defines model for Cart.
type Cart struct {
	StoreId         *openapi_types.UUID `json:"store_id"`
	Items           []CartItem          `json:"items"`
	ItemCount       int                 `json:"item_count"`
	Subtotal        float64             `json:"subtotal"`
	BaseDeliveryFee float64             `json:"base_delivery_fee"`
	DeliveryFee     float64             `json:"delivery_fee"`
	Total           float64             `json:"total"`
	DistanceKm      float64             `json:"distance_km"`
	Promotions      CartPromotions      `json:"promotions"`
}

// AddCartItemRequest defines model for AddCartItemRequest.
type AddCartItemRequest struct {
	ProductId openapi_types.UUID  `json:"product_id" validate:"required"`
	VariantId openapi_types.UUID  `json:"variant_id" validate:"required"`
	SizeId    *openapi_types.UUID `json:"size_id,omitempty"`
	Quantity  int                 `json:"quantity,omitempty" validate:"omitempty,gte=1"`
}

// UpdateCartItemRequest defines model for UpdateCartItemRequest.
type UpdateCartItemRequest struct {
	ItemId   openapi_types.UUID `json:"item_id" validate:"required"`
	Quantity int                `json:"quantity"`
}

// SetDistanceRequest defines model for SetDistanceRequest.
type SetDistanceRequest struct {
	DistanceKm float64 `json:"distance_km" validate:"gte=0"`
}

// CheckoutRequest defines model for CheckoutRequest.
type CheckoutRequest struct {
	DeliveryAddress string   `json:"delivery_address" validate:"required"`
	Lat             float64  `json:"lat" validate:"gte=-90,lte=90"`
	Lng             float64  `json:"lng" validate:"gte=-180,lte=180"`
	DistanceKm      *float64 `json:"distance_km,omitempty" validate:"omitempty,gte=0"`
}

// OrderItem defines model for OrderItem.
type OrderItem struct {
	ProductId   openapi_types.UUID  `json:"product_id"`
	VariantId   openapi_types.UUID  `json:"variant_id"`
	SizeId      *openapi_types.UUID `json:"size_id"`
	ProductName string              `json:"product_name"`
	VariantName string              `json:"variant_name"`
	SizeName    string              `json:"size_name"`
	Price       float64             `json:"price"`
	Quantity    int                 `json:"quantity"`
	ItemTotal   float64             `json:"item_total"`
}

// Order defines model for Order.
type Order struct {
	Id                  openapi_types.UUID  `json:"id"`
	OrderNumber         string              `json:"order_number"`
	CustomerId          openapi_types.UUID  `json:"customer_id"`
	CustomerName        string              `json:"customer_name"`
	StoreId             openapi_types.UUID  `json:"store_id"`
	StoreName           string              `json:"store_name"`
	MerchantId          openapi_types.UUID  `json:"merchant_id"`
	AgentId             *openapi_types.UUID `json:"agent_id"`
	AgentName           string              `json:"agent_name,omitempty"`
	Items               []OrderItem         `json:"items"`
	Subtotal            float64             `json:"subtotal"`
	BaseDeliveryFee     float64             `json:"base_delivery_fee"`
	DeliveryFee         float64             `json:"delivery_fee"`
	PlatformFee         float64             `json:"platform_fee"`
	Total               float64             `json:"total"`
	Otp                 string              `json:"otp,omitempty"`
	DeliveryAddress     string              `json:"delivery_address"`
	Lat                 float64             `json:"lat"`
	Lng                 float64             `json:"lng"`
	DistanceKm          float64             `json:"distance_km"`
	RouteKm             float64             `json:"route_km"`
	GiftEligible        bool                `json:"gift_eligible"`
	FreeDeliveryApplied bool                `json:"free_delivery_applied"`
	Status              string              `json:"status"`
	Actions             []string            `json:"actions"`
	CreatedAt           time.Time           `json:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at"`
}

// StatusUpdateRequest defines model for StatusUpdateRequest.
type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required"`
}

// VerifyOTPRequest defines model for VerifyOTPRequest.
type VerifyOTPRequest struct {
	Otp string `json:"otp" validate:"required"`
}

// HistoryEntry defines model for HistoryEntry.
type HistoryEntry struct {
	From      string             `json:"from"`
	To        string             `json:"to"`
	ActorId   openapi_types.UUID `json:"actor_id"`
	ActorName string             `json:"actor_name"`
	ActorRole string             `json:"actor_role"`
	ChangedAt time.Time          `json:"changed_at"`
}

// DashboardStats is a tagged union: Role selects which of the *Stats models Stats holds.
type DashboardStats struct {
	Role  string          `json:"role"`
	Stats json.RawMessage `json:"stats"`
}

// CustomerStats defines model for CustomerStats.
type CustomerStats struct {
	TotalOrders  int     `json:"total_orders"`
	ActiveOrders int     `json:"active_orders"`
	TotalSpent   float64 `json:"total_spent"`
}

// MerchantStats defines model for MerchantStats.
type MerchantStats struct {
	TotalOrders   int     `json:"total_orders"`
	Delivered     int     `json:"delivered"`
	Cancelled     int     `json:"cancelled"`
	PendingOrders int     `json:"pending_orders"`
	TotalRevenue  float64 `json:"total_revenue"`
}

// AgentStats defines model for AgentStats.
type AgentStats struct {
	TotalDeliveries   int     `json:"total_deliveries"`
	ActiveOrders      int     `json:"active_orders"`
	TotalEarnings     float64 `json:"total_earnings"`
	Settled           float64 `json:"settled"`
	PendingSettlement float64 `json:"pending_settlement"`
}

// AdminStats defines model for AdminStats.
type AdminStats struct {
	TotalOrders    int     `json:"total_orders"`
	Delivered      int     `json:"delivered"`
	Cancelled      int     `json:"cancelled"`
	TotalEarnings  float64 `json:"total_earnings"`
	PlatformFees   float64 `json:"platform_fees"`
	TotalMerchants int     `json:"total_merchants"`
	TotalAgents    int     `json:"total_agents"`
	TotalCustomers int     `json:"total_customers"`
}

// Settlement defines model for Settlement.
type Settlement struct {
	Id        openapi_types.UUID  `json:"id"`
	UserId    openapi_types.UUID  `json:"user_id"`
	UserName  string              `json:"user_name"`
	Role      string              `json:"role"`
	Amount    float64             `json:"amount"`
	Status    string              `json:"status"`
	CreatedAt time.Time           `json:"created_at"`
	SettledAt *time.Time          `json:"settled_at"`
	SettledBy *openapi_types.UUID `json:"settled_by"`
}

// SettlementRequest defines model for SettlementRequest.
type SettlementRequest struct {
	Amount float64 `json:"amount" validate:"gt=0"`
}

// SearchResult defines model for SearchResult.
type SearchResult struct {
	Stores   []Store   `json:"stores"`
	Products []Product `json:"products"`
}

// Banner defines model for Banner.
type Banner struct {
	Id       openapi_types.UUID `json:"id"`
	Title    string             `json:"title"`
	ImageUrl string             `json:"image_url"`
	Link     string             `json:"link"`
	Position int                `json:"position"`
	IsActive bool               `json:"is_active"`
}

// CreateBannerRequest defines model for CreateBannerRequest.
type CreateBannerRequest struct {
	Title    string `json:"title" validate:"required"`
	ImageUrl string `json:"image_url" validate:"required"`
	Link     string `json:"link"`
	Position int    `json:"position" validate:"gte=0"`
}

// UpsertCMSRequest defines model for UpsertCMSRequest.
type UpsertCMSRequest struct {
	Value json.RawMessage `json:"value" validate:"required"`
}

// Promotion defines model for Promotion.
type Promotion struct {
	Id        openapi_types.UUID `json:"id"`
	Name      string             `json:"name"`
	PromoType string             `json:"promo_type"`
	Config    json.RawMessage    `json:"config"`
	IsActive  bool               `json:"is_active"`
}

// ListProductsParams defines parameters for ListProducts.
type ListProductsParams struct {
	StoreId  *openapi_types.UUID `form:"store_id,omitempty" json:"store_id,omitempty"`
	Search   *string             `form:"search,omitempty" json:"search,omitempty"`
	BaseType *string             `form:"base_type,omitempty" json:"base_type,omitempty"`
}

// ListStoresParams defines parameters for ListStores.
type ListStoresParams struct {
	Search *string `form:"search,omitempty" json:"search,omitempty"`
}

// ListOrdersParams defines parameters for ListOrders.
type ListOrdersParams struct {
	Status *string `form:"status,omitempty" json:"status,omitempty"`
}

// SearchParams defines parameters for Search.
type SearchParams struct {
	Q *string `form:"q,omitempty" json:"q,omitempty"`
}
