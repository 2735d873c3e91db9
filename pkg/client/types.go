package client

import (
	"encoding/json"
	"fmt"

	"hyperlocal/internal/generated/servers"
)

type (
	User                 = servers.User
	RegisterRequest      = servers.RegisterRequest
	ProfileUpdateRequest = servers.ProfileUpdateRequest
	Store                = servers.Store
	StoreDetail          = servers.StoreDetail
	CreateStoreRequest   = servers.CreateStoreRequest
	UpdateStoreRequest   = servers.UpdateStoreRequest
	Product              = servers.Product
	CreateProductRequest = servers.CreateProductRequest
	VariantInput         = servers.VariantInput
	SizeInput            = servers.SizeInput
	SearchResult         = servers.SearchResult
	Cart                 = servers.Cart
	AddCartItemRequest   = servers.AddCartItemRequest
	CheckoutRequest      = servers.CheckoutRequest
	Order                = servers.Order
	HistoryEntry         = servers.HistoryEntry
	Settlement           = servers.Settlement
	Banner               = servers.Banner
	CreateBannerRequest  = servers.CreateBannerRequest
	Promotion            = servers.Promotion
	CustomerStats        = servers.CustomerStats
	MerchantStats        = servers.MerchantStats
	AgentStats           = servers.AgentStats
	AdminStats           = servers.AdminStats
)

// Order statuses.
const (
	StatusPlaced         = "placed"
	StatusAccepted       = "accepted"
	StatusPreparing      = "preparing"
	StatusReadyForPickup = "ready_for_pickup"
	StatusAssigned       = "assigned"
	StatusPickedUp       = "picked_up"
	StatusDelivered      = "delivered"
	StatusCancelled      = "cancelled"
)

// Roles.
const (
	RoleCustomer = "customer"
	RoleMerchant = "merchant"
	RoleAgent    = "agent"
	RoleAdmin    = "admin"
)

// Dashboard is the role-specific statistics block. Exactly one of the pointers is set, chosen
// by Role.
type Dashboard struct {
	Role     string
	Customer *CustomerStats
	Merchant *MerchantStats
	Agent    *AgentStats
	Admin    *AdminStats
}

func decodeDashboard(in servers.DashboardStats) (Dashboard, error) {
	d := Dashboard{Role: in.Role}
	var target any
	switch in.Role {
	case RoleCustomer:
		d.Customer = &CustomerStats{}
		target = d.Customer
	case RoleMerchant:
		d.Merchant = &MerchantStats{}
		target = d.Merchant
	case RoleAgent:
		d.Agent = &AgentStats{}
		target = d.Agent
	case RoleAdmin:
		d.Admin = &AdminStats{}
		target = d.Admin
	default:
		return Dashboard{}, fmt.Errorf("unknown dashboard role %q", in.Role)
	}
	if err := json.Unmarshal(in.Stats, target); err != nil {
		return Dashboard{}, fmt.Errorf("decode %s dashboard: %w", in.Role, err)
	}
	return d, nil
}

// CanPerform reports whether the order currently offers action to the caller.
func CanPerform(o Order, action string) bool {
	for _, a := range o.Actions {
		if a == action {
			return true
		}
	}
	return false
}
