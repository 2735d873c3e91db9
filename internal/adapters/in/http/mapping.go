package http

import (
	"encoding/json"
	"fmt"

	"hyperlocal/internal/core/application/usecases/queries"
	"hyperlocal/internal/core/domain/model/cart"
	"hyperlocal/internal/core/domain/model/content"
	"hyperlocal/internal/core/domain/model/dashboard"
	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/generated/servers"
	"hyperlocal/internal/pkg/errs"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func kernelID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func optionalKernelID(id *openapi_types.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	out, err := kernelID(*id)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func optionalWireID(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	out := id.Bytes()
	return &out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toUser(v queries.UserView) servers.User {
	roles := make([]string, 0, len(v.Roles))
	for _, r := range v.Roles {
		roles = append(roles, r.String())
	}
	return servers.User{
		Id:           v.ID.Bytes(),
		Name:         v.Name,
		Email:        v.Email,
		Phone:        v.Phone,
		Roles:        roles,
		ActiveRole:   v.ActiveRole.String(),
		IsOnline:     v.IsOnline,
		LicenseNo:    v.Profile.LicenseNo,
		VehicleNo:    v.Profile.VehicleNo,
		ShopName:     v.Profile.ShopName,
		ShopAddress:  v.Profile.ShopAddress,
		WorkingHours: v.Profile.WorkingHours,
		ProfilePhoto: v.Profile.ProfilePhoto,
		JoinWhatsapp: v.Profile.JoinWhatsapp,
		CreatedAt:    v.CreatedAt,
	}
}

func toStore(v queries.StoreView) servers.Store {
	return servers.Store{
		Id:           v.ID.Bytes(),
		MerchantId:   v.MerchantID.Bytes(),
		Name:         v.Name,
		Address:      v.Address,
		Lat:          v.Lat,
		Lng:          v.Lng,
		ImageUrl:     v.ImageURL,
		IsOpen:       v.IsOpen,
		WorkingHours: v.WorkingHours,
		Rating:       v.Rating,
		TotalOrders:  v.TotalOrders,
	}
}

func toProduct(v queries.ProductView) servers.Product {
	variants := make([]servers.Variant, 0, len(v.Variants))
	for _, vv := range v.Variants {
		sizes := make([]servers.Size, 0, len(vv.Sizes))
		for _, sz := range vv.Sizes {
			sizes = append(sizes, servers.Size{
				Id:            sz.ID.Bytes(),
				Name:          sz.Name,
				PriceModifier: sz.PriceModifier.Float64(),
				IsDefault:     sz.IsDefault,
			})
		}
		variants = append(variants, servers.Variant{
			Id:                vv.ID.Bytes(),
			Name:              vv.Name,
			VariantType:       vv.VariantType,
			Price:             vv.Price.Float64(),
			SubscriptionDays:  vv.SubscriptionDays,
			SubscriptionPrice: vv.SubscriptionPrice.Float64(),
			Sizes:             sizes,
		})
	}
	return servers.Product{
		Id:          v.ID.Bytes(),
		StoreId:     v.StoreID.Bytes(),
		MerchantId:  v.MerchantID.Bytes(),
		Name:        v.Name,
		Description: v.Description,
		BaseType:    v.BaseType,
		ImageUrl:    v.ImageURL,
		Variants:    variants,
	}
}

func toProducts(views []queries.ProductView) []servers.Product {
	out := make([]servers.Product, 0, len(views))
	for _, v := range views {
		out = append(out, toProduct(v))
	}
	return out
}

func toCart(s cart.Summary) servers.Cart {
	items := make([]servers.CartItem, 0, len(s.Lines))
	for _, l := range s.Lines {
		items = append(items, servers.CartItem{
			ItemId:       l.LineID.Bytes(),
			ProductId:    l.ProductID.Bytes(),
			VariantId:    l.VariantID.Bytes(),
			SizeId:       optionalWireID(l.SizeID),
			ProductName:  l.ProductName,
			ProductImage: l.ImageURL,
			VariantName:  l.VariantName,
			SizeName:     l.SizeName,
			Price:        l.UnitPrice.Float64(),
			Quantity:     l.Quantity,
			ItemTotal:    l.ItemTotal.Float64(),
		})
	}
	return servers.Cart{
		StoreId:         optionalWireID(s.StoreID),
		Items:           items,
		ItemCount:       s.ItemCount,
		Subtotal:        s.Subtotal.Float64(),
		BaseDeliveryFee: s.BaseDeliveryFee.Float64(),
		DeliveryFee:     s.DeliveryFee.Float64(),
		Total:           s.Total.Float64(),
		DistanceKm:      s.DistanceKm,
		Promotions: servers.CartPromotions{
			GiftEligible:        s.Promotions.GiftEligible,
			GiftMessage:         s.Promotions.GiftMessage,
			UpsellMessage:       s.Promotions.UpsellMessage,
			FreeDeliveryApplied: s.Promotions.FreeDeliveryApplied,
			FreeDeliveryMessage: s.Promotions.FreeDeliveryMessage,
		},
	}
}

func toOrder(v queries.OrderView) servers.Order {
	items := make([]servers.OrderItem, 0, len(v.Items))
	for _, it := range v.Items {
		items = append(items, servers.OrderItem{
			ProductId:   it.ProductID.Bytes(),
			VariantId:   it.VariantID.Bytes(),
			SizeId:      optionalWireID(it.SizeID),
			ProductName: it.ProductName,
			VariantName: it.VariantName,
			SizeName:    it.SizeName,
			Price:       it.UnitPrice.Float64(),
			Quantity:    it.Quantity,
			ItemTotal:   it.ItemTotal.Float64(),
		})
	}
	actions := make([]string, 0, len(v.Actions))
	for _, a := range v.Actions {
		actions = append(actions, a.String())
	}
	return servers.Order{
		Id:                  v.ID.Bytes(),
		OrderNumber:         v.Number,
		CustomerId:          v.CustomerID.Bytes(),
		CustomerName:        v.CustomerName,
		StoreId:             v.StoreID.Bytes(),
		StoreName:           v.StoreName,
		MerchantId:          v.MerchantID.Bytes(),
		AgentId:             optionalWireID(v.AgentID),
		AgentName:           v.AgentName,
		Items:               items,
		Subtotal:            v.Charges.Subtotal.Float64(),
		BaseDeliveryFee:     v.Charges.BaseDeliveryFee.Float64(),
		DeliveryFee:         v.Charges.DeliveryFee.Float64(),
		PlatformFee:         v.Charges.PlatformFee.Float64(),
		Total:               v.Charges.Total.Float64(),
		Otp:                 v.OTP,
		DeliveryAddress:     v.Destination.Address,
		Lat:                 v.Destination.Location.Lat(),
		Lng:                 v.Destination.Location.Lng(),
		DistanceKm:          v.Destination.DistanceKm,
		RouteKm:             v.Destination.RouteKm,
		GiftEligible:        v.Promotions.GiftEligible,
		FreeDeliveryApplied: v.Promotions.FreeDeliveryApplied,
		Status:              v.Status.String(),
		Actions:             actions,
		CreatedAt:           v.CreatedAt,
		UpdatedAt:           v.UpdatedAt,
	}
}

func toOrders(views []queries.OrderView) []servers.Order {
	out := make([]servers.Order, 0, len(views))
	for _, v := range views {
		out = append(out, toOrder(v))
	}
	return out
}

// toDashboard encodes the variant under its role tag.
func toDashboard(stats dashboard.Stats) (servers.DashboardStats, error) {
	var payload any
	switch s := stats.(type) {
	case dashboard.CustomerStats:
		payload = servers.CustomerStats{
			TotalOrders:  s.TotalOrders,
			ActiveOrders: s.ActiveOrders,
			TotalSpent:   s.TotalSpent.Float64(),
		}
	case dashboard.MerchantStats:
		payload = servers.MerchantStats{
			TotalOrders:   s.TotalOrders,
			Delivered:     s.Delivered,
			Cancelled:     s.Cancelled,
			PendingOrders: s.PendingOrders,
			TotalRevenue:  s.TotalRevenue.Float64(),
		}
	case dashboard.AgentStats:
		payload = servers.AgentStats{
			TotalDeliveries:   s.TotalDeliveries,
			ActiveOrders:      s.ActiveOrders,
			TotalEarnings:     s.TotalEarnings.Float64(),
			Settled:           s.Settled.Float64(),
			PendingSettlement: s.PendingSettlement.Float64(),
		}
	case dashboard.AdminStats:
		payload = servers.AdminStats{
			TotalOrders:    s.TotalOrders,
			Delivered:      s.Delivered,
			Cancelled:      s.Cancelled,
			TotalEarnings:  s.TotalEarnings.Float64(),
			PlatformFees:   s.PlatformFees.Float64(),
			TotalMerchants: s.TotalMerchants,
			TotalAgents:    s.TotalAgents,
			TotalCustomers: s.TotalCustomers,
		}
	default:
		return servers.DashboardStats{}, errs.NewValueIsInvalidErrorWithCause("stats", fmt.Errorf("unexpected variant %T", stats))
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return servers.DashboardStats{}, err
	}
	return servers.DashboardStats{Role: stats.Role().String(), Stats: raw}, nil
}

func toSettlement(v queries.SettlementView) servers.Settlement {
	return servers.Settlement{
		Id:        v.ID.Bytes(),
		UserId:    v.UserID.Bytes(),
		UserName:  v.UserName,
		Role:      v.Role.String(),
		Amount:    v.Amount.Float64(),
		Status:    v.Status.String(),
		CreatedAt: v.CreatedAt,
		SettledAt: v.SettledAt,
		SettledBy: optionalWireID(v.SettledBy),
	}
}

func toBanner(b content.Banner) servers.Banner {
	return servers.Banner{
		Id:       b.ID.Bytes(),
		Title:    b.Title,
		ImageUrl: b.ImageURL,
		Link:     b.Link,
		Position: b.Position,
		IsActive: b.IsActive,
	}
}
