// Package servers holds the HTTP contract of the marketplace API: the embedded OpenAPI
// document, the wire models and the echo server interface with its parameter-binding wrapper.
package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /health)
	GetHealth(ctx echo.Context) error
	// (POST /auth/register)
	Register(ctx echo.Context) error
	// (POST /auth/login)
	Login(ctx echo.Context) error
	// (GET /auth/me)
	GetMe(ctx echo.Context) error
	// (PUT /auth/switch-role)
	SwitchRole(ctx echo.Context) error
	// (PUT /auth/toggle-online)
	ToggleOnline(ctx echo.Context) error
	// (PUT /auth/profile)
	UpdateProfile(ctx echo.Context) error
	// (GET /products)
	ListProducts(ctx echo.Context, params ListProductsParams) error
	// (POST /products)
	CreateProduct(ctx echo.Context) error
	// (GET /products/{id})
	GetProduct(ctx echo.Context, id openapi_types.UUID) error
	// (GET /stores)
	ListStores(ctx echo.Context, params ListStoresParams) error
	// (POST /stores)
	CreateStore(ctx echo.Context) error
	// (GET /stores/{id})
	GetStore(ctx echo.Context, id openapi_types.UUID) error
	// (PUT /stores/{id})
	UpdateStore(ctx echo.Context, id openapi_types.UUID) error
	// (GET /cart)
	GetCart(ctx echo.Context) error
	// (POST /cart/add)
	AddCartItem(ctx echo.Context) error
	// (PUT /cart/update)
	UpdateCartItem(ctx echo.Context) error
	// (DELETE /cart/clear)
	ClearCart(ctx echo.Context) error
	// (PUT /cart/distance)
	SetCartDistance(ctx echo.Context) error
	// (GET /orders)
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	// (POST /orders)
	Checkout(ctx echo.Context) error
	// (GET /orders/available)
	ListAvailableOrders(ctx echo.Context) error
	// (GET /orders/{id})
	GetOrder(ctx echo.Context, id openapi_types.UUID) error
	// (PUT /orders/{id}/status)
	UpdateOrderStatus(ctx echo.Context, id openapi_types.UUID) error
	// (PUT /orders/{id}/accept)
	AcceptOrder(ctx echo.Context, id openapi_types.UUID) error
	// (PUT /orders/{id}/assign)
	AssignOrder(ctx echo.Context, id openapi_types.UUID) error
	// (PUT /orders/{id}/verify-otp)
	VerifyOrderOTP(ctx echo.Context, id openapi_types.UUID) error
	// (GET /orders/{id}/history)
	GetOrderHistory(ctx echo.Context, id openapi_types.UUID) error
	// (GET /orders/{id}/otp-qr)
	GetOrderOTPQR(ctx echo.Context, id openapi_types.UUID) error
	// (GET /dashboard/stats)
	GetDashboardStats(ctx echo.Context) error
	// (GET /settlements)
	ListSettlements(ctx echo.Context) error
	// (POST /settlements/request)
	RequestSettlement(ctx echo.Context) error
	// (PUT /settlements/{id}/settle)
	SettleSettlement(ctx echo.Context, id openapi_types.UUID) error
	// (GET /search)
	Search(ctx echo.Context, params SearchParams) error
	// (GET /banners)
	ListBanners(ctx echo.Context) error
	// (POST /banners)
	CreateBanner(ctx echo.Context) error
	// (GET /cms)
	GetCMS(ctx echo.Context) error
	// (PUT /cms/{key})
	UpsertCMS(ctx echo.Context, key string) error
	// (GET /promotions)
	ListPromotions(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetHealth converts echo context to params.
func (w *ServerInterfaceWrapper) GetHealth(ctx echo.Context) error {
	var err error
	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetHealth(ctx)
	return err
}

// Register converts echo context to params.
func (w *ServerInterfaceWrapper) Register(ctx echo.Context) error {
	var err error
	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.Register(ctx)
	return err
}

// Login converts echo context to params.
func (w *ServerInterfaceWrapper) Login(ctx echo.Context) error {
	var err error
	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.Login(ctx)
	return err
}

// GetMe converts echo context to params.
func (w *ServerInterfaceWrapper) GetMe(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetMe(ctx)
	return err
}

// SwitchRole converts echo context to params.
func (w *ServerInterfaceWrapper) SwitchRole(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.SwitchRole(ctx)
	return err
}

// ToggleOnline converts echo context to params.
func (w *ServerInterfaceWrapper) ToggleOnline(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ToggleOnline(ctx)
	return err
}

// UpdateProfile converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateProfile(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdateProfile(ctx)
	return err
}

// ListProducts converts echo context to params.
func (w *ServerInterfaceWrapper) ListProducts(ctx echo.Context) error {
	var err error
	// Parameter object where we will unmarshal all parameters from the context
	var params ListProductsParams
	// ------------- Optional query parameter "store_id" -------------

	err = runtime.BindQueryParameter("form", true, false, "store_id", ctx.QueryParams(), &params.StoreId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter store_id: %s", err))
	}

	// ------------- Optional query parameter "search" -------------

	err = runtime.BindQueryParameter("form", true, false, "search", ctx.QueryParams(), &params.Search)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter search: %s", err))
	}

	// ------------- Optional query parameter "base_type" -------------

	err = runtime.BindQueryParameter("form", true, false, "base_type", ctx.QueryParams(), &params.BaseType)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter base_type: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListProducts(ctx, params)
	return err
}

// CreateProduct converts echo context to params.
func (w *ServerInterfaceWrapper) CreateProduct(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateProduct(ctx)
	return err
}

// GetProduct converts echo context to params.
func (w *ServerInterfaceWrapper) GetProduct(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetProduct(ctx, id)
	return err
}

// ListStores converts echo context to params.
func (w *ServerInterfaceWrapper) ListStores(ctx echo.Context) error {
	var err error
	// Parameter object where we will unmarshal all parameters from the context
	var params ListStoresParams
	// ------------- Optional query parameter "search" -------------

	err = runtime.BindQueryParameter("form", true, false, "search", ctx.QueryParams(), &params.Search)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter search: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListStores(ctx, params)
	return err
}

// CreateStore converts echo context to params.
func (w *ServerInterfaceWrapper) CreateStore(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateStore(ctx)
	return err
}

// GetStore converts echo context to params.
func (w *ServerInterfaceWrapper) GetStore(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetStore(ctx, id)
	return err
}

// UpdateStore converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateStore(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdateStore(ctx, id)
	return err
}

// GetCart converts echo context to params.
func (w *ServerInterfaceWrapper) GetCart(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetCart(ctx)
	return err
}

// AddCartItem converts echo context to params.
func (w *ServerInterfaceWrapper) AddCartItem(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.AddCartItem(ctx)
	return err
}

// UpdateCartItem converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateCartItem(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdateCartItem(ctx)
	return err
}

// ClearCart converts echo context to params.
func (w *ServerInterfaceWrapper) ClearCart(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ClearCart(ctx)
	return err
}

// SetCartDistance converts echo context to params.
func (w *ServerInterfaceWrapper) SetCartDistance(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.SetCartDistance(ctx)
	return err
}

// ListOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params ListOrdersParams
	// ------------- Optional query parameter "status" -------------

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListOrders(ctx, params)
	return err
}

// Checkout converts echo context to params.
func (w *ServerInterfaceWrapper) Checkout(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.Checkout(ctx)
	return err
}

// ListAvailableOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListAvailableOrders(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListAvailableOrders(ctx)
	return err
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetOrder(ctx, id)
	return err
}

// UpdateOrderStatus converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateOrderStatus(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdateOrderStatus(ctx, id)
	return err
}

// AcceptOrder converts echo context to params.
func (w *ServerInterfaceWrapper) AcceptOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.AcceptOrder(ctx, id)
	return err
}

// AssignOrder converts echo context to params.
func (w *ServerInterfaceWrapper) AssignOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.AssignOrder(ctx, id)
	return err
}

// VerifyOrderOTP converts echo context to params.
func (w *ServerInterfaceWrapper) VerifyOrderOTP(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.VerifyOrderOTP(ctx, id)
	return err
}

// GetOrderHistory converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrderHistory(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetOrderHistory(ctx, id)
	return err
}

// GetOrderOTPQR converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrderOTPQR(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetOrderOTPQR(ctx, id)
	return err
}

// GetDashboardStats converts echo context to params.
func (w *ServerInterfaceWrapper) GetDashboardStats(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetDashboardStats(ctx)
	return err
}

// ListSettlements converts echo context to params.
func (w *ServerInterfaceWrapper) ListSettlements(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListSettlements(ctx)
	return err
}

// RequestSettlement converts echo context to params.
func (w *ServerInterfaceWrapper) RequestSettlement(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.RequestSettlement(ctx)
	return err
}

// SettleSettlement converts echo context to params.
func (w *ServerInterfaceWrapper) SettleSettlement(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.SettleSettlement(ctx, id)
	return err
}

// Search converts echo context to params.
func (w *ServerInterfaceWrapper) Search(ctx echo.Context) error {
	var err error
	// Parameter object where we will unmarshal all parameters from the context
	var params SearchParams
	// ------------- Optional query parameter "q" -------------

	err = runtime.BindQueryParameter("form", true, false, "q", ctx.QueryParams(), &params.Q)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter q: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.Search(ctx, params)
	return err
}

// ListBanners converts echo context to params.
func (w *ServerInterfaceWrapper) ListBanners(ctx echo.Context) error {
	var err error
	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListBanners(ctx)
	return err
}

// CreateBanner converts echo context to params.
func (w *ServerInterfaceWrapper) CreateBanner(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateBanner(ctx)
	return err
}

// GetCMS converts echo context to params.
func (w *ServerInterfaceWrapper) GetCMS(ctx echo.Context) error {
	var err error
	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetCMS(ctx)
	return err
}

// UpsertCMS converts echo context to params.
func (w *ServerInterfaceWrapper) UpsertCMS(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "key" -------------
	var key string

	err = runtime.BindStyledParameterWithOptions("simple", "key", ctx.Param("key"), &key, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter key: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpsertCMS(ctx, key)
	return err
}

// ListPromotions converts echo context to params.
func (w *ServerInterfaceWrapper) ListPromotions(ctx echo.Context) error {
	var err error
	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListPromotions(ctx)
	return err
}

// EchoRouter is the subset of echo routing used here; both *echo.Echo and *echo.Group satisfy it.
type EchoRouter interface {
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the paths, so that
// the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/health", wrapper.GetHealth)
	router.POST(baseURL+"/auth/register", wrapper.Register)
	router.POST(baseURL+"/auth/login", wrapper.Login)
	router.GET(baseURL+"/auth/me", wrapper.GetMe)
	router.PUT(baseURL+"/auth/switch-role", wrapper.SwitchRole)
	router.PUT(baseURL+"/auth/toggle-online", wrapper.ToggleOnline)
	router.PUT(baseURL+"/auth/profile", wrapper.UpdateProfile)
	router.GET(baseURL+"/products", wrapper.ListProducts)
	router.POST(baseURL+"/products", wrapper.CreateProduct)
	router.GET(baseURL+"/products/:id", wrapper.GetProduct)
	router.GET(baseURL+"/stores", wrapper.ListStores)
	router.POST(baseURL+"/stores", wrapper.CreateStore)
	router.GET(baseURL+"/stores/:id", wrapper.GetStore)
	router.PUT(baseURL+"/stores/:id", wrapper.UpdateStore)
	router.GET(baseURL+"/cart", wrapper.GetCart)
	router.POST(baseURL+"/cart/add", wrapper.AddCartItem)
	router.PUT(baseURL+"/cart/update", wrapper.UpdateCartItem)
	router.DELETE(baseURL+"/cart/clear", wrapper.ClearCart)
	router.PUT(baseURL+"/cart/distance", wrapper.SetCartDistance)
	router.GET(baseURL+"/orders", wrapper.ListOrders)
	router.POST(baseURL+"/orders", wrapper.Checkout)
	router.GET(baseURL+"/orders/available", wrapper.ListAvailableOrders)
	router.GET(baseURL+"/orders/:id", wrapper.GetOrder)
	router.PUT(baseURL+"/orders/:id/status", wrapper.UpdateOrderStatus)
	router.PUT(baseURL+"/orders/:id/accept", wrapper.AcceptOrder)
	router.PUT(baseURL+"/orders/:id/assign", wrapper.AssignOrder)
	router.PUT(baseURL+"/orders/:id/verify-otp", wrapper.VerifyOrderOTP)
	router.GET(baseURL+"/orders/:id/history", wrapper.GetOrderHistory)
	router.GET(baseURL+"/orders/:id/otp-qr", wrapper.GetOrderOTPQR)
	router.GET(baseURL+"/dashboard/stats", wrapper.GetDashboardStats)
	router.GET(baseURL+"/settlements", wrapper.ListSettlements)
	router.POST(baseURL+"/settlements/request", wrapper.RequestSettlement)
	router.PUT(baseURL+"/settlements/:id/settle", wrapper.SettleSettlement)
	router.GET(baseURL+"/search", wrapper.Search)
	router.GET(baseURL+"/banners", wrapper.ListBanners)
	router.POST(baseURL+"/banners", wrapper.CreateBanner)
	router.GET(baseURL+"/cms", wrapper.GetCMS)
	router.PUT(baseURL+"/cms/:key", wrapper.UpsertCMS)
	router.GET(baseURL+"/promotions", wrapper.ListPromotions)
}
