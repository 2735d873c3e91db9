package http

import (
	"hyperlocal/internal/core/application/usecases/commands"
	"hyperlocal/internal/core/application/usecases/queries"
	"hyperlocal/internal/core/ports"
	"hyperlocal/internal/generated/servers"
)

// CommandHandlers are the write use cases reachable over HTTP.
type CommandHandlers struct {
	RegisterUser      commands.RegisterUserCommandHandler
	SwitchRole        commands.SwitchRoleCommandHandler
	ToggleOnline      commands.ToggleOnlineCommandHandler
	UpdateProfile     commands.UpdateProfileCommandHandler
	CreateStore       commands.CreateStoreCommandHandler
	UpdateStore       commands.UpdateStoreCommandHandler
	CreateProduct     commands.CreateProductCommandHandler
	AddCartItem       commands.AddCartItemCommandHandler
	UpdateCartItem    commands.UpdateCartItemCommandHandler
	ClearCart         commands.ClearCartCommandHandler
	SetCartDistance   commands.SetCartDistanceCommandHandler
	Checkout          commands.CheckoutCommandHandler
	UpdateOrderStatus commands.UpdateOrderStatusCommandHandler
	AcceptOrder       commands.AcceptOrderCommandHandler
	ClaimOrder        commands.ClaimOrderCommandHandler
	VerifyOTP         commands.VerifyOTPCommandHandler
	RequestSettlement commands.RequestSettlementCommandHandler
	Settle            commands.SettleCommandHandler
	CreateBanner      commands.CreateBannerCommandHandler
	UpsertCMS         commands.UpsertCMSCommandHandler
}

// QueryHandlers are the read use cases reachable over HTTP.
type QueryHandlers struct {
	Login               queries.LoginQueryHandler
	GetCurrentUser      queries.GetCurrentUserQueryHandler
	ListProducts        queries.ListProductsQueryHandler
	GetProduct          queries.GetProductQueryHandler
	ListStores          queries.ListStoresQueryHandler
	GetStore            queries.GetStoreQueryHandler
	Search              queries.SearchQueryHandler
	GetCart             queries.GetCartQueryHandler
	ListOrders          queries.ListOrdersQueryHandler
	ListAvailableOrders queries.ListAvailableOrdersQueryHandler
	GetOrder            queries.GetOrderQueryHandler
	GetOrderHistory     queries.GetOrderHistoryQueryHandler
	GetDashboard        queries.GetDashboardQueryHandler
	ListSettlements     queries.ListSettlementsQueryHandler
	ListBanners         queries.ListBannersQueryHandler
	GetCMS              queries.GetCMSQueryHandler
	ListPromotions      queries.ListPromotionsQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases. Every mutation answers
// with the state read back after the write.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers

	tokens ports.TokenIssuer
	qr     ports.QRRenderer
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(cmds CommandHandlers, qs QueryHandlers, tokens ports.TokenIssuer, qr ports.QRRenderer) *Server {
	return &Server{
		commands: cmds,
		queries:  qs,
		tokens:   tokens,
		qr:       qr,
	}
}
