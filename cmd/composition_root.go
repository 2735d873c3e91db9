package cmd

import (
	"log/slog"

	httpin "hyperlocal/internal/adapters/in/http"
	"hyperlocal/internal/adapters/out/auth"
	"hyperlocal/internal/adapters/out/elastic"
	"hyperlocal/internal/adapters/out/kafka"
	"hyperlocal/internal/adapters/out/postgres"
	"hyperlocal/internal/adapters/out/qrcode"
	"hyperlocal/internal/core/application/usecases/commands"
	"hyperlocal/internal/core/application/usecases/queries"
	"hyperlocal/internal/core/domain/model/cart"
	"hyperlocal/internal/core/domain/services"
	"hyperlocal/internal/core/ports"
	"hyperlocal/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	log        *slog.Logger
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory

	policy      cart.Policy
	platformFee decimal.Decimal
	tokens      *auth.TokenService
	hasher      auth.BcryptHasher
	qr          qrcode.Renderer
	index       ports.ProductSearchIndex
	publisher   ports.EventPublisher

	closers []func() error
}

// NewCompositionRoot builds the process-wide adapters. Kafka and Elasticsearch are optional:
// without brokers events are logged, without addresses search stays in SQL.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, log *slog.Logger) (*CompositionRoot, error) {
	policy, err := cfg.PricingPolicy()
	if err != nil {
		return nil, err
	}
	fee, err := cfg.PlatformFeePercent()
	if err != nil {
		return nil, err
	}
	tokens, err := auth.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		return nil, err
	}

	c := &CompositionRoot{
		cfg:         cfg,
		log:         log,
		gormDB:      gormDB,
		uowFactory:  postgres.NewGormUnitOfWorkFactory(gormDB),
		policy:      policy,
		platformFee: fee,
		tokens:      tokens,
		hasher:      auth.NewBcryptHasher(cfg.BcryptCost),
		qr:          qrcode.NewRenderer(cfg.QRLevel),
	}

	if brokers := cfg.KafkaBrokers(); len(brokers) > 0 {
		p := kafka.NewPublisher(brokers, cfg.KafkaOrderChangedTopic, log)
		c.publisher = p
		c.closers = append(c.closers, p.Close)
	} else {
		c.publisher = kafka.NewLogPublisher(log)
	}

	if len(cfg.ElasticAddresses) > 0 {
		client, err := elastic.NewClient(cfg.ElasticAddresses, cfg.ElasticUsername, cfg.ElasticPassword)
		if err != nil {
			return nil, err
		}
		c.index = elastic.NewProductIndex(client, cfg.ElasticIndex)
	}

	return c, nil
}

// Close releases adapters opened by the root. The database is owned by the caller.
func (c *CompositionRoot) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			c.log.Error("close adapter", "error", err)
		}
	}
}

func (c *CompositionRoot) Tokens() *auth.TokenService {
	return c.tokens
}

func (c *CompositionRoot) CreateSeeder() *Seeder {
	return NewSeeder(c.gormDB, c.uowFactory, c.hasher, c.index, c.cfg.SeedPassword, c.log)
}

// CreateRouter assembles the HTTP API.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	server := httpin.NewServer(c.CreateCommandHandlers(), c.CreateQueryHandlers(), c.tokens, c.qr)
	return httpin.NewRouter(
		httpin.RouterConfig{AllowOrigins: c.cfg.CORSOrigins},
		server,
		c.tokens,
		c.CreateGetCurrentUserQueryHandler(),
		c.log,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.Config{
			OutboxRelaySchedule: c.cfg.OutboxRelaySchedule,
			OutboxBatchSize:     c.cfg.OutboxBatchSize,
			StaleCartSchedule:   c.cfg.StaleCartSchedule,
			StaleCartMaxAge:     c.cfg.StaleCartMaxAge,
		},
		c.CreateRelayOutboxCommandHandler(),
		c.CreatePurgeStaleCartsCommandHandler(),
		c.log,
	)
}

func (c *CompositionRoot) CreateCommandHandlers() httpin.CommandHandlers {
	users := c.userUoWFactory()
	catalogF := c.catalogUoWFactory()
	carts := c.cartUoWFactory()
	orders := c.orderUoWFactory()
	settlements := c.settlementUoWFactory()
	contentF := c.contentUoWFactory()

	return httpin.CommandHandlers{
		RegisterUser:      commands.NewRegisterUserCommandHandler(users, c.hasher),
		SwitchRole:        commands.NewSwitchRoleCommandHandler(users),
		ToggleOnline:      commands.NewToggleOnlineCommandHandler(users),
		UpdateProfile:     commands.NewUpdateProfileCommandHandler(users),
		CreateStore:       commands.NewCreateStoreCommandHandler(catalogF),
		UpdateStore:       commands.NewUpdateStoreCommandHandler(catalogF),
		CreateProduct:     commands.NewCreateProductCommandHandler(catalogF, c.index),
		AddCartItem:       commands.NewAddCartItemCommandHandler(carts),
		UpdateCartItem:    commands.NewUpdateCartItemCommandHandler(carts),
		ClearCart:         commands.NewClearCartCommandHandler(carts),
		SetCartDistance:   commands.NewSetCartDistanceCommandHandler(carts),
		Checkout:          c.CreateCheckoutCommandHandler(),
		UpdateOrderStatus: commands.NewUpdateOrderStatusCommandHandler(orders),
		AcceptOrder:       commands.NewAcceptOrderCommandHandler(orders),
		ClaimOrder:        commands.NewClaimOrderCommandHandler(orders),
		VerifyOTP:         commands.NewVerifyOTPCommandHandler(orders),
		RequestSettlement: commands.NewRequestSettlementCommandHandler(settlements),
		Settle:            commands.NewSettleCommandHandler(settlements),
		CreateBanner:      commands.NewCreateBannerCommandHandler(contentF),
		UpsertCMS:         commands.NewUpsertCMSCommandHandler(contentF),
	}
}

func (c *CompositionRoot) CreateQueryHandlers() httpin.QueryHandlers {
	return httpin.QueryHandlers{
		Login:               queries.NewLoginQueryHandler(c.uowFactory, c.hasher, c.tokens),
		GetCurrentUser:      c.CreateGetCurrentUserQueryHandler(),
		ListProducts:        queries.NewListProductsQueryHandler(c.gormDB, c.index),
		GetProduct:          queries.NewGetProductQueryHandler(c.gormDB),
		ListStores:          queries.NewListStoresQueryHandler(c.gormDB),
		GetStore:            queries.NewGetStoreQueryHandler(c.gormDB),
		Search:              queries.NewSearchQueryHandler(c.gormDB, c.index),
		GetCart:             queries.NewGetCartQueryHandler(c.uowFactory, c.policy),
		ListOrders:          queries.NewListOrdersQueryHandler(c.gormDB, c.uowFactory),
		ListAvailableOrders: queries.NewListAvailableOrdersQueryHandler(c.gormDB, c.uowFactory),
		GetOrder:            queries.NewGetOrderQueryHandler(c.gormDB, c.uowFactory),
		GetOrderHistory:     queries.NewGetOrderHistoryQueryHandler(c.gormDB, c.uowFactory),
		GetDashboard:        queries.NewGetDashboardQueryHandler(c.gormDB),
		ListSettlements:     queries.NewListSettlementsQueryHandler(c.gormDB),
		ListBanners:         queries.NewListBannersQueryHandler(c.gormDB),
		GetCMS:              queries.NewGetCMSQueryHandler(c.gormDB),
		ListPromotions:      queries.NewListPromotionsQueryHandler(c.gormDB),
	}
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCheckoutCommandHandler(f, services.NewOrderPlacer(c.policy, c.platformFee))
}

func (c *CompositionRoot) CreateRelayOutboxCommandHandler() commands.RelayOutboxCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRelayOutboxCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreatePurgeStaleCartsCommandHandler() commands.PurgeStaleCartsCommandHandler {
	return commands.NewPurgeStaleCartsCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateGetCurrentUserQueryHandler() queries.GetCurrentUserQueryHandler {
	return queries.NewGetCurrentUserQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) cartUoWFactory() commands.CartUoWFactory {
	return FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) settlementUoWFactory() commands.SettlementUoWFactory {
	return FuncSettlementUoWFactory(func() commands.SettlementUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) contentUoWFactory() commands.ContentUoWFactory {
	return FuncContentUoWFactory(func() commands.ContentUoW {
		return c.uowFactory.Create()
	})
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncSettlementUoWFactory func() commands.SettlementUoW

func (f FuncSettlementUoWFactory) Create() commands.SettlementUoW {
	return f()
}

type FuncContentUoWFactory func() commands.ContentUoW

func (f FuncContentUoWFactory) Create() commands.ContentUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
