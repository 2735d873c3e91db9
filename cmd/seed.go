package cmd

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"hyperlocal/internal/adapters/out/postgres/userrepo"
	"hyperlocal/internal/core/domain/model/catalog"
	"hyperlocal/internal/core/domain/model/content"
	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/core/domain/model/user"
	"hyperlocal/internal/core/ports"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type seedUser struct {
	name, email, phone, password string
	roles                        []kernel.Role
	profile                      user.Profile
	online                       bool
}

type seedSize struct {
	name     string
	modifier int64
}

type seedVariant struct {
	name, variantType string
	price             int64
	subDays           int
	subPrice          int64
	sizes             []seedSize
}

type seedProduct struct {
	name, description, baseType, image string
	store                              int
	variants                           []seedVariant
}

type seedStore struct {
	name, address, image, hours string
	lat, lng, rating            float64
	totalOrders                 int
}

var (
	seedUsers = []seedUser{
		{
			name: "Platform Admin", email: "admin@delivery.com", phone: "9999900000", password: "admin123",
			roles: []kernel.Role{kernel.RoleAdmin, kernel.RoleCustomer}, online: true,
		},
		{
			name: "Fresh Foods Kitchen", email: "merchant@delivery.com", phone: "9999900001", password: "merchant123",
			roles: []kernel.Role{kernel.RoleMerchant, kernel.RoleCustomer}, online: true,
			profile: user.Profile{
				ShopName:     "Fresh Foods Kitchen",
				ShopAddress:  "123 Main St, Downtown",
				WorkingHours: "9:00 AM - 10:00 PM",
				JoinWhatsapp: true,
			},
		},
		{
			name: "Raj Kumar", email: "agent@delivery.com", phone: "9999900002", password: "agent123",
			roles: []kernel.Role{kernel.RoleAgent, kernel.RoleCustomer}, online: true,
			profile: user.Profile{LicenseNo: "DL-1234567", VehicleNo: "KA-01-AB-1234", JoinWhatsapp: true},
		},
		{
			name: "Priya Sharma", email: "customer@delivery.com", phone: "9999900003", password: "customer123",
			roles: []kernel.Role{kernel.RoleCustomer},
		},
	}

	seedStores = []seedStore{
		{
			name: "Fresh Foods Kitchen", address: "123 Main St, Downtown", lat: 12.9716, lng: 77.5946,
			image: "https://images.unsplash.com/photo-1678213721629-265bba6c124b?w=400",
			hours: "9:00 AM - 10:00 PM", rating: 4.5, totalOrders: 156,
		},
		{
			name: "Green Basket Grocery", address: "456 Park Ave, Midtown", lat: 12.9750, lng: 77.5980,
			image: "https://images.unsplash.com/photo-1634114042751-527be6421f41?w=400",
			hours: "8:00 AM - 9:00 PM", rating: 4.2, totalOrders: 89,
		},
		{
			name: "Sushi Express", address: "789 Oak Blvd, Uptown", lat: 12.9800, lng: 77.6000,
			image: "https://images.unsplash.com/photo-1718283123704-493455f251aa?w=400",
			hours: "11:00 AM - 11:00 PM", rating: 4.8, totalOrders: 234,
		},
	}

	seedProducts = []seedProduct{
		{
			name: "Classic Burger", description: "Juicy beef patty with fresh lettuce, tomato & cheese", baseType: "food",
			image: "https://images.unsplash.com/photo-1530554764233-e79e16c91d08?w=400",
			variants: []seedVariant{
				{name: "Regular", variantType: "general", price: 249,
					sizes: []seedSize{{"Single", 0}, {"Double", 100}, {"Triple", 180}}},
				{name: "Weekly Meal Plan", variantType: "subscription", price: 199, subDays: 7, subPrice: 1299,
					sizes: []seedSize{{"Small", 0}, {"Large", 80}}},
			},
		},
		{
			name: "Margherita Pizza", description: "Classic pizza with mozzarella, basil & tomato sauce", baseType: "food",
			image: "https://images.unsplash.com/photo-1574071318508-1cdbab80d002?w=400",
			variants: []seedVariant{
				{name: "Classic", variantType: "general", price: 299,
					sizes: []seedSize{{"Medium", 0}, {"Large", 150}, {"Family", 300}}},
			},
		},
		{
			name: "Caesar Salad", description: "Fresh romaine lettuce with parmesan & croutons", baseType: "food",
			image: "https://images.unsplash.com/photo-1546793665-c74683f339c1?w=400",
			variants: []seedVariant{
				{name: "Regular", variantType: "general", price: 199,
					sizes: []seedSize{{"Small", 0}, {"Large", 80}}},
			},
		},
		{
			name: "Fresh Organic Vegetables", description: "Seasonal organic vegetable box", baseType: "grocery", store: 1,
			image: "https://images.unsplash.com/photo-1540420773420-3366772f4999?w=400",
			variants: []seedVariant{
				{name: "Standard Box", variantType: "general", price: 399,
					sizes: []seedSize{{"Small (2kg)", 0}, {"Medium (4kg)", 200}, {"Large (6kg)", 350}}},
				{name: "Weekly Subscription", variantType: "subscription", price: 349, subDays: 7, subPrice: 2199,
					sizes: []seedSize{{"Family", 0}, {"Bulk", 500}}},
			},
		},
		{
			name: "Salmon Sushi Platter", description: "Premium salmon sushi with wasabi & ginger", baseType: "food", store: 2,
			image: "https://images.unsplash.com/photo-1579871494447-9811cf80d66c?w=400",
			variants: []seedVariant{
				{name: "Chef Special", variantType: "general", price: 599,
					sizes: []seedSize{{"8 Pieces", 0}, {"12 Pieces", 250}, {"16 Pieces", 450}}},
			},
		},
		{
			name: "Miso Ramen", description: "Rich miso broth with noodles, egg & pork belly", baseType: "food", store: 2,
			image: "https://images.unsplash.com/photo-1569718212165-3a8278d5f624?w=400",
			variants: []seedVariant{
				{name: "Regular", variantType: "general", price: 349,
					sizes: []seedSize{{"Regular", 0}, {"Large", 100}}},
			},
		},
	}
)

// Seeder fills an empty database with demo accounts, stores and content.
type Seeder struct {
	db         *gorm.DB
	uowFactory ports.UnitOfWorkFactory
	hasher     ports.PasswordHasher
	index      ports.ProductSearchIndex
	password   string
	log        *slog.Logger
	now        func() time.Time
}

// NewSeeder accepts a nil index. A non-empty password replaces the per-account demo passwords.
func NewSeeder(
	db *gorm.DB,
	uowFactory ports.UnitOfWorkFactory,
	hasher ports.PasswordHasher,
	index ports.ProductSearchIndex,
	password string,
	log *slog.Logger,
) *Seeder {
	return &Seeder{
		db:         db,
		uowFactory: uowFactory,
		hasher:     hasher,
		index:      index,
		password:   password,
		log:        log.With("component", "seeder"),
		now:        time.Now,
	}
}

// Seed does nothing when any user exists. It reports whether data was written.
func (s *Seeder) Seed(ctx context.Context) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&userrepo.UserDTO{}).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "count users")
	}
	if count > 0 {
		s.log.Info("database already seeded")
		return false, nil
	}

	s.log.Info("seeding database")
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	now := s.now().UTC()
	merchantID, err := s.seedUsers(ctx, uow, now)
	if err != nil {
		return false, err
	}
	products, err := s.seedCatalog(ctx, uow, merchantID, now)
	if err != nil {
		return false, err
	}
	if err := s.seedContent(ctx, uow, now); err != nil {
		return false, err
	}

	if err := uow.Commit(ctx); err != nil {
		return false, err
	}

	s.indexProducts(ctx, products)
	s.log.Info("database seeded", "users", len(seedUsers), "stores", len(seedStores), "products", len(products))
	return true, nil
}

func (s *Seeder) seedUsers(ctx context.Context, uow ports.UnitOfWork, now time.Time) (kernel.UUID, error) {
	var merchantID kernel.UUID
	for _, su := range seedUsers {
		password := su.password
		if s.password != "" {
			password = s.password
		}
		hash, err := s.hasher.Hash(password)
		if err != nil {
			return kernel.UUID{}, err
		}

		u, err := user.NewUser(kernel.NewUUID(), su.name, su.email, su.phone, hash, su.roles, su.profile, now)
		if err != nil {
			return kernel.UUID{}, errors.Wrapf(err, "seed user %s", su.email)
		}
		if su.online && !u.IsOnline() {
			u.ToggleOnline()
		}
		if err := uow.UserRepository().Add(ctx, u); err != nil {
			return kernel.UUID{}, err
		}
		if u.HasRole(kernel.RoleMerchant) {
			merchantID = u.ID()
		}
	}
	return merchantID, nil
}

func (s *Seeder) seedCatalog(
	ctx context.Context,
	uow ports.UnitOfWork,
	merchantID kernel.UUID,
	now time.Time,
) ([]*catalog.Product, error) {
	stores := make([]*catalog.Store, 0, len(seedStores))
	for _, ss := range seedStores {
		loc, err := kernel.NewLocation(ss.lat, ss.lng)
		if err != nil {
			return nil, err
		}
		st, err := catalog.RestoreStore(kernel.NewUUID(), merchantID, ss.name, ss.address, loc, ss.image,
			true, ss.hours, ss.rating, ss.totalOrders, now)
		if err != nil {
			return nil, errors.Wrapf(err, "seed store %s", ss.name)
		}
		if err := uow.StoreRepository().Add(ctx, st); err != nil {
			return nil, err
		}
		stores = append(stores, st)
	}

	products := make([]*catalog.Product, 0, len(seedProducts))
	for _, sp := range seedProducts {
		variants, err := buildSeedVariants(sp.variants)
		if err != nil {
			return nil, errors.Wrapf(err, "seed product %s", sp.name)
		}
		p, err := catalog.NewProduct(kernel.NewUUID(), stores[sp.store].ID(), merchantID,
			sp.name, sp.description, sp.baseType, sp.image, variants, now)
		if err != nil {
			return nil, errors.Wrapf(err, "seed product %s", sp.name)
		}
		if err := uow.ProductRepository().Add(ctx, p); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

func buildSeedVariants(in []seedVariant) ([]catalog.Variant, error) {
	out := make([]catalog.Variant, 0, len(in))
	for _, sv := range in {
		sizes := make([]catalog.Size, 0, len(sv.sizes))
		for _, sz := range sv.sizes {
			size, err := catalog.NewSize(kernel.NewUUID(), sz.name, kernel.MoneyFromInt(sz.modifier), sz.modifier == 0)
			if err != nil {
				return nil, err
			}
			sizes = append(sizes, size)
		}
		v, err := catalog.NewVariant(kernel.NewUUID(), sv.name, sv.variantType, kernel.MoneyFromInt(sv.price),
			sv.subDays, kernel.MoneyFromInt(sv.subPrice), sizes)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (s *Seeder) seedContent(ctx context.Context, uow ports.UnitOfWork, now time.Time) error {
	repo := uow.ContentRepository()

	banners := []struct{ title, image string }{
		{"Fresh Deals Today!", "https://images.unsplash.com/photo-1530554764233-e79e16c91d08?w=800"},
		{"Organic & Fresh", "https://images.unsplash.com/photo-1634114042751-527be6421f41?w=800"},
	}
	for i, b := range banners {
		banner, err := content.NewBanner(kernel.NewUUID(), b.title, b.image, "", i, now)
		if err != nil {
			return err
		}
		if err := repo.AddBanner(ctx, banner); err != nil {
			return err
		}
	}

	cms := []struct {
		key   string
		value any
	}{
		{"whatsapp_link", "https://chat.whatsapp.com/example"},
		{"social_links", map[string]string{
			"facebook":  "https://facebook.com",
			"youtube":   "https://youtube.com",
			"instagram": "https://instagram.com",
		}},
		{"platform_name", "QuickDrop"},
	}
	for _, c := range cms {
		raw, err := json.Marshal(c.value)
		if err != nil {
			return errors.Wrapf(err, "encode cms %s", c.key)
		}
		entry, err := content.NewCMSEntry(c.key, raw, now)
		if err != nil {
			return err
		}
		if err := repo.UpsertCMS(ctx, entry); err != nil {
			return err
		}
	}

	promos := []struct {
		name, promoType string
		config          map[string]any
	}{
		{"Gift with Purchase", "gift", map[string]any{
			"min_cart_value": 1000, "gift_message": "Free gift with orders over ₹1000!",
		}},
		{"Free Delivery - Near", "free_delivery", map[string]any{"min_cart_value": 499, "max_distance_km": 3}},
		{"Free Delivery - Far", "free_delivery", map[string]any{"min_cart_value": 999, "max_distance_km": 5}},
	}
	for _, p := range promos {
		raw, err := json.Marshal(p.config)
		if err != nil {
			return errors.Wrapf(err, "encode promotion %s", p.name)
		}
		promo, err := content.NewPromotion(kernel.NewUUID(), p.name, p.promoType, raw, true, now)
		if err != nil {
			return err
		}
		if err := repo.AddPromotion(ctx, promo); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) indexProducts(ctx context.Context, products []*catalog.Product) {
	if s.index == nil {
		return
	}
	for _, p := range products {
		if err := s.index.Index(ctx, p); err != nil {
			s.log.Warn("index seeded product", "product_id", p.ID().String(), "error", err)
		}
	}
}
