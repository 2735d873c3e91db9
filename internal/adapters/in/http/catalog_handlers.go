package http

import (
	"net/http"

	"hyperlocal/internal/core/application/usecases/commands"
	"hyperlocal/internal/core/application/usecases/queries"
	"hyperlocal/internal/core/domain/model/catalog"
	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListProducts handles GET /api/products.
func (s *Server) ListProducts(ctx echo.Context, params servers.ListProductsParams) error {
	var storeID *kernel.UUID
	if params.StoreId != nil {
		id, err := kernelID(*params.StoreId)
		if err != nil {
			return err
		}
		storeID = &id
	}

	query := queries.NewListProductsQuery(storeID, deref(params.Search), deref(params.BaseType))
	products, err := s.queries.ListProducts.Handle(requestContext(ctx), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toProducts(products))
}

// GetProduct handles GET /api/products/{id}.
func (s *Server) GetProduct(ctx echo.Context, id openapi_types.UUID) error {
	productID, err := kernelID(id)
	if err != nil {
		return err
	}
	return s.respondProduct(ctx, http.StatusOK, productID)
}

// CreateProduct handles POST /api/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	u, err := currentUser(ctx)
	if err != nil {
		return err
	}
	var req servers.CreateProductRequest
	if err = bindBody(ctx, &req); err != nil {
		return err
	}

	storeID, err := kernelID(req.StoreId)
	if err != nil {
		return err
	}
	variants, err := variantInputs(req.Variants)
	if err != nil {
		return err
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(
		productID, u.ID, u.ActiveRole, storeID,
		req.Name, req.Description, req.BaseType, req.ImageUrl,
		variants,
	)
	if err != nil {
		return err
	}
	if err = s.commands.CreateProduct.Handle(requestContext(ctx), cmd); err != nil {
		return err
	}

	return s.respondProduct(ctx, http.StatusCreated, productID)
}

func variantInputs(in []servers.VariantInput) ([]commands.VariantInput, error) {
	out := make([]commands.VariantInput, 0, len(in))
	for _, v := range in {
		price, err := kernel.MoneyFromFloat(v.Price)
		if err != nil {
			return nil, err
		}
		subPrice, err := kernel.MoneyFromFloat(v.SubscriptionPrice)
		if err != nil {
			return nil, err
		}
		sizes := make([]commands.SizeInput, 0, len(v.Sizes))
		for _, sz := range v.Sizes {
			modifier, err := kernel.MoneyFromFloat(sz.PriceModifier)
			if err != nil {
				return nil, err
			}
			sizes = append(sizes, commands.SizeInput{Name: sz.Name, PriceModifier: modifier, IsDefault: sz.IsDefault})
		}
		out = append(out, commands.VariantInput{
			Name:              v.Name,
			VariantType:       v.VariantType,
			Price:             price,
			SubscriptionDays:  v.SubscriptionDays,
			SubscriptionPrice: subPrice,
			Sizes:             sizes,
		})
	}
	return out, nil
}

func (s *Server) respondProduct(ctx echo.Context, status int, productID kernel.UUID) error {
	query, err := queries.NewGetProductQuery(productID)
	if err != nil {
		return err
	}
	product, err := s.queries.GetProduct.Handle(requestContext(ctx), query)
	if err != nil {
		return err
	}
	return ctx.JSON(status, toProduct(product))
}

// ListStores handles GET /api/stores.
func (s *Server) ListStores(ctx echo.Context, params servers.ListStoresParams) error {
	stores, err := s.queries.ListStores.Handle(requestContext(ctx), queries.NewListStoresQuery(deref(params.Search)))
	if err != nil {
		return err
	}

	out := make([]servers.Store, 0, len(stores))
	for _, st := range stores {
		out = append(out, toStore(st))
	}
	return ctx.JSON(http.StatusOK, out)
}

// GetStore handles GET /api/stores/{id}.
func (s *Server) GetStore(ctx echo.Context, id openapi_types.UUID) error {
	storeID, err := kernelID(id)
	if err != nil {
		return err
	}
	return s.respondStore(ctx, http.StatusOK, storeID)
}

// CreateStore handles POST /api/stores.
func (s *Server) CreateStore(ctx echo.Context) error {
	u, err := currentUser(ctx)
	if err != nil {
		return err
	}
	var req servers.CreateStoreRequest
	if err = bindBody(ctx, &req); err != nil {
		return err
	}

	storeID := kernel.NewUUID()
	cmd, err := commands.NewCreateStoreCommand(
		storeID, u.ID, u.ActiveRole,
		req.Name, req.Address, req.Lat, req.Lng, req.ImageUrl, req.WorkingHours,
	)
	if err != nil {
		return err
	}
	if err = s.commands.CreateStore.Handle(requestContext(ctx), cmd); err != nil {
		return err
	}

	return s.respondStore(ctx, http.StatusCreated, storeID)
}

// UpdateStore handles PUT /api/stores/{id}.
func (s *Server) UpdateStore(ctx echo.Context, id openapi_types.UUID) error {
	u, err := currentUser(ctx)
	if err != nil {
		return err
	}
	storeID, err := kernelID(id)
	if err != nil {
		return err
	}
	var req servers.UpdateStoreRequest
	if err = bindBody(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateStoreCommand(storeID, u.ID, u.ActiveRole, catalog.StorePatch{
		Name:         req.Name,
		IsOpen:       req.IsOpen,
		WorkingHours: req.WorkingHours,
	})
	if err != nil {
		return err
	}
	if err = s.commands.UpdateStore.Handle(requestContext(ctx), cmd); err != nil {
		return err
	}

	return s.respondStore(ctx, http.StatusOK, storeID)
}

func (s *Server) respondStore(ctx echo.Context, status int, storeID kernel.UUID) error {
	query, err := queries.NewGetStoreQuery(storeID)
	if err != nil {
		return err
	}
	detail, err := s.queries.GetStore.Handle(requestContext(ctx), query)
	if err != nil {
		return err
	}
	return ctx.JSON(status, servers.StoreDetail{Store: toStore(detail.Store), Products: toProducts(detail.Products)})
}

// Search handles GET /api/search.
func (s *Server) Search(ctx echo.Context, params servers.SearchParams) error {
	res, err := s.queries.Search.Handle(requestContext(ctx), queries.NewSearchQuery(deref(params.Q)))
	if err != nil {
		return err
	}

	out := servers.SearchResult{
		Stores:   make([]servers.Store, 0, len(res.Stores)),
		Products: toProducts(res.Products),
	}
	for _, st := range res.Stores {
		out.Stores = append(out.Stores, toStore(st))
	}
	return ctx.JSON(http.StatusOK, out)
}
