package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/shopverse/storefront/internal/core/catalog"
	"github.com/shopverse/storefront/internal/core/domain"
	"github.com/shopverse/storefront/internal/core/ports"
)

const maxPageSize = 100

// ProductHandler serves the public catalog.
type ProductHandler struct {
	service  ports.CatalogService
	pageSize int
}

func NewProductHandler(service ports.CatalogService, pageSize int) *ProductHandler {
	if pageSize <= 0 {
		pageSize = catalog.DefaultPageSize
	}
	return &ProductHandler{service: service, pageSize: pageSize}
}

// List handles GET /v1/products.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        search      query     string  false  "Case-insensitive match on title, description or category"
// @Param        category    query     string  false  "Category name"
// @Param        sort        query     string  false  "featured, price-low, price-high, rating or newest"
// @Param        min_price   query     number  false  "Lower price bound"
// @Param        max_price   query     number  false  "Upper price bound"
// @Param        min_rating  query     number  false  "Minimum rating"
// @Param        page        query     int     false  "1-based page"
// @Param        page_size   query     int     false  "Products per page"
// @Success      200         {object}  productListResponse
// @Failure      400         {object}  errorResponse
// @Router       /v1/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	params := c.QueryParams()
	l := catalog.NewListing(params)

	filters, err := parseFilters(c)
	if err != nil {
		return err
	}
	l.SetFilters(filters)
	l.SetSort(domain.ParseSortKey(params.Get("sort")))

	page, err := queryInt(c, "page", 1)
	if err != nil {
		return err
	}
	size, err := queryInt(c, "page_size", h.pageSize)
	if err != nil {
		return err
	}
	if size < 1 || size > maxPageSize {
		return echo.NewHTTPError(http.StatusBadRequest, "page_size must be between 1 and 100")
	}
	l.SetPage(page)

	res, err := h.service.Query(c.Request().Context(), l, size)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, productListResponse{
		Items:      toProductResponses(res.Items),
		Page:       res.Page,
		PageSize:   res.PageSize,
		TotalPages: res.TotalPages,
		TotalCount: res.TotalCount,
		Pages:      catalog.PageIndicators(res.Page, res.TotalPages),
		Query:      l.Params().Encode(),
	})
}

// Featured handles GET /v1/products/featured.
//
// @Summary      Featured products
// @Tags         products
// @Produce      json
// @Success      200  {array}   productResponse
// @Router       /v1/products/featured [get]
func (h *ProductHandler) Featured(c echo.Context) error {
	products, err := h.service.Featured(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponses(products))
}

// Get handles GET /v1/products/:id.
//
// @Summary      Product detail with related products
// @Tags         products
// @Produce      json
// @Param        id   path      int  true  "Product id"
// @Success      200  {object}  productDetailResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	p, err := h.service.Get(ctx, id)
	if err != nil {
		return err
	}
	related, err := h.service.Related(ctx, *p, relatedLimit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, productDetailResponse{
		Product:     toProductResponse(*p),
		MaxQuantity: p.Stock,
		Related:     toProductResponses(related),
	})
}

// Categories handles GET /v1/categories.
//
// @Summary      Category navigation
// @Tags         products
// @Produce      json
// @Success      200  {array}   categoryResponse
// @Router       /v1/categories [get]
func (h *ProductHandler) Categories(c echo.Context) error {
	cats, err := h.service.Categories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCategoryResponses(cats))
}

const relatedLimit = 4

func parseFilters(c echo.Context) (domain.FilterState, error) {
	f := domain.FilterState{Category: c.QueryParam("category")}

	minPrice, hasMin, err := queryFloat(c, "min_price")
	if err != nil {
		return f, err
	}
	maxPrice, hasMax, err := queryFloat(c, "max_price")
	if err != nil {
		return f, err
	}
	if hasMin || hasMax {
		r := domain.Unbounded(minPrice)
		if hasMax {
			r.Max = maxPrice
		}
		f.PriceRange = &r
	}

	rating, _, err := queryFloat(c, "min_rating")
	if err != nil {
		return f, err
	}
	f.MinRating = rating
	return f, nil
}

func queryFloat(c echo.Context, name string) (float64, bool, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, echo.NewHTTPError(http.StatusBadRequest, name+" must be a number")
	}
	return v, true, nil
}

func queryInt(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be an integer")
	}
	return v, nil
}

func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	return id, nil
}
