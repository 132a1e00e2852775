package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopverse/storefront/internal/core/ports"
)

// CartHandler exposes the session cart.
type CartHandler struct {
	catalog ports.CatalogService
}

func NewCartHandler(catalog ports.CatalogService) *CartHandler {
	return &CartHandler{catalog: catalog}
}

// Get handles GET /v1/cart.
//
// @Summary      Current cart
// @Tags         cart
// @Produce      json
// @Param        X-Session-ID  header    string  false  "Session id"
// @Success      200           {object}  cartResponse
// @Router       /v1/cart [get]
func (h *CartHandler) Get(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(sess.Cart().Items()))
}

// Add handles POST /v1/cart/items. The product is snapshotted from the
// catalog; stock is not checked.
//
// @Summary      Add a product to the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        X-Session-ID  header    string          false  "Session id"
// @Param        body          body      addItemRequest  true   "Product and quantity (defaults to 1)"
// @Success      200           {object}  cartResponse
// @Failure      404           {object}  errorResponse
// @Failure      422           {object}  errorResponse
// @Router       /v1/cart/items [post]
func (h *CartHandler) Add(c echo.Context) error {
	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	p, err := h.catalog.Get(ctx, req.ProductID)
	if err != nil {
		return err
	}
	sess.Cart().Add(ctx, *p, req.Quantity)
	return c.JSON(http.StatusOK, toCartResponse(sess.Cart().Items()))
}

// Update handles PATCH /v1/cart/items/:id. A quantity below one removes the
// line.
//
// @Summary      Change a line quantity
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        X-Session-ID  header    string             false  "Session id"
// @Param        id            path      int                true   "Product id"
// @Param        body          body      updateItemRequest  true   "New quantity"
// @Success      200           {object}  cartResponse
// @Router       /v1/cart/items/{id} [patch]
func (h *CartHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req updateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	sess.Cart().UpdateQuantity(c.Request().Context(), id, req.Quantity)
	return c.JSON(http.StatusOK, toCartResponse(sess.Cart().Items()))
}

// Remove handles DELETE /v1/cart/items/:id.
//
// @Summary      Remove a line
// @Tags         cart
// @Produce      json
// @Param        X-Session-ID  header    string  false  "Session id"
// @Param        id            path      int     true   "Product id"
// @Success      200           {object}  cartResponse
// @Router       /v1/cart/items/{id} [delete]
func (h *CartHandler) Remove(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	sess.Cart().Remove(c.Request().Context(), id)
	return c.JSON(http.StatusOK, toCartResponse(sess.Cart().Items()))
}

// Clear handles DELETE /v1/cart.
//
// @Summary      Empty the cart
// @Tags         cart
// @Param        X-Session-ID  header  string  false  "Session id"
// @Success      204
// @Router       /v1/cart [delete]
func (h *CartHandler) Clear(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	sess.Cart().Clear(c.Request().Context())
	return c.NoContent(http.StatusNoContent)
}
