package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopverse/storefront/internal/core/ports"
)

// HeaderIdempotencyKey lets clients make checkout submissions safe to retry.
const HeaderIdempotencyKey = "Idempotency-Key"

// CheckoutHandler exposes checkout and the signed-in user's order history.
type CheckoutHandler struct {
	service ports.CheckoutService
}

func NewCheckoutHandler(service ports.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{service: service}
}

// Summary handles GET /v1/checkout/summary.
//
// @Summary      Price breakdown of the cart
// @Tags         checkout
// @Produce      json
// @Param        X-Session-ID  header    string  false  "Session id"
// @Success      200           {object}  summaryResponse
// @Router       /v1/checkout/summary [get]
func (h *CheckoutHandler) Summary(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSummaryResponse(h.service.Summary(sess.Cart().Items())))
}

// PlaceOrder handles POST /v1/checkout.
//
// @Summary      Place an order from the cart
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        X-Session-ID     header    string           false  "Session id"
// @Param        Idempotency-Key  header    string           false  "Idempotency key to prevent duplicate submissions"
// @Param        body             body      checkoutRequest  true   "Shipping details"
// @Success      201              {object}  domain.Order
// @Failure      409              {object}  errorResponse
// @Failure      422              {object}  errorResponse
// @Router       /v1/checkout [post]
func (h *CheckoutHandler) PlaceOrder(c echo.Context) error {
	var req checkoutRequest
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

	order, err := h.service.PlaceOrder(c.Request().Context(), sess, ports.PlaceOrderInput{
		Address:        toShippingAddress(req.ShippingAddress),
		IdempotencyKey: c.Request().Header.Get(HeaderIdempotencyKey),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, order)
}

// History handles GET /v1/account/orders.
//
// @Summary      Orders of the signed-in user
// @Tags         account
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Order
// @Failure      401  {object}  errorResponse
// @Router       /v1/account/orders [get]
func (h *CheckoutHandler) History(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}
	orders, err := h.service.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}
