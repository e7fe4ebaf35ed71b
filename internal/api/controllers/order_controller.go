package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	dbm "tiffinbox/internal/models/db_models"
	"tiffinbox/internal/models/request_models"
	"tiffinbox/internal/services"
	"tiffinbox/pkg/middleware"
	"tiffinbox/pkg/utils"
)

type OrderController struct {
	orderService services.OrderService
}

func NewOrderController(orderService services.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

// Checkout godoc
// @Summary Place an order from the current cart
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body request_models.CreateOrderRequest true "Checkout payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /orders [post]
func (o *OrderController) Checkout(c *gin.Context) {
	var req request_models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	order, err := o.orderService.Checkout(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		middleware.RecordOrderOperation("checkout", false)
		utils.HandleServiceError(c, err)
		return
	}
	middleware.RecordOrderOperation("checkout", true)
	utils.RespondCreated(c, order, "Order placed")
}

// UpdateStatus godoc
// @Summary Advance an order along the status flow
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path int true "Order id"
// @Param request body request_models.AdvanceOrderRequest true "Status payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /orders/{id} [patch]
func (o *OrderController) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req request_models.AdvanceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	order, err := o.orderService.Advance(c.Request.Context(), id,
		dbm.OrderStatus(req.Status), middleware.UserID(c), c.GetString("Role"), req.Payment)
	if err != nil {
		middleware.RecordOrderOperation("status_update", false)
		utils.HandleServiceError(c, err)
		return
	}
	middleware.RecordOrderOperation("status_update", true)
	utils.RespondSuccess(c, order, "Order status updated")
}

// Get godoc
// @Summary Get a single order
// @Tags Orders
// @Produce json
// @Param id path int true "Order id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /orders/{id} [get]
func (o *OrderController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	order, err := o.orderService.Get(c.Request.Context(), id, middleware.UserID(c), c.GetString("Role"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, order, "")
}

// ListMine godoc
// @Summary List the user's orders
// @Tags Orders
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /orders [get]
func (o *OrderController) ListMine(c *gin.Context) {
	orders, err := o.orderService.ListByUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, orders, "")
}

// ListAll godoc
// @Summary List all orders
// @Tags Orders
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /admin/orders [get]
func (o *OrderController) ListAll(c *gin.Context) {
	orders, err := o.orderService.ListAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, orders, "")
}
