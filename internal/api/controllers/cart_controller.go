package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"tiffinbox/internal/models/request_models"
	"tiffinbox/internal/services"
	"tiffinbox/pkg/middleware"
	"tiffinbox/pkg/utils"
)

type CartController struct {
	cartService services.CartService
}

func NewCartController(cartService services.CartService) *CartController {
	return &CartController{cartService: cartService}
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid id parameter")
		return 0, false
	}
	return uint(id), true
}

// AddItem godoc
// @Summary Add a meal to the cart
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body request_models.AddCartItemRequest true "Cart item payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /cart [post]
func (ct *CartController) AddItem(c *gin.Context) {
	var req request_models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	item, err := ct.cartService.Add(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, item, "Item added to cart")
}

// UpdateItem godoc
// @Summary Update quantity or notes of a cart item
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path int true "Cart item id"
// @Param request body request_models.UpdateCartItemRequest true "Update payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /cart/{id} [patch]
func (ct *CartController) UpdateItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req request_models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	item, err := ct.cartService.Update(c.Request.Context(), middleware.UserID(c), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, item, "Cart item updated")
}

// RemoveItem godoc
// @Summary Remove an item from the cart
// @Tags Cart
// @Produce json
// @Param id path int true "Cart item id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /cart/{id} [delete]
func (ct *CartController) RemoveItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ct.cartService.Remove(c.Request.Context(), middleware.UserID(c), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Cart item removed")
}

// Clear godoc
// @Summary Empty the cart
// @Tags Cart
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /cart [delete]
func (ct *CartController) Clear(c *gin.Context) {
	if err := ct.cartService.Clear(c.Request.Context(), middleware.UserID(c)); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Cart cleared")
}

// Get godoc
// @Summary Get the cart with computed totals
// @Tags Cart
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /cart [get]
func (ct *CartController) Get(c *gin.Context) {
	cart, err := ct.cartService.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, cart, "")
}
