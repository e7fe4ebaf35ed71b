package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tiffinbox/internal/models/request_models"
	"tiffinbox/internal/services"
	"tiffinbox/pkg/middleware"
	"tiffinbox/pkg/utils"
)

type AddressController struct {
	addressService services.AddressService
}

func NewAddressController(addressService services.AddressService) *AddressController {
	return &AddressController{addressService: addressService}
}

// List godoc
// @Summary List the user's delivery addresses
// @Tags Addresses
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /addresses [get]
func (a *AddressController) List(c *gin.Context) {
	addrs, err := a.addressService.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, addrs, "")
}

// Create godoc
// @Summary Add a delivery address
// @Tags Addresses
// @Accept json
// @Produce json
// @Param request body request_models.AddressRequest true "Address payload"
// @Success 201 {object} utils.APIResponse
// @Router /addresses [post]
func (a *AddressController) Create(c *gin.Context) {
	var req request_models.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	addr, err := a.addressService.Create(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, addr, "Address added")
}

// Update godoc
// @Summary Update a delivery address
// @Tags Addresses
// @Accept json
// @Produce json
// @Param id path int true "Address id"
// @Param request body request_models.AddressRequest true "Address payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /addresses/{id} [patch]
func (a *AddressController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req request_models.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	addr, err := a.addressService.Update(c.Request.Context(), middleware.UserID(c), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, addr, "Address updated")
}

// Delete godoc
// @Summary Remove a delivery address
// @Tags Addresses
// @Produce json
// @Param id path int true "Address id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /addresses/{id} [delete]
func (a *AddressController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := a.addressService.Delete(c.Request.Context(), middleware.UserID(c), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Address removed")
}

// SetDefault godoc
// @Summary Mark an address as the default delivery address
// @Tags Addresses
// @Produce json
// @Param id path int true "Address id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /addresses/{id}/default [post]
func (a *AddressController) SetDefault(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := a.addressService.SetDefault(c.Request.Context(), middleware.UserID(c), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Default address updated")
}
