package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tiffinbox/internal/models/request_models"
	"tiffinbox/internal/services"
	"tiffinbox/pkg/middleware"
	"tiffinbox/pkg/utils"
)

type SubscriptionController struct {
	subscriptionService services.SubscriptionService
}

func NewSubscriptionController(subscriptionService services.SubscriptionService) *SubscriptionController {
	return &SubscriptionController{subscriptionService: subscriptionService}
}

// Create godoc
// @Summary Subscribe to a meal plan
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param request body request_models.CreateSubscriptionRequest true "Subscription payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /subscriptions [post]
func (s *SubscriptionController) Create(c *gin.Context) {
	var req request_models.CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	sub, err := s.subscriptionService.Create(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, sub, "Subscription created")
}

// Get godoc
// @Summary Get a subscription with its derived status
// @Tags Subscriptions
// @Produce json
// @Param id path int true "Subscription id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /subscriptions/{id} [get]
func (s *SubscriptionController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	sub, err := s.subscriptionService.Get(c.Request.Context(), id, middleware.UserID(c), c.GetString("Role"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, sub, "")
}

// ListMine godoc
// @Summary List the user's subscriptions
// @Tags Subscriptions
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /subscriptions [get]
func (s *SubscriptionController) ListMine(c *gin.Context) {
	subs, err := s.subscriptionService.ListByUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, subs, "")
}

// ListAll godoc
// @Summary List all subscriptions
// @Tags Subscriptions
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /admin/subscriptions [get]
func (s *SubscriptionController) ListAll(c *gin.Context) {
	subs, err := s.subscriptionService.ListAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, subs, "")
}

// Modify godoc
// @Summary Reschedule the undelivered remainder of a plan
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param id path int true "Subscription id"
// @Param request body request_models.ModifySubscriptionRequest true "Reschedule payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /subscriptions/{id}/modify [post]
func (s *SubscriptionController) Modify(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req request_models.ModifySubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	sub, err := s.subscriptionService.Modify(c.Request.Context(), id, middleware.UserID(c), c.GetString("Role"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, sub, "Subscription rescheduled")
}

// Cancel godoc
// @Summary Cancel a subscription
// @Tags Subscriptions
// @Produce json
// @Param id path int true "Subscription id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /subscriptions/{id}/cancel [post]
func (s *SubscriptionController) Cancel(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := s.subscriptionService.Cancel(c.Request.Context(), id, middleware.UserID(c), c.GetString("Role")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Subscription cancelled")
}
