package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tiffinbox/internal/models/request_models"
	"tiffinbox/internal/services"
	"tiffinbox/pkg/utils"
)

type MealController struct {
	mealService services.MealService
}

func NewMealController(mealService services.MealService) *MealController {
	return &MealController{mealService: mealService}
}

// List godoc
// @Summary List meals, optionally filtered by category
// @Tags Meals
// @Produce json
// @Param category query string false "Category filter"
// @Param all query bool false "Include unavailable meals"
// @Success 200 {object} utils.APIResponse
// @Router /meals [get]
func (m *MealController) List(c *gin.Context) {
	onlyAvailable := c.Query("all") != "true"
	meals, err := m.mealService.List(c.Request.Context(), c.Query("category"), onlyAvailable)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, meals, "")
}

// Get godoc
// @Summary Get a single meal with its curry options
// @Tags Meals
// @Produce json
// @Param id path int true "Meal id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /meals/{id} [get]
func (m *MealController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	meal, err := m.mealService.Get(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, meal, "")
}

// Create godoc
// @Summary Create a meal
// @Tags Meals
// @Accept json
// @Produce json
// @Param request body request_models.MealRequest true "Meal payload"
// @Success 201 {object} utils.APIResponse
// @Router /meals [post]
func (m *MealController) Create(c *gin.Context) {
	var req request_models.MealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	meal, err := m.mealService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, meal, "Meal created")
}

// Update godoc
// @Summary Update a meal
// @Tags Meals
// @Accept json
// @Produce json
// @Param id path int true "Meal id"
// @Param request body request_models.MealRequest true "Meal payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /meals/{id} [put]
func (m *MealController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req request_models.MealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	meal, err := m.mealService.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, meal, "Meal updated")
}

// Delete godoc
// @Summary Delete a meal
// @Tags Meals
// @Produce json
// @Param id path int true "Meal id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /meals/{id} [delete]
func (m *MealController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := m.mealService.Delete(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Meal deleted")
}
