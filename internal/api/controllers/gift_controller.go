package controllers

import (
	"net/http"

	"festiva/internal/models/request_models"
	"festiva/internal/services"
	"festiva/pkg/utils"

	"github.com/gin-gonic/gin"
)

type GiftController struct {
	giftService services.GiftServiceInterface
}

func NewGiftController(giftService services.GiftServiceInterface) *GiftController {
	return &GiftController{
		giftService: giftService,
	}
}

// ListGifts godoc
// @Summary List catalog items with filters
// @Tags Gifts
// @Produce json
// @Param category query string false "Category"
// @Param search query string false "Name/description search"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /gifts [get]
func (g *GiftController) ListGifts(c *gin.Context) {
	var query request_models.GiftListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	gifts, err := g.giftService.ListGifts(c.Request.Context(), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gifts, "Gifts fetched successfully")
}

// GetGift godoc
// @Summary Get a catalog item by id
// @Tags Gifts
// @Produce json
// @Param id path string true "Gift id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /gifts/{id} [get]
func (g *GiftController) GetGift(c *gin.Context) {
	gift, err := g.giftService.GetGift(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gift, "Gift fetched successfully")
}

// CreateGift godoc
// @Summary Create a catalog item
// @Tags Gifts
// @Accept json
// @Produce json
// @Param request body request_models.CreateGiftRequest true "Gift payload"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /gifts [post]
func (g *GiftController) CreateGift(c *gin.Context) {
	var req request_models.CreateGiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	gift, err := g.giftService.CreateGift(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, gift, "Gift created successfully")
}

// UpdateGift godoc
// @Summary Update a catalog item
// @Tags Gifts
// @Accept json
// @Produce json
// @Param id path string true "Gift id"
// @Param request body request_models.UpdateGiftRequest true "Update payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /gifts/{id} [put]
func (g *GiftController) UpdateGift(c *gin.Context) {
	var req request_models.UpdateGiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	gift, err := g.giftService.UpdateGift(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gift, "Gift updated successfully")
}

// ListOrders godoc
// @Summary List gift orders
// @Tags Gifts
// @Produce json
// @Param cid query string false "Customer id filter"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /gifts/orders/list [get]
func (g *GiftController) ListOrders(c *gin.Context) {
	orders, err := g.giftService.ListOrders(c.Request.Context(), customerScope(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, orders, "Orders fetched successfully")
}

// CreateOrder godoc
// @Summary Order a gift
// @Description Creates the order and decrements stock and customer budget
// @Tags Gifts
// @Accept json
// @Produce json
// @Param request body request_models.CreateGiftOrderRequest true "Order payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /gifts/order [post]
func (g *GiftController) CreateOrder(c *gin.Context) {
	var req request_models.CreateGiftOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	order, err := g.giftService.CreateOrder(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, order, "Order created successfully")
}

// UpdateOrderStatus godoc
// @Summary Update an order's status
// @Tags Gifts
// @Accept json
// @Produce json
// @Param id path string true "Order id"
// @Param request body request_models.UpdateOrderStatusRequest true "Status payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /gifts/order/{id} [put]
func (g *GiftController) UpdateOrderStatus(c *gin.Context) {
	var req request_models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	order, err := g.giftService.UpdateOrderStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, order, "Order status updated")
}
