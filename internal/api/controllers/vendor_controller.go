package controllers

import (
	"net/http"

	"festiva/internal/models/request_models"
	"festiva/internal/services"
	"festiva/pkg/utils"

	"github.com/gin-gonic/gin"
)

type VendorController struct {
	vendorService services.VendorServiceInterface
}

func NewVendorController(vendorService services.VendorServiceInterface) *VendorController {
	return &VendorController{
		vendorService: vendorService,
	}
}

// ListVendors godoc
// @Summary List available vendors with filters
// @Tags Vendors
// @Produce json
// @Param category query string false "Category"
// @Param location query string false "Location"
// @Param minRating query number false "Minimum rating"
// @Param search query string false "Search"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /vendors [get]
func (v *VendorController) ListVendors(c *gin.Context) {
	var query request_models.VendorListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	vendors, err := v.vendorService.ListVendors(c.Request.Context(), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, vendors, "Vendors fetched successfully")
}

// GetVendor godoc
// @Summary Get a vendor by id
// @Tags Vendors
// @Produce json
// @Param id path string true "Vendor id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /vendors/{id} [get]
func (v *VendorController) GetVendor(c *gin.Context) {
	vendor, err := v.vendorService.GetVendor(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, vendor, "Vendor fetched successfully")
}

// CreateVendor godoc
// @Summary Create a vendor
// @Tags Vendors
// @Accept json
// @Produce json
// @Param request body request_models.CreateVendorRequest true "Vendor payload"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /vendors [post]
func (v *VendorController) CreateVendor(c *gin.Context) {
	var req request_models.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	vendor, err := v.vendorService.CreateVendor(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, vendor, "Vendor created successfully")
}

// UpdateVendor godoc
// @Summary Update a vendor
// @Tags Vendors
// @Accept json
// @Produce json
// @Param id path string true "Vendor id"
// @Param request body request_models.UpdateVendorRequest true "Update payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /vendors/{id} [put]
func (v *VendorController) UpdateVendor(c *gin.Context) {
	var req request_models.UpdateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	vendor, err := v.vendorService.UpdateVendor(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, vendor, "Vendor updated successfully")
}

// AddReview godoc
// @Summary Add a review to a vendor
// @Description Appends the review and recomputes the average rating
// @Tags Vendors
// @Accept json
// @Produce json
// @Param id path string true "Vendor id"
// @Param request body request_models.AddReviewRequest true "Review payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /vendors/{id}/reviews [post]
func (v *VendorController) AddReview(c *gin.Context) {
	var req request_models.AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	vendor, err := v.vendorService.AddReview(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, vendor, "Review added successfully")
}

// GetRecommendations godoc
// @Summary Get AI vendor recommendations
// @Tags Vendors
// @Produce json
// @Param budget query number false "Budget"
// @Param location query string false "Location"
// @Param eventType query string false "Event type"
// @Param preferences query string false "Preferences"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /vendors/recommendations [get]
func (v *VendorController) GetRecommendations(c *gin.Context) {
	var query request_models.RecommendationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	recommendations, err := v.vendorService.GetRecommendations(c.Request.Context(), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, recommendations, "Recommendations fetched successfully")
}
