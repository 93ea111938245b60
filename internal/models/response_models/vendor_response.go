package response_models

import "festiva/internal/models/db_models"

type VendorRecommendationResponse struct {
	AIRecommendations string             `json:"aiRecommendations"`
	MatchingVendors   []db_models.Vendor `json:"matchingVendors"`
}
