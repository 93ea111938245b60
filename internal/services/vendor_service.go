package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"festiva/internal/models/db_models"
	"festiva/internal/models/request_models"
	"festiva/internal/models/response_models"
	"festiva/internal/repositories"
	"festiva/pkg/utils"

	"github.com/google/uuid"
)

type VendorServiceInterface interface {
	ListVendors(ctx context.Context, query request_models.VendorListQuery) ([]db_models.Vendor, error)
	GetVendor(ctx context.Context, id string) (*db_models.Vendor, error)
	CreateVendor(ctx context.Context, request request_models.CreateVendorRequest) (*db_models.Vendor, error)
	UpdateVendor(ctx context.Context, id string, request request_models.UpdateVendorRequest) (*db_models.Vendor, error)
	AddReview(ctx context.Context, id string, request request_models.AddReviewRequest) (*db_models.Vendor, error)
	GetRecommendations(ctx context.Context, query request_models.RecommendationQuery) (*response_models.VendorRecommendationResponse, error)
}

type VendorService struct {
	vendorRepo    repositories.VendorRepository
	embeddingRepo repositories.VendorEmbeddingRepository
	embedder      utils.EmbeddingClientInterface
	generator     utils.ContentGeneratorInterface
}

func NewVendorService(
	vendorRepo repositories.VendorRepository,
	embeddingRepo repositories.VendorEmbeddingRepository,
	embedder utils.EmbeddingClientInterface,
	generator utils.ContentGeneratorInterface,
) VendorServiceInterface {
	return &VendorService{
		vendorRepo:    vendorRepo,
		embeddingRepo: embeddingRepo,
		embedder:      embedder,
		generator:     generator,
	}
}

func (v *VendorService) ListVendors(ctx context.Context, query request_models.VendorListQuery) ([]db_models.Vendor, error) {
	vendors, err := v.vendorRepo.List(ctx, query)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return vendors, nil
}

func (v *VendorService) GetVendor(ctx context.Context, id string) (*db_models.Vendor, error) {
	vendorID, err := uuid.Parse(id)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	vendor, err := v.vendorRepo.FindByID(ctx, vendorID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if vendor == nil {
		return nil, utils.ErrVendorNotFound
	}
	return vendor, nil
}

func (v *VendorService) CreateVendor(ctx context.Context, request request_models.CreateVendorRequest) (*db_models.Vendor, error) {
	var otherData []byte
	if request.OtherData != nil {
		otherData, _ = json.Marshal(request.OtherData)
	}

	vendor := &db_models.Vendor{
		Name:     request.Name,
		Email:    request.Email,
		Phone:    request.Phone,
		Category: request.Category,
		Location: request.Location,
		PriceRange: db_models.PriceRange{
			Min: request.PriceMin,
			Max: request.PriceMax,
		},
		Availability: true,
		Reviews:      []db_models.Review{},
		Portfolio:    request.Portfolio,
		Services:     request.Services,
		OtherData:    otherData,
	}

	if err := v.vendorRepo.Insert(ctx, vendor); err != nil {
		return nil, utils.ErrDatabaseError
	}

	v.indexVendor(ctx, vendor)

	return vendor, nil
}

// indexVendor stores an embedding over the vendor's profile text so the
// recommendation search can find it. Best effort: a failed index never
// fails the create.
func (v *VendorService) indexVendor(ctx context.Context, vendor *db_models.Vendor) {
	content := fmt.Sprintf("%s. Category: %s. Location: %s. Services: %s",
		vendor.Name, vendor.Category, vendor.Location, strings.Join(vendor.Services, ", "))

	vector, err := v.embedder.Embed(ctx, content)
	if err != nil {
		log.Printf("Failed to embed vendor %s: %v", vendor.ID, err)
		return
	}

	embedding := &db_models.VendorEmbedding{
		VendorID:  vendor.ID,
		Content:   content,
		Embedding: vector,
	}
	if err := v.embeddingRepo.Create(ctx, embedding); err != nil {
		log.Printf("Failed to index vendor %s: %v", vendor.ID, err)
	}
}

func (v *VendorService) UpdateVendor(ctx context.Context, id string, request request_models.UpdateVendorRequest) (*db_models.Vendor, error) {
	vendor, err := v.GetVendor(ctx, id)
	if err != nil {
		return nil, err
	}

	if request.Name != nil {
		vendor.Name = *request.Name
	}
	if request.Phone != nil {
		vendor.Phone = *request.Phone
	}
	if request.Category != nil {
		vendor.Category = *request.Category
	}
	if request.Location != nil {
		vendor.Location = *request.Location
	}
	if request.PriceMin != nil {
		vendor.PriceRange.Min = *request.PriceMin
	}
	if request.PriceMax != nil {
		vendor.PriceRange.Max = *request.PriceMax
	}
	if request.Availability != nil {
		vendor.Availability = *request.Availability
	}
	if request.Services != nil {
		vendor.Services = request.Services
	}
	if request.Portfolio != nil {
		vendor.Portfolio = request.Portfolio
	}

	if err := v.vendorRepo.Save(ctx, vendor); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return vendor, nil
}

// AddReview appends the review and recomputes the vendor rating as the
// mean over all reviews, the new one included. Full recomputation, not a
// running average.
func (v *VendorService) AddReview(ctx context.Context, id string, request request_models.AddReviewRequest) (*db_models.Vendor, error) {
	vendor, err := v.GetVendor(ctx, id)
	if err != nil {
		return nil, err
	}

	vendor.Reviews = append(vendor.Reviews, db_models.Review{
		Rating:       request.Rating,
		Comment:      request.Comment,
		CustomerName: request.CustomerName,
		Date:         time.Now(),
	})

	var sum float64
	for _, review := range vendor.Reviews {
		sum += review.Rating
	}
	vendor.Ratings = sum / float64(len(vendor.Reviews))

	if err := v.vendorRepo.Save(ctx, vendor); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return vendor, nil
}

// GetRecommendations pairs Gemini-written advice with vendors found by
// embedding similarity over the query; when nothing is indexed yet it
// falls back to a plain catalog filter.
func (v *VendorService) GetRecommendations(ctx context.Context, query request_models.RecommendationQuery) (*response_models.VendorRecommendationResponse, error) {
	advice, err := v.generator.GenerateVendorRecommendations(ctx, query.Budget, query.Location, query.EventType, query.Preferences)
	if err != nil {
		log.Printf("Vendor recommendation generation failed: %v", err)
		advice = ""
	}

	matching := v.searchSimilar(ctx, query)
	if matching == nil {
		listQuery := request_models.VendorListQuery{Location: query.Location}
		if query.Budget > 0 {
			maxPrice := query.Budget
			listQuery.MaxPrice = &maxPrice
		}
		matching, err = v.vendorRepo.List(ctx, listQuery)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	return &response_models.VendorRecommendationResponse{
		AIRecommendations: advice,
		MatchingVendors:   matching,
	}, nil
}

func (v *VendorService) searchSimilar(ctx context.Context, query request_models.RecommendationQuery) []db_models.Vendor {
	text := fmt.Sprintf("%s event in %s. Budget %.2f. %s",
		query.EventType, query.Location, query.Budget, query.Preferences)

	vector, err := v.embedder.Embed(ctx, text)
	if err != nil {
		log.Printf("Failed to embed recommendation query: %v", err)
		return nil
	}

	embeddings, err := v.embeddingRepo.SearchByVector(ctx, vector, 10)
	if err != nil || len(embeddings) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(embeddings))
	for _, e := range embeddings {
		ids = append(ids, e.VendorID)
	}

	vendors, err := v.vendorRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil
	}
	return vendors
}
