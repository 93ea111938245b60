package repositories

import (
	"context"
	"errors"

	"festiva/internal/models/db_models"
	"festiva/internal/models/request_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VendorRepository interface {
	Insert(ctx context.Context, vendor *db_models.Vendor) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Vendor, error)
	Save(ctx context.Context, vendor *db_models.Vendor) error
	List(ctx context.Context, query request_models.VendorListQuery) ([]db_models.Vendor, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]db_models.Vendor, error)
}

type vendorRepository struct {
	db *gorm.DB
}

func NewVendorRepository(db *gorm.DB) VendorRepository {
	return &vendorRepository{
		db: db,
	}
}

func (v *vendorRepository) Insert(ctx context.Context, vendor *db_models.Vendor) error {
	return v.db.WithContext(ctx).Create(vendor).Error
}

func (v *vendorRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Vendor, error) {
	var vendor db_models.Vendor
	err := v.db.WithContext(ctx).First(&vendor, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vendor, nil
}

func (v *vendorRepository) Save(ctx context.Context, vendor *db_models.Vendor) error {
	return v.db.WithContext(ctx).Save(vendor).Error
}

// List applies the catalog filters. Only available vendors are returned.
func (v *vendorRepository) List(ctx context.Context, query request_models.VendorListQuery) ([]db_models.Vendor, error) {
	q := v.db.WithContext(ctx).Where("availability = ?", true)

	if query.Category != "" {
		q = q.Where("category = ?", query.Category)
	}
	if query.Location != "" {
		q = q.Where("location ILIKE ?", "%"+query.Location+"%")
	}
	if query.MinRating != nil {
		q = q.Where("ratings >= ?", *query.MinRating)
	}
	if query.MaxPrice != nil {
		q = q.Where("price_max <= ?", *query.MaxPrice)
	}
	if query.MinPrice != nil {
		q = q.Where("price_min >= ?", *query.MinPrice)
	}
	if query.Search != "" {
		pattern := "%" + query.Search + "%"
		q = q.Where("name ILIKE ? OR category ILIKE ? OR ? ILIKE ANY(services)", pattern, pattern, query.Search)
	}

	var vendors []db_models.Vendor
	if err := q.Find(&vendors).Error; err != nil {
		return nil, err
	}
	return vendors, nil
}

func (v *vendorRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]db_models.Vendor, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var vendors []db_models.Vendor
	if err := v.db.WithContext(ctx).Where("id IN ?", ids).Find(&vendors).Error; err != nil {
		return nil, err
	}
	return vendors, nil
}
