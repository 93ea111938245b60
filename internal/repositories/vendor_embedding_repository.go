package repositories

import (
	"context"

	"festiva/internal/models/db_models"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type VendorEmbeddingRepository interface {
	Create(ctx context.Context, embedding *db_models.VendorEmbedding) error
	SearchByVector(ctx context.Context, vector pgvector.Vector, limit int) ([]db_models.VendorEmbedding, error)
}

type vendorEmbeddingRepository struct {
	db *gorm.DB
}

func NewVendorEmbeddingRepository(db *gorm.DB) VendorEmbeddingRepository {
	return &vendorEmbeddingRepository{
		db: db,
	}
}

func (v *vendorEmbeddingRepository) Create(ctx context.Context, embedding *db_models.VendorEmbedding) error {
	return v.db.WithContext(ctx).Create(embedding).Error
}

func (v *vendorEmbeddingRepository) SearchByVector(ctx context.Context, vector pgvector.Vector, limit int) ([]db_models.VendorEmbedding, error) {
	if limit <= 0 {
		limit = 10
	}

	var results []db_models.VendorEmbedding

	query := `
        SELECT *, (1 - (embedding <=> $1)) as similarity
        FROM vendor_embeddings
        WHERE (1 - (embedding <=> $1)) > 0.7
        ORDER BY embedding <=> $1
        LIMIT $2
    `

	err := v.db.WithContext(ctx).Raw(query, vector.String(), limit).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
