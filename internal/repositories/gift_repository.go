package repositories

import (
	"context"
	"errors"

	"festiva/internal/infra"
	"festiva/internal/models/db_models"
	"festiva/internal/models/request_models"
	"festiva/pkg/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GiftRepository interface {
	InsertGift(ctx context.Context, gift *db_models.GiftCategory) error
	FindGiftByID(ctx context.Context, id uuid.UUID) (*db_models.GiftCategory, error)
	SaveGift(ctx context.Context, gift *db_models.GiftCategory) error
	ListGifts(ctx context.Context, query request_models.GiftListQuery) ([]db_models.GiftCategory, error)
	DecrementQuantity(ctx context.Context, giftID uuid.UUID) (bool, error)
	InsertOrder(ctx context.Context, order *db_models.GiftOrder) error
	ListOrders(ctx context.Context, customerID *uuid.UUID) ([]db_models.GiftOrder, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status string) (*db_models.GiftOrder, error)
	PlaceOrderStrict(ctx context.Context, order *db_models.GiftOrder) error
}

type giftRepository struct {
	db *gorm.DB
}

func NewGiftRepository(db *gorm.DB) GiftRepository {
	return &giftRepository{
		db: db,
	}
}

func (g *giftRepository) InsertGift(ctx context.Context, gift *db_models.GiftCategory) error {
	return g.db.WithContext(ctx).Create(gift).Error
}

func (g *giftRepository) FindGiftByID(ctx context.Context, id uuid.UUID) (*db_models.GiftCategory, error) {
	var gift db_models.GiftCategory
	err := g.db.WithContext(ctx).First(&gift, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &gift, nil
}

func (g *giftRepository) SaveGift(ctx context.Context, gift *db_models.GiftCategory) error {
	return g.db.WithContext(ctx).Save(gift).Error
}

func (g *giftRepository) ListGifts(ctx context.Context, query request_models.GiftListQuery) ([]db_models.GiftCategory, error) {
	q := g.db.WithContext(ctx)

	if query.Category != "" {
		q = q.Where("category = ?", query.Category)
	}
	if query.Search != "" {
		pattern := "%" + query.Search + "%"
		q = q.Where("gift_name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if query.MinPrice != nil {
		q = q.Where("gift_price >= ?", *query.MinPrice)
	}
	if query.MaxPrice != nil {
		q = q.Where("gift_price <= ?", *query.MaxPrice)
	}

	var gifts []db_models.GiftCategory
	if err := q.Find(&gifts).Error; err != nil {
		return nil, err
	}
	return gifts, nil
}

// DecrementQuantity takes one unit of stock, guarded so the count can
// never go below zero. Returns false when the item was already sold out.
func (g *giftRepository) DecrementQuantity(ctx context.Context, giftID uuid.UUID) (bool, error) {
	result := g.db.WithContext(ctx).Model(&db_models.GiftCategory{}).
		Where("id = ? AND quantity_available > 0", giftID).
		Update("quantity_available", gorm.Expr("quantity_available - 1"))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (g *giftRepository) InsertOrder(ctx context.Context, order *db_models.GiftOrder) error {
	return g.db.WithContext(ctx).Create(order).Error
}

func (g *giftRepository) ListOrders(ctx context.Context, customerID *uuid.UUID) ([]db_models.GiftOrder, error) {
	q := g.db.WithContext(ctx).Order("created_at DESC")
	if customerID != nil {
		q = q.Where("customer_id = ?", *customerID)
	}

	var orders []db_models.GiftOrder
	if err := q.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (g *giftRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status string) (*db_models.GiftOrder, error) {
	var order db_models.GiftOrder
	err := g.db.WithContext(ctx).First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	order.Status = status
	if err := g.db.WithContext(ctx).Save(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// PlaceOrderStrict runs the whole ledger unit in one transaction: order
// insert, conditional stock decrement, and budget decrement. The
// conditional decrement re-checks stock inside the transaction, so two
// concurrent orders for the last unit cannot both succeed.
func (g *giftRepository) PlaceOrderStrict(ctx context.Context, order *db_models.GiftOrder) error {
	tx := infra.StartTransaction(g.db.WithContext(ctx))
	if tx.Error != nil {
		return tx.Error
	}

	var err error
	defer func() { infra.ReleaseTransaction(tx, err) }()

	if err = tx.Create(order).Error; err != nil {
		return err
	}

	result := tx.Model(&db_models.GiftCategory{}).
		Where("id = ? AND quantity_available > 0", order.GiftRef).
		Update("quantity_available", gorm.Expr("quantity_available - 1"))
	if result.Error != nil {
		err = result.Error
		return err
	}
	if result.RowsAffected == 0 {
		err = utils.ErrOutOfStock
		return err
	}

	if err = tx.Model(&db_models.Customer{}).
		Where("id = ? AND remaining_budget <> 0", order.CustomerID).
		Update("remaining_budget", gorm.Expr("remaining_budget - ?", order.PurchaseAmount)).Error; err != nil {
		return err
	}

	return nil
}
