package services

import (
	"context"
	"encoding/json"
	"errors"

	"festiva/internal/models/db_models"
	"festiva/internal/models/request_models"
	"festiva/internal/repositories"
	"festiva/pkg/utils"

	"github.com/google/uuid"
)

type GiftServiceInterface interface {
	ListGifts(ctx context.Context, query request_models.GiftListQuery) ([]db_models.GiftCategory, error)
	GetGift(ctx context.Context, id string) (*db_models.GiftCategory, error)
	CreateGift(ctx context.Context, request request_models.CreateGiftRequest) (*db_models.GiftCategory, error)
	UpdateGift(ctx context.Context, id string, request request_models.UpdateGiftRequest) (*db_models.GiftCategory, error)
	ListOrders(ctx context.Context, customerID string) ([]db_models.GiftOrder, error)
	CreateOrder(ctx context.Context, request request_models.CreateGiftOrderRequest) (*db_models.GiftOrder, error)
	UpdateOrderStatus(ctx context.Context, id string, status string) (*db_models.GiftOrder, error)
}

type GiftService struct {
	giftRepo     repositories.GiftRepository
	customerRepo repositories.CustomerRepository
	mode         LedgerMode
}

func NewGiftService(
	giftRepo repositories.GiftRepository,
	customerRepo repositories.CustomerRepository,
	mode LedgerMode,
) GiftServiceInterface {
	return &GiftService{
		giftRepo:     giftRepo,
		customerRepo: customerRepo,
		mode:         mode,
	}
}

func (g *GiftService) ListGifts(ctx context.Context, query request_models.GiftListQuery) ([]db_models.GiftCategory, error) {
	gifts, err := g.giftRepo.ListGifts(ctx, query)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return gifts, nil
}

func (g *GiftService) GetGift(ctx context.Context, id string) (*db_models.GiftCategory, error) {
	giftID, err := uuid.Parse(id)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	gift, err := g.giftRepo.FindGiftByID(ctx, giftID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if gift == nil {
		return nil, utils.ErrGiftNotFound
	}
	return gift, nil
}

func (g *GiftService) CreateGift(ctx context.Context, request request_models.CreateGiftRequest) (*db_models.GiftCategory, error) {
	gift := &db_models.GiftCategory{
		GiftID:            request.GiftID,
		GiftName:          request.GiftName,
		ImageURL:          request.ImageURL,
		GiftPrice:         request.GiftPrice,
		QuantityAvailable: request.QuantityAvailable,
		Category:          request.Category,
		Description:       request.Description,
		Customizable:      request.Customizable,
	}

	if err := g.giftRepo.InsertGift(ctx, gift); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return gift, nil
}

func (g *GiftService) UpdateGift(ctx context.Context, id string, request request_models.UpdateGiftRequest) (*db_models.GiftCategory, error) {
	gift, err := g.GetGift(ctx, id)
	if err != nil {
		return nil, err
	}

	if request.GiftName != nil {
		gift.GiftName = *request.GiftName
	}
	if request.ImageURL != nil {
		gift.ImageURL = *request.ImageURL
	}
	if request.GiftPrice != nil {
		gift.GiftPrice = *request.GiftPrice
	}
	if request.QuantityAvailable != nil {
		gift.QuantityAvailable = *request.QuantityAvailable
	}
	if request.Category != nil {
		gift.Category = *request.Category
	}
	if request.Description != nil {
		gift.Description = *request.Description
	}
	if request.Customizable != nil {
		gift.Customizable = *request.Customizable
	}

	if err := g.giftRepo.SaveGift(ctx, gift); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return gift, nil
}

func (g *GiftService) ListOrders(ctx context.Context, customerID string) ([]db_models.GiftOrder, error) {
	var cid *uuid.UUID
	if customerID != "" {
		parsed, err := uuid.Parse(customerID)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		cid = &parsed
	}

	orders, err := g.giftRepo.ListOrders(ctx, cid)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return orders, nil
}

// CreateOrder is a ledger operation: the order insert, the stock
// decrement, and the customer budget decrement belong together. Strict
// mode applies them in one transaction; legacy mode issues them as
// sequential writes, in which case two concurrent orders can both pass
// the stock check for the last unit.
func (g *GiftService) CreateOrder(ctx context.Context, request request_models.CreateGiftOrderRequest) (*db_models.GiftOrder, error) {
	giftID, err := uuid.Parse(request.GiftID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	customerID, err := uuid.Parse(request.CID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	gift, err := g.giftRepo.FindGiftByID(ctx, giftID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if gift == nil {
		return nil, utils.ErrGiftNotFound
	}
	if gift.QuantityAvailable == 0 {
		return nil, utils.ErrOutOfStock
	}

	amount := gift.GiftPrice
	if request.PurchaseAmount != nil {
		amount = *request.PurchaseAmount
	}

	var customization []byte
	if request.Customization != nil {
		customization, _ = json.Marshal(request.Customization)
	}

	order := &db_models.GiftOrder{
		OrderID:        utils.GenerateOrderID(),
		GiftRef:        giftID,
		CustomerID:     customerID,
		Address:        request.Address,
		InvoiceID:      utils.GenerateInvoiceID(),
		PurchaseAmount: amount,
		Status:         db_models.OrderStatusPending,
		Customization:  customization,
	}

	if g.mode == LedgerModeStrict {
		if err := g.giftRepo.PlaceOrderStrict(ctx, order); err != nil {
			if errors.Is(err, utils.ErrOutOfStock) {
				return nil, utils.ErrOutOfStock
			}
			return nil, utils.ErrDatabaseError
		}
		return order, nil
	}

	// Legacy mode: sequential independent writes.
	if err := g.giftRepo.InsertOrder(ctx, order); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if _, err := g.giftRepo.DecrementQuantity(ctx, giftID); err != nil {
		return nil, utils.ErrDatabaseError
	}

	customer, err := g.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if customer != nil && customer.RemainingBudget != 0 {
		customer.RemainingBudget -= amount
		if err := g.customerRepo.Save(ctx, customer); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	return order, nil
}

func (g *GiftService) UpdateOrderStatus(ctx context.Context, id string, status string) (*db_models.GiftOrder, error) {
	orderID, err := uuid.Parse(id)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	order, err := g.giftRepo.UpdateOrderStatus(ctx, orderID, status)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if order == nil {
		return nil, utils.ErrOrderNotFound
	}
	return order, nil
}
