package repositories

import (
	"context"
	"errors"

	"festiva/internal/infra"
	"festiva/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventRepository interface {
	Insert(ctx context.Context, event *db_models.Event) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Event, error)
	Save(ctx context.Context, event *db_models.Event) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	ListByCustomer(ctx context.Context, customerID *uuid.UUID) ([]db_models.Event, error)
	CreateWithLedger(ctx context.Context, event *db_models.Event) error
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{
		db: db,
	}
}

func (e *eventRepository) Insert(ctx context.Context, event *db_models.Event) error {
	return e.db.WithContext(ctx).Create(event).Error
}

func (e *eventRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Event, error) {
	var event db_models.Event
	err := e.db.WithContext(ctx).First(&event, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

func (e *eventRepository) Save(ctx context.Context, event *db_models.Event) error {
	return e.db.WithContext(ctx).Save(event).Error
}

func (e *eventRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := e.db.WithContext(ctx).Delete(&db_models.Event{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (e *eventRepository) ListByCustomer(ctx context.Context, customerID *uuid.UUID) ([]db_models.Event, error) {
	q := e.db.WithContext(ctx).Order("date DESC")
	if customerID != nil {
		q = q.Where("customer_id = ?", *customerID)
	}

	var events []db_models.Event
	if err := q.Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// CreateWithLedger is the strict-mode event creation: the insert, the
// customer's event-ref append, and the budget overwrite land in one
// transaction or not at all.
func (e *eventRepository) CreateWithLedger(ctx context.Context, event *db_models.Event) error {
	tx := infra.StartTransaction(e.db.WithContext(ctx))
	if tx.Error != nil {
		return tx.Error
	}

	var err error
	defer func() { infra.ReleaseTransaction(tx, err) }()

	if err = tx.Create(event).Error; err != nil {
		return err
	}

	if err = tx.Model(&db_models.Customer{}).
		Where("id = ?", event.CustomerID).
		Update("event_refs", gorm.Expr("array_append(coalesce(event_refs, '{}'), ?)", event.ID.String())).Error; err != nil {
		return err
	}

	if event.Budget != nil && *event.Budget != 0 {
		if err = tx.Model(&db_models.Customer{}).
			Where("id = ? AND total_budget <> 0", event.CustomerID).
			Update("remaining_budget", gorm.Expr("total_budget - ?", *event.Budget)).Error; err != nil {
			return err
		}
	}

	return nil
}
