package repositories

import (
	"context"
	"errors"

	"festiva/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerRepository interface {
	Insert(ctx context.Context, customer *db_models.Customer) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Customer, error)
	Save(ctx context.Context, customer *db_models.Customer) error
	AppendEventRef(ctx context.Context, customerID uuid.UUID, eventID string) error
	AppendInvitationRef(ctx context.Context, customerID uuid.UUID, inviteID string) error
	AppendStorybookRef(ctx context.Context, customerID uuid.UUID, storybookID string) error
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{
		db: db,
	}
}

func (c *customerRepository) Insert(ctx context.Context, customer *db_models.Customer) error {
	return c.db.WithContext(ctx).Create(customer).Error
}

func (c *customerRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Customer, error) {
	var customer db_models.Customer
	err := c.db.WithContext(ctx).First(&customer, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

func (c *customerRepository) Save(ctx context.Context, customer *db_models.Customer) error {
	return c.db.WithContext(ctx).Save(customer).Error
}

func (c *customerRepository) appendRef(ctx context.Context, customerID uuid.UUID, column, value string) error {
	return c.db.WithContext(ctx).Model(&db_models.Customer{}).
		Where("id = ?", customerID).
		Update(column, gorm.Expr("array_append(coalesce("+column+", '{}'), ?)", value)).Error
}

func (c *customerRepository) AppendEventRef(ctx context.Context, customerID uuid.UUID, eventID string) error {
	return c.appendRef(ctx, customerID, "event_refs", eventID)
}

func (c *customerRepository) AppendInvitationRef(ctx context.Context, customerID uuid.UUID, inviteID string) error {
	return c.appendRef(ctx, customerID, "invitation_refs", inviteID)
}

func (c *customerRepository) AppendStorybookRef(ctx context.Context, customerID uuid.UUID, storybookID string) error {
	return c.appendRef(ctx, customerID, "storybook_refs", storybookID)
}
