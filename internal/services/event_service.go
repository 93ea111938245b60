package services

import (
	"context"
	"encoding/json"

	"festiva/internal/models/db_models"
	"festiva/internal/models/request_models"
	"festiva/internal/repositories"
	"festiva/pkg/utils"

	"github.com/google/uuid"
)

type EventServiceInterface interface {
	ListEvents(ctx context.Context, customerID string) ([]db_models.Event, error)
	GetEvent(ctx context.Context, id string) (*db_models.Event, error)
	CreateEvent(ctx context.Context, request request_models.CreateEventRequest) (*db_models.Event, error)
	UpdateEvent(ctx context.Context, id string, request request_models.UpdateEventRequest) (*db_models.Event, error)
	DeleteEvent(ctx context.Context, id string) error
	AddVendorToEvent(ctx context.Context, id string, vendorID string) (*db_models.Event, error)
	GenerateTimeline(ctx context.Context, id string, request request_models.TimelineRequest) (string, error)
}

type EventService struct {
	eventRepo    repositories.EventRepository
	customerRepo repositories.CustomerRepository
	generator    utils.ContentGeneratorInterface
	mode         LedgerMode
}

func NewEventService(
	eventRepo repositories.EventRepository,
	customerRepo repositories.CustomerRepository,
	generator utils.ContentGeneratorInterface,
	mode LedgerMode,
) EventServiceInterface {
	return &EventService{
		eventRepo:    eventRepo,
		customerRepo: customerRepo,
		generator:    generator,
		mode:         mode,
	}
}

func (e *EventService) ListEvents(ctx context.Context, customerID string) ([]db_models.Event, error) {
	var cid *uuid.UUID
	if customerID != "" {
		parsed, err := uuid.Parse(customerID)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		cid = &parsed
	}

	events, err := e.eventRepo.ListByCustomer(ctx, cid)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return events, nil
}

func (e *EventService) GetEvent(ctx context.Context, id string) (*db_models.Event, error) {
	eventID, err := uuid.Parse(id)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	event, err := e.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if event == nil {
		return nil, utils.ErrEventNotFound
	}
	return event, nil
}

// CreateEvent inserts the event, appends its reference to the owning
// customer, and, when a budget is given, overwrites the customer's
// remaining budget as totalBudget - budget. An overwrite, not a
// decrement: repeated event creation is not cumulative.
func (e *EventService) CreateEvent(ctx context.Context, request request_models.CreateEventRequest) (*db_models.Event, error) {
	customerID, err := uuid.Parse(request.CID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	var metadata []byte
	if request.Metadata != nil {
		metadata, _ = json.Marshal(request.Metadata)
	}

	vendorRefs := request.Vendors
	if vendorRefs == nil {
		vendorRefs = []string{}
	}

	event := &db_models.Event{
		Date:       request.Date,
		CustomerID: customerID,
		EventID:    utils.GenerateEventID(),
		EventName:  request.EventName,
		EventType:  request.EventType,
		Venue:      request.Venue,
		Budget:     request.Budget,
		Status:     db_models.EventStatusPlanning,
		VendorRefs: vendorRefs,
		Metadata:   metadata,
	}

	if e.mode == LedgerModeStrict {
		if err := e.eventRepo.CreateWithLedger(ctx, event); err != nil {
			return nil, utils.ErrDatabaseError
		}
		return event, nil
	}

	// Legacy mode: three independent writes, no transaction.
	if err := e.eventRepo.Insert(ctx, event); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if err := e.customerRepo.AppendEventRef(ctx, customerID, event.ID.String()); err != nil {
		return nil, utils.ErrDatabaseError
	}

	// A zero budget is treated as absent, like the unset case.
	if request.Budget != nil && *request.Budget != 0 {
		customer, err := e.customerRepo.FindByID(ctx, customerID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if customer == nil {
			return nil, utils.ErrCustomerNotFound
		}
		if customer.TotalBudget != 0 {
			customer.RemainingBudget = customer.TotalBudget - *request.Budget
			if err := e.customerRepo.Save(ctx, customer); err != nil {
				return nil, utils.ErrDatabaseError
			}
		}
	}

	return event, nil
}

func (e *EventService) UpdateEvent(ctx context.Context, id string, request request_models.UpdateEventRequest) (*db_models.Event, error) {
	event, err := e.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	if request.Date != nil {
		event.Date = *request.Date
	}
	if request.EventName != nil {
		event.EventName = *request.EventName
	}
	if request.EventType != nil {
		event.EventType = *request.EventType
	}
	if request.Venue != nil {
		event.Venue = *request.Venue
	}
	if request.Budget != nil {
		event.Budget = request.Budget
	}
	if request.Status != nil {
		event.Status = *request.Status
	}
	if request.Metadata != nil {
		metadata, _ := json.Marshal(request.Metadata)
		event.Metadata = metadata
	}

	if err := e.eventRepo.Save(ctx, event); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return event, nil
}

func (e *EventService) DeleteEvent(ctx context.Context, id string) error {
	eventID, err := uuid.Parse(id)
	if err != nil {
		return utils.ErrInvalidInput
	}

	found, err := e.eventRepo.Delete(ctx, eventID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !found {
		return utils.ErrEventNotFound
	}
	return nil
}

// AddVendorToEvent is idempotent: adding a vendor that is already on the
// event changes nothing.
func (e *EventService) AddVendorToEvent(ctx context.Context, id string, vendorID string) (*db_models.Event, error) {
	event, err := e.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	if !event.HasVendor(vendorID) {
		event.VendorRefs = append(event.VendorRefs, vendorID)
		if err := e.eventRepo.Save(ctx, event); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	return event, nil
}

func (e *EventService) GenerateTimeline(ctx context.Context, id string, request request_models.TimelineRequest) (string, error) {
	if _, err := e.GetEvent(ctx, id); err != nil {
		return "", err
	}

	timeline, err := e.generator.GenerateEventTimeline(ctx, request.EventType, request.EventDate, request.Venue)
	if err != nil {
		return "", err
	}
	return timeline, nil
}
