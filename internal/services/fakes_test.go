package services

import (
	"context"

	"festiva/internal/models/db_models"
	"festiva/internal/models/request_models"
	"festiva/pkg/utils"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

// In-memory repository fakes. They mirror the storage-layer contract the
// gorm repositories provide: single-record writes are atomic, multi-record
// units are only atomic through the dedicated *Strict/*WithLedger methods.

type fakeUserRepo struct {
	users     map[uuid.UUID]*db_models.User
	insertErr error
	deleteErr error
	deleted   []uuid.UUID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*db_models.User)}
}

func (f *fakeUserRepo) Insert(_ context.Context, user *db_models.User) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*db_models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*db_models.User, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	user, ok := f.users[parsed]
	if !ok {
		return nil, nil
	}
	return user, nil
}

func (f *fakeUserRepo) LinkProfile(_ context.Context, userID, profileID uuid.UUID) error {
	if user, ok := f.users[userID]; ok {
		user.ProfileID = &profileID
	}
	return nil
}

func (f *fakeUserRepo) StoreRefreshToken(_ context.Context, userID uuid.UUID, token *string) error {
	if user, ok := f.users[userID]; ok {
		user.RefreshToken = token
	}
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, userID uuid.UUID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.users, userID)
	f.deleted = append(f.deleted, userID)
	return nil
}

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*db_models.Customer
	insertErr error
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[uuid.UUID]*db_models.Customer)}
}

func (f *fakeCustomerRepo) Insert(_ context.Context, customer *db_models.Customer) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	f.customers[customer.ID] = customer
	return nil
}

func (f *fakeCustomerRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.Customer, error) {
	customer, ok := f.customers[id]
	if !ok {
		return nil, nil
	}
	return customer, nil
}

func (f *fakeCustomerRepo) Save(_ context.Context, customer *db_models.Customer) error {
	f.customers[customer.ID] = customer
	return nil
}

func (f *fakeCustomerRepo) AppendEventRef(_ context.Context, customerID uuid.UUID, eventID string) error {
	if customer, ok := f.customers[customerID]; ok {
		customer.EventRefs = append(customer.EventRefs, eventID)
	}
	return nil
}

func (f *fakeCustomerRepo) AppendInvitationRef(_ context.Context, customerID uuid.UUID, inviteID string) error {
	if customer, ok := f.customers[customerID]; ok {
		customer.InvitationRefs = append(customer.InvitationRefs, inviteID)
	}
	return nil
}

func (f *fakeCustomerRepo) AppendStorybookRef(_ context.Context, customerID uuid.UUID, storybookID string) error {
	if customer, ok := f.customers[customerID]; ok {
		customer.StorybookRefs = append(customer.StorybookRefs, storybookID)
	}
	return nil
}

type fakeVendorRepo struct {
	vendors   map[uuid.UUID]*db_models.Vendor
	insertErr error
}

func newFakeVendorRepo() *fakeVendorRepo {
	return &fakeVendorRepo{vendors: make(map[uuid.UUID]*db_models.Vendor)}
}

func (f *fakeVendorRepo) Insert(_ context.Context, vendor *db_models.Vendor) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if vendor.ID == uuid.Nil {
		vendor.ID = uuid.New()
	}
	f.vendors[vendor.ID] = vendor
	return nil
}

func (f *fakeVendorRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.Vendor, error) {
	vendor, ok := f.vendors[id]
	if !ok {
		return nil, nil
	}
	return vendor, nil
}

func (f *fakeVendorRepo) Save(_ context.Context, vendor *db_models.Vendor) error {
	f.vendors[vendor.ID] = vendor
	return nil
}

func (f *fakeVendorRepo) List(_ context.Context, query request_models.VendorListQuery) ([]db_models.Vendor, error) {
	var out []db_models.Vendor
	for _, vendor := range f.vendors {
		if !vendor.Availability {
			continue
		}
		if query.Category != "" && vendor.Category != query.Category {
			continue
		}
		out = append(out, *vendor)
	}
	return out, nil
}

func (f *fakeVendorRepo) ListByIDs(_ context.Context, ids []uuid.UUID) ([]db_models.Vendor, error) {
	var out []db_models.Vendor
	for _, id := range ids {
		if vendor, ok := f.vendors[id]; ok {
			out = append(out, *vendor)
		}
	}
	return out, nil
}

type fakeAdminRepo struct {
	admins    map[uuid.UUID]*db_models.Admin
	insertErr error
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: make(map[uuid.UUID]*db_models.Admin)}
}

func (f *fakeAdminRepo) Insert(_ context.Context, admin *db_models.Admin) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if admin.ID == uuid.Nil {
		admin.ID = uuid.New()
	}
	f.admins[admin.ID] = admin
	return nil
}

type fakeEventRepo struct {
	events    map[uuid.UUID]*db_models.Event
	customers *fakeCustomerRepo
	insertErr error
}

func newFakeEventRepo(customers *fakeCustomerRepo) *fakeEventRepo {
	return &fakeEventRepo{events: make(map[uuid.UUID]*db_models.Event), customers: customers}
}

func (f *fakeEventRepo) Insert(_ context.Context, event *db_models.Event) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	f.events[event.ID] = event
	return nil
}

func (f *fakeEventRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.Event, error) {
	event, ok := f.events[id]
	if !ok {
		return nil, nil
	}
	return event, nil
}

func (f *fakeEventRepo) Save(_ context.Context, event *db_models.Event) error {
	f.events[event.ID] = event
	return nil
}

func (f *fakeEventRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := f.events[id]; !ok {
		return false, nil
	}
	delete(f.events, id)
	return true, nil
}

func (f *fakeEventRepo) ListByCustomer(_ context.Context, customerID *uuid.UUID) ([]db_models.Event, error) {
	var out []db_models.Event
	for _, event := range f.events {
		if customerID == nil || event.CustomerID == *customerID {
			out = append(out, *event)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) CreateWithLedger(ctx context.Context, event *db_models.Event) error {
	if err := f.Insert(ctx, event); err != nil {
		return err
	}
	customer := f.customers.customers[event.CustomerID]
	if customer != nil {
		customer.EventRefs = append(customer.EventRefs, event.ID.String())
		if event.Budget != nil && *event.Budget != 0 && customer.TotalBudget != 0 {
			customer.RemainingBudget = customer.TotalBudget - *event.Budget
		}
	}
	return nil
}

type fakeGiftRepo struct {
	gifts     map[uuid.UUID]*db_models.GiftCategory
	orders    map[uuid.UUID]*db_models.GiftOrder
	customers *fakeCustomerRepo
}

func newFakeGiftRepo(customers *fakeCustomerRepo) *fakeGiftRepo {
	return &fakeGiftRepo{
		gifts:     make(map[uuid.UUID]*db_models.GiftCategory),
		orders:    make(map[uuid.UUID]*db_models.GiftOrder),
		customers: customers,
	}
}

func (f *fakeGiftRepo) InsertGift(_ context.Context, gift *db_models.GiftCategory) error {
	if gift.ID == uuid.Nil {
		gift.ID = uuid.New()
	}
	f.gifts[gift.ID] = gift
	return nil
}

func (f *fakeGiftRepo) FindGiftByID(_ context.Context, id uuid.UUID) (*db_models.GiftCategory, error) {
	gift, ok := f.gifts[id]
	if !ok {
		return nil, nil
	}
	return gift, nil
}

func (f *fakeGiftRepo) SaveGift(_ context.Context, gift *db_models.GiftCategory) error {
	f.gifts[gift.ID] = gift
	return nil
}

func (f *fakeGiftRepo) ListGifts(_ context.Context, query request_models.GiftListQuery) ([]db_models.GiftCategory, error) {
	var out []db_models.GiftCategory
	for _, gift := range f.gifts {
		if query.Category != "" && gift.Category != query.Category {
			continue
		}
		out = append(out, *gift)
	}
	return out, nil
}

func (f *fakeGiftRepo) DecrementQuantity(_ context.Context, giftID uuid.UUID) (bool, error) {
	gift, ok := f.gifts[giftID]
	if !ok || gift.QuantityAvailable <= 0 {
		return false, nil
	}
	gift.QuantityAvailable--
	return true, nil
}

func (f *fakeGiftRepo) InsertOrder(_ context.Context, order *db_models.GiftOrder) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	f.orders[order.ID] = order
	return nil
}

func (f *fakeGiftRepo) ListOrders(_ context.Context, customerID *uuid.UUID) ([]db_models.GiftOrder, error) {
	var out []db_models.GiftOrder
	for _, order := range f.orders {
		if customerID == nil || order.CustomerID == *customerID {
			out = append(out, *order)
		}
	}
	return out, nil
}

func (f *fakeGiftRepo) UpdateOrderStatus(_ context.Context, id uuid.UUID, status string) (*db_models.GiftOrder, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	order.Status = status
	return order, nil
}

func (f *fakeGiftRepo) PlaceOrderStrict(ctx context.Context, order *db_models.GiftOrder) error {
	gift, ok := f.gifts[order.GiftRef]
	if !ok || gift.QuantityAvailable <= 0 {
		return utils.ErrOutOfStock
	}
	gift.QuantityAvailable--
	if err := f.InsertOrder(ctx, order); err != nil {
		return err
	}
	if customer, ok := f.customers.customers[order.CustomerID]; ok && customer.RemainingBudget != 0 {
		customer.RemainingBudget -= order.PurchaseAmount
	}
	return nil
}

type fakeMediaRepo struct {
	storybooks  []*db_models.Storybook
	invitations []*db_models.Invitation
	posts       []*db_models.SocialMediaPost
}

func (f *fakeMediaRepo) InsertStorybook(_ context.Context, storybook *db_models.Storybook) error {
	if storybook.ID == uuid.Nil {
		storybook.ID = uuid.New()
	}
	f.storybooks = append(f.storybooks, storybook)
	return nil
}

func (f *fakeMediaRepo) ListStorybooks(_ context.Context, customerID *uuid.UUID) ([]db_models.Storybook, error) {
	var out []db_models.Storybook
	for _, book := range f.storybooks {
		if customerID == nil || book.CustomerID == *customerID {
			out = append(out, *book)
		}
	}
	return out, nil
}

func (f *fakeMediaRepo) InsertInvitation(_ context.Context, invitation *db_models.Invitation) error {
	if invitation.ID == uuid.Nil {
		invitation.ID = uuid.New()
	}
	f.invitations = append(f.invitations, invitation)
	return nil
}

func (f *fakeMediaRepo) ListInvitations(_ context.Context, customerID *uuid.UUID) ([]db_models.Invitation, error) {
	var out []db_models.Invitation
	for _, invitation := range f.invitations {
		if customerID == nil || invitation.CustomerID == *customerID {
			out = append(out, *invitation)
		}
	}
	return out, nil
}

func (f *fakeMediaRepo) InsertPost(_ context.Context, post *db_models.SocialMediaPost) error {
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	f.posts = append(f.posts, post)
	return nil
}

func (f *fakeMediaRepo) ListPosts(_ context.Context, customerID *uuid.UUID) ([]db_models.SocialMediaPost, error) {
	var out []db_models.SocialMediaPost
	for _, post := range f.posts {
		if customerID == nil || post.CustomerID == *customerID {
			out = append(out, *post)
		}
	}
	return out, nil
}

type fakeEmbeddingRepo struct {
	embeddings []*db_models.VendorEmbedding
}

func (f *fakeEmbeddingRepo) Create(_ context.Context, embedding *db_models.VendorEmbedding) error {
	f.embeddings = append(f.embeddings, embedding)
	return nil
}

func (f *fakeEmbeddingRepo) SearchByVector(_ context.Context, _ pgvector.Vector, limit int) ([]db_models.VendorEmbedding, error) {
	var out []db_models.VendorEmbedding
	for i, e := range f.embeddings {
		if i == limit {
			break
		}
		out = append(out, *e)
	}
	return out, nil
}

type fakeEmbedder struct {
	err error
}

func (f *fakeEmbedder) Embed(_ context.Context, _ string) (pgvector.Vector, error) {
	if f.err != nil {
		return pgvector.Vector{}, f.err
	}
	return pgvector.NewVector(make([]float32, 4)), nil
}

type fakeGenerator struct {
	story    string
	timeline string
	social   utils.SocialContent
	advice   string
	err      error
}

func (f *fakeGenerator) GenerateStorybook(_ context.Context, _ utils.StorybookDetails, _ string) (string, error) {
	return f.story, f.err
}

func (f *fakeGenerator) GenerateEventTimeline(_ context.Context, _, _, _ string) (string, error) {
	return f.timeline, f.err
}

func (f *fakeGenerator) GenerateSocialMediaContent(_ context.Context, _, _, _ string) (utils.SocialContent, error) {
	return f.social, f.err
}

func (f *fakeGenerator) GenerateVendorRecommendations(_ context.Context, _ float64, _, _, _ string) (string, error) {
	return f.advice, f.err
}
