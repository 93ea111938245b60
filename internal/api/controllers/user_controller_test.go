package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"festiva/internal/models/db_models"
	"festiva/internal/models/request_models"
	"festiva/internal/services"
	"festiva/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Minimal in-memory repositories backing the real services, so the test
// exercises the full HTTP surface: binding, middleware, and the response
// envelope.

type memUserRepo struct {
	users map[uuid.UUID]*db_models.User
}

func (m *memUserRepo) Insert(_ context.Context, user *db_models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m.users[user.ID] = user
	return nil
}

func (m *memUserRepo) FindByEmail(_ context.Context, email string) (*db_models.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) FindByID(_ context.Context, id string) (*db_models.User, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	user, ok := m.users[parsed]
	if !ok {
		return nil, nil
	}
	return user, nil
}

func (m *memUserRepo) LinkProfile(_ context.Context, userID, profileID uuid.UUID) error {
	if user, ok := m.users[userID]; ok {
		user.ProfileID = &profileID
	}
	return nil
}

func (m *memUserRepo) StoreRefreshToken(_ context.Context, userID uuid.UUID, token *string) error {
	if user, ok := m.users[userID]; ok {
		user.RefreshToken = token
	}
	return nil
}

func (m *memUserRepo) Delete(_ context.Context, userID uuid.UUID) error {
	delete(m.users, userID)
	return nil
}

type memCustomerRepo struct {
	customers map[uuid.UUID]*db_models.Customer
}

func (m *memCustomerRepo) Insert(_ context.Context, customer *db_models.Customer) error {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	m.customers[customer.ID] = customer
	return nil
}

func (m *memCustomerRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.Customer, error) {
	customer, ok := m.customers[id]
	if !ok {
		return nil, nil
	}
	return customer, nil
}

func (m *memCustomerRepo) Save(_ context.Context, customer *db_models.Customer) error {
	m.customers[customer.ID] = customer
	return nil
}

func (m *memCustomerRepo) AppendEventRef(_ context.Context, _ uuid.UUID, _ string) error {
	return nil
}

func (m *memCustomerRepo) AppendInvitationRef(_ context.Context, _ uuid.UUID, _ string) error {
	return nil
}

func (m *memCustomerRepo) AppendStorybookRef(_ context.Context, _ uuid.UUID, _ string) error {
	return nil
}

type memVendorRepo struct{}

func (m *memVendorRepo) Insert(_ context.Context, vendor *db_models.Vendor) error {
	if vendor.ID == uuid.Nil {
		vendor.ID = uuid.New()
	}
	return nil
}

func (m *memVendorRepo) FindByID(_ context.Context, _ uuid.UUID) (*db_models.Vendor, error) {
	return nil, nil
}

func (m *memVendorRepo) Save(_ context.Context, _ *db_models.Vendor) error { return nil }

func (m *memVendorRepo) List(_ context.Context, _ request_models.VendorListQuery) ([]db_models.Vendor, error) {
	return nil, nil
}

func (m *memVendorRepo) ListByIDs(_ context.Context, _ []uuid.UUID) ([]db_models.Vendor, error) {
	return nil, nil
}

type memAdminRepo struct{}

func (m *memAdminRepo) Insert(_ context.Context, admin *db_models.Admin) error {
	if admin.ID == uuid.Nil {
		admin.ID = uuid.New()
	}
	return nil
}

func newAuthTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "ctl-access-secret")
	t.Setenv("JWT_REFRESH_SECRET", "ctl-refresh-secret")

	userRepo := &memUserRepo{users: make(map[uuid.UUID]*db_models.User)}
	customerRepo := &memCustomerRepo{customers: make(map[uuid.UUID]*db_models.Customer)}

	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo, customerRepo, &memVendorRepo{}, &memAdminRepo{}, authService)
	controller := NewUserController(userService, authService)

	r := gin.New()
	users := r.Group("/users")
	users.POST("/signup", controller.Signup)
	users.POST("/login", controller.Login)
	users.POST("/refresh", controller.Refresh)
	users.POST("/logout", controller.Logout)

	// Gated probe routes matching the production route setup.
	auth := middleware.JWTAuthMiddleware()
	r.GET("/probe", auth, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id")})
	})
	r.GET("/probe/admin", auth, middleware.RoleMiddleware(db_models.RoleAdmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func getWithToken(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type authEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
		User         struct {
			ID    string `json:"id"`
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
	} `json:"data"`
}

func decodeAuth(t *testing.T, w *httptest.ResponseRecorder) authEnvelope {
	t.Helper()

	var envelope authEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope
}

func TestSignupLoginFlow(t *testing.T) {
	r := newAuthTestRouter(t)

	w := postJSON(t, r, "/users/signup", request_models.SignupRequest{
		Name:     "Alice",
		Email:    "alice@x.com",
		Password: "Passw0rd",
		Role:     db_models.RoleCustomer,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	signup := decodeAuth(t, w)
	assert.Equal(t, "success", signup.Status)
	require.NotEmpty(t, signup.Data.AccessToken)
	assert.Equal(t, db_models.RoleCustomer, signup.Data.User.Role)

	// The issued access token opens authenticated routes.
	assert.Equal(t, http.StatusOK, getWithToken(r, "/probe", signup.Data.AccessToken).Code)

	// But not admin-gated ones.
	assert.Equal(t, http.StatusForbidden, getWithToken(r, "/probe/admin", signup.Data.AccessToken).Code)

	// Login again with the same credentials.
	w = postJSON(t, r, "/users/login", request_models.LoginRequest{
		Email:    "alice@x.com",
		Password: "Passw0rd",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decodeAuth(t, w).Data.AccessToken)
}

func TestSignupMissingFields(t *testing.T) {
	r := newAuthTestRouter(t)

	w := postJSON(t, r, "/users/signup", map[string]string{"email": "alice@x.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	r := newAuthTestRouter(t)

	postJSON(t, r, "/users/signup", request_models.SignupRequest{
		Name:     "Alice",
		Email:    "alice@x.com",
		Password: "Passw0rd",
		Role:     db_models.RoleCustomer,
	})

	w := postJSON(t, r, "/users/login", request_models.LoginRequest{
		Email:    "alice@x.com",
		Password: "wrong1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid credentials")
}

func TestLogoutInvalidatesRefreshToken(t *testing.T) {
	r := newAuthTestRouter(t)

	w := postJSON(t, r, "/users/signup", request_models.SignupRequest{
		Name:     "Alice",
		Email:    "alice@x.com",
		Password: "Passw0rd",
		Role:     db_models.RoleCustomer,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	signup := decodeAuth(t, w)

	w = postJSON(t, r, "/users/logout", request_models.LogoutRequest{UserID: signup.Data.User.ID})
	require.Equal(t, http.StatusOK, w.Code)

	// The refresh token from before the logout no longer rotates.
	w = postJSON(t, r, "/users/refresh", request_models.RefreshRequest{Token: signup.Data.RefreshToken})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRefreshWithoutToken(t *testing.T) {
	r := newAuthTestRouter(t)

	w := postJSON(t, r, "/users/refresh", map[string]string{})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "No token provided")
}
