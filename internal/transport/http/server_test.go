package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sundar_marbles/internal/domain/models"
	"sundar_marbles/internal/repository"
	"sundar_marbles/internal/storage"
	"sundar_marbles/internal/transport/http/dto"
	"sundar_marbles/internal/transport/http/dto/request"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	return e
}

type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) SubmitMessage(ctx context.Context, req request.ContactMessageRequest) (models.ContactMessage, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(models.ContactMessage), args.Error(1)
}

func (m *MockContactService) ListMessages(ctx context.Context, statusFilter string, page, perPage int) ([]models.ContactMessage, int, error) {
	args := m.Called(ctx, statusFilter, page, perPage)
	return args.Get(0).([]models.ContactMessage), args.Int(1), args.Error(2)
}

func (m *MockContactService) MarkAsRead(ctx context.Context, id uuid.UUID) (models.ContactMessage, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.ContactMessage), args.Error(1)
}

func (m *MockContactService) MarkAsReplied(ctx context.Context, id uuid.UUID) (models.ContactMessage, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.ContactMessage), args.Error(1)
}

func (m *MockContactService) MarkAsClosed(ctx context.Context, id uuid.UUID) (models.ContactMessage, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.ContactMessage), args.Error(1)
}

func (m *MockContactService) UpdateModeration(ctx context.Context, id uuid.UUID, req request.ModerationUpdateRequest) (models.ContactMessage, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(models.ContactMessage), args.Error(1)
}

func (m *MockContactService) GenerateWhatsAppLink(ctx context.Context, id uuid.UUID) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockContactService) ListContactInfo(ctx context.Context) ([]models.ContactInfo, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.ContactInfo), args.Error(1)
}

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCatalogService) ListCategoriesWithCount(ctx context.Context) ([]models.CategoryCount, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.CategoryCount), args.Error(1)
}

func (m *MockCatalogService) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]models.Product, int, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.Product), args.Int(1), args.Error(2)
}

func (m *MockCatalogService) FeaturedProducts(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockCatalogService) GetProductBySlug(ctx context.Context, slug string) (models.Product, []models.ProductImage, error) {
	args := m.Called(ctx, slug)
	return args.Get(0).(models.Product), args.Get(1).([]models.ProductImage), args.Error(2)
}

func newRouterWith(contact ContactService, catalog CatalogService) *Routers {
	return NewRouter(
		slog.Default(),
		AdminCredentials{
			Username: "admin",
			Password: "secret",
			Secret:   "test-signing-key",
			TokenTTL: time.Hour,
		},
		contact,
		nil,
		catalog,
		nil,
		nil,
	)
}

func TestSubmitContactMessage(t *testing.T) {
	e := newTestEcho()
	mockContact := new(MockContactService)
	r := newRouterWith(mockContact, nil)

	saved := models.ContactMessage{
		ID:       uuid.New(),
		Name:     "Ali Khan",
		Email:    "ali@example.com",
		Subject:  "Countertop",
		Message:  "Need a quote.",
		Status:   models.StatusNew,
		Priority: models.PriorityMedium,
	}
	mockContact.On("SubmitMessage", mock.Anything, mock.AnythingOfType("request.ContactMessageRequest")).
		Return(saved, nil).Once()

	body := `{"name":"Ali Khan","email":"ali@example.com","subject":"Countertop","message":"Need a quote."}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact/message/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, r.SubmitContactMessage(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Status  string                `json:"status"`
		Message string                `json:"message"`
		Data    models.ContactMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "Your message has been sent successfully!", resp.Message)
	assert.Equal(t, saved.ID, resp.Data.ID)
	assert.Equal(t, models.StatusNew, resp.Data.Status)

	mockContact.AssertExpectations(t)
}

func TestSubmitContactMessage_ValidationError(t *testing.T) {
	e := newTestEcho()
	mockContact := new(MockContactService)
	r := newRouterWith(mockContact, nil)

	body := `{"name":"Ali Khan","subject":"Countertop","message":"no email here"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact/message/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, r.SubmitContactMessage(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockContact.AssertNotCalled(t, "SubmitMessage")
}

func TestGenerateWhatsAppLink(t *testing.T) {
	e := newTestEcho()
	mockContact := new(MockContactService)
	r := newRouterWith(mockContact, nil)

	id := uuid.New()
	link := "https://wa.me/923006641727?text=New%20Contact%20Message"
	mockContact.On("GenerateWhatsAppLink", mock.Anything, id).Return(link, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	require.NoError(t, r.GenerateWhatsAppLink(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Status  string            `json:"status"`
		Message string            `json:"message"`
		Data    map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "WhatsApp URL generated successfully", resp.Message)
	assert.Equal(t, link, resp.Data["whatsapp_url"])
}

func TestGenerateWhatsAppLink_NotFound(t *testing.T) {
	e := newTestEcho()
	mockContact := new(MockContactService)
	r := newRouterWith(mockContact, nil)

	id := uuid.New()
	mockContact.On("GenerateWhatsAppLink", mock.Anything, id).
		Return("", storage.ErrMessageNotFound).Once()

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	require.NoError(t, r.GenerateWhatsAppLink(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListContactMessages_Pagination(t *testing.T) {
	e := newTestEcho()
	mockContact := new(MockContactService)
	r := newRouterWith(mockContact, nil)

	messages := []models.ContactMessage{{ID: uuid.New(), Status: models.StatusNew}}
	mockContact.On("ListMessages", mock.Anything, "new", 2, 10).
		Return(messages, 15, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/?status=new&page=2&per_page=10", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, r.ListContactMessages(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data dto.ListResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 15, resp.Data.Total)
	assert.Equal(t, 2, resp.Data.Page)
}

func TestListContactMessages_DefaultPerPage(t *testing.T) {
	e := newTestEcho()
	mockContact := new(MockContactService)
	r := newRouterWith(mockContact, nil)

	// The handler passes raw query values through; the repository clamps
	// them. Return the page a clamped query would produce and check the
	// envelope reports those same effective values.
	page, perPage := repository.NormalizePage(0, 0)
	messages := make([]models.ContactMessage, perPage)
	for i := range messages {
		messages[i] = models.ContactMessage{ID: uuid.New(), Status: models.StatusNew}
	}
	mockContact.On("ListMessages", mock.Anything, "", 0, 0).
		Return(messages, 40, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, r.ListContactMessages(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data dto.ListResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, page, resp.Data.Page)
	assert.Equal(t, perPage, resp.Data.PerPage)
	assert.Equal(t, 4, resp.Data.TotalPages)
	assert.Len(t, resp.Data.Items, perPage)
}

func TestListContactMessages_OversizedPerPageClamped(t *testing.T) {
	e := newTestEcho()
	mockContact := new(MockContactService)
	r := newRouterWith(mockContact, nil)

	_, perPage := repository.NormalizePage(1, 500)
	mockContact.On("ListMessages", mock.Anything, "", 1, 500).
		Return(make([]models.ContactMessage, perPage), 30, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/?page=1&per_page=500", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, r.ListContactMessages(c))

	var resp struct {
		Data dto.ListResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, perPage, resp.Data.PerPage)
	assert.Equal(t, 3, resp.Data.TotalPages)
}

func TestListContactMessages_InvalidStatus(t *testing.T) {
	e := newTestEcho()
	mockContact := new(MockContactService)
	r := newRouterWith(mockContact, nil)

	mockContact.On("ListMessages", mock.Anything, "spam", 0, 0).
		Return([]models.ContactMessage(nil), 0,
			fmt.Errorf("contact_service.ListMessages: %w %q", storage.ErrInvalidStatusFilter, "spam")).Once()

	req := httptest.NewRequest(http.MethodGet, "/?status=spam", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, r.ListContactMessages(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetProductBySlug_NotFound(t *testing.T) {
	e := newTestEcho()
	mockCatalog := new(MockCatalogService)
	r := newRouterWith(nil, mockCatalog)

	mockCatalog.On("GetProductBySlug", mock.Anything, "missing").
		Return(models.Product{}, []models.ProductImage(nil), storage.ErrProductNotFound).Once()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("slug")
	c.SetParamValues("missing")

	require.NoError(t, r.GetProductBySlug(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminLogin(t *testing.T) {
	e := newTestEcho()
	r := newRouterWith(nil, nil)

	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{
			name:     "valid credentials",
			body:     `{"username":"admin","password":"secret"}`,
			wantCode: http.StatusOK,
		},
		{
			name:     "wrong password",
			body:     `{"username":"admin","password":"nope"}`,
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "missing fields",
			body:     `{"username":"admin"}`,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/admin/login/", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, r.AdminLogin(c))
			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantCode == http.StatusOK {
				var resp struct {
					Data map[string]string `json:"data"`
				}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.NotEmpty(t, resp.Data["access_token"])
			}
		})
	}
}

func TestProductFilterFromQuery(t *testing.T) {
	e := newTestEcho()
	categoryID := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/?category="+categoryID.String()+"&featured=true&search=white&page=3&per_page=24", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	filter, err := productFilterFromQuery(c)
	require.NoError(t, err)
	require.NotNil(t, filter.CategoryID)
	assert.Equal(t, categoryID, *filter.CategoryID)
	require.NotNil(t, filter.Featured)
	assert.True(t, *filter.Featured)
	assert.Equal(t, "white", filter.Search)
	assert.Equal(t, 3, filter.Page)
	assert.Equal(t, 24, filter.PerPage)
}

func TestGalleryFilterFromQuery_Tags(t *testing.T) {
	e := newTestEcho()

	req := httptest.NewRequest(http.MethodGet, "/?tags=stairs,%20white-marble,", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	filter, err := galleryFilterFromQuery(c)
	require.NoError(t, err)
	assert.Equal(t, []string{"stairs", "white-marble"}, filter.Tags)
}
