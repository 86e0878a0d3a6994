package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/land-broker/internal/audit"
	"github.com/BruksfildServices01/land-broker/internal/auth"
	"github.com/BruksfildServices01/land-broker/internal/db"
	"github.com/BruksfildServices01/land-broker/internal/httperr"
	"github.com/BruksfildServices01/land-broker/internal/infra/memory"
	"github.com/BruksfildServices01/land-broker/internal/logging"
	"github.com/BruksfildServices01/land-broker/internal/models"
	"github.com/BruksfildServices01/land-broker/internal/ratelimit"
)

type testAPI struct {
	t      *testing.T
	router *gin.Engine
	store  *memory.Store
	tokens *auth.TokenService
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.NewStore()
	_, err := db.Seed(context.Background(), store, store, db.SeedAdmin{
		Email:    "admin@dbvekariya.com",
		Password: "admin123",
		Name:     "Admin",
	})
	require.NoError(t, err)

	tokens := auth.NewTokenService("test-secret", auth.DefaultTokenTTL)
	dispatcher := audit.NewDispatcher(store, logging.Discard())
	t.Cleanup(func() { _ = dispatcher.Close(context.Background()) })

	r := gin.New()
	RegisterRoutes(r, Dependencies{
		Stores: Stores{
			Users:     store,
			Locations: store,
			Lands:     store,
			AuditLogs: store,
			Health:    store,
		},
		Tokens:  tokens,
		Limiter: ratelimit.Noop{},
		Audit:   dispatcher,
		Log:     logging.Discard(),
	})

	return &testAPI{t: t, router: r, store: store, tokens: tokens}
}

func (a *testAPI) do(method, path, token string, body any) *httptest.ResponseRecorder {
	a.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testAPI) login() string {
	a.t.Helper()

	w := a.do(http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "admin@dbvekariya.com",
		"password": "admin123",
	})
	require.Equal(a.t, http.StatusOK, w.Code, w.Body.String())

	var res struct {
		Token string         `json:"token"`
		User  map[string]any `json:"user"`
	}
	require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &res))
	require.NotEmpty(a.t, res.Token)
	return res.Token
}

// brokerToken mints a token for a second user that owns nothing.
func (a *testAPI) brokerToken() string {
	a.t.Helper()

	u, err := a.store.UpsertUser(context.Background(), &models.User{
		Email: "broker@example.com", PasswordHash: "x", Name: "Broker", Role: "broker",
	})
	require.NoError(a.t, err)

	tok, err := a.tokens.Issue(auth.Identity{UserID: u.ID, Email: u.Email, Role: auth.RoleBroker})
	require.NoError(a.t, err)
	return tok
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

type landJSON struct {
	ID           string  `json:"id"`
	UserID       string  `json:"userId"`
	FullName     string  `json:"fullName"`
	LandAreaUnit string  `json:"landAreaUnit"`
	Type         string  `json:"type"`
	PricePerArea float64 `json:"pricePerArea"`
	Location     struct {
		Name string `json:"name"`
	} `json:"location"`
	User *struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"user"`
}

type listJSON struct {
	Lands      []landJSON `json:"lands"`
	Pagination struct {
		Page  int   `json:"page"`
		Limit int   `json:"limit"`
		Total int64 `json:"total"`
		Pages int   `json:"pages"`
	} `json:"pagination"`
}

func landBody() gin.H {
	return gin.H{
		"fullName":     "Ramesh Patel",
		"mobileNo":     "9876543210",
		"locationName": "Gondal",
		"landArea":     100,
		"landAreaUnit": "sqft",
		"type":         "land",
		"totalPrice":   500000,
	}
}

func TestLoginThenEmptyList(t *testing.T) {
	api := newTestAPI(t)
	token := api.login()

	w := api.do(http.MethodGet, "/api/lands", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	got := decode[listJSON](t, w)
	assert.NotNil(t, got.Lands)
	assert.Empty(t, got.Lands)
	assert.Equal(t, 0, got.Pagination.Page)
	assert.Equal(t, 10, got.Pagination.Limit)
	assert.EqualValues(t, 0, got.Pagination.Total)
	assert.Equal(t, 0, got.Pagination.Pages)
}

func TestLogin_Errors(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodPost, "/api/auth/login", "", gin.H{"email": "admin@dbvekariya.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email and password are required", decode[httperr.HTTPError](t, w).Message)

	w = api.do(http.MethodPost, "/api/auth/login", "", gin.H{"email": "admin@dbvekariya.com", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid email or password", decode[httperr.HTTPError](t, w).Message)

	w = api.do(http.MethodPost, "/api/auth/login", "", gin.H{"email": "ghost@dbvekariya.com", "password": "admin123"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid email or password", decode[httperr.HTTPError](t, w).Message)
}

func TestLogin_ResponseHidesPassword(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "admin@dbvekariya.com", "password": "admin123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
	assert.NotContains(t, w.Body.String(), "$2a$")
}

func TestVerify(t *testing.T) {
	api := newTestAPI(t)
	token := api.login()

	w := api.do(http.MethodGet, "/api/auth/verify", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	got := decode[struct {
		Success bool          `json:"success"`
		User    auth.Identity `json:"user"`
		Message string        `json:"message"`
	}](t, w)
	assert.True(t, got.Success)
	assert.Equal(t, "admin@dbvekariya.com", got.User.Email)
	assert.Equal(t, auth.RoleAdmin, got.User.Role)
	assert.Equal(t, "Token is valid", got.Message)
}

func TestVerify_MalformedHeader(t *testing.T) {
	api := newTestAPI(t)

	for _, header := range []string{"", "Token abc", "Bearer", "Bearer ", "Bearer not.a.jwt"} {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		api.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestMe(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodGet, "/api/auth/me", api.login(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"email":"admin@dbvekariya.com"`)

	ghost, err := api.tokens.Issue(auth.Identity{UserID: uuid.NewString(), Email: "g@x.io", Role: auth.RoleBroker})
	require.NoError(t, err)
	w = api.do(http.MethodGet, "/api/auth/me", ghost, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateLand_DerivesPricePerArea(t *testing.T) {
	api := newTestAPI(t)
	token := api.login()

	body := landBody()
	body["pricePerArea"] = 1 // ignored

	w := api.do(http.MethodPost, "/api/lands", token, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	got := decode[landJSON](t, w)
	assert.Equal(t, 5000.0, got.PricePerArea)
	assert.Equal(t, "SQFT", got.LandAreaUnit)
	assert.Equal(t, "LAND", got.Type)
	assert.Equal(t, "Gondal", got.Location.Name)
	require.NotNil(t, got.User)
	assert.Equal(t, "admin@dbvekariya.com", got.User.Email)
	assert.Equal(t, "Admin", got.User.Name)
	assert.NotContains(t, w.Body.String(), "password")

	w = api.do(http.MethodGet, "/api/lands/"+got.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	fetched := decode[landJSON](t, w)
	assert.Equal(t, 5000.0, fetched.PricePerArea)
	require.NotNil(t, fetched.User)
	assert.Equal(t, got.User.ID, fetched.User.ID)

	w = api.do(http.MethodGet, "/api/lands", token, nil)
	listed := decode[listJSON](t, w)
	require.Len(t, listed.Lands, 1)
	require.NotNil(t, listed.Lands[0].User)
	assert.Equal(t, "admin@dbvekariya.com", listed.Lands[0].User.Email)
}

func TestCreateLand_Invalid(t *testing.T) {
	api := newTestAPI(t)
	token := api.login()

	body := landBody()
	delete(body, "fullName")
	w := api.do(http.MethodPost, "/api/lands", token, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "All fields are required", decode[httperr.HTTPError](t, w).Message)

	body = landBody()
	body["landArea"] = "lots"
	w = api.do(http.MethodPost, "/api/lands", token, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(http.MethodPost, "/api/lands", "", landBody())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestForeignRecordIsNotFound(t *testing.T) {
	api := newTestAPI(t)
	owner := api.login()
	other := api.brokerToken()

	w := api.do(http.MethodPost, "/api/lands", owner, landBody())
	require.Equal(t, http.StatusCreated, w.Code)
	id := decode[landJSON](t, w).ID

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		var body any
		if method == http.MethodPut {
			body = landBody()
		}
		w := api.do(method, "/api/lands/"+id, other, body)
		assert.Equal(t, http.StatusNotFound, w.Code, method)
		assert.Equal(t, "Land not found", decode[httperr.HTTPError](t, w).Message, method)
	}

	w = api.do(http.MethodGet, "/api/lands", other, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[listJSON](t, w).Lands)

	w = api.do(http.MethodGet, "/api/lands/"+id, owner, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateAndDeleteLand(t *testing.T) {
	api := newTestAPI(t)
	token := api.login()

	w := api.do(http.MethodPost, "/api/lands", token, landBody())
	require.Equal(t, http.StatusCreated, w.Code)
	id := decode[landJSON](t, w).ID

	body := landBody()
	body["landArea"] = 250
	body["locationName"] = "Rajkot"
	w = api.do(http.MethodPut, "/api/lands/"+id, token, body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	got := decode[landJSON](t, w)
	assert.Equal(t, 2000.0, got.PricePerArea)
	assert.Equal(t, "Rajkot", got.Location.Name)
	require.NotNil(t, got.User)
	assert.Equal(t, "admin@dbvekariya.com", got.User.Email)

	w = api.do(http.MethodDelete, "/api/lands/"+id, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Land deleted successfully"}`, w.Body.String())

	w = api.do(http.MethodGet, "/api/lands/"+id, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = api.do(http.MethodGet, "/api/lands/not-a-uuid", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListLands_FiltersAndPagination(t *testing.T) {
	api := newTestAPI(t)
	token := api.login()

	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/api/lands", token, landBody()).Code)
	}
	house := landBody()
	house["type"] = "house"
	house["locationName"] = "Rajkot"
	house["mobileNo"] = "7000000001"
	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/api/lands", token, house).Code)

	w := api.do(http.MethodGet, "/api/lands?page=1&limit=3", token, nil)
	got := decode[listJSON](t, w)
	assert.Len(t, got.Lands, 1)
	assert.EqualValues(t, 4, got.Pagination.Total)
	assert.Equal(t, 2, got.Pagination.Pages)

	w = api.do(http.MethodGet, "/api/lands?location=rajkot", token, nil)
	assert.EqualValues(t, 1, decode[listJSON](t, w).Pagination.Total)

	w = api.do(http.MethodGet, "/api/lands?type=HOUSE", token, nil)
	assert.EqualValues(t, 1, decode[listJSON](t, w).Pagination.Total)

	w = api.do(http.MethodGet, "/api/lands?search=70000", token, nil)
	assert.EqualValues(t, 1, decode[listJSON](t, w).Pagination.Total)

	w = api.do(http.MethodGet, "/api/lands?search=GONDAL", token, nil)
	assert.EqualValues(t, 3, decode[listJSON](t, w).Pagination.Total)
}

func TestHugePageReturnsEmptyPage(t *testing.T) {
	api := newTestAPI(t)
	token := api.login()

	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/api/lands", token, landBody()).Code)

	w := api.do(http.MethodGet, "/api/lands?page=1000000000000000000&limit=10", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[listJSON](t, w)
	assert.Empty(t, got.Lands)
	assert.EqualValues(t, 1, got.Pagination.Total)

	w = api.do(http.MethodGet, "/api/audit-logs?page=1000000000000000000&limit=10", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"logs":[]`)
}

func TestLocations(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodGet, "/api/locations", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	locs := decode[[]models.Location](t, w)
	require.Len(t, locs, 2)

	w = api.do(http.MethodPost, "/api/locations", "", gin.H{"name": "  Jetpur "})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Jetpur", decode[models.Location](t, w).Name)

	w = api.do(http.MethodPost, "/api/locations", "", gin.H{"name": "Jetpur"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Location with this name already exists", decode[httperr.HTTPError](t, w).Message)

	w = api.do(http.MethodPost, "/api/locations", "", gin.H{"name": " "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Location name is required", decode[httperr.HTTPError](t, w).Message)

	w = api.do(http.MethodGet, "/api/locations?search=jet", "", nil)
	locs = decode[[]models.Location](t, w)
	require.Len(t, locs, 1)
	assert.Equal(t, "Jetpur", locs[0].Name)
}

func TestAuditLogs_OwnEventsOnly(t *testing.T) {
	api := newTestAPI(t)
	token := api.login()

	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/api/lands", token, landBody()).Code)

	require.Eventually(t, func() bool {
		w := api.do(http.MethodGet, "/api/audit-logs?action=land_created", token, nil)
		var page struct {
			Total int64 `json:"total"`
		}
		return w.Code == http.StatusOK &&
			json.Unmarshal(w.Body.Bytes(), &page) == nil &&
			page.Total == 1
	}, time.Second, 10*time.Millisecond)

	w := api.do(http.MethodGet, "/api/audit-logs", api.brokerToken(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":0`)

	w = api.do(http.MethodGet, "/api/audit-logs", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHealth(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"healthy"`)

	api.store.Err = errors.New("connection refused")
	w = api.do(http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestStoreUnavailable(t *testing.T) {
	api := newTestAPI(t)
	token := api.login()
	api.store.Err = httperr.Wrap(httperr.CodeUnavailable, errors.New("dial tcp 10.0.0.1:5432"))

	w := api.do(http.MethodGet, "/api/lands", token, nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.1")
}
