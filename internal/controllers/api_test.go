package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pump-inventory/internal/dto"
	"pump-inventory/internal/entities"
	"pump-inventory/internal/repositories"
	"pump-inventory/internal/services"
	"pump-inventory/pkg/config"
	apperrors "pump-inventory/pkg/errors"
	"pump-inventory/pkg/middleware"
	"pump-inventory/pkg/utils"
)

const apiCookie = "session_token"

// memStore backs the pump and asset stubs with one shared map pair so the
// derived asset_count and the cascade delete behave like the real queries.
type memStore struct {
	pumps       map[uint64]*entities.Pump
	assets      map[uint64]*entities.Asset
	nextPumpID  uint64
	nextAssetID uint64
}

type memPumpRepo struct{ s *memStore }

func (r *memPumpRepo) GetPumps(ctx context.Context) ([]entities.Pump, error) {
	out := make([]entities.Pump, 0, len(r.s.pumps))
	for _, p := range r.s.pumps {
		cp := *p
		for _, a := range r.s.assets {
			if a.PumpID == cp.ID {
				cp.AssetCount++
			}
		}
		out = append(out, cp)
	}
	return out, nil
}

func (r *memPumpRepo) FindPump(ctx context.Context, id uint64) (*entities.Pump, error) {
	if p, ok := r.s.pumps[id]; ok {
		return p, nil
	}
	return nil, apperrors.ErrNotFound
}

func (r *memPumpRepo) CreatePump(ctx context.Context, payload dto.CreatePumpDTO) (*entities.Pump, error) {
	r.s.nextPumpID++
	p := &entities.Pump{ID: r.s.nextPumpID, Name: payload.Name, Location: payload.Location, Manager: payload.Manager}
	r.s.pumps[p.ID] = p
	return p, nil
}

func (r *memPumpRepo) UpdatePump(ctx context.Context, id uint64, payload dto.UpdatePumpDTO) error {
	p, ok := r.s.pumps[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	p.Name, p.Location, p.Manager = payload.Name, payload.Location, payload.Manager
	return nil
}

func (r *memPumpRepo) DeletePump(ctx context.Context, tx pgx.Tx, id uint64) error {
	if _, ok := r.s.pumps[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.s.pumps, id)
	return nil
}

type memAssetRepo struct{ s *memStore }

func (r *memAssetRepo) GetAssetsByPump(ctx context.Context, pumpID uint64) ([]entities.Asset, error) {
	out := make([]entities.Asset, 0)
	for _, a := range r.s.assets {
		if a.PumpID == pumpID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *memAssetRepo) CreateAsset(ctx context.Context, payload dto.CreateAssetDTO) (uint64, error) {
	if _, ok := r.s.pumps[payload.PumpID]; !ok {
		return 0, apperrors.NewBadRequestError("Unknown pump")
	}
	r.s.nextAssetID++
	r.s.assets[r.s.nextAssetID] = &entities.Asset{
		ID:           r.s.nextAssetID,
		PumpID:       payload.PumpID,
		SerialNumber: payload.SerialNumber,
		AssetName:    payload.AssetName,
		AssetNumber:  payload.AssetNumber,
		Barcode:      payload.Barcode,
		Quantity:     payload.Quantity,
		Units:        payload.Units,
		Remarks:      payload.Remarks,
	}
	return r.s.nextAssetID, nil
}

func (r *memAssetRepo) UpdateAsset(ctx context.Context, id uint64, payload dto.UpdateAssetDTO) error {
	a, ok := r.s.assets[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	a.SerialNumber = payload.SerialNumber
	a.AssetName = payload.AssetName
	a.AssetNumber = payload.AssetNumber
	a.Barcode = payload.Barcode
	a.Quantity = payload.Quantity
	a.Units = payload.Units
	a.Remarks = payload.Remarks
	return nil
}

func (r *memAssetRepo) DeleteAsset(ctx context.Context, id uint64) error {
	if _, ok := r.s.assets[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.s.assets, id)
	return nil
}

func (r *memAssetRepo) DeleteAssetsByPump(ctx context.Context, tx pgx.Tx, pumpID uint64) error {
	for id, a := range r.s.assets {
		if a.PumpID == pumpID {
			delete(r.s.assets, id)
		}
	}
	return nil
}

type memUserRepo struct{ users map[string]*entities.User }

func (r *memUserRepo) FindUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	if u, ok := r.users[username]; ok {
		return u, nil
	}
	return nil, apperrors.ErrNotFound
}

func (r *memUserRepo) FindUserByID(ctx context.Context, id uint64) (*entities.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

type passTxManager struct{}

func (passTxManager) RunInTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

// newAPIServer assembles the real controllers, services and middleware on top
// of in-memory stores, mirroring the production wiring in internal/routes.
func newAPIServer(t *testing.T) *echo.Echo {
	t.Helper()

	logger := zap.NewNop()
	hash, err := utils.HashPassword("password")
	require.NoError(t, err)

	store := &memStore{pumps: make(map[uint64]*entities.Pump), assets: make(map[uint64]*entities.Asset)}
	cache := repositories.NewMemoryCacheRepository()
	sessions := services.NewSessionService(repositories.NewSessionRepository(cache), time.Hour, logger)
	authService := services.NewAuthService(
		&memUserRepo{users: map[string]*entities.User{
			"admin": {ID: 1, Username: "admin", PasswordHash: hash},
		}},
		sessions, cache, logger,
		&config.AuthConfig{MaxLoginAttempts: 5, LockoutDuration: time.Minute},
	)
	pumpService := services.NewPumpService(&memPumpRepo{s: store}, &memAssetRepo{s: store}, passTxManager{}, logger)
	assetService := services.NewAssetService(&memAssetRepo{s: store}, logger)

	e := echo.New()
	e.Validator = utils.NewValidator(validator.New())

	api := e.Group("/api")
	authCtrl := NewAuthController(authService, sessions, apiCookie, logger)
	api.POST("/login", authCtrl.Login)
	api.POST("/logout", authCtrl.Logout)

	authMW := middleware.NewAuthMiddleware(sessions, apiCookie, logger)
	secure := api.Group("", authMW.Auth)

	pumpCtrl := NewPumpController(pumpService, logger)
	secure.GET("/pumps", pumpCtrl.GetPumps)
	secure.POST("/pumps", pumpCtrl.CreatePump)
	secure.PUT("/pumps/:id", pumpCtrl.UpdatePump)
	secure.DELETE("/pumps/:id", pumpCtrl.DeletePump)

	assetCtrl := NewAssetController(assetService, logger)
	secure.GET("/assets/pump/:pumpId", assetCtrl.GetAssetsByPump)
	secure.POST("/assets", assetCtrl.CreateAsset)
	secure.PUT("/assets/:id", assetCtrl.UpdateAsset)
	secure.DELETE("/assets/:id", assetCtrl.DeleteAsset)

	return e
}

func doJSON(e *echo.Echo, method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func loginAs(t *testing.T, e *echo.Echo, username, password string) *http.Cookie {
	t.Helper()

	rec := doJSON(e, http.MethodPost, "/api/login", `{"username":"`+username+`","password":"`+password+`"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"ok":true}`, rec.Body.String())

	for _, c := range rec.Result().Cookies() {
		if c.Name == apiCookie {
			require.NotEmpty(t, c.Value)
			require.True(t, c.HttpOnly)
			return c
		}
	}
	t.Fatal("login response carries no session cookie")
	return nil
}

func TestAPI_LoginWrongPassword(t *testing.T) {
	e := newAPIServer(t)

	rec := doJSON(e, http.MethodPost, "/api/login", `{"username":"admin","password":"nope"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid credentials"}`, rec.Body.String())
}

func TestAPI_LoginMissingCredentials(t *testing.T) {
	e := newAPIServer(t)

	rec := doJSON(e, http.MethodPost, "/api/login", `{"username":"admin"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Missing credentials"}`, rec.Body.String())
}

func TestAPI_PumpsRequireSession(t *testing.T) {
	e := newAPIServer(t)

	rec := doJSON(e, http.MethodGet, "/api/pumps", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Unauthorized"}`, rec.Body.String())
}

func TestAPI_PumpAndAssetLifecycle(t *testing.T) {
	e := newAPIServer(t)
	cookie := loginAs(t, e, "admin", "password")

	rec := doJSON(e, http.MethodPost, "/api/pumps",
		`{"name":"Station 4","location":"Rudaki Ave","manager":"Karimov"}`, cookie)
	require.Equal(t, http.StatusCreated, rec.Code)

	var pump entities.Pump
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pump))
	assert.Equal(t, "Station 4", pump.Name)
	assert.Equal(t, uint64(0), pump.AssetCount)

	rec = doJSON(e, http.MethodPost, "/api/assets",
		`{"pump_id":1,"serial_number":"SN-9","asset_name":"Dispenser","asset_number":"D-1","quantity":2,"units":"pcs"}`, cookie)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":1}`, rec.Body.String())

	rec = doJSON(e, http.MethodGet, "/api/pumps", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	var pumps []entities.Pump
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pumps))
	require.Len(t, pumps, 1)
	assert.Equal(t, uint64(1), pumps[0].AssetCount)

	rec = doJSON(e, http.MethodGet, "/api/assets/pump/1", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	var assets []entities.Asset
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &assets))
	require.Len(t, assets, 1)
	assert.Equal(t, "SN-9", assets[0].SerialNumber)

	rec = doJSON(e, http.MethodDelete, "/api/pumps/1", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())

	rec = doJSON(e, http.MethodGet, "/api/pumps", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	// Assets went down with the pump.
	rec = doJSON(e, http.MethodGet, "/api/assets/pump/1", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestAPI_CreateAssetUnknownPump(t *testing.T) {
	e := newAPIServer(t)
	cookie := loginAs(t, e, "admin", "password")

	rec := doJSON(e, http.MethodPost, "/api/assets",
		`{"pump_id":77,"serial_number":"SN","asset_name":"X","asset_number":"Y","quantity":1,"units":"pcs"}`, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Unknown pump"}`, rec.Body.String())
}

func TestAPI_CreateAssetZeroQuantity(t *testing.T) {
	e := newAPIServer(t)
	cookie := loginAs(t, e, "admin", "password")

	rec := doJSON(e, http.MethodPost, "/api/assets",
		`{"pump_id":1,"serial_number":"SN","asset_name":"X","asset_number":"Y","quantity":0,"units":"pcs"}`, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_UpdateUnknownPump(t *testing.T) {
	e := newAPIServer(t)
	cookie := loginAs(t, e, "admin", "password")

	rec := doJSON(e, http.MethodPut, "/api/pumps/42",
		`{"name":"X","location":"Y","manager":"Z"}`, cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Not found"}`, rec.Body.String())
}

func TestAPI_InvalidPumpID(t *testing.T) {
	e := newAPIServer(t)
	cookie := loginAs(t, e, "admin", "password")

	rec := doJSON(e, http.MethodDelete, "/api/pumps/abc", "", cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid id"}`, rec.Body.String())
}

func TestAPI_LogoutInvalidatesCookie(t *testing.T) {
	e := newAPIServer(t)
	cookie := loginAs(t, e, "admin", "password")

	rec := doJSON(e, http.MethodPost, "/api/logout", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"ok":true}`, rec.Body.String())

	rec = doJSON(e, http.MethodGet, "/api/pumps", "", cookie)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPI_LogoutWithoutSession(t *testing.T) {
	e := newAPIServer(t)

	rec := doJSON(e, http.MethodPost, "/api/logout", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}
