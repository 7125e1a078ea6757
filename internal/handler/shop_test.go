package handler_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SergeyBogomolovv/boba-order-service/internal/entities"
	"github.com/SergeyBogomolovv/boba-order-service/internal/handler"
	"github.com/SergeyBogomolovv/boba-order-service/internal/repo"
	"github.com/SergeyBogomolovv/boba-order-service/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newShopRouter(t *testing.T, initial ...entities.Shop) chi.Router {
	t.Helper()
	logger := discardLogger()

	shops, err := repo.NewShopRepo(initial)
	require.NoError(t, err)
	svc := service.NewShopService(logger, shops, service.WithClock(tickingClock()))

	r := chi.NewRouter()
	handler.NewShopHandler(logger, svc).Init(r)
	return r
}

func listShops(t *testing.T, r http.Handler) []entities.Shop {
	t.Helper()

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/shops", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	raw, err := io.ReadAll(rr.Body)
	require.NoError(t, err)

	var shops []entities.Shop
	require.NoError(t, json.Unmarshal(raw, &shops))
	return shops
}

func TestShopHandler_CreateShop(t *testing.T) {
	testCases := []struct {
		name       string
		body       string
		wantStatus int
		wantFields []string
	}{
		{
			name:       "without menu",
			body:       `{"name":"Test Shop","position":[1.47,124.83]}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "with menu and number",
			body:       `{"name":"Test Shop","position":[1.47,124.83],"whatsappNumber":"+62811","menu":[{"id":"m1","name":"Taro","price":18000}]}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "empty menu item id",
			body:       `{"name":"Test Shop","position":[1.47,124.83],"menu":[{"id":"","name":"x","price":10}]}`,
			wantStatus: http.StatusBadRequest,
			wantFields: []string{"menu[0].id"},
		},
		{
			name:       "price is a string",
			body:       `{"name":"Test Shop","position":[1.47,124.83],"menu":[{"id":"m1","name":"x","price":"10"}]}`,
			wantStatus: http.StatusBadRequest,
			wantFields: []string{"menu.price"},
		},
		{
			name:       "menu is not a list",
			body:       `{"name":"Test Shop","position":[1.47,124.83],"menu":{"id":"m1"}}`,
			wantStatus: http.StatusBadRequest,
			wantFields: []string{"menu"},
		},
		{
			name:       "position with one value",
			body:       `{"name":"Test Shop","position":[1.47]}`,
			wantStatus: http.StatusBadRequest,
			wantFields: []string{"position"},
		},
		{
			name:       "position with text",
			body:       `{"name":"Test Shop","position":["north","east"]}`,
			wantStatus: http.StatusBadRequest,
			wantFields: []string{"position"},
		},
		{
			name:       "null latitude",
			body:       `{"name":"Test Shop","position":[null,124.8]}`,
			wantStatus: http.StatusBadRequest,
			wantFields: []string{"position[0]"},
		},
		{
			name:       "missing name",
			body:       `{"position":[1.47,124.83]}`,
			wantStatus: http.StatusBadRequest,
			wantFields: []string{"name"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := newShopRouter(t)

			status, body := do(t, r, http.MethodPost, "/api/shops", tc.body)
			assert.Equal(t, tc.wantStatus, status)

			if tc.wantStatus != http.StatusCreated {
				assert.Equal(t, "shop data is incomplete or invalid", body["message"])
				fields, _ := body["fields"].(map[string]any)
				for _, f := range tc.wantFields {
					assert.Contains(t, fields, f)
				}
				assert.Empty(t, listShops(t, r))
				return
			}

			shop := body["shop"].(map[string]any)
			assert.Equal(t, float64(1), shop["id"])
			assert.Equal(t, "Test Shop", shop["name"])
			assert.Equal(t, []any{1.47, 124.83}, shop["position"])
			assert.NotNil(t, shop["menu"])
			assert.Equal(t, shop["createdAt"], shop["lastUpdatedAt"])
		})
	}
}

func TestShopHandler_CreateDeleteCreate(t *testing.T) {
	r := newShopRouter(t)

	for _, name := range []string{"A", "B"} {
		status, _ := do(t, r, http.MethodPost, "/api/shops", `{"name":"`+name+`","position":[0,0]}`)
		require.Equal(t, http.StatusCreated, status)
	}

	status, body := do(t, r, http.MethodDelete, "/api/shops/1", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "A", body["shop"].(map[string]any)["name"])

	status, body = do(t, r, http.MethodPost, "/api/shops", `{"name":"C","position":[0,0]}`)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, float64(3), body["shop"].(map[string]any)["id"])

	shops := listShops(t, r)
	require.Len(t, shops, 2)
	assert.Equal(t, "B", shops[0].Name)
	assert.Equal(t, 2, shops[0].ID)
	assert.Equal(t, "C", shops[1].Name)
	assert.Equal(t, 3, shops[1].ID)
}

func TestShopHandler_ReplaceShop(t *testing.T) {
	number := "+62811"
	seeded := entities.Shop{
		ID:             1,
		Name:           "Original",
		Position:       entities.Position{1, 1},
		WhatsappNumber: &number,
		Menu:           []entities.MenuItem{{ID: "m1", Name: "Taro", Price: 18000}},
	}

	testCases := []struct {
		name       string
		target     string
		body       string
		wantStatus int
		check      func(t *testing.T, shop map[string]any)
	}{
		{
			name:       "omitted menu and number are kept",
			target:     "/api/shops/1",
			body:       `{"name":"Renamed","position":[2,3]}`,
			wantStatus: http.StatusOK,
			check: func(t *testing.T, shop map[string]any) {
				assert.Equal(t, "Renamed", shop["name"])
				assert.Equal(t, "+62811", shop["whatsappNumber"])
				assert.Len(t, shop["menu"], 1)
			},
		},
		{
			name:       "empty menu keeps the current one",
			target:     "/api/shops/1",
			body:       `{"name":"Renamed","position":[2,3],"menu":[]}`,
			wantStatus: http.StatusOK,
			check: func(t *testing.T, shop map[string]any) {
				assert.Len(t, shop["menu"], 1)
			},
		},
		{
			name:       "null number clears it",
			target:     "/api/shops/1",
			body:       `{"name":"Renamed","position":[2,3],"whatsappNumber":null}`,
			wantStatus: http.StatusOK,
			check: func(t *testing.T, shop map[string]any) {
				assert.Contains(t, shop, "whatsappNumber")
				assert.Nil(t, shop["whatsappNumber"])
			},
		},
		{
			name:       "new menu replaces the old one",
			target:     "/api/shops/1",
			body:       `{"name":"Renamed","position":[2,3],"menu":[{"id":"m2","name":"Matcha","price":22000},{"id":"m3","name":"Thai tea","price":15000}]}`,
			wantStatus: http.StatusOK,
			check: func(t *testing.T, shop map[string]any) {
				menu := shop["menu"].([]any)
				require.Len(t, menu, 2)
				assert.Equal(t, "m2", menu[0].(map[string]any)["id"])
			},
		},
		{
			name:       "unknown shop",
			target:     "/api/shops/99",
			body:       `{"name":"Renamed","position":[2,3]}`,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "non numeric id",
			target:     "/api/shops/abc",
			body:       `{"name":"Renamed","position":[2,3]}`,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "null coordinate on existing shop",
			target:     "/api/shops/1",
			body:       `{"name":"Renamed","position":[null,124.8]}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid body on existing shop",
			target:     "/api/shops/1",
			body:       `{"name":"","position":[2,3]}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := newShopRouter(t, seeded)

			status, body := do(t, r, http.MethodPut, tc.target, tc.body)
			require.Equal(t, tc.wantStatus, status)

			if tc.wantStatus != http.StatusOK {
				assert.Equal(t, "Original", listShops(t, r)[0].Name)
				return
			}

			shop := body["shop"].(map[string]any)
			assert.Equal(t, float64(1), shop["id"])
			assert.Equal(t, []any{float64(2), float64(3)}, shop["position"])
			tc.check(t, shop)
		})
	}
}

func TestShopHandler_DeleteShopNotFound(t *testing.T) {
	r := newShopRouter(t)

	status, body := do(t, r, http.MethodDelete, "/api/shops/7", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "shop not found: 7", body["message"])
}
