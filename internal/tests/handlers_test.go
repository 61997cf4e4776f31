package tests

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpapi "soulfood/internal/api/http"
	"soulfood/internal/domain"
	"soulfood/internal/mocks"
	"soulfood/internal/service"
)

type handlerMocks struct {
	catalog *mocks.CatalogServiceInterface
	carts   *mocks.CartServiceInterface
	orders  *mocks.OrderServiceInterface
	stats   *mocks.StatsServiceInterface
}

func setupTestRouter(t *testing.T) (*mux.Router, handlerMocks) {
	m := handlerMocks{
		catalog: mocks.NewCatalogServiceInterface(t),
		carts:   mocks.NewCartServiceInterface(t),
		orders:  mocks.NewOrderServiceInterface(t),
		stats:   mocks.NewStatsServiceInterface(t),
	}
	handler := httpapi.NewHandler(m.catalog, m.carts, m.orders, m.stats)
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r, m
}

func doRequest(router *mux.Router, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_getFeeComparison(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := doRequest(router, "GET", "/api/fees/comparison?subtotal=20.00", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"savings_percent":15`)
	assert.Contains(t, rec.Body.String(), `"reference_total":"23.4"`)
}

func TestHandler_getFeeComparison_InvalidSubtotal(t *testing.T) {
	router, _ := setupTestRouter(t)

	assert.Equal(t, http.StatusBadRequest, doRequest(router, "GET", "/api/fees/comparison?subtotal=abc", "").Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(router, "GET", "/api/fees/comparison?subtotal=-5", "").Code)
}

func TestHandler_getRestaurants(t *testing.T) {
	router, m := setupTestRouter(t)

	m.catalog.On("ListRestaurants").
		Return([]domain.Restaurant{{ID: 1, Name: "Resto", DeliveryTime: "25-35 min"}}, nil).Once()

	rec := doRequest(router, "GET", "/api/restaurants", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Resto"`)
	assert.Contains(t, rec.Body.String(), `"delivery_time":"25-35 min"`)
}

func TestHandler_addCartItem_Conflict(t *testing.T) {
	router, m := setupTestRouter(t)

	m.carts.On("AddItem", mock.Anything, "u1", 2, 20).
		Return(nil, service.ErrRestaurantConflict).Once()

	rec := doRequest(router, "POST", "/api/cart/u1/items", `{"restaurant_id":2,"menu_item_id":20}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), `"confirmation_required":true`)
}

func TestHandler_addCartItem(t *testing.T) {
	router, m := setupTestRouter(t)

	m.carts.On("AddItem", mock.Anything, "u1", 1, 10).
		Return(twoItemCart(), nil).Once()

	rec := doRequest(router, "POST", "/api/cart/u1/items", `{"restaurant_id":1,"menu_item_id":10}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"subtotal":"25.5"`)
	assert.Contains(t, rec.Body.String(), `"comparison"`)
}

func TestHandler_resetCart(t *testing.T) {
	router, m := setupTestRouter(t)

	m.carts.On("ConfirmReset", mock.Anything, "u1", 2, 20).
		Return(cartFixture(2), nil).Once()

	rec := doRequest(router, "POST", "/api/cart/u1/reset", `{"restaurant_id":2,"menu_item_id":20}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"restaurant_id":2`)
}

func TestHandler_placeOrder(t *testing.T) {
	router, m := setupTestRouter(t)

	userID := uuid.New()
	cart := twoItemCart()
	m.carts.On("Get", mock.Anything, userID.String()).Return(cart, nil).Once()
	m.orders.On("Place", mock.Anything, userID, cart).
		Return(&domain.Order{ID: 42, Status: domain.OrderStatusPending, Total: dec("28.49")}, nil).Once()
	m.carts.On("Clear", mock.Anything, userID.String()).Return(nil).Once()

	rec := doRequest(router, "POST", "/api/orders", `{"user_id":"`+userID.String()+`"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":42`)
	assert.Contains(t, rec.Body.String(), `"status":"pending"`)
}

func TestHandler_placeOrder_MerchantForbidden(t *testing.T) {
	router, m := setupTestRouter(t)

	userID := uuid.New()
	m.carts.On("Get", mock.Anything, userID.String()).Return(twoItemCart(), nil).Once()
	m.orders.On("Place", mock.Anything, userID, mock.Anything).
		Return(nil, service.ErrMerchantAccount).Once()

	rec := doRequest(router, "POST", "/api/orders", `{"user_id":"`+userID.String()+`"}`)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHandler_placeOrder_EmptyCart(t *testing.T) {
	router, m := setupTestRouter(t)

	userID := uuid.New()
	m.carts.On("Get", mock.Anything, userID.String()).Return(&domain.Cart{}, nil).Once()
	m.orders.On("Place", mock.Anything, userID, mock.Anything).
		Return(nil, service.ErrEmptyCart).Once()

	rec := doRequest(router, "POST", "/api/orders", `{"user_id":"`+userID.String()+`"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_updateOrderStatus(t *testing.T) {
	router, m := setupTestRouter(t)

	m.orders.On("UpdateStatus", mock.Anything, 7, domain.OrderStatusAccepted).
		Return(&domain.Order{ID: 7, Status: domain.OrderStatusAccepted}, nil).Once()

	rec := doRequest(router, "PUT", "/api/orders/7/status", `{"status":"accepted"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"accepted"`)
}

func TestHandler_updateOrderStatus_InvalidTransition(t *testing.T) {
	router, m := setupTestRouter(t)

	m.orders.On("UpdateStatus", mock.Anything, 7, domain.OrderStatusReady).
		Return(nil, service.ErrInvalidTransition).Once()

	rec := doRequest(router, "PUT", "/api/orders/7/status", `{"status":"ready"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHandler_getOrder_NotFound(t *testing.T) {
	router, m := setupTestRouter(t)

	m.orders.On("Get", 99).Return(nil, assert.AnError).Once()

	rec := doRequest(router, "GET", "/api/orders/99", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_getRestaurantStats(t *testing.T) {
	router, m := setupTestRouter(t)

	m.stats.On("Today", mock.Anything, 1).
		Return(&domain.RestaurantStats{RestaurantID: 1, Day: "2026-08-31", Orders: 3, Revenue: dec("85.47"), FeesSaved: dec("12.81")}, nil).Once()

	rec := doRequest(router, "GET", "/api/restaurants/1/stats/today", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"orders":3`)
	assert.Contains(t, rec.Body.String(), `"fees_saved":"12.81"`)
}
