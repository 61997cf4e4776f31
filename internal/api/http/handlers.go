package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"soulfood/internal/domain"
	"soulfood/internal/service"
)

type Handler struct {
	Catalog service.CatalogServiceInterface
	Carts   service.CartServiceInterface
	Orders  service.OrderServiceInterface
	Stats   service.StatsServiceInterface
}

func NewHandler(catalog service.CatalogServiceInterface, carts service.CartServiceInterface, orders service.OrderServiceInterface, stats service.StatsServiceInterface) *Handler {
	return &Handler{
		Catalog: catalog,
		Carts:   carts,
		Orders:  orders,
		Stats:   stats,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/restaurants", h.getRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants", h.createRestaurant).Methods("POST")
	r.HandleFunc("/api/restaurants/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.updateRestaurant).Methods("PUT")
	r.HandleFunc("/api/restaurants/{id}/active", h.setRestaurantActive).Methods("PUT")
	r.HandleFunc("/api/restaurants/{id}/stats/today", h.getRestaurantStats).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/orders", h.getRestaurantOrders).Methods("GET")

	r.HandleFunc("/api/restaurants/{restaurantId}/menu", h.createMenuItem).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantId}/menu/{itemId}", h.updateMenuItem).Methods("PUT")
	r.HandleFunc("/api/restaurants/{restaurantId}/menu/{itemId}", h.deleteMenuItem).Methods("DELETE")

	r.HandleFunc("/api/fees/comparison", h.getFeeComparison).Methods("GET")

	r.HandleFunc("/api/cart/{userId}", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart/{userId}/items", h.addCartItem).Methods("POST")
	r.HandleFunc("/api/cart/{userId}/reset", h.resetCart).Methods("POST")
	r.HandleFunc("/api/cart/{userId}/items/{itemId}", h.removeCartItem).Methods("DELETE")

	r.HandleFunc("/api/orders", h.placeOrder).Methods("POST")
	r.HandleFunc("/api/orders", h.getUserOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/status", h.updateOrderStatus).Methods("PUT")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "soulfood",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Catalog.ListRestaurants()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	rest, err := h.Catalog.GetRestaurant(id)
	if err != nil {
		http.Error(w, "Restaurant not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	var rest domain.Restaurant
	if err := json.NewDecoder(r.Body).Decode(&rest); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Catalog.CreateRestaurant(&rest); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, rest)
}

func (h *Handler) updateRestaurant(w http.ResponseWriter, r *http.Request) {
	var rest domain.Restaurant
	if err := json.NewDecoder(r.Body).Decode(&rest); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	rest.ID, _ = strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Catalog.UpdateRestaurant(&rest); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) setRestaurantActive(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Active bool `json:"active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Catalog.SetRestaurantActive(id, payload.Active); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"active": payload.Active})
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	item.RestaurantID, _ = strconv.Atoi(mux.Vars(r)["restaurantId"])
	if item.Price.IsNegative() {
		http.Error(w, "Price must not be negative", http.StatusBadRequest)
		return
	}
	if err := h.Catalog.CreateMenuItem(&item); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	vars := mux.Vars(r)
	item.RestaurantID, _ = strconv.Atoi(vars["restaurantId"])
	item.ID, _ = strconv.Atoi(vars["itemId"])
	if item.Price.IsNegative() {
		http.Error(w, "Price must not be negative", http.StatusBadRequest)
		return
	}
	if err := h.Catalog.UpdateMenuItem(&item); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	restaurantID, _ := strconv.Atoi(vars["restaurantId"])
	itemID, _ := strconv.Atoi(vars["itemId"])

	deleted, err := h.Catalog.DeleteMenuItem(restaurantID, itemID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if deleted == 0 {
		http.Error(w, "Menu item not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getFeeComparison(w http.ResponseWriter, r *http.Request) {
	subtotal, err := decimal.NewFromString(r.URL.Query().Get("subtotal"))
	if err != nil || subtotal.IsNegative() {
		http.Error(w, "Invalid subtotal", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, service.CompareFees(subtotal))
}

// cartResponse pairs the basket with its quote and fee comparison so the
// storefront renders one payload.
type cartResponse struct {
	Cart       *domain.Cart           `json:"cart"`
	Quote      *service.OrderQuote    `json:"quote,omitempty"`
	Comparison *service.FeeComparison `json:"comparison,omitempty"`
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.Carts.Get(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, buildCartResponse(cart))
}

type cartItemRequest struct {
	RestaurantID int `json:"restaurant_id"`
	MenuItemID   int `json:"menu_item_id"`
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var payload cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cart, err := h.Carts.AddItem(r.Context(), mux.Vars(r)["userId"], payload.RestaurantID, payload.MenuItemID)
	if errors.Is(err, service.ErrRestaurantConflict) {
		writeJSON(w, http.StatusConflict, map[string]interface{}{
			"error":                 err.Error(),
			"confirmation_required": true,
		})
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, buildCartResponse(cart))
}

func (h *Handler) resetCart(w http.ResponseWriter, r *http.Request) {
	var payload cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cart, err := h.Carts.ConfirmReset(r.Context(), mux.Vars(r)["userId"], payload.RestaurantID, payload.MenuItemID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, buildCartResponse(cart))
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	itemID, _ := strconv.Atoi(vars["itemId"])

	cart, err := h.Carts.RemoveItem(r.Context(), vars["userId"], itemID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, buildCartResponse(cart))
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		UserID string `json:"user_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	userID, err := uuid.Parse(payload.UserID)
	if err != nil {
		http.Error(w, "Invalid user id", http.StatusBadRequest)
		return
	}

	cart, err := h.Carts.Get(r.Context(), payload.UserID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	order, err := h.Orders.Place(r.Context(), userID, cart)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCart):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrMerchantAccount):
			http.Error(w, err.Error(), http.StatusForbidden)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	if err := h.Carts.Clear(r.Context(), payload.UserID); err != nil {
		// The order is placed; a stale cart is the lesser problem.
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) getUserOrders(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.URL.Query().Get("user_id"))
	if err != nil {
		http.Error(w, "Invalid user id", http.StatusBadRequest)
		return
	}
	orders, err := h.Orders.ListForUser(userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getRestaurantOrders(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	orders, err := h.Orders.ListForRestaurant(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	order, err := h.Orders.Get(id)
	if err != nil {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	order, err := h.Orders.UpdateStatus(r.Context(), id, domain.OrderStatus(payload.Status))
	if err != nil {
		if errors.Is(err, service.ErrInvalidTransition) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	qr, err := h.Orders.QRCode(id)
	if err != nil || len(qr) == 0 {
		http.Error(w, "QR code not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(qr)
}

func (h *Handler) getRestaurantStats(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	stats, err := h.Stats.Today(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func buildCartResponse(cart *domain.Cart) cartResponse {
	resp := cartResponse{Cart: cart}
	if !cart.Empty() {
		if quote, err := service.PriceCart(cart); err == nil {
			resp.Quote = &quote
		}
		comparison := service.CompareFees(cart.Subtotal())
		resp.Comparison = &comparison
	}
	return resp
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
