package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"foodcart/order-svc/internal/domain"
	"foodcart/order-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

const maxOrderBodyBytes = 1 << 20

type Handler struct {
	Catalog service.CatalogServiceInterface
	Orders  service.OrderServiceInterface
	Queries service.QueryServiceInterface
}

func NewHandler(catalogSvc service.CatalogServiceInterface, orderSvc service.OrderServiceInterface, querySvc service.QueryServiceInterface) *Handler {
	return &Handler{
		Catalog: catalogSvc,
		Orders:  orderSvc,
		Queries: querySvc,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/products/", h.listProducts).Methods("GET")
	r.HandleFunc("/api/products", h.createProduct).Methods("POST")
	r.HandleFunc("/api/products/{id}/price", h.updateProductPrice).Methods("PUT")

	r.HandleFunc("/api/restaurants", h.createRestaurant).Methods("POST")
	r.HandleFunc("/api/restaurants", h.listRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/menu/{productId}", h.setMenuAvailability).Methods("PUT")

	r.HandleFunc("/api/categories", h.createCategory).Methods("POST")
	r.HandleFunc("/api/categories/{id}", h.deleteCategory).Methods("DELETE")

	r.HandleFunc("/api/order/", h.registerOrder).Methods("POST")
	r.HandleFunc("/api/orders/active", h.listActiveOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/candidates", h.getCandidates).Methods("GET")
	r.HandleFunc("/api/orders/{id}/status", h.advanceStatus).Methods("PUT")
	r.HandleFunc("/api/orders/{id}/callback-qr", h.getCallbackQR).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "order-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.Catalog.ListAvailableProducts(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	resp := make([]ProductResponse, len(products))
	for i, p := range products {
		resp[i] = toProductResponse(p)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		writeError(w, http.StatusBadRequest, "price: must be a decimal number")
		return
	}

	product := domain.Product{
		Name:          req.Name,
		Price:         price,
		Image:         req.Image,
		SpecialStatus: req.SpecialStatus,
		Description:   req.Description,
	}
	if req.CategoryID != nil {
		product.Category = &domain.ProductCategory{ID: *req.CategoryID}
	}
	if err := h.Catalog.CreateProduct(r.Context(), &product); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toProductResponse(product))
}

func (h *Handler) updateProductPrice(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req PriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		writeError(w, http.StatusBadRequest, "price: must be a decimal number")
		return
	}
	if err := h.Catalog.UpdateProductPrice(r.Context(), id, price); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	var rest domain.Restaurant
	if err := json.NewDecoder(r.Body).Decode(&rest); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := h.Catalog.CreateRestaurant(r.Context(), &rest); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, rest)
}

func (h *Handler) listRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Catalog.ListRestaurants(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) setMenuAvailability(w http.ResponseWriter, r *http.Request) {
	restaurantID, ok := pathID(w, r, "restaurantId")
	if !ok {
		return
	}
	productID, ok := pathID(w, r, "productId")
	if !ok {
		return
	}
	var req AvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Availability == nil {
		writeError(w, http.StatusBadRequest, "availability: must be a boolean")
		return
	}

	entry := domain.MenuEntry{RestaurantID: restaurantID, ProductID: productID, Availability: *req.Availability}
	if err := h.Catalog.SetMenuAvailability(r.Context(), entry); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var category domain.ProductCategory
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := h.Catalog.CreateCategory(r.Context(), &category); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, category)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.Catalog.DeleteCategory(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// registerOrder hands the raw body to the order service, which owns parsing
// so that every payload error is reported with the same taxonomy.
func (h *Handler) registerOrder(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxOrderBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, domain.ErrMalformedPayload.Error())
		return
	}

	order, err := h.Orders.Create(r.Context(), body)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toOrderResponse(*order))
}

func (h *Handler) listActiveOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Queries.ListActiveOrders(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	resp := make([]ActiveOrderResponse, len(orders))
	for i, o := range orders {
		resp[i] = toActiveOrderResponse(o)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	order, err := h.Orders.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderResponse(*order))
}

func (h *Handler) getCandidates(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	candidates, err := h.Queries.Candidates(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if candidates == nil {
		candidates = []domain.Restaurant{}
	}
	writeJSON(w, http.StatusOK, candidates)
}

func (h *Handler) advanceStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req StatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	order, err := h.Orders.AdvanceStatus(r.Context(), id, req.Status)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderResponse(*order))
}

func (h *Handler) getCallbackQR(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	png, err := h.Orders.CallbackQR(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, name+": must be a positive integer")
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// writeServiceError maps domain errors onto status codes. Server-side
// failures are logged and answered with an opaque message.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrOrderCreationFailed):
		slog.ErrorContext(r.Context(), "order creation failed", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, domain.ErrOrderCreationFailed.Error())
	case domain.IsValidation(err):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidStatusTransition):
		writeError(w, http.StatusConflict, err.Error())
	default:
		slog.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
