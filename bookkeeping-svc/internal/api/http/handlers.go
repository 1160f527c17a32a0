package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"restaurant-bookkeeping/bookkeeping-svc/internal/domain"
	"restaurant-bookkeeping/bookkeeping-svc/internal/service"
	"restaurant-bookkeeping/bookkeeping-svc/internal/validation"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const defaultTopDishes = 5

type Handler struct {
	Bookkeeper service.BookkeeperInterface
	Log        *zap.SugaredLogger
}

func NewHandler(bookkeeper service.BookkeeperInterface, log *zap.SugaredLogger) *Handler {
	return &Handler{
		Bookkeeper: bookkeeper,
		Log:        log,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/menu", h.addMenuItem).Methods("POST")
	r.HandleFunc("/api/menu/{name}", h.removeMenuItem).Methods("DELETE")
	r.HandleFunc("/api/menu/{name}/availability", h.setAvailability).Methods("PUT")
	r.HandleFunc("/api/menu/{name}/price", h.updatePrice).Methods("PUT")

	r.HandleFunc("/api/orders", h.getOrders).Methods("GET")
	r.HandleFunc("/api/orders", h.placeOrder).Methods("POST")
	r.HandleFunc("/api/orders/{number}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{number}/qrcode", h.getOrderQRCode).Methods("GET")

	r.HandleFunc("/api/tables", h.getTables).Methods("GET")
	r.HandleFunc("/api/tables", h.addTable).Methods("POST")

	r.HandleFunc("/api/reservations", h.getReservations).Methods("GET")
	r.HandleFunc("/api/reservations", h.reserveTable).Methods("POST")

	r.HandleFunc("/api/analytics/top-dishes", h.getTopDishes).Methods("GET")
}

type menuItemResponse struct {
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Available bool            `json:"available"`
}

type tableResponse struct {
	Number int    `json:"number"`
	Seats  int    `json:"seats"`
	Status string `json:"status"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func toMenuItemResponse(item domain.MenuItem) menuItemResponse {
	return menuItemResponse{Name: item.Name, Price: item.Price, Available: item.Available}
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "bookkeeping-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	menu := h.Bookkeeper.Menu(r.Context())
	items := make([]menuItemResponse, 0, len(menu))
	for _, item := range menu {
		items = append(items, toMenuItemResponse(item))
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) addMenuItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string          `json:"name"`
		Price decimal.Decimal `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	name, err := validation.ValidateName("name", req.Name)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if err := validation.ValidatePrice(req.Price); err != nil {
		h.writeError(w, err)
		return
	}

	item := h.Bookkeeper.AddMenuItem(r.Context(), name, req.Price)
	writeJSON(w, http.StatusCreated, toMenuItemResponse(item))
}

func (h *Handler) removeMenuItem(w http.ResponseWriter, r *http.Request) {
	message, err := h.Bookkeeper.RemoveMenuItem(r.Context(), mux.Vars(r)["name"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: message})
}

func (h *Handler) setAvailability(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Available *bool `json:"available"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Available == nil {
		http.Error(w, "Invalid availability payload", http.StatusBadRequest)
		return
	}

	item, err := h.Bookkeeper.SetAvailability(r.Context(), mux.Vars(r)["name"], *req.Available)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toMenuItemResponse(item))
}

func (h *Handler) updatePrice(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Price *decimal.Decimal `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Price == nil {
		http.Error(w, "Invalid price payload", http.StatusBadRequest)
		return
	}
	if err := validation.ValidatePrice(*req.Price); err != nil {
		h.writeError(w, err)
		return
	}

	item, err := h.Bookkeeper.UpdatePrice(r.Context(), mux.Vars(r)["name"], *req.Price)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toMenuItemResponse(item))
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	orders := h.Bookkeeper.OrderSummaries(r.Context())
	response := map[string]interface{}{"orders": orders}
	if len(orders) == 0 {
		response["message"] = domain.NoCurrentOrders
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OrderNumber string   `json:"order_number"`
		Items       []string `json:"items"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	number, err := validation.ValidateName("order_number", req.OrderNumber)
	if err != nil {
		h.writeError(w, err)
		return
	}

	summary, err := h.Bookkeeper.PlaceOrder(r.Context(), number, req.Items)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, summary)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Bookkeeper.Order(r.Context(), mux.Vars(r)["number"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	qrCode, err := h.Bookkeeper.OrderQRCode(r.Context(), mux.Vars(r)["number"])
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qrCode)
}

func (h *Handler) getTables(w http.ResponseWriter, r *http.Request) {
	tables := h.Bookkeeper.Tables(r.Context())
	response := make([]tableResponse, 0, len(tables))
	for _, table := range tables {
		response = append(response, tableResponse{Number: table.Number, Seats: table.Seats, Status: table.Status()})
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) addTable(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Number int `json:"number"`
		Seats  int `json:"seats"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := validation.ValidatePositive("number", req.Number); err != nil {
		h.writeError(w, err)
		return
	}
	if err := validation.ValidatePositive("seats", req.Seats); err != nil {
		h.writeError(w, err)
		return
	}

	message := h.Bookkeeper.AddTable(r.Context(), req.Number, req.Seats)
	writeJSON(w, http.StatusCreated, messageResponse{Message: message})
}

func (h *Handler) getReservations(w http.ResponseWriter, r *http.Request) {
	lines := h.Bookkeeper.ListReservations(r.Context())
	response := map[string]interface{}{"reservations": lines}
	if len(lines) == 1 && lines[0] == domain.NoCurrentReservations {
		response["reservations"] = []string{}
		response["message"] = domain.NoCurrentReservations
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) reserveTable(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CustomerName    string `json:"customer_name"`
		TableNumber     int    `json:"table_number"`
		ReservationTime string `json:"reservation_time"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	customer, err := validation.ValidateName("customer_name", req.CustomerName)
	if err != nil {
		h.writeError(w, err)
		return
	}
	at, err := validation.ParseReservationTime(req.ReservationTime)
	if err != nil {
		h.writeError(w, err)
		return
	}

	message, err := h.Bookkeeper.ReserveTable(r.Context(), customer, req.TableNumber, at)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, messageResponse{Message: message})
}

func (h *Handler) getTopDishes(w http.ResponseWriter, r *http.Request) {
	limit := defaultTopDishes
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}
	period := r.URL.Query().Get("period")
	if period == "" {
		period = service.PeriodAll
	}
	if period != service.PeriodAll && period != service.PeriodToday {
		http.Error(w, "Invalid period", http.StatusBadRequest)
		return
	}

	dishes, err := h.Bookkeeper.TopDishes(r.Context(), period, limit)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if dishes == nil {
		dishes = []domain.DishPopularity{}
	}
	writeJSON(w, http.StatusOK, dishes)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var validationErr validation.ValidationError
	switch {
	case errors.As(err, &validationErr):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrAlreadyReserved):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, service.ErrQRDisabled), errors.Is(err, service.ErrStatsDisabled):
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
	default:
		h.Log.Errorw("request failed", "action", "http_error", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
