package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"menu-svc/internal/domain"
	"menu-svc/internal/service"

	"github.com/gorilla/mux"
)

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	Restaurants service.RestaurantServiceInterface
	Menus       service.MenuServiceInterface
	Health      HealthChecker
	Logger      *slog.Logger
}

func NewHandler(restSvc service.RestaurantServiceInterface, menuSvc service.MenuServiceInterface, health HealthChecker, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		Restaurants: restSvc,
		Menus:       menuSvc,
		Health:      health,
		Logger:      logger,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/restaurants/", h.createRestaurant).Methods("POST")
	r.HandleFunc("/restaurants", h.createRestaurant).Methods("POST")
	r.HandleFunc("/restaurants", h.getRestaurants).Methods("GET")
	r.HandleFunc("/restaurants/", h.getRestaurants).Methods("GET")

	r.HandleFunc("/restaurants/{restaurant_id}/menu", h.createMenuItem).Methods("POST")
	r.HandleFunc("/restaurants/{restaurant_id}/menu", h.getMenuItems).Methods("GET")
	r.HandleFunc("/restaurants/{restaurant_id}/menu/qrcode", h.getMenuQRCode).Methods("GET")

	r.HandleFunc("/allergens", h.getAllergens).Methods("GET")
	r.HandleFunc("/dietary-categories", h.getDietaryCategories).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	status, code := "healthy", http.StatusOK
	if h.Health != nil {
		if err := h.Health.Ping(r.Context()); err != nil {
			h.Logger.Warn("store ping failed", "error", err)
			status, code = "unhealthy", http.StatusServiceUnavailable
		}
	}
	writeJSON(w, code, map[string]interface{}{
		"status":    status,
		"service":   "menu-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

type restaurantRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	var req restaurantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	if req.Name == nil {
		writeError(w, http.StatusUnprocessableEntity, "Field required: name")
		return
	}

	rest := domain.Restaurant{Name: *req.Name, Description: req.Description}
	if err := h.Restaurants.Create(r.Context(), &rest); err != nil {
		if errors.Is(err, service.ErrInvalidPayload) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		h.Logger.Error("create restaurant failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create restaurant: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) getRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Restaurants.List(r.Context())
	if err != nil {
		h.Logger.Error("list restaurants failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch restaurants: "+err.Error())
		return
	}
	if restaurants == nil {
		restaurants = []domain.Restaurant{}
	}
	writeJSON(w, http.StatusOK, restaurants)
}

type menuItemRequest struct {
	Name              *string  `json:"name"`
	Description       *string  `json:"description"`
	Price             *float64 `json:"price"`
	Allergens         []string `json:"allergens"`
	DietaryCategories []string `json:"dietaryCategories"`
}

func (req menuItemRequest) missingField() string {
	switch {
	case req.Name == nil:
		return "name"
	case req.Description == nil:
		return "description"
	case req.Price == nil:
		return "price"
	}
	return ""
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	restaurantID := mux.Vars(r)["restaurant_id"]

	var req menuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	if field := req.missingField(); field != "" {
		writeError(w, http.StatusUnprocessableEntity, "Field required: "+field)
		return
	}

	item := domain.MenuItem{
		Name:              *req.Name,
		Description:       *req.Description,
		Price:             *req.Price,
		Allergens:         req.Allergens,
		DietaryCategories: req.DietaryCategories,
	}
	if err := h.Menus.AddItem(r.Context(), restaurantID, &item); err != nil {
		h.writeServiceError(w, err, "Failed to add menu item", "restaurant_id", restaurantID)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) getMenuItems(w http.ResponseWriter, r *http.Request) {
	restaurantID := mux.Vars(r)["restaurant_id"]
	query := r.URL.Query()

	filter := service.MenuFilter{
		DietaryCategory: query.Get("dietary_category"),
		AllergenFree:    query["allergen_free"],
	}

	items, err := h.Menus.ListItems(r.Context(), restaurantID, filter)
	if err != nil {
		h.writeServiceError(w, err, "Failed to fetch menu items", "restaurant_id", restaurantID)
		return
	}

	h.Logger.Debug("menu listed", "restaurant_id", restaurantID, "count", len(items))
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getMenuQRCode(w http.ResponseWriter, r *http.Request) {
	restaurantID := mux.Vars(r)["restaurant_id"]

	png, err := h.Menus.QRCode(r.Context(), restaurantID)
	if err != nil {
		h.writeServiceError(w, err, "Failed to generate QR code", "restaurant_id", restaurantID)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) getAllergens(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.Allergens())
}

func (h *Handler) getDietaryCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.DietaryCategories())
}

// writeServiceError maps the service error kinds onto status codes. Anything
// that is neither not-found nor a validation failure is reported as a 500
// prefixed with op.
func (h *Handler) writeServiceError(w http.ResponseWriter, err error, op string, logAttrs ...any) {
	var validation *service.ValidationError
	switch {
	case errors.Is(err, service.ErrRestaurantNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &validation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidPayload):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		h.Logger.Error(op, append(logAttrs, "error", err)...)
		writeError(w, http.StatusInternalServerError, op+": "+err.Error())
	}
}
