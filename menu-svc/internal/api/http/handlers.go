package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"qrmenu-platform/menu-svc/internal/service"

	"github.com/gorilla/mux"
)

const maxBodyBytes = 10 << 20

type Handler struct {
	Restaurants service.RestaurantServiceInterface
	QR          service.QRServiceInterface
	Menu        service.MenuServiceInterface
	Accounts    service.AccountServiceInterface
	Contact     service.ContactServiceInterface
	// Auth guards admin and staff routes; nil leaves them open.
	Auth *Authenticator
}

func NewHandler(restSvc service.RestaurantServiceInterface, qrSvc service.QRServiceInterface, menuSvc service.MenuServiceInterface, accountSvc service.AccountServiceInterface, contactSvc service.ContactServiceInterface, auth *Authenticator) *Handler {
	return &Handler{
		Restaurants: restSvc,
		QR:          qrSvc,
		Menu:        menuSvc,
		Accounts:    accountSvc,
		Contact:     contactSvc,
		Auth:        auth,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	admin := h.Auth.Require(RoleAdmin, RoleServiceRole)
	staff := h.Auth.Require(RoleAdmin, RoleServiceRole, RoleAuthenticated)

	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.Handle("/api/restaurants", admin(h.getRestaurants)).Methods("GET")
	r.Handle("/api/restaurants", admin(h.createRestaurant)).Methods("POST")
	r.Handle("/api/restaurants/qr", admin(h.publishQR)).Methods("POST")
	r.Handle("/api/restaurants/create-login", admin(h.createLogin)).Methods("POST")
	r.HandleFunc("/api/restaurants/{id}", h.getRestaurant).Methods("GET")
	r.Handle("/api/restaurants/{id}", admin(h.deleteRestaurant)).Methods("DELETE")
	r.Handle("/api/restaurants/{id}/status", admin(h.setRestaurantStatus)).Methods("PATCH")
	r.Handle("/api/restaurants/{id}/qr", admin(h.renderQR)).Methods("POST")
	r.Handle("/api/admin/reset-restaurant-password", admin(h.resetPassword)).Methods("POST")

	r.HandleFunc("/api/restaurants/{restaurantId}/menu-items", h.getMenuItems).Methods("GET")
	r.Handle("/api/restaurants/{restaurantId}/menu-items", staff(h.createMenuItem)).Methods("POST")
	r.Handle("/api/menu-items/{itemId}", staff(h.deleteMenuItem)).Methods("DELETE")
	r.Handle("/api/menu-items/{itemId}/availability", staff(h.setMenuItemAvailability)).Methods("PATCH")

	r.HandleFunc("/api/menu/{slug}", h.getPublicMenu).Methods("GET")
	r.HandleFunc("/api/contact", h.submitContact).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "menu-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		log.Printf("ERROR: %s %s: %v", r.Method, r.URL.Path, err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrInactive):
		return http.StatusNotFound
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, service.ErrUploadFailed):
		return http.StatusBadGateway
	case errors.Is(err, service.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// decodeJSON reads a size-limited JSON body; failures are validation errors.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return badRequest("invalid JSON body: " + err.Error())
	}
	return nil
}

func badRequest(msg string) error {
	return fmt.Errorf("%w: %s", service.ErrValidation, msg)
}
