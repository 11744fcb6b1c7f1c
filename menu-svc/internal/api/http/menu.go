package httpapi

import (
	"net/http"

	"qrmenu-platform/menu-svc/internal/domain"

	"github.com/gorilla/mux"
)

func (h *Handler) getMenuItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.Menu.List(r.Context(), mux.Vars(r)["restaurantId"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	var input domain.CreateMenuItemInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, r, err)
		return
	}
	input.RestaurantID = mux.Vars(r)["restaurantId"]

	item, err := h.Menu.Create(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	if err := h.Menu.Delete(r.Context(), mux.Vars(r)["itemId"]); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) setMenuItemAvailability(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Available interface{} `json:"available"`
	}
	if err := decodeJSON(w, r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	available, ok := body.Available.(bool)
	if !ok {
		writeError(w, r, badRequest("available must be a boolean"))
		return
	}

	item, err := h.Menu.SetAvailability(r.Context(), mux.Vars(r)["itemId"], available)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) getPublicMenu(w http.ResponseWriter, r *http.Request) {
	menu, err := h.Menu.PublicMenu(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Cache-Control", "public, max-age=60")
	writeJSON(w, http.StatusOK, menu)
}
