package httpapi

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"qrmenu-platform/menu-svc/internal/domain"

	"github.com/gorilla/mux"
)

func (h *Handler) getRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Restaurants.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	var input domain.CreateRestaurantInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, r, err)
		return
	}
	rest, err := h.Restaurants.Create(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, rest)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	rest, err := h.Restaurants.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) deleteRestaurant(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.Restaurants.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	log.Printf("[menu-svc] restaurant %s deleted (role %q)", id, RoleFromContext(r.Context()))
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) setRestaurantStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Active interface{} `json:"active"`
	}
	if err := decodeJSON(w, r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	active, ok := body.Active.(bool)
	if !ok {
		writeError(w, r, badRequest("active must be a boolean"))
		return
	}
	if err := h.Restaurants.SetActive(r.Context(), mux.Vars(r)["id"], active); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true, "active": active})
}

// publishQR stores a QR image rendered by the client.
func (h *Handler) publishQR(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Slug         string `json:"slug"`
		RestaurantID string `json:"restaurant_id"`
		QRBase64     string `json:"qr_base64"`
	}
	if err := decodeJSON(w, r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	if body.Slug == "" || body.RestaurantID == "" || body.QRBase64 == "" {
		writeError(w, r, badRequest("slug, restaurant_id and qr_base64 are required"))
		return
	}

	image, err := decodeDataURL(body.QRBase64)
	if err != nil {
		writeError(w, r, badRequest("qr_base64 is not valid base64"))
		return
	}

	pub, err := h.QR.Publish(r.Context(), domain.PublishRequest{
		RestaurantID: body.RestaurantID,
		Slug:         body.Slug,
		Force:        forceParam(r),
		Image:        image,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pub)
}

// renderQR renders the code on the server for the restaurant's menu URL.
func (h *Handler) renderQR(w http.ResponseWriter, r *http.Request) {
	var body struct {
		TargetURL string `json:"target_url"`
	}
	if r.Body != nil && r.ContentLength != 0 {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
			writeError(w, r, badRequest("invalid JSON body: "+err.Error()))
			return
		}
	}
	if body.TargetURL != "" {
		u, err := url.ParseRequestURI(body.TargetURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			writeError(w, r, badRequest("target_url must be an absolute http(s) URL"))
			return
		}
	}

	pub, err := h.QR.Publish(r.Context(), domain.PublishRequest{
		RestaurantID: mux.Vars(r)["id"],
		TargetURL:    body.TargetURL,
		Force:        forceParam(r),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pub)
}

func forceParam(r *http.Request) bool {
	force, _ := strconv.ParseBool(r.URL.Query().Get("force"))
	return force
}

func decodeDataURL(encoded string) ([]byte, error) {
	if strings.HasPrefix(encoded, "data:") {
		if idx := strings.Index(encoded, ","); idx != -1 {
			encoded = encoded[idx+1:]
		}
	}
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New("empty image")
	}
	return data, nil
}
