package tests

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image/color"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpapi "qrmenu-platform/menu-svc/internal/api/http"
	"qrmenu-platform/menu-svc/internal/domain"
	"qrmenu-platform/menu-svc/internal/mocks"
	"qrmenu-platform/menu-svc/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type handlerMocks struct {
	restaurants *mocks.RestaurantServiceInterface
	qr          *mocks.QRServiceInterface
	menu        *mocks.MenuServiceInterface
	accounts    *mocks.AccountServiceInterface
	contact     *mocks.ContactServiceInterface
}

func newTestRouter(t *testing.T, auth *httpapi.Authenticator) (http.Handler, handlerMocks) {
	m := handlerMocks{
		restaurants: mocks.NewRestaurantServiceInterface(t),
		qr:          mocks.NewQRServiceInterface(t),
		menu:        mocks.NewMenuServiceInterface(t),
		accounts:    mocks.NewAccountServiceInterface(t),
		contact:     mocks.NewContactServiceInterface(t),
	}
	handler := httpapi.NewHandler(m.restaurants, m.qr, m.menu, m.accounts, m.contact, auth)
	return httpapi.NewRouter(handler, httpapi.RouterOptions{}), m
}

func doRequest(router http.Handler, method, target, body string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealthCheckHandler(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	w := doRequest(router, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "menu-svc", decodeBody(t, w)["service"])
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}

func TestPublishQRHandler(t *testing.T) {
	image := pngBytes(t, color.Black)
	encoded := base64.StdEncoding.EncodeToString(image)

	tests := []struct {
		name      string
		target    string
		body      string
		setupMock func(m *mocks.QRServiceInterface)
		wantCode  int
	}{
		{
			name:   "publishes",
			target: "/api/restaurants/qr",
			body:   `{"slug":"spice-villa","restaurant_id":"` + restaurantID + `","qr_base64":"data:image/png;base64,` + encoded + `"}`,
			setupMock: func(m *mocks.QRServiceInterface) {
				m.On("Publish", mock.Anything, domain.PublishRequest{
					RestaurantID: restaurantID, Slug: "spice-villa", Image: image,
				}).Return(&domain.QRPublication{URL: qrURL, Regenerated: true}, nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "force from query",
			target: "/api/restaurants/qr?force=true",
			body:   `{"slug":"spice-villa","restaurant_id":"` + restaurantID + `","qr_base64":"` + encoded + `"}`,
			setupMock: func(m *mocks.QRServiceInterface) {
				m.On("Publish", mock.Anything, mock.MatchedBy(func(r domain.PublishRequest) bool { return r.Force })).
					Return(&domain.QRPublication{URL: qrURL, Regenerated: true}, nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "missing fields",
			target:    "/api/restaurants/qr",
			body:      `{"slug":"spice-villa"}`,
			setupMock: func(m *mocks.QRServiceInterface) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "invalid base64",
			target:    "/api/restaurants/qr",
			body:      `{"slug":"spice-villa","restaurant_id":"` + restaurantID + `","qr_base64":"@@@"}`,
			setupMock: func(m *mocks.QRServiceInterface) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "invalid JSON",
			target:    "/api/restaurants/qr",
			body:      `{invalid}`,
			setupMock: func(m *mocks.QRServiceInterface) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:   "unknown restaurant",
			target: "/api/restaurants/qr",
			body:   `{"slug":"spice-villa","restaurant_id":"` + restaurantID + `","qr_base64":"` + encoded + `"}`,
			setupMock: func(m *mocks.QRServiceInterface) {
				m.On("Publish", mock.Anything, mock.Anything).Return(nil, service.ErrNotFound).Once()
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:   "storage down",
			target: "/api/restaurants/qr",
			body:   `{"slug":"spice-villa","restaurant_id":"` + restaurantID + `","qr_base64":"` + encoded + `"}`,
			setupMock: func(m *mocks.QRServiceInterface) {
				m.On("Publish", mock.Anything, mock.Anything).Return(nil, service.ErrUploadFailed).Once()
			},
			wantCode: http.StatusBadGateway,
		},
		{
			name:   "persist failure",
			target: "/api/restaurants/qr",
			body:   `{"slug":"spice-villa","restaurant_id":"` + restaurantID + `","qr_base64":"` + encoded + `"}`,
			setupMock: func(m *mocks.QRServiceInterface) {
				m.On("Publish", mock.Anything, mock.Anything).Return(nil, service.ErrPersistFailed).Once()
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, m := newTestRouter(t, nil)
			testCase.setupMock(m.qr)

			w := doRequest(router, http.MethodPost, testCase.target, testCase.body)

			assert.Equal(t, testCase.wantCode, w.Code)
			body := decodeBody(t, w)
			if testCase.wantCode == http.StatusOK {
				assert.Equal(t, qrURL, body["qr_url"])
			} else {
				assert.NotEmpty(t, body["error"])
			}
		})
	}
}

func TestRenderQRHandler(t *testing.T) {
	t.Run("empty body renders default target", func(t *testing.T) {
		router, m := newTestRouter(t, nil)
		m.qr.On("Publish", mock.Anything, domain.PublishRequest{RestaurantID: restaurantID}).
			Return(&domain.QRPublication{URL: qrURL}, nil).Once()

		w := doRequest(router, http.MethodPost, "/api/restaurants/"+restaurantID+"/qr", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("custom target and force", func(t *testing.T) {
		router, m := newTestRouter(t, nil)
		m.qr.On("Publish", mock.Anything, domain.PublishRequest{RestaurantID: restaurantID, TargetURL: "https://tables.example/t/7", Force: true}).
			Return(&domain.QRPublication{URL: qrURL, Regenerated: true}, nil).Once()

		w := doRequest(router, http.MethodPost, "/api/restaurants/"+restaurantID+"/qr?force=1", `{"target_url":"https://tables.example/t/7"}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("relative target rejected", func(t *testing.T) {
		router, _ := newTestRouter(t, nil)

		w := doRequest(router, http.MethodPost, "/api/restaurants/"+restaurantID+"/qr", `{"target_url":"/menu/x"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRestaurantStatusHandler(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(m *mocks.RestaurantServiceInterface)
		wantCode  int
	}{
		{
			name: "deactivate",
			body: `{"active":false}`,
			setupMock: func(m *mocks.RestaurantServiceInterface) {
				m.On("SetActive", mock.Anything, restaurantID, false).Return(nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "string is not a boolean",
			body:      `{"active":"false"}`,
			setupMock: func(m *mocks.RestaurantServiceInterface) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "missing field",
			body:      `{}`,
			setupMock: func(m *mocks.RestaurantServiceInterface) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "unknown restaurant",
			body: `{"active":true}`,
			setupMock: func(m *mocks.RestaurantServiceInterface) {
				m.On("SetActive", mock.Anything, restaurantID, true).Return(service.ErrNotFound).Once()
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, m := newTestRouter(t, nil)
			testCase.setupMock(m.restaurants)

			w := doRequest(router, http.MethodPatch, "/api/restaurants/"+restaurantID+"/status", testCase.body)
			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestCreateRestaurantHandler(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(m *mocks.RestaurantServiceInterface)
		wantCode  int
	}{
		{
			name: "created",
			body: `{"name":"Spice Villa"}`,
			setupMock: func(m *mocks.RestaurantServiceInterface) {
				m.On("Create", mock.Anything, domain.CreateRestaurantInput{Name: "Spice Villa"}).Return(newRestaurant(), nil).Once()
			},
			wantCode: http.StatusCreated,
		},
		{
			name: "slug conflict",
			body: `{"name":"Spice Villa"}`,
			setupMock: func(m *mocks.RestaurantServiceInterface) {
				m.On("Create", mock.Anything, mock.Anything).Return(nil, service.ErrConflict).Once()
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "database error",
			body: `{"name":"Spice Villa"}`,
			setupMock: func(m *mocks.RestaurantServiceInterface) {
				m.On("Create", mock.Anything, mock.Anything).Return(nil, assert.AnError).Once()
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, m := newTestRouter(t, nil)
			testCase.setupMock(m.restaurants)

			w := doRequest(router, http.MethodPost, "/api/restaurants", testCase.body)
			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestDeleteRestaurantHandler(t *testing.T) {
	router, m := newTestRouter(t, nil)
	m.restaurants.On("Delete", mock.Anything, restaurantID).Return(nil).Once()

	w := doRequest(router, http.MethodDelete, "/api/restaurants/"+restaurantID, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["success"])
}

func TestMenuItemHandlers(t *testing.T) {
	t.Run("create uses path restaurant id", func(t *testing.T) {
		router, m := newTestRouter(t, nil)
		m.menu.On("Create", mock.Anything, mock.MatchedBy(func(in domain.CreateMenuItemInput) bool {
			return in.RestaurantID == restaurantID && in.Name == "Lassi" && in.Price != nil && *in.Price == 99
		})).Return(&domain.MenuItem{ID: itemID, Name: "Lassi"}, nil).Once()

		w := doRequest(router, http.MethodPost, "/api/restaurants/"+restaurantID+"/menu-items", `{"name":"Lassi","price":99}`)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("availability requires boolean", func(t *testing.T) {
		router, _ := newTestRouter(t, nil)

		w := doRequest(router, http.MethodPatch, "/api/menu-items/"+itemID+"/availability", `{"available":1}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("availability toggled", func(t *testing.T) {
		router, m := newTestRouter(t, nil)
		m.menu.On("SetAvailability", mock.Anything, itemID, true).Return(&domain.MenuItem{ID: itemID, Available: true}, nil).Once()

		w := doRequest(router, http.MethodPatch, "/api/menu-items/"+itemID+"/availability", `{"available":true}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, decodeBody(t, w)["available"])
	})

	t.Run("delete unknown item", func(t *testing.T) {
		router, m := newTestRouter(t, nil)
		m.menu.On("Delete", mock.Anything, itemID).Return(service.ErrNotFound).Once()

		w := doRequest(router, http.MethodDelete, "/api/menu-items/"+itemID, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("list", func(t *testing.T) {
		router, m := newTestRouter(t, nil)
		m.menu.On("List", mock.Anything, restaurantID).Return([]domain.MenuItem{{ID: itemID}}, nil).Once()

		w := doRequest(router, http.MethodGet, "/api/restaurants/"+restaurantID+"/menu-items", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestPublicMenuHandler(t *testing.T) {
	tests := []struct {
		name     string
		menu     *domain.PublicMenu
		err      error
		wantCode int
	}{
		{name: "served", menu: &domain.PublicMenu{Restaurant: *newRestaurant(), Items: []domain.MenuItem{}}, wantCode: http.StatusOK},
		{name: "inactive", err: service.ErrInactive, wantCode: http.StatusNotFound},
		{name: "unknown", err: service.ErrNotFound, wantCode: http.StatusNotFound},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, m := newTestRouter(t, nil)
			m.menu.On("PublicMenu", mock.Anything, "spice-villa").Return(testCase.menu, testCase.err).Once()

			w := doRequest(router, http.MethodGet, "/api/menu/spice-villa", "")
			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestAccountHandlers(t *testing.T) {
	t.Run("create login", func(t *testing.T) {
		router, m := newTestRouter(t, nil)
		m.accounts.On("CreateLogin", mock.Anything, domain.CreateLoginInput{RestaurantID: restaurantID, Email: "o@s.in", Password: "secret1"}).
			Return(&domain.LoginResult{Success: true, Email: "o@s.in", UserID: "auth-1"}, nil).Once()

		w := doRequest(router, http.MethodPost, "/api/restaurants/create-login", `{"restaurant_id":"`+restaurantID+`","email":"o@s.in","password":"secret1"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "auth-1", decodeBody(t, w)["user_id"])
	})

	t.Run("reset password", func(t *testing.T) {
		router, m := newTestRouter(t, nil)
		updated := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		m.accounts.On("ResetPassword", mock.Anything, "o@s.in", "N3w!Password").
			Return(&domain.AuthUser{ID: "auth-1", Email: "o@s.in", UpdatedAt: &updated}, nil).Once()

		w := doRequest(router, http.MethodPost, "/api/admin/reset-restaurant-password", `{"email":"o@s.in","new_password":"N3w!Password"}`)
		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "auth-1", body["user"].(map[string]interface{})["id"])
	})

	t.Run("auth provider unavailable", func(t *testing.T) {
		router, m := newTestRouter(t, nil)
		m.accounts.On("ResetPassword", mock.Anything, mock.Anything, mock.Anything).Return(nil, service.ErrUnavailable).Once()

		w := doRequest(router, http.MethodPost, "/api/admin/reset-restaurant-password", `{"email":"o@s.in","new_password":"N3w!Password"}`)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestContactHandler(t *testing.T) {
	router, m := newTestRouter(t, nil)
	m.contact.On("Submit", mock.Anything, mock.AnythingOfType("domain.ContactMessage")).Return(nil).Once()

	w := doRequest(router, http.MethodPost, "/api/contact", `{"name":"Asha","email":"a@b.co","mobile":"9876543210","subject":"Hello there","message":"Tell me more please"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["success"])
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestAdminAuth(t *testing.T) {
	const secret = "test-secret"
	exp := time.Now().Add(time.Hour).Unix()

	tests := []struct {
		name     string
		method   string
		target   string
		token    string
		wantCode int
		expect   func(m handlerMocks)
	}{
		{
			name:     "missing token",
			method:   http.MethodGet,
			target:   "/api/restaurants",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "wrong secret",
			method:   http.MethodGet,
			target:   "/api/restaurants",
			token:    signToken(t, "other", jwt.MapClaims{"role": "admin", "exp": exp}),
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "expired token",
			method:   http.MethodGet,
			target:   "/api/restaurants",
			token:    signToken(t, secret, jwt.MapClaims{"role": "admin", "exp": time.Now().Add(-time.Hour).Unix()}),
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "staff cannot list restaurants",
			method:   http.MethodGet,
			target:   "/api/restaurants",
			token:    signToken(t, secret, jwt.MapClaims{"role": "authenticated", "exp": exp}),
			wantCode: http.StatusForbidden,
		},
		{
			name:     "admin lists restaurants",
			method:   http.MethodGet,
			target:   "/api/restaurants",
			token:    signToken(t, secret, jwt.MapClaims{"role": "authenticated", "app_metadata": map[string]interface{}{"role": "admin"}, "exp": exp}),
			wantCode: http.StatusOK,
			expect: func(m handlerMocks) {
				m.restaurants.On("List", mock.Anything).Return([]domain.Restaurant{}, nil).Once()
			},
		},
		{
			name:     "staff toggles availability",
			method:   http.MethodPatch,
			target:   "/api/menu-items/" + itemID + "/availability",
			token:    signToken(t, secret, jwt.MapClaims{"role": "authenticated", "exp": exp}),
			wantCode: http.StatusOK,
			expect: func(m handlerMocks) {
				m.menu.On("SetAvailability", mock.Anything, itemID, true).Return(&domain.MenuItem{ID: itemID, Available: true}, nil).Once()
			},
		},
		{
			name:     "public menu needs no token",
			method:   http.MethodGet,
			target:   "/api/menu/spice-villa",
			wantCode: http.StatusOK,
			expect: func(m handlerMocks) {
				m.menu.On("PublicMenu", mock.Anything, "spice-villa").Return(&domain.PublicMenu{Items: []domain.MenuItem{}}, nil).Once()
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, m := newTestRouter(t, httpapi.NewAuthenticator(secret))
			if testCase.expect != nil {
				testCase.expect(m)
			}

			body := ""
			if testCase.method == http.MethodPatch {
				body = `{"available":true}`
			}
			var headers []string
			if testCase.token != "" {
				headers = []string{"Authorization", "Bearer " + testCase.token}
			}

			w := doRequest(router, testCase.method, testCase.target, body, headers...)
			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}
