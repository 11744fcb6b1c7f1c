package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"qrmenu-platform/menu-svc/internal/domain"
	"qrmenu-platform/menu-svc/internal/service"

	"github.com/google/uuid"
	gotrue "github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/gotrue-go/types"
)

const authUsersPerPage = 200

// SupabaseAuth manages logins through the GoTrue admin API with the service role key.
type SupabaseAuth struct {
	client    gotrue.Client
	transport http.RoundTripper
	Timeout   time.Duration
	// MaxPages bounds the user listing scan in FindUserByEmail.
	MaxPages int
}

func NewSupabaseAuth(baseURL, serviceKey string) *SupabaseAuth {
	client := gotrue.New("", serviceKey).
		WithCustomGoTrueURL(strings.TrimRight(baseURL, "/") + "/auth/v1").
		WithToken(serviceKey)
	return &SupabaseAuth{
		client:    client,
		transport: http.DefaultTransport,
		Timeout:   15 * time.Second,
		MaxPages:  50,
	}
}

// scopedTransport binds a request context and extra query parameters to
// every request, neither of which the admin client exposes.
type scopedTransport struct {
	ctx   context.Context
	query url.Values
	base  http.RoundTripper
}

func (t *scopedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.WithContext(t.ctx)
	if len(t.query) > 0 {
		q := req.URL.Query()
		for key, values := range t.query {
			q[key] = values
		}
		req.URL.RawQuery = q.Encode()
	}
	return t.base.RoundTrip(req)
}

func (a *SupabaseAuth) with(ctx context.Context, query url.Values) gotrue.Client {
	return a.client.WithClient(http.Client{
		Timeout:   a.Timeout,
		Transport: &scopedTransport{ctx: ctx, query: query, base: a.transport},
	})
}

var statusPattern = regexp.MustCompile(`(?s)^response status code (\d+)(?:: (.*))?$`)

type authAPIError struct {
	ErrorCode string `json:"error_code"`
	Msg       string `json:"msg"`
	Message   string `json:"message"`
	ErrorDesc string `json:"error_description"`
}

func (e authAPIError) text() string {
	for _, s := range []string{e.Msg, e.Message, e.ErrorDesc, e.ErrorCode} {
		if s != "" {
			return s
		}
	}
	return ""
}

// mapAuthError turns admin client failures into service errors.
func mapAuthError(op string, err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%w: auth %s: %v", service.ErrUnavailable, op, err)
	}
	match := statusPattern.FindStringSubmatch(err.Error())
	if match == nil {
		return fmt.Errorf("auth %s: %w", op, err)
	}
	status, _ := strconv.Atoi(match[1])
	raw := strings.TrimSpace(match[2])

	var apiErr authAPIError
	_ = json.Unmarshal([]byte(raw), &apiErr)
	msg := apiErr.text()
	if msg == "" {
		msg = raw
	}

	switch {
	case status == http.StatusNotFound || apiErr.ErrorCode == "user_not_found":
		return fmt.Errorf("%w: %s", service.ErrNotFound, msg)
	case apiErr.ErrorCode == "email_exists" || status == http.StatusConflict ||
		strings.Contains(strings.ToLower(msg), "already been registered"):
		return fmt.Errorf("%w: %s", service.ErrConflict, msg)
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", service.ErrValidation, msg)
	}
	return fmt.Errorf("auth %s: status %d: %s", op, status, msg)
}

func parseUserID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: auth user %q", service.ErrNotFound, id)
	}
	return parsed, nil
}

func toAuthUser(user types.User) *domain.AuthUser {
	out := &domain.AuthUser{ID: user.ID.String(), Email: user.Email}
	if !user.UpdatedAt.IsZero() {
		updated := user.UpdatedAt
		out.UpdatedAt = &updated
	}
	return out
}

func (a *SupabaseAuth) CreateUser(ctx context.Context, email, password string) (*domain.AuthUser, error) {
	resp, err := a.with(ctx, nil).AdminCreateUser(types.AdminCreateUserRequest{
		Email:        email,
		Password:     &password,
		EmailConfirm: true,
	})
	if err != nil {
		return nil, mapAuthError("create user", err)
	}
	return toAuthUser(resp.User), nil
}

func (a *SupabaseAuth) DeleteUser(ctx context.Context, id string) error {
	userID, err := parseUserID(id)
	if err != nil {
		return err
	}
	if err := a.with(ctx, nil).AdminDeleteUser(types.AdminDeleteUserRequest{UserID: userID}); err != nil {
		return mapAuthError("delete user", err)
	}
	return nil
}

func (a *SupabaseAuth) FindUserByEmail(ctx context.Context, email string) (*domain.AuthUser, error) {
	for page := 1; page <= a.MaxPages; page++ {
		query := url.Values{
			"page":     {strconv.Itoa(page)},
			"per_page": {strconv.Itoa(authUsersPerPage)},
		}
		resp, err := a.with(ctx, query).AdminListUsers()
		if err != nil {
			return nil, mapAuthError("list users", err)
		}
		for _, user := range resp.Users {
			if strings.EqualFold(user.Email, email) {
				return toAuthUser(user), nil
			}
		}
		if len(resp.Users) < authUsersPerPage {
			break
		}
	}
	return nil, fmt.Errorf("auth user %s: %w", email, service.ErrNotFound)
}

func (a *SupabaseAuth) UpdatePassword(ctx context.Context, id, password string) (*domain.AuthUser, error) {
	userID, err := parseUserID(id)
	if err != nil {
		return nil, err
	}
	resp, err := a.with(ctx, nil).AdminUpdateUser(types.AdminUpdateUserRequest{
		UserID:   userID,
		Password: password,
	})
	if err != nil {
		return nil, mapAuthError("update user", err)
	}
	return toAuthUser(resp.User), nil
}

var _ service.AuthProvider = (*SupabaseAuth)(nil)
