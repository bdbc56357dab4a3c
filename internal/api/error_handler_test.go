package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/heshima/studio-api/internal/api/middleware"
	"github.com/heshima/studio-api/internal/core/domain"
)

type stubAuthService struct {
	users map[string]*domain.User // email+":"+password
}

func (s *stubAuthService) Authenticate(_ context.Context, email, password string) (*domain.User, error) {
	if u, ok := s.users[email+":"+password]; ok {
		return u, nil
	}
	return nil, domain.ErrInvalidCredentials
}

// newTestServer wires the error handler and the authorization gate around
// stub handlers, so status codes and envelopes can be asserted end to end
// without a backing store.
func newTestServer() *echo.Echo {
	auth := &stubAuthService{users: map[string]*domain.User{
		"admin@heshima.studio:password123": {
			Email: "admin@heshima.studio",
			Role:  domain.Role{Name: domain.RoleAdmin},
		},
		"viewer@heshima.studio:hunter2": {
			Email: "viewer@heshima.studio",
			Role:  domain.Role{Name: domain.RoleUser},
		},
	}}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())
	e.Use(echomiddleware.CORS())
	e.Use(middleware.Gate(middleware.DefaultPolicy(), auth, zerolog.Nop()))

	e.GET("/api/inquiries", func(c echo.Context) error {
		return c.JSON(http.StatusOK, []string{})
	})
	e.DELETE("/api/inquiries/:id", func(c echo.Context) error {
		return fmt.Errorf("delete inquiry %s: %w", c.Param("id"), domain.ErrInquiryNotFound)
	})
	e.GET("/api/products/:id", func(c echo.Context) error {
		return domain.ErrProductNotFound
	})
	e.GET("/api/boom", func(c echo.Context) error {
		return errors.New("connection to 10.0.0.3 refused")
	})
	return e
}

func doRequest(e *echo.Echo, method, path string, creds [2]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if creds[0] != "" {
		req.SetBasicAuth(creds[0], creds[1])
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error envelope: %v (%s)", err, rec.Body.String())
	}
	for _, field := range []string{"timestamp", "status", "error", "message", "path"} {
		if _, ok := body[field]; !ok {
			t.Errorf("envelope missing %q: %s", field, rec.Body.String())
		}
	}
	return body
}

func TestAuthorizationMatrix(t *testing.T) {
	e := newTestServer()

	cases := []struct {
		name  string
		creds [2]string
		want  int
	}{
		{"anonymous", [2]string{}, http.StatusUnauthorized},
		{"wrong role", [2]string{"viewer@heshima.studio", "hunter2"}, http.StatusForbidden},
		{"admin", [2]string{"admin@heshima.studio", "password123"}, http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(e, http.MethodGet, "/api/inquiries", tc.creds)
			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d (%s)", tc.want, rec.Code, rec.Body.String())
			}
			if tc.want != http.StatusOK {
				body := decodeEnvelope(t, rec)
				if body["status"] != float64(tc.want) {
					t.Errorf("envelope status mismatch: %v", body["status"])
				}
				if body["path"] != "/api/inquiries" {
					t.Errorf("envelope path mismatch: %v", body["path"])
				}
			}
		})
	}
}

func TestPreflightNeedsNoCredentials(t *testing.T) {
	e := newTestServer()

	req := httptest.NewRequest(http.MethodOptions, "/api/inquiries/inq-1", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:3000")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodDelete)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("anonymous preflight must succeed, got %d (%s)", rec.Code, rec.Body.String())
	}
	if rec.Header().Get(echo.HeaderAccessControlAllowOrigin) == "" {
		t.Error("preflight response missing Access-Control-Allow-Origin")
	}
}

func TestAnonymousGetsChallenge(t *testing.T) {
	e := newTestServer()

	rec := doRequest(e, http.MethodGet, "/api/inquiries", [2]string{})
	if got := rec.Header().Get(echo.HeaderWWWAuthenticate); got == "" {
		t.Error("401 response must carry a WWW-Authenticate challenge")
	}
}

func TestDomainErrorsMapToStatusCodes(t *testing.T) {
	e := newTestServer()

	rec := doRequest(e, http.MethodDelete, "/api/inquiries/inq-404", [2]string{"admin@heshima.studio", "password123"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d (%s)", rec.Code, rec.Body.String())
	}
	body := decodeEnvelope(t, rec)
	if body["error"] != http.StatusText(http.StatusNotFound) {
		t.Errorf("unexpected error phrase: %v", body["error"])
	}

	rec = doRequest(e, http.MethodGet, "/api/products/prod-404", [2]string{})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing product, got %d", rec.Code)
	}
}

func TestUnexpectedErrorHidesDetails(t *testing.T) {
	e := newTestServer()

	rec := doRequest(e, http.MethodGet, "/api/boom", [2]string{"admin@heshima.studio", "password123"})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	if body["message"] != "internal server error" {
		t.Errorf("internal details must not leak: %v", body["message"])
	}
}
