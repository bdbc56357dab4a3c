package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/heshima/studio-api/internal/api/metrics"
	"github.com/heshima/studio-api/internal/core/domain"
	"github.com/heshima/studio-api/internal/core/ports"
)

// Access is the requirement a policy rule places on a request.
type Access int

const (
	// Public requests need no identity at all.
	Public Access = iota
	// Authenticated requests need any valid identity.
	Authenticated
	// RequireRole requests need an identity holding the rule's role.
	RequireRole
)

// Rule matches requests by method and path and names the required access.
// Method "*" matches any method; Exact restricts the match to the path
// itself rather than the whole subtree.
type Rule struct {
	Method string
	Path   string
	Exact  bool
	Access Access
	Role   string
}

func (r Rule) matches(method, path string) bool {
	if r.Method != "*" && r.Method != method {
		return false
	}
	if r.Exact {
		return path == r.Path
	}
	return path == r.Path || strings.HasPrefix(path, strings.TrimSuffix(r.Path, "/")+"/")
}

// DefaultPolicy is the ordered access table for the studio API, evaluated
// top to bottom with first match winning:
//
//  1. browser preflight requests are public on every route
//  2. health probes and metrics are public
//  3. catalog reads are public
//  4. the inquiry submission endpoint is public
//  5. everything else under /api/inquiries is ADMIN only
//  6. any other route needs some authenticated identity
func DefaultPolicy() []Rule {
	return []Rule{
		// Preflight requests never carry credentials; the CORS middleware
		// answers them before any handler runs.
		{Method: http.MethodOptions, Path: "/", Access: Public},
		{Method: "*", Path: "/health", Access: Public},
		{Method: http.MethodGet, Path: "/metrics", Exact: true, Access: Public},
		{Method: http.MethodGet, Path: "/api/products", Access: Public},
		{Method: http.MethodPost, Path: "/api/inquiries", Exact: true, Access: Public},
		{Method: "*", Path: "/api/inquiries", Access: RequireRole, Role: domain.RoleAdmin},
	}
}

// Gate evaluates the policy table for every request and, where the matched
// rule demands it, authenticates the caller from the basic-auth header. On
// success the identity is injected into the request context under "email",
// "role", and "authority".
//
// Requests matching no rule require an authenticated identity.
func Gate(policy []Rule, auth ports.AuthService, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			rule := Rule{Method: "*", Access: Authenticated}
			for _, r := range policy {
				if r.matches(req.Method, req.URL.Path) {
					rule = r
					break
				}
			}

			if rule.Access == Public {
				return next(c)
			}

			email, password, ok := req.BasicAuth()
			if !ok {
				metrics.AuthDecisionsTotal.WithLabelValues("unauthorized").Inc()
				c.Response().Header().Set(echo.HeaderWWWAuthenticate, `Basic realm="heshima-studio"`)
				return domain.ErrUnauthorized
			}

			user, err := auth.Authenticate(req.Context(), email, password)
			if err != nil {
				metrics.AuthDecisionsTotal.WithLabelValues("unauthorized").Inc()
				log.Warn().Str("email", email).Str("path", req.URL.Path).Msg("authentication failed")
				c.Response().Header().Set(echo.HeaderWWWAuthenticate, `Basic realm="heshima-studio"`)
				return domain.ErrUnauthorized
			}

			if rule.Access == RequireRole && user.Role.Name != rule.Role {
				metrics.AuthDecisionsTotal.WithLabelValues("forbidden").Inc()
				log.Warn().
					Str("email", user.Email).
					Str("role", user.Role.Name).
					Str("required", rule.Role).
					Str("path", req.URL.Path).
					Msg("insufficient role")
				return domain.ErrForbidden
			}

			metrics.AuthDecisionsTotal.WithLabelValues("granted").Inc()
			c.Set("email", user.Email)
			c.Set("role", user.Role.Name)
			c.Set("authority", user.Authority())

			return next(c)
		}
	}
}
