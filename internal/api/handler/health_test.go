package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
)

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error {
	return p.err
}

func TestHealthHandler_Liveness(t *testing.T) {
	h := NewHealthHandler()

	c, rec := newTestContext(t, http.MethodGet, "/health", "")
	if err := h.Liveness(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReadinessHandler_AllHealthy(t *testing.T) {
	h := &ReadinessHandler{mongo: stubPinger{}, redis: stubPinger{}}

	c, rec := newTestContext(t, http.MethodGet, "/health/ready", "")
	if err := h.Readiness(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp readinessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("expected status ok, got %q", resp.Status)
	}
	for _, name := range []string{"mongodb", "redis"} {
		if resp.Dependencies[name].Status != "ok" {
			t.Errorf("dependency %s not ok: %+v", name, resp.Dependencies[name])
		}
	}
}

func TestReadinessHandler_Degraded(t *testing.T) {
	cases := []struct {
		name  string
		mongo stubPinger
		redis stubPinger
		down  string
	}{
		{"mongo down", stubPinger{err: errors.New("server selection timeout")}, stubPinger{}, "mongodb"},
		{"redis down", stubPinger{}, stubPinger{err: errors.New("connection refused")}, "redis"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := &ReadinessHandler{mongo: tc.mongo, redis: tc.redis}

			c, rec := newTestContext(t, http.MethodGet, "/health/ready", "")
			if err := h.Readiness(c); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rec.Code != http.StatusServiceUnavailable {
				t.Fatalf("expected 503, got %d", rec.Code)
			}

			var resp readinessResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid response body: %v", err)
			}
			if resp.Status != "degraded" {
				t.Errorf("expected status degraded, got %q", resp.Status)
			}
			dep := resp.Dependencies[tc.down]
			if dep.Status != "unhealthy" || dep.Error == "" {
				t.Errorf("failing dependency %s not reported: %+v", tc.down, dep)
			}
		})
	}
}
