package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinic-backend/internal/domain/entity"
)

func requestWithRole(roleID int) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(req.Context(), RoleIDKey, roleID)
	return req.WithContext(ctx)
}

func okHandler() (http.Handler, *bool) {
	called := false
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}), &called
}

func TestRequireRoleAllows(t *testing.T) {
	next, called := okHandler()
	rec := httptest.NewRecorder()

	RequireRole(entity.RoleIDDoctor)(next).ServeHTTP(rec, requestWithRole(entity.RoleIDDoctor))

	if !*called {
		t.Fatal("expected next handler to be called")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestRequireRoleForbids(t *testing.T) {
	next, called := okHandler()
	rec := httptest.NewRecorder()

	RequireRole(entity.RoleIDAdmin)(next).ServeHTTP(rec, requestWithRole(entity.RoleIDPatient))

	if *called {
		t.Fatal("expected next handler not to be called")
	}
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestRequireRoleMissingContext(t *testing.T) {
	next, called := okHandler()
	rec := httptest.NewRecorder()

	RequireRole(entity.RoleIDAdmin)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if *called {
		t.Fatal("expected next handler not to be called")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestRequireRoleMultipleRoles(t *testing.T) {
	next, _ := okHandler()

	for _, roleID := range []int{entity.RoleIDAdmin, entity.RoleIDDoctor} {
		rec := httptest.NewRecorder()
		RequireAdminOrDoctor(next).ServeHTTP(rec, requestWithRole(roleID))
		if rec.Code != http.StatusOK {
			t.Errorf("role %d: status = %d, want 200", roleID, rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	RequireAdminOrDoctor(next).ServeHTTP(rec, requestWithRole(entity.RoleIDPatient))
	if rec.Code != http.StatusForbidden {
		t.Errorf("patient: status = %d, want 403", rec.Code)
	}
}

func TestContextAccessors(t *testing.T) {
	ctx := context.Background()

	if _, ok := GetRoleIDFromContext(ctx); ok {
		t.Error("expected missing role ID")
	}
	if _, ok := GetUserEmailFromContext(ctx); ok {
		t.Error("expected missing email")
	}

	ctx = context.WithValue(ctx, UserEmailKey, "doc@example.com")
	ctx = context.WithValue(ctx, RoleIDKey, entity.RoleIDDoctor)

	email, ok := GetUserEmailFromContext(ctx)
	if !ok || email != "doc@example.com" {
		t.Errorf("email = %q, ok = %v", email, ok)
	}
	roleID, ok := GetRoleIDFromContext(ctx)
	if !ok || roleID != entity.RoleIDDoctor {
		t.Errorf("roleID = %d, ok = %v", roleID, ok)
	}
}
