package http

import (
	"net/http"
	"strconv"
	"strings"

	"bizsuite-booking-backend/internal/domain"
	"bizsuite-booking-backend/internal/logger"
	"bizsuite-booking-backend/internal/repository"
	"bizsuite-booking-backend/internal/security"

	"golang.org/x/crypto/bcrypt"
)

type AuthMiddleware struct {
	tokens  security.TokenManager
	tenants repository.TenantRepository
}

func NewAuthMiddleware(tokens security.TokenManager, tenants repository.TenantRepository) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, tenants: tenants}
}

// StaffAuth validates the Bearer token and places the staff actor, with its
// tenant scope, on the request context.
func (m *AuthMiddleware) StaffAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			respondError(w, domain.NewPermissionDenied("missing bearer token"))
			return
		}

		claims, err := m.tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			respondError(w, domain.NewPermissionDenied("invalid or expired token"))
			return
		}

		actor := domain.Actor{
			TenantID: claims.TenantID,
			UserID:   claims.UserID,
			Roles:    claims.Roles,
		}
		next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
	})
}

// WidgetAuth authenticates public-widget requests with the per-tenant widget
// key. The key is stored bcrypt-hashed on the tenant record.
func (m *AuthMiddleware) WidgetAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tenantID, err := strconv.ParseInt(r.Header.Get("X-Tenant-ID"), 10, 32)
		if err != nil {
			respondError(w, domain.NewPermissionDenied("missing or invalid tenant id"))
			return
		}
		key := r.Header.Get("X-Widget-Key")
		if key == "" {
			respondError(w, domain.NewPermissionDenied("missing widget key"))
			return
		}

		tenant, err := m.tenants.GetByID(r.Context(), int32(tenantID))
		if err != nil {
			logger.Warn("Widget auth tenant lookup failed", "tenant_id", tenantID, "error", err)
			respondError(w, domain.NewPermissionDenied("unknown tenant"))
			return
		}
		if !tenant.IsActive {
			respondError(w, domain.NewPermissionDenied("tenant is not active"))
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(tenant.WidgetKeyHash), []byte(key)); err != nil {
			respondError(w, domain.NewPermissionDenied("invalid widget key"))
			return
		}

		next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), domain.WidgetActor(tenant.ID))))
	})
}

// Require applies the capability predicate before dispatching to the
// handler. Role checks happen only here, never inside scheduling logic.
func (m *AuthMiddleware) Require(cap security.Capability, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := ActorFromContext(r.Context())
		if !ok {
			respondError(w, domain.NewPermissionDenied("unauthenticated"))
			return
		}
		if err := security.Require(actor, cap); err != nil {
			respondError(w, err)
			return
		}
		next(w, r)
	}
}
