package service

import (
	"github.com/maisondespoir/orphanage-api/internal/core/domain"
	"github.com/maisondespoir/orphanage-api/internal/core/ports"
)

// requireAuth rejects actors without an authenticated identity.
func requireAuth(actor ports.Claims) error {
	if actor.UserID == "" {
		return domain.ErrForbidden
	}
	return nil
}

// requireRole rejects actors that are unauthenticated or whose role is not in
// allowed. All service-level gates funnel through domain.Allowed.
func requireRole(actor ports.Claims, allowed []domain.Role) error {
	if actor.UserID == "" || !domain.Allowed(actor.Role, allowed) {
		return domain.ErrForbidden
	}
	return nil
}
