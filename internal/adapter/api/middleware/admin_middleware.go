package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"unilagyard/internal/domain/repository"
)

type AdminMiddleware struct {
	userRepo    repository.UserRepository
	adminEmails map[string]bool
}

// NewAdminMiddleware grants admin access to users with the admin role or
// whose email appears in the configured allow-list. The allow-list lets the
// first admins bootstrap themselves before any role has been assigned.
func NewAdminMiddleware(userRepo repository.UserRepository, adminEmails []string) *AdminMiddleware {
	allowed := make(map[string]bool, len(adminEmails))
	for _, email := range adminEmails {
		allowed[email] = true
	}

	return &AdminMiddleware{
		userRepo:    userRepo,
		adminEmails: allowed,
	}
}

func (m *AdminMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		uid, ok := c.Get("uid").(string)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}

		user, err := m.userRepo.GetByID(c.Request().Context(), uid)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to verify admin privileges")
		}

		if user.Role != "admin" && !m.adminEmails[user.Email] {
			return echo.NewHTTPError(http.StatusForbidden, "Admin privileges required")
		}

		return next(c)
	}
}
