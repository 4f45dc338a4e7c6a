package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/healthtrackplus/healthtrack-backend/internal/auth"
	"github.com/healthtrackplus/healthtrack-backend/internal/dto"
	"github.com/healthtrackplus/healthtrack-backend/internal/services"
	"gorm.io/gorm"
)

// AdminHandler serves the /admin-panel surface. The route group carries the
// admin middleware, but every handler re-checks the admin predicate itself:
// a guard on route placement alone is not enough if a handler becomes
// reachable some other way.
type AdminHandler struct {
	db       *gorm.DB
	admin    *services.AdminService
	reports  *services.ReportService
	settings *services.SettingsService
}

func NewAdminHandler(db *gorm.DB, admin *services.AdminService, reports *services.ReportService, settings *services.SettingsService) *AdminHandler {
	return &AdminHandler{db: db, admin: admin, reports: reports, settings: settings}
}

// requireAdmin re-derives the acting admin from the request and rejects
// non-admin callers. errAdminDenied signals the response is already written.
var errAdminDenied = errors.New("admin access denied")

func (h *AdminHandler) requireAdmin(c *fiber.Ctx) (uuid.UUID, error) {
	user, err := auth.CurrentUser(c, h.db)
	if err != nil {
		if err := c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		}); err != nil {
			return uuid.Nil, err
		}
		return uuid.Nil, errAdminDenied
	}
	if !user.IsAdmin() {
		if err := c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Admin access required",
		}); err != nil {
			return uuid.Nil, err
		}
		return uuid.Nil, errAdminDenied
	}
	return user.ID, nil
}

// Dashboard handles GET /admin-panel
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	if _, err := h.requireAdmin(c); err != nil {
		return nil
	}

	dashboard, err := h.admin.GetDashboard()
	if err != nil {
		return serverError(c, "Failed to load admin dashboard")
	}
	return c.JSON(dashboard)
}

// ListUsers handles GET /admin-panel/users?type=&search=
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	if _, err := h.requireAdmin(c); err != nil {
		return nil
	}

	users, err := h.admin.ListUsers(c.Query("type", "all"), c.Query("search"))
	if err != nil {
		return serverError(c, "Failed to fetch users")
	}
	return c.JSON(fiber.Map{"users": users})
}

// UserDetail handles GET /admin-panel/users/:id
func (h *AdminHandler) UserDetail(c *fiber.Ctx) error {
	if _, err := h.requireAdmin(c); err != nil {
		return nil
	}

	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c)
	}

	detail, err := h.admin.GetUserDetail(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return notFound(c, "User not found")
		}
		return serverError(c, "Failed to fetch user")
	}
	return c.JSON(detail)
}

// ApproveUser handles POST /admin-panel/users/:id/approve
func (h *AdminHandler) ApproveUser(c *fiber.Ctx) error {
	adminID, err := h.requireAdmin(c)
	if err != nil {
		return nil
	}

	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c)
	}

	user, err := h.admin.ApproveUser(adminID, userID, c.IP())
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return notFound(c, "User not found")
		}
		return serverError(c, "Failed to approve user")
	}
	return c.JSON(fiber.Map{
		"message": "User " + user.Username + " has been approved",
		"user":    user,
	})
}

// RejectUser handles POST /admin-panel/users/:id/reject
func (h *AdminHandler) RejectUser(c *fiber.Ctx) error {
	adminID, err := h.requireAdmin(c)
	if err != nil {
		return nil
	}

	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c)
	}

	if err := h.admin.RejectUser(adminID, userID, c.IP()); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return notFound(c, "User not found")
		}
		if errors.Is(err, services.ErrAlreadyApproved) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: "Cannot reject an approved user; delete instead",
			})
		}
		return serverError(c, "Failed to reject user")
	}
	return c.JSON(fiber.Map{"message": "Registration rejected"})
}

// DeleteUser handles DELETE /admin-panel/users/:id
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	adminID, err := h.requireAdmin(c)
	if err != nil {
		return nil
	}

	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c)
	}

	if err := h.admin.DeleteUser(adminID, userID, c.IP()); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return notFound(c, "User not found")
		}
		return serverError(c, "Failed to delete user")
	}
	return c.JSON(fiber.Map{"message": "User has been deleted"})
}

// ListProviders handles GET /admin-panel/providers
func (h *AdminHandler) ListProviders(c *fiber.Ctx) error {
	if _, err := h.requireAdmin(c); err != nil {
		return nil
	}

	providers, err := h.admin.ListProviders()
	if err != nil {
		return serverError(c, "Failed to fetch providers")
	}
	return c.JSON(fiber.Map{"providers": providers})
}

// HealthData handles GET /admin-panel/health-data
func (h *AdminHandler) HealthData(c *fiber.Ctx) error {
	if _, err := h.requireAdmin(c); err != nil {
		return nil
	}

	overview, err := h.admin.GetHealthData()
	if err != nil {
		return serverError(c, "Failed to fetch health data")
	}
	return c.JSON(overview)
}

// Reports handles GET /admin-panel/reports
func (h *AdminHandler) Reports(c *fiber.Ctx) error {
	if _, err := h.requireAdmin(c); err != nil {
		return nil
	}

	reports, err := h.reports.GetReports()
	if err != nil {
		return serverError(c, "Failed to compute reports")
	}
	return c.JSON(reports)
}

// ListSettings handles GET /admin-panel/settings
func (h *AdminHandler) ListSettings(c *fiber.Ctx) error {
	if _, err := h.requireAdmin(c); err != nil {
		return nil
	}

	settings, err := h.settings.List()
	if err != nil {
		return serverError(c, "Failed to fetch settings")
	}
	return c.JSON(fiber.Map{"settings": settings})
}

// UpsertSetting handles POST /admin-panel/settings
func (h *AdminHandler) UpsertSetting(c *fiber.Ctx) error {
	adminID, err := h.requireAdmin(c)
	if err != nil {
		return nil
	}

	var req dto.UpsertSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}
	if errs := req.Validate(); !errs.Ok() {
		return validationFailed(c, errs)
	}

	setting, err := h.settings.Upsert(adminID, &req, c.IP())
	if err != nil {
		return serverError(c, "Failed to save setting")
	}
	return c.JSON(fiber.Map{"message": "Setting saved successfully", "setting": setting})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
		Error: true, Message: message,
	})
}
