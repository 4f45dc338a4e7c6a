package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/healthtrackplus/healthtrack-backend/internal/auth"
	"github.com/healthtrackplus/healthtrack-backend/internal/dto"
	"github.com/healthtrackplus/healthtrack-backend/internal/services"
)

// RecordsHandler serves the authenticated patient surface.
type RecordsHandler struct {
	records *services.RecordService
}

func NewRecordsHandler(records *services.RecordService) *RecordsHandler {
	return &RecordsHandler{records: records}
}

// Dashboard handles GET /dashboard
func (h *RecordsHandler) Dashboard(c *fiber.Ctx) error {
	userID, err := auth.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	dashboard, err := h.records.GetDashboard(userID)
	if err != nil {
		return serverError(c, "Failed to load dashboard")
	}
	return c.JSON(dashboard)
}

// ListMedicines handles GET /medicines
func (h *RecordsHandler) ListMedicines(c *fiber.Ctx) error {
	userID, err := auth.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	medicines, activeCount, err := h.records.ListMedicines(userID)
	if err != nil {
		return serverError(c, "Failed to fetch medicines")
	}
	return c.JSON(fiber.Map{"medicines": medicines, "active_count": activeCount})
}

// CreateMedicine handles POST /medicines
func (h *RecordsHandler) CreateMedicine(c *fiber.Ctx) error {
	userID, err := auth.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateMedicineRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}
	if errs := req.Validate(); !errs.Ok() {
		return validationFailed(c, errs)
	}

	medicine, err := h.records.CreateMedicine(userID, &req, c.IP())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(medicine)
}

// ListHealthRecords handles GET /health-track
func (h *RecordsHandler) ListHealthRecords(c *fiber.Ctx) error {
	userID, err := auth.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	records, err := h.records.ListHealthRecords(userID)
	if err != nil {
		return serverError(c, "Failed to fetch health records")
	}
	return c.JSON(fiber.Map{"records": records})
}

// CreateHealthRecord handles POST /health-track
func (h *RecordsHandler) CreateHealthRecord(c *fiber.Ctx) error {
	userID, err := auth.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateHealthRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}
	if errs := req.Validate(); !errs.Ok() {
		return validationFailed(c, errs)
	}

	record, err := h.records.CreateHealthRecord(userID, &req, c.IP())
	if err != nil {
		return serverError(c, "Failed to create health record")
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

// ListMentalHealthLogs handles GET /mental-health
func (h *RecordsHandler) ListMentalHealthLogs(c *fiber.Ctx) error {
	userID, err := auth.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	summary, err := h.records.ListMentalHealthLogs(userID)
	if err != nil {
		return serverError(c, "Failed to fetch mental health logs")
	}
	return c.JSON(summary)
}

// CreateMentalHealthLog handles POST /mental-health
func (h *RecordsHandler) CreateMentalHealthLog(c *fiber.Ctx) error {
	userID, err := auth.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateMentalHealthLogRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}
	if errs := req.Validate(); !errs.Ok() {
		return validationFailed(c, errs)
	}

	log, err := h.records.CreateMentalHealthLog(userID, &req, c.IP())
	if err != nil {
		return serverError(c, "Failed to create mental health log")
	}
	return c.Status(fiber.StatusCreated).JSON(log)
}

// ListPrescriptions handles GET /prescriptions
func (h *RecordsHandler) ListPrescriptions(c *fiber.Ctx) error {
	userID, err := auth.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	prescriptions, err := h.records.ListPrescriptions(userID)
	if err != nil {
		return serverError(c, "Failed to fetch prescriptions")
	}
	return c.JSON(fiber.Map{"prescriptions": prescriptions})
}

// CreatePrescription handles POST /prescriptions
func (h *RecordsHandler) CreatePrescription(c *fiber.Ctx) error {
	userID, err := auth.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreatePrescriptionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}
	if errs := req.Validate(); !errs.Ok() {
		return validationFailed(c, errs)
	}

	prescription, err := h.records.CreatePrescription(userID, &req, c.IP())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(prescription)
}

// ListLifestyleLogs handles GET /lifestyle
func (h *RecordsHandler) ListLifestyleLogs(c *fiber.Ctx) error {
	userID, err := auth.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	logs, err := h.records.ListLifestyleLogs(userID)
	if err != nil {
		return serverError(c, "Failed to fetch lifestyle logs")
	}
	return c.JSON(fiber.Map{"logs": logs})
}

// CreateLifestyleLog handles POST /lifestyle
func (h *RecordsHandler) CreateLifestyleLog(c *fiber.Ctx) error {
	userID, err := auth.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateLifestyleLogRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}
	if errs := req.Validate(); !errs.Ok() {
		return validationFailed(c, errs)
	}

	log, err := h.records.CreateLifestyleLog(userID, &req, c.IP())
	if err != nil {
		return serverError(c, "Failed to create lifestyle log")
	}
	return c.Status(fiber.StatusCreated).JSON(log)
}

// ListInsurancePolicies handles GET /insurance
func (h *RecordsHandler) ListInsurancePolicies(c *fiber.Ctx) error {
	userID, err := auth.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	policies, activeCount, err := h.records.ListInsurancePolicies(userID)
	if err != nil {
		return serverError(c, "Failed to fetch insurance policies")
	}
	return c.JSON(fiber.Map{"policies": policies, "active_policies": activeCount})
}

// CreateInsurancePolicy handles POST /insurance
func (h *RecordsHandler) CreateInsurancePolicy(c *fiber.Ctx) error {
	userID, err := auth.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateInsurancePolicyRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}
	if errs := req.Validate(); !errs.Ok() {
		return validationFailed(c, errs)
	}

	policy, err := h.records.CreateInsurancePolicy(userID, &req, c.IP())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(policy)
}

// PastRecords handles GET /past-records
func (h *RecordsHandler) PastRecords(c *fiber.Ctx) error {
	userID, err := auth.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	past, err := h.records.GetPastRecords(userID)
	if err != nil {
		return serverError(c, "Failed to fetch past records")
	}
	return c.JSON(past)
}

// GetProfile handles GET /profile
func (h *RecordsHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := auth.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	user, err := h.records.GetProfile(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "User not found",
		})
	}
	return c.JSON(user)
}

// UpdateProfile handles PUT /profile
func (h *RecordsHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, err := auth.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}

	user, err := h.records.UpdateProfile(userID, &req, c.IP())
	if err != nil {
		return serverError(c, "Failed to update profile")
	}
	return c.JSON(user)
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: "Unauthorized",
	})
}

func badRequest(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: "Invalid request body",
	})
}

func serverError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: message,
	})
}

func validationFailed(c *fiber.Ctx, errs dto.FieldErrors) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{
		Error: true, Message: "Validation failed", Fields: errs,
	})
}
