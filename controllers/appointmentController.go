package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"landscape-portal-backend/database"
	"landscape-portal-backend/middlewares"
	"landscape-portal-backend/models"
	"landscape-portal-backend/utils"
)

type AppointmentInput struct {
	CustomerID  uint   `json:"customer_id" validate:"required"`
	PropertyID  *uint  `json:"property_id"`
	Service     string `json:"service" validate:"required"`
	ScheduledAt string `json:"scheduled_at" validate:"required"`
	Notes       string `json:"notes"`
}

type AppointmentPatch struct {
	Service     *string `json:"service"`
	ScheduledAt *string `json:"scheduled_at"`
	Status      *string `json:"status" validate:"omitempty,oneof=scheduled done cancelled"`
	Notes       *string `json:"notes"`
}

func CreateAppointment(c *fiber.Ctx) error {
	var input AppointmentInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}

	scheduledAt, err := time.Parse(time.RFC3339, input.ScheduledAt)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "scheduled_at must be RFC3339")
	}

	db, err := database.GetRequestDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "database unavailable")
	}

	appointment := models.Appointment{
		CustomerID:  input.CustomerID,
		PropertyID:  input.PropertyID,
		Service:     input.Service,
		ScheduledAt: scheduledAt,
		Status:      models.AppointmentScheduled,
		Notes:       input.Notes,
	}
	if err := db.Create(&appointment).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create appointment")
	}

	return c.Status(fiber.StatusCreated).JSON(appointment)
}

func UpdateAppointment(c *fiber.Ctx) error {
	var patch AppointmentPatch
	if err := middlewares.BindAndValidate(c, &patch); err != nil {
		return err
	}
	utils.NormalizePtrDTO(&patch)

	db, err := database.GetRequestDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "database unavailable")
	}

	updates := utils.UpdatesFromPtrDTO(&patch, nil)
	if v, ok := updates["scheduled_at"]; ok {
		scheduledAt, err := time.Parse(time.RFC3339, v.(string))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "scheduled_at must be RFC3339")
		}
		updates["scheduled_at"] = scheduledAt
	}
	if len(updates) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "no fields to update")
	}

	if err := db.Model(&models.Appointment{}).Where("id = ?", c.Params("id")).Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not update appointment")
	}

	var appointment models.Appointment
	if err := db.Preload("Customer").Preload("Property").First(&appointment, "id = ?", c.Params("id")).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "appointment not found")
	}
	return c.JSON(appointment)
}

// GetAppointments lists appointments, optionally scoped to a customer or an
// upcoming window (?days=N).
func GetAppointments(c *fiber.Ctx) error {
	db, err := database.GetRequestDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "database unavailable")
	}

	q := db.Model(&models.Appointment{}).Preload("Customer").Preload("Property")
	if customerID := c.Query("customer_id"); customerID != "" {
		q = q.Where("customer_id = ?", customerID)
	}
	if days := utils.ParseIntDefault(c.Query("days"), 0); days > 0 {
		now := time.Now()
		q = q.Where("scheduled_at BETWEEN ? AND ?", now, now.AddDate(0, 0, days)).
			Where("status = ?", models.AppointmentScheduled)
	}

	var appointments []models.Appointment
	if err := q.Order("scheduled_at ASC").Find(&appointments).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not list appointments")
	}
	return c.JSON(fiber.Map{"appointments": appointments, "message": "success"})
}
