package controllers

import (
	"github.com/gofiber/fiber/v2"

	"landscape-portal-backend/database"
	"landscape-portal-backend/middlewares"
	"landscape-portal-backend/models"
	"landscape-portal-backend/utils"
)

type PropertyInput struct {
	CustomerID uint    `json:"customer_id" validate:"required"`
	Name       string  `json:"name" validate:"required"`
	Address    string  `json:"address" validate:"required"`
	City       string  `json:"city"`
	Province   string  `json:"province"`
	Zip        string  `json:"zip"`
	AreaSqm    float64 `json:"area_sqm" validate:"gte=0"`
	Notes      string  `json:"notes"`
}

type PropertyPatch struct {
	Name     *string  `json:"name"`
	Address  *string  `json:"address"`
	City     *string  `json:"city"`
	Province *string  `json:"province"`
	Zip      *string  `json:"zip"`
	AreaSqm  *float64 `json:"area_sqm"`
	Notes    *string  `json:"notes"`
}

func CreateProperty(c *fiber.Ctx) error {
	var input PropertyInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}
	utils.NormalizeDTO(&input)

	db, err := database.GetRequestDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "database unavailable")
	}

	property := models.Property{
		CustomerID: input.CustomerID,
		Name:       input.Name,
		Address:    input.Address,
		City:       input.City,
		Province:   input.Province,
		Zip:        input.Zip,
		AreaSqm:    input.AreaSqm,
		Notes:      input.Notes,
	}
	if err := db.Create(&property).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create property")
	}

	return c.Status(fiber.StatusCreated).JSON(property)
}

func UpdateProperty(c *fiber.Ctx) error {
	var patch PropertyPatch
	if err := c.BodyParser(&patch); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	utils.NormalizePtrDTO(&patch)

	db, err := database.GetRequestDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "database unavailable")
	}

	updates := utils.UpdatesFromPtrDTO(&patch, nil)
	if len(updates) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "no fields to update")
	}

	if err := db.Model(&models.Property{}).Where("id = ?", c.Params("id")).Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not update property")
	}

	var property models.Property
	if err := db.Preload("Customer").First(&property, "id = ?", c.Params("id")).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "property not found")
	}
	return c.JSON(property)
}

func GetProperties(c *fiber.Ctx) error {
	db, err := database.GetRequestDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "database unavailable")
	}

	q := db.Model(&models.Property{}).Preload("Customer")
	if customerID := c.Query("customer_id"); customerID != "" {
		q = q.Where("customer_id = ?", customerID)
	}

	var properties []models.Property
	if err := q.Find(&properties).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not list properties")
	}
	return c.JSON(fiber.Map{"properties": properties, "message": "success"})
}

func GetProperty(c *fiber.Ctx) error {
	db, err := database.GetRequestDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "database unavailable")
	}

	var property models.Property
	if err := db.Preload("Customer").First(&property, "id = ?", c.Params("id")).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "property not found")
	}
	return c.JSON(property)
}
