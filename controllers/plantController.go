package controllers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"landscape-portal-backend/database"
	"landscape-portal-backend/models"
	"landscape-portal-backend/utils"
)

type PlantInput struct {
	Name           string `json:"name"`
	ScientificName string `json:"scientific_name"`
	Description    string `json:"description"`
	UnitPrice      string `json:"unit_price"`
	Stock          string `json:"stock"`
	SupplierID     *uint  `json:"supplier_id"`
	Active         string `json:"active"`
}

// CreatePlants batch-creates catalog entries. Numeric fields arrive as text
// and are coerced (bad input becomes 0).
func CreatePlants(c *fiber.Ctx) error {
	var inputs []PlantInput
	if err := c.BodyParser(&inputs); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	db, err := database.GetRequestDB(c)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"message": "Database error",
			"error":   err.Error(),
		})
	}

	var created []models.Plant
	for i, input := range inputs {
		name := strings.TrimSpace(input.Name)
		if name == "" {
			return c.Status(400).JSON(fiber.Map{
				"message": fmt.Sprintf("Missing plant name at index %d", i),
			})
		}

		plant := models.Plant{
			Name:           name,
			ScientificName: strings.TrimSpace(input.ScientificName),
			Description:    strings.TrimSpace(input.Description),
			UnitPrice:      utils.ParseDecimal(input.UnitPrice),
			Stock:          utils.ParseInt(input.Stock),
			SupplierID:     input.SupplierID,
			Active:         utils.ParseBoolDefault(input.Active, true),
		}

		if err := db.Create(&plant).Error; err != nil {
			return c.Status(500).JSON(fiber.Map{
				"message": fmt.Sprintf("Could not create plant at index %d", i),
				"error":   err.Error(),
			})
		}
		created = append(created, plant)
	}

	return c.Status(201).JSON(created)
}

func GetPlants(c *fiber.Ctx) error {
	db, err := database.GetRequestDB(c)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"message": "Database error",
			"error":   err.Error(),
		})
	}

	q := db.Model(&models.Plant{}).Preload("Supplier")
	if c.Query("all") == "" {
		q = q.Where("active = ?", true)
	}

	var plants []models.Plant
	q.Find(&plants)
	return c.JSON(fiber.Map{
		"plants":  plants,
		"message": "success",
	})
}

func UpdatePlant(c *fiber.Ctx) error {
	var data map[string]string
	if err := c.BodyParser(&data); err != nil {
		return err
	}

	db, err := database.GetRequestDB(c)
	if err != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"message": "Internal Error",
			"error":   err.Error(),
		})
	}

	var plant models.Plant
	if err := db.First(&plant, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"message": "Plant not found"})
	}

	if v, ok := data["name"]; ok {
		plant.Name = strings.TrimSpace(v)
	}
	if v, ok := data["scientific_name"]; ok {
		plant.ScientificName = strings.TrimSpace(v)
	}
	if v, ok := data["description"]; ok {
		plant.Description = strings.TrimSpace(v)
	}
	if v, ok := data["unit_price"]; ok {
		plant.UnitPrice = utils.ParseDecimal(v)
	}
	if v, ok := data["stock"]; ok {
		plant.Stock = utils.ParseInt(v)
	}
	if v, ok := data["active"]; ok {
		plant.Active = utils.ParseBoolDefault(v, plant.Active)
	}

	if err := db.Save(&plant).Error; err != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"message": "Could not update plant",
			"error":   err.Error(),
		})
	}
	return c.JSON(plant)
}
