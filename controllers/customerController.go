package controllers

import (
	"github.com/gofiber/fiber/v2"

	"landscape-portal-backend/database"
	"landscape-portal-backend/models"
)

func CreateCustomer(c *fiber.Ctx) error {
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

	customer := models.Customer{
		FirstName:    data["first_name"],
		LastName:     data["last_name"],
		Email:        data["email"],
		PhoneNumber:  data["phone_number"],
		MobileNumber: data["mobile_number"],
		Address:      data["address"],
		City:         data["city"],
		Province:     data["province"],
		Zip:          data["zip"],
		TaxID:        data["tax_id"],
		Active:       true,
	}

	if err := db.Create(&customer).Error; err != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"message": "Could not create customer",
			"error":   err.Error(),
		})
	}

	return c.JSON(customer)
}

func UpdateCustomer(c *fiber.Ctx) error {
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

	customer := models.Customer{
		PhoneNumber:  data["phone_number"],
		MobileNumber: data["mobile_number"],
		Address:      data["address"],
		City:         data["city"],
		Province:     data["province"],
		Zip:          data["zip"],
		TaxID:        data["tax_id"],
		Email:        data["email"],
	}

	if err := db.Model(&customer).Where("id = ?", c.Params("id")).Updates(&customer).Error; err != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"message": "Could not update customer",
			"error":   err.Error(),
		})
	}
	return c.JSON(customer)
}

func GetCustomers(c *fiber.Ctx) error {
	db, err := database.GetRequestDB(c)
	if err != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"message": "Internal Error",
			"error":   err.Error(),
		})
	}

	var customers []models.Customer
	db.Model(&models.Customer{}).Find(&customers)
	return c.JSON(fiber.Map{
		"customers": customers,
		"message":   "success",
	})
}

func GetCustomer(c *fiber.Ctx) error {
	db, err := database.GetRequestDB(c)
	if err != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"message": "Internal Error",
			"error":   err.Error(),
		})
	}

	var customer models.Customer
	if err := db.First(&customer, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"message": "Customer not found"})
	}
	return c.JSON(customer)
}
