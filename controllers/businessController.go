package controllers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"landscape-portal-backend/database"
	"landscape-portal-backend/middlewares"
	"landscape-portal-backend/models"
)

type BusinessProfileDTO struct {
	CompanyName string `json:"company_name" validate:"required,min=1"`
	Address     string `json:"address" validate:"required,min=1"`
	City        string `json:"city" validate:"required,min=1"`
	Province    string `json:"province" validate:"omitempty"`
	Zip         string `json:"zip" validate:"required,min=1"`
	Homepage    string `json:"homepage" validate:"omitempty,url"`
	TaxID       string `json:"tax_id" validate:"omitempty"`
	PhoneNumber string `json:"phone_number" validate:"omitempty"`
	Email       string `json:"email" validate:"omitempty,email"`
}

// GET /api/business
func GetBusinessProfile(c *fiber.Ctx) error {
	db, err := database.GetRequestDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "database unavailable")
	}

	var profile models.BusinessProfile
	if err := db.First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "business profile not set up")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}
	return c.JSON(profile)
}

// PUT /api/business upserts the single profile row.
func UpsertBusinessProfile(c *fiber.Ctx) error {
	var in BusinessProfileDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	db, err := database.GetRequestDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "database unavailable")
	}

	var profile models.BusinessProfile
	err = db.First(&profile).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}

	profile.CompanyName = strings.TrimSpace(in.CompanyName)
	profile.Address = strings.TrimSpace(in.Address)
	profile.City = strings.TrimSpace(in.City)
	profile.Province = strings.TrimSpace(in.Province)
	profile.Zip = strings.TrimSpace(in.Zip)
	profile.Homepage = strings.TrimSpace(in.Homepage)
	profile.TaxID = strings.TrimSpace(in.TaxID)
	profile.PhoneNumber = strings.TrimSpace(in.PhoneNumber)
	profile.Email = strings.TrimSpace(in.Email)

	if profile.Id == "" {
		if err := db.Create(&profile).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "could not create business profile")
		}
	} else {
		if err := db.Save(&profile).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "could not update business profile")
		}
	}
	return c.JSON(profile)
}

// businessHeader loads the profile for document output. Missing profile is
// not an error, documents just render without a header.
func businessHeader(db *gorm.DB) *models.BusinessProfile {
	var profile models.BusinessProfile
	if err := db.First(&profile).Error; err != nil {
		return nil
	}
	return &profile
}
