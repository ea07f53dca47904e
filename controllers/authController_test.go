package controllers

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestLogoutSetsNoCookie(t *testing.T) {
	app := fiber.New()
	app.Post("/api/logout", Logout)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/api/logout", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusOK)
	}
	if sc := resp.Header.Get("Set-Cookie"); sc != "" {
		t.Errorf("logout set a cookie (%q); auth is Bearer-only", sc)
	}
}
