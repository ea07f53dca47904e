package routes

import (
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestRegisterWiresSupplierAndBusinessRoutes(t *testing.T) {
	app := fiber.New()
	Register(app)

	want := []struct {
		method string
		path   string
	}{
		{fiber.MethodPost, "/api/supplier"},
		{fiber.MethodGet, "/api/suppliers"},
		{fiber.MethodPut, "/api/supplier/:id"},
		{fiber.MethodGet, "/api/business"},
		{fiber.MethodPut, "/api/business"},
	}

	registered := app.GetRoutes()
	for _, w := range want {
		found := false
		for _, r := range registered {
			if r.Method == w.method && r.Path == w.path {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("route %s %s not registered", w.method, w.path)
		}
	}
}
