package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func newRoleTestApp(role string, mw fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Get("/area",
		func(c *fiber.Ctx) error {
			if role != "" {
				c.Locals("userRole", role)
			}
			return c.Next()
		},
		mw,
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)
	return app
}

func TestOnlyRolesAllows(t *testing.T) {
	app := newRoleTestApp("trainer", OnlyRoles("trainers only", "trainer", "admin"))

	resp, err := app.Test(httptest.NewRequest("GET", "/area", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestOnlyRolesForbidsOtherRole(t *testing.T) {
	app := newRoleTestApp("member", OnlyRoles("trainers only", "trainer"))

	resp, err := app.Test(httptest.NewRequest("GET", "/area", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("status = %d, want 403", resp.StatusCode)
	}
}

func TestOnlyRolesMissingRole(t *testing.T) {
	app := newRoleTestApp("", OnlyRoles("trainers only", "trainer"))

	resp, err := app.Test(httptest.NewRequest("GET", "/area", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}
