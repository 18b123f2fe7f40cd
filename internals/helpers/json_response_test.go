package helper

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(45, 2, 20)

	if p.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", p.TotalPages)
	}
	if !p.HasNext {
		t.Error("page 2 of 3 should have next")
	}
	if !p.HasPrev {
		t.Error("page 2 of 3 should have prev")
	}

	last := BuildPaginationFromPage(45, 3, 20)
	if last.HasNext {
		t.Error("last page should not have next")
	}
}

func TestResolvePaging(t *testing.T) {
	app := fiber.New()

	var got Paging
	app.Get("/x", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 20, 100)
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/x?page=3&per_page=500", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	resp.Body.Close()

	if got.Page != 3 {
		t.Errorf("Page = %d, want 3", got.Page)
	}
	if got.PerPage != 100 {
		t.Errorf("PerPage capped = %d, want 100", got.PerPage)
	}
	if got.Offset != 200 {
		t.Errorf("Offset = %d, want 200", got.Offset)
	}
}

func TestJsonErrorEnvelope(t *testing.T) {
	app := fiber.New()
	app.Get("/missing", func(c *fiber.Ctx) error {
		return JsonError(c, fiber.StatusNotFound, "Session not found")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/missing", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}

	raw, _ := io.ReadAll(resp.Body)
	var body ErrorResponse
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Success {
		t.Error("success should be false")
	}
	if body.ErrorCode != "NOT_FOUND" {
		t.Errorf("ErrorCode = %q, want NOT_FOUND", body.ErrorCode)
	}
	if body.Message != "Session not found" {
		t.Errorf("Message = %q", body.Message)
	}
}

func TestStatusToErrorCode(t *testing.T) {
	cases := map[int]string{
		fiber.StatusBadRequest:          "BAD_REQUEST",
		fiber.StatusConflict:            "CONFLICT",
		fiber.StatusInternalServerError: "INTERNAL_ERROR",
		fiber.StatusTeapot:              "ERROR",
	}
	for status, want := range cases {
		if got := statusToErrorCode(status); got != want {
			t.Errorf("statusToErrorCode(%d) = %q, want %q", status, got, want)
		}
	}
}
