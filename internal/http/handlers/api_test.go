package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"craftpress/internal/config"
	"craftpress/internal/http/handlers"
	"craftpress/internal/repos"
)

func testApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })

	deps := handlers.NewDeps(db, config.Config{PublicOrigin: "http://localhost:8080"})

	app := fiber.New()
	app.Use(requestid.New())
	api := app.Group("/api/v1")
	api.Get("/products/:handle", deps.ProductHandler.Snapshot)
	api.Get("/preview/:handle", deps.PreviewHandler.Instructions)
	api.Post("/designs", deps.DesignHandler.Save)
	api.Get("/designs/:id", deps.DesignHandler.Get)
	return app
}

func TestSnapshotEndpoint(t *testing.T) {
	app := testApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/products/rooster-mug", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}

	var snap struct {
		Handle   string `json:"handle"`
		Variants []struct {
			ID         string            `json:"id"`
			Attributes map[string]string `json:"attributes"`
			DesignZone *struct {
				Width float64 `json:"width"`
			} `json:"designZone"`
		} `json:"variants"`
		Templates []struct {
			ID     string `json:"id"`
			Fields []struct {
				Key     string          `json:"key"`
				Type    string          `json:"type"`
				Config  json.RawMessage `json:"config"`
				Options []struct {
					ID string `json:"id"`
				} `json:"options"`
			} `json:"fields"`
		} `json:"templates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		t.Fatal(err)
	}

	if snap.Handle != "rooster-mug" || len(snap.Variants) != 4 {
		t.Fatalf("snapshot shape wrong: %+v", snap)
	}
	// JSON columns are served decoded, not as raw strings
	v := snap.Variants[0]
	if v.Attributes["color"] != "White" || v.Attributes["size"] != "11 oz" {
		t.Fatalf("attributes not decoded: %+v", v)
	}
	if v.DesignZone == nil || v.DesignZone.Width != 35 {
		t.Fatalf("design zone not decoded: %+v", v.DesignZone)
	}
	if len(snap.Templates) != 1 || len(snap.Templates[0].Fields) != 2 {
		t.Fatalf("templates wrong: %+v", snap.Templates)
	}
	if got := len(snap.Templates[0].Fields[1].Options); got != 10 {
		t.Fatalf("want 10 field options, got %d", got)
	}
}

func TestSnapshotNotFound(t *testing.T) {
	app := testApp(t)

	for _, path := range []string{
		"/api/v1/products/no-such-mug",
		"/api/v1/products/..%2Fetc",
	} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != fiber.StatusNotFound {
			t.Fatalf("%s: want 404, got %d", path, resp.StatusCode)
		}
	}
}

func TestPreviewInstructionsEndpoint(t *testing.T) {
	app := testApp(t)

	url := `/api/v1/preview/rooster-mug?size=500&variant=var_rooster_11oz_black&values=` +
		`%7B%22animal%22%3A%22opt_rooster_3%22%2C%22name%22%3A%22Bob%22%7D`
	resp, err := app.Test(httptest.NewRequest("GET", url, nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("want 200, got %d: %s", resp.StatusCode, body)
	}

	var out struct {
		Canvas       int `json:"canvas"`
		Instructions []struct {
			Layer     int    `json:"layer"`
			Kind      string `json:"kind"`
			Text      string `json:"text"`
			TextColor string `json:"textColor"`
		} `json:"instructions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.Canvas != 500 || len(out.Instructions) != 3 {
		t.Fatalf("plan shape wrong: %+v", out)
	}
	if out.Instructions[0].Layer != 0 {
		t.Fatalf("background must come first: %+v", out.Instructions[0])
	}
	// black variant selected: text renders white
	last := out.Instructions[2]
	if last.Text != "Bob" || last.TextColor != "#FFFFFF" {
		t.Fatalf("text instruction wrong: %+v", last)
	}
}

func TestPreviewMalformedValuesIgnored(t *testing.T) {
	app := testApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/preview/rooster-mug?values=%7Bnot-json", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("malformed values must degrade to empty, got %d", resp.StatusCode)
	}
	var out struct {
		Instructions []json.RawMessage `json:"instructions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if len(out.Instructions) != 1 {
		t.Fatalf("want background only, got %d instructions", len(out.Instructions))
	}
}

func TestDesignSaveAndGet(t *testing.T) {
	app := testApp(t)

	body, _ := json.Marshal(fiber.Map{
		"handle":     "rooster-mug",
		"variantId":  "var_rooster_11oz_white",
		"templateId": "tpl_animal_mug",
		"values":     fiber.Map{"animal": "opt_rooster_1", "name": "Bob"},
	})
	req := httptest.NewRequest("POST", "/api/v1/designs", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		b, _ := io.ReadAll(resp.Body)
		t.Fatalf("want 201, got %d: %s", resp.StatusCode, b)
	}
	var created struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatal(err)
	}
	if created.ID == "" {
		t.Fatal("no design id returned")
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/api/v1/designs/"+created.ID, nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	var got struct {
		Customization map[string]any `json:"customization"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got.Customization["name"] != "Bob" {
		t.Fatalf("customization lost: %v", got.Customization)
	}
}

func TestDesignSaveRejectsBadInput(t *testing.T) {
	app := testApp(t)

	cases := []fiber.Map{
		{"handle": "NOT A HANDLE", "variantId": "v", "templateId": "t"},
		{"handle": "rooster-mug", "variantId": "", "templateId": "t"},
		{"handle": "rooster-mug", "variantId": "v", "templateId": "../../etc"},
	}
	for i, payload := range cases {
		body, _ := json.Marshal(payload)
		req := httptest.NewRequest("POST", "/api/v1/designs", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Fatalf("case %d: want 400, got %d", i, resp.StatusCode)
		}
	}
}
