package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ducc/stock-panel/internal/config"
	"github.com/ducc/stock-panel/internal/grocy"
)

func TestProductIDs(t *testing.T) {
	products := []grocy.Product{
		{ID: 62, Name: "Toilet Rolls"},
		{ID: 43, Name: "Onions"},
	}
	ids := productIDs(products)
	if len(ids) != 2 || ids[0] != 62 || ids[1] != 43 {
		t.Errorf("productIDs() = %v, want [62 43]", ids)
	}

	if got := productIDs(nil); len(got) != 0 {
		t.Errorf("productIDs(nil) = %v, want empty", got)
	}
}

func TestRunFailsFastOnEmptyCatalog(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	cfg := &config.Config{
		Grocy:      config.GrocyConfig{BaseURL: server.URL},
		Navigation: config.PanelConfig{LeftPin: 17, RightPin: 27, Display: config.DisplayConfig{Device: "/dev/i2c-1"}},
		Stock:      config.PanelConfig{LeftPin: 9, RightPin: 10, Display: config.DisplayConfig{Device: "/dev/i2c-0"}},
	}

	err := Run(context.Background(), cfg, "key", true)
	if err == nil {
		t.Fatal("Run() should fail on an empty catalog")
	}
}

func TestRunFailsFastWhenCatalogUnavailable(t *testing.T) {
	cfg := &config.Config{
		Grocy:      config.GrocyConfig{BaseURL: "http://127.0.0.1:1"},
		Navigation: config.PanelConfig{LeftPin: 17, RightPin: 27, Display: config.DisplayConfig{Device: "/dev/i2c-1"}},
		Stock:      config.PanelConfig{LeftPin: 9, RightPin: 10, Display: config.DisplayConfig{Device: "/dev/i2c-0"}},
	}

	err := Run(context.Background(), cfg, "key", true)
	if err == nil {
		t.Fatal("Run() should fail when the catalog cannot be fetched")
	}

	var svcErr *grocy.ServiceError
	if !errors.As(err, &svcErr) {
		t.Errorf("error = %v, want a wrapped *grocy.ServiceError", err)
	}
}
