// internal/catalog/client_test.go
package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/your-org/storefront-gateway/internal/api"
	"github.com/your-org/storefront-gateway/internal/config"
	"github.com/your-org/storefront-gateway/internal/pkg/logging"
)

func newTestCatalog(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		API: config.APIConfig{
			BaseURL:        server.URL,
			RequestTimeout: 5 * time.Second,
		},
	}
	logger := logging.Discard()
	return NewClient(api.NewClient(cfg, nil, logger), logger)
}

func TestListAppliesDefaultsAndFilters(t *testing.T) {
	var gotQuery map[string]string
	mux := http.NewServeMux()
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"page":     r.URL.Query().Get("page"),
			"limit":    r.URL.Query().Get("limit"),
			"category": r.URL.Query().Get("category"),
		}
		json.NewEncoder(w).Encode(Page{
			Items: []Product{{ID: "p1", Name: "Shirt", Price: 25}},
			Page:  1, Limit: 20, Total: 1, TotalPages: 1,
		})
	})

	client := newTestCatalog(t, mux)

	page, err := client.List(context.Background(), ListQuery{Category: "clothing"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotQuery["page"] != "1" || gotQuery["limit"] != "20" {
		t.Fatalf("expected default paging, got %v", gotQuery)
	}
	if gotQuery["category"] != "clothing" {
		t.Fatalf("expected category filter, got %v", gotQuery)
	}
	if len(page.Items) != 1 || page.Items[0].ID != "p1" {
		t.Fatalf("unexpected page %+v", page)
	}
}

func TestGetProduct(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/products/p1", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(Product{ID: "p1", Name: "Shirt", Price: 25, InStock: true})
	})

	client := newTestCatalog(t, mux)

	product, err := client.Get(context.Background(), "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if product.Name != "Shirt" || !product.InStock {
		t.Fatalf("unexpected product %+v", product)
	}
}

func TestGetProductNotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/products/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Product not found"})
	})

	client := newTestCatalog(t, mux)

	if _, err := client.Get(context.Background(), "missing"); err == nil {
		t.Fatal("expected error for missing product")
	}
}

func TestSearcherDiscardsSupersededResult(t *testing.T) {
	slowStarted := make(chan struct{})
	release := make(chan struct{})

	mux := http.NewServeMux()
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		term := r.URL.Query().Get("search")
		if term == "slow" {
			close(slowStarted)
			<-release
		}
		json.NewEncoder(w).Encode(Page{Items: []Product{{ID: term}}})
	})

	client := newTestCatalog(t, mux)
	searcher := NewSearcher(client)

	var slowPage *Page
	var slowErr error
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		slowPage, slowErr = searcher.Search(context.Background(), "slow")
	}()

	// Issue a newer search while the first is still in flight
	<-slowStarted
	fastPage, err := searcher.Search(context.Background(), "fast")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fastPage.Items) != 1 || fastPage.Items[0].ID != "fast" {
		t.Fatalf("unexpected fast result %+v", fastPage)
	}

	close(release)
	wg.Wait()

	if slowErr != nil {
		t.Fatalf("unexpected error: %v", slowErr)
	}
	if slowPage != nil {
		t.Fatalf("expected superseded result to be discarded, got %+v", slowPage)
	}
}

func TestSearcherLatestResultWins(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(Page{Items: []Product{{ID: r.URL.Query().Get("search")}}})
	})

	client := newTestCatalog(t, mux)
	searcher := NewSearcher(client)

	page, err := searcher.Search(context.Background(), "shoes")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page == nil || page.Items[0].ID != "shoes" {
		t.Fatalf("unexpected result %+v", page)
	}
}
