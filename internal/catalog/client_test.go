package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestServer(t *testing.T, searchStatus int, searchBody interface{}) (*httptest.Server, *Client, *int) {
	t.Helper()
	tokenCalls := 0

	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		tokenCalls++
		if user, pass, ok := r.BasicAuth(); !ok || user != "id" || pass != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "tok-123",
			"expires_in":   3600,
		})
	})
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if got := r.URL.Query().Get("type"); got != "track" {
			t.Errorf("type = %q, want track", got)
		}
		if got := r.URL.Query().Get("limit"); got != "5" {
			t.Errorf("limit = %q, want 5", got)
		}
		w.WriteHeader(searchStatus)
		json.NewEncoder(w).Encode(searchBody)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := NewClient(Config{
		BaseURL:      server.URL,
		TokenURL:     server.URL + "/token",
		ClientID:     "id",
		ClientSecret: "secret",
	})
	return server, client, &tokenCalls
}

func searchPayload(names ...string) map[string]interface{} {
	items := make([]map[string]interface{}, 0, len(names))
	for _, name := range names {
		items = append(items, map[string]interface{}{
			"name":          name,
			"artists":       []map[string]string{{"name": "Artist"}},
			"external_urls": map[string]string{"spotify": "https://open.example/" + name},
		})
	}
	return map[string]interface{}{
		"tracks": map[string]interface{}{"items": items},
	}
}

func TestClientSearch(t *testing.T) {
	_, client, _ := newTestServer(t, http.StatusOK, searchPayload("a", "b", "c"))

	records, err := client.Search(context.Background(), "Happy mood english songs ", 5)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("len = %d, want 3", len(records))
	}
	if records[0].Name != "a" {
		t.Fatalf("first record = %q", records[0].Name)
	}
}

func TestClientReusesToken(t *testing.T) {
	_, client, tokenCalls := newTestServer(t, http.StatusOK, searchPayload("a"))

	for i := 0; i < 3; i++ {
		if _, err := client.Search(context.Background(), "query", 5); err != nil {
			t.Fatalf("Search %d: %v", i, err)
		}
	}
	if *tokenCalls != 1 {
		t.Fatalf("token requested %d times, want 1", *tokenCalls)
	}
}

func TestClientSearchUpstreamFailure(t *testing.T) {
	_, client, _ := newTestServer(t, http.StatusTooManyRequests, map[string]string{"error": "rate limited"})

	if _, err := client.Search(context.Background(), "query", 5); err == nil {
		t.Fatal("expected error on non-200 search status")
	}
}

func TestClientSearchHonorsContext(t *testing.T) {
	_, client, _ := newTestServer(t, http.StatusOK, searchPayload("a"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := client.Search(ctx, "query", 5); err == nil {
		t.Fatal("expected error with canceled context")
	}
}
