//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"
)

var baseURL = getenv("E2E_BASE_URL", "http://localhost:8080")

type summary struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type screen struct {
	SessionID string `json:"session_id"`
	Route     string `json:"route"`
	CanGoBack bool   `json:"can_go_back"`
	Home      *struct {
		Products []summary `json:"products"`
	} `json:"home"`
	Detail *struct {
		Product struct {
			ID      int               `json:"id"`
			Name    string            `json:"name"`
			Reviews []json.RawMessage `json:"reviews"`
		} `json:"product"`
	} `json:"detail"`
}

func TestSystem_E2E_BrowseCatalog(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	waitReady(t, ctx, baseURL+"/readyz")

	var start screen
	doJSON(t, http.MethodPost, baseURL+"/sessions", nil, &start, http.StatusCreated)
	if start.SessionID == "" || start.Home == nil || len(start.Home.Products) == 0 {
		t.Fatalf("unexpected start screen: %#v", start)
	}

	base := baseURL + "/sessions/" + start.SessionID
	for _, p := range start.Home.Products {
		var detail screen
		doJSON(t, http.MethodPost, fmt.Sprintf("%s/select/%d", base, p.ID), nil, &detail, http.StatusOK)

		if want := fmt.Sprintf("productDetail/%d", p.ID); detail.Route != want {
			t.Fatalf("route=%s want=%s", detail.Route, want)
		}
		if detail.Detail == nil || detail.Detail.Product.ID != p.ID {
			t.Fatalf("detail for %d not rendered: %#v", p.ID, detail)
		}

		var back screen
		doJSON(t, http.MethodPost, base+"/back", nil, &back, http.StatusOK)
		if back.Route != "home" || back.Home == nil || len(back.Home.Products) != len(start.Home.Products) {
			t.Fatalf("back did not restore home: %#v", back)
		}
	}

	var deep screen
	doJSON(t, http.MethodPost, base+"/navigate", map[string]any{"route": "productDetail/x"}, &deep, http.StatusOK)
	if deep.Detail != nil {
		t.Fatalf("malformed id rendered a detail: %#v", deep)
	}

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/productDetail/999999", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("get detail: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusNoContent || len(body) != 0 {
		t.Fatalf("unknown product: status=%d body=%q", resp.StatusCode, body)
	}
}

func waitReady(t *testing.T, ctx context.Context, url string) {
	t.Helper()
	client := &http.Client{Timeout: 2 * time.Second}

	deadline := time.Now().Add(30 * time.Second)
	for time.Now().Before(deadline) {
		req, _ := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		resp, err := client.Do(req)
		if err == nil && resp != nil && resp.StatusCode == http.StatusOK {
			_ = resp.Body.Close()
			return
		}
		if resp != nil {
			_ = resp.Body.Close()
		}
		time.Sleep(500 * time.Millisecond)
	}
	t.Fatalf("service not ready: %s", url)
}

func doJSON(t *testing.T, method, url string, body any, out any, want int) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		t.Fatalf("%s %s: status=%d want=%d", method, url, resp.StatusCode, want)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
