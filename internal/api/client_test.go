package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/angelmondragon/shopfront-client/pkg/config"
	"github.com/angelmondragon/shopfront-client/pkg/enums"
	pkgerrors "github.com/angelmondragon/shopfront-client/pkg/errors"
	"github.com/angelmondragon/shopfront-client/pkg/pagination"
)

type staticTokens struct {
	token string
}

func (s staticTokens) Credential() string { return s.token }

func newTestClient(t *testing.T, handler http.Handler, opts ...Option) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(config.APIConfig{BaseURL: server.URL}, nil, opts...)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

func TestClientAttachesBearerToken(t *testing.T) {
	var gotAuth string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"skuCode":"A1","quantity":5}`))
	})
	client := newTestClient(t, handler, WithTokenSource(staticTokens{token: "tok-123"}))

	snapshot, err := NewInventoryAPI(client).CheckStock(context.Background(), "A1")
	if err != nil {
		t.Fatalf("CheckStock: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
	if snapshot.AvailableQuantity != 5 {
		t.Fatalf("unexpected snapshot %+v", snapshot)
	}
}

func TestClientOmitsAuthorizationWithoutCredential(t *testing.T) {
	var sawHeader bool
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawHeader = r.Header["Authorization"]
		w.Write([]byte(`{"skuCode":"A1","quantity":1}`))
	})
	client := newTestClient(t, handler, WithTokenSource(staticTokens{}))

	if _, err := NewInventoryAPI(client).CheckStock(context.Background(), "A1"); err != nil {
		t.Fatalf("CheckStock: %v", err)
	}
	if sawHeader {
		t.Fatal("expected no Authorization header for empty credential")
	}
}

func TestClientFiresUnauthorizedHookOn401(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"code":"UNAUTHORIZED","message":"token expired"}}`))
	})

	var hookCalls int
	client := newTestClient(t, handler, WithUnauthorizedHook(func() { hookCalls++ }))

	_, err := NewOrderAPI(client).Get(context.Background(), "O-1")
	if err == nil {
		t.Fatal("expected error")
	}
	if pkgerrors.CodeOf(err) != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized code, got %s", pkgerrors.CodeOf(err))
	}
	if hookCalls != 1 {
		t.Fatalf("expected hook to fire once, got %d", hookCalls)
	}
}

func TestClientMapsInsufficientStock(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":{"code":"INSUFFICIENT_STOCK","message":"not enough stock for A1"}}`))
	})
	client := newTestClient(t, handler)

	draft := OrderDraft{CustomerName: "Jo", Email: "jo@example.com", Phone: "555"}
	_, err := NewOrderAPI(client).Create(context.Background(), draft, "key-1")
	if err == nil {
		t.Fatal("expected error")
	}
	if pkgerrors.CodeOf(err) != pkgerrors.CodeInsufficientStock {
		t.Fatalf("expected insufficient stock, got %s", pkgerrors.CodeOf(err))
	}
}

func TestClientMapsPlainConflict(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":{"code":"CONFLICT","message":"duplicate sku"}}`))
	})
	client := newTestClient(t, handler)

	_, err := NewProductAPI(client).Create(context.Background(), ProductInput{SKUCode: "A1", Name: "Mug"})
	if pkgerrors.CodeOf(err) != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %s", pkgerrors.CodeOf(err))
	}
}

func TestClientMapsNotFound(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	client := newTestClient(t, handler)

	_, err := NewProductAPI(client).Get(context.Background(), "nope")
	if pkgerrors.CodeOf(err) != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %s", pkgerrors.CodeOf(err))
	}
}

func TestOrderCreateSendsIdempotencyKey(t *testing.T) {
	var gotKey string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get(HeaderIdempotencyKey)
		w.Write([]byte(`{"orderId":"O-9","orderNumber":"1009","status":"pending","total":25.5,"createdAt":"2026-01-02T10:00:00Z"}`))
	})
	client := newTestClient(t, handler)

	record, err := NewOrderAPI(client).Create(context.Background(), OrderDraft{}, "attempt-42")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if gotKey != "attempt-42" {
		t.Fatalf("expected idempotency header, got %q", gotKey)
	}
	if record.OrderID != "O-9" || record.Status != enums.OrderStatusPending {
		t.Fatalf("unexpected record %+v", record)
	}
}

func TestOrderCreateRejectsMissingOrderID(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"pending"}`))
	})
	client := newTestClient(t, handler)

	_, err := NewOrderAPI(client).Create(context.Background(), OrderDraft{}, "")
	if pkgerrors.CodeOf(err) != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error for missing orderId, got %v", err)
	}
}

func TestListEncodesParams(t *testing.T) {
	var gotQuery string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"data":[],"total":0,"totalPages":0,"page":1}`))
	})
	client := newTestClient(t, handler)

	params := pagination.ListParams{Page: 2, Limit: 10, Filters: map[string]string{"status": "shipped"}}
	if _, err := NewOrderAPI(client).List(context.Background(), params); err != nil {
		t.Fatalf("List: %v", err)
	}
	for _, want := range []string{"page=2", "limit=10", "status=shipped"} {
		if !strings.Contains(gotQuery, want) {
			t.Fatalf("expected query to contain %q, got %q", want, gotQuery)
		}
	}
}
