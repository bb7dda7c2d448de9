package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/tirtanusa/storefront-go/internal/apierror"
	"github.com/tirtanusa/storefront-go/internal/credential"
)

func signedToken(t *testing.T) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "u1",
		"role": "customer",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func newTestClient(t *testing.T, handler http.Handler) (*Client, *credential.Store, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	creds := credential.NewStore(credential.NewMemoryStorage())
	log := zerolog.Nop()
	client := New(Config{
		BaseURL:     srv.URL,
		Credentials: creds,
		Logger:      &log,
	})
	return client, creds, srv
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	client, creds, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": map[string]any{"items": []any{}, "total": 0}})
	}))

	token := signedToken(t)
	creds.Save(token)

	if _, err := client.GetCart(context.Background()); err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if gotAuth != "Bearer "+token {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
}

func TestClient_FailsFastWithoutTokenAndSkipsNetwork(t *testing.T) {
	var requests atomic.Int32
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))

	_, err := client.GetCart(context.Background())
	if !apierror.IsKind(err, apierror.KindUnauthenticated) {
		t.Fatalf("expected unauthenticated, got %v", err)
	}
	if n := requests.Load(); n != 0 {
		t.Fatalf("expected zero network calls, got %d", n)
	}
}

func TestClient_ValidationShortCircuitsNetwork(t *testing.T) {
	var requests atomic.Int32
	client, creds, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))
	creds.Save(signedToken(t))

	err := client.AddToCart(context.Background(), "7", 0)
	if !apierror.IsKind(err, apierror.KindValidation) {
		t.Fatalf("expected validation error for quantity 0, got %v", err)
	}
	if err := client.AddToCart(context.Background(), "", 2); !apierror.IsKind(err, apierror.KindValidation) {
		t.Fatalf("expected validation error for missing product id, got %v", err)
	}
	if n := requests.Load(); n != 0 {
		t.Fatalf("local validation must not issue HTTP calls, got %d", n)
	}
}

func TestClient_UnauthorizedResponseForcesLogout(t *testing.T) {
	client, creds, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "token expired"})
	}))
	creds.Save(signedToken(t))

	_, err := client.GetCart(context.Background())
	if !apierror.IsKind(err, apierror.KindUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if _, ok := creds.Load(); ok {
		t.Fatalf("a backend 401 must clear the stored credential")
	}
}

func TestClient_EnvelopeFailureOn2xxIsRemoteError(t *testing.T) {
	client, creds, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "stock exhausted"})
	}))
	creds.Save(signedToken(t))

	err := client.AddToCart(context.Background(), "7", 2)
	if !apierror.IsKind(err, apierror.KindRemote) {
		t.Fatalf("expected remote error, got %v", err)
	}
	var apiErr *apierror.Error
	if !errors.As(err, &apiErr) || apiErr.Message != "stock exhausted" {
		t.Fatalf("expected backend message surfaced, got %v", err)
	}
}

func TestClient_NonSuccessStatusIsRemoteErrorWithMessage(t *testing.T) {
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "product not found"})
	}))

	_, err := client.GetProduct(context.Background(), "999")
	if !apierror.IsKind(err, apierror.KindRemote) {
		t.Fatalf("expected remote error, got %v", err)
	}
	var apiErr *apierror.Error
	if !errors.As(err, &apiErr) || apiErr.Message != "product not found" {
		t.Fatalf("expected backend message surfaced, got %v", err)
	}
}

func TestClient_FailedLoginKeepsStoredCredential(t *testing.T) {
	client, creds, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "invalid credentials"})
	}))
	token := signedToken(t)
	creds.Save(token)

	_, err := client.Login(context.Background(), "a@x.com", "wrong-pass")
	if !apierror.IsKind(err, apierror.KindRemote) {
		t.Fatalf("a login rejection is a remote error, got %v", err)
	}
	var apiErr *apierror.Error
	if !errors.As(err, &apiErr) || apiErr.Message != "invalid credentials" {
		t.Fatalf("expected backend message surfaced, got %v", err)
	}
	if loaded, ok := creds.Load(); !ok || loaded != token {
		t.Fatalf("failed login must not touch the stored session, got %q ok=%v", loaded, ok)
	}
}

func TestClient_TransportFailure(t *testing.T) {
	client, _, srv := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := client.ListProducts(context.Background())
	if !apierror.IsKind(err, apierror.KindTransport) {
		t.Fatalf("expected transport error, got %v", err)
	}
	var apiErr *apierror.Error
	if !errors.As(err, &apiErr) || apiErr.Cause == nil {
		t.Fatalf("transport error must preserve its cause, got %v", err)
	}
}

func TestClient_PublicEndpointsNeedNoToken(t *testing.T) {
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			t.Errorf("catalog call must not carry a token when none is stored")
		}
		_ = json.NewEncoder(w).Encode([]map[string]any{{"product_id": "1", "unit_price": 22000}})
	}))

	products, err := client.ListProducts(context.Background())
	if err != nil {
		t.Fatalf("list products: %v", err)
	}
	if len(products) != 1 || products[0].UnitPrice != 22000 {
		t.Fatalf("unexpected products %+v", products)
	}
}
