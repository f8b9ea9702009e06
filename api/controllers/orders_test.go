package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	ordersvc "github.com/ruachlabs/telafome-backend/internal/orders"
	"github.com/ruachlabs/telafome-backend/internal/tenants"
	pkgerrors "github.com/ruachlabs/telafome-backend/pkg/errors"
)

type stubOrderService struct {
	receipt *ordersvc.Receipt
	err     error

	gotTenant     *tenants.Tenant
	gotSubmission ordersvc.Submission
}

func (s *stubOrderService) Submit(ctx context.Context, tenant *tenants.Tenant, sub ordersvc.Submission) (*ordersvc.Receipt, error) {
	s.gotTenant = tenant
	s.gotSubmission = sub
	if s.err != nil {
		return nil, s.err
	}
	return s.receipt, nil
}

func orderRequest(t *testing.T, slug string, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/storefront/"+slug+"/orders", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("slug", slug)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}

const validOrderBody = `{
	"customerName": "Maria Silva",
	"deliveryType": "delivery",
	"address": "Rua das Flores, 123",
	"paymentMethod": "pix",
	"items": [{"productId": "P1", "mainQuantity": 2, "options": [{"addOnId": "A1", "quantity": 1}]}]
}`

func TestSubmitOrderSuccess(t *testing.T) {
	total, _ := decimal.NewFromString("84.90")
	svc := &stubOrderService{receipt: &ordersvc.Receipt{OrderID: "PED-1756751400000", Total: total}}
	handler := SubmitOrder(stubTenants{tenant: sampleTenant()}, svc, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, orderRequest(t, "ruachdelivery", validOrderBody))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Data ordersvc.Receipt `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.OrderID != "PED-1756751400000" {
		t.Fatalf("unexpected order id %q", envelope.Data.OrderID)
	}
	if svc.gotTenant == nil || svc.gotTenant.Slug != "ruachdelivery" {
		t.Fatalf("tenant not forwarded to service")
	}
	if svc.gotSubmission.CustomerName != "Maria Silva" {
		t.Fatalf("submission not forwarded: %+v", svc.gotSubmission)
	}
}

func TestSubmitOrderValidationFailure(t *testing.T) {
	svc := &stubOrderService{}
	handler := SubmitOrder(stubTenants{tenant: sampleTenant()}, svc, nil)

	body := `{"customerName": "M", "deliveryType": "delivery", "paymentMethod": "pix", "items": []}`
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, orderRequest(t, "ruachdelivery", body))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
	if svc.gotTenant != nil {
		t.Fatalf("service called despite invalid payload")
	}
}

func TestSubmitOrderUnknownField(t *testing.T) {
	handler := SubmitOrder(stubTenants{tenant: sampleTenant()}, &stubOrderService{}, nil)

	body := `{"customerName": "Maria Silva", "deliveryType": "pickup", "paymentMethod": "pix", "total": "1,00", "items": [{"productId": "P1", "mainQuantity": 1}]}`
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, orderRequest(t, "ruachdelivery", body))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown field got %d", rec.Code)
	}
}

func TestSubmitOrderTenantNotFound(t *testing.T) {
	handler := SubmitOrder(stubTenants{err: pkgerrors.New(pkgerrors.CodeNotFound, "store not found")}, &stubOrderService{}, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, orderRequest(t, "nope", validOrderBody))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
}

func TestSubmitOrderAppendFailure(t *testing.T) {
	svc := &stubOrderService{err: pkgerrors.New(pkgerrors.CodeDependency, "append order row")}
	handler := SubmitOrder(stubTenants{tenant: sampleTenant()}, svc, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, orderRequest(t, "ruachdelivery", validOrderBody))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 got %d", rec.Code)
	}
}
