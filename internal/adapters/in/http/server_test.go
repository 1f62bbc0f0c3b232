package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/rider"
	"parceltrack/internal/core/domain/model/wallet"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	identity ports.Identity
	err      error
}

func (v stubVerifier) Verify(_ string) (ports.Identity, error) {
	return v.identity, v.err
}

type stubGateway struct {
	clientSecret string
	err          error
}

func (g stubGateway) CreatePaymentIntent(_ context.Context, _ int64, _ string) (string, error) {
	return g.clientSecret, g.err
}

func newTestRouter(t *testing.T, server *Server, verifier ports.IdentityVerifier) *echo.Echo {
	t.Helper()
	e := echo.New()
	server.RegisterRoutes(e, verifier)
	return e
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func Test_Routes_MissingToken_Unauthorized(t *testing.T) {
	e := newTestRouter(t, &Server{}, stubVerifier{err: ports.ErrUnauthorized})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/parcels", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
}

func Test_Routes_InvalidToken_Unauthorized(t *testing.T) {
	e := newTestRouter(t, &Server{}, stubVerifier{err: ports.ErrUnauthorized})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/parcels", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer garbage")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func Test_AdminRoute_NonAdminIdentity_Forbidden(t *testing.T) {
	verifier := stubVerifier{identity: ports.Identity{
		Subject: "user-1", Email: "sender@example.com", Role: "user",
	}}
	e := newTestRouter(t, &Server{}, verifier)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/parcels/not-a-uuid", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer token")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
}

func Test_AdminRoute_MalformedID_BadRequest(t *testing.T) {
	verifier := stubVerifier{identity: ports.Identity{
		Subject: "admin-1", Email: "admin@example.com", Role: "admin",
	}}
	e := newTestRouter(t, &Server{}, verifier)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/parcels/not-a-uuid", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer token")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "invalid parcel id", resp.Message)
}

func Test_WalletRoutes_NotAddressableByRiderID(t *testing.T) {
	// Wallet reads and cash-outs are bound to the verified identity; no
	// route accepts another rider's id.
	verifier := stubVerifier{identity: ports.Identity{
		Subject: "user-1", Email: "someone.else@example.com", Role: "user",
	}}
	e := newTestRouter(t, &Server{}, verifier)

	victimID := kernel.NewUUID().String()
	body := `{"amount": 600, "method": "bkash", "accountInfo": {"phoneNumber": "01700000000"}}`

	req := httptest.NewRequest(
		http.MethodPost, "/api/v1/riders/"+victimID+"/wallet/cash-out", strings.NewReader(body))
	req.Header.Set(echo.HeaderAuthorization, "Bearer token")
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/riders/"+victimID+"/wallet", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer token")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func Test_CreatePaymentIntent_ReturnsClientSecret(t *testing.T) {
	verifier := stubVerifier{identity: ports.Identity{
		Subject: "user-1", Email: "sender@example.com", Role: "user",
	}}
	server := &Server{paymentGateway: stubGateway{clientSecret: "pi_123_secret_456"}}
	e := newTestRouter(t, server, verifier)

	body := `{"amount": 15000, "currency": "bdt"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/intent", strings.NewReader(body))
	req.Header.Set(echo.HeaderAuthorization, "Bearer token")
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "pi_123_secret_456", data["clientSecret"])
}

func Test_CreatePaymentIntent_GatewayError_InternalError(t *testing.T) {
	verifier := stubVerifier{identity: ports.Identity{
		Subject: "user-1", Email: "sender@example.com", Role: "user",
	}}
	server := &Server{paymentGateway: stubGateway{err: errors.New("stripe is down")}}
	e := newTestRouter(t, server, verifier)

	body := `{"amount": 15000, "currency": "bdt"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/intent", strings.NewReader(body))
	req.Header.Set(echo.HeaderAuthorization, "Bearer token")
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	// Gateway failure details must not leak to the client.
	assert.Equal(t, "internal server error", resp.Message)
}

func Test_StatusFor_ErrorClassification(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unauthorized", ports.ErrUnauthorized, http.StatusUnauthorized},
		{"forbidden", ports.ErrForbidden, http.StatusForbidden},
		{"not assigned rider", commands.ErrNotAssignedRider, http.StatusForbidden},
		{"parcel not found", commands.ErrParcelNotFound, http.StatusNotFound},
		{"unknown tracking id", queries.ErrTrackingIDUnknown, http.StatusNotFound},
		{"stored object missing", errs.NewObjectNotFoundError("parcel", "x"), http.StatusNotFound},
		{"invalid transition", parcel.ErrInvalidTransition, http.StatusBadRequest},
		{"parcel already assigned", parcel.ErrParcelAlreadyAssigned, http.StatusBadRequest},
		{"rider busy", rider.ErrRiderBusy, http.StatusBadRequest},
		{"insufficient balance", wallet.ErrInsufficientBalance, http.StatusBadRequest},
		{"validation failure", errs.NewValueIsRequiredError("amount"), http.StatusBadRequest},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}
