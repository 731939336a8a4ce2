package availability_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	otelMocks "courtbook/infras/otel/mocks"
	"courtbook/internal/domains/availability/mocks"
	"courtbook/internal/domains/availability/model"
	"courtbook/internal/handlers/availability"
	"courtbook/internal/schedule"
	"courtbook/shared/constant"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type caller struct {
	role     string
	tenantID string
}

var (
	admin    = caller{role: constant.RoleAdmin}
	tenantA  = caller{role: constant.RoleTenant, tenantID: "tenant-a"}
	stranger = caller{role: "viewer"}
)

func newRouter(t *testing.T, as caller) (chi.Router, *mocks.MockAvailability) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := mocks.NewMockAvailability(ctrl)
	handler := availability.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			ctx := context.WithValue(request.Context(), constant.ContextKeyUserID, "user-1")
			ctx = context.WithValue(ctx, constant.ContextKeyUserRole, as.role)

			if as.tenantID != constant.Empty {
				ctx = context.WithValue(ctx, constant.ContextKeyTenantID, as.tenantID)
			}

			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	})
	handler.Router(router)

	return router, svc
}

func serve(router chi.Router, method, target, body string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(method, target, strings.NewReader(body)))

	return recorder
}

func TestGetQuota_TenantResolution(t *testing.T) {
	tests := []struct {
		name       string
		as         caller
		query      string
		wantTenant string
		wantStatus int
	}{
		{name: "tenant sees itself", as: tenantA, wantTenant: "tenant-a", wantStatus: http.StatusOK},
		{name: "tenant naming itself", as: tenantA, query: "?tenant_id=tenant-a", wantTenant: "tenant-a", wantStatus: http.StatusOK},
		{name: "tenant naming another tenant", as: tenantA, query: "?tenant_id=tenant-b", wantStatus: http.StatusForbidden},
		{name: "admin names a tenant", as: admin, query: "?tenant_id=tenant-b", wantTenant: "tenant-b", wantStatus: http.StatusOK},
		{name: "admin without tenant", as: admin, wantStatus: http.StatusBadRequest},
		{name: "caller without tenant", as: stranger, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t, tt.as)

			if tt.wantTenant != constant.Empty {
				svc.EXPECT().GetTenantQuotaInfo(gomock.Any(), tt.wantTenant).Return(model.QuotaInfo{TenantID: tt.wantTenant}, nil)
			}

			recorder := serve(router, http.MethodGet, "/availability/quota"+tt.query, "")

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

func TestValidateSelection(t *testing.T) {
	router, svc := newRouter(t, tenantA)

	keys := []string{"2025-07-05-10:00", "2025-07-05-11:00"}
	result := model.ValidationResult{CanBook: false, Warnings: []string{"Maximum 2 hours per day allowed."}}

	svc.EXPECT().ValidateSlotSelection(gomock.Any(), "tenant-a", keys, "0b8f3c52-6f0e-4b53-9a43-0c1d2e3f4a5b").Return(result, nil)

	recorder := serve(router, http.MethodPost, "/availability/validate",
		`{"court_id":"0b8f3c52-6f0e-4b53-9a43-0c1d2e3f4a5b","slot_keys":["2025-07-05-10:00","2025-07-05-11:00"]}`)

	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Data model.ValidationResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

	assert.False(t, body.Data.CanBook)
	assert.Equal(t, result.Warnings, body.Data.Warnings)
}

func TestValidateSelection_MalformedKey(t *testing.T) {
	router, _ := newRouter(t, tenantA)

	recorder := serve(router, http.MethodPost, "/availability/validate",
		`{"court_id":"0b8f3c52-6f0e-4b53-9a43-0c1d2e3f4a5b","slot_keys":["2025-07-05 10:00"]}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestIsSlotBooked(t *testing.T) {
	router, svc := newRouter(t, admin)

	date := time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC)
	start := schedule.NewClock(18, 0)

	svc.EXPECT().IsSlotAlreadyBooked(gomock.Any(), "court-1", date, start).Return(true, nil)

	recorder := serve(router, http.MethodGet, "/availability/courts/court-1/booked?date=2025-07-05&time=18:00", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"data":{"court_id":"court-1","date":"2025-07-05","time":"18:00","is_booked":true}}`, recorder.Body.String())

	recorder = serve(router, http.MethodGet, "/availability/courts/court-1/booked?date=2025-07-05&time=6pm", "")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGetSlots_RequiresDate(t *testing.T) {
	router, _ := newRouter(t, admin)

	recorder := serve(router, http.MethodGet, "/availability/courts/court-1/slots", "")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGetWindow(t *testing.T) {
	router, svc := newRouter(t, tenantA)

	date := time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC)

	svc.EXPECT().Window(gomock.Any(), gomock.Nil()).Return(model.WindowInfo{Today: "2025-07-03"}, nil)
	svc.EXPECT().Window(gomock.Any(), &date).Return(model.WindowInfo{Today: "2025-07-03", Date: "2025-08-10"}, nil)

	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/availability/window", "").Code)
	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/availability/window?date=2025-08-10", "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(router, http.MethodGet, "/availability/window?date=10-08-2025", "").Code)
}
