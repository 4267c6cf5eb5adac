package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/Outfitter_Go/internal/domain"
)

func TestRouter_AppliesSecurityHeaders(t *testing.T) {
	want := map[string]string{
		HeaderContentType:    HeaderValueNoSniff,
		HeaderFrameOptions:   HeaderValueSameOrigin,
		HeaderXSSProtection:  HeaderValueXSSBlock,
		HeaderReferrerPolicy: HeaderValueReferrerStrictOrigin,
	}

	tests := []struct {
		name           string
		method         string
		path           string
		setupMocks     func(routerMocks)
		expectedStatus int
	}{
		{
			name:   "public catalog route",
			method: http.MethodGet,
			path:   "/api/v1/items",
			setupMocks: func(m routerMocks) {
				m.catalog.On("List", mock.Anything).Return([]domain.ItemSummary{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "rejected by bearer auth",
			method:         http.MethodGet,
			path:           "/api/v1/characters/42/inventory",
			setupMocks:     func(routerMocks) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "unknown api route",
			method:         http.MethodGet,
			path:           "/api/v1/shops",
			setupMocks:     func(routerMocks) {},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// ARRANGE
			srv, m := newTestServer(t)
			tt.setupMocks(m)
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()

			// ACT
			srv.Handler().ServeHTTP(rec, req)

			// ASSERT
			assert.Equal(t, tt.expectedStatus, rec.Code)
			for header, value := range want {
				assert.Equal(t, value, rec.Header().Get(header), header)
			}
		})
	}
}
