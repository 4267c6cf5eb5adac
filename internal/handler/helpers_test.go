package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Outfitter_Go/internal/middleware"
)

const (
	testAccountID   int64 = 7
	testCharacterID int64 = 42
)

// newRequest builds a request with chi URL params and, when accountID > 0,
// the account id the bearer middleware would have stored.
func newRequest(t *testing.T, method, target string, body interface{}, accountID int64, params map[string]string) *http.Request {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)

	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	if accountID > 0 {
		ctx = middleware.WithAccountID(ctx, accountID)
	}
	return req.WithContext(ctx)
}

func characterParams(id string) map[string]string {
	return map[string]string{ParamCharacterID: id}
}

// decodeData unmarshals the "data" member of a DataResponse body into out
func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}
