package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dangerclosesec/schemagen/internal/handler"
	"github.com/dangerclosesec/schemagen/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	client := NewClient(nil)
	assert.Equal(t, "http://localhost:8080", client.config.BaseURL)
	assert.Same(t, http.DefaultClient, client.client)

	customConfig := &Config{
		BaseURL:    "http://example.com",
		Timeout:    5 * time.Second,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
	client = NewClient(customConfig)
	assert.Equal(t, "http://example.com", client.config.BaseURL)
	assert.Equal(t, 5*time.Second, client.config.Timeout)
	assert.Same(t, customConfig.HTTPClient, client.client)
}

func newAPIServer(t *testing.T) *Client {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewSchemaService(nil, nil, logger)
	server := httptest.NewServer(handler.NewRouter(svc, logger))
	t.Cleanup(server.Close)

	return NewClient(&Config{BaseURL: server.URL, Timeout: 5 * time.Second})
}

func TestParseAgainstServer(t *testing.T) {
	client := newAPIServer(t)
	ctx := context.Background()

	require.NoError(t, client.Health(ctx))

	resp, err := client.Parse(ctx, &ParseRequest{
		Name:   "tpcc",
		Source: "CREATE TABLE district (d_id integer, d_w_id integer, d_ytd numeric(12,2));",
	})
	require.NoError(t, err)
	assert.False(t, resp.Cached)
	assert.Empty(t, resp.RecordID)
	require.Len(t, resp.Schema.Relations, 1)
	assert.Equal(t, "District", resp.Schema.Relations[0].Name)
	assert.Equal(t, []string{"d_id", "d_w_id", "d_ytd"}, resp.Schema.Relations[0].ColumnNames())

	again, err := client.Parse(ctx, &ParseRequest{
		Source: "CREATE TABLE district (d_id integer, d_w_id integer, d_ytd numeric(12,2));",
	})
	require.NoError(t, err)
	assert.True(t, again.Cached)

	records, err := client.History(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestParseSyntaxError(t *testing.T) {
	client := newAPIServer(t)

	_, err := client.Parse(context.Background(), &ParseRequest{Source: "CREATE TABLE t (x integer"})
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "syntax_error", apiErr.Code)
	assert.Equal(t, []string{"state: AttributeType", "token: EOF", "line: 1", "column: 26"}, apiErr.Details)
}

func TestParseValidation(t *testing.T) {
	client := NewClient(nil)

	_, err := client.Parse(context.Background(), nil)
	assert.EqualError(t, err, "request cannot be nil")

	_, err = client.Parse(context.Background(), &ParseRequest{Name: "empty"})
	assert.EqualError(t, err, "source is required")

	_, err = client.Record(context.Background(), "")
	assert.EqualError(t, err, "id is required")
}

func TestRecordNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/schemas/history/abc", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{"ok": false, "error": "Record not found"})
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL})
	_, err := client.Record(context.Background(), "abc")

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Record not found (Status: 404)", apiErr.Error())
}

func TestUndecodableError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL})
	_, err := client.History(context.Background(), 0)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "request failed with status code 502", apiErr.Message)
}
