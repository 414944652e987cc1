package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Independence(t *testing.T) {
	client1, err := NewHTTPClient("localhost:1", time.Second)
	require.NoError(t, err)
	client2, err := NewHTTPClient("localhost:1", time.Second)
	require.NoError(t, err)

	assert.NotSame(t, client1.Client, client2.Client)
}

func TestNewHTTPClient_Config(t *testing.T) {
	client, err := NewHTTPClient(" localhost:8080/ ", 3*time.Second)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", client.BaseURL)
	assert.Equal(t, 3*time.Second, client.GetClient().Timeout)
}

func TestNewHTTPClient_InvalidAddress(t *testing.T) {
	_, err := NewHTTPClient("", time.Second)
	assert.ErrorIs(t, err, errEmptyAddress)
}

func TestNewHTTPClient_RequestsAreRelativeToBaseURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(r.URL.Path))
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL+"/", time.Second)
	require.NoError(t, err)

	resp, err := client.R().Get("/api/keys/ABC")
	require.NoError(t, err)
	assert.Equal(t, "/api/keys/ABC", resp.String())
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:9000", want: "http://localhost:9000"},
		{in: "https://objects.example.com/", want: "https://objects.example.com"},
		{in: "  http://127.0.0.1:8080/base/  ", want: "http://127.0.0.1:8080/base"},
		{in: "", wantErr: true},
		{in: "   ", wantErr: true},
		{in: "http://", wantErr: true},
		{in: "ftp://example.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NormalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
