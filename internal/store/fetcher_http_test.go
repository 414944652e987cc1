package store

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rouaze/fwkey-service/internal/config"
	"github.com/rouaze/fwkey-service/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newObjectServer(t *testing.T, objects map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		body, ok := objects[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNewHTTPDocumentFetcher_InvalidBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
	}{
		{"empty", ""},
		{"spaces only", "   "},
		{"no host", "http://"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewHTTPDocumentFetcher(config.HTTP{BaseURL: tt.baseURL})
			assert.Nil(t, f)
			assert.Error(t, err)
		})
	}
}

func TestHTTPDocumentFetcher_Success(t *testing.T) {
	srv := newObjectServer(t, map[string]string{
		"/x1602-enc-mecha/passwords_enc_mecha.ini": "[ABC]\nx1E02_Manuf=hunter2\n",
	})

	f, err := NewHTTPDocumentFetcher(config.HTTP{BaseURL: srv.URL, Timeout: time.Second})
	require.NoError(t, err)

	data, err := f.FetchDocument(context.Background(), models.DocumentLocation{
		Bucket: "x1602-enc-mecha",
		Key:    "passwords_enc_mecha.ini",
	})

	require.NoError(t, err)
	assert.Equal(t, "[ABC]\nx1E02_Manuf=hunter2\n", string(data))
}

func TestHTTPDocumentFetcher_EscapesLocation(t *testing.T) {
	tests := []struct {
		name        string
		location    models.DocumentLocation
		wantRawPath string
	}{
		{
			name:        "reserved characters in key",
			location:    models.DocumentLocation{Bucket: "b", Key: "keys #1?.ini"},
			wantRawPath: "/b/keys%20%231%3F.ini",
		},
		{
			name:        "percent in key",
			location:    models.DocumentLocation{Bucket: "b", Key: "100%.ini"},
			wantRawPath: "/b/100%25.ini",
		},
		{
			name:        "slashes keep their segments",
			location:    models.DocumentLocation{Bucket: "b", Key: "prod/fw keys.ini"},
			wantRawPath: "/b/prod/fw%20keys.ini",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath, gotRawPath string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath, gotRawPath = r.URL.Path, r.URL.EscapedPath()
				_, _ = w.Write([]byte("[ABC]\nx1E02_Manuf=hunter2\n"))
			}))
			defer srv.Close()

			f, err := NewHTTPDocumentFetcher(config.HTTP{BaseURL: srv.URL, Timeout: time.Second})
			require.NoError(t, err)

			_, err = f.FetchDocument(context.Background(), tt.location)

			require.NoError(t, err)
			assert.Equal(t, "/"+tt.location.Bucket+"/"+tt.location.Key, gotPath)
			assert.Equal(t, tt.wantRawPath, gotRawPath)
		})
	}
}

func TestHTTPDocumentFetcher_NotFound(t *testing.T) {
	srv := newObjectServer(t, nil)

	f, err := NewHTTPDocumentFetcher(config.HTTP{BaseURL: srv.URL})
	require.NoError(t, err)

	data, err := f.FetchDocument(context.Background(), models.DocumentLocation{Bucket: "b", Key: "k"})

	assert.Nil(t, data)
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestHTTPDocumentFetcher_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	f, err := NewHTTPDocumentFetcher(config.HTTP{BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = f.FetchDocument(context.Background(), models.DocumentLocation{Bucket: "b", Key: "k"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFetchingDocument)
	assert.Contains(t, err.Error(), "403")
}

func TestHTTPDocumentFetcher_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	f, err := NewHTTPDocumentFetcher(config.HTTP{BaseURL: url, Timeout: time.Second})
	require.NoError(t, err)

	_, err = f.FetchDocument(context.Background(), models.DocumentLocation{Bucket: "b", Key: "k"})

	assert.ErrorIs(t, err, ErrFetchingDocument)
}
