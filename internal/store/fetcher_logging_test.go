package store

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rouaze/fwkey-service/internal/logger"
	"github.com/rouaze/fwkey-service/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedLogger(buf *bytes.Buffer) *logger.Logger {
	l := logger.NewLogger("test")
	l.Logger = l.Output(buf)
	return l
}

func TestLoggingFetcher_LogsSuccess(t *testing.T) {
	var buf bytes.Buffer
	inner := &stubFetcher{data: []byte(plainDocument)}
	f := NewLoggingFetcher("file", newBufferedLogger(&buf)).Wrap(inner)

	data, err := f.FetchDocument(context.Background(), models.DocumentLocation{Bucket: "b", Key: "k.ini"})

	require.NoError(t, err)
	assert.Equal(t, plainDocument, string(data))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "file", entry["backend"])
	assert.Equal(t, "b/k.ini", entry["location"])
	assert.EqualValues(t, len(plainDocument), entry["size"])
}

func TestLoggingFetcher_LogsError(t *testing.T) {
	var buf bytes.Buffer
	inner := &stubFetcher{err: ErrFetchingDocument}
	f := NewLoggingFetcher("s3", newBufferedLogger(&buf)).Wrap(inner)

	_, err := f.FetchDocument(context.Background(), models.DocumentLocation{Bucket: "b", Key: "k"})

	assert.ErrorIs(t, err, ErrFetchingDocument)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, ErrFetchingDocument.Error(), entry["error"])
}

func TestLoggingFetcher_PrefersContextLogger(t *testing.T) {
	var fallback, scoped bytes.Buffer
	inner := &stubFetcher{data: []byte("x")}
	f := NewLoggingFetcher("http", newBufferedLogger(&fallback)).Wrap(inner)

	ctx := newBufferedLogger(&scoped).WithContext(context.Background())
	_, err := f.FetchDocument(ctx, models.DocumentLocation{Bucket: "b", Key: "k"})

	require.NoError(t, err)
	assert.Empty(t, fallback.String())
	assert.NotEmpty(t, scoped.String())
}
