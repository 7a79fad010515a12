package careercenter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFetchTables(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sourcePage))
	}))
	defer server.Close()

	source, err := NewSourceClient(SourceOptions{Url: server.URL})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	tables, err := source.FetchTables(ctx)
	require.NoError(t, err)
	require.Len(t, tables, 2)
	require.Equal(t, "Thema", tables[0].Headers[0])
	require.Len(t, tables[0].Rows, 1)
}

func TestFetchTablesStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	source, err := NewSourceClient(SourceOptions{Url: server.URL})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	_, err = source.FetchTables(ctx)
	require.Error(t, err)
}
