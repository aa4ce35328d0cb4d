package utils

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient()

	require.NotNil(t, client)
	require.NotNil(t, client.Client)
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient()
	client2 := NewHTTPClient()

	assert.NotSame(t, client1.Client, client2.Client)
}

func TestNewHTTPClient_SendsUserAgent(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("User-Agent")
	}))
	defer srv.Close()

	_, err := NewHTTPClient().R().Get(srv.URL)

	require.NoError(t, err)
	assert.Equal(t, userAgent, got)
}

func TestHTTPClient_WithTimeout(t *testing.T) {
	c := NewHTTPClient().WithTimeout(5 * time.Second)
	assert.Equal(t, 5*time.Second, c.GetClient().Timeout)

	c = NewHTTPClient().WithTimeout(0)
	assert.Zero(t, c.GetClient().Timeout)
}

func TestHTTPClient_WithDebugLog(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)

	_, err := NewHTTPClient().WithDebugLog(log).R().Get(srv.URL + "/api/ping")

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"status":418`)
	assert.Contains(t, buf.String(), "/api/ping")
}
