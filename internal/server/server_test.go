package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/comfy-hf-uploader/internal/config"
	"github.com/MKhiriev/comfy-hf-uploader/internal/handler"
	"github.com/MKhiriev/comfy-hf-uploader/internal/logger"
	"github.com/MKhiriev/comfy-hf-uploader/internal/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer_NoHandlers(t *testing.T) {
	s, err := NewServer(nil, config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())

	assert.Nil(t, s)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewHTTPServer_Timeouts(t *testing.T) {
	h := newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: ":8189", RequestTimeout: 3 * time.Second}, logger.Nop())

	assert.Equal(t, ":8189", h.server.Addr)
	assert.Equal(t, 3*time.Second, h.server.ReadTimeout)
	assert.Zero(t, h.server.WriteTimeout)

	h = newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: ":8189"}, logger.Nop())
	assert.Zero(t, h.server.ReadTimeout)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	handlers, err := handler.NewHandlers(nil, config.Server{HTTPAddress: "127.0.0.1:0"}, status.Nop(), logger.Nop())
	require.NoError(t, err)

	s, err := NewServer(handlers, config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.(*server).run(ctx)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancellation")
	}
}

func TestRun_ReturnsWhenListenFails(t *testing.T) {
	s := &server{
		httpServer: newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: "256.0.0.1:bad"}, logger.Nop()),
		logger:     logger.Nop(),
	}

	done := make(chan struct{})
	go func() {
		s.run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after listen failure")
	}
}
