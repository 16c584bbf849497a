package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeServer struct {
	listenErr error
	stopped   chan struct{}
}

func newFakeServer(listenErr error) *fakeServer {
	return &fakeServer{listenErr: listenErr, stopped: make(chan struct{})}
}

func (s *fakeServer) Listen(string) error {
	if s.listenErr != nil {
		return s.listenErr
	}
	<-s.stopped
	return nil
}

func (s *fakeServer) Shutdown() error {
	close(s.stopped)
	return nil
}

func TestServe_ListenFailureIsReturned(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bindErr := errors.New("listen tcp :8000: bind: address already in use")
	cleaned := false

	err := serve(ctx, newFakeServer(bindErr), ":8000", func() error {
		cleaned = true
		return nil
	}, zap.NewNop())

	require.Error(t, err)
	assert.ErrorIs(t, err, bindErr)
	assert.True(t, cleaned)
}

func TestServe_ShutdownOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	srv := newFakeServer(nil)
	cleaned := make(chan struct{})

	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, srv, ":8000", func() error {
			close(cleaned)
			return errors.New("firestore already closed")
		}, zap.NewNop())
	}()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("serve did not return after cancellation")
	}
	_, ok := <-cleaned
	assert.False(t, ok)
}
