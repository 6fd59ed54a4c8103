package cron

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestScheduler_RunsJobOnStart(t *testing.T) {
	s := NewScheduler(time.Hour)
	ran := make(chan struct{}, 1)
	s.Add("noop", func(ctx context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	})

	s.Start()
	defer s.Stop()

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run on start")
	}
}

func TestScheduler_StopCancelsJobContext(t *testing.T) {
	s := NewScheduler(time.Hour)
	ctxCh := make(chan context.Context, 1)
	s.Add("capture", func(ctx context.Context) error {
		select {
		case ctxCh <- ctx:
		default:
		}
		return nil
	})

	s.Start()

	var ctx context.Context
	select {
	case ctx = <-ctxCh:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run on start")
	}

	s.Stop()
	require.Error(t, ctx.Err())
}
