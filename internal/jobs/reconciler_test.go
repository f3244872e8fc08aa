//go:build unit

package jobs

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRoomStatus struct {
	calls atomic.Int32
	err   error
}

func (f *fakeRoomStatus) ReleaseIdleRooms(context.Context) (int64, error) {
	f.calls.Add(1)
	return 2, f.err
}

func TestReconciler_RunOnce(t *testing.T) {
	fake := &fakeRoomStatus{}
	r := NewReconciler("@every 1h", fake)

	r.RunOnce()
	fake.err = assert.AnError
	r.RunOnce()

	assert.Equal(t, int32(2), fake.calls.Load())
}

func TestReconciler_EmptyScheduleDisables(t *testing.T) {
	fake := &fakeRoomStatus{}
	r := NewReconciler("", fake)

	require.NoError(t, r.Start())
	assert.Empty(t, r.cron.Entries())
	require.NoError(t, r.Stop(context.Background()))
}

func TestReconciler_InvalidSchedule(t *testing.T) {
	r := NewReconciler("not a schedule", &fakeRoomStatus{})

	assert.Error(t, r.Start())
}

func TestReconciler_StartRegistersJob(t *testing.T) {
	r := NewReconciler("@every 1h", &fakeRoomStatus{})

	require.NoError(t, r.Start())
	assert.Len(t, r.cron.Entries(), 1)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, r.Stop(ctx))
}
