package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/service"
)

// mockMirrorer drives the worker with a hand-fed job channel and records
// every Mirror call.
type mockMirrorer struct {
	jobs     chan service.AvatarMirrorJob
	mirrorFn func(ctx context.Context, job service.AvatarMirrorJob) error

	mu       sync.Mutex
	mirrored []service.AvatarMirrorJob
}

func newMockMirrorer(mirrorFn func(ctx context.Context, job service.AvatarMirrorJob) error) *mockMirrorer {
	return &mockMirrorer{
		jobs:     make(chan service.AvatarMirrorJob, 8),
		mirrorFn: mirrorFn,
	}
}

func (m *mockMirrorer) Jobs() <-chan service.AvatarMirrorJob {
	return m.jobs
}

func (m *mockMirrorer) Mirror(ctx context.Context, job service.AvatarMirrorJob) error {
	m.mu.Lock()
	m.mirrored = append(m.mirrored, job)
	m.mu.Unlock()

	if m.mirrorFn != nil {
		return m.mirrorFn(ctx, job)
	}
	return nil
}

func (m *mockMirrorer) mirroredJobs() []service.AvatarMirrorJob {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]service.AvatarMirrorJob(nil), m.mirrored...)
}

func TestAvatarMirrorWorker_ProcessesJobs(t *testing.T) {
	mirrorer := newMockMirrorer(nil)
	worker := NewAvatarMirrorWorker(mirrorer, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		worker.Run(ctx)
		close(done)
	}()

	job := service.AvatarMirrorJob{UserID: uuid.New(), ProviderURL: "https://lh3.example.com/photo.jpg"}
	mirrorer.jobs <- job

	require.Eventually(t, func() bool {
		return len(mirrorer.mirroredJobs()) == 1
	}, time.Second, 10*time.Millisecond)

	assert.Equal(t, job, mirrorer.mirroredJobs()[0])

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after context cancellation")
	}
}

// TestAvatarMirrorWorker_SurvivesFailedJob verifies a failed mirror does not
// stop the worker from draining later jobs.
func TestAvatarMirrorWorker_SurvivesFailedJob(t *testing.T) {
	calls := 0
	mirrorer := newMockMirrorer(func(_ context.Context, _ service.AvatarMirrorJob) error {
		calls++
		if calls == 1 {
			return errors.New("provider unreachable")
		}
		return nil
	})
	worker := NewAvatarMirrorWorker(mirrorer, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go worker.Run(ctx)

	mirrorer.jobs <- service.AvatarMirrorJob{UserID: uuid.New(), ProviderURL: "https://bad.example.com/a"}
	mirrorer.jobs <- service.AvatarMirrorJob{UserID: uuid.New(), ProviderURL: "https://good.example.com/b"}

	require.Eventually(t, func() bool {
		return len(mirrorer.mirroredJobs()) == 2
	}, time.Second, 10*time.Millisecond)
}

func TestWorkers_RunLaunchesAll(t *testing.T) {
	first := newMockMirrorer(nil)
	second := newMockMirrorer(nil)

	aggregate := NewWorkers(
		NewAvatarMirrorWorker(first, logger.Nop()),
		NewAvatarMirrorWorker(second, logger.Nop()),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	aggregate.Run(ctx)

	first.jobs <- service.AvatarMirrorJob{UserID: uuid.New()}
	second.jobs <- service.AvatarMirrorJob{UserID: uuid.New()}

	require.Eventually(t, func() bool {
		return len(first.mirroredJobs()) == 1 && len(second.mirroredJobs()) == 1
	}, time.Second, 10*time.Millisecond)
}
