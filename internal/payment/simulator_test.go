package payment

import (
	"context"
	"testing"
	"time"

	"github.com/sahilahmed21/HomeShare/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestSimulator_Charge_Approves(t *testing.T) {
	s := NewSimulator(10*time.Millisecond, newTestLogger(t))

	err := s.Charge(context.Background(), "u1", 300)

	require.NoError(t, err)
}

func TestSimulator_Charge_NonPositiveAmount(t *testing.T) {
	s := NewSimulator(10*time.Millisecond, newTestLogger(t))

	err := s.Charge(context.Background(), "u1", 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfirmationFailed)
}

func TestSimulator_Charge_ContextCancelled(t *testing.T) {
	s := NewSimulator(time.Second, newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Charge(ctx, "u1", 300)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
