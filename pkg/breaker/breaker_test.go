package breaker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ostrenko/circulation-service/pkg/breaker"
)

func Test_circuitBreaker_Call(t *testing.T) {
	successfulService := func() error { return nil }
	failingService := func() error { return errors.New("service error") }

	t.Run("stays closed on successes", func(t *testing.T) {
		cb := breaker.New(10, 2*time.Second, 0.30, 3)
		for i := 0; i < 80; i++ {
			require.NoError(t, cb.Call(successfulService))
		}
	})

	t.Run("opens after exceeding percentile", func(t *testing.T) {
		cb := breaker.New(10, time.Minute, 0.30, 3)
		for i := 0; i < 3; i++ {
			require.Error(t, cb.Call(failingService))
		}
		err := cb.Call(successfulService)
		require.ErrorIs(t, err, breaker.ErrOpen)
	})

	t.Run("recovers through half-open", func(t *testing.T) {
		cb := breaker.New(10, 10*time.Millisecond, 0.30, 2)
		for i := 0; i < 3; i++ {
			require.Error(t, cb.Call(failingService))
		}
		require.ErrorIs(t, cb.Call(successfulService), breaker.ErrOpen)

		time.Sleep(20 * time.Millisecond)
		for i := 0; i < 5; i++ {
			require.NoError(t, cb.Call(successfulService))
		}
	})

	t.Run("reset closes the breaker", func(t *testing.T) {
		cb := breaker.New(10, time.Minute, 0.30, 3)
		for i := 0; i < 3; i++ {
			require.Error(t, cb.Call(failingService))
		}
		cb.Reset()
		require.NoError(t, cb.Call(successfulService))
	})
}
