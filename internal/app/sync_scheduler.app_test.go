package app

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"coinwatch/internal/domain"
	mock_service "coinwatch/internal/service/mocks"
)

func TestSyncScheduler(t *testing.T) {
	t.Run("run invokes the sync", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cryptoService := mock_service.NewMockCryptoService(ctrl)
		scheduler := NewSyncScheduler(cryptoService, time.Minute)

		cryptoService.EXPECT().Sync(gomock.Any()).Return(&domain.SyncResult{
			Message: "synced 50 of 50 assets",
		}, nil)

		scheduler.runOnce()
	})

	t.Run("run swallows sync failures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cryptoService := mock_service.NewMockCryptoService(ctrl)
		scheduler := NewSyncScheduler(cryptoService, time.Minute)

		cryptoService.EXPECT().Sync(gomock.Any()).Return(nil, fmt.Errorf("timeout"))

		scheduler.runOnce()
	})

	t.Run("start twice fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cryptoService := mock_service.NewMockCryptoService(ctrl)
		scheduler := NewSyncScheduler(cryptoService, time.Hour)

		require.NoError(t, scheduler.Start())
		defer scheduler.Stop()

		require.Error(t, scheduler.Start())
	})

	t.Run("stop is idempotent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cryptoService := mock_service.NewMockCryptoService(ctrl)
		scheduler := NewSyncScheduler(cryptoService, time.Hour)

		require.NoError(t, scheduler.Start())
		scheduler.Stop()
		scheduler.Stop()
	})
}
