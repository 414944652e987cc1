package service

import (
	"context"
	"testing"

	"github.com/rouaze/fwkey-service/internal/config"
	"github.com/rouaze/fwkey-service/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuildInfoService(t *testing.T) {
	linked := models.NewBuildInfo("1.4.0", "2026-10-01", "abc123")

	tests := []struct {
		name    string
		build   models.BuildInfo
		cfg     config.App
		want    models.BuildInfo
		wantErr error
	}{
		{
			name:  "linked build info",
			build: linked,
			want:  linked,
		},
		{
			name:  "configured version overrides linked version",
			build: linked,
			cfg:   config.App{Version: "1.4.1-hotfix"},
			want:  models.BuildInfo{Version: "1.4.1-hotfix", Date: "2026-10-01", Commit: "abc123"},
		},
		{
			name: "configured version without build metadata",
			cfg:  config.App{Version: "1.0.0"},
			want: models.BuildInfo{Version: "1.0.0"},
		},
		{
			name:    "no version at all",
			wantErr: ErrVersionIsNotSpecified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewBuildInfoService(tt.build, tt.cfg)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, svc)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, svc.GetBuildInfo(context.Background()))
		})
	}
}
