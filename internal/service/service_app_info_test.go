package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/music-auth/internal/logger"
	"github.com/MKhiriev/music-auth/models"
	"github.com/stretchr/testify/assert"
)

func TestAppInfoService_GetBuildInfo(t *testing.T) {
	tests := []struct {
		name string
		in   models.AppBuildInfo
		want models.AppBuildInfo
	}{
		{
			name: "full build info",
			in:   models.AppBuildInfo{Version: "1.0.0", Date: "2026-10-19", Commit: "deadbeef"},
			want: models.AppBuildInfo{Version: "1.0.0", Date: "2026-10-19", Commit: "deadbeef"},
		},
		{
			name: "local build",
			in:   models.AppBuildInfo{},
			want: models.AppBuildInfo{Version: "N/A", Date: "N/A", Commit: "N/A"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAppInfoService(tt.in, logger.Nop())
			assert.Equal(t, tt.want, svc.GetBuildInfo(context.Background()))
		})
	}
}
