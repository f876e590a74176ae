package settings

import "context"

type SettingsService interface {
	GetScheduleConfig(ctx context.Context) (ScheduleConfigResponse, error)
	UpdateScheduleConfig(ctx context.Context, req UpdateScheduleConfigRequest) (ScheduleConfigResponse, error)
}
