package settings

import "context"

type ScheduleConfigRepository interface {
	GetByCompanyID(ctx context.Context, companyID string) (ScheduleConfig, error)
	Upsert(ctx context.Context, config ScheduleConfig) (ScheduleConfig, error)
}
