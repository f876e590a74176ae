package settings

import "errors"

var (
	ErrScheduleConfigNotFound = errors.New("schedule configuration not found")
)
