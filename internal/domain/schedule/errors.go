package schedule

import "errors"

var ErrInvalidTimeOfDay = errors.New("invalid time of day")
