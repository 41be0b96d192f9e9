package util

import "errors"

var (
	ErrHabitNotFound = errors.New("习惯不存在")
)
