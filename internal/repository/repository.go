package repository

import "errors"

// ErrNotFound возвращается репозиториями, когда запись отсутствует
var ErrNotFound = errors.New("record not found")
