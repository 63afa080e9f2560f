package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert task")
	ErrFailedToUpdate = errors.New("failed to update task")
)
