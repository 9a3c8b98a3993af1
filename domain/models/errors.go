package models

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrTaskNotFound       = errors.New("task not found")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
