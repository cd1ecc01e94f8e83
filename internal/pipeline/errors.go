package pipeline

import "errors"

var (
	ErrAnchorNotFound  = errors.New("anchor action not found")
	ErrDuplicateAction = errors.New("action already registered")
	ErrNoProjectPath   = errors.New("project path is required")
	ErrInvalidPackage  = errors.New("invalid package name")
	ErrProjectExists   = errors.New("project directory already exists, use --force or --update")
)
