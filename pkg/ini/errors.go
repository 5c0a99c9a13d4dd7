package ini

import "errors"

var (
	ErrParse    = errors.New("ini: parse failed")
	ErrWrite    = errors.New("ini: write failed")
	ErrEncode   = errors.New("ini: record failed validation before writing")
	ErrNoHeader = errors.New("ini: record type has no section header")
)
