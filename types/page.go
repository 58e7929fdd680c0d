package types

const (
	DefaultPageSize = 10
	MaxPageSize     = 50
)
