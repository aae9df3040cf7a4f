package service

const (
	MinPasswordLength     = 8
	analysisCacheKeyStart = "analysis:"
)
