package domain

import "errors"

var (
	ErrConfigRead   = errors.New("failed to read config file")
	ErrConfigDecode = errors.New("invalid config file format")

	ErrRequestPerform  = errors.New("failed to perform request")
	ErrResponseStatus  = errors.New("got unexpected response status")
	ErrGoQueryDocument = errors.New("failed to create document reader")

	ErrPlayerNotFound = errors.New("no player matched the search query")
	ErrTeamNotFound   = errors.New("no team matched the search query")

	ErrEmptyQuery = errors.New("query must not be empty")
	ErrProxyPath  = errors.New("proxy path must be absolute")

	// The messages below are user-facing and surface verbatim in chat
	// and API responses.
	ErrPlayerNameMissing = errors.New("请提供选手名称")
	ErrTeamNameMissing   = errors.New("请提供战队名称")
)
