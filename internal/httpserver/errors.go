package httpserver

import "errors"

var (
	errJobNotFound        = errors.New("job not found")
	errJobNotReady        = errors.New("job has not finished")
	errJobResultExpired   = errors.New("job result has expired")
	errInvalidToken       = errors.New("invalid or expired token")
	errInvalidCredentials = errors.New("invalid username or password")
)
