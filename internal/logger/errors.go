package logger

import (
	"errors"
)

var (
	// ErrNoAppName is returned by Init without Log.AppName.
	ErrNoAppName = errors.New("log.appName is required")

	// ErrNoServiceName is returned by Init without Log.ServiceName.
	ErrNoServiceName = errors.New("log.serviceName is required")
)
