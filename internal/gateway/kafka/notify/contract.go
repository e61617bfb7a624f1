package notify

import (
	"dispatch/pkg/logger"
)

type Producer interface {
	Send(topic, key string, value []byte) error
}

type gatewayLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
