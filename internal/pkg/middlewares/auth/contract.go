package auth

import (
	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type TokenParser interface {
	ParseToken(tokenString string) (entities.Actor, error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
