//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_post_test
package driver_post

import (
	"context"

	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CreateDriver(ctx context.Context, name, login, pin string) (int64, error)
}
