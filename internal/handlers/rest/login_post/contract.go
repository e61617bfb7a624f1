//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=login_post_test
package login_post

import (
	"context"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Authenticate(ctx context.Context, login, pin string) (*entities.Driver, error)
}

type TokenIssuer interface {
	IssueToken(actor entities.Actor) (string, time.Time, error)
}
