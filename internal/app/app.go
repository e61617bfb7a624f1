package app

import (
	"dispatch/internal/handlers/rest/assignment_status_post"
	"dispatch/internal/handlers/rest/assignments_auto_post"
	"dispatch/internal/handlers/rest/driver_post"
	"dispatch/internal/handlers/rest/login_post"
	"dispatch/internal/handlers/rest/order_post"
	"dispatch/internal/handlers/rest/schedule_override_put"
	"dispatch/internal/handlers/rest/schedule_resolve_get"
	"dispatch/internal/pkg/middlewares/auth"
	orderService "dispatch/internal/service/order"
	"dispatch/pkg/background"
)

type Application struct {
	ServiceSchedule   ServiceSchedule
	ServiceDriver     ServiceDriver
	ServiceOrder      ServiceOrder
	ServiceAutoAssign ServiceAutoAssign
	ServiceLifecycle  ServiceLifecycle
	ServiceRecovery   ServiceRecovery
	TokenManager      TokenManager
	BackgroundWorkers *background.Worker
}

type ServiceSchedule interface {
	schedule_override_put.Service
	schedule_resolve_get.Service
}

type ServiceDriver interface {
	login_post.Service
	driver_post.Service
}

type ServiceOrder interface {
	order_post.Service
}

type ServiceAutoAssign interface {
	assignments_auto_post.Service
}

type ServiceLifecycle interface {
	assignment_status_post.Service
}

type ServiceRecovery interface {
	assignment_status_post.RecoveryService
}

type TokenManager interface {
	login_post.TokenIssuer
	auth.TokenParser
}

type KafkaWorkerApp struct {
	OrderService *orderService.Order
}
