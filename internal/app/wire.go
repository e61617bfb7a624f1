//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	notifyGateway "dispatch/internal/gateway/kafka/notify"
	"dispatch/internal/handlers/tasks/assignment_autoplan"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/jwtauth"
	kafkapkg "dispatch/internal/pkg/kafka"

	assignmentRepo "dispatch/internal/repository/assignment"
	driverRepo "dispatch/internal/repository/driver"
	orderRepo "dispatch/internal/repository/order"
	scheduleRepo "dispatch/internal/repository/schedule"
	vehicleRepo "dispatch/internal/repository/vehicle"

	autoassignService "dispatch/internal/service/autoassign"
	driverService "dispatch/internal/service/driver"
	lifecycleService "dispatch/internal/service/lifecycle"
	orderService "dispatch/internal/service/order"
	recoveryService "dispatch/internal/service/recovery"
	scheduleService "dispatch/internal/service/schedule"

	"dispatch/pkg/logger"
	"dispatch/pkg/tx"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer *kafkapkg.Producer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideAutoplanInterval,

		provideScheduleRepository,
		provideAssignmentRepository,
		provideOrderRepository,
		provideVehicleRepository,
		provideDriverRepository,

		provideNotifyGateway,
		provideTokenManager,

		provideServiceSchedule,
		provideServiceDriver,
		provideServiceOrder,
		provideServiceAutoAssign,
		provideServiceLifecycle,
		provideServiceRecovery,

		provideAutoplanTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceSchedule), new(*scheduleService.Schedule)),
		wire.Bind(new(ServiceDriver), new(*driverService.Driver)),
		wire.Bind(new(ServiceOrder), new(*orderService.Order)),
		wire.Bind(new(ServiceAutoAssign), new(*autoassignService.AutoAssign)),
		wire.Bind(new(ServiceLifecycle), new(*lifecycleService.Lifecycle)),
		wire.Bind(new(ServiceRecovery), new(*recoveryService.Recovery)),
		wire.Bind(new(TokenManager), new(*jwtauth.Manager)),

		wire.Bind(new(scheduleService.Repository), new(*scheduleRepo.Repository)),
		wire.Bind(new(driverService.Repository), new(*driverRepo.Repository)),
		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),

		wire.Bind(new(autoassignService.AssignmentRepository), new(*assignmentRepo.Repository)),
		wire.Bind(new(autoassignService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(autoassignService.VehicleRepository), new(*vehicleRepo.Repository)),
		wire.Bind(new(autoassignService.Resolver), new(*scheduleService.Schedule)),
		wire.Bind(new(autoassignService.Broadcaster), new(*notifyGateway.Gateway)),

		wire.Bind(new(lifecycleService.Repository), new(*assignmentRepo.Repository)),
		wire.Bind(new(lifecycleService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(lifecycleService.Notifier), new(*notifyGateway.Gateway)),
		wire.Bind(new(lifecycleService.Broadcaster), new(*notifyGateway.Gateway)),

		wire.Bind(new(recoveryService.VehicleRepository), new(*vehicleRepo.Repository)),
		wire.Bind(new(recoveryService.AssignmentRepository), new(*assignmentRepo.Repository)),
		wire.Bind(new(recoveryService.DriverService), new(*driverService.Driver)),
		wire.Bind(new(recoveryService.Broadcaster), new(*notifyGateway.Gateway)),

		wire.Bind(new(scheduleService.TxManager), new(*tx.Manager)),
		wire.Bind(new(driverService.TxManager), new(*tx.Manager)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(autoassignService.TxManager), new(*tx.Manager)),
		wire.Bind(new(lifecycleService.TxManager), new(*tx.Manager)),
		wire.Bind(new(recoveryService.TxManager), new(*tx.Manager)),

		wire.Bind(new(assignment_autoplan.Service), new(*autoassignService.AutoAssign)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-created)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideOrderRepository,
		provideServiceOrder,

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
