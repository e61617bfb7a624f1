package app

import (
	"context"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
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

	"dispatch/pkg/background"
	"dispatch/pkg/logger"
	"dispatch/pkg/querier"
	"dispatch/pkg/tx"
)

type (
	AutoplanInterval time.Duration
)

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideScheduleRepository(querier *querier.Querier) *scheduleRepo.Repository {
	return scheduleRepo.New(querier)
}

func provideAssignmentRepository(querier *querier.Querier) *assignmentRepo.Repository {
	return assignmentRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideVehicleRepository(querier *querier.Querier) *vehicleRepo.Repository {
	return vehicleRepo.New(querier)
}

func provideDriverRepository(querier *querier.Querier) *driverRepo.Repository {
	return driverRepo.New(querier)
}

func provideNotifyGateway(log logger.Logger, producer *kafkapkg.Producer, cfg *config.Config) *notifyGateway.Gateway {
	return notifyGateway.New(log, producer, notifyGateway.Topics{
		OrderDelivered:      cfg.Kafka.Topics.OrderDelivered,
		PaymentStatus:       cfg.Kafka.Topics.PaymentStatus,
		AssignmentBroadcast: cfg.Kafka.Topics.AssignmentBroadcast,
	})
}

func provideTokenManager(cfg *config.Config) *jwtauth.Manager {
	return jwtauth.New(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
}

func provideServiceSchedule(
	repository scheduleService.Repository,
	txManager scheduleService.TxManager,
) *scheduleService.Schedule {
	return scheduleService.New(repository, txManager)
}

func provideServiceDriver(
	repository driverService.Repository,
	txManager driverService.TxManager,
) *driverService.Driver {
	return driverService.New(repository, txManager)
}

func provideServiceOrder(
	repository orderService.Repository,
	txManager orderService.TxManager,
) *orderService.Order {
	return orderService.New(repository, txManager)
}

func provideServiceAutoAssign(
	log logger.Logger,
	assignments autoassignService.AssignmentRepository,
	orders autoassignService.OrderRepository,
	vehicles autoassignService.VehicleRepository,
	resolver autoassignService.Resolver,
	broadcaster autoassignService.Broadcaster,
	txManager autoassignService.TxManager,
	cfg *config.Config,
) *autoassignService.AutoAssign {
	return autoassignService.New(
		log,
		assignments,
		orders,
		vehicles,
		resolver,
		broadcaster,
		txManager,
		cfg.Dispatch.ManualOnlyVehicles,
	)
}

func provideServiceLifecycle(
	log logger.Logger,
	repository lifecycleService.Repository,
	orders lifecycleService.OrderRepository,
	notifier lifecycleService.Notifier,
	broadcaster lifecycleService.Broadcaster,
	txManager lifecycleService.TxManager,
) *lifecycleService.Lifecycle {
	return lifecycleService.New(log, repository, orders, notifier, broadcaster, txManager)
}

func provideServiceRecovery(
	log logger.Logger,
	vehicles recoveryService.VehicleRepository,
	assignments recoveryService.AssignmentRepository,
	driverSvc recoveryService.DriverService,
	broadcaster recoveryService.Broadcaster,
	txManager recoveryService.TxManager,
) *recoveryService.Recovery {
	return recoveryService.New(log, vehicles, assignments, driverSvc, broadcaster, txManager)
}

func provideAutoplanInterval(cfg *config.Config) AutoplanInterval {
	return AutoplanInterval(cfg.Tasks.AutoplanInterval)
}

func provideAutoplanTask(
	log logger.Logger,
	autoAssign assignment_autoplan.Service,
	interval AutoplanInterval,
) *assignment_autoplan.AssignmentAutoplan {
	return assignment_autoplan.NewAssignmentAutoplan(log, autoAssign, time.Duration(interval))
}

func provideTaskList(
	autoplanTask *assignment_autoplan.AssignmentAutoplan,
) []background.Task {
	return []background.Task{
		autoplanTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
