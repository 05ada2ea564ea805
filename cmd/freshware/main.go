package main

import (
	"context"
	"log/slog"
	"os"

	"freshware/config"
	"freshware/internal/delivery"
	"freshware/internal/delivery/http"
	"freshware/internal/delivery/http/middleware"
	"freshware/internal/delivery/http/router/handler"
	"freshware/internal/infra/auth"
	logs "freshware/internal/infra/log"
	"freshware/internal/infra/persistence/postgres"
	"freshware/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewSessionRepository,
			postgres.NewAccountRepository,
			postgres.NewContactRepository,
			postgres.NewOpportunityRepository,
			postgres.NewMeetingRepository,
			postgres.NewTaskRepository,
			postgres.NewProposalRepository,
			postgres.NewProjectRepository,
			postgres.NewDiscoverySessionRepository,
			postgres.NewActivityRepository,
			postgres.NewAccessRequestRepository,
			postgres.NewIntegrationRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewWebhookService,
			impl.NewAccountService,
			impl.NewContactService,
			impl.NewOpportunityService,
			impl.NewMeetingService,
			impl.NewTaskService,
			impl.NewProposalService,
			impl.NewProjectService,
			impl.NewDiscoveryService,
			impl.NewActivityService,
			impl.NewAccessRequestService,
			impl.NewUserService,
			impl.NewIntegrationService,
			impl.NewDashboardService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewRequestIDMiddleware,
			middleware.NewSessionMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewWebhookHandler,
			handler.NewAccountHandler,
			handler.NewContactHandler,
			handler.NewOpportunityHandler,
			handler.NewMeetingHandler,
			handler.NewTaskHandler,
			handler.NewProposalHandler,
			handler.NewProjectHandler,
			handler.NewDiscoveryHandler,
			handler.NewActivityHandler,
			handler.NewAccessRequestHandler,
			handler.NewUserHandler,
			handler.NewIntegrationHandler,
			handler.NewDashboardHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
