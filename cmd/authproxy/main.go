package main

import (
	"context"
	"log/slog"
	"os"

	"authproxy/config"
	"authproxy/internal/delivery"
	"authproxy/internal/delivery/api"
	"authproxy/internal/delivery/api/middleware"
	"authproxy/internal/delivery/api/router/handler"
	"authproxy/internal/infra/auth"
	"authproxy/internal/infra/auth/github"
	"authproxy/internal/infra/email"
	"authproxy/internal/infra/httpclient"
	"authproxy/internal/infra/identity/supabase"
	logs "authproxy/internal/infra/log"
	"authproxy/internal/infra/persistence/postgres"
	"authproxy/internal/usecase/impl"

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
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
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
		httpclient.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			github.NewOAuthService,
			supabase.NewClient,
			email.NewMailer,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewLegacyAuthService,
			impl.NewSessionService,
			impl.NewUserService,
			impl.NewOAuthService,
			impl.NewPasswordService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewLegacyAuthHandler,
			handler.NewSessionHandler,
			handler.NewUserHandler,
			handler.NewOAuthHandler,
			handler.NewPasswordHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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
