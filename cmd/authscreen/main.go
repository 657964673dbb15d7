package main

import (
	"context"
	"log/slog"
	"os"

	"authscreen/config"
	"authscreen/internal/delivery"
	"authscreen/internal/delivery/api"
	"authscreen/internal/delivery/api/router/handler"
	"authscreen/internal/domain/service"
	"authscreen/internal/infra/auth/google"
	logs "authscreen/internal/infra/log"
	"authscreen/internal/infra/prompt"
	"authscreen/internal/infra/supabase"
	"authscreen/internal/presentation/screen"
	"authscreen/internal/usecase"
	"authscreen/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Controller usecase.AuthController
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectPresentation(),
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
		supabase.NewBucket,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			google.NewRequestBridge,
			google.NewClient,
			supabase.NewClient,
			prompt.NewInbox,
			newAlerter,
			fx.Annotate(
				prompt.NewRequestConfirmer,
				fx.As(new(service.Confirmer)),
			),
		),
	)
}

// newAlerter exposes the inbox as the alert sink of the controller and profile view.
func newAlerter(inbox *prompt.Inbox) service.Alerter {
	return inbox
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthController,
		),
	)
}

func injectPresentation() fx.Option {
	return fx.Options(
		fx.Provide(
			screen.New,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
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

// startServer configures the provider and restores the stored session before
// any delivery accepts requests.
func startServer(ctx context.Context, params startServerParams) {
	params.Lifecycle.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			params.Controller.Start(startCtx)

			for _, d := range params.Deliveries {
				go func() {
					if err := d.Serve(ctx); err != nil {
						slog.Error("Failed to start server", slog.Any("error", err))
						os.Exit(1)
					}
				}()
			}

			return nil
		},
	})
}
