package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"freshdeal/config"
	deliverycontext "freshdeal/internal/delivery/context"
	domainerrors "freshdeal/internal/domain/errors"
	"freshdeal/internal/domain/lifecycle"
	"freshdeal/internal/errors"
	"freshdeal/internal/infra/api"
	"freshdeal/internal/infra/gateway"
	"freshdeal/internal/infra/geocode"
	logs "freshdeal/internal/infra/log"
	"freshdeal/internal/infra/qrcode"
	"freshdeal/internal/infra/session"
	"freshdeal/internal/store"
	"freshdeal/internal/usecase/impl"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

// Supported commands are listed in commands.go.

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd, ok := lookupCommand(os.Args[1])
	if !ok {
		printUsage()
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n", os.Args[1])
		os.Exit(1)
	}

	if err := run(cmd, os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", domainerrors.MessageOf(err, err.Error()))
		os.Exit(1)
	}
}

func run(cmd *command, args []string) error {
	flags := cmd.flags()
	if err := flags.fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}

		return err
	}

	var c *cli
	app := fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger.With(slog.String("component", "fx"))}
		}),
		fx.Invoke(
			impl.RegisterAddressListener,
			func(deps cliDeps) { c = newCLI(deps, os.Stdout, os.Stdin) },
		),
	)

	startCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return err
	}
	defer func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer stopCancel()
		if err := app.Stop(stopCtx); err != nil {
			slog.Error("Failed to stop gracefully", slog.Any("error", err))
		}
	}()

	logger := c.logger.With(slog.String("command", cmd.name), slog.String("run_id", uuid.NewString()))
	ctx := deliverycontext.WithLogger(context.Background(), logger)

	if cmd.needsSession {
		if _, err := c.users.RestoreSession(ctx); err != nil {
			return err
		}
	}

	start := time.Now()
	err := cmd.run(ctx, c, flags)
	logger.Debug("Command finished", slog.Duration("elapsed", time.Since(start)), slog.Bool("ok", err == nil))

	return err
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		gateway.New,
		fx.Annotate(
			func(client *gateway.Client) *gateway.Client { return client },
			fx.As(new(api.Requester)),
		),
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			api.NewUserRepository,
			api.NewAddressRepository,
			api.NewRestaurantRepository,
			api.NewCartRepository,
			api.NewPurchaseRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			session.New,
			qrcode.New,
			geocode.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			store.New,
			store.ProvideTaskQueue,
			impl.NewSessionService,
			impl.NewUserService,
			impl.NewAddressService,
			impl.NewRestaurantService,
			impl.NewCartService,
			impl.NewPurchaseService,
		),
	)
}
