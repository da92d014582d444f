package main

import (
	"context"
	"fmt"
	"os"

	"corebank/internal/bootstrap"
	"corebank/internal/domain/accounts"
	"corebank/internal/platform/storage"
	httptransport "corebank/internal/transport/http"
)

func main() {
	opts := bootstrap.Options{
		Service:   "account-service",
		Namespace: "account",
		Setup:     setup,
	}
	if err := bootstrap.Run(context.Background(), opts); err != nil {
		fmt.Fprintf(os.Stderr, "account-service failed: %v\n", err)
		os.Exit(1)
	}
}

func setup(state *bootstrap.State) ([]bootstrap.Registrar, httptransport.Prober, error) {
	recordStore, err := storage.Open(state.Config.Store)
	if err != nil {
		return nil, nil, err
	}
	state.OnShutdown(func(context.Context) error { return recordStore.Close() })

	service, err := accounts.NewService(recordStore, state.Logger.Slog())
	if err != nil {
		return nil, nil, err
	}

	handlers := httptransport.NewAccountHandlers(service, state.Config.Service.Hostname)
	return []bootstrap.Registrar{handlers}, recordStore, nil
}
