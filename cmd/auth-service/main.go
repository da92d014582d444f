package main

import (
	"context"
	"fmt"
	"os"

	"corebank/internal/bootstrap"
	"corebank/internal/domain/auth"
	authstore "corebank/internal/domain/auth/store"
	"corebank/internal/platform/storage"
	httptransport "corebank/internal/transport/http"
)

func main() {
	opts := bootstrap.Options{
		Service:   "auth-service",
		Namespace: "auth",
		Setup:     setup,
	}
	if err := bootstrap.Run(context.Background(), opts); err != nil {
		fmt.Fprintf(os.Stderr, "auth-service failed: %v\n", err)
		os.Exit(1)
	}
}

func setup(state *bootstrap.State) ([]bootstrap.Registrar, httptransport.Prober, error) {
	storeCfg := authstore.Config{
		Driver: state.Config.Credentials.Driver,
		Redis: &authstore.RedisConfig{
			Addr:     state.Config.Credentials.Redis.Addr,
			Username: state.Config.Credentials.Redis.Username,
			Password: state.Config.Credentials.Redis.Password,
			DB:       state.Config.Credentials.Redis.DB,
			Prefix:   state.Config.Credentials.Redis.Prefix,
		},
	}

	var deps authstore.Dependencies
	var prober httptransport.Prober
	if storeCfg.Driver == authstore.DriverDatabase {
		recordStore, err := storage.Open(state.Config.Store)
		if err != nil {
			return nil, nil, err
		}
		state.OnShutdown(func(context.Context) error { return recordStore.Close() })
		deps.RecordStore = recordStore
		prober = recordStore
	}

	credStore, err := authstore.New(storeCfg, deps)
	if err != nil {
		return nil, nil, err
	}
	state.OnShutdown(credStore.Close)

	issuer, err := auth.NewIssuer(credStore, state.Codec, state.Logger.Slog(), state.Metrics)
	if err != nil {
		return nil, nil, err
	}

	handlers := httptransport.NewAuthHandlers(issuer, state.Validator)
	return []bootstrap.Registrar{handlers}, prober, nil
}
