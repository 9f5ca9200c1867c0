package main

import (
	"context"
	"log"

	"github.com/fitplan-app/fitplan-backend/config"
	"github.com/fitplan-app/fitplan-backend/internal/bootstrap"
	cronjob "github.com/fitplan-app/fitplan-backend/internal/fitness/cron"
	"github.com/fitplan-app/fitplan-backend/internal/fitness/repository"
	"github.com/fitplan-app/fitplan-backend/internal/fitness/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	store, err := bootstrap.OpenStore(context.Background(), bootstrap.StoreOptions{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatalf("store: %v", err)
	}
	defer store.Close()

	repo := repository.NewStateRepository(store)

	app := service.NewAppService(repo)
	if err := app.Load(); err != nil {
		log.Fatalf("load state: %v", err)
	}

	if cfg.Snapshot.Enabled {
		scheduler := cronjob.NewScheduler(repo, cfg.Snapshot.Spec)
		scheduler.Start()
		defer scheduler.Stop()
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "fitplan-backend",
		Version:     cfg.App.Version,
		Store:       store,
		App:         app,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
