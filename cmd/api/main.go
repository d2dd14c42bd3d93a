package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/studio-rental/internal/audit"
	"github.com/BruksfildServices01/studio-rental/internal/config"
	dbpkg "github.com/BruksfildServices01/studio-rental/internal/db"
	"github.com/BruksfildServices01/studio-rental/internal/infra/storage"
	"github.com/BruksfildServices01/studio-rental/internal/routes"
	"github.com/BruksfildServices01/studio-rental/internal/timezone"
)

func main() {

	cfg := config.Load()
	if !timezone.IsValid(cfg.Timezone) {
		log.Printf("invalid TIMEZONE %q, using %s", cfg.Timezone, timezone.DefaultTimezone)
		cfg.Timezone = timezone.DefaultTimezone
	}

	db := dbpkg.NewDB(cfg)
	rdb := dbpkg.NewRedis(cfg.RedisURL)
	if rdb != nil {
		defer rdb.Close()
	}

	st, err := storage.New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("failed to init storage: %v", err)
	}

	sinks := []audit.Sink{audit.New(db)}
	if cfg.AMQPURL != "" {
		pub, err := audit.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			log.Printf("rabbitmq unavailable, events not published: %v", err)
		} else {
			defer pub.Close()
			sinks = append(sinks, pub)
		}
	}

	r := gin.Default()

	routes.RegisterRoutes(r, routes.Deps{
		DB:      db,
		Config:  cfg,
		Storage: st,
		Audit:   audit.NewDispatcher(sinks...),
		Redis:   rdb,
		Now:     timezone.Clock(cfg.Timezone),
	})

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
