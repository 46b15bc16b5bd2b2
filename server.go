package api

import (
	"log"
	"time"

	"Socialnet/auth"
	"Socialnet/config"
	"Socialnet/controllers"

	"github.com/getsentry/sentry-go"
)

var server = controllers.Server{}

func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}
	auth.Configure(cfg.JWT.Secret, cfg.JWT.TTL)

	if cfg.Sentry.DSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.Sentry.DSN,
			Environment:      cfg.Env,
			AttachStacktrace: true,
		})
		if err != nil {
			log.Printf("[sentry] init failed: %v", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	if err := server.Initialize(cfg); err != nil {
		log.Fatalf("cannot initialize server: %v", err)
	}

	addr := ":" + cfg.Server.Port
	log.Printf("Listening on %s", addr)
	server.Run(addr)
}
