package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/annusingmar/signup-backend/internal/data"
	"github.com/annusingmar/signup-backend/internal/registration"
	"github.com/annusingmar/signup-backend/internal/signup"
	"github.com/charmbracelet/log"
)

// application holds what the handlers share
type application struct {
	config    configuration
	logger    *log.Logger
	users     userStore
	registrar signup.Registrar
	inflight  *signup.Guard
}

func main() {
	configPath := flag.String("config", "config.toml", "path to TOML config file")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "signup",
	})

	config, err := parseConfig(*configPath, logger)
	if err != nil {
		logger.Fatal("failed reading config", "err", err)
	}

	level, err := log.ParseLevel(config.Log.Level)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", config.Log.Level)
		level = log.InfoLevel
	}
	logger.SetLevel(level)

	pool, err := openDBConnection(config.Database.connectionString())
	if err != nil {
		logger.Fatal("failed connecting to database", "err", err)
	}
	defer pool.Close()

	if err = data.Migrate(context.Background(), pool, logger); err != nil {
		logger.Fatal("failed applying migrations", "err", err)
	}

	app := &application{
		config:   config,
		logger:   logger,
		users:    data.NewModel(pool).Users,
		inflight: signup.NewGuard(),
	}

	if config.Registration.Endpoint != "" {
		logger.Info("forwarding signups", "endpoint", config.Registration.Endpoint)
		app.registrar = registration.NewClient(config.Registration.Endpoint,
			time.Duration(config.Registration.TimeoutSeconds)*time.Second)
	} else {
		app.registrar = localRegistrar{users: app.users}
	}

	server := &http.Server{
		Addr:     app.config.Web.Listen,
		ErrorLog: logger.StandardLog(log.StandardLogOptions{ForceLevel: log.ErrorLevel}),
		Handler:  app.routes(),
	}

	app.logger.Info("starting http server", "listen", config.Web.Listen)
	err = server.ListenAndServe()
	logger.Fatal(err)
}
