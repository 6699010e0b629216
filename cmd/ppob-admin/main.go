package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v11"
	"github.com/fsdevblog/ppob-ledger/internal/app"
	"github.com/fsdevblog/ppob-ledger/internal/config"
	"github.com/fsdevblog/ppob-ledger/internal/domain"
	"github.com/fsdevblog/ppob-ledger/internal/logger"
	"github.com/sirupsen/logrus"
)

const minPasswordLen = 6

type adminEnv struct {
	DatabaseDSN   string `env:"DATABASE_URI"`
	MigrationsDir string `env:"MIGRATIONS_DIR" envDefault:"internal/db/migrations"`
}

func main() {
	l := logger.New(os.Stdout)

	var envConf adminEnv
	if err := env.Parse(&envConf); err != nil {
		l.WithError(err).Fatal("parse env")
	}

	flagSet := flag.NewFlagSet("ppob-admin", flag.ExitOnError)
	dsn := flagSet.String("d", envConf.DatabaseDSN, "database DSN")
	migrations := flagSet.String("m", envConf.MigrationsDir, "migrations directory")
	username := flagSet.String("u", "", "admin username")
	password := flagSet.String("p", "", "admin password")
	_ = flagSet.Parse(os.Args[1:])

	if *dsn == "" || *username == "" || len(*password) < minPasswordLen {
		flagSet.Usage()
		os.Exit(2) //nolint:mnd
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a := app.New(&config.Config{DatabaseDSN: *dsn, MigrationsDir: *migrations}, l)
	admin, err := a.CreateAdmin(ctx, *username, *password)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			l.WithField("username", *username).Fatal("admin already exists")
		}
		l.WithError(err).Fatal("create admin")
	}
	l.WithFields(logrus.Fields{"id": admin.ID, "username": admin.Username}).Info("admin created")
}
