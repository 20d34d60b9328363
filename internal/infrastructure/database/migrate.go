package database

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/Avinash-0612/fhir-healthcare-lakehouse/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/sirupsen/logrus"
)

// RunMigrations applies pending SQL migrations before the service starts
// accepting traffic.
func RunMigrations(cfg config.DBConfig) error {
	databaseURL := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.User, url.QueryEscape(cfg.Password), cfg.Host, cfg.Port, cfg.Name,
	)

	m, err := migrate.New("file://"+cfg.MigrationsDir, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to init migrations: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logrus.Info("Database schema is up to date")
			return nil
		}
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	logrus.Info("Database migrations applied")
	return nil
}
