//go:build integration
// +build integration

package db

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"mailtheme-api/internal/config"
	"mailtheme-api/internal/theme"
)

func Test_Open_With_PostgresContainer(t *testing.T) {
	ctx := context.Background()

	pg, err := postgres.RunContainer(ctx,
		postgres.WithDatabase("app"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		postgres.WithSQLDriver("pgx"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("start postgres: %v", err)
	}
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	host, err := pg.Host(ctx)
	if err != nil {
		t.Fatalf("get container host: %v", err)
	}
	port, err := pg.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("get container port: %v", err)
	}
	dsn := fmt.Sprintf("postgres://postgres:postgres@%s:%s/app?sslmode=disable", host, port.Port())

	cfg := &config.Config{}
	cfg.PG.URL = dsn
	cfg.PG.MaxOpenConns = 5
	cfg.PG.MaxIdleConns = 2

	c, closeFn, err := Open(cfg)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer closeFn()

	ctx2, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := c.Schema.Create(ctx2); err != nil {
		t.Fatalf("create schema: %v", err)
	}

	u, err := c.User.Create().SetDisplayName("it-user").Save(ctx2)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	// Theme properties round-trip through the jsonb column unchanged.
	props := theme.DefaultLight().AsMap()
	th, err := c.Theme.Create().
		SetName("it-theme").
		SetProperties(props).
		SetOwnerID(u.ID).
		Save(ctx2)
	if err != nil {
		t.Fatalf("create theme: %v", err)
	}
	got, err := c.Theme.Get(ctx2, th.ID)
	if err != nil {
		t.Fatalf("get theme: %v", err)
	}
	colors, ok := got.Properties["colors"].(map[string]any)
	if !ok || colors["background"] != "#ffffff" {
		t.Fatalf("properties did not round-trip: %v", got.Properties)
	}

	count, err := c.Theme.Query().Count(ctx2)
	if err != nil {
		t.Fatalf("count themes: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 theme, got %d", count)
	}
}
