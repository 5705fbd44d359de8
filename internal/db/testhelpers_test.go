package db

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/udisondev/squadsim/internal/game/sim"
	"github.com/udisondev/squadsim/internal/model"
)

// startPostgres runs a PostgreSQL 16 container for the test and returns
// its DSN. Skipped with -short.
func startPostgres(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("postgres container skipped in short mode")
	}
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "starting postgres container")
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)
	return fmt.Sprintf("postgres://test:test@%s:%s/testdb?sslmode=disable", host, port.Port())
}

func sqliteDSN(t *testing.T) string {
	t.Helper()
	return "sqlite://" + filepath.Join(t.TempDir(), "runs.db")
}

func openTestDB(t *testing.T, dsn string) *DB {
	t.Helper()
	d, err := Open(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(d.Close)
	return d
}

func sampleResult(name string) *sim.Result {
	events := []model.Event{
		{Frame: 10, Actor: 0, ActorName: "Hata", Kind: model.KindNormal, Ability: "N0", Element: model.ElementPhysical, AuraAfter: model.ElementNone, Damage: 812.5},
		{Frame: 22, Actor: 1, ActorName: "Mizuha", Kind: model.KindSkill, Ability: "Twin Cut", Element: model.ElementHydro, AppliedAura: true, AuraAfter: model.ElementHydro, Damage: 2210},
		{Frame: 40, Actor: 0, ActorName: "Hata", Kind: model.KindSkill, Ability: "Surge", Element: model.ElementPyro, AppliedAura: true, Reaction: model.ReactionVaporize, AuraAfter: model.ElementHydro, Damage: 6400.25, Crit: true},
	}
	return &sim.Result{
		Name:   name,
		Events: events,
		Summary: sim.Summary{
			Duration: 600,
			Total:    9422.75,
			DPS:      942.275,
			Events:   len(events),
			ByActor: []sim.ActorTotal{
				{Index: 0, Name: "Hata", Damage: 7212.75, Share: 7212.75 / 9422.75},
				{Index: 1, Name: "Mizuha", Damage: 2210, Share: 2210 / 9422.75},
			},
		},
	}
}
