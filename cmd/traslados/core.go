package main

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/campusops/traslados/internal/adapter/fsm"
	adapterotel "github.com/campusops/traslados/internal/adapter/otel"
	"github.com/campusops/traslados/internal/adapter/sqlite"
	"github.com/campusops/traslados/internal/app"
	"github.com/campusops/traslados/internal/domain"
)

// core bundles the wired services for one CLI invocation.
type core struct {
	store     *sqlite.Store
	allocator *app.Allocator
	governor  *app.Governor
	resolver  *app.Resolver
	ledger    *app.Ledger
}

// openCore wires the adapters the way the service does: instrumented DB,
// tracing decorators around the stores, services on top. The returned
// cleanup closes the database.
func openCore(ctx context.Context) (*core, func(), error) {
	db, err := adapterotel.OpenDB(viper.GetString("database_path"))
	if err != nil {
		return nil, nil, fmt.Errorf("database: %w", err)
	}

	store, err := sqlite.NewFromDB(db)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("database: %w", err)
	}

	rules, err := store.ActiveRules(ctx)
	if err != nil {
		store.Close()
		return nil, nil, fmt.Errorf("loading transition rules: %w", err)
	}

	governor, err := app.NewGovernor(rules, fsm.New(rules))
	if err != nil {
		store.Close()
		return nil, nil, fmt.Errorf("building governor: %w", err)
	}

	c := &core{
		store:     store,
		allocator: app.NewAllocator(adapterotel.NewTracingSequenceStore(store)),
		governor:  governor,
		resolver: app.NewResolver(store,
			viper.GetString("default_program"),
			viper.GetString("emergency_program"),
		),
		ledger: app.NewLedger(adapterotel.NewTracingAuditStore(store)),
	}

	return c, func() { store.Close() }, nil
}

// parsePermissions converts CLI permission strings to domain tags.
func parsePermissions(raw []string) []domain.Permission {
	perms := make([]domain.Permission, 0, len(raw))
	for _, p := range raw {
		perms = append(perms, domain.Permission(p))
	}
	return perms
}
