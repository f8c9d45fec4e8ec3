package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"golang.org/x/crypto/bcrypt"

	"github.com/serviceportals/ops-backend-go/internal/config"
	"github.com/serviceportals/ops-backend-go/internal/domain/admin"
	"github.com/serviceportals/ops-backend-go/internal/domain/unit"
	"github.com/serviceportals/ops-backend-go/internal/fixtures"
	"github.com/serviceportals/ops-backend-go/internal/pkg/database"
	"github.com/serviceportals/ops-backend-go/internal/repository/postgresql"
	"github.com/serviceportals/ops-backend-go/migrations"
)

func main() {
	flag.Parse()

	action := "up"
	if flag.NArg() > 0 {
		action = flag.Arg(0)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if action == "seed" {
		if err := seed(cfg); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
		log.Println("seed completed")
		return
	}

	if err := run(action, cfg.DatabaseURL()); err != nil {
		log.Fatalf("migration %s failed: %v", action, err)
	}

	log.Printf("migration %s completed", action)
}

func run(action, dsn string) error {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return err
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, dsn)
	if err != nil {
		return err
	}
	defer m.Close()

	switch action {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return err
		}
		return nil
	case "down":
		if err := m.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return err
		}
		return nil
	case "drop":
		return m.Drop()
	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			if errors.Is(err, migrate.ErrNilVersion) {
				log.Printf("no migration applied")
				return nil
			}
			return err
		}
		log.Printf("version=%d dirty=%t", version, dirty)
		return nil
	default:
		return errors.New("unsupported action " + action)
	}
}

// seed bootstraps one business unit with its admin account and the
// default service catalog. Units and admins have no API surface; this is
// how a deployment gets its first login.
func seed(cfg *config.Config) error {
	code := os.Getenv("SEED_UNIT_CODE")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if code == "" || password == "" {
		return errors.New("SEED_UNIT_CODE and SEED_ADMIN_PASSWORD are required")
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		return err
	}
	defer db.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	units := postgresql.NewUnitRepository(db)
	admins := postgresql.NewAdminRepository(db)
	serviceTypes := postgresql.NewServiceTypeRepository(db)

	// The unit, its admin and the default catalog land together or not
	// at all, so a failed seed can simply be rerun.
	var u unit.BusinessUnit
	err = postgresql.WithTransaction(context.Background(), db, func(ctx context.Context) error {
		u, err = units.Create(ctx, unit.BusinessUnit{
			Code: code,
			Name: getEnv("SEED_UNIT_NAME", code),
		})
		if err != nil {
			return err
		}

		if _, err := admins.Create(ctx, admin.Admin{
			UnitID:       u.ID,
			Name:         getEnv("SEED_ADMIN_NAME", "Administrator"),
			Email:        getEnv("SEED_ADMIN_EMAIL", "admin@example.com"),
			PasswordHash: string(hash),
		}); err != nil {
			return err
		}

		for _, st := range fixtures.DefaultServiceTypes(u.ID) {
			if _, err := serviceTypes.Create(ctx, st); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Printf("seeded business unit %s (%s)", u.Code, u.ID)
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
