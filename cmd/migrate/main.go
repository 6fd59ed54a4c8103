package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/simpeg-app/simpeg-backend-go/internal/config"
)

func main() {
	var (
		dir     = flag.String("dir", "migrations", "directory holding the migration files")
		command = flag.String("command", "up", "up | down | drop | version")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	m, err := migrate.New("file://"+*dir, cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error creating migrator: ", err)
	}
	defer m.Close()

	switch *command {
	case "up":
		err = m.Up()
	case "down":
		err = m.Steps(-1)
	case "drop":
		err = m.Drop()
	case "version":
		version, dirty, verr := m.Version()
		if verr != nil {
			log.Fatal("Error reading version: ", verr)
		}
		fmt.Printf("version=%d dirty=%v\n", version, dirty)
		return
	default:
		log.Fatalf("Unknown command %q", *command)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatal("Migration failed: ", err)
	}

	fmt.Println("Migration complete")
}
