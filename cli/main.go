// this program normalizes a song csv into a sqlite3 database file and runs
// reports over the result.
//
// see db/schema.sql for info about the resulting database.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/christianw/songdb/db"
	"github.com/christianw/songdb/sigctx"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, flag.ErrHelp) {
		panic(err)
	}
}

var usage = strings.TrimSpace(`
usage: songdb $cmd
valid $cmd are 'load', 'artist', 'genres', 'top5', 'progress'
for help: songdb $cmd -help
`)

func run() error {
	ctx := sigctx.New()

	// .env is optional; env vars win either way.
	_ = godotenv.Load()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()

	db, err := db.Open(dbPath())
	if err != nil {
		return err
	}
	defer db.Close()

	if len(os.Args) < 2 {
		return errors.New(usage)
	}
	cmd, args := os.Args[1], os.Args[2:]

	switch cmd {
	case "load":
		return load(ctx, db, log, args)

	case "artist":
		return artist(ctx, db, args)

	case "genres":
		return genres(ctx, db, args)

	case "top5":
		return top5(ctx, db, args)

	case "progress":
		return progress(ctx, db, args)

	default:
		return fmt.Errorf("unknown cmd: '%s'\n%s", cmd, usage)
	}
}

func dbPath() string {
	if path := os.Getenv("SONGDB_PATH"); path != "" {
		return path
	}
	return "CWDatabase.db"
}
