package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/ff-guarantees/internal/config"
	"github.com/feral-file/ff-guarantees/internal/logger"
	"github.com/feral-file/ff-guarantees/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

const usage = `Usage: migrate [flags] <command> [arg]

Commands:
  up             apply every pending migration
  down           revert every applied migration
  steps <n>      apply n migrations, or revert -n when negative
  force <v>      set the version without migrating and clear the dirty flag
  version        print the current version
`

func main() {
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	config.ChdirRepoRoot()
	cfg, err := config.LoadMigrateConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "migrate",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)

	migrator, err := store.NewMigrator(cfg.Database.MigrateURL())
	if err != nil {
		logger.Fatal("Failed to initialize migrator", zap.Error(err))
	}
	defer migrator.Close()

	command := flag.Arg(0)
	switch command {
	case "up":
		err = migrator.Up()
	case "down":
		err = migrator.Down()
	case "steps":
		var n int
		if n, err = intArg(); err == nil {
			err = migrator.Steps(n)
		}
	case "force":
		var v int
		if v, err = intArg(); err == nil {
			err = migrator.Force(v)
		}
	case "version":
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		logger.Fatal("Migration failed", zap.String("command", command), zap.Error(err))
	}

	version, dirty, err := migrator.Version()
	if err != nil {
		logger.Fatal("Failed to read migration version", zap.Error(err))
	}
	logger.Info("Migration completed",
		zap.String("command", command),
		zap.Uint("version", version),
		zap.Bool("dirty", dirty),
	)
}

func intArg() (int, error) {
	if flag.NArg() < 2 {
		return 0, fmt.Errorf("%s requires a numeric argument", flag.Arg(0))
	}
	n, err := strconv.Atoi(flag.Arg(1))
	if err != nil {
		return 0, fmt.Errorf("invalid argument %q: %w", flag.Arg(1), err)
	}
	return n, nil
}
