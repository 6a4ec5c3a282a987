// schedulectl manages schedules in a local snapshot file without the API
// server.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/blaisecz/schedule-builder/internal/config"
	"github.com/blaisecz/schedule-builder/internal/logging"
	"github.com/blaisecz/schedule-builder/internal/snapshot"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	if err := newApp(cfg.SnapshotDir, os.Stdout).Run(os.Args); err != nil {
		zap.L().Error("command failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newApp(defaultDir string, out io.Writer) *cli.App {
	return &cli.App{
		Name:   "schedulectl",
		Usage:  "Build and analyse schedules stored in a local snapshot file.",
		Writer: out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dir",
				Value:   defaultDir,
				EnvVars: []string{"SNAPSHOT_DIR"},
				Usage:   "directory holding " + snapshot.StorageKey + ".json",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Value: "warn",
				Usage: "debug, info, warn or error",
			},
		},
		Before: func(c *cli.Context) error {
			_, err := logging.New(c.String("log-level"))
			return err
		},
		Commands: []*cli.Command{
			listCommand(),
			createCommand(),
			addSlotCommand(),
			removeSlotCommand(),
			analyzeCommand(),
			exportICSCommand(),
			clearCommand(),
		},
	}
}

func storeFrom(c *cli.Context) *snapshot.FileStore {
	return snapshot.NewFileStore(c.String("dir"))
}
