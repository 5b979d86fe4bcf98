// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// configFlag is shared by commands that read config.toml
func configFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

// setupCommand handles setup operations for configuration and the database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:   "config",
				Usage:  "Create a config.toml from the embedded template",
				Flags:  []cli.Flag{configFlag()},
				Action: r.SetupConfig,
			},
			{
				Name:   "database",
				Usage:  "Initialize database and run migrations",
				Flags:  []cli.Flag{configFlag()},
				Action: r.SetupDatabase,
			},
		},
	}
}

// syncCommand handles snapshot sync operations
func syncCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "sync",
		Usage: "Sync playlists into catalog snapshot artifacts",
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "Sync one playlist into a snapshot artifact",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{
						Name:  "id",
						Usage: "Playlist ID (defaults to sync.playlist_id from config)",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Snapshot artifact path",
					},
				},
				Action: r.SyncRun,
			},
			{
				Name:  "bulk",
				Usage: "Sync several playlists, one artifact each",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringSliceFlag{
						Name:     "id",
						Usage:    "Playlist ID, repeatable",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "output-dir",
						Usage: "Directory for artifacts and the manifest",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Concurrent playlists",
						Value: 3,
					},
					&cli.FloatFlag{
						Name:  "rate",
						Usage: "Playlist run starts per second",
						Value: 1.0,
					},
				},
				Action: r.SyncBulk,
			},
		},
	}
}

// playlistCommand handles read-only playlist lookups
func playlistCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "playlist",
		Aliases: []string{"pl"},
		Usage:   "Inspect playlists on the source API",
		Commands: []*cli.Command{
			{
				Name:  "info",
				Usage: "Show playlist metadata",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "id",
						Usage:    "Playlist ID",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.PlaylistInfo,
			},
			{
				Name:  "items",
				Usage: "List playlist members",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "id",
						Usage:    "Playlist ID",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.PlaylistItems,
			},
		},
	}
}

// runsCommand handles sync run history
func runsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "runs",
		Usage: "Inspect sync run history",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List recent sync runs",
				Flags: []cli.Flag{
					configFlag(),
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of runs to return",
						Value: 20,
					},
					&cli.StringFlag{
						Name:  "playlist",
						Usage: "Filter by playlist ID",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.RunsList,
			},
		},
	}
}

// exportCommand converts snapshot artifacts to other formats
func exportCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Convert a snapshot artifact to CSV or Markdown",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Aliases:  []string{"i"},
				Usage:    "Snapshot artifact to read",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "Export format: csv or markdown",
				Value: "csv",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file path",
			},
		},
		Action: r.Export,
	}
}
