package main

import (
	"context"

	"github.com/urfave/cli/v3"
)

// PlaylistInfo shows playlist metadata from the source API.
func (r *Runner) PlaylistInfo(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireSource(); err != nil {
		return err
	}

	playlistID := cmd.String("id")
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	r.logger.Infof("fetching playlist %v", playlistID)

	playlist, err := r.source.Playlist(ctx, playlistID)
	if err != nil {
		return err
	}

	if useJSON {
		return r.writeJSON(playlist, pretty)
	}

	r.writePlainHeader(playlist.Title)
	r.writePlain("ID: %s\n", playlist.ID)
	r.writePlain("Channel: %s (%s)\n", playlist.ChannelTitle, playlist.ChannelID)
	r.writePlain("Published: %s\n", playlist.PublishedAt)
	r.writePlain("Items: %d\n", playlist.ItemCount)
	if playlist.Description != "" {
		r.writePlain("\n%s\n", playlist.Description)
	}

	return nil
}

// PlaylistItems lists playlist members from the source API.
func (r *Runner) PlaylistItems(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireSource(); err != nil {
		return err
	}

	playlistID := cmd.String("id")
	useJSON := cmd.Bool("json")

	r.logger.Infof("listing items for playlist %v", playlistID)

	items, err := r.source.PlaylistItems(ctx, playlistID)
	if err != nil {
		return err
	}

	if useJSON {
		return r.writeJSON(items, true)
	}

	for i, item := range items {
		r.writePlain("%d. %s (%s)\n", i+1, item.Title, item.ID)
	}
	r.writePlain("\n%d items\n", len(items))

	return nil
}
