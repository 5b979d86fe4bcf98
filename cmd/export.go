package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/desertthunder/ytcat/internal/formatter"
	"github.com/desertthunder/ytcat/internal/models"
	"github.com/desertthunder/ytcat/internal/shared"
	"github.com/urfave/cli/v3"
)

// Export converts an existing snapshot artifact to CSV or Markdown.
func (r *Runner) Export(ctx context.Context, cmd *cli.Command) error {
	input := cmd.String("input")
	format := strings.ToLower(cmd.String("format"))
	output := cmd.String("output")

	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snapshot models.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return fmt.Errorf("%w: snapshot is not valid JSON: %v", shared.ErrInvalidInput, err)
	}

	switch format {
	case "csv":
		if output == "" {
			output = strings.TrimSuffix(input, ".json") + ".csv"
		}
		if _, err := formatter.WriteCSVExport(&snapshot, output); err != nil {
			return err
		}
	case "markdown", "md":
		if output == "" {
			output = strings.TrimSuffix(input, ".json") + ".md"
		}
		if _, err := formatter.WriteMarkdownExport(&snapshot, output); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: unknown format %q", shared.ErrInvalidArgument, format)
	}

	r.logger.Info("exported snapshot", "format", format, "output", output)
	r.writePlain("%s\n", formatter.RenderOK("Wrote "+output))
	return nil
}
