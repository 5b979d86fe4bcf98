// package formatter provides functions to export snapshot data to various formats (CSV, Markdown) and styles for CLI output
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/desertthunder/ytcat/internal/models"
)

// ExportToCSV converts a Snapshot to CSV format with columns: Identifier, Blueprint, Title, PublishedAt, Duration, Position, Link
func ExportToCSV(snapshot *models.Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Identifier", "Blueprint", "Title", "PublishedAt", "Duration", "Position", "Link"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, entity := range snapshot.Entities {
		record := []string{
			entity.Identifier,
			entity.Blueprint,
			propString(entity, "title"),
			propString(entity, "publishedAt"),
			propString(entity, "duration"),
			positionString(entity),
			propString(entity, "link"),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a Snapshot to Markdown format with the playlist
// entity as the document header and members as a numbered list
func ExportToMarkdown(snapshot *models.Snapshot) ([]byte, error) {
	if len(snapshot.Entities) == 0 {
		return nil, fmt.Errorf("snapshot has no entities")
	}

	playlist := snapshot.Entities[0]
	members := snapshot.Entities[1:]

	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", propString(playlist, "title")))

	if description := propString(playlist, "description"); description != "" {
		buf.WriteString(fmt.Sprintf("**Description**: %s\n\n", description))
	}
	buf.WriteString(fmt.Sprintf("**Channel**: %s\n", propString(playlist, "channelTitle")))
	buf.WriteString(fmt.Sprintf("**Items**: %d\n", len(members)))
	buf.WriteString(fmt.Sprintf("**Link**: %s\n\n", propString(playlist, "link")))

	buf.WriteString("## Items\n\n")
	for i, member := range members {
		durationPart := ""
		if duration := propString(member, "duration"); duration != "" {
			durationPart = fmt.Sprintf(" [%s]", duration)
		}
		buf.WriteString(fmt.Sprintf("%d. [%s](%s)%s\n", i+1, propString(member, "title"), propString(member, "link"), durationPart))
	}

	return buf.Bytes(), nil
}

// WriteCSVExport exports a snapshot to a CSV file at the given path
func WriteCSVExport(snapshot *models.Snapshot, path string) (string, error) {
	csvData, err := ExportToCSV(snapshot)
	if err != nil {
		return "", fmt.Errorf("failed to generate CSV: %w", err)
	}

	if err := os.WriteFile(path, csvData, 0644); err != nil {
		return "", fmt.Errorf("failed to write CSV file: %w", err)
	}

	return path, nil
}

// WriteMarkdownExport exports a snapshot to a Markdown file at the given path
func WriteMarkdownExport(snapshot *models.Snapshot, path string) (string, error) {
	mdData, err := ExportToMarkdown(snapshot)
	if err != nil {
		return "", fmt.Errorf("failed to generate Markdown: %w", err)
	}

	if err := os.WriteFile(path, mdData, 0644); err != nil {
		return "", fmt.Errorf("failed to write Markdown file: %w", err)
	}

	return path, nil
}

// propString reads a string property off an entity, returning "" for missing
// or non-string values
func propString(entity models.Entity, key string) string {
	if value, ok := entity.Properties[key].(string); ok {
		return value
	}
	return ""
}

// positionString renders the position property when present
func positionString(entity models.Entity) string {
	switch value := entity.Properties["position"].(type) {
	case int64:
		return strconv.FormatInt(value, 10)
	case float64:
		return strconv.FormatInt(int64(value), 10)
	default:
		return ""
	}
}
