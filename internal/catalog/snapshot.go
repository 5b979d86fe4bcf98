package catalog

import "github.com/desertthunder/ytcat/internal/models"

// Assemble combines the playlist entity and its member entities into one
// snapshot. The playlist entity always occupies index 0 and members keep
// their listing order; nothing is deduplicated or reordered.
func Assemble(playlist models.Entity, members []models.Entity) *models.Snapshot {
	entities := make([]models.Entity, 0, len(members)+1)
	entities = append(entities, playlist)
	entities = append(entities, members...)
	return &models.Snapshot{Entities: entities}
}
