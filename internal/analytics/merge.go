package analytics

// Tagged pairs an entity with the workspace it was fetched from, so grouped
// views can label rows without loosely patched fields.
type Tagged[E any] struct {
	WorkspaceID   string `json:"workspace_id"`
	WorkspaceName string `json:"workspace_name"`
	Entity        E      `json:"entity"`
}

// Tag wraps a batch of entities with their originating workspace.
func Tag[E any](workspaceID, workspaceName string, entities []E) []Tagged[E] {
	tagged := make([]Tagged[E], 0, len(entities))
	for _, entity := range entities {
		tagged = append(tagged, Tagged[E]{
			WorkspaceID:   workspaceID,
			WorkspaceName: workspaceName,
			Entity:        entity,
		})
	}
	return tagged
}

// MergeByID appends src entries to dst, skipping any entity whose id is
// already present. An entity reached through two workspace paths therefore
// counts once. The linear scan is deliberate: merged collections stay small
// enough that no index is worth building.
func MergeByID[E any](dst, src []Tagged[E], id func(E) string) []Tagged[E] {
	for _, candidate := range src {
		seen := false
		for _, existing := range dst {
			if id(existing.Entity) == id(candidate.Entity) {
				seen = true
				break
			}
		}
		if !seen {
			dst = append(dst, candidate)
		}
	}
	return dst
}

// Entities strips the workspace tags, returning the bare entity slice.
func Entities[E any](tagged []Tagged[E]) []E {
	out := make([]E, 0, len(tagged))
	for _, item := range tagged {
		out = append(out, item.Entity)
	}
	return out
}
