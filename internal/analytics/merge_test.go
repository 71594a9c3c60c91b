package analytics

import "testing"

type record struct {
	ID   string
	Name string
}

func recordID(r record) string { return r.ID }

func TestTag(t *testing.T) {
	tagged := Tag("ws-1", "Main", []record{{ID: "a"}, {ID: "b"}})
	if len(tagged) != 2 {
		t.Fatalf("expected 2 tagged entries, got %d", len(tagged))
	}
	for _, entry := range tagged {
		if entry.WorkspaceID != "ws-1" || entry.WorkspaceName != "Main" {
			t.Errorf("tag not applied: %+v", entry)
		}
	}
}

func TestMergeByIDKeepsFirstOccurrence(t *testing.T) {
	dst := Tag("ws-1", "Main", []record{{ID: "a", Name: "from main"}, {ID: "b", Name: "b"}})
	src := Tag("ws-2", "Sub", []record{{ID: "a", Name: "from sub"}, {ID: "c", Name: "c"}})

	merged := MergeByID(dst, src, recordID)
	if len(merged) != 3 {
		t.Fatalf("expected 3 unique records, got %d", len(merged))
	}

	seen := make(map[string]int)
	for _, entry := range merged {
		seen[entry.Entity.ID]++
		if entry.Entity.ID == "a" {
			if entry.WorkspaceID != "ws-1" || entry.Entity.Name != "from main" {
				t.Errorf("duplicate should keep first occurrence, got %+v", entry)
			}
		}
	}
	for id, count := range seen {
		if count != 1 {
			t.Errorf("id %q appears %d times after merge", id, count)
		}
	}
}

func TestEntities(t *testing.T) {
	tagged := Tag("ws-1", "Main", []record{{ID: "a"}, {ID: "b"}})
	entities := Entities(tagged)
	if len(entities) != 2 || entities[0].ID != "a" || entities[1].ID != "b" {
		t.Errorf("Entities returned %+v", entities)
	}
}
