package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"github.com/spec-kit/workspace-hub/internal/domain"
)

func TestResolveRequiresCurrentWorkspace(t *testing.T) {
	resolver := NewScopeResolver(newFakeWorkspaceRepo(), zap.NewNop())

	if _, err := resolver.Resolve(context.Background(), "u-1", domain.RoleOwner, ""); err == nil {
		t.Fatal("expected error for missing current workspace")
	}
}

func TestResolveMemberScope(t *testing.T) {
	repo := newFakeWorkspaceRepo()
	repo.accErr = errors.New("should not be called for members")
	resolver := NewScopeResolver(repo, zap.NewNop())

	ids, err := resolver.Resolve(context.Background(), "u-1", domain.RoleMember, "ws-main")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(ids, []string{"ws-main"}) {
		t.Errorf("member scope = %v, want [ws-main]", ids)
	}
}

func TestResolveOwnerScope(t *testing.T) {
	mainID := "ws-main"
	repo := newFakeWorkspaceRepo()
	repo.accessible = &domain.AccessibleWorkspaces{
		Owned: []domain.Workspace{{ID: mainID, Type: domain.WorkspaceTypeMain}},
		Sub: map[string][]domain.Workspace{
			mainID: {
				{ID: "ws-sub-1", Type: domain.WorkspaceTypeSub, ParentWorkspaceID: &mainID},
				{ID: "ws-sub-2", Type: domain.WorkspaceTypeSub, ParentWorkspaceID: &mainID},
			},
		},
		RoleByWorkspace: map[string]domain.Role{
			mainID:     domain.RoleOwner,
			"ws-other": domain.RoleAdmin,
		},
	}
	resolver := NewScopeResolver(repo, zap.NewNop())

	ids, err := resolver.Resolve(context.Background(), "u-1", domain.RoleOwner, mainID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"ws-main", "ws-sub-1", "ws-sub-2", "ws-other"}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("owner scope = %v, want %v", ids, want)
	}
}

func TestResolveAdminScope(t *testing.T) {
	repo := newFakeWorkspaceRepo()
	repo.accessible = &domain.AccessibleWorkspaces{
		RoleByWorkspace: map[string]domain.Role{
			"ws-b": domain.RoleAdmin,
			"ws-a": domain.RoleAdmin,
			"ws-c": domain.RoleMember,
		},
	}
	resolver := NewScopeResolver(repo, zap.NewNop())

	ids, err := resolver.Resolve(context.Background(), "u-1", domain.RoleAdmin, "ws-a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"ws-a", "ws-b"}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("admin scope = %v, want %v", ids, want)
	}
}

func TestResolveFallsBackOnLookupFailure(t *testing.T) {
	repo := newFakeWorkspaceRepo()
	repo.accErr = errors.New("directory down")
	resolver := NewScopeResolver(repo, zap.NewNop())

	ids, err := resolver.Resolve(context.Background(), "u-1", domain.RoleOwner, "ws-main")
	if err != nil {
		t.Fatalf("lookup failure should not escape: %v", err)
	}
	if !reflect.DeepEqual(ids, []string{"ws-main"}) {
		t.Errorf("fallback scope = %v, want [ws-main]", ids)
	}
}

func TestResolveEmptyDirectoryFallsBack(t *testing.T) {
	resolver := NewScopeResolver(newFakeWorkspaceRepo(), zap.NewNop())

	ids, err := resolver.Resolve(context.Background(), "u-1", domain.RoleAdmin, "ws-main")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(ids, []string{"ws-main"}) {
		t.Errorf("empty directory scope = %v, want [ws-main]", ids)
	}
}
