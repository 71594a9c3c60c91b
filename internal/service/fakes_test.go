package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/workspace-hub/internal/domain"
	"github.com/spec-kit/workspace-hub/internal/repository"
)

var errUnavailable = errors.New("store unavailable")

type fakeWorkspaceRepo struct {
	workspaces map[string]domain.Workspace
	accessible *domain.AccessibleWorkspaces
	accErr     error
	failIDs    map[string]bool
}

func newFakeWorkspaceRepo(workspaces ...domain.Workspace) *fakeWorkspaceRepo {
	repo := &fakeWorkspaceRepo{
		workspaces: make(map[string]domain.Workspace),
		failIDs:    make(map[string]bool),
	}
	for _, ws := range workspaces {
		repo.workspaces[ws.ID] = ws
	}
	return repo
}

func (f *fakeWorkspaceRepo) Create(_ context.Context, ws *domain.Workspace) error {
	f.workspaces[ws.ID] = *ws
	return nil
}

func (f *fakeWorkspaceRepo) GetByID(_ context.Context, id string) (*domain.Workspace, error) {
	if f.failIDs[id] {
		return nil, errUnavailable
	}
	ws, ok := f.workspaces[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &ws, nil
}

func (f *fakeWorkspaceRepo) ListByOwner(_ context.Context, ownerID string) ([]domain.Workspace, error) {
	var out []domain.Workspace
	for _, ws := range f.workspaces {
		if ws.OwnerID == ownerID {
			out = append(out, ws)
		}
	}
	return out, nil
}

func (f *fakeWorkspaceRepo) ListSubWorkspaces(_ context.Context, parentID string) ([]domain.Workspace, error) {
	var out []domain.Workspace
	for _, ws := range f.workspaces {
		if ws.ParentWorkspaceID != nil && *ws.ParentWorkspaceID == parentID {
			out = append(out, ws)
		}
	}
	return out, nil
}

func (f *fakeWorkspaceRepo) GetAccessible(_ context.Context, _ string) (*domain.AccessibleWorkspaces, error) {
	if f.accErr != nil {
		return nil, f.accErr
	}
	if f.accessible == nil {
		return &domain.AccessibleWorkspaces{}, nil
	}
	return f.accessible, nil
}

type fakeReportRepo struct {
	byWorkspace map[string][]domain.Report
	reports     map[string]domain.Report
	failIDs     map[string]bool
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{
		byWorkspace: make(map[string][]domain.Report),
		reports:     make(map[string]domain.Report),
		failIDs:     make(map[string]bool),
	}
}

func (f *fakeReportRepo) add(report domain.Report) {
	f.reports[report.ID] = report
	f.byWorkspace[report.WorkspaceID] = append(f.byWorkspace[report.WorkspaceID], report)
}

func (f *fakeReportRepo) Create(_ context.Context, report *domain.Report) error {
	if report.ID == "" {
		report.ID = "r-" + report.Title
	}
	f.add(*report)
	return nil
}

func (f *fakeReportRepo) Update(_ context.Context, report *domain.Report) error {
	if _, ok := f.reports[report.ID]; !ok {
		return pgx.ErrNoRows
	}
	f.reports[report.ID] = *report
	list := f.byWorkspace[report.WorkspaceID]
	for i := range list {
		if list[i].ID == report.ID {
			list[i] = *report
		}
	}
	return nil
}

func (f *fakeReportRepo) GetByID(_ context.Context, id string) (*domain.Report, error) {
	report, ok := f.reports[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &report, nil
}

func (f *fakeReportRepo) ListByWorkspace(_ context.Context, workspaceID string, filter repository.ReportFilter) ([]domain.Report, error) {
	if f.failIDs[workspaceID] {
		return nil, errUnavailable
	}
	var out []domain.Report
	for _, report := range f.byWorkspace[workspaceID] {
		if filter.AuthorID != nil && report.AuthorID != *filter.AuthorID {
			continue
		}
		if filter.CreatedFrom != nil && report.CreatedAt.Before(*filter.CreatedFrom) {
			continue
		}
		if filter.CreatedTo != nil && report.CreatedAt.After(*filter.CreatedTo) {
			continue
		}
		out = append(out, report)
	}
	return out, nil
}

type fakeTaskRepo struct {
	byWorkspace map[string][]domain.Task
	tasks       map[string]domain.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{
		byWorkspace: make(map[string][]domain.Task),
		tasks:       make(map[string]domain.Task),
	}
}

func (f *fakeTaskRepo) add(task domain.Task) {
	f.tasks[task.ID] = task
	f.byWorkspace[task.WorkspaceID] = append(f.byWorkspace[task.WorkspaceID], task)
}

func (f *fakeTaskRepo) Create(_ context.Context, task *domain.Task) error {
	if task.ID == "" {
		task.ID = "t-" + task.Title
	}
	f.add(*task)
	return nil
}

func (f *fakeTaskRepo) Update(_ context.Context, task *domain.Task) error {
	if _, ok := f.tasks[task.ID]; !ok {
		return pgx.ErrNoRows
	}
	f.tasks[task.ID] = *task
	return nil
}

func (f *fakeTaskRepo) GetByID(_ context.Context, id string) (*domain.Task, error) {
	task, ok := f.tasks[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &task, nil
}

func (f *fakeTaskRepo) ListByWorkspace(_ context.Context, workspaceID string) ([]domain.Task, error) {
	return f.byWorkspace[workspaceID], nil
}

func (f *fakeTaskRepo) ListByAssignee(_ context.Context, assigneeID string) ([]domain.Task, error) {
	var out []domain.Task
	for _, task := range f.tasks {
		if task.AssigneeID == assigneeID {
			out = append(out, task)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	byWorkspace map[string][]domain.User
	users       map[string]domain.User
}

func newFakeUserRepo(users ...domain.User) *fakeUserRepo {
	repo := &fakeUserRepo{
		byWorkspace: make(map[string][]domain.User),
		users:       make(map[string]domain.User),
	}
	for _, user := range users {
		repo.users[user.ID] = user
		repo.byWorkspace[user.WorkspaceID] = append(repo.byWorkspace[user.WorkspaceID], user)
	}
	return repo
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	f.users[user.ID] = *user
	f.byWorkspace[user.WorkspaceID] = append(f.byWorkspace[user.WorkspaceID], *user)
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &user, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) ListByWorkspace(_ context.Context, workspaceID string) ([]domain.User, error) {
	return f.byWorkspace[workspaceID], nil
}

type fakeTeamRepo struct {
	byWorkspace map[string][]domain.Team
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{byWorkspace: make(map[string][]domain.Team)}
}

func (f *fakeTeamRepo) Create(_ context.Context, team *domain.Team) error {
	f.byWorkspace[team.WorkspaceID] = append(f.byWorkspace[team.WorkspaceID], *team)
	return nil
}

func (f *fakeTeamRepo) GetByID(_ context.Context, id string) (*domain.Team, error) {
	for _, teams := range f.byWorkspace {
		for _, team := range teams {
			if team.ID == id {
				t := team
				return &t, nil
			}
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeTeamRepo) ListByWorkspace(_ context.Context, workspaceID string) ([]domain.Team, error) {
	return f.byWorkspace[workspaceID], nil
}

func (f *fakeTeamRepo) AddMember(_ context.Context, _ *domain.TeamMember) error { return nil }

func (f *fakeTeamRepo) ListMembers(_ context.Context, _ string) ([]domain.TeamMember, error) {
	return nil, nil
}

type fakeTemplateRepo struct {
	templates map[string]domain.Template
}

func newFakeTemplateRepo(templates ...domain.Template) *fakeTemplateRepo {
	repo := &fakeTemplateRepo{templates: make(map[string]domain.Template)}
	for _, tpl := range templates {
		repo.templates[tpl.ID] = tpl
	}
	return repo
}

func (f *fakeTemplateRepo) GetByID(_ context.Context, id string) (*domain.Template, error) {
	tpl, ok := f.templates[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &tpl, nil
}

func (f *fakeTemplateRepo) ListByWorkspace(_ context.Context, workspaceID string) ([]domain.Template, error) {
	var out []domain.Template
	for _, tpl := range f.templates {
		if tpl.WorkspaceID == workspaceID {
			out = append(out, tpl)
		}
	}
	return out, nil
}

type fakeBranchRepo struct {
	byWorkspace map[string][]domain.Branch
}

func newFakeBranchRepo(branches ...domain.Branch) *fakeBranchRepo {
	repo := &fakeBranchRepo{byWorkspace: make(map[string][]domain.Branch)}
	for _, branch := range branches {
		repo.byWorkspace[branch.WorkspaceID] = append(repo.byWorkspace[branch.WorkspaceID], branch)
	}
	return repo
}

func (f *fakeBranchRepo) ListByWorkspace(_ context.Context, workspaceID string) ([]domain.Branch, error) {
	return f.byWorkspace[workspaceID], nil
}

type fakeRegionRepo struct {
	byWorkspace map[string][]domain.Region
}

func newFakeRegionRepo(regions ...domain.Region) *fakeRegionRepo {
	repo := &fakeRegionRepo{byWorkspace: make(map[string][]domain.Region)}
	for _, region := range regions {
		repo.byWorkspace[region.WorkspaceID] = append(repo.byWorkspace[region.WorkspaceID], region)
	}
	return repo
}

func (f *fakeRegionRepo) ListByWorkspace(_ context.Context, workspaceID string) ([]domain.Region, error) {
	return f.byWorkspace[workspaceID], nil
}

type fakeDepartmentRepo struct{}

func (fakeDepartmentRepo) ListByWorkspace(_ context.Context, _ string) ([]domain.Department, error) {
	return nil, nil
}
