package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/workspace-hub/internal/analytics"
	"github.com/spec-kit/workspace-hub/internal/domain"
	"github.com/spec-kit/workspace-hub/internal/repository"
)

// CollectOptions selects which entity collections a screen needs. Only the
// enabled fetches are issued per workspace.
type CollectOptions struct {
	Reports      bool
	Tasks        bool
	Users        bool
	Teams        bool
	Templates    bool
	Departments  bool
	ReportFilter repository.ReportFilter
}

// Snapshot holds the merged, de-duplicated entity collections for one
// aggregation run, each entry tagged with its originating workspace.
type Snapshot struct {
	Workspaces  []domain.Workspace
	Reports     []analytics.Tagged[domain.Report]
	Tasks       []analytics.Tagged[domain.Task]
	Users       []analytics.Tagged[domain.User]
	Teams       []analytics.Tagged[domain.Team]
	Templates   []analytics.Tagged[domain.Template]
	Departments []analytics.Tagged[domain.Department]
}

// AggregatorDependencies bundles the per-entity data sources.
type AggregatorDependencies struct {
	WorkspaceRepo  repository.WorkspaceRepository
	ReportRepo     repository.ReportRepository
	TaskRepo       repository.TaskRepository
	UserRepo       repository.UserRepository
	TeamRepo       repository.TeamRepository
	TemplateRepo   repository.TemplateRepository
	DepartmentRepo repository.DepartmentRepository
}

// Aggregator implements the cross-workspace fetch-and-merge stage: for each
// workspace in scope the selected entity fetches run concurrently; iteration
// across workspaces is sequential so one broken workspace cannot sink the
// others. A workspace that fails any fetch is logged and skipped entirely.
type Aggregator struct {
	workspaces  repository.WorkspaceRepository
	reports     repository.ReportRepository
	tasks       repository.TaskRepository
	users       repository.UserRepository
	teams       repository.TeamRepository
	templates   repository.TemplateRepository
	departments repository.DepartmentRepository
	logger      *zap.Logger
}

// NewAggregator constructs the aggregator.
func NewAggregator(deps AggregatorDependencies, logger *zap.Logger) *Aggregator {
	return &Aggregator{
		workspaces:  deps.WorkspaceRepo,
		reports:     deps.ReportRepo,
		tasks:       deps.TaskRepo,
		users:       deps.UserRepo,
		teams:       deps.TeamRepo,
		templates:   deps.TemplateRepo,
		departments: deps.DepartmentRepo,
		logger:      logger,
	}
}

// workspaceBatch carries one workspace's fetch results; fetches write only
// their own slot so the join needs no locking.
type workspaceBatch struct {
	reports     []domain.Report
	tasks       []domain.Task
	users       []domain.User
	teams       []domain.Team
	templates   []domain.Template
	departments []domain.Department
	errs        []error
}

// Collect runs the pipeline over the given workspace ids and returns the
// merged snapshot. It never fails as a whole: workspaces that error are
// omitted and the snapshot carries whatever data was retrieved.
func (a *Aggregator) Collect(ctx context.Context, workspaceIDs []string, opts CollectOptions) *Snapshot {
	snapshot := &Snapshot{}

	for _, workspaceID := range workspaceIDs {
		ws, err := a.workspaces.GetByID(ctx, workspaceID)
		if err != nil {
			a.logger.Warn("skipping workspace: lookup failed",
				zap.String("workspace_id", workspaceID), zap.Error(err))
			continue
		}

		batch, err := a.fetchWorkspace(ctx, ws, opts)
		if err != nil {
			a.logger.Warn("skipping workspace: fetch failed",
				zap.String("workspace_id", workspaceID),
				zap.String("workspace_name", ws.Name),
				zap.Error(err))
			continue
		}

		snapshot.Workspaces = append(snapshot.Workspaces, *ws)
		a.merge(snapshot, ws, batch)
	}

	return snapshot
}

// fetchWorkspace issues the enabled entity fetches concurrently and joins
// them. The first error (in slot order) is returned; completion order of the
// fetches themselves does not matter.
func (a *Aggregator) fetchWorkspace(ctx context.Context, ws *domain.Workspace, opts CollectOptions) (*workspaceBatch, error) {
	batch := &workspaceBatch{errs: make([]error, 6)}

	var wg sync.WaitGroup
	run := func(slot int, fetch func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			batch.errs[slot] = fetch()
		}()
	}

	if opts.Reports {
		run(0, func() error {
			var err error
			batch.reports, err = a.reports.ListByWorkspace(ctx, ws.ID, opts.ReportFilter)
			return err
		})
	}
	if opts.Tasks {
		run(1, func() error {
			var err error
			batch.tasks, err = a.tasks.ListByWorkspace(ctx, ws.ID)
			return err
		})
	}
	if opts.Users {
		run(2, func() error {
			var err error
			batch.users, err = a.users.ListByWorkspace(ctx, ws.ID)
			return err
		})
	}
	if opts.Teams {
		run(3, func() error {
			var err error
			batch.teams, err = a.teams.ListByWorkspace(ctx, ws.ID)
			return err
		})
	}
	if opts.Templates {
		run(4, func() error {
			var err error
			batch.templates, err = a.templates.ListByWorkspace(ctx, ws.ID)
			return err
		})
	}
	if opts.Departments {
		run(5, func() error {
			var err error
			batch.departments, err = a.departments.ListByWorkspace(ctx, ws.ID)
			return err
		})
	}

	wg.Wait()

	for _, err := range batch.errs {
		if err != nil {
			return nil, err
		}
	}
	return batch, nil
}

func (a *Aggregator) merge(snapshot *Snapshot, ws *domain.Workspace, batch *workspaceBatch) {
	snapshot.Reports = analytics.MergeByID(snapshot.Reports,
		analytics.Tag(ws.ID, ws.Name, batch.reports),
		func(r domain.Report) string { return r.ID })
	snapshot.Tasks = analytics.MergeByID(snapshot.Tasks,
		analytics.Tag(ws.ID, ws.Name, batch.tasks),
		func(t domain.Task) string { return t.ID })
	snapshot.Users = analytics.MergeByID(snapshot.Users,
		analytics.Tag(ws.ID, ws.Name, batch.users),
		func(u domain.User) string { return u.ID })
	snapshot.Teams = analytics.MergeByID(snapshot.Teams,
		analytics.Tag(ws.ID, ws.Name, batch.teams),
		func(t domain.Team) string { return t.ID })
	snapshot.Templates = analytics.MergeByID(snapshot.Templates,
		analytics.Tag(ws.ID, ws.Name, batch.templates),
		func(t domain.Template) string { return t.ID })
	snapshot.Departments = analytics.MergeByID(snapshot.Departments,
		analytics.Tag(ws.ID, ws.Name, batch.departments),
		func(d domain.Department) string { return d.ID })
}
