package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/workspace-hub/internal/analytics"
	"github.com/spec-kit/workspace-hub/internal/domain"
	"github.com/spec-kit/workspace-hub/internal/observability"
	"github.com/spec-kit/workspace-hub/internal/persistence"
	"github.com/spec-kit/workspace-hub/internal/repository"
)

// DashboardOverview is the role-scoped home dashboard snapshot.
type DashboardOverview struct {
	GeneratedAt     time.Time      `json:"generated_at"`
	WorkspaceCount  int            `json:"workspace_count"`
	ReportCount     int            `json:"report_count"`
	ReportsByStatus map[string]int `json:"reports_by_status"`
	ApprovalRate    int            `json:"approval_rate"`
	TaskCount       int            `json:"task_count"`
	CompletedTasks  int            `json:"completed_tasks"`
	CompletionRate  int            `json:"completion_rate"`
	MemberCount     int            `json:"member_count"`
	TeamCount       int            `json:"team_count"`
	ActivityScore   int            `json:"activity_score"`
	WeeklyProgress  float64        `json:"weekly_progress"`
	UptimeSeconds   int64          `json:"uptime_seconds"`
	AvgResponseMs   int64          `json:"avg_response_ms"`
}

// DashboardDependencies bundles collaborators for the dashboard service.
type DashboardDependencies struct {
	Scope      *ScopeResolver
	Aggregator *Aggregator
	TicketRepo repository.TicketRepository
	Scorer     analytics.ActivityScorer
	Cache      *persistence.Redis
	Metrics    *observability.Metrics
}

// DashboardService orchestrates the role-scoped dashboard: resolve scope,
// aggregate, derive, cache. Each run is stamped with a per-user generation
// so a stale slow run never overwrites the snapshot of a newer one.
type DashboardService struct {
	scope    *ScopeResolver
	agg      *Aggregator
	tickets  repository.TicketRepository
	scorer   analytics.ActivityScorer
	cache    *persistence.Redis
	metrics  *observability.Metrics
	cacheTTL time.Duration
	logger   *zap.Logger

	mu   sync.Mutex
	gens map[string]uint64
}

// NewDashboardService constructs the service.
func NewDashboardService(deps DashboardDependencies, cacheTTL time.Duration, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		scope:    deps.Scope,
		agg:      deps.Aggregator,
		tickets:  deps.TicketRepo,
		scorer:   deps.Scorer,
		cache:    deps.Cache,
		metrics:  deps.Metrics,
		cacheTTL: cacheTTL,
		logger:   logger,
		gens:     make(map[string]uint64),
	}
}

// Overview computes the dashboard for the caller. Scope failure is the only
// fatal path; per-workspace fetch failures degrade to a partial dashboard.
func (s *DashboardService) Overview(ctx context.Context, caller *domain.User) (*DashboardOverview, error) {
	generation := s.nextGeneration(caller.ID)

	workspaceIDs, err := s.scope.Resolve(ctx, caller.ID, caller.Role, caller.WorkspaceID)
	if err != nil {
		return nil, err
	}

	snapshot := s.agg.Collect(ctx, workspaceIDs, CollectOptions{
		Reports: true,
		Tasks:   true,
		Users:   true,
		Teams:   true,
	})

	overview := s.derive(ctx, caller, snapshot)

	if s.isCurrentGeneration(caller.ID, generation) {
		s.storeSnapshot(ctx, caller.ID, overview)
	} else {
		s.logger.Debug("discarding stale dashboard run",
			zap.String("user_id", caller.ID), zap.Uint64("generation", generation))
	}
	return overview, nil
}

// CachedOverview returns the last stored snapshot, or nil on a miss.
func (s *DashboardService) CachedOverview(ctx context.Context, userID string) (*DashboardOverview, error) {
	payload, err := s.cache.LoadSnapshot(ctx, dashboardCacheKey(userID))
	if err != nil || payload == nil {
		return nil, err
	}
	var overview DashboardOverview
	if err := json.Unmarshal(payload, &overview); err != nil {
		return nil, err
	}
	return &overview, nil
}

func (s *DashboardService) derive(ctx context.Context, caller *domain.User, snapshot *Snapshot) *DashboardOverview {
	now := time.Now()
	weekStart := now.AddDate(0, 0, -7)
	priorWeekStart := now.AddDate(0, 0, -14)

	byStatus := make(map[string]int)
	approved := 0
	for _, report := range snapshot.Reports {
		byStatus[string(report.Entity.Status)]++
		if report.Entity.Status == domain.ReportStatusApproved {
			approved++
		}
	}

	completed := 0
	completedThisWeek := 0
	completedPriorWeek := 0
	for _, task := range snapshot.Tasks {
		if task.Entity.Status != domain.TaskStatusCompleted {
			continue
		}
		completed++
		if task.Entity.CompletedAt == nil {
			continue
		}
		done := *task.Entity.CompletedAt
		switch {
		case done.After(weekStart):
			completedThisWeek++
		case done.After(priorWeekStart):
			completedPriorWeek++
		}
	}

	reportsThisWeek := 0
	for _, report := range snapshot.Reports {
		if report.Entity.CreatedAt.After(weekStart) {
			reportsThisWeek++
		}
	}

	overview := &DashboardOverview{
		GeneratedAt:     now,
		WorkspaceCount:  len(snapshot.Workspaces),
		ReportCount:     len(snapshot.Reports),
		ReportsByStatus: byStatus,
		ApprovalRate:    analytics.RoundPercent(analytics.Rate(approved, len(snapshot.Reports))),
		TaskCount:       len(snapshot.Tasks),
		CompletedTasks:  completed,
		CompletionRate:  analytics.RoundPercent(analytics.Rate(completed, len(snapshot.Tasks))),
		MemberCount:     len(snapshot.Users),
		TeamCount:       len(snapshot.Teams),
		WeeklyProgress:  analytics.WeeklyProgress(completedPriorWeek, completedThisWeek),
		UptimeSeconds:   int64(s.metrics.Uptime().Seconds()),
		AvgResponseMs:   s.metrics.AvgResponseTime().Milliseconds(),
	}

	overview.ActivityScore = s.scorer.Score(analytics.ActivityInput{
		CompletedTasksThisWeek: completedThisWeek,
		ReportsThisWeek:        reportsThisWeek,
		ExternalActivity:       s.ticketActivity(ctx, caller.ID, weekStart),
	})
	return overview
}

// ticketActivity counts the caller's support tickets raised this week; it is
// the external signal folded into the activity score. Lookup failure just
// contributes zero.
func (s *DashboardService) ticketActivity(ctx context.Context, userID string, since time.Time) float64 {
	tickets, err := s.tickets.ListByRequester(ctx, userID)
	if err != nil {
		s.logger.Warn("ticket activity lookup failed", zap.String("user_id", userID), zap.Error(err))
		return 0
	}
	count := 0
	for _, ticket := range tickets {
		if ticket.CreatedAt.After(since) {
			count++
		}
	}
	return float64(count)
}

func (s *DashboardService) storeSnapshot(ctx context.Context, userID string, overview *DashboardOverview) {
	payload, err := json.Marshal(overview)
	if err != nil {
		s.logger.Warn("snapshot marshal failed", zap.Error(err))
		return
	}
	if err := s.cache.StoreSnapshot(ctx, dashboardCacheKey(userID), payload, s.cacheTTL); err != nil {
		s.logger.Warn("snapshot cache write failed", zap.String("user_id", userID), zap.Error(err))
	}
}

func (s *DashboardService) nextGeneration(userID string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gens[userID]++
	return s.gens[userID]
}

func (s *DashboardService) isCurrentGeneration(userID string, generation uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gens[userID] == generation
}

func dashboardCacheKey(userID string) string {
	return "dashboard:" + userID
}
