package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/workspace-hub/internal/analytics"
	"github.com/spec-kit/workspace-hub/internal/domain"
	"github.com/spec-kit/workspace-hub/internal/repository"
)

// AnalyticsQuery narrows the report population before derivation. From/To
// bound both the fetched reports and the daily buckets; when absent the
// buckets default to the trailing 30 days.
type AnalyticsQuery struct {
	From       *time.Time
	To         *time.Time
	Statuses   []domain.ReportStatus
	TemplateID string
	AuthorID   string
}

// ReportAnalytics is the derived report analytics view. MonthOverMonth is nil
// when the comparison is not meaningful.
type ReportAnalytics struct {
	GeneratedAt     time.Time                `json:"generated_at"`
	TotalReports    int                      `json:"total_reports"`
	ByStatus        map[string]int           `json:"by_status"`
	ByTemplate      map[string]int           `json:"by_template"`
	ApprovalRate    int                      `json:"approval_rate"`
	AvgApprovalTime float64                  `json:"avg_approval_hours"`
	Daily           []analytics.DailyCount   `json:"daily"`
	Weekday         []analytics.WeekdayCount `json:"weekday"`
	MonthlyTrend    []analytics.MonthlyRate  `json:"monthly_trend"`
	MonthOverMonth  *float64                 `json:"month_over_month,omitempty"`
}

// ReportAnalyticsService derives report analytics across the caller's scope.
type ReportAnalyticsService struct {
	scope       *ScopeResolver
	agg         *Aggregator
	trendMonths int
	logger      *zap.Logger
}

// NewReportAnalyticsService constructs the service. trendMonths controls the
// monthly approval trend window.
func NewReportAnalyticsService(scope *ScopeResolver, agg *Aggregator, trendMonths int, logger *zap.Logger) *ReportAnalyticsService {
	return &ReportAnalyticsService{scope: scope, agg: agg, trendMonths: trendMonths, logger: logger}
}

// Analyze resolves the caller's scope, aggregates reports and templates, and
// derives the analytics view. Members see only their own reports.
func (s *ReportAnalyticsService) Analyze(ctx context.Context, caller *domain.User, query AnalyticsQuery) (*ReportAnalytics, error) {
	workspaceIDs, err := s.scope.Resolve(ctx, caller.ID, caller.Role, caller.WorkspaceID)
	if err != nil {
		return nil, err
	}

	filter := repository.ReportFilter{
		Statuses:    query.Statuses,
		CreatedFrom: query.From,
		CreatedTo:   query.To,
	}
	if query.TemplateID != "" {
		filter.TemplateID = &query.TemplateID
	}
	authorID := query.AuthorID
	if caller.Role == domain.RoleMember {
		authorID = caller.ID
	}
	if authorID != "" {
		filter.AuthorID = &authorID
	}

	snapshot := s.agg.Collect(ctx, workspaceIDs, CollectOptions{
		Reports:      true,
		Templates:    true,
		ReportFilter: filter,
	})

	now := time.Now()
	windowTo := now
	if query.To != nil {
		windowTo = *query.To
	}
	windowFrom := windowTo.AddDate(0, 0, -29)
	if query.From != nil {
		windowFrom = *query.From
	}

	return s.derive(snapshot, now, windowFrom, windowTo), nil
}

func (s *ReportAnalyticsService) derive(snapshot *Snapshot, now, windowFrom, windowTo time.Time) *ReportAnalytics {
	reports := make([]domain.Report, 0, len(snapshot.Reports))
	for _, tagged := range snapshot.Reports {
		reports = append(reports, tagged.Entity)
	}

	templateNames := make(map[string]string, len(snapshot.Templates))
	for _, tpl := range snapshot.Templates {
		templateNames[tpl.Entity.ID] = tpl.Entity.Name
	}

	byStatus := make(map[string]int)
	byTemplate := make(map[string]int)
	approved := 0
	var totalApprovalHours float64
	approvalSamples := 0
	for _, report := range reports {
		byStatus[string(report.Status)]++
		name := templateNames[report.TemplateID]
		if name == "" {
			name = "Unassigned"
		}
		byTemplate[name]++
		if report.Status == domain.ReportStatusApproved {
			approved++
			if d, ok := report.ApprovalTime(); ok {
				totalApprovalHours += d.Hours()
				approvalSamples++
			}
		}
	}

	avgApproval := 0.0
	if approvalSamples > 0 {
		avgApproval = totalApprovalHours / float64(approvalSamples)
	}

	submitted := make([]time.Time, 0, len(reports))
	approvedAt := make([]time.Time, 0, approved)
	for _, report := range reports {
		if report.SubmittedAt != nil {
			submitted = append(submitted, *report.SubmittedAt)
		}
		if report.Status == domain.ReportStatusApproved && report.FinalizedAt != nil {
			approvedAt = append(approvedAt, *report.FinalizedAt)
		}
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	prevMonthStart := monthStart.AddDate(0, -1, 0)
	currentMonth := 0
	previousMonth := 0
	for _, report := range reports {
		switch {
		case !report.CreatedAt.Before(monthStart):
			currentMonth++
		case !report.CreatedAt.Before(prevMonthStart):
			previousMonth++
		}
	}

	created := make([]time.Time, 0, len(reports))
	for _, report := range reports {
		created = append(created, report.CreatedAt)
	}

	result := &ReportAnalytics{
		GeneratedAt:     now,
		TotalReports:    len(reports),
		ByStatus:        byStatus,
		ByTemplate:      byTemplate,
		ApprovalRate:    analytics.RoundPercent(analytics.Rate(approved, len(reports))),
		AvgApprovalTime: avgApproval,
		Daily:           analytics.DailyBuckets(windowFrom, windowTo, created),
		Weekday:         analytics.WeekdayBreakdown(submitted),
		MonthlyTrend:    analytics.MonthlyApprovalTrend(now, s.trendMonths, submitted, approvedAt),
	}
	if change, comparable := analytics.ChangePercent(float64(previousMonth), float64(currentMonth)); comparable {
		result.MonthOverMonth = &change
	}
	return result
}
