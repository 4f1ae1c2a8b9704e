package radar

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/radard/internal/config"
	"github.com/fyrsmithlabs/radard/internal/extraction"
	"github.com/fyrsmithlabs/radard/internal/plugin"
	"github.com/fyrsmithlabs/radard/internal/scanner"
	"github.com/fyrsmithlabs/radard/internal/store"
)

const instrumentationName = "github.com/fyrsmithlabs/radard/internal/radar"

// markdownExts filters document enumeration.
var markdownExts = []string{".md"}

// ErrScanInProgress is returned when another scan holds the lock.
var ErrScanInProgress = errors.New("scan already in progress")

// knowledgeSparseThreshold is the file count below which a category is
// reported as sparse.
const knowledgeSparseThreshold = 3

// Service provides project-state scanning.
type Service interface {
	// Scan walks the configured repository and assembles a fresh snapshot.
	// The snapshot is persisted through the store; a persistence failure is
	// logged and the snapshot still returned.
	Scan(ctx context.Context) (*ProjectState, error)

	// LastState loads the most recently persisted snapshot, or nil when no
	// scan has been persisted yet.
	LastState(ctx context.Context) (*ProjectState, error)
}

type service struct {
	cfg    *config.Config
	store  store.Store
	lock   *store.Lock
	logger *zap.Logger
	now    func() time.Time

	tracer       trace.Tracer
	meter        metric.Meter
	scanCounter  metric.Int64Counter
	scanDuration metric.Float64Histogram
}

// NewService creates a radar service. The lock may be nil to disable scan
// serialization.
func NewService(cfg *config.Config, st store.Store, lock *store.Lock, logger *zap.Logger) (Service, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if st == nil {
		return nil, errors.New("store is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &service{
		cfg:    cfg,
		store:  st,
		lock:   lock,
		logger: logger,
		now:    time.Now,
		tracer: otel.Tracer(instrumentationName),
		meter:  otel.Meter(instrumentationName),
	}
	s.initMetrics()
	return s, nil
}

func (s *service) initMetrics() {
	var err error

	s.scanCounter, err = s.meter.Int64Counter(
		"radard.radar.scans_total",
		metric.WithDescription("Total number of project scans"),
		metric.WithUnit("{scan}"),
	)
	if err != nil {
		s.logger.Warn("failed to create scan counter", zap.Error(err))
	}

	s.scanDuration, err = s.meter.Float64Histogram(
		"radard.radar.scan_duration_seconds",
		metric.WithDescription("Project scan duration"),
		metric.WithUnit("s"),
	)
	if err != nil {
		s.logger.Warn("failed to create scan duration histogram", zap.Error(err))
	}
}

// Scan assembles a fresh ProjectState. The read path never mutates inputs;
// the write path replaces the prior snapshot wholesale.
func (s *service) Scan(ctx context.Context) (*ProjectState, error) {
	ctx, span := s.tracer.Start(ctx, "radar.scan")
	defer span.End()

	if s.lock != nil {
		if err := s.lock.Acquire(); err != nil {
			if errors.Is(err, store.ErrLocked) {
				span.SetStatus(codes.Error, ErrScanInProgress.Error())
				return nil, ErrScanInProgress
			}
			span.RecordError(err)
			return nil, fmt.Errorf("failed to acquire scan lock: %w", err)
		}
		defer func() {
			if err := s.lock.Release(); err != nil {
				s.logger.Warn("failed to release scan lock", zap.Error(err))
			}
		}()
	}

	started := s.now()
	state := &ProjectState{
		ScannedAt:             started,
		Plugins:               []plugin.Status{},
		Completed:             []plugin.ProgressItem{},
		InProgress:            []plugin.ProgressItem{},
		Blocked:               []plugin.ProgressItem{},
		Planned:               []plugin.ProgressItem{},
		KnowledgeCategories:   []KnowledgeCategory{},
		KnowledgeGaps:         []string{},
		NorthStarDeliverables: []DeliverableStatus{},
		RecentChanges:         []scanner.Change{},
		DocInsights:           []extraction.DocInsight{},
	}

	s.scanPlugins(state)
	s.scanKnowledge(state)
	s.checkDeliverables(state)
	state.RecentChanges = s.recentChanges()
	s.scanDocuments(state)

	if err := s.store.Save(state); err != nil {
		s.logger.Warn("failed to persist project state", zap.Error(err))
	}

	span.SetAttributes(
		attribute.Int("plugins", len(state.Plugins)),
		attribute.Int("doc_insights", len(state.DocInsights)),
	)
	if s.scanCounter != nil {
		s.scanCounter.Add(ctx, 1)
	}
	if s.scanDuration != nil {
		s.scanDuration.Record(ctx, time.Since(started).Seconds())
	}
	s.logger.Info("scan complete",
		zap.Int("plugins", len(state.Plugins)),
		zap.Int("actions", state.TotalActions),
		zap.Int("completed", len(state.Completed)),
		zap.Int("docs", len(state.DocInsights)))

	return state, nil
}

// LastState loads the persisted snapshot.
func (s *service) LastState(ctx context.Context) (*ProjectState, error) {
	_, span := s.tracer.Start(ctx, "radar.last_state")
	defer span.End()

	var state ProjectState
	found, err := s.store.Load(&state)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to load project state: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &state, nil
}

func (s *service) scanPlugins(state *ProjectState) {
	pluginsRoot := s.cfg.RepoPath(s.cfg.Repo.PluginsDir)
	for _, dir := range scanner.PluginDirs(pluginsRoot) {
		status := plugin.Evaluate(dir)
		state.Plugins = append(state.Plugins, status)
		state.TotalActions += status.ActionCount
		state.TotalServices += status.ServiceCount

		data, err := os.ReadFile(filepath.Join(dir, s.cfg.Scan.ProgressFile))
		if err != nil {
			continue
		}
		for _, item := range plugin.ParseProgress(string(data), status.Name) {
			switch item.Status {
			case plugin.StatusCompleted:
				state.Completed = append(state.Completed, item)
			case plugin.StatusInProgress:
				state.InProgress = append(state.InProgress, item)
			case plugin.StatusBlocked:
				state.Blocked = append(state.Blocked, item)
			default:
				state.Planned = append(state.Planned, item)
			}
		}
	}
}

func (s *service) scanKnowledge(state *ProjectState) {
	root := s.cfg.RepoPath(s.cfg.Repo.KnowledgeDir)
	dirEntries, err := os.ReadDir(root)
	if err != nil {
		state.KnowledgeGaps = append(state.KnowledgeGaps, "knowledge root missing")
		return
	}

	for _, de := range dirEntries {
		if !de.IsDir() || de.Name()[0] == '.' {
			continue
		}
		dir := filepath.Join(root, de.Name())
		count := scanner.CountFiles(dir, markdownExts, nil)
		state.KnowledgeCategories = append(state.KnowledgeCategories, KnowledgeCategory{
			Name:        de.Name(),
			FileCount:   count,
			LastUpdated: scanner.NewestModTime(dir, markdownExts),
		})

		if count == 0 {
			state.KnowledgeGaps = append(state.KnowledgeGaps,
				fmt.Sprintf("empty knowledge category: %s", de.Name()))
		} else if count < knowledgeSparseThreshold {
			state.KnowledgeGaps = append(state.KnowledgeGaps,
				fmt.Sprintf("sparse knowledge: %s (%d files)", de.Name(), count))
		}
	}

	for _, expected := range s.cfg.Repo.ExpectedKnowledge {
		found := false
		for _, cat := range state.KnowledgeCategories {
			if cat.Name == expected {
				found = true
				break
			}
		}
		if !found {
			state.KnowledgeGaps = append(state.KnowledgeGaps,
				fmt.Sprintf("missing expected knowledge: %s", expected))
		}
	}
}

func (s *service) checkDeliverables(state *ProjectState) {
	base := s.cfg.RepoPath(s.cfg.Repo.DeliverablesDir)
	for _, d := range s.cfg.Repo.Deliverables {
		status := DeliverableStatus{
			Name:   d.Name,
			Owner:  d.Owner,
			Dir:    d.Dir,
			Status: DeliverableMissing,
		}

		dir := filepath.Join(base, d.Dir)
		dirEntries, err := os.ReadDir(dir)
		if err == nil {
			var names []string
			for _, de := range dirEntries {
				if !de.IsDir() && filepath.Ext(de.Name()) == ".md" {
					names = append(names, de.Name())
				}
			}
			if len(names) > 0 {
				sort.Strings(names)
				latest := names[len(names)-1]
				status.LastOutput = latest

				info, err := os.Stat(filepath.Join(dir, latest))
				if err == nil && s.now().Sub(info.ModTime()) <= s.cfg.Scan.StaleAfter {
					status.Status = DeliverableActive
				} else {
					status.Status = DeliverableStale
				}
			}
		}

		state.NorthStarDeliverables = append(state.NorthStarDeliverables, status)
	}
}

func (s *service) recentChanges() []scanner.Change {
	roots := []string{
		s.cfg.RepoPath(s.cfg.Repo.PluginsDir),
		s.cfg.RepoPath(s.cfg.Repo.KnowledgeDir),
		s.cfg.RepoPath(s.cfg.Repo.DocsDir),
	}
	changes := scanner.RecentChanges(roots, s.cfg.Scan.SourceExts,
		s.cfg.Scan.RecentWindow, s.cfg.Scan.RecentLimit, s.now())
	if changes == nil {
		changes = []scanner.Change{}
	}
	return changes
}

func (s *service) scanDocuments(state *ProjectState) {
	lessonsPath := s.cfg.RepoPath(s.cfg.Repo.LessonsFile)
	improvePath := s.cfg.RepoPath(s.cfg.Repo.ImproveFile)

	type doc struct {
		name string
		path string
	}
	var docs []doc
	for _, name := range s.cfg.Repo.KeyDocs {
		docs = append(docs, doc{name: name, path: s.cfg.RepoPath(name)})
	}
	for _, dir := range []string{s.cfg.Repo.DocsDir, s.cfg.Repo.TasksDir} {
		root := s.cfg.RepoPath(dir)
		for _, e := range scanner.Walk(root, markdownExts) {
			docs = append(docs, doc{name: dir + "/" + e.RelPath, path: e.AbsPath})
		}
	}
	for _, name := range s.cfg.Repo.InternalDocs {
		docs = append(docs, doc{name: name, path: s.cfg.RepoPath(name)})
	}

	var todos []extraction.TodoItem
	var priorities, blockers []string
	seen := map[string]bool{}
	for _, d := range docs {
		if d.path == lessonsPath || d.path == improvePath || seen[d.path] {
			continue
		}
		seen[d.path] = true

		data, err := os.ReadFile(d.path)
		if err != nil {
			continue
		}
		content := string(data)

		insight := extraction.Extract(d.name, content)
		state.DocInsights = append(state.DocInsights, *insight)
		state.RoadmapItems = append(state.RoadmapItems, extraction.ExtractRoadmap(d.name, content)...)

		for _, td := range insight.Todos {
			if !td.Checked {
				todos = append(todos, td)
			}
		}
		priorities = append(priorities, insight.Priorities...)
		blockers = append(blockers, insight.Blockers...)
	}

	if data, err := os.ReadFile(improvePath); err == nil {
		priorities = append(priorities, extraction.ParseNumberedList(string(data))...)
	}

	lessons, err := extraction.LessonsFromFile(lessonsPath, s.cfg.Repo.LessonsFile)
	if err != nil {
		s.logger.Warn("failed to read lessons file", zap.Error(err))
	}
	state.Lessons = lessons

	if len(todos) > s.cfg.Scan.TodoLimit {
		todos = todos[:s.cfg.Scan.TodoLimit]
	}
	state.AllTodos = todos
	state.TopPriorities = dedupeCap(priorities, s.cfg.Scan.ListLimit)
	state.CriticalBlockers = dedupeCap(blockers, s.cfg.Scan.ListLimit)
}

// dedupeCap keeps unique values in order of first appearance, up to limit.
func dedupeCap(values []string, limit int) []string {
	seen := make(map[string]bool, len(values))
	var out []string
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
