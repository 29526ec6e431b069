package audit

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"chaseplus/internal/entity"
	"chaseplus/internal/usecase"
	"chaseplus/pkg/logger"
)

// KeySource lists the asset keys a store still references.
type KeySource interface {
	ImageKeys(ctx context.Context) ([]string, error)
}

// Backlog reports how many orphaned-asset events wait for an operator.
type Backlog interface {
	QueueLength() (int, error)
}

// Report summarizes one audit run.
type Report struct {
	Scanned    int
	Referenced int
	Orphans    []string
}

// Auditor finds stored assets under the image prefixes that no course or blog references.
// It reports them and never deletes anything.
type Auditor struct {
	assets   usecase.AssetStore
	sources  []KeySource
	prefixes []string
	events   usecase.EventPublisher
	backlog  Backlog
	logger   *logger.Logger
}

// NewAuditor scans each prefix as a directory. A trailing "/" on a prefix is ignored,
// matching how uploads build keys.
func NewAuditor(assets usecase.AssetStore, events usecase.EventPublisher, log *logger.Logger, prefixes []string, sources ...KeySource) *Auditor {
	dirs := make([]string, 0, len(prefixes))
	for _, prefix := range prefixes {
		dirs = append(dirs, strings.TrimSuffix(prefix, "/"))
	}
	return &Auditor{
		assets:   assets,
		sources:  sources,
		prefixes: dirs,
		events:   events,
		logger:   log,
	}
}

// WithBacklog makes each run log the size of the orphaned-asset queue.
func (a *Auditor) WithBacklog(backlog Backlog) *Auditor {
	a.backlog = backlog
	return a
}

func (a *Auditor) Run(ctx context.Context) (*Report, error) {
	referenced := make(map[string]struct{})
	for _, source := range a.sources {
		keys, err := source.ImageKeys(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load referenced keys: %w", err)
		}
		for _, key := range keys {
			referenced[key] = struct{}{}
		}
	}

	report := &Report{Referenced: len(referenced), Orphans: []string{}}
	for _, prefix := range a.prefixes {
		keys, err := a.assets.ListKeys(ctx, prefix+"/")
		if err != nil {
			return nil, &entity.AssetError{Op: "list", Key: prefix, Err: err}
		}
		report.Scanned += len(keys)
		for _, key := range keys {
			if _, ok := referenced[key]; !ok {
				report.Orphans = append(report.Orphans, key)
			}
		}
	}
	sort.Strings(report.Orphans)

	for _, key := range report.Orphans {
		a.logger.Warn("[AUDIT] Orphaned asset: %s", key)
		if a.events == nil {
			continue
		}
		event := entity.NewContentEvent(entity.EventAssetOrphaned, "")
		event.AssetKey = key
		event.Reason = "unreferenced in audit"
		if err := a.events.Publish(ctx, event.Type, event); err != nil {
			a.logger.Error("[AUDIT] Failed to publish orphaned asset %s: %v", key, err)
		}
	}

	a.logger.Info("[AUDIT] Scanned %d assets, %d referenced, %d orphaned", report.Scanned, report.Referenced, len(report.Orphans))
	if a.backlog != nil {
		if waiting, err := a.backlog.QueueLength(); err == nil {
			a.logger.Info("[AUDIT] %d orphaned asset events waiting in queue", waiting)
		}
	}
	return report, nil
}
