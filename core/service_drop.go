package core

import (
	"context"
	"errors"
	"fmt"
	"os"

	"pkt.systems/pslog"
	"pkt.systems/routedrop/internal/fsops"
	"pkt.systems/routedrop/internal/logx"
	"pkt.systems/routedrop/schema"
)

func (s *service) SubmitDrop(ctx context.Context, req schema.SubmitDropRequest) (schema.SubmitDropResponse, error) {
	if ctx == nil {
		return schema.SubmitDropResponse{}, errors.New("missing context")
	}
	if len(req.Sources) == 0 {
		return schema.SubmitDropResponse{}, schema.ErrEmptyDrop
	}
	log := logx.WithDrop(ctx, req.TabID, len(req.Sources))

	s.mu.Lock()
	t := s.tabs[req.TabID]
	if t == nil {
		s.mu.Unlock()
		log.Warn("service drop rejected", "err", schema.ErrTabNotFound)
		return schema.SubmitDropResponse{}, schema.ErrTabNotFound
	}
	destDir := t.Path
	mode := t.Mode
	s.mu.Unlock()

	var (
		entries []schema.HistoryEntry
		warning string
		ctxErr  error
	)
	for _, source := range req.Sources {
		if err := ctx.Err(); err != nil {
			ctxErr = err
			break
		}
		entry := s.routeOne(log, destDir, mode, source)
		saved, err := s.recordEntry(req.TabID, entry)
		if err != nil {
			log.Warn("service drop aborted", "err", err)
			return schema.SubmitDropResponse{}, err
		}
		if !saved {
			warning = historyPersistWarning
		}
		entries = append(entries, entry)
	}
	if warning != "" {
		log.Warn("service drop history not persisted")
	}

	s.mu.Lock()
	t = s.tabs[req.TabID]
	if t == nil {
		s.mu.Unlock()
		return schema.SubmitDropResponse{}, schema.ErrTabNotFound
	}
	snapshot := t.Snapshot(s.indexOfLocked(t.ID))
	s.mu.Unlock()

	log.Info("service drop routed", "entries", len(entries), "mode", mode)
	return schema.SubmitDropResponse{
		Tab:            snapshot,
		Entries:        entries,
		PersistWarning: warning,
	}, ctxErr
}

const historyPersistWarning = "history kept in memory only; config save failed"

// routeOne performs a single transfer and reports it as a history entry.
// Filesystem trouble lands in the entry's result, never in an error.
func (s *service) routeOne(log pslog.Logger, destDir string, mode schema.OperationMode, source string) schema.HistoryEntry {
	entry := schema.HistoryEntry{
		Timestamp: schema.Timestamp(timeNow()),
		Operation: mode,
		Source:    source,
	}
	if _, err := os.Stat(source); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			entry.Result = schema.Failed("source does not exist")
		} else {
			entry.Result = schema.Failed(err.Error())
		}
		log.Warn("service route failed", "source", source, "err", err)
		return entry
	}
	target, err := resolveTarget(destDir, source)
	if err != nil {
		entry.Result = schema.Failed(err.Error())
		log.Warn("service route failed", "source", source, "err", err)
		return entry
	}
	entry.Destination = target.Destination

	if target.WouldOverwrite && !mode.Overwrites() {
		entry.Result = schema.SkippedExists()
		log.Debug("service route skipped", "source", source, "destination", target.Destination)
		return entry
	}
	if target.WouldOverwrite {
		if err := fsops.RemoveTarget(target.Destination); err != nil {
			entry.Result = schema.Failed(fmt.Sprintf("remove existing target: %v", err))
			log.Warn("service route failed", "source", source, "err", err)
			return entry
		}
	}

	if mode.IsCopy() {
		if err := fsops.Copy(source, target.Destination, s.cfg.VerifyCopies); err != nil {
			entry.Result = schema.Failed(err.Error())
			log.Warn("service route failed", "source", source, "err", err)
			return entry
		}
	} else {
		cleanup, err := fsops.Move(source, target.Destination, s.cfg.VerifyCopies)
		if err != nil {
			entry.Result = schema.Failed(err.Error())
			log.Warn("service route failed", "source", source, "err", err)
			return entry
		}
		if cleanup != nil {
			entry.Cleanup = cleanup.Error()
			log.Warn("service route source cleanup failed", "source", source, "err", cleanup)
		}
	}
	entry.Result = schema.Success()
	log.Debug("service route ok", "source", source, "destination", target.Destination)
	return entry
}

// recordEntry appends the entry to the tab's history and persists. A failed
// save keeps the entry in memory; saved reports whether it reached disk.
func (s *service) recordEntry(id schema.TabID, entry schema.HistoryEntry) (saved bool, err error) {
	s.mu.Lock()
	t := s.tabs[id]
	if t == nil {
		s.mu.Unlock()
		return false, schema.ErrTabNotFound
	}
	t.history.Append(entry)
	doc := s.documentLocked()
	s.mu.Unlock()

	if err := s.store.Save(doc); err != nil {
		return false, nil
	}
	return true, nil
}
