package resume

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch builds the source once, then rebuilds it after every change until
// ctx is cancelled. Build errors go to the Reporter and the loop keeps
// running. Builds run one at a time; changes made during a build trigger
// one more build afterwards.
//
// The source's directory is watched rather than the file itself, so
// editors that save by renaming a new file over the old one keep working.
// Returns nil when ctx is cancelled.
func (s *Session) Watch(ctx context.Context) error {
	src := s.source()
	if err := validateSourceExt(src); err != nil {
		return err
	}

	target, err := filepath.Abs(src)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadSource, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer func() { _ = w.Close() }()

	if err := w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("%w: watching %s: %v", ErrReadSource, filepath.Dir(target), err)
	}

	s.report(func(r Reporter) { r.Watching(src) })
	s.rebuild(ctx)

	settle := s.SettleDelay
	if settle <= 0 {
		settle = defaultSettleDelay
	}

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !isChange(ev, target) {
				continue
			}
			pending = time.After(settle)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.report(func(r Reporter) { r.Failed(fmt.Errorf("watcher: %w", err)) })

		case <-pending:
			pending = nil
			s.report(func(r Reporter) { r.Rebuilding(src) })
			s.rebuild(ctx)
		}
	}
}

func (s *Session) rebuild(ctx context.Context) {
	res, err := s.Build(ctx)
	switch {
	case err == nil:
		s.report(func(r Reporter) { r.Built(res) })
	case ctx.Err() != nil && errors.Is(err, ctx.Err()):
		// Shutting down.
	default:
		s.report(func(r Reporter) { r.Failed(err) })
	}
}

func (s *Session) report(fn func(Reporter)) {
	if s.Reporter != nil {
		fn(s.Reporter)
	}
}

// isChange reports whether ev modifies the file at target.
func isChange(ev fsnotify.Event, target string) bool {
	name, err := filepath.Abs(ev.Name)
	if err != nil || name != target {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)
}
