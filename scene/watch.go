// Copyright © 2026 Glint contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: scene/watch.go
// Summary: Filesystem watcher for live scene and theme reload.

package scene

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 100 * time.Millisecond

// Watch reports writes to the given files until ctx is cancelled. Rapid
// write bursts from editors are debounced; onChange receives the path that
// changed last. Watch errors are logged, they never stop the watcher.
func Watch(ctx context.Context, paths []string, onChange func(path string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("scene: watch: %w", err)
	}
	for _, p := range paths {
		if err := watcher.Add(p); err != nil {
			watcher.Close()
			return fmt.Errorf("scene: watch %s: %w", p, err)
		}
	}

	go func() {
		defer watcher.Close()

		var (
			timer   *time.Timer
			timerC  <-chan time.Time
			pending string
		)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				debugLog.Printf("change event: %s", ev)
				pending = ev.Name
				if timer == nil {
					timer = time.NewTimer(debounce)
					timerC = timer.C
				} else {
					timer.Reset(debounce)
				}
			case <-timerC:
				onChange(pending)
				timer, timerC = nil, nil
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("scene: watch error: %v", err)
			}
		}
	}()
	return nil
}
