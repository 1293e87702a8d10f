// Copyright © 2026 Glint contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: theme/store.go
// Summary: Global theme store: embedded defaults, file loading, reload.

package theme

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"
)

var (
	mu       sync.RWMutex
	once     sync.Once
	current  Theme
	lastPath string
	loadErr  error
)

// Get returns the active theme, initializing it from the embedded defaults
// on first use.
func Get() Theme {
	once.Do(initStore)
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Err returns the most recent theme load error.
func Err() error {
	once.Do(initStore)
	mu.RLock()
	defer mu.RUnlock()
	return loadErr
}

// Load reads a theme file and makes it active. Sections missing from the
// file are filled from the embedded defaults. On failure the previous theme
// stays active.
func Load(path string) error {
	once.Do(initStore)

	data, err := os.ReadFile(path)
	if err != nil {
		setErr(err)
		return err
	}
	var t Theme
	if err := json.Unmarshal(data, &t); err != nil {
		err = fmt.Errorf("theme: parse %s: %w", path, err)
		setErr(err)
		return err
	}
	if t == nil {
		t = make(Theme)
	}
	defaults := defaultTheme()
	for name := range defaults {
		t.RegisterDefaults(name, defaults.Section(name))
	}

	mu.Lock()
	current = t
	lastPath = path
	loadErr = nil
	mu.Unlock()
	log.Printf("Theme: Loaded %s", path)
	return nil
}

// Reload re-reads the last loaded file. Before any Load it resets to the
// embedded defaults.
func Reload() error {
	once.Do(initStore)
	mu.RLock()
	path := lastPath
	mu.RUnlock()
	if path == "" {
		Set(defaultTheme())
		return nil
	}
	return Load(path)
}

// Set replaces the active theme.
func Set(t Theme) {
	once.Do(initStore)
	mu.Lock()
	defer mu.Unlock()
	if t == nil {
		t = make(Theme)
	}
	current = t
}

func setErr(err error) {
	mu.Lock()
	loadErr = err
	mu.Unlock()
}

func initStore() {
	mu.Lock()
	defer mu.Unlock()
	current = defaultThemeLocked()
}

func defaultTheme() Theme {
	return defaultThemeLocked()
}

func defaultThemeLocked() Theme {
	var t Theme
	if err := json.Unmarshal(defaultThemeJSON, &t); err != nil {
		// The defaults are compiled in; failing to parse them is a bug,
		// not a runtime condition.
		panic(fmt.Sprintf("theme: invalid embedded defaults: %v", err))
	}
	return t
}
