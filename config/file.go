package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// fileOverrides points at the live config instances so a YAML file only
// needs to mention the fields it changes.
type fileOverrides struct {
	Run    *RunConfig    `yaml:"run"`
	Stage  *StageConfig  `yaml:"stage"`
	Action *ActionConfig `yaml:"action"`
	Input  *InputConfig  `yaml:"input"`
}

// LoadFile applies a YAML tuning file on top of the built-in defaults.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	ov := fileOverrides{Run: &Run, Stage: &Stage, Action: &Action, Input: &Input}
	if err := yaml.Unmarshal(data, &ov); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// WatchFile reloads the tuning file whenever it changes on disk. Used in
// debug mode only; errors during a reload keep the previous values.
func WatchFile(path string) (func() error, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, err
	}

	go func() {
		var last time.Time
		for {
			select {
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(path) {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				// Editors fire bursts of writes; debounce them.
				if time.Since(last) < 100*time.Millisecond {
					continue
				}
				last = time.Now()
				if err := LoadFile(path); err != nil {
					log.Printf("config reload failed: %v", err)
					continue
				}
				log.Printf("config reloaded from %s", path)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Printf("config watcher error: %v", err)
			}
		}
	}()

	return w.Close, nil
}
