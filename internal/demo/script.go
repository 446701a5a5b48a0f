// Package demo plays a scripted sequence of notifications through a banner
// on the terminal host.
package demo

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jquag/banner/internal/model"
)

// Step is one scripted banner operation.
type Step struct {
	Op     string   `yaml:"op"`     // present, show, change, hide
	Title  string   `yaml:"title"`
	Color  string   `yaml:"color"`
	Kind   string   `yaml:"kind"`   // default, searching
	Images []string `yaml:"images"`
	Wait   string   `yaml:"wait"`   // delay before the next step, e.g. "2s"
}

// validOps are the operations a script may request.
var validOps = map[string]bool{
	"present": true,
	"show":    true,
	"change":  true,
	"hide":    true,
}

// Delay returns the pause before the next step. Defaults to 2s.
func (s Step) Delay() time.Duration {
	if s.Wait == "" {
		return 2 * time.Second
	}
	d, err := time.ParseDuration(s.Wait)
	if err != nil || d <= 0 {
		return 2 * time.Second
	}
	return d
}

// Request builds the notification request for this step.
func (s Step) Request() (model.Request, error) {
	kind := model.KindDefault
	if s.Kind != "" {
		var err error
		kind, err = model.ParseKind(s.Kind)
		if err != nil {
			return model.Request{}, err
		}
	}

	images := make([]model.Image, len(s.Images))
	for i, name := range s.Images {
		images[i] = model.Image{Name: name}
	}

	return model.NewRequest(s.Title, s.Color, images, kind)
}

// LoadScript reads and validates a YAML script file.
func LoadScript(path string) ([]Step, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return ParseScript(data)
}

// ParseScript parses and validates YAML script content.
func ParseScript(data []byte) ([]Step, error) {
	var steps []Step
	if err := yaml.Unmarshal(data, &steps); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	if len(steps) == 0 {
		return nil, fmt.Errorf("script contains no steps")
	}

	for i, s := range steps {
		if !validOps[s.Op] {
			return nil, fmt.Errorf("step %d: unknown op %q", i+1, s.Op)
		}
		if s.Kind != "" {
			if _, err := model.ParseKind(s.Kind); err != nil {
				return nil, fmt.Errorf("step %d: %w", i+1, err)
			}
		}
	}

	return steps, nil
}

// DefaultScript is played when no script file is given.
func DefaultScript() []Step {
	return []Step{
		{Op: "show", Title: "Welcome back", Color: "#5F87AF", Wait: "2500ms"},
		{Op: "present", Title: "Searching for devices", Color: "#AF5F5F", Kind: "searching", Wait: "2s"},
		{Op: "change", Title: "Found 3 devices", Color: "#5F875F", Images: []string{"✔"}, Wait: "2s"},
		{Op: "hide", Wait: "1s"},
		{Op: "show", Title: "Syncing", Color: "#875FAF", Images: []string{"◐", "◓", "◑", "◒"}, Wait: "3s"},
	}
}
