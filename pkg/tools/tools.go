// Package tools declares the typed, side-effect-free queries the tool
// executor (Phase 7) runs over the Context Store. Tools are registered
// per department and looked up by name; an unknown name records a step
// error, never a panic.
package tools

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/cityworks/cityagent/pkg/contextstore"
)

// Tool is one pure read over a context snapshot. Execute must not
// mutate anything: the only persistence in a pipeline run happens at
// the memory logger, never here.
type Tool interface {
	Name() string
	Description() string
	Execute(ctx context.Context, snap contextstore.Snapshot, args map[string]any) (map[string]any, error)
}

// Registry resolves tools by name for one department.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]Tool
}

// NewRegistry creates a registry from the given tools. Duplicate names
// keep the last registration.
func NewRegistry(tools ...Tool) *Registry {
	r := &Registry{tools: make(map[string]Tool, len(tools))}
	for _, t := range tools {
		r.tools[t.Name()] = t
	}
	return r
}

// Get resolves a tool by name.
func (r *Registry) Get(name string) (Tool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tools[name]
	if !ok {
		return nil, fmt.Errorf("unknown tool %q", name)
	}
	return t, nil
}

// Names returns the registered tool names, sorted for stable prompt
// rendering.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tools)
}

// funcTool adapts a plain function into a Tool.
type funcTool struct {
	name        string
	description string
	fn          func(ctx context.Context, snap contextstore.Snapshot, args map[string]any) (map[string]any, error)
}

func (t funcTool) Name() string        { return t.name }
func (t funcTool) Description() string { return t.description }

func (t funcTool) Execute(ctx context.Context, snap contextstore.Snapshot, args map[string]any) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return t.fn(ctx, snap, args)
}

// NewTool wraps fn as a named Tool.
func NewTool(name, description string, fn func(ctx context.Context, snap contextstore.Snapshot, args map[string]any) (map[string]any, error)) Tool {
	return funcTool{name: name, description: description, fn: fn}
}
