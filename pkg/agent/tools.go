package agent

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Sentinel errors for tool registry operations.
var (
	ErrToolExists   = errors.New("tool already registered")
	ErrToolNotFound = errors.New("tool not found")
)

// ToolDefinition describes a tool to the model.
type ToolDefinition struct {
	Name             string
	Description      string
	ParametersSchema string
}

// Tool is an opaque callable: a name, an input schema, and a result
// producer. The returned value must be JSON-serializable; orchestrators may
// additionally recognize coordination request values (e.g. handoff intents)
// returned from injected tools.
type Tool struct {
	Definition ToolDefinition
	Execute    func(ctx context.Context, input map[string]any) (any, error)
}

// ToolRegistry is an agent's tool set, addressable by name.
type ToolRegistry struct {
	mu    sync.RWMutex
	tools map[string]*Tool
}

// NewToolRegistry creates an empty registry.
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{tools: make(map[string]*Tool)}
}

// Register adds a tool. Returns ErrToolExists if the name is taken.
func (r *ToolRegistry) Register(tool *Tool) error {
	if tool == nil || tool.Definition.Name == "" {
		return errors.New("tool requires a name")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tools[tool.Definition.Name]; ok {
		return fmt.Errorf("%w: %s", ErrToolExists, tool.Definition.Name)
	}
	r.tools[tool.Definition.Name] = tool
	return nil
}

// Get returns the tool with the given name.
func (r *ToolRegistry) Get(name string) (*Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tool, ok := r.tools[name]
	return tool, ok
}

// Remove deletes a tool by name. Removing an absent tool is a no-op.
func (r *ToolRegistry) Remove(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tools, name)
}

// Names returns the registered tool names, sorted.
func (r *ToolRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Definitions returns the tool definitions in name order, for the model.
func (r *ToolRegistry) Definitions() []ToolDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	defs := make([]ToolDefinition, 0, len(r.tools))
	for _, tool := range r.tools {
		defs = append(defs, tool.Definition)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs
}
