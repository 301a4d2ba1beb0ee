package tools

import (
	"context"
	"errors"

	"github.com/cityworks/cityagent/pkg/contextstore"
)

// StaticTool returns a Tool that always yields the same output,
// ignoring snapshot and args. For pipeline tests.
func StaticTool(name string, output map[string]any) Tool {
	return NewTool(name, "static test tool",
		func(context.Context, contextstore.Snapshot, map[string]any) (map[string]any, error) {
			return output, nil
		})
}

// FailingTool returns a Tool whose Execute always errors with msg.
func FailingTool(name, msg string) Tool {
	return NewTool(name, "failing test tool",
		func(context.Context, contextstore.Snapshot, map[string]any) (map[string]any, error) {
			return nil, errors.New(msg)
		})
}
