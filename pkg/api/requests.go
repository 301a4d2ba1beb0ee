package api

import (
	"encoding/json"
	"fmt"

	"github.com/cityworks/cityagent/pkg/models"
)

// knownRequestKeys are the envelope fields lifted out of the
// submission body; everything else is carried verbatim as free-form
// per-type fields.
var knownRequestKeys = map[string]bool{
	"type":             true,
	"location":         true,
	"originator":       true,
	"estimated_cost":   true,
	"resources_needed": true,
}

// parseSubmission decodes POST /api/v1/query's body into a Request.
// Costs are minor currency units (paise).
func parseSubmission(body []byte) (models.Request, error) {
	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return models.Request{}, fmt.Errorf("%w: malformed JSON body", models.ErrInvalidInput)
	}

	req := models.Request{Fields: map[string]any{}}
	req.Type, _ = raw["type"].(string)
	req.Location, _ = raw["location"].(string)
	req.Originator, _ = raw["originator"].(string)

	if v, ok := raw["estimated_cost"].(float64); ok {
		cost := models.Money(v)
		req.EstimatedCost = &cost
	}
	if list, ok := raw["resources_needed"].([]any); ok {
		for _, item := range list {
			if s, ok := item.(string); ok {
				req.ResourcesNeeded = append(req.ResourcesNeeded, s)
			}
		}
	}
	for k, v := range raw {
		if !knownRequestKeys[k] {
			req.Fields[k] = v
		}
	}

	return req, req.Validate()
}
