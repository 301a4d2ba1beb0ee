package coordinator

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cityworks/cityagent/pkg/models"
)

// Intervention options a human may answer with.
const (
	InterventionApprove = "approve"
	InterventionDefer   = "defer"
	InterventionReject  = "reject"
	InterventionModify  = "modify"
)

// ApprovalRequest is the structured request emitted when a conflict
// needs a human decision.
type ApprovalRequest struct {
	ID        string   `json:"id"`
	Urgency   string   `json:"urgency"`
	AgentType string   `json:"agent_type"`
	Location  string   `json:"location"`
	Conflicts []string `json:"conflicts"`
	Options   []string `json:"options"`
}

// interventionOptions is the fixed option set presented with every
// approval request.
var interventionOptions = []string{InterventionApprove, InterventionDefer, InterventionReject, InterventionModify}

// InterventionChannel is the pluggable human-in-the-loop boundary. A
// nil channel on the Service means no human is reachable and
// escalations surface to the caller unresolved.
type InterventionChannel interface {
	RequestApproval(ctx context.Context, req ApprovalRequest) (models.HumanDecision, error)
}

// AutoApproveChannel approves every request without blocking. Supplied
// for tests and COORDINATION_AUTO_APPROVE deployments.
type AutoApproveChannel struct{}

var _ InterventionChannel = AutoApproveChannel{}

// RequestApproval implements InterventionChannel.
func (AutoApproveChannel) RequestApproval(ctx context.Context, _ ApprovalRequest) (models.HumanDecision, error) {
	if err := ctx.Err(); err != nil {
		return models.HumanDecision{}, err
	}
	return models.HumanDecision{
		Option:    InterventionApprove,
		Approver:  "auto-approve",
		Notes:     "approved automatically (COORDINATION_AUTO_APPROVE)",
		Timestamp: time.Now(),
	}, nil
}

// TerminalChannel prompts an operator on an interactive terminal — the
// default intervention channel in production builds.
type TerminalChannel struct {
	In  io.Reader
	Out io.Writer
}

var _ InterventionChannel = (*TerminalChannel)(nil)

// RequestApproval implements InterventionChannel. It prints the
// structured request and reads one of approve/defer/reject/modify.
func (t *TerminalChannel) RequestApproval(ctx context.Context, req ApprovalRequest) (models.HumanDecision, error) {
	fmt.Fprintf(t.Out, "\n=== coordination approval required [%s] ===\n", req.ID)
	fmt.Fprintf(t.Out, "agent: %s  location: %s  urgency: %s\n", req.AgentType, req.Location, req.Urgency)
	for _, c := range req.Conflicts {
		fmt.Fprintf(t.Out, "  conflict: %s\n", c)
	}
	fmt.Fprintf(t.Out, "decision [%s]: ", strings.Join(req.Options, "/"))

	type answer struct {
		text string
		err  error
	}
	ch := make(chan answer, 1)
	go func() {
		line, err := bufio.NewReader(t.In).ReadString('\n')
		ch <- answer{text: strings.ToLower(strings.TrimSpace(line)), err: err}
	}()

	select {
	case <-ctx.Done():
		return models.HumanDecision{}, ctx.Err()
	case a := <-ch:
		if a.err != nil {
			return models.HumanDecision{}, fmt.Errorf("reading intervention decision: %w", a.err)
		}
		switch a.text {
		case InterventionApprove, InterventionDefer, InterventionReject, InterventionModify:
			return models.HumanDecision{Option: a.text, Approver: "terminal-operator", Timestamp: time.Now()}, nil
		default:
			return models.HumanDecision{
				Option:    InterventionDefer,
				Approver:  "terminal-operator",
				Notes:     fmt.Sprintf("unrecognized answer %q, treated as defer", a.text),
				Timestamp: time.Now(),
			}, nil
		}
	}
}

// ScriptedChannel returns a fixed decision for every request. For
// tests exercising the defer/reject paths.
type ScriptedChannel struct {
	Decision models.HumanDecision
	Requests []ApprovalRequest
}

var _ InterventionChannel = (*ScriptedChannel)(nil)

// RequestApproval implements InterventionChannel.
func (s *ScriptedChannel) RequestApproval(_ context.Context, req ApprovalRequest) (models.HumanDecision, error) {
	s.Requests = append(s.Requests, req)
	d := s.Decision
	if d.Timestamp.IsZero() {
		d.Timestamp = time.Now()
	}
	return d, nil
}
