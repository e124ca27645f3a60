package supervisor

import (
	"sort"

	"github.com/agentfleet/agentfleet/pkg/llm"
	"github.com/agentfleet/agentfleet/pkg/models"
)

// counterWindow tracks the last reported cumulative counters for one node.
// Providers report cumulative usage and may reset the counter to zero
// between retries or agent cycles; a drop starts a new additive window.
type counterWindow struct {
	prev models.TokenUsage
	sum  models.TokenUsage
}

// counterDelta applies the reset-tolerant delta rule to one counter:
// a non-decreasing reading contributes its increment, a drop contributes
// the whole new reading and folds the pre-reset value into the baseline.
func counterDelta(prev, current int) (delta, nextPrev int) {
	if current >= prev {
		return current - prev, current
	}
	return current, prev + current
}

func (w *counterWindow) observe(usage models.TokenUsage) models.TokenUsage {
	var delta models.TokenUsage
	delta.InputTokens, w.prev.InputTokens = counterDelta(w.prev.InputTokens, usage.InputTokens)
	delta.OutputTokens, w.prev.OutputTokens = counterDelta(w.prev.OutputTokens, usage.OutputTokens)
	delta.TotalTokens, w.prev.TotalTokens = counterDelta(w.prev.TotalTokens, usage.TotalTokens)
	w.sum.Add(delta)
	return delta
}

// BudgetTracker accumulates token usage for one run. Per-node readings
// contribute reset-tolerant deltas; run-scoped readings (the terminal
// aggregated result) use max semantics. The observed total is monotonically
// non-decreasing.
type BudgetTracker struct {
	limit    int
	observed int

	nodes       map[string]*counterWindow
	accumulated models.TokenUsage

	perModel   map[string]*models.ModelUsage
	modelOrder []string
}

// NewBudgetTracker creates a tracker enforcing the given token limit.
func NewBudgetTracker(limit int) *BudgetTracker {
	return &BudgetTracker{
		limit:    limit,
		nodes:    make(map[string]*counterWindow),
		perModel: make(map[string]*models.ModelUsage),
	}
}

// ObserveNode accounts a per-node cumulative usage reading attributed to a
// model id, and returns a budget error when the observed total crosses the
// limit.
func (b *BudgetTracker) ObserveNode(nodeID, modelID string, usage models.TokenUsage) error {
	if usage.TotalTokens == 0 {
		usage.TotalTokens = usage.InputTokens + usage.OutputTokens
	}
	window, ok := b.nodes[nodeID]
	if !ok {
		window = &counterWindow{}
		b.nodes[nodeID] = window
	}
	delta := window.observe(usage)
	b.accumulated.Add(delta)
	b.recordModel(modelID, delta)

	if b.accumulated.TotalTokens > b.observed {
		b.observed = b.accumulated.TotalTokens
	}
	return b.check()
}

// ObserveRunTotal accounts a run-scoped total with max semantics.
func (b *BudgetTracker) ObserveRunTotal(usage models.TokenUsage) error {
	total := usage.TotalTokens
	if total == 0 {
		total = usage.InputTokens + usage.OutputTokens
	}
	if total > b.observed {
		b.observed = total
	}
	return b.check()
}

func (b *BudgetTracker) check() error {
	if b.limit > 0 && b.observed > b.limit {
		return NewRunError(CodeTokenBudgetExceeded,
			"run token budget exceeded: observed %d tokens, limit %d", b.observed, b.limit)
	}
	return nil
}

func (b *BudgetTracker) recordModel(modelID string, delta models.TokenUsage) {
	if modelID == "" || delta.IsZero() {
		return
	}
	key := llm.NormalizeModelID(modelID)
	bucket, ok := b.perModel[key]
	if !ok {
		// The first-seen display form is retained for reporting.
		bucket = &models.ModelUsage{ModelID: modelID}
		b.perModel[key] = bucket
		b.modelOrder = append(b.modelOrder, key)
	}
	bucket.Usage.Add(delta)
}

// Observed returns the monotonic observed total.
func (b *BudgetTracker) Observed() int { return b.observed }

// Accumulated returns the summed per-node deltas.
func (b *BudgetTracker) Accumulated() models.TokenUsage { return b.accumulated }

// NodeUsage returns the accumulated usage for one node.
func (b *BudgetTracker) NodeUsage(nodeID string) models.TokenUsage {
	if window, ok := b.nodes[nodeID]; ok {
		return window.sum
	}
	return models.TokenUsage{}
}

// NodeIDs returns the node ids seen so far, sorted.
func (b *BudgetTracker) NodeIDs() []string {
	ids := make([]string, 0, len(b.nodes))
	for id := range b.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// PerModel returns the per-model usage buckets in first-seen order.
func (b *BudgetTracker) PerModel() []models.ModelUsage {
	out := make([]models.ModelUsage, 0, len(b.modelOrder))
	for _, key := range b.modelOrder {
		out = append(out, *b.perModel[key])
	}
	return out
}
