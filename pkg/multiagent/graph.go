package multiagent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/agentfleet/agentfleet/pkg/agent"
	"github.com/agentfleet/agentfleet/pkg/events"
	"github.com/agentfleet/agentfleet/pkg/models"
)

// mergerPollInterval is the merger's pull timeout; it bounds how long the
// batch loop goes without re-checking cancellation.
const mergerPollInterval = 100 * time.Millisecond

// GraphState is the read view condition predicates and input synthesis see.
// It is mutated only by the graph's own driver between batches.
type GraphState struct {
	Task           Task
	Results        map[string]*models.NodeResult
	CompletedNodes []string
	ExecutionOrder []string
}

// EdgeCondition is a pure predicate over the graph state; a nil condition
// always holds.
type EdgeCondition func(*GraphState) bool

// GraphEdge is a directed dependency with an optional traversal condition.
type GraphEdge struct {
	From      string
	To        string
	Condition EdgeCondition
}

func (e GraphEdge) traversable(state *GraphState) bool {
	return e.Condition == nil || e.Condition(state)
}

// GraphConfig tunes the graph's continuation limits and revisit behavior.
type GraphConfig struct {
	// MaxNodeExecutions caps the total node executions across the run;
	// zero disables the cap.
	MaxNodeExecutions int
	ExecutionTimeout  time.Duration
	// NodeTimeout bounds each node invocation; zero disables it.
	NodeTimeout time.Duration
	// ResetOnRevisit allows cycles: a completed node selected again is
	// restored to its initial snapshot before re-execution.
	ResetOnRevisit bool
	QueueCapacity  int

	Hook BeforeNodeCall
}

// GraphBuilder accumulates nodes, edges, and entry points before validation.
type GraphBuilder struct {
	id          string
	cfg         GraphConfig
	nodes       map[string]*Node
	order       []string
	edges       []GraphEdge
	entryPoints []string
	errs        []error
}

// NewGraphBuilder starts a graph definition.
func NewGraphBuilder(id string, cfg GraphConfig) *GraphBuilder {
	if cfg.ExecutionTimeout <= 0 {
		cfg.ExecutionTimeout = defaultSwarmTimeout
	}
	return &GraphBuilder{id: id, cfg: cfg, nodes: make(map[string]*Node)}
}

// AddAgent adds an agent-backed node keyed by the agent's name.
func (b *GraphBuilder) AddAgent(a *agent.Agent) *GraphBuilder {
	return b.addNode(a.Name, NewAgentNode(a.Name, a))
}

// AddOrchestrator adds a nested-orchestrator node keyed by its id.
func (b *GraphBuilder) AddOrchestrator(o Orchestrator) *GraphBuilder {
	return b.addNode(o.ID(), NewNestedNode(o.ID(), o))
}

func (b *GraphBuilder) addNode(id string, node *Node) *GraphBuilder {
	if _, dup := b.nodes[id]; dup {
		b.errs = append(b.errs, fmt.Errorf("duplicate node %q", id))
		return b
	}
	b.nodes[id] = node
	b.order = append(b.order, id)
	return b
}

// AddEdge records a directed edge with an optional condition.
func (b *GraphBuilder) AddEdge(from, to string, condition EdgeCondition) *GraphBuilder {
	b.edges = append(b.edges, GraphEdge{From: from, To: to, Condition: condition})
	return b
}

// SetEntryPoints overrides the initial ready set.
func (b *GraphBuilder) SetEntryPoints(ids ...string) *GraphBuilder {
	b.entryPoints = ids
	return b
}

// Build validates the definition. It fails on dangling edges, unknown entry
// points, or an empty initial ready set.
func (b *GraphBuilder) Build() (*Graph, error) {
	if len(b.errs) > 0 {
		return nil, fmt.Errorf("graph %s: %w", b.id, errors.Join(b.errs...))
	}
	if len(b.nodes) == 0 {
		return nil, fmt.Errorf("graph %s: at least one node required", b.id)
	}
	for _, e := range b.edges {
		if _, ok := b.nodes[e.From]; !ok {
			return nil, fmt.Errorf("graph %s: edge from unknown node %q", b.id, e.From)
		}
		if _, ok := b.nodes[e.To]; !ok {
			return nil, fmt.Errorf("graph %s: edge to unknown node %q", b.id, e.To)
		}
	}
	for _, id := range b.entryPoints {
		if _, ok := b.nodes[id]; !ok {
			return nil, fmt.Errorf("graph %s: unknown entry point %q", b.id, id)
		}
	}

	g := &Graph{
		id:          b.id,
		cfg:         b.cfg,
		nodes:       b.nodes,
		order:       b.order,
		edges:       b.edges,
		incoming:    make(map[string][]GraphEdge),
		entryPoints: b.entryPoints,
		completed:   make(map[string]struct{}),
		status:      models.NodeStatusPending,
		interrupts:  NewInterruptState(),
	}
	for _, e := range b.edges {
		g.incoming[e.To] = append(g.incoming[e.To], e)
	}
	if len(g.initialReadySet()) == 0 {
		return nil, fmt.Errorf("graph %s: no entry points and no dependency-free nodes", b.id)
	}
	return g, nil
}

// Graph is the dependency-driven orchestrator: readiness is batch-triggered,
// batches run concurrently, and their events fan in through a bounded queue.
type Graph struct {
	id          string
	cfg         GraphConfig
	nodes       map[string]*Node
	order       []string
	edges       []GraphEdge
	incoming    map[string][]GraphEdge
	entryPoints []string

	state          *GraphState
	completed      map[string]struct{}
	failedNodes    []string
	executionCount int
	status         Status
	elapsedMs      int64
	resumeNodes    []string

	interrupts *InterruptState
}

// ID returns the graph's identifier.
func (g *Graph) ID() string { return g.id }

// Interrupts returns the graph's interrupt state.
func (g *Graph) Interrupts() *InterruptState { return g.interrupts }

// Status returns the graph's current status.
func (g *Graph) Status() Status { return g.status }

// State returns the graph state; callers must treat it as read-only.
func (g *Graph) State() *GraphState { return g.state }

// initialReadySet is the configured entry points, or every node without
// incoming edges when none are configured.
func (g *Graph) initialReadySet() []string {
	if len(g.entryPoints) > 0 {
		out := make([]string, len(g.entryPoints))
		copy(out, g.entryPoints)
		return out
	}
	var out []string
	for _, id := range g.order {
		if len(g.incoming[id]) == 0 {
			out = append(out, id)
		}
	}
	return out
}

// Stream drives the graph to a terminal. While the interrupt state is
// activated, task is treated as a resume payload.
func (g *Graph) Stream(ctx context.Context, task Task) <-chan StreamItem {
	out := make(chan StreamItem, 16)
	go func() {
		defer close(out)
		g.run(ctx, task, out)
	}()
	return out
}

func (g *Graph) run(ctx context.Context, task Task, out chan<- StreamItem) {
	started := time.Now()

	var ready []string
	resuming := g.interrupts.Activated() && task.IsResume()
	if resuming {
		g.interrupts.SetResume(task.Responses)
		ready = g.resumeNodes
		for _, id := range ready {
			// Batch-mates that completed before the interrupt re-execute.
			delete(g.completed, id)
			g.removeCompleted(id)
		}
	} else {
		g.state = &GraphState{
			Task:    task,
			Results: make(map[string]*models.NodeResult),
		}
		ready = g.initialReadySet()
	}
	g.status = models.NodeStatusExecuting

	var prevBatch []string
	for len(ready) > 0 {
		if err := g.checkLimits(started, len(ready)); err != nil {
			g.status = models.NodeStatusFailed
			g.finishTime(started)
			g.send(ctx, out, StreamItem{Err: err})
			return
		}

		if len(prevBatch) > 0 {
			if !g.send(ctx, out, StreamItem{Event: &events.HandoffEvent{
				FromNodeIDs: prevBatch,
				ToNodeIDs:   ready,
			}}) {
				return
			}
		}

		if done := g.invokeHooks(ctx, ready, out, started); done {
			return
		}

		for _, id := range ready {
			node := g.nodes[id]
			if _, wasCompleted := g.completed[id]; wasCompleted {
				// Only reachable with ResetOnRevisit.
				node.Reset()
				delete(g.completed, id)
				g.removeCompleted(id)
			}
		}

		batchErr, interrupted, ok := g.executeBatch(ctx, ready, out, resuming)
		if !ok {
			return
		}
		if len(interrupted) > 0 {
			g.status = models.NodeStatusInterrupted
			g.resumeNodes = ready
			g.finishTime(started)
			g.emitResult(ctx, out)
			return
		}
		if resuming {
			g.interrupts.Deactivate()
			resuming = false
		}
		if batchErr != nil {
			g.status = models.NodeStatusFailed
			g.finishTime(started)
			g.send(ctx, out, StreamItem{Err: batchErr})
			return
		}

		prevBatch = ready
		ready = g.newlyReady(prevBatch)
	}

	g.status = models.NodeStatusCompleted
	g.resumeNodes = nil
	g.finishTime(started)
	g.emitResult(ctx, out)
}

// executeBatch runs all ready nodes concurrently and merges their events.
// It returns the first node failure, the ids that interrupted, and whether
// the consumer is still attached.
func (g *Graph) executeBatch(ctx context.Context, batch []string, out chan<- StreamItem, resuming bool) (error, []string, bool) {
	queue := newEventQueue(g.cfg.QueueCapacity)
	defer queue.shutdown()

	batchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	launched := 0
	for _, id := range batch {
		node := g.nodes[id]

		input := g.buildNodeInput(node, resuming)
		if !g.send(ctx, out, StreamItem{Event: &events.NodeStartEvent{NodeID: node.ID, NodeType: node.NodeType()}}) {
			return nil, nil, false
		}
		if !g.send(ctx, out, StreamItem{Event: &events.NodeInputEvent{NodeID: node.ID, Input: inputSummary(input)}}) {
			return nil, nil, false
		}

		g.executionCount++
		launched++
		wg.Add(1)
		go func(node *Node, input agent.Input) {
			defer wg.Done()
			g.runNode(batchCtx, node, input, queue)
		}(node, input)
	}

	var firstErr error
	interruptedByID := make(map[string]*models.NodeResult)
	pending := launched
	for pending > 0 {
		item, ok := queue.poll(ctx, mergerPollInterval)
		if !ok {
			if ctx.Err() != nil {
				cancel()
				wg.Wait()
				return nil, nil, false
			}
			continue
		}
		switch {
		case item.sentinel:
			pending--
			g.applyNodeOutcome(ctx, out, item.nodeID, item.result, interruptedByID)
		case item.err != nil:
			if firstErr == nil {
				firstErr = item.err
			}
		default:
			if !g.send(ctx, out, StreamItem{Event: &events.NodeStreamEvent{NodeID: item.nodeID, Event: item.event}}) {
				cancel()
				wg.Wait()
				return nil, nil, false
			}
		}
	}
	wg.Wait()

	var interrupted []string
	if len(interruptedByID) > 0 {
		var raised []models.Interrupt
		for id, result := range interruptedByID {
			interrupted = append(interrupted, id)
			raised = append(raised, result.Interrupts...)
			g.interrupts.SetNodeContext(id, g.nodes[id].InterruptContext(false))
		}
		sort.Strings(interrupted)
		g.interrupts.Activate(raised)
	}
	return firstErr, interrupted, true
}

// runNode executes one node under the optional per-node timer and reports
// its events and sentinel through the queue.
func (g *Graph) runNode(ctx context.Context, node *Node, input agent.Input, queue *eventQueue) {
	nodeCtx := ctx
	cancel := context.CancelFunc(func() {})
	if g.cfg.NodeTimeout > 0 {
		nodeCtx, cancel = context.WithTimeout(ctx, g.cfg.NodeTimeout)
	}
	defer cancel()

	result := node.execute(nodeCtx, input, func(evt any) bool {
		return queue.put(ctx, queueItem{nodeID: node.ID, event: evt})
	})
	if errors.Is(nodeCtx.Err(), context.DeadlineExceeded) && result.Status == models.NodeStatusFailed {
		result.Error = fmt.Sprintf("node %s timed out after %s", node.ID, g.cfg.NodeTimeout)
	}

	// The failure goes in ahead of the sentinel so the merger cannot close
	// the batch without seeing it.
	if result.Status == models.NodeStatusFailed {
		queue.put(ctx, queueItem{nodeID: node.ID, err: fmt.Errorf("node %s failed: %s", node.ID, result.Error)})
	}
	queue.put(ctx, queueItem{sentinel: true, nodeID: node.ID, result: result})
}

// applyNodeOutcome emits the node's closing event and folds its result into
// the graph state.
func (g *Graph) applyNodeOutcome(
	ctx context.Context,
	out chan<- StreamItem,
	nodeID string,
	result *models.NodeResult,
	interruptedByID map[string]*models.NodeResult,
) {
	if result == nil {
		return
	}
	g.state.Results[nodeID] = result
	switch result.Status {
	case models.NodeStatusInterrupted:
		interruptedByID[nodeID] = result
		g.send(ctx, out, StreamItem{Event: &events.NodeInterruptEvent{NodeID: nodeID, Interrupts: result.Interrupts}})
	case models.NodeStatusCompleted:
		g.completed[nodeID] = struct{}{}
		g.state.CompletedNodes = append(g.state.CompletedNodes, nodeID)
		g.state.ExecutionOrder = append(g.state.ExecutionOrder, nodeID)
		g.send(ctx, out, StreamItem{Event: &events.NodeStopEvent{NodeID: nodeID, NodeResult: result}})
	default:
		g.failedNodes = append(g.failedNodes, nodeID)
		g.send(ctx, out, StreamItem{Event: &events.NodeStopEvent{NodeID: nodeID, NodeResult: result}})
	}
}

// invokeHooks runs the beforeNodeCall hook over the batch. Any interrupt
// pauses the whole batch before it starts; any cancel fails the run.
func (g *Graph) invokeHooks(ctx context.Context, batch []string, out chan<- StreamItem, started time.Time) bool {
	if g.cfg.Hook == nil {
		return false
	}
	var raised []models.Interrupt
	raisedByNode := make(map[string][]models.Interrupt)
	for _, id := range batch {
		decision, err := g.cfg.Hook(ctx, id)
		if err != nil {
			g.status = models.NodeStatusFailed
			g.finishTime(started)
			g.send(ctx, out, StreamItem{Err: fmt.Errorf("node %s hook: %w", id, err)})
			return true
		}
		if decision == nil {
			continue
		}
		if decision.Cancel {
			g.send(ctx, out, StreamItem{Event: &events.NodeCancelEvent{NodeID: id, Message: decision.CancelMessage}})
			g.status = models.NodeStatusFailed
			g.finishTime(started)
			g.send(ctx, out, StreamItem{Err: fmt.Errorf("node %s cancelled: %s", id, decision.CancelMessage)})
			return true
		}
		if len(decision.Interrupts) > 0 {
			nodeRaised := withNodeID(decision.Interrupts, id)
			raised = append(raised, nodeRaised...)
			raisedByNode[id] = nodeRaised
		}
	}
	if len(raised) == 0 {
		return false
	}
	for id, nodeRaised := range raisedByNode {
		g.send(ctx, out, StreamItem{Event: &events.NodeInterruptEvent{NodeID: id, Interrupts: nodeRaised}})
		g.interrupts.SetNodeContext(id, g.nodes[id].InterruptContext(true))
	}
	g.interrupts.Activate(raised)
	g.status = models.NodeStatusInterrupted
	g.resumeNodes = batch
	g.finishTime(started)
	g.emitResult(ctx, out)
	return true
}

// buildNodeInput hands the original task to dependency-free nodes and a
// synthesized summary of dependency results to the rest.
func (g *Graph) buildNodeInput(node *Node, resuming bool) agent.Input {
	if resuming && g.interrupts.Activated() {
		if nodeCtx, ok := g.interrupts.NodeContext(node.ID); ok && nodeCtx.Activated && !nodeCtx.RaisedByHook {
			node.RestoreForResume(nodeCtx)
			return agent.Input{Responses: g.interrupts.ResponsesFor(node.ID)}
		}
	}

	var deps []string
	for _, e := range g.incoming[node.ID] {
		if _, ok := g.state.Results[e.From]; ok && e.traversable(g.state) {
			deps = append(deps, e.From)
		}
	}
	if len(deps) == 0 {
		blocks := g.state.Task.Blocks
		if len(blocks) == 0 {
			blocks = []models.ContentBlock{models.TextBlock(g.state.Task.PlainText())}
		}
		return agent.Input{Blocks: blocks}
	}

	sort.Strings(deps)
	var b strings.Builder
	fmt.Fprintf(&b, "Original Task: %s\n\n", g.state.Task.PlainText())
	b.WriteString("Results from previous nodes:\n")
	for _, dep := range deps {
		result := g.state.Results[dep]
		text := ""
		for _, block := range result.Content {
			if block.Text != "" {
				text = block.Text
				break
			}
		}
		fmt.Fprintf(&b, "\n[%s]:\n%s\n", dep, text)
	}
	return agent.Input{Blocks: []models.ContentBlock{models.TextBlock(b.String())}}
}

// newlyReady applies the batch-triggered readiness rule after batch B.
func (g *Graph) newlyReady(batch []string) []string {
	inBatch := make(map[string]struct{}, len(batch))
	for _, id := range batch {
		inBatch[id] = struct{}{}
	}

	var out []string
	for _, id := range g.order {
		edges := g.incoming[id]
		if len(edges) == 0 {
			continue
		}
		if _, done := g.completed[id]; done && !g.cfg.ResetOnRevisit {
			continue
		}
		triggered := false
		eligible := false
		satisfied := true
		for _, e := range edges {
			if !e.traversable(g.state) {
				continue
			}
			eligible = true
			if _, ok := g.completed[e.From]; !ok {
				satisfied = false
				break
			}
			if _, ok := inBatch[e.From]; ok {
				triggered = true
			}
		}
		if eligible && satisfied && triggered {
			out = append(out, id)
		}
	}
	return out
}

func (g *Graph) checkLimits(started time.Time, batchSize int) error {
	if g.cfg.MaxNodeExecutions > 0 && g.executionCount+batchSize > g.cfg.MaxNodeExecutions {
		return fmt.Errorf("graph %s: max node executions (%d) exceeded", g.id, g.cfg.MaxNodeExecutions)
	}
	elapsed := time.Duration(g.elapsedMs)*time.Millisecond + time.Since(started)
	if elapsed > g.cfg.ExecutionTimeout {
		return fmt.Errorf("graph %s: execution timeout (%s) exceeded", g.id, g.cfg.ExecutionTimeout)
	}
	return nil
}

// removeCompleted drops one id from the state's completed list on revisit.
func (g *Graph) removeCompleted(id string) {
	for i, existing := range g.state.CompletedNodes {
		if existing == id {
			g.state.CompletedNodes = append(g.state.CompletedNodes[:i], g.state.CompletedNodes[i+1:]...)
			return
		}
	}
}

func (g *Graph) emitResult(ctx context.Context, out chan<- StreamItem) {
	result := g.buildResult()
	g.send(ctx, out, StreamItem{Event: &events.ResultEvent{Result: result}})
	g.send(ctx, out, StreamItem{Result: result})
}

func (g *Graph) buildResult() *models.OrchestrationResult {
	result := &models.OrchestrationResult{
		Status:          runStatusFor(g.status),
		Results:         make(map[string]*models.NodeResult, len(g.state.Results)),
		ExecutionCount:  g.executionCount,
		ExecutionTimeMs: g.elapsedMs,
	}
	result.ExecutionOrder = append(result.ExecutionOrder, g.state.ExecutionOrder...)
	for id, nr := range g.state.Results {
		result.Results[id] = nr
		result.AccumulatedUsage.Add(nr.AccumulatedUsage)
	}
	if g.status == models.NodeStatusInterrupted {
		result.Interrupts = g.interrupts.OpenInterrupts()
	}
	slog.Debug("Graph finished",
		"graph", g.id, "status", g.status, "executions", g.executionCount)
	return result
}

func (g *Graph) finishTime(started time.Time) {
	g.elapsedMs += time.Since(started).Milliseconds()
}

func (g *Graph) send(ctx context.Context, out chan<- StreamItem, item StreamItem) bool {
	select {
	case out <- item:
		return true
	case <-ctx.Done():
		return false
	}
}
