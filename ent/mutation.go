// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agentfleet/agentfleet/ent/predicate"
	"github.com/agentfleet/agentfleet/ent/runevent"
	"github.com/agentfleet/agentfleet/ent/runnodemetric"
	"github.com/agentfleet/agentfleet/ent/runsummary"
	"github.com/agentfleet/agentfleet/ent/runtelemetry"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeRunEvent      = "RunEvent"
	TypeRunNodeMetric = "RunNodeMetric"
	TypeRunSummary    = "RunSummary"
	TypeRunTelemetry  = "RunTelemetry"
)

// RunEventMutation represents an operation that mutates the RunEvent nodes in the graph.
type RunEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int
	addsequence   *int
	event_type    *string
	node_id       *string
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	run           *string
	clearedrun    bool
	done          bool
	oldValue      func(context.Context) (*RunEvent, error)
	predicates    []predicate.RunEvent
}

var _ ent.Mutation = (*RunEventMutation)(nil)

// runeventOption allows management of the mutation configuration using functional options.
type runeventOption func(*RunEventMutation)

// newRunEventMutation creates new mutation for the RunEvent entity.
func newRunEventMutation(c config, op Op, opts ...runeventOption) *RunEventMutation {
	m := &RunEventMutation{
		config:        c,
		op:            op,
		typ:           TypeRunEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRunEventID sets the ID field of the mutation.
func withRunEventID(id int) runeventOption {
	return func(m *RunEventMutation) {
		var (
			err   error
			once  sync.Once
			value *RunEvent
		)
		m.oldValue = func(ctx context.Context) (*RunEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RunEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRunEvent sets the old RunEvent of the mutation.
func withRunEvent(node *RunEvent) runeventOption {
	return func(m *RunEventMutation) {
		m.oldValue = func(context.Context) (*RunEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RunEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RunEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RunEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RunEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RunEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *RunEventMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *RunEventMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *RunEventMutation) ResetRunID() {
	m.run = nil
}

// SetSequence sets the "sequence" field.
func (m *RunEventMutation) SetSequence(i int) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *RunEventMutation) Sequence() (r int, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldSequence(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *RunEventMutation) AddSequence(i int) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *RunEventMutation) AddedSequence() (r int, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *RunEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetEventType sets the "event_type" field.
func (m *RunEventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *RunEventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *RunEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetNodeID sets the "node_id" field.
func (m *RunEventMutation) SetNodeID(s string) {
	m.node_id = &s
}

// NodeID returns the value of the "node_id" field in the mutation.
func (m *RunEventMutation) NodeID() (r string, exists bool) {
	v := m.node_id
	if v == nil {
		return
	}
	return *v, true
}

// OldNodeID returns the old "node_id" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldNodeID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNodeID: %w", err)
	}
	return oldValue.NodeID, nil
}

// ClearNodeID clears the value of the "node_id" field.
func (m *RunEventMutation) ClearNodeID() {
	m.node_id = nil
	m.clearedFields[runevent.FieldNodeID] = struct{}{}
}

// NodeIDCleared returns if the "node_id" field was cleared in this mutation.
func (m *RunEventMutation) NodeIDCleared() bool {
	_, ok := m.clearedFields[runevent.FieldNodeID]
	return ok
}

// ResetNodeID resets all changes to the "node_id" field.
func (m *RunEventMutation) ResetNodeID() {
	m.node_id = nil
	delete(m.clearedFields, runevent.FieldNodeID)
}

// SetPayload sets the "payload" field.
func (m *RunEventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *RunEventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *RunEventMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[runevent.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *RunEventMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[runevent.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *RunEventMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, runevent.FieldPayload)
}

// SetCreatedAt sets the "created_at" field.
func (m *RunEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RunEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RunEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRun clears the "run" edge to the RunSummary entity.
func (m *RunEventMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[runevent.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the RunSummary entity was cleared.
func (m *RunEventMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *RunEventMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *RunEventMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the RunEventMutation builder.
func (m *RunEventMutation) Where(ps ...predicate.RunEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RunEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RunEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RunEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RunEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RunEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RunEvent).
func (m *RunEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RunEventMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.run != nil {
		fields = append(fields, runevent.FieldRunID)
	}
	if m.sequence != nil {
		fields = append(fields, runevent.FieldSequence)
	}
	if m.event_type != nil {
		fields = append(fields, runevent.FieldEventType)
	}
	if m.node_id != nil {
		fields = append(fields, runevent.FieldNodeID)
	}
	if m.payload != nil {
		fields = append(fields, runevent.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, runevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RunEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case runevent.FieldRunID:
		return m.RunID()
	case runevent.FieldSequence:
		return m.Sequence()
	case runevent.FieldEventType:
		return m.EventType()
	case runevent.FieldNodeID:
		return m.NodeID()
	case runevent.FieldPayload:
		return m.Payload()
	case runevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RunEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case runevent.FieldRunID:
		return m.OldRunID(ctx)
	case runevent.FieldSequence:
		return m.OldSequence(ctx)
	case runevent.FieldEventType:
		return m.OldEventType(ctx)
	case runevent.FieldNodeID:
		return m.OldNodeID(ctx)
	case runevent.FieldPayload:
		return m.OldPayload(ctx)
	case runevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RunEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case runevent.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case runevent.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case runevent.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case runevent.FieldNodeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNodeID(v)
		return nil
	case runevent.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case runevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RunEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RunEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, runevent.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RunEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case runevent.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case runevent.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown RunEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RunEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(runevent.FieldNodeID) {
		fields = append(fields, runevent.FieldNodeID)
	}
	if m.FieldCleared(runevent.FieldPayload) {
		fields = append(fields, runevent.FieldPayload)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RunEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RunEventMutation) ClearField(name string) error {
	switch name {
	case runevent.FieldNodeID:
		m.ClearNodeID()
		return nil
	case runevent.FieldPayload:
		m.ClearPayload()
		return nil
	}
	return fmt.Errorf("unknown RunEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RunEventMutation) ResetField(name string) error {
	switch name {
	case runevent.FieldRunID:
		m.ResetRunID()
		return nil
	case runevent.FieldSequence:
		m.ResetSequence()
		return nil
	case runevent.FieldEventType:
		m.ResetEventType()
		return nil
	case runevent.FieldNodeID:
		m.ResetNodeID()
		return nil
	case runevent.FieldPayload:
		m.ResetPayload()
		return nil
	case runevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown RunEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RunEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, runevent.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RunEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case runevent.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RunEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RunEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RunEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, runevent.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RunEventMutation) EdgeCleared(name string) bool {
	switch name {
	case runevent.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RunEventMutation) ClearEdge(name string) error {
	switch name {
	case runevent.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown RunEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RunEventMutation) ResetEdge(name string) error {
	switch name {
	case runevent.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown RunEvent edge %s", name)
}

// RunNodeMetricMutation represents an operation that mutates the RunNodeMetric nodes in the graph.
type RunNodeMetricMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	node_id               *string
	status                *string
	input_tokens          *int
	addinput_tokens       *int
	output_tokens         *int
	addoutput_tokens      *int
	total_tokens          *int
	addtotal_tokens       *int
	execution_count       *int
	addexecution_count    *int
	stream_event_count    *int
	addstream_event_count *int
	capture_capped        *bool
	duration_ms           *int64
	addduration_ms        *int64
	created_at            *time.Time
	clearedFields         map[string]struct{}
	run                   *string
	clearedrun            bool
	done                  bool
	oldValue              func(context.Context) (*RunNodeMetric, error)
	predicates            []predicate.RunNodeMetric
}

var _ ent.Mutation = (*RunNodeMetricMutation)(nil)

// runnodemetricOption allows management of the mutation configuration using functional options.
type runnodemetricOption func(*RunNodeMetricMutation)

// newRunNodeMetricMutation creates new mutation for the RunNodeMetric entity.
func newRunNodeMetricMutation(c config, op Op, opts ...runnodemetricOption) *RunNodeMetricMutation {
	m := &RunNodeMetricMutation{
		config:        c,
		op:            op,
		typ:           TypeRunNodeMetric,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRunNodeMetricID sets the ID field of the mutation.
func withRunNodeMetricID(id int) runnodemetricOption {
	return func(m *RunNodeMetricMutation) {
		var (
			err   error
			once  sync.Once
			value *RunNodeMetric
		)
		m.oldValue = func(ctx context.Context) (*RunNodeMetric, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RunNodeMetric.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRunNodeMetric sets the old RunNodeMetric of the mutation.
func withRunNodeMetric(node *RunNodeMetric) runnodemetricOption {
	return func(m *RunNodeMetricMutation) {
		m.oldValue = func(context.Context) (*RunNodeMetric, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RunNodeMetricMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RunNodeMetricMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RunNodeMetricMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RunNodeMetricMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RunNodeMetric.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *RunNodeMetricMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *RunNodeMetricMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the RunNodeMetric entity.
// If the RunNodeMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunNodeMetricMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *RunNodeMetricMutation) ResetRunID() {
	m.run = nil
}

// SetNodeID sets the "node_id" field.
func (m *RunNodeMetricMutation) SetNodeID(s string) {
	m.node_id = &s
}

// NodeID returns the value of the "node_id" field in the mutation.
func (m *RunNodeMetricMutation) NodeID() (r string, exists bool) {
	v := m.node_id
	if v == nil {
		return
	}
	return *v, true
}

// OldNodeID returns the old "node_id" field's value of the RunNodeMetric entity.
// If the RunNodeMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunNodeMetricMutation) OldNodeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNodeID: %w", err)
	}
	return oldValue.NodeID, nil
}

// ResetNodeID resets all changes to the "node_id" field.
func (m *RunNodeMetricMutation) ResetNodeID() {
	m.node_id = nil
}

// SetStatus sets the "status" field.
func (m *RunNodeMetricMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *RunNodeMetricMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the RunNodeMetric entity.
// If the RunNodeMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunNodeMetricMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ClearStatus clears the value of the "status" field.
func (m *RunNodeMetricMutation) ClearStatus() {
	m.status = nil
	m.clearedFields[runnodemetric.FieldStatus] = struct{}{}
}

// StatusCleared returns if the "status" field was cleared in this mutation.
func (m *RunNodeMetricMutation) StatusCleared() bool {
	_, ok := m.clearedFields[runnodemetric.FieldStatus]
	return ok
}

// ResetStatus resets all changes to the "status" field.
func (m *RunNodeMetricMutation) ResetStatus() {
	m.status = nil
	delete(m.clearedFields, runnodemetric.FieldStatus)
}

// SetInputTokens sets the "input_tokens" field.
func (m *RunNodeMetricMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *RunNodeMetricMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the RunNodeMetric entity.
// If the RunNodeMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunNodeMetricMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *RunNodeMetricMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *RunNodeMetricMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *RunNodeMetricMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *RunNodeMetricMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *RunNodeMetricMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the RunNodeMetric entity.
// If the RunNodeMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunNodeMetricMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *RunNodeMetricMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *RunNodeMetricMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *RunNodeMetricMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetTotalTokens sets the "total_tokens" field.
func (m *RunNodeMetricMutation) SetTotalTokens(i int) {
	m.total_tokens = &i
	m.addtotal_tokens = nil
}

// TotalTokens returns the value of the "total_tokens" field in the mutation.
func (m *RunNodeMetricMutation) TotalTokens() (r int, exists bool) {
	v := m.total_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTokens returns the old "total_tokens" field's value of the RunNodeMetric entity.
// If the RunNodeMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunNodeMetricMutation) OldTotalTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTokens: %w", err)
	}
	return oldValue.TotalTokens, nil
}

// AddTotalTokens adds i to the "total_tokens" field.
func (m *RunNodeMetricMutation) AddTotalTokens(i int) {
	if m.addtotal_tokens != nil {
		*m.addtotal_tokens += i
	} else {
		m.addtotal_tokens = &i
	}
}

// AddedTotalTokens returns the value that was added to the "total_tokens" field in this mutation.
func (m *RunNodeMetricMutation) AddedTotalTokens() (r int, exists bool) {
	v := m.addtotal_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTokens resets all changes to the "total_tokens" field.
func (m *RunNodeMetricMutation) ResetTotalTokens() {
	m.total_tokens = nil
	m.addtotal_tokens = nil
}

// SetExecutionCount sets the "execution_count" field.
func (m *RunNodeMetricMutation) SetExecutionCount(i int) {
	m.execution_count = &i
	m.addexecution_count = nil
}

// ExecutionCount returns the value of the "execution_count" field in the mutation.
func (m *RunNodeMetricMutation) ExecutionCount() (r int, exists bool) {
	v := m.execution_count
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionCount returns the old "execution_count" field's value of the RunNodeMetric entity.
// If the RunNodeMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunNodeMetricMutation) OldExecutionCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionCount: %w", err)
	}
	return oldValue.ExecutionCount, nil
}

// AddExecutionCount adds i to the "execution_count" field.
func (m *RunNodeMetricMutation) AddExecutionCount(i int) {
	if m.addexecution_count != nil {
		*m.addexecution_count += i
	} else {
		m.addexecution_count = &i
	}
}

// AddedExecutionCount returns the value that was added to the "execution_count" field in this mutation.
func (m *RunNodeMetricMutation) AddedExecutionCount() (r int, exists bool) {
	v := m.addexecution_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetExecutionCount resets all changes to the "execution_count" field.
func (m *RunNodeMetricMutation) ResetExecutionCount() {
	m.execution_count = nil
	m.addexecution_count = nil
}

// SetStreamEventCount sets the "stream_event_count" field.
func (m *RunNodeMetricMutation) SetStreamEventCount(i int) {
	m.stream_event_count = &i
	m.addstream_event_count = nil
}

// StreamEventCount returns the value of the "stream_event_count" field in the mutation.
func (m *RunNodeMetricMutation) StreamEventCount() (r int, exists bool) {
	v := m.stream_event_count
	if v == nil {
		return
	}
	return *v, true
}

// OldStreamEventCount returns the old "stream_event_count" field's value of the RunNodeMetric entity.
// If the RunNodeMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunNodeMetricMutation) OldStreamEventCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreamEventCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreamEventCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreamEventCount: %w", err)
	}
	return oldValue.StreamEventCount, nil
}

// AddStreamEventCount adds i to the "stream_event_count" field.
func (m *RunNodeMetricMutation) AddStreamEventCount(i int) {
	if m.addstream_event_count != nil {
		*m.addstream_event_count += i
	} else {
		m.addstream_event_count = &i
	}
}

// AddedStreamEventCount returns the value that was added to the "stream_event_count" field in this mutation.
func (m *RunNodeMetricMutation) AddedStreamEventCount() (r int, exists bool) {
	v := m.addstream_event_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetStreamEventCount resets all changes to the "stream_event_count" field.
func (m *RunNodeMetricMutation) ResetStreamEventCount() {
	m.stream_event_count = nil
	m.addstream_event_count = nil
}

// SetCaptureCapped sets the "capture_capped" field.
func (m *RunNodeMetricMutation) SetCaptureCapped(b bool) {
	m.capture_capped = &b
}

// CaptureCapped returns the value of the "capture_capped" field in the mutation.
func (m *RunNodeMetricMutation) CaptureCapped() (r bool, exists bool) {
	v := m.capture_capped
	if v == nil {
		return
	}
	return *v, true
}

// OldCaptureCapped returns the old "capture_capped" field's value of the RunNodeMetric entity.
// If the RunNodeMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunNodeMetricMutation) OldCaptureCapped(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaptureCapped is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaptureCapped requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaptureCapped: %w", err)
	}
	return oldValue.CaptureCapped, nil
}

// ResetCaptureCapped resets all changes to the "capture_capped" field.
func (m *RunNodeMetricMutation) ResetCaptureCapped() {
	m.capture_capped = nil
}

// SetDurationMs sets the "duration_ms" field.
func (m *RunNodeMetricMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *RunNodeMetricMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the RunNodeMetric entity.
// If the RunNodeMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunNodeMetricMutation) OldDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *RunNodeMetricMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *RunNodeMetricMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *RunNodeMetricMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RunNodeMetricMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RunNodeMetricMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RunNodeMetric entity.
// If the RunNodeMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunNodeMetricMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RunNodeMetricMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRun clears the "run" edge to the RunSummary entity.
func (m *RunNodeMetricMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[runnodemetric.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the RunSummary entity was cleared.
func (m *RunNodeMetricMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *RunNodeMetricMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *RunNodeMetricMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the RunNodeMetricMutation builder.
func (m *RunNodeMetricMutation) Where(ps ...predicate.RunNodeMetric) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RunNodeMetricMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RunNodeMetricMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RunNodeMetric, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RunNodeMetricMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RunNodeMetricMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RunNodeMetric).
func (m *RunNodeMetricMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RunNodeMetricMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.run != nil {
		fields = append(fields, runnodemetric.FieldRunID)
	}
	if m.node_id != nil {
		fields = append(fields, runnodemetric.FieldNodeID)
	}
	if m.status != nil {
		fields = append(fields, runnodemetric.FieldStatus)
	}
	if m.input_tokens != nil {
		fields = append(fields, runnodemetric.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, runnodemetric.FieldOutputTokens)
	}
	if m.total_tokens != nil {
		fields = append(fields, runnodemetric.FieldTotalTokens)
	}
	if m.execution_count != nil {
		fields = append(fields, runnodemetric.FieldExecutionCount)
	}
	if m.stream_event_count != nil {
		fields = append(fields, runnodemetric.FieldStreamEventCount)
	}
	if m.capture_capped != nil {
		fields = append(fields, runnodemetric.FieldCaptureCapped)
	}
	if m.duration_ms != nil {
		fields = append(fields, runnodemetric.FieldDurationMs)
	}
	if m.created_at != nil {
		fields = append(fields, runnodemetric.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RunNodeMetricMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case runnodemetric.FieldRunID:
		return m.RunID()
	case runnodemetric.FieldNodeID:
		return m.NodeID()
	case runnodemetric.FieldStatus:
		return m.Status()
	case runnodemetric.FieldInputTokens:
		return m.InputTokens()
	case runnodemetric.FieldOutputTokens:
		return m.OutputTokens()
	case runnodemetric.FieldTotalTokens:
		return m.TotalTokens()
	case runnodemetric.FieldExecutionCount:
		return m.ExecutionCount()
	case runnodemetric.FieldStreamEventCount:
		return m.StreamEventCount()
	case runnodemetric.FieldCaptureCapped:
		return m.CaptureCapped()
	case runnodemetric.FieldDurationMs:
		return m.DurationMs()
	case runnodemetric.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RunNodeMetricMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case runnodemetric.FieldRunID:
		return m.OldRunID(ctx)
	case runnodemetric.FieldNodeID:
		return m.OldNodeID(ctx)
	case runnodemetric.FieldStatus:
		return m.OldStatus(ctx)
	case runnodemetric.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case runnodemetric.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case runnodemetric.FieldTotalTokens:
		return m.OldTotalTokens(ctx)
	case runnodemetric.FieldExecutionCount:
		return m.OldExecutionCount(ctx)
	case runnodemetric.FieldStreamEventCount:
		return m.OldStreamEventCount(ctx)
	case runnodemetric.FieldCaptureCapped:
		return m.OldCaptureCapped(ctx)
	case runnodemetric.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case runnodemetric.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RunNodeMetric field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunNodeMetricMutation) SetField(name string, value ent.Value) error {
	switch name {
	case runnodemetric.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case runnodemetric.FieldNodeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNodeID(v)
		return nil
	case runnodemetric.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case runnodemetric.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case runnodemetric.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case runnodemetric.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTokens(v)
		return nil
	case runnodemetric.FieldExecutionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionCount(v)
		return nil
	case runnodemetric.FieldStreamEventCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreamEventCount(v)
		return nil
	case runnodemetric.FieldCaptureCapped:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaptureCapped(v)
		return nil
	case runnodemetric.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case runnodemetric.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RunNodeMetric field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RunNodeMetricMutation) AddedFields() []string {
	var fields []string
	if m.addinput_tokens != nil {
		fields = append(fields, runnodemetric.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, runnodemetric.FieldOutputTokens)
	}
	if m.addtotal_tokens != nil {
		fields = append(fields, runnodemetric.FieldTotalTokens)
	}
	if m.addexecution_count != nil {
		fields = append(fields, runnodemetric.FieldExecutionCount)
	}
	if m.addstream_event_count != nil {
		fields = append(fields, runnodemetric.FieldStreamEventCount)
	}
	if m.addduration_ms != nil {
		fields = append(fields, runnodemetric.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RunNodeMetricMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case runnodemetric.FieldInputTokens:
		return m.AddedInputTokens()
	case runnodemetric.FieldOutputTokens:
		return m.AddedOutputTokens()
	case runnodemetric.FieldTotalTokens:
		return m.AddedTotalTokens()
	case runnodemetric.FieldExecutionCount:
		return m.AddedExecutionCount()
	case runnodemetric.FieldStreamEventCount:
		return m.AddedStreamEventCount()
	case runnodemetric.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunNodeMetricMutation) AddField(name string, value ent.Value) error {
	switch name {
	case runnodemetric.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case runnodemetric.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case runnodemetric.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTokens(v)
		return nil
	case runnodemetric.FieldExecutionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExecutionCount(v)
		return nil
	case runnodemetric.FieldStreamEventCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStreamEventCount(v)
		return nil
	case runnodemetric.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown RunNodeMetric numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RunNodeMetricMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(runnodemetric.FieldStatus) {
		fields = append(fields, runnodemetric.FieldStatus)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RunNodeMetricMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RunNodeMetricMutation) ClearField(name string) error {
	switch name {
	case runnodemetric.FieldStatus:
		m.ClearStatus()
		return nil
	}
	return fmt.Errorf("unknown RunNodeMetric nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RunNodeMetricMutation) ResetField(name string) error {
	switch name {
	case runnodemetric.FieldRunID:
		m.ResetRunID()
		return nil
	case runnodemetric.FieldNodeID:
		m.ResetNodeID()
		return nil
	case runnodemetric.FieldStatus:
		m.ResetStatus()
		return nil
	case runnodemetric.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case runnodemetric.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case runnodemetric.FieldTotalTokens:
		m.ResetTotalTokens()
		return nil
	case runnodemetric.FieldExecutionCount:
		m.ResetExecutionCount()
		return nil
	case runnodemetric.FieldStreamEventCount:
		m.ResetStreamEventCount()
		return nil
	case runnodemetric.FieldCaptureCapped:
		m.ResetCaptureCapped()
		return nil
	case runnodemetric.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case runnodemetric.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown RunNodeMetric field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RunNodeMetricMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, runnodemetric.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RunNodeMetricMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case runnodemetric.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RunNodeMetricMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RunNodeMetricMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RunNodeMetricMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, runnodemetric.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RunNodeMetricMutation) EdgeCleared(name string) bool {
	switch name {
	case runnodemetric.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RunNodeMetricMutation) ClearEdge(name string) error {
	switch name {
	case runnodemetric.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown RunNodeMetric unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RunNodeMetricMutation) ResetEdge(name string) error {
	switch name {
	case runnodemetric.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown RunNodeMetric edge %s", name)
}

// RunSummaryMutation represents an operation that mutates the RunSummary nodes in the graph.
type RunSummaryMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	mode                     *runsummary.Mode
	status                   *runsummary.Status
	prompt                   *string
	session_id               *string
	preset_key               *string
	structured_output_schema *string
	model_id                 *string
	result_text              *string
	structured_output        *map[string]interface{}
	error_code               *string
	error_message            *string
	agents                   *[]string
	appendagents             []string
	node_history             *[]string
	appendnode_history       []string
	execution_order          *[]string
	appendexecution_order    []string
	input_tokens             *int
	addinput_tokens          *int
	output_tokens            *int
	addoutput_tokens         *int
	total_tokens             *int
	addtotal_tokens          *int
	tool_use_count           *int
	addtool_use_count        *int
	node_start_count         *int
	addnode_start_count      *int
	execution_time_ms        *int64
	addexecution_time_ms     *int64
	estimated_cost_usd       *float64
	addestimated_cost_usd    *float64
	risk_score               *float64
	addrisk_score            *float64
	anomaly                  *bool
	client_disconnected      *bool
	created_at               *time.Time
	completed_at             *time.Time
	deleted_at               *time.Time
	clearedFields            map[string]struct{}
	events                   map[int]struct{}
	removedevents            map[int]struct{}
	clearedevents            bool
	node_metrics             map[int]struct{}
	removednode_metrics      map[int]struct{}
	clearednode_metrics      bool
	telemetry                map[int]struct{}
	removedtelemetry         map[int]struct{}
	clearedtelemetry         bool
	done                     bool
	oldValue                 func(context.Context) (*RunSummary, error)
	predicates               []predicate.RunSummary
}

var _ ent.Mutation = (*RunSummaryMutation)(nil)

// runsummaryOption allows management of the mutation configuration using functional options.
type runsummaryOption func(*RunSummaryMutation)

// newRunSummaryMutation creates new mutation for the RunSummary entity.
func newRunSummaryMutation(c config, op Op, opts ...runsummaryOption) *RunSummaryMutation {
	m := &RunSummaryMutation{
		config:        c,
		op:            op,
		typ:           TypeRunSummary,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRunSummaryID sets the ID field of the mutation.
func withRunSummaryID(id string) runsummaryOption {
	return func(m *RunSummaryMutation) {
		var (
			err   error
			once  sync.Once
			value *RunSummary
		)
		m.oldValue = func(ctx context.Context) (*RunSummary, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RunSummary.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRunSummary sets the old RunSummary of the mutation.
func withRunSummary(node *RunSummary) runsummaryOption {
	return func(m *RunSummaryMutation) {
		m.oldValue = func(context.Context) (*RunSummary, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RunSummaryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RunSummaryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RunSummary entities.
func (m *RunSummaryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RunSummaryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RunSummaryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RunSummary.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMode sets the "mode" field.
func (m *RunSummaryMutation) SetMode(r runsummary.Mode) {
	m.mode = &r
}

// Mode returns the value of the "mode" field in the mutation.
func (m *RunSummaryMutation) Mode() (r runsummary.Mode, exists bool) {
	v := m.mode
	if v == nil {
		return
	}
	return *v, true
}

// OldMode returns the old "mode" field's value of the RunSummary entity.
// If the RunSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunSummaryMutation) OldMode(ctx context.Context) (v runsummary.Mode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMode: %w", err)
	}
	return oldValue.Mode, nil
}

// ResetMode resets all changes to the "mode" field.
func (m *RunSummaryMutation) ResetMode() {
	m.mode = nil
}

// SetStatus sets the "status" field.
func (m *RunSummaryMutation) SetStatus(r runsummary.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *RunSummaryMutation) Status() (r runsummary.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the RunSummary entity.
// If the RunSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunSummaryMutation) OldStatus(ctx context.Context) (v runsummary.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *RunSummaryMutation) ResetStatus() {
	m.status = nil
}

// SetPrompt sets the "prompt" field.
func (m *RunSummaryMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *RunSummaryMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the RunSummary entity.
// If the RunSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunSummaryMutation) OldPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *RunSummaryMutation) ResetPrompt() {
	m.prompt = nil
}

// SetSessionID sets the "session_id" field.
func (m *RunSummaryMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *RunSummaryMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the RunSummary entity.
// If the RunSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunSummaryMutation) OldSessionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *RunSummaryMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[runsummary.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *RunSummaryMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[runsummary.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *RunSummaryMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, runsummary.FieldSessionID)
}

// SetPresetKey sets the "preset_key" field.
func (m *RunSummaryMutation) SetPresetKey(s string) {
	m.preset_key = &s
}

// PresetKey returns the value of the "preset_key" field in the mutation.
func (m *RunSummaryMutation) PresetKey() (r string, exists bool) {
	v := m.preset_key
	if v == nil {
		return
	}
	return *v, true
}

// OldPresetKey returns the old "preset_key" field's value of the RunSummary entity.
// If the RunSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunSummaryMutation) OldPresetKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPresetKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPresetKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPresetKey: %w", err)
	}
	return oldValue.PresetKey, nil
}

// ClearPresetKey clears the value of the "preset_key" field.
func (m *RunSummaryMutation) ClearPresetKey() {
	m.preset_key = nil
	m.clearedFields[runsummary.FieldPresetKey] = struct{}{}
}

// PresetKeyCleared returns if the "preset_key" field was cleared in this mutation.
func (m *RunSummaryMutation) PresetKeyCleared() bool {
	_, ok := m.clearedFields[runsummary.FieldPresetKey]
	return ok
}

// ResetPresetKey resets all changes to the "preset_key" field.
func (m *RunSummaryMutation) ResetPresetKey() {
	m.preset_key = nil
	delete(m.clearedFields, runsummary.FieldPresetKey)
}

// SetStructuredOutputSchema sets the "structured_output_schema" field.
func (m *RunSummaryMutation) SetStructuredOutputSchema(s string) {
	m.structured_output_schema = &s
}

// StructuredOutputSchema returns the value of the "structured_output_schema" field in the mutation.
func (m *RunSummaryMutation) StructuredOutputSchema() (r string, exists bool) {
	v := m.structured_output_schema
	if v == nil {
		return
	}
	return *v, true
}

// OldStructuredOutputSchema returns the old "structured_output_schema" field's value of the RunSummary entity.
// If the RunSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunSummaryMutation) OldStructuredOutputSchema(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStructuredOutputSchema is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStructuredOutputSchema requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStructuredOutputSchema: %w", err)
	}
	return oldValue.StructuredOutputSchema, nil
}

// ClearStructuredOutputSchema clears the value of the "structured_output_schema" field.
func (m *RunSummaryMutation) ClearStructuredOutputSchema() {
	m.structured_output_schema = nil
	m.clearedFields[runsummary.FieldStructuredOutputSchema] = struct{}{}
}

// StructuredOutputSchemaCleared returns if the "structured_output_schema" field was cleared in this mutation.
func (m *RunSummaryMutation) StructuredOutputSchemaCleared() bool {
	_, ok := m.clearedFields[runsummary.FieldStructuredOutputSchema]
	return ok
}

// ResetStructuredOutputSchema resets all changes to the "structured_output_schema" field.
func (m *RunSummaryMutation) ResetStructuredOutputSchema() {
	m.structured_output_schema = nil
	delete(m.clearedFields, runsummary.FieldStructuredOutputSchema)
}

// SetModelID sets the "model_id" field.
func (m *RunSummaryMutation) SetModelID(s string) {
	m.model_id = &s
}

// ModelID returns the value of the "model_id" field in the mutation.
func (m *RunSummaryMutation) ModelID() (r string, exists bool) {
	v := m.model_id
	if v == nil {
		return
	}
	return *v, true
}

// OldModelID returns the old "model_id" field's value of the RunSummary entity.
// If the RunSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunSummaryMutation) OldModelID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelID: %w", err)
	}
	return oldValue.ModelID, nil
}

// ClearModelID clears the value of the "model_id" field.
func (m *RunSummaryMutation) ClearModelID() {
	m.model_id = nil
	m.clearedFields[runsummary.FieldModelID] = struct{}{}
}

// ModelIDCleared returns if the "model_id" field was cleared in this mutation.
func (m *RunSummaryMutation) ModelIDCleared() bool {
	_, ok := m.clearedFields[runsummary.FieldModelID]
	return ok
}

// ResetModelID resets all changes to the "model_id" field.
func (m *RunSummaryMutation) ResetModelID() {
	m.model_id = nil
	delete(m.clearedFields, runsummary.FieldModelID)
}

// SetResultText sets the "result_text" field.
func (m *RunSummaryMutation) SetResultText(s string) {
	m.result_text = &s
}

// ResultText returns the value of the "result_text" field in the mutation.
func (m *RunSummaryMutation) ResultText() (r string, exists bool) {
	v := m.result_text
	if v == nil {
		return
	}
	return *v, true
}

// OldResultText returns the old "result_text" field's value of the RunSummary entity.
// If the RunSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunSummaryMutation) OldResultText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultText: %w", err)
	}
	return oldValue.ResultText, nil
}

// ClearResultText clears the value of the "result_text" field.
func (m *RunSummaryMutation) ClearResultText() {
	m.result_text = nil
	m.clearedFields[runsummary.FieldResultText] = struct{}{}
}

// ResultTextCleared returns if the "result_text" field was cleared in this mutation.
func (m *RunSummaryMutation) ResultTextCleared() bool {
	_, ok := m.clearedFields[runsummary.FieldResultText]
	return ok
}

// ResetResultText resets all changes to the "result_text" field.
func (m *RunSummaryMutation) ResetResultText() {
	m.result_text = nil
	delete(m.clearedFields, runsummary.FieldResultText)
}

// SetStructuredOutput sets the "structured_output" field.
func (m *RunSummaryMutation) SetStructuredOutput(value map[string]interface{}) {
	m.structured_output = &value
}

// StructuredOutput returns the value of the "structured_output" field in the mutation.
func (m *RunSummaryMutation) StructuredOutput() (r map[string]interface{}, exists bool) {
	v := m.structured_output
	if v == nil {
		return
	}
	return *v, true
}

// OldStructuredOutput returns the old "structured_output" field's value of the RunSummary entity.
// If the RunSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunSummaryMutation) OldStructuredOutput(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStructuredOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStructuredOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStructuredOutput: %w", err)
	}
	return oldValue.StructuredOutput, nil
}

// ClearStructuredOutput clears the value of the "structured_output" field.
func (m *RunSummaryMutation) ClearStructuredOutput() {
	m.structured_output = nil
	m.clearedFields[runsummary.FieldStructuredOutput] = struct{}{}
}

// StructuredOutputCleared returns if the "structured_output" field was cleared in this mutation.
func (m *RunSummaryMutation) StructuredOutputCleared() bool {
	_, ok := m.clearedFields[runsummary.FieldStructuredOutput]
	return ok
}

// ResetStructuredOutput resets all changes to the "structured_output" field.
func (m *RunSummaryMutation) ResetStructuredOutput() {
	m.structured_output = nil
	delete(m.clearedFields, runsummary.FieldStructuredOutput)
}

// SetErrorCode sets the "error_code" field.
func (m *RunSummaryMutation) SetErrorCode(s string) {
	m.error_code = &s
}

// ErrorCode returns the value of the "error_code" field in the mutation.
func (m *RunSummaryMutation) ErrorCode() (r string, exists bool) {
	v := m.error_code
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorCode returns the old "error_code" field's value of the RunSummary entity.
// If the RunSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunSummaryMutation) OldErrorCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorCode: %w", err)
	}
	return oldValue.ErrorCode, nil
}

// ClearErrorCode clears the value of the "error_code" field.
func (m *RunSummaryMutation) ClearErrorCode() {
	m.error_code = nil
	m.clearedFields[runsummary.FieldErrorCode] = struct{}{}
}

// ErrorCodeCleared returns if the "error_code" field was cleared in this mutation.
func (m *RunSummaryMutation) ErrorCodeCleared() bool {
	_, ok := m.clearedFields[runsummary.FieldErrorCode]
	return ok
}

// ResetErrorCode resets all changes to the "error_code" field.
func (m *RunSummaryMutation) ResetErrorCode() {
	m.error_code = nil
	delete(m.clearedFields, runsummary.FieldErrorCode)
}

// SetErrorMessage sets the "error_message" field.
func (m *RunSummaryMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *RunSummaryMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the RunSummary entity.
// If the RunSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunSummaryMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *RunSummaryMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[runsummary.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *RunSummaryMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[runsummary.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *RunSummaryMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, runsummary.FieldErrorMessage)
}

// SetAgents sets the "agents" field.
func (m *RunSummaryMutation) SetAgents(s []string) {
	m.agents = &s
	m.appendagents = nil
}

// Agents returns the value of the "agents" field in the mutation.
func (m *RunSummaryMutation) Agents() (r []string, exists bool) {
	v := m.agents
	if v == nil {
		return
	}
	return *v, true
}

// OldAgents returns the old "agents" field's value of the RunSummary entity.
// If the RunSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunSummaryMutation) OldAgents(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgents: %w", err)
	}
	return oldValue.Agents, nil
}

// AppendAgents adds s to the "agents" field.
func (m *RunSummaryMutation) AppendAgents(s []string) {
	m.appendagents = append(m.appendagents, s...)
}

// AppendedAgents returns the list of values that were appended to the "agents" field in this mutation.
func (m *RunSummaryMutation) AppendedAgents() ([]string, bool) {
	if len(m.appendagents) == 0 {
		return nil, false
	}
	return m.appendagents, true
}

// ClearAgents clears the value of the "agents" field.
func (m *RunSummaryMutation) ClearAgents() {
	m.agents = nil
	m.appendagents = nil
	m.clearedFields[runsummary.FieldAgents] = struct{}{}
}

// AgentsCleared returns if the "agents" field was cleared in this mutation.
func (m *RunSummaryMutation) AgentsCleared() bool {
	_, ok := m.clearedFields[runsummary.FieldAgents]
	return ok
}

// ResetAgents resets all changes to the "agents" field.
func (m *RunSummaryMutation) ResetAgents() {
	m.agents = nil
	m.appendagents = nil
	delete(m.clearedFields, runsummary.FieldAgents)
}

// SetNodeHistory sets the "node_history" field.
func (m *RunSummaryMutation) SetNodeHistory(s []string) {
	m.node_history = &s
	m.appendnode_history = nil
}

// NodeHistory returns the value of the "node_history" field in the mutation.
func (m *RunSummaryMutation) NodeHistory() (r []string, exists bool) {
	v := m.node_history
	if v == nil {
		return
	}
	return *v, true
}

// OldNodeHistory returns the old "node_history" field's value of the RunSummary entity.
// If the RunSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunSummaryMutation) OldNodeHistory(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNodeHistory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNodeHistory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNodeHistory: %w", err)
	}
	return oldValue.NodeHistory, nil
}

// AppendNodeHistory adds s to the "node_history" field.
func (m *RunSummaryMutation) AppendNodeHistory(s []string) {
	m.appendnode_history = append(m.appendnode_history, s...)
}

// AppendedNodeHistory returns the list of values that were appended to the "node_history" field in this mutation.
func (m *RunSummaryMutation) AppendedNodeHistory() ([]string, bool) {
	if len(m.appendnode_history) == 0 {
		return nil, false
	}
	return m.appendnode_history, true
}

// ClearNodeHistory clears the value of the "node_history" field.
func (m *RunSummaryMutation) ClearNodeHistory() {
	m.node_history = nil
	m.appendnode_history = nil
	m.clearedFields[runsummary.FieldNodeHistory] = struct{}{}
}

// NodeHistoryCleared returns if the "node_history" field was cleared in this mutation.
func (m *RunSummaryMutation) NodeHistoryCleared() bool {
	_, ok := m.clearedFields[runsummary.FieldNodeHistory]
	return ok
}

// ResetNodeHistory resets all changes to the "node_history" field.
func (m *RunSummaryMutation) ResetNodeHistory() {
	m.node_history = nil
	m.appendnode_history = nil
	delete(m.clearedFields, runsummary.FieldNodeHistory)
}

// SetExecutionOrder sets the "execution_order" field.
func (m *RunSummaryMutation) SetExecutionOrder(s []string) {
	m.execution_order = &s
	m.appendexecution_order = nil
}

// ExecutionOrder returns the value of the "execution_order" field in the mutation.
func (m *RunSummaryMutation) ExecutionOrder() (r []string, exists bool) {
	v := m.execution_order
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionOrder returns the old "execution_order" field's value of the RunSummary entity.
// If the RunSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunSummaryMutation) OldExecutionOrder(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionOrder: %w", err)
	}
	return oldValue.ExecutionOrder, nil
}

// AppendExecutionOrder adds s to the "execution_order" field.
func (m *RunSummaryMutation) AppendExecutionOrder(s []string) {
	m.appendexecution_order = append(m.appendexecution_order, s...)
}

// AppendedExecutionOrder returns the list of values that were appended to the "execution_order" field in this mutation.
func (m *RunSummaryMutation) AppendedExecutionOrder() ([]string, bool) {
	if len(m.appendexecution_order) == 0 {
		return nil, false
	}
	return m.appendexecution_order, true
}

// ClearExecutionOrder clears the value of the "execution_order" field.
func (m *RunSummaryMutation) ClearExecutionOrder() {
	m.execution_order = nil
	m.appendexecution_order = nil
	m.clearedFields[runsummary.FieldExecutionOrder] = struct{}{}
}

// ExecutionOrderCleared returns if the "execution_order" field was cleared in this mutation.
func (m *RunSummaryMutation) ExecutionOrderCleared() bool {
	_, ok := m.clearedFields[runsummary.FieldExecutionOrder]
	return ok
}

// ResetExecutionOrder resets all changes to the "execution_order" field.
func (m *RunSummaryMutation) ResetExecutionOrder() {
	m.execution_order = nil
	m.appendexecution_order = nil
	delete(m.clearedFields, runsummary.FieldExecutionOrder)
}

// SetInputTokens sets the "input_tokens" field.
func (m *RunSummaryMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *RunSummaryMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the RunSummary entity.
// If the RunSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunSummaryMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *RunSummaryMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *RunSummaryMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *RunSummaryMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *RunSummaryMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *RunSummaryMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the RunSummary entity.
// If the RunSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunSummaryMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *RunSummaryMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *RunSummaryMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *RunSummaryMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetTotalTokens sets the "total_tokens" field.
func (m *RunSummaryMutation) SetTotalTokens(i int) {
	m.total_tokens = &i
	m.addtotal_tokens = nil
}

// TotalTokens returns the value of the "total_tokens" field in the mutation.
func (m *RunSummaryMutation) TotalTokens() (r int, exists bool) {
	v := m.total_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTokens returns the old "total_tokens" field's value of the RunSummary entity.
// If the RunSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunSummaryMutation) OldTotalTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTokens: %w", err)
	}
	return oldValue.TotalTokens, nil
}

// AddTotalTokens adds i to the "total_tokens" field.
func (m *RunSummaryMutation) AddTotalTokens(i int) {
	if m.addtotal_tokens != nil {
		*m.addtotal_tokens += i
	} else {
		m.addtotal_tokens = &i
	}
}

// AddedTotalTokens returns the value that was added to the "total_tokens" field in this mutation.
func (m *RunSummaryMutation) AddedTotalTokens() (r int, exists bool) {
	v := m.addtotal_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTokens resets all changes to the "total_tokens" field.
func (m *RunSummaryMutation) ResetTotalTokens() {
	m.total_tokens = nil
	m.addtotal_tokens = nil
}

// SetToolUseCount sets the "tool_use_count" field.
func (m *RunSummaryMutation) SetToolUseCount(i int) {
	m.tool_use_count = &i
	m.addtool_use_count = nil
}

// ToolUseCount returns the value of the "tool_use_count" field in the mutation.
func (m *RunSummaryMutation) ToolUseCount() (r int, exists bool) {
	v := m.tool_use_count
	if v == nil {
		return
	}
	return *v, true
}

// OldToolUseCount returns the old "tool_use_count" field's value of the RunSummary entity.
// If the RunSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunSummaryMutation) OldToolUseCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolUseCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolUseCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolUseCount: %w", err)
	}
	return oldValue.ToolUseCount, nil
}

// AddToolUseCount adds i to the "tool_use_count" field.
func (m *RunSummaryMutation) AddToolUseCount(i int) {
	if m.addtool_use_count != nil {
		*m.addtool_use_count += i
	} else {
		m.addtool_use_count = &i
	}
}

// AddedToolUseCount returns the value that was added to the "tool_use_count" field in this mutation.
func (m *RunSummaryMutation) AddedToolUseCount() (r int, exists bool) {
	v := m.addtool_use_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetToolUseCount resets all changes to the "tool_use_count" field.
func (m *RunSummaryMutation) ResetToolUseCount() {
	m.tool_use_count = nil
	m.addtool_use_count = nil
}

// SetNodeStartCount sets the "node_start_count" field.
func (m *RunSummaryMutation) SetNodeStartCount(i int) {
	m.node_start_count = &i
	m.addnode_start_count = nil
}

// NodeStartCount returns the value of the "node_start_count" field in the mutation.
func (m *RunSummaryMutation) NodeStartCount() (r int, exists bool) {
	v := m.node_start_count
	if v == nil {
		return
	}
	return *v, true
}

// OldNodeStartCount returns the old "node_start_count" field's value of the RunSummary entity.
// If the RunSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunSummaryMutation) OldNodeStartCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNodeStartCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNodeStartCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNodeStartCount: %w", err)
	}
	return oldValue.NodeStartCount, nil
}

// AddNodeStartCount adds i to the "node_start_count" field.
func (m *RunSummaryMutation) AddNodeStartCount(i int) {
	if m.addnode_start_count != nil {
		*m.addnode_start_count += i
	} else {
		m.addnode_start_count = &i
	}
}

// AddedNodeStartCount returns the value that was added to the "node_start_count" field in this mutation.
func (m *RunSummaryMutation) AddedNodeStartCount() (r int, exists bool) {
	v := m.addnode_start_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetNodeStartCount resets all changes to the "node_start_count" field.
func (m *RunSummaryMutation) ResetNodeStartCount() {
	m.node_start_count = nil
	m.addnode_start_count = nil
}

// SetExecutionTimeMs sets the "execution_time_ms" field.
func (m *RunSummaryMutation) SetExecutionTimeMs(i int64) {
	m.execution_time_ms = &i
	m.addexecution_time_ms = nil
}

// ExecutionTimeMs returns the value of the "execution_time_ms" field in the mutation.
func (m *RunSummaryMutation) ExecutionTimeMs() (r int64, exists bool) {
	v := m.execution_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionTimeMs returns the old "execution_time_ms" field's value of the RunSummary entity.
// If the RunSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunSummaryMutation) OldExecutionTimeMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionTimeMs: %w", err)
	}
	return oldValue.ExecutionTimeMs, nil
}

// AddExecutionTimeMs adds i to the "execution_time_ms" field.
func (m *RunSummaryMutation) AddExecutionTimeMs(i int64) {
	if m.addexecution_time_ms != nil {
		*m.addexecution_time_ms += i
	} else {
		m.addexecution_time_ms = &i
	}
}

// AddedExecutionTimeMs returns the value that was added to the "execution_time_ms" field in this mutation.
func (m *RunSummaryMutation) AddedExecutionTimeMs() (r int64, exists bool) {
	v := m.addexecution_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetExecutionTimeMs resets all changes to the "execution_time_ms" field.
func (m *RunSummaryMutation) ResetExecutionTimeMs() {
	m.execution_time_ms = nil
	m.addexecution_time_ms = nil
}

// SetEstimatedCostUsd sets the "estimated_cost_usd" field.
func (m *RunSummaryMutation) SetEstimatedCostUsd(f float64) {
	m.estimated_cost_usd = &f
	m.addestimated_cost_usd = nil
}

// EstimatedCostUsd returns the value of the "estimated_cost_usd" field in the mutation.
func (m *RunSummaryMutation) EstimatedCostUsd() (r float64, exists bool) {
	v := m.estimated_cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedCostUsd returns the old "estimated_cost_usd" field's value of the RunSummary entity.
// If the RunSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunSummaryMutation) OldEstimatedCostUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedCostUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedCostUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedCostUsd: %w", err)
	}
	return oldValue.EstimatedCostUsd, nil
}

// AddEstimatedCostUsd adds f to the "estimated_cost_usd" field.
func (m *RunSummaryMutation) AddEstimatedCostUsd(f float64) {
	if m.addestimated_cost_usd != nil {
		*m.addestimated_cost_usd += f
	} else {
		m.addestimated_cost_usd = &f
	}
}

// AddedEstimatedCostUsd returns the value that was added to the "estimated_cost_usd" field in this mutation.
func (m *RunSummaryMutation) AddedEstimatedCostUsd() (r float64, exists bool) {
	v := m.addestimated_cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetEstimatedCostUsd resets all changes to the "estimated_cost_usd" field.
func (m *RunSummaryMutation) ResetEstimatedCostUsd() {
	m.estimated_cost_usd = nil
	m.addestimated_cost_usd = nil
}

// SetRiskScore sets the "risk_score" field.
func (m *RunSummaryMutation) SetRiskScore(f float64) {
	m.risk_score = &f
	m.addrisk_score = nil
}

// RiskScore returns the value of the "risk_score" field in the mutation.
func (m *RunSummaryMutation) RiskScore() (r float64, exists bool) {
	v := m.risk_score
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskScore returns the old "risk_score" field's value of the RunSummary entity.
// If the RunSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunSummaryMutation) OldRiskScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskScore: %w", err)
	}
	return oldValue.RiskScore, nil
}

// AddRiskScore adds f to the "risk_score" field.
func (m *RunSummaryMutation) AddRiskScore(f float64) {
	if m.addrisk_score != nil {
		*m.addrisk_score += f
	} else {
		m.addrisk_score = &f
	}
}

// AddedRiskScore returns the value that was added to the "risk_score" field in this mutation.
func (m *RunSummaryMutation) AddedRiskScore() (r float64, exists bool) {
	v := m.addrisk_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetRiskScore resets all changes to the "risk_score" field.
func (m *RunSummaryMutation) ResetRiskScore() {
	m.risk_score = nil
	m.addrisk_score = nil
}

// SetAnomaly sets the "anomaly" field.
func (m *RunSummaryMutation) SetAnomaly(b bool) {
	m.anomaly = &b
}

// Anomaly returns the value of the "anomaly" field in the mutation.
func (m *RunSummaryMutation) Anomaly() (r bool, exists bool) {
	v := m.anomaly
	if v == nil {
		return
	}
	return *v, true
}

// OldAnomaly returns the old "anomaly" field's value of the RunSummary entity.
// If the RunSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunSummaryMutation) OldAnomaly(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnomaly is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnomaly requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnomaly: %w", err)
	}
	return oldValue.Anomaly, nil
}

// ResetAnomaly resets all changes to the "anomaly" field.
func (m *RunSummaryMutation) ResetAnomaly() {
	m.anomaly = nil
}

// SetClientDisconnected sets the "client_disconnected" field.
func (m *RunSummaryMutation) SetClientDisconnected(b bool) {
	m.client_disconnected = &b
}

// ClientDisconnected returns the value of the "client_disconnected" field in the mutation.
func (m *RunSummaryMutation) ClientDisconnected() (r bool, exists bool) {
	v := m.client_disconnected
	if v == nil {
		return
	}
	return *v, true
}

// OldClientDisconnected returns the old "client_disconnected" field's value of the RunSummary entity.
// If the RunSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunSummaryMutation) OldClientDisconnected(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientDisconnected is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientDisconnected requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientDisconnected: %w", err)
	}
	return oldValue.ClientDisconnected, nil
}

// ResetClientDisconnected resets all changes to the "client_disconnected" field.
func (m *RunSummaryMutation) ResetClientDisconnected() {
	m.client_disconnected = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RunSummaryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RunSummaryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RunSummary entity.
// If the RunSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunSummaryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RunSummaryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *RunSummaryMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *RunSummaryMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the RunSummary entity.
// If the RunSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunSummaryMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *RunSummaryMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[runsummary.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *RunSummaryMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[runsummary.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *RunSummaryMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, runsummary.FieldCompletedAt)
}

// SetDeletedAt sets the "deleted_at" field.
func (m *RunSummaryMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *RunSummaryMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the RunSummary entity.
// If the RunSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunSummaryMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *RunSummaryMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[runsummary.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *RunSummaryMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[runsummary.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *RunSummaryMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, runsummary.FieldDeletedAt)
}

// AddEventIDs adds the "events" edge to the RunEvent entity by ids.
func (m *RunSummaryMutation) AddEventIDs(ids ...int) {
	if m.events == nil {
		m.events = make(map[int]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the RunEvent entity.
func (m *RunSummaryMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the RunEvent entity was cleared.
func (m *RunSummaryMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the RunEvent entity by IDs.
func (m *RunSummaryMutation) RemoveEventIDs(ids ...int) {
	if m.removedevents == nil {
		m.removedevents = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the RunEvent entity.
func (m *RunSummaryMutation) RemovedEventsIDs() (ids []int) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *RunSummaryMutation) EventsIDs() (ids []int) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *RunSummaryMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// AddNodeMetricIDs adds the "node_metrics" edge to the RunNodeMetric entity by ids.
func (m *RunSummaryMutation) AddNodeMetricIDs(ids ...int) {
	if m.node_metrics == nil {
		m.node_metrics = make(map[int]struct{})
	}
	for i := range ids {
		m.node_metrics[ids[i]] = struct{}{}
	}
}

// ClearNodeMetrics clears the "node_metrics" edge to the RunNodeMetric entity.
func (m *RunSummaryMutation) ClearNodeMetrics() {
	m.clearednode_metrics = true
}

// NodeMetricsCleared reports if the "node_metrics" edge to the RunNodeMetric entity was cleared.
func (m *RunSummaryMutation) NodeMetricsCleared() bool {
	return m.clearednode_metrics
}

// RemoveNodeMetricIDs removes the "node_metrics" edge to the RunNodeMetric entity by IDs.
func (m *RunSummaryMutation) RemoveNodeMetricIDs(ids ...int) {
	if m.removednode_metrics == nil {
		m.removednode_metrics = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.node_metrics, ids[i])
		m.removednode_metrics[ids[i]] = struct{}{}
	}
}

// RemovedNodeMetrics returns the removed IDs of the "node_metrics" edge to the RunNodeMetric entity.
func (m *RunSummaryMutation) RemovedNodeMetricsIDs() (ids []int) {
	for id := range m.removednode_metrics {
		ids = append(ids, id)
	}
	return
}

// NodeMetricsIDs returns the "node_metrics" edge IDs in the mutation.
func (m *RunSummaryMutation) NodeMetricsIDs() (ids []int) {
	for id := range m.node_metrics {
		ids = append(ids, id)
	}
	return
}

// ResetNodeMetrics resets all changes to the "node_metrics" edge.
func (m *RunSummaryMutation) ResetNodeMetrics() {
	m.node_metrics = nil
	m.clearednode_metrics = false
	m.removednode_metrics = nil
}

// AddTelemetryIDs adds the "telemetry" edge to the RunTelemetry entity by ids.
func (m *RunSummaryMutation) AddTelemetryIDs(ids ...int) {
	if m.telemetry == nil {
		m.telemetry = make(map[int]struct{})
	}
	for i := range ids {
		m.telemetry[ids[i]] = struct{}{}
	}
}

// ClearTelemetry clears the "telemetry" edge to the RunTelemetry entity.
func (m *RunSummaryMutation) ClearTelemetry() {
	m.clearedtelemetry = true
}

// TelemetryCleared reports if the "telemetry" edge to the RunTelemetry entity was cleared.
func (m *RunSummaryMutation) TelemetryCleared() bool {
	return m.clearedtelemetry
}

// RemoveTelemetryIDs removes the "telemetry" edge to the RunTelemetry entity by IDs.
func (m *RunSummaryMutation) RemoveTelemetryIDs(ids ...int) {
	if m.removedtelemetry == nil {
		m.removedtelemetry = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.telemetry, ids[i])
		m.removedtelemetry[ids[i]] = struct{}{}
	}
}

// RemovedTelemetry returns the removed IDs of the "telemetry" edge to the RunTelemetry entity.
func (m *RunSummaryMutation) RemovedTelemetryIDs() (ids []int) {
	for id := range m.removedtelemetry {
		ids = append(ids, id)
	}
	return
}

// TelemetryIDs returns the "telemetry" edge IDs in the mutation.
func (m *RunSummaryMutation) TelemetryIDs() (ids []int) {
	for id := range m.telemetry {
		ids = append(ids, id)
	}
	return
}

// ResetTelemetry resets all changes to the "telemetry" edge.
func (m *RunSummaryMutation) ResetTelemetry() {
	m.telemetry = nil
	m.clearedtelemetry = false
	m.removedtelemetry = nil
}

// Where appends a list predicates to the RunSummaryMutation builder.
func (m *RunSummaryMutation) Where(ps ...predicate.RunSummary) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RunSummaryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RunSummaryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RunSummary, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RunSummaryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RunSummaryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RunSummary).
func (m *RunSummaryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RunSummaryMutation) Fields() []string {
	fields := make([]string, 0, 27)
	if m.mode != nil {
		fields = append(fields, runsummary.FieldMode)
	}
	if m.status != nil {
		fields = append(fields, runsummary.FieldStatus)
	}
	if m.prompt != nil {
		fields = append(fields, runsummary.FieldPrompt)
	}
	if m.session_id != nil {
		fields = append(fields, runsummary.FieldSessionID)
	}
	if m.preset_key != nil {
		fields = append(fields, runsummary.FieldPresetKey)
	}
	if m.structured_output_schema != nil {
		fields = append(fields, runsummary.FieldStructuredOutputSchema)
	}
	if m.model_id != nil {
		fields = append(fields, runsummary.FieldModelID)
	}
	if m.result_text != nil {
		fields = append(fields, runsummary.FieldResultText)
	}
	if m.structured_output != nil {
		fields = append(fields, runsummary.FieldStructuredOutput)
	}
	if m.error_code != nil {
		fields = append(fields, runsummary.FieldErrorCode)
	}
	if m.error_message != nil {
		fields = append(fields, runsummary.FieldErrorMessage)
	}
	if m.agents != nil {
		fields = append(fields, runsummary.FieldAgents)
	}
	if m.node_history != nil {
		fields = append(fields, runsummary.FieldNodeHistory)
	}
	if m.execution_order != nil {
		fields = append(fields, runsummary.FieldExecutionOrder)
	}
	if m.input_tokens != nil {
		fields = append(fields, runsummary.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, runsummary.FieldOutputTokens)
	}
	if m.total_tokens != nil {
		fields = append(fields, runsummary.FieldTotalTokens)
	}
	if m.tool_use_count != nil {
		fields = append(fields, runsummary.FieldToolUseCount)
	}
	if m.node_start_count != nil {
		fields = append(fields, runsummary.FieldNodeStartCount)
	}
	if m.execution_time_ms != nil {
		fields = append(fields, runsummary.FieldExecutionTimeMs)
	}
	if m.estimated_cost_usd != nil {
		fields = append(fields, runsummary.FieldEstimatedCostUsd)
	}
	if m.risk_score != nil {
		fields = append(fields, runsummary.FieldRiskScore)
	}
	if m.anomaly != nil {
		fields = append(fields, runsummary.FieldAnomaly)
	}
	if m.client_disconnected != nil {
		fields = append(fields, runsummary.FieldClientDisconnected)
	}
	if m.created_at != nil {
		fields = append(fields, runsummary.FieldCreatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, runsummary.FieldCompletedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, runsummary.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RunSummaryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case runsummary.FieldMode:
		return m.Mode()
	case runsummary.FieldStatus:
		return m.Status()
	case runsummary.FieldPrompt:
		return m.Prompt()
	case runsummary.FieldSessionID:
		return m.SessionID()
	case runsummary.FieldPresetKey:
		return m.PresetKey()
	case runsummary.FieldStructuredOutputSchema:
		return m.StructuredOutputSchema()
	case runsummary.FieldModelID:
		return m.ModelID()
	case runsummary.FieldResultText:
		return m.ResultText()
	case runsummary.FieldStructuredOutput:
		return m.StructuredOutput()
	case runsummary.FieldErrorCode:
		return m.ErrorCode()
	case runsummary.FieldErrorMessage:
		return m.ErrorMessage()
	case runsummary.FieldAgents:
		return m.Agents()
	case runsummary.FieldNodeHistory:
		return m.NodeHistory()
	case runsummary.FieldExecutionOrder:
		return m.ExecutionOrder()
	case runsummary.FieldInputTokens:
		return m.InputTokens()
	case runsummary.FieldOutputTokens:
		return m.OutputTokens()
	case runsummary.FieldTotalTokens:
		return m.TotalTokens()
	case runsummary.FieldToolUseCount:
		return m.ToolUseCount()
	case runsummary.FieldNodeStartCount:
		return m.NodeStartCount()
	case runsummary.FieldExecutionTimeMs:
		return m.ExecutionTimeMs()
	case runsummary.FieldEstimatedCostUsd:
		return m.EstimatedCostUsd()
	case runsummary.FieldRiskScore:
		return m.RiskScore()
	case runsummary.FieldAnomaly:
		return m.Anomaly()
	case runsummary.FieldClientDisconnected:
		return m.ClientDisconnected()
	case runsummary.FieldCreatedAt:
		return m.CreatedAt()
	case runsummary.FieldCompletedAt:
		return m.CompletedAt()
	case runsummary.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RunSummaryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case runsummary.FieldMode:
		return m.OldMode(ctx)
	case runsummary.FieldStatus:
		return m.OldStatus(ctx)
	case runsummary.FieldPrompt:
		return m.OldPrompt(ctx)
	case runsummary.FieldSessionID:
		return m.OldSessionID(ctx)
	case runsummary.FieldPresetKey:
		return m.OldPresetKey(ctx)
	case runsummary.FieldStructuredOutputSchema:
		return m.OldStructuredOutputSchema(ctx)
	case runsummary.FieldModelID:
		return m.OldModelID(ctx)
	case runsummary.FieldResultText:
		return m.OldResultText(ctx)
	case runsummary.FieldStructuredOutput:
		return m.OldStructuredOutput(ctx)
	case runsummary.FieldErrorCode:
		return m.OldErrorCode(ctx)
	case runsummary.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case runsummary.FieldAgents:
		return m.OldAgents(ctx)
	case runsummary.FieldNodeHistory:
		return m.OldNodeHistory(ctx)
	case runsummary.FieldExecutionOrder:
		return m.OldExecutionOrder(ctx)
	case runsummary.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case runsummary.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case runsummary.FieldTotalTokens:
		return m.OldTotalTokens(ctx)
	case runsummary.FieldToolUseCount:
		return m.OldToolUseCount(ctx)
	case runsummary.FieldNodeStartCount:
		return m.OldNodeStartCount(ctx)
	case runsummary.FieldExecutionTimeMs:
		return m.OldExecutionTimeMs(ctx)
	case runsummary.FieldEstimatedCostUsd:
		return m.OldEstimatedCostUsd(ctx)
	case runsummary.FieldRiskScore:
		return m.OldRiskScore(ctx)
	case runsummary.FieldAnomaly:
		return m.OldAnomaly(ctx)
	case runsummary.FieldClientDisconnected:
		return m.OldClientDisconnected(ctx)
	case runsummary.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case runsummary.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case runsummary.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RunSummary field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunSummaryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case runsummary.FieldMode:
		v, ok := value.(runsummary.Mode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMode(v)
		return nil
	case runsummary.FieldStatus:
		v, ok := value.(runsummary.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case runsummary.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case runsummary.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case runsummary.FieldPresetKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPresetKey(v)
		return nil
	case runsummary.FieldStructuredOutputSchema:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStructuredOutputSchema(v)
		return nil
	case runsummary.FieldModelID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelID(v)
		return nil
	case runsummary.FieldResultText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultText(v)
		return nil
	case runsummary.FieldStructuredOutput:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStructuredOutput(v)
		return nil
	case runsummary.FieldErrorCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorCode(v)
		return nil
	case runsummary.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case runsummary.FieldAgents:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgents(v)
		return nil
	case runsummary.FieldNodeHistory:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNodeHistory(v)
		return nil
	case runsummary.FieldExecutionOrder:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionOrder(v)
		return nil
	case runsummary.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case runsummary.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case runsummary.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTokens(v)
		return nil
	case runsummary.FieldToolUseCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolUseCount(v)
		return nil
	case runsummary.FieldNodeStartCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNodeStartCount(v)
		return nil
	case runsummary.FieldExecutionTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionTimeMs(v)
		return nil
	case runsummary.FieldEstimatedCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedCostUsd(v)
		return nil
	case runsummary.FieldRiskScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskScore(v)
		return nil
	case runsummary.FieldAnomaly:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnomaly(v)
		return nil
	case runsummary.FieldClientDisconnected:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientDisconnected(v)
		return nil
	case runsummary.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case runsummary.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case runsummary.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RunSummary field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RunSummaryMutation) AddedFields() []string {
	var fields []string
	if m.addinput_tokens != nil {
		fields = append(fields, runsummary.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, runsummary.FieldOutputTokens)
	}
	if m.addtotal_tokens != nil {
		fields = append(fields, runsummary.FieldTotalTokens)
	}
	if m.addtool_use_count != nil {
		fields = append(fields, runsummary.FieldToolUseCount)
	}
	if m.addnode_start_count != nil {
		fields = append(fields, runsummary.FieldNodeStartCount)
	}
	if m.addexecution_time_ms != nil {
		fields = append(fields, runsummary.FieldExecutionTimeMs)
	}
	if m.addestimated_cost_usd != nil {
		fields = append(fields, runsummary.FieldEstimatedCostUsd)
	}
	if m.addrisk_score != nil {
		fields = append(fields, runsummary.FieldRiskScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RunSummaryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case runsummary.FieldInputTokens:
		return m.AddedInputTokens()
	case runsummary.FieldOutputTokens:
		return m.AddedOutputTokens()
	case runsummary.FieldTotalTokens:
		return m.AddedTotalTokens()
	case runsummary.FieldToolUseCount:
		return m.AddedToolUseCount()
	case runsummary.FieldNodeStartCount:
		return m.AddedNodeStartCount()
	case runsummary.FieldExecutionTimeMs:
		return m.AddedExecutionTimeMs()
	case runsummary.FieldEstimatedCostUsd:
		return m.AddedEstimatedCostUsd()
	case runsummary.FieldRiskScore:
		return m.AddedRiskScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunSummaryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case runsummary.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case runsummary.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case runsummary.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTokens(v)
		return nil
	case runsummary.FieldToolUseCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddToolUseCount(v)
		return nil
	case runsummary.FieldNodeStartCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNodeStartCount(v)
		return nil
	case runsummary.FieldExecutionTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExecutionTimeMs(v)
		return nil
	case runsummary.FieldEstimatedCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEstimatedCostUsd(v)
		return nil
	case runsummary.FieldRiskScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRiskScore(v)
		return nil
	}
	return fmt.Errorf("unknown RunSummary numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RunSummaryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(runsummary.FieldSessionID) {
		fields = append(fields, runsummary.FieldSessionID)
	}
	if m.FieldCleared(runsummary.FieldPresetKey) {
		fields = append(fields, runsummary.FieldPresetKey)
	}
	if m.FieldCleared(runsummary.FieldStructuredOutputSchema) {
		fields = append(fields, runsummary.FieldStructuredOutputSchema)
	}
	if m.FieldCleared(runsummary.FieldModelID) {
		fields = append(fields, runsummary.FieldModelID)
	}
	if m.FieldCleared(runsummary.FieldResultText) {
		fields = append(fields, runsummary.FieldResultText)
	}
	if m.FieldCleared(runsummary.FieldStructuredOutput) {
		fields = append(fields, runsummary.FieldStructuredOutput)
	}
	if m.FieldCleared(runsummary.FieldErrorCode) {
		fields = append(fields, runsummary.FieldErrorCode)
	}
	if m.FieldCleared(runsummary.FieldErrorMessage) {
		fields = append(fields, runsummary.FieldErrorMessage)
	}
	if m.FieldCleared(runsummary.FieldAgents) {
		fields = append(fields, runsummary.FieldAgents)
	}
	if m.FieldCleared(runsummary.FieldNodeHistory) {
		fields = append(fields, runsummary.FieldNodeHistory)
	}
	if m.FieldCleared(runsummary.FieldExecutionOrder) {
		fields = append(fields, runsummary.FieldExecutionOrder)
	}
	if m.FieldCleared(runsummary.FieldCompletedAt) {
		fields = append(fields, runsummary.FieldCompletedAt)
	}
	if m.FieldCleared(runsummary.FieldDeletedAt) {
		fields = append(fields, runsummary.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RunSummaryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RunSummaryMutation) ClearField(name string) error {
	switch name {
	case runsummary.FieldSessionID:
		m.ClearSessionID()
		return nil
	case runsummary.FieldPresetKey:
		m.ClearPresetKey()
		return nil
	case runsummary.FieldStructuredOutputSchema:
		m.ClearStructuredOutputSchema()
		return nil
	case runsummary.FieldModelID:
		m.ClearModelID()
		return nil
	case runsummary.FieldResultText:
		m.ClearResultText()
		return nil
	case runsummary.FieldStructuredOutput:
		m.ClearStructuredOutput()
		return nil
	case runsummary.FieldErrorCode:
		m.ClearErrorCode()
		return nil
	case runsummary.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case runsummary.FieldAgents:
		m.ClearAgents()
		return nil
	case runsummary.FieldNodeHistory:
		m.ClearNodeHistory()
		return nil
	case runsummary.FieldExecutionOrder:
		m.ClearExecutionOrder()
		return nil
	case runsummary.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case runsummary.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown RunSummary nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RunSummaryMutation) ResetField(name string) error {
	switch name {
	case runsummary.FieldMode:
		m.ResetMode()
		return nil
	case runsummary.FieldStatus:
		m.ResetStatus()
		return nil
	case runsummary.FieldPrompt:
		m.ResetPrompt()
		return nil
	case runsummary.FieldSessionID:
		m.ResetSessionID()
		return nil
	case runsummary.FieldPresetKey:
		m.ResetPresetKey()
		return nil
	case runsummary.FieldStructuredOutputSchema:
		m.ResetStructuredOutputSchema()
		return nil
	case runsummary.FieldModelID:
		m.ResetModelID()
		return nil
	case runsummary.FieldResultText:
		m.ResetResultText()
		return nil
	case runsummary.FieldStructuredOutput:
		m.ResetStructuredOutput()
		return nil
	case runsummary.FieldErrorCode:
		m.ResetErrorCode()
		return nil
	case runsummary.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case runsummary.FieldAgents:
		m.ResetAgents()
		return nil
	case runsummary.FieldNodeHistory:
		m.ResetNodeHistory()
		return nil
	case runsummary.FieldExecutionOrder:
		m.ResetExecutionOrder()
		return nil
	case runsummary.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case runsummary.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case runsummary.FieldTotalTokens:
		m.ResetTotalTokens()
		return nil
	case runsummary.FieldToolUseCount:
		m.ResetToolUseCount()
		return nil
	case runsummary.FieldNodeStartCount:
		m.ResetNodeStartCount()
		return nil
	case runsummary.FieldExecutionTimeMs:
		m.ResetExecutionTimeMs()
		return nil
	case runsummary.FieldEstimatedCostUsd:
		m.ResetEstimatedCostUsd()
		return nil
	case runsummary.FieldRiskScore:
		m.ResetRiskScore()
		return nil
	case runsummary.FieldAnomaly:
		m.ResetAnomaly()
		return nil
	case runsummary.FieldClientDisconnected:
		m.ResetClientDisconnected()
		return nil
	case runsummary.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case runsummary.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case runsummary.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown RunSummary field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RunSummaryMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.events != nil {
		edges = append(edges, runsummary.EdgeEvents)
	}
	if m.node_metrics != nil {
		edges = append(edges, runsummary.EdgeNodeMetrics)
	}
	if m.telemetry != nil {
		edges = append(edges, runsummary.EdgeTelemetry)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RunSummaryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case runsummary.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	case runsummary.EdgeNodeMetrics:
		ids := make([]ent.Value, 0, len(m.node_metrics))
		for id := range m.node_metrics {
			ids = append(ids, id)
		}
		return ids
	case runsummary.EdgeTelemetry:
		ids := make([]ent.Value, 0, len(m.telemetry))
		for id := range m.telemetry {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RunSummaryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedevents != nil {
		edges = append(edges, runsummary.EdgeEvents)
	}
	if m.removednode_metrics != nil {
		edges = append(edges, runsummary.EdgeNodeMetrics)
	}
	if m.removedtelemetry != nil {
		edges = append(edges, runsummary.EdgeTelemetry)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RunSummaryMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case runsummary.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	case runsummary.EdgeNodeMetrics:
		ids := make([]ent.Value, 0, len(m.removednode_metrics))
		for id := range m.removednode_metrics {
			ids = append(ids, id)
		}
		return ids
	case runsummary.EdgeTelemetry:
		ids := make([]ent.Value, 0, len(m.removedtelemetry))
		for id := range m.removedtelemetry {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RunSummaryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedevents {
		edges = append(edges, runsummary.EdgeEvents)
	}
	if m.clearednode_metrics {
		edges = append(edges, runsummary.EdgeNodeMetrics)
	}
	if m.clearedtelemetry {
		edges = append(edges, runsummary.EdgeTelemetry)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RunSummaryMutation) EdgeCleared(name string) bool {
	switch name {
	case runsummary.EdgeEvents:
		return m.clearedevents
	case runsummary.EdgeNodeMetrics:
		return m.clearednode_metrics
	case runsummary.EdgeTelemetry:
		return m.clearedtelemetry
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RunSummaryMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown RunSummary unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RunSummaryMutation) ResetEdge(name string) error {
	switch name {
	case runsummary.EdgeEvents:
		m.ResetEvents()
		return nil
	case runsummary.EdgeNodeMetrics:
		m.ResetNodeMetrics()
		return nil
	case runsummary.EdgeTelemetry:
		m.ResetTelemetry()
		return nil
	}
	return fmt.Errorf("unknown RunSummary edge %s", name)
}

// RunTelemetryMutation represents an operation that mutates the RunTelemetry nodes in the graph.
type RunTelemetryMutation struct {
	config
	op             Op
	typ            string
	id             *int
	span_id        *string
	trace_id       *string
	parent_span_id *string
	name           *string
	status_code    *string
	status_message *string
	attributes     *map[string]interface{}
	started_at     *time.Time
	ended_at       *time.Time
	created_at     *time.Time
	clearedFields  map[string]struct{}
	run            *string
	clearedrun     bool
	done           bool
	oldValue       func(context.Context) (*RunTelemetry, error)
	predicates     []predicate.RunTelemetry
}

var _ ent.Mutation = (*RunTelemetryMutation)(nil)

// runtelemetryOption allows management of the mutation configuration using functional options.
type runtelemetryOption func(*RunTelemetryMutation)

// newRunTelemetryMutation creates new mutation for the RunTelemetry entity.
func newRunTelemetryMutation(c config, op Op, opts ...runtelemetryOption) *RunTelemetryMutation {
	m := &RunTelemetryMutation{
		config:        c,
		op:            op,
		typ:           TypeRunTelemetry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRunTelemetryID sets the ID field of the mutation.
func withRunTelemetryID(id int) runtelemetryOption {
	return func(m *RunTelemetryMutation) {
		var (
			err   error
			once  sync.Once
			value *RunTelemetry
		)
		m.oldValue = func(ctx context.Context) (*RunTelemetry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RunTelemetry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRunTelemetry sets the old RunTelemetry of the mutation.
func withRunTelemetry(node *RunTelemetry) runtelemetryOption {
	return func(m *RunTelemetryMutation) {
		m.oldValue = func(context.Context) (*RunTelemetry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RunTelemetryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RunTelemetryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RunTelemetryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RunTelemetryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RunTelemetry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *RunTelemetryMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *RunTelemetryMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the RunTelemetry entity.
// If the RunTelemetry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunTelemetryMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *RunTelemetryMutation) ResetRunID() {
	m.run = nil
}

// SetSpanID sets the "span_id" field.
func (m *RunTelemetryMutation) SetSpanID(s string) {
	m.span_id = &s
}

// SpanID returns the value of the "span_id" field in the mutation.
func (m *RunTelemetryMutation) SpanID() (r string, exists bool) {
	v := m.span_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSpanID returns the old "span_id" field's value of the RunTelemetry entity.
// If the RunTelemetry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunTelemetryMutation) OldSpanID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpanID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpanID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpanID: %w", err)
	}
	return oldValue.SpanID, nil
}

// ResetSpanID resets all changes to the "span_id" field.
func (m *RunTelemetryMutation) ResetSpanID() {
	m.span_id = nil
}

// SetTraceID sets the "trace_id" field.
func (m *RunTelemetryMutation) SetTraceID(s string) {
	m.trace_id = &s
}

// TraceID returns the value of the "trace_id" field in the mutation.
func (m *RunTelemetryMutation) TraceID() (r string, exists bool) {
	v := m.trace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTraceID returns the old "trace_id" field's value of the RunTelemetry entity.
// If the RunTelemetry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunTelemetryMutation) OldTraceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTraceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTraceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTraceID: %w", err)
	}
	return oldValue.TraceID, nil
}

// ResetTraceID resets all changes to the "trace_id" field.
func (m *RunTelemetryMutation) ResetTraceID() {
	m.trace_id = nil
}

// SetParentSpanID sets the "parent_span_id" field.
func (m *RunTelemetryMutation) SetParentSpanID(s string) {
	m.parent_span_id = &s
}

// ParentSpanID returns the value of the "parent_span_id" field in the mutation.
func (m *RunTelemetryMutation) ParentSpanID() (r string, exists bool) {
	v := m.parent_span_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentSpanID returns the old "parent_span_id" field's value of the RunTelemetry entity.
// If the RunTelemetry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunTelemetryMutation) OldParentSpanID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentSpanID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentSpanID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentSpanID: %w", err)
	}
	return oldValue.ParentSpanID, nil
}

// ClearParentSpanID clears the value of the "parent_span_id" field.
func (m *RunTelemetryMutation) ClearParentSpanID() {
	m.parent_span_id = nil
	m.clearedFields[runtelemetry.FieldParentSpanID] = struct{}{}
}

// ParentSpanIDCleared returns if the "parent_span_id" field was cleared in this mutation.
func (m *RunTelemetryMutation) ParentSpanIDCleared() bool {
	_, ok := m.clearedFields[runtelemetry.FieldParentSpanID]
	return ok
}

// ResetParentSpanID resets all changes to the "parent_span_id" field.
func (m *RunTelemetryMutation) ResetParentSpanID() {
	m.parent_span_id = nil
	delete(m.clearedFields, runtelemetry.FieldParentSpanID)
}

// SetName sets the "name" field.
func (m *RunTelemetryMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *RunTelemetryMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the RunTelemetry entity.
// If the RunTelemetry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunTelemetryMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *RunTelemetryMutation) ResetName() {
	m.name = nil
}

// SetStatusCode sets the "status_code" field.
func (m *RunTelemetryMutation) SetStatusCode(s string) {
	m.status_code = &s
}

// StatusCode returns the value of the "status_code" field in the mutation.
func (m *RunTelemetryMutation) StatusCode() (r string, exists bool) {
	v := m.status_code
	if v == nil {
		return
	}
	return *v, true
}

// OldStatusCode returns the old "status_code" field's value of the RunTelemetry entity.
// If the RunTelemetry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunTelemetryMutation) OldStatusCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatusCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatusCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatusCode: %w", err)
	}
	return oldValue.StatusCode, nil
}

// ClearStatusCode clears the value of the "status_code" field.
func (m *RunTelemetryMutation) ClearStatusCode() {
	m.status_code = nil
	m.clearedFields[runtelemetry.FieldStatusCode] = struct{}{}
}

// StatusCodeCleared returns if the "status_code" field was cleared in this mutation.
func (m *RunTelemetryMutation) StatusCodeCleared() bool {
	_, ok := m.clearedFields[runtelemetry.FieldStatusCode]
	return ok
}

// ResetStatusCode resets all changes to the "status_code" field.
func (m *RunTelemetryMutation) ResetStatusCode() {
	m.status_code = nil
	delete(m.clearedFields, runtelemetry.FieldStatusCode)
}

// SetStatusMessage sets the "status_message" field.
func (m *RunTelemetryMutation) SetStatusMessage(s string) {
	m.status_message = &s
}

// StatusMessage returns the value of the "status_message" field in the mutation.
func (m *RunTelemetryMutation) StatusMessage() (r string, exists bool) {
	v := m.status_message
	if v == nil {
		return
	}
	return *v, true
}

// OldStatusMessage returns the old "status_message" field's value of the RunTelemetry entity.
// If the RunTelemetry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunTelemetryMutation) OldStatusMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatusMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatusMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatusMessage: %w", err)
	}
	return oldValue.StatusMessage, nil
}

// ClearStatusMessage clears the value of the "status_message" field.
func (m *RunTelemetryMutation) ClearStatusMessage() {
	m.status_message = nil
	m.clearedFields[runtelemetry.FieldStatusMessage] = struct{}{}
}

// StatusMessageCleared returns if the "status_message" field was cleared in this mutation.
func (m *RunTelemetryMutation) StatusMessageCleared() bool {
	_, ok := m.clearedFields[runtelemetry.FieldStatusMessage]
	return ok
}

// ResetStatusMessage resets all changes to the "status_message" field.
func (m *RunTelemetryMutation) ResetStatusMessage() {
	m.status_message = nil
	delete(m.clearedFields, runtelemetry.FieldStatusMessage)
}

// SetAttributes sets the "attributes" field.
func (m *RunTelemetryMutation) SetAttributes(value map[string]interface{}) {
	m.attributes = &value
}

// Attributes returns the value of the "attributes" field in the mutation.
func (m *RunTelemetryMutation) Attributes() (r map[string]interface{}, exists bool) {
	v := m.attributes
	if v == nil {
		return
	}
	return *v, true
}

// OldAttributes returns the old "attributes" field's value of the RunTelemetry entity.
// If the RunTelemetry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunTelemetryMutation) OldAttributes(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttributes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttributes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttributes: %w", err)
	}
	return oldValue.Attributes, nil
}

// ClearAttributes clears the value of the "attributes" field.
func (m *RunTelemetryMutation) ClearAttributes() {
	m.attributes = nil
	m.clearedFields[runtelemetry.FieldAttributes] = struct{}{}
}

// AttributesCleared returns if the "attributes" field was cleared in this mutation.
func (m *RunTelemetryMutation) AttributesCleared() bool {
	_, ok := m.clearedFields[runtelemetry.FieldAttributes]
	return ok
}

// ResetAttributes resets all changes to the "attributes" field.
func (m *RunTelemetryMutation) ResetAttributes() {
	m.attributes = nil
	delete(m.clearedFields, runtelemetry.FieldAttributes)
}

// SetStartedAt sets the "started_at" field.
func (m *RunTelemetryMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *RunTelemetryMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the RunTelemetry entity.
// If the RunTelemetry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunTelemetryMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *RunTelemetryMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetEndedAt sets the "ended_at" field.
func (m *RunTelemetryMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *RunTelemetryMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the RunTelemetry entity.
// If the RunTelemetry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunTelemetryMutation) OldEndedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ClearEndedAt clears the value of the "ended_at" field.
func (m *RunTelemetryMutation) ClearEndedAt() {
	m.ended_at = nil
	m.clearedFields[runtelemetry.FieldEndedAt] = struct{}{}
}

// EndedAtCleared returns if the "ended_at" field was cleared in this mutation.
func (m *RunTelemetryMutation) EndedAtCleared() bool {
	_, ok := m.clearedFields[runtelemetry.FieldEndedAt]
	return ok
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *RunTelemetryMutation) ResetEndedAt() {
	m.ended_at = nil
	delete(m.clearedFields, runtelemetry.FieldEndedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *RunTelemetryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RunTelemetryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RunTelemetry entity.
// If the RunTelemetry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunTelemetryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RunTelemetryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRun clears the "run" edge to the RunSummary entity.
func (m *RunTelemetryMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[runtelemetry.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the RunSummary entity was cleared.
func (m *RunTelemetryMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *RunTelemetryMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *RunTelemetryMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the RunTelemetryMutation builder.
func (m *RunTelemetryMutation) Where(ps ...predicate.RunTelemetry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RunTelemetryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RunTelemetryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RunTelemetry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RunTelemetryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RunTelemetryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RunTelemetry).
func (m *RunTelemetryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RunTelemetryMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.run != nil {
		fields = append(fields, runtelemetry.FieldRunID)
	}
	if m.span_id != nil {
		fields = append(fields, runtelemetry.FieldSpanID)
	}
	if m.trace_id != nil {
		fields = append(fields, runtelemetry.FieldTraceID)
	}
	if m.parent_span_id != nil {
		fields = append(fields, runtelemetry.FieldParentSpanID)
	}
	if m.name != nil {
		fields = append(fields, runtelemetry.FieldName)
	}
	if m.status_code != nil {
		fields = append(fields, runtelemetry.FieldStatusCode)
	}
	if m.status_message != nil {
		fields = append(fields, runtelemetry.FieldStatusMessage)
	}
	if m.attributes != nil {
		fields = append(fields, runtelemetry.FieldAttributes)
	}
	if m.started_at != nil {
		fields = append(fields, runtelemetry.FieldStartedAt)
	}
	if m.ended_at != nil {
		fields = append(fields, runtelemetry.FieldEndedAt)
	}
	if m.created_at != nil {
		fields = append(fields, runtelemetry.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RunTelemetryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case runtelemetry.FieldRunID:
		return m.RunID()
	case runtelemetry.FieldSpanID:
		return m.SpanID()
	case runtelemetry.FieldTraceID:
		return m.TraceID()
	case runtelemetry.FieldParentSpanID:
		return m.ParentSpanID()
	case runtelemetry.FieldName:
		return m.Name()
	case runtelemetry.FieldStatusCode:
		return m.StatusCode()
	case runtelemetry.FieldStatusMessage:
		return m.StatusMessage()
	case runtelemetry.FieldAttributes:
		return m.Attributes()
	case runtelemetry.FieldStartedAt:
		return m.StartedAt()
	case runtelemetry.FieldEndedAt:
		return m.EndedAt()
	case runtelemetry.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RunTelemetryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case runtelemetry.FieldRunID:
		return m.OldRunID(ctx)
	case runtelemetry.FieldSpanID:
		return m.OldSpanID(ctx)
	case runtelemetry.FieldTraceID:
		return m.OldTraceID(ctx)
	case runtelemetry.FieldParentSpanID:
		return m.OldParentSpanID(ctx)
	case runtelemetry.FieldName:
		return m.OldName(ctx)
	case runtelemetry.FieldStatusCode:
		return m.OldStatusCode(ctx)
	case runtelemetry.FieldStatusMessage:
		return m.OldStatusMessage(ctx)
	case runtelemetry.FieldAttributes:
		return m.OldAttributes(ctx)
	case runtelemetry.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case runtelemetry.FieldEndedAt:
		return m.OldEndedAt(ctx)
	case runtelemetry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RunTelemetry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunTelemetryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case runtelemetry.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case runtelemetry.FieldSpanID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpanID(v)
		return nil
	case runtelemetry.FieldTraceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTraceID(v)
		return nil
	case runtelemetry.FieldParentSpanID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentSpanID(v)
		return nil
	case runtelemetry.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case runtelemetry.FieldStatusCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatusCode(v)
		return nil
	case runtelemetry.FieldStatusMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatusMessage(v)
		return nil
	case runtelemetry.FieldAttributes:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttributes(v)
		return nil
	case runtelemetry.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case runtelemetry.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	case runtelemetry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RunTelemetry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RunTelemetryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RunTelemetryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunTelemetryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown RunTelemetry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RunTelemetryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(runtelemetry.FieldParentSpanID) {
		fields = append(fields, runtelemetry.FieldParentSpanID)
	}
	if m.FieldCleared(runtelemetry.FieldStatusCode) {
		fields = append(fields, runtelemetry.FieldStatusCode)
	}
	if m.FieldCleared(runtelemetry.FieldStatusMessage) {
		fields = append(fields, runtelemetry.FieldStatusMessage)
	}
	if m.FieldCleared(runtelemetry.FieldAttributes) {
		fields = append(fields, runtelemetry.FieldAttributes)
	}
	if m.FieldCleared(runtelemetry.FieldEndedAt) {
		fields = append(fields, runtelemetry.FieldEndedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RunTelemetryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RunTelemetryMutation) ClearField(name string) error {
	switch name {
	case runtelemetry.FieldParentSpanID:
		m.ClearParentSpanID()
		return nil
	case runtelemetry.FieldStatusCode:
		m.ClearStatusCode()
		return nil
	case runtelemetry.FieldStatusMessage:
		m.ClearStatusMessage()
		return nil
	case runtelemetry.FieldAttributes:
		m.ClearAttributes()
		return nil
	case runtelemetry.FieldEndedAt:
		m.ClearEndedAt()
		return nil
	}
	return fmt.Errorf("unknown RunTelemetry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RunTelemetryMutation) ResetField(name string) error {
	switch name {
	case runtelemetry.FieldRunID:
		m.ResetRunID()
		return nil
	case runtelemetry.FieldSpanID:
		m.ResetSpanID()
		return nil
	case runtelemetry.FieldTraceID:
		m.ResetTraceID()
		return nil
	case runtelemetry.FieldParentSpanID:
		m.ResetParentSpanID()
		return nil
	case runtelemetry.FieldName:
		m.ResetName()
		return nil
	case runtelemetry.FieldStatusCode:
		m.ResetStatusCode()
		return nil
	case runtelemetry.FieldStatusMessage:
		m.ResetStatusMessage()
		return nil
	case runtelemetry.FieldAttributes:
		m.ResetAttributes()
		return nil
	case runtelemetry.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case runtelemetry.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	case runtelemetry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown RunTelemetry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RunTelemetryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, runtelemetry.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RunTelemetryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case runtelemetry.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RunTelemetryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RunTelemetryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RunTelemetryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, runtelemetry.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RunTelemetryMutation) EdgeCleared(name string) bool {
	switch name {
	case runtelemetry.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RunTelemetryMutation) ClearEdge(name string) error {
	switch name {
	case runtelemetry.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown RunTelemetry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RunTelemetryMutation) ResetEdge(name string) error {
	switch name {
	case runtelemetry.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown RunTelemetry edge %s", name)
}
