// Copyright 2020 DataStax
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package message

import (
	"fmt"

	"github.com/cassandra-proto/cqlproto/primitive"
)

// EventType is the string discriminant that selects an EVENT message's variant.
type EventType string

const (
	EventTypeTopologyChange = EventType("TOPOLOGY_CHANGE")
	EventTypeStatusChange   = EventType("STATUS_CHANGE")
	EventTypeSchemaChange   = EventType("SCHEMA_CHANGE")
)

// Event is implemented by every EVENT message variant. These are unsolicited: the server sends them
// on the broadcast stream id (-1) after a REGISTER, and package client routes them to Connection.Events
// rather than to any pending caller.
type Event interface {
	Message
	GetEventType() EventType
}

// StatusChangeEvent reports a node's liveness changing (ChangeType "UP" or "DOWN"). Address is the
// [inet] of the affected node.
type StatusChangeEvent struct {
	ChangeType string
	Address    *primitive.Inet
}

func (m *StatusChangeEvent) IsResponse() bool            { return true }
func (m *StatusChangeEvent) GetOpCode() primitive.OpCode { return primitive.OpCodeEvent }
func (m *StatusChangeEvent) GetEventType() EventType     { return EventTypeStatusChange }
func (m *StatusChangeEvent) String() string {
	return fmt.Sprintf("EVENT STATUS_CHANGE (type=%v address=%v)", m.ChangeType, m.Address)
}

// TopologyChangeEvent reports a node joining, leaving, or moving (ChangeType "NEW_NODE",
// "REMOVED_NODE", or "MOVED_NODE"). Address is the [inet] of the affected node.
type TopologyChangeEvent struct {
	ChangeType string
	Address    *primitive.Inet
}

func (m *TopologyChangeEvent) IsResponse() bool            { return true }
func (m *TopologyChangeEvent) GetOpCode() primitive.OpCode { return primitive.OpCodeEvent }
func (m *TopologyChangeEvent) GetEventType() EventType     { return EventTypeTopologyChange }
func (m *TopologyChangeEvent) String() string {
	return fmt.Sprintf("EVENT TOPOLOGY_CHANGE (type=%v address=%v)", m.ChangeType, m.Address)
}

// SchemaChangeEvent reports a schema object changing. Object and Arguments are only populated for
// the Target values that carry them (see decodeSchemaChangeEvent).
type SchemaChangeEvent struct {
	ChangeType string
	Target     string
	Keyspace   string
	Object     string
	Arguments  primitive.StringList
}

func (m *SchemaChangeEvent) IsResponse() bool            { return true }
func (m *SchemaChangeEvent) GetOpCode() primitive.OpCode { return primitive.OpCodeEvent }
func (m *SchemaChangeEvent) GetEventType() EventType     { return EventTypeSchemaChange }
func (m *SchemaChangeEvent) String() string {
	return fmt.Sprintf("EVENT SCHEMA_CHANGE (type=%v target=%v keyspace=%v object=%v args=%v)",
		m.ChangeType, m.Target, m.Keyspace, m.Object, m.Arguments)
}

const (
	schemaChangeTargetKeyspace   = "KEYSPACE"
	schemaChangeTargetTable      = "TABLE"
	schemaChangeTargetType       = "TYPE"
	schemaChangeTargetAggregate  = "AGGREGATE"
	schemaChangeTargetFunction   = "FUNCTION"
)

type eventCodec struct{}

func (c *eventCodec) Encode(msg Message, dest []byte) ([]byte, error) {
	event, ok := msg.(Event)
	if !ok {
		return dest, fmt.Errorf("expected message.Event, got %T", msg)
	}
	dest = primitive.WriteString(string(event.GetEventType()), dest)
	switch e := event.(type) {
	case *StatusChangeEvent:
		dest = primitive.WriteString(e.ChangeType, dest)
		return primitive.WriteInet(e.Address, dest), nil
	case *TopologyChangeEvent:
		dest = primitive.WriteString(e.ChangeType, dest)
		return primitive.WriteInet(e.Address, dest), nil
	case *SchemaChangeEvent:
		dest = primitive.WriteString(e.ChangeType, dest)
		dest = primitive.WriteString(e.Target, dest)
		dest = primitive.WriteString(e.Keyspace, dest)
		switch e.Target {
		case schemaChangeTargetTable, schemaChangeTargetType:
			dest = primitive.WriteString(e.Object, dest)
		case schemaChangeTargetAggregate, schemaChangeTargetFunction:
			dest = primitive.WriteString(e.Object, dest)
			dest = primitive.WriteStringList(e.Arguments, dest)
		}
		return dest, nil
	default:
		return dest, fmt.Errorf("unknown EVENT variant %T", msg)
	}
}

func (c *eventCodec) EncodedLength(msg Message) (int, error) {
	event, ok := msg.(Event)
	if !ok {
		return -1, fmt.Errorf("expected message.Event, got %T", msg)
	}
	length := primitive.LengthOfString(string(event.GetEventType()))
	switch e := event.(type) {
	case *StatusChangeEvent:
		return length + primitive.LengthOfString(e.ChangeType) + primitive.LengthOfInet(e.Address), nil
	case *TopologyChangeEvent:
		return length + primitive.LengthOfString(e.ChangeType) + primitive.LengthOfInet(e.Address), nil
	case *SchemaChangeEvent:
		length += primitive.LengthOfString(e.ChangeType)
		length += primitive.LengthOfString(e.Target)
		length += primitive.LengthOfString(e.Keyspace)
		switch e.Target {
		case schemaChangeTargetTable, schemaChangeTargetType:
			length += primitive.LengthOfString(e.Object)
		case schemaChangeTargetAggregate, schemaChangeTargetFunction:
			length += primitive.LengthOfString(e.Object)
			length += primitive.LengthOfStringList(e.Arguments)
		}
		return length, nil
	default:
		return -1, fmt.Errorf("unknown EVENT variant %T", msg)
	}
}

func (c *eventCodec) Decode(body []byte) (Message, int, error) {
	eventType, remaining, err := primitive.ReadString(body)
	if err != nil {
		return nil, 0, err
	}
	switch EventType(eventType) {
	case EventTypeStatusChange:
		changeType, rest, err := primitive.ReadString(remaining)
		if err != nil {
			return nil, 0, err
		}
		addr, rest, err := primitive.ReadInet(rest)
		if err != nil {
			return nil, 0, err
		}
		return &StatusChangeEvent{ChangeType: changeType, Address: addr}, len(body) - len(rest), nil
	case EventTypeTopologyChange:
		changeType, rest, err := primitive.ReadString(remaining)
		if err != nil {
			return nil, 0, err
		}
		addr, rest, err := primitive.ReadInet(rest)
		if err != nil {
			return nil, 0, err
		}
		return &TopologyChangeEvent{ChangeType: changeType, Address: addr}, len(body) - len(rest), nil
	case EventTypeSchemaChange:
		return decodeSchemaChangeEvent(body, remaining)
	default:
		return nil, 0, &primitive.InvalidError{What: "[event type]", Reason: fmt.Sprintf("unknown EVENT type %q", eventType)}
	}
}

// decodeSchemaChangeEvent reads the body following the already-consumed EVENT type string. remaining
// is body with that string stripped; body itself is needed only to compute the bytes-consumed count.
func decodeSchemaChangeEvent(body []byte, remaining []byte) (Message, int, error) {
	changeType, rest, err := primitive.ReadString(remaining)
	if err != nil {
		return nil, 0, err
	}
	target, rest, err := primitive.ReadString(rest)
	if err != nil {
		return nil, 0, err
	}
	keyspace, rest, err := primitive.ReadString(rest)
	if err != nil {
		return nil, 0, err
	}
	sce := &SchemaChangeEvent{ChangeType: changeType, Target: target, Keyspace: keyspace}
	switch target {
	case schemaChangeTargetTable, schemaChangeTargetType:
		if sce.Object, rest, err = primitive.ReadString(rest); err != nil {
			return nil, 0, err
		}
	case schemaChangeTargetAggregate, schemaChangeTargetFunction:
		if sce.Object, rest, err = primitive.ReadString(rest); err != nil {
			return nil, 0, err
		}
		if sce.Arguments, rest, err = primitive.ReadStringList(rest); err != nil {
			return nil, 0, err
		}
	case schemaChangeTargetKeyspace:
	default:
		return nil, 0, &primitive.InvalidError{What: "[schema change target]", Reason: fmt.Sprintf("unknown target %q", target)}
	}
	return sce, len(body) - len(rest), nil
}

func (c *eventCodec) GetOpCode() primitive.OpCode { return primitive.OpCodeEvent }

func init() { register(&eventCodec{}) }
