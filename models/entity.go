// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Reserved JSON keys of the backend entity envelope.
const (
	IDField       = "_id"
	MetadataField = "_kmd"
	ACLField      = "_acl"
)

// TempIDPrefix marks ids generated on the device for entities that the
// backend has never acknowledged.
const TempIDPrefix = "temp_"

// Entity is a single record of a remote collection as it is kept in the
// local cache and exchanged with the backend.
//
// On the wire an entity is a flat JSON object: the user fields live at the
// top level next to the reserved "_id", "_kmd" and "_acl" keys.
type Entity struct {
	// ID is unique within the collection. It is either assigned by the
	// caller, generated on the device (see TempIDPrefix) or assigned by the
	// backend on create. Once assigned it never changes.
	ID string

	// Fields holds the user-defined attributes of the entity.
	Fields map[string]any

	// Metadata is maintained by the backend and is read-only for clients.
	Metadata Metadata

	// ACL is the access-control list of the entity, nil when the backend
	// did not send one.
	ACL *ACL
}

// Metadata carries backend-maintained bookkeeping of an entity.
type Metadata struct {
	// LastModified is the server-side last modification time ("lmt").
	LastModified string `json:"lmt,omitempty"`
	// EntityCreated is the server-side creation time ("ect").
	EntityCreated string `json:"ect,omitempty"`
}

// IsZero reports whether no metadata was received.
func (m Metadata) IsZero() bool {
	return m.LastModified == "" && m.EntityCreated == ""
}

// ACL is the access-control list attached to an entity.
type ACL struct {
	Creator     string   `json:"creator,omitempty"`
	Readers     []string `json:"r,omitempty"`
	Writers     []string `json:"w,omitempty"`
	GlobalRead  *bool    `json:"gr,omitempty"`
	GlobalWrite *bool    `json:"gw,omitempty"`
}

// NewEntity returns an entity with the given id and a copy of fields.
func NewEntity(id string, fields map[string]any) Entity {
	e := Entity{ID: id, Fields: make(map[string]any, len(fields))}
	for k, v := range fields {
		e.Fields[k] = v
	}
	return e
}

// IsTempID reports whether id was generated on the device.
func IsTempID(id string) bool {
	return strings.HasPrefix(id, TempIDPrefix)
}

// HasTempID reports whether the entity carries a device-generated id.
func (e Entity) HasTempID() bool {
	return IsTempID(e.ID)
}

// Clone returns a copy of e that shares no maps or slices with it.
func (e Entity) Clone() Entity {
	out := Entity{ID: e.ID, Metadata: e.Metadata}
	if e.Fields != nil {
		out.Fields = make(map[string]any, len(e.Fields))
		for k, v := range e.Fields {
			out.Fields[k] = v
		}
	}
	if e.ACL != nil {
		acl := *e.ACL
		acl.Readers = append([]string(nil), e.ACL.Readers...)
		acl.Writers = append([]string(nil), e.ACL.Writers...)
		out.ACL = &acl
	}
	return out
}

// Value resolves a field path against the entity. Dots descend into nested
// objects. The reserved paths "_id", "_kmd.lmt" and "_kmd.ect" resolve to
// the typed fields of the entity.
func (e Entity) Value(path string) (any, bool) {
	switch path {
	case IDField:
		return e.ID, e.ID != ""
	case MetadataField + ".lmt":
		return e.Metadata.LastModified, e.Metadata.LastModified != ""
	case MetadataField + ".ect":
		return e.Metadata.EntityCreated, e.Metadata.EntityCreated != ""
	}

	var cur any = e.Fields
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		if cur, ok = obj[part]; !ok {
			return nil, false
		}
	}
	return cur, true
}

// MarshalJSON encodes the entity as a flat backend envelope.
func (e Entity) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(e.Fields)+3)
	for k, v := range e.Fields {
		out[k] = v
	}
	if e.ID != "" {
		out[IDField] = e.ID
	}
	if !e.Metadata.IsZero() {
		out[MetadataField] = e.Metadata
	}
	if e.ACL != nil {
		out[ACLField] = e.ACL
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a flat backend envelope.
func (e *Entity) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("decode entity: %w", err)
	}

	decoded := Entity{Fields: make(map[string]any, len(raw))}
	for key, value := range raw {
		switch key {
		case IDField:
			if err := json.Unmarshal(value, &decoded.ID); err != nil {
				return fmt.Errorf("decode entity id: %w", err)
			}
		case MetadataField:
			if err := json.Unmarshal(value, &decoded.Metadata); err != nil {
				return fmt.Errorf("decode entity metadata: %w", err)
			}
		case ACLField:
			var acl ACL
			if err := json.Unmarshal(value, &acl); err != nil {
				return fmt.Errorf("decode entity acl: %w", err)
			}
			decoded.ACL = &acl
		default:
			v, err := decodeValue(value)
			if err != nil {
				return fmt.Errorf("decode entity field %q: %w", key, err)
			}
			decoded.Fields[key] = v
		}
	}

	*e = decoded
	return nil
}

// decodeValue decodes a user field. Integral numbers that fit into an int64
// come back as int64, every other number as float64.
func decodeValue(raw json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return normalizeNumbers(v), nil
}

func normalizeNumbers(v any) any {
	switch value := v.(type) {
	case json.Number:
		if n, err := value.Int64(); err == nil {
			return n
		}
		f, _ := value.Float64()
		return f
	case map[string]any:
		for k, item := range value {
			value[k] = normalizeNumbers(item)
		}
	case []any:
		for i, item := range value {
			value[i] = normalizeNumbers(item)
		}
	}
	return v
}
