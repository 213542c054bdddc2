package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DocumentInfo describes the analyzed document itself.
type DocumentInfo struct {
	Type        string  `json:"type"`
	Confidence  float64 `json:"confidence"`
	Length      int     `json:"length"`
	ProcessedAt string  `json:"processed_at"`
}

// Clause is one extracted clause and the model's confidence in it.
type Clause struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

// EntityGroup holds the entities found for one category label.
type EntityGroup struct {
	Label string
	Items []string
}

// EntityGroups is the entities mapping with its original key order kept.
// The service emits a JSON object; Go maps would lose the order the
// categories were produced in, so the object is decoded token by token.
type EntityGroups []EntityGroup

// ClauseGroup holds one clause category.
type ClauseGroup struct {
	Label  string
	Clause Clause
}

// ClauseGroups is the key_clauses mapping with its original key order kept.
type ClauseGroups []ClauseGroup

// Result is the structured output of document analysis. Every key is
// optional and independent; rendering is driven per key.
type Result struct {
	DocumentInfo *DocumentInfo `json:"document_info,omitempty"`
	Entities     EntityGroups  `json:"entities,omitempty"`
	KeyClauses   ClauseGroups  `json:"key_clauses,omitempty"`
	Summary      *string       `json:"summary,omitempty"`
}

type orderedEntry[T any] struct {
	key   string
	value T
}

// decodeOrdered reads a JSON object keeping key order. A present-but-empty
// object yields an empty non-nil slice so callers can tell it from an
// absent key.
func decodeOrdered[T any](data []byte) ([]orderedEntry[T], error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("expected JSON object, got %v", tok)
	}

	out := make([]orderedEntry[T], 0)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", keyTok)
		}

		var value T
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		out = append(out, orderedEntry[T]{key: key, value: value})
	}
	return out, nil
}

func (g *EntityGroups) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*g = nil
		return nil
	}
	entries, err := decodeOrdered[[]string](data)
	if err != nil {
		return err
	}
	groups := make(EntityGroups, 0, len(entries))
	for _, e := range entries {
		groups = append(groups, EntityGroup{Label: e.key, Items: e.value})
	}
	*g = groups
	return nil
}

func (g EntityGroups) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, grp := range g {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(grp.Label)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		items := grp.Items
		if items == nil {
			items = []string{}
		}
		value, err := json.Marshal(items)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (g *ClauseGroups) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*g = nil
		return nil
	}
	entries, err := decodeOrdered[Clause](data)
	if err != nil {
		return err
	}
	groups := make(ClauseGroups, 0, len(entries))
	for _, e := range entries {
		groups = append(groups, ClauseGroup{Label: e.key, Clause: e.value})
	}
	*g = groups
	return nil
}

func (g ClauseGroups) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, grp := range g {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(grp.Label)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		value, err := json.Marshal(grp.Clause)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
