package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// OrderedMap is a string-to-string map that remembers insertion order.
// The export column merge depends on the order keys were first seen in the
// source JSON, which a plain map cannot provide.
type OrderedMap struct {
	keys   []string
	values map[string]string
}

// Set adds or replaces a key. A replaced key keeps its original position.
func (m *OrderedMap) Set(key, value string) {
	if m.values == nil {
		m.values = make(map[string]string)
	}
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get looks up a key.
func (m *OrderedMap) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the keys in insertion order. The slice is a copy.
func (m *OrderedMap) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of keys.
func (m *OrderedMap) Len() int {
	return len(m.keys)
}

// UnmarshalJSON walks the object token by token so key order survives.
// Non-string scalar values are stringified; null becomes the empty string.
func (m *OrderedMap) UnmarshalJSON(data []byte) error {
	*m = OrderedMap{}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("ordered map: expected object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("ordered map: non-string key %v", keyTok)
		}

		valTok, err := dec.Token()
		if err != nil {
			return err
		}
		switch v := valTok.(type) {
		case string:
			m.Set(key, v)
		case json.Number:
			m.Set(key, v.String())
		case bool:
			m.Set(key, strconv.FormatBool(v))
		case nil:
			m.Set(key, "")
		default:
			return fmt.Errorf("ordered map: unsupported value for %q", key)
		}
	}

	// Closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// MarshalJSON emits the entries in insertion order.
func (m OrderedMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(m.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
