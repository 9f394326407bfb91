package tsconfig

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Document is a JSON object that remembers the order of its keys and keeps
// each value as raw JSON.
type Document struct {
	keys   []string
	values map[string]json.RawMessage
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{values: make(map[string]json.RawMessage)}
}

// ParseDocument decodes a JSON object. A repeated key keeps its first
// position and its last value.
func ParseDocument(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("document is not a JSON object")
	}

	doc := NewDocument()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("reading key: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("reading value of %q: %w", key, err)
		}
		doc.setRaw(key, value)
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("reading document end: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after document")
	}
	return doc, nil
}

// Keys returns the document keys in order.
func (d *Document) Keys() []string {
	return append([]string(nil), d.keys...)
}

// Get returns the raw value stored under key.
func (d *Document) Get(key string) (json.RawMessage, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Set stores v under key. A new key is appended after the existing ones.
func (d *Document) Set(key string, v interface{}) error {
	raw, err := marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %q: %w", key, err)
	}
	d.setRaw(key, raw)
	return nil
}

func (d *Document) setRaw(key string, raw json.RawMessage) {
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = raw
}

// MarshalIndent renders the document with two-space indentation and a
// trailing newline.
func (d *Document) MarshalIndent() ([]byte, error) {
	var compact bytes.Buffer
	compact.WriteByte('{')
	for i, key := range d.keys {
		if i > 0 {
			compact.WriteByte(',')
		}
		k, err := marshal(key)
		if err != nil {
			return nil, err
		}
		compact.Write(k)
		compact.WriteByte(':')
		compact.Write(d.values[key])
	}
	compact.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return nil, fmt.Errorf("formatting document: %w", err)
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// marshal encodes v without HTML escaping and without a trailing newline.
func marshal(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
