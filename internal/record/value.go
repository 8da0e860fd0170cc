// Package record renders a structured dosage record (an arbitrary JSON tree)
// as nested labeled HTML sections.
package record

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// Kind discriminates the closed set of JSON value shapes.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindList
	KindObject
)

// Entry is one key/value pair of an object, in source order.
type Entry struct {
	Key   string
	Value Value
}

// Value is a decoded JSON value. Exactly one of the payload fields is
// meaningful, selected by Kind. Objects keep their entries in document
// order, which encoding/json maps would lose.
type Value struct {
	Kind    Kind
	Bool    bool
	Number  json.Number
	Str     string
	Items   []Value
	Entries []Entry
}

// Scalar reports whether the value is not a container.
func (v Value) Scalar() bool {
	return v.Kind != KindList && v.Kind != KindObject
}

// ScalarString renders a scalar value the way it appeared in the source:
// numbers keep their original text, booleans become true/false, null is
// empty.
func (v Value) ScalarString() string {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindNumber:
		return v.Number.String()
	case KindBool:
		return strconv.FormatBool(v.Bool)
	default:
		return ""
	}
}

// Decode reads a single JSON value, preserving object key order.
func Decode(r io.Reader) (Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return Value{}, err
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	return valueFromToken(dec, tok)
}

func valueFromToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case nil:
		return Value{Kind: KindNull}, nil
	case bool:
		return Value{Kind: KindBool, Bool: t}, nil
	case json.Number:
		return Value{Kind: KindNumber, Number: t}, nil
	case string:
		return Value{Kind: KindString, Str: t}, nil
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeList(dec)
		}
	}
	return Value{}, fmt.Errorf("unexpected token %v", tok)
}

func decodeObject(dec *json.Decoder) (Value, error) {
	obj := Value{Kind: KindObject}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return Value{}, fmt.Errorf("object key is not a string: %v", keyTok)
		}
		val, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}
		obj.Entries = append(obj.Entries, Entry{Key: key, Value: val})
	}
	// Consume the closing '}'.
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return obj, nil
}

func decodeList(dec *json.Decoder) (Value, error) {
	list := Value{Kind: KindList}
	for dec.More() {
		item, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}
		list.Items = append(list.Items, item)
	}
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return list, nil
}
