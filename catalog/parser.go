package catalog

import (
	"encoding/json"
	"errors"
	"math"

	"github.com/buger/jsonparser"
	"github.com/samber/mo"
)

// Source field names.
const (
	fieldTitle     = "title"
	fieldYear      = "year"
	fieldDuration  = "duration"
	fieldCreatedAt = "created_at"
)

// Parse converts a raw JSON catalog into movies. The document is either an
// array of entries or an object whose member values are entries; both are read
// in document order.
//
// Parsing is all-or-nothing: if any entry lacks a string title or an integer
// duration the whole catalog is rejected. Missing or mistyped year and
// created_at fields are simply absent.
func Parse(raw []byte) (Catalog, error) {
	if !json.Valid(raw) {
		return nil, &ParseError{Index: -1, Reason: "invalid JSON"}
	}

	root, rootType, _, err := jsonparser.Get(raw)
	if err != nil {
		return nil, &ParseError{Index: -1, Reason: err.Error()}
	}

	movies := make(Catalog, 0)
	var parseErr error

	switch rootType {
	case jsonparser.Array:
		index := 0
		_, err = jsonparser.ArrayEach(root, func(value []byte, dataType jsonparser.ValueType, _ int, _ error) {
			if parseErr != nil {
				return
			}
			movie, err := parseEntry(value, dataType)
			if err != nil {
				err.Index = index
				parseErr = err
				return
			}
			movies = append(movies, movie)
			index++
		})
	case jsonparser.Object:
		index := 0
		err = jsonparser.ObjectEach(root, func(key, value []byte, dataType jsonparser.ValueType, _ int) error {
			movie, err := parseEntry(value, dataType)
			if err != nil {
				err.Index = index
				err.Key = string(key)
				return err
			}
			movies = append(movies, movie)
			index++
			return nil
		})
	default:
		return nil, &ParseError{Index: -1, Reason: "catalog must be a JSON array or object"}
	}

	if parseErr != nil {
		return nil, parseErr
	}
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			return nil, pe
		}
		return nil, &ParseError{Index: -1, Reason: err.Error()}
	}

	return movies, nil
}

// parseEntry builds one movie. The returned error has no position set.
func parseEntry(value []byte, dataType jsonparser.ValueType) (Movie, *ParseError) {
	if dataType != jsonparser.Object {
		return Movie{}, &ParseError{Reason: "entry is not an object"}
	}

	fields, err := entryFields(value)
	if err != nil {
		return Movie{}, &ParseError{Reason: err.Error()}
	}

	title, ok := fields.stringField(fieldTitle)
	if !ok {
		return Movie{}, &ParseError{Field: fieldTitle, Reason: "missing or not a string"}
	}

	duration, ok := fields.intField(fieldDuration)
	if !ok {
		return Movie{}, &ParseError{Field: fieldDuration, Reason: "missing or not an integer"}
	}

	year := mo.None[int]()
	if y, ok := fields.intField(fieldYear); ok {
		year = mo.Some(int(y))
	}

	uploadDate := mo.None[string]()
	if d, ok := fields.stringField(fieldCreatedAt); ok {
		uploadDate = mo.Some(d)
	}

	return NewMovie(title, year, duration, uploadDate), nil
}

// rawField is a member value as found in the entry
type rawField struct {
	value    []byte
	dataType jsonparser.ValueType
}

// fieldSet holds the consumed members of one entry. A repeated member keeps
// its last value, as encoding/json does.
type fieldSet map[string]rawField

func entryFields(obj []byte) (fieldSet, error) {
	fields := make(fieldSet, 4)
	err := jsonparser.ObjectEach(obj, func(key, value []byte, dataType jsonparser.ValueType, _ int) error {
		switch name := string(key); name {
		case fieldTitle, fieldYear, fieldDuration, fieldCreatedAt:
			fields[name] = rawField{value: value, dataType: dataType}
		}
		return nil
	})
	return fields, err
}

// stringField reads key as a JSON string
func (f fieldSet) stringField(key string) (string, bool) {
	field, ok := f[key]
	if !ok || field.dataType != jsonparser.String {
		return "", false
	}
	s, err := jsonparser.ParseString(field.value)
	if err != nil {
		return "", false
	}
	return s, true
}

// intField reads key as a JSON integer. Whole numbers written with a fraction
// or exponent (5857856.0, 1e3) count; 1.5 does not.
func (f fieldSet) intField(key string) (int64, bool) {
	field, ok := f[key]
	if !ok || field.dataType != jsonparser.Number {
		return 0, false
	}
	if n, err := jsonparser.ParseInt(field.value); err == nil {
		return n, true
	}
	v, err := jsonparser.ParseFloat(field.value)
	if err != nil || v != math.Trunc(v) || v < math.MinInt64 || v >= math.MaxInt64 {
		return 0, false
	}
	return int64(v), true
}
