package parsebench

import (
	"bytes"
	"fmt"
)

// jsonBytesPerRecord is the approximate serialized size of one record, used
// to size generated payloads.
const jsonBytesPerRecord = 120

// JSONRecord mirrors one object of the synthetic dataset.
type JSONRecord struct {
	ID     int
	Name   string
	Value  float64
	Active bool
}

// GenerateJSON produces roughly sizeMB megabytes of synthetic JSON: an array
// of {id, name, value, active} objects. The content is a pure function of the
// target size.
func GenerateJSON(sizeMB int) ([]byte, error) {
	if sizeMB <= 0 {
		return nil, ErrInvalidSize
	}

	records := sizeMB * 1024 * 1024 / jsonBytesPerRecord

	var buf bytes.Buffer
	buf.Grow(sizeMB*1024*1024 + 1024)
	buf.WriteString("[\n")

	for i := 0; i < records; i++ {
		if i > 0 {
			buf.WriteString(",\n")
		}

		active := "false"
		if i%2 == 0 {
			active = "true"
		}

		fmt.Fprintf(&buf,
			"  {\n    \"id\": %d,\n    \"name\": \"Record_%d\",\n    \"value\": %.5f,\n    \"active\": %s\n  }",
			i+1, i+1, float64(i+1)*3.14159, active)
	}

	buf.WriteString("\n]")

	return buf.Bytes(), nil
}

type jsonState int

const (
	stateOutside jsonState = iota
	stateInArray
	stateInObject
	stateReadingKey
	stateExpectingColon
	stateReadingValue
)

// ParseJSON walks the data with a hand-rolled state machine tuned to the
// generated record shape. Like the CSV side, the parser itself is the
// measured workload, so encoding/json is deliberately not used. Objects with
// a positive id become records; unknown keys are ignored.
func ParseJSON(data []byte) []JSONRecord {
	var records []JSONRecord

	var current JSONRecord
	state := stateOutside

	var key, value []byte
	inString := false
	escapeNext := false

	storeValue := func() {
		switch string(key) {
		case "id":
			current.ID = parseInt(value)
		case "value":
			current.Value = parseFloat(value)
		case "active":
			current.Active = bytes.Equal(value, []byte("true"))
		}
		key = key[:0]
		value = value[:0]
	}

	for i := 0; i < len(data); i++ {
		c := data[i]

		if escapeNext {
			escapeNext = false
			if state == stateReadingKey {
				key = append(key, c)
			} else if state == stateReadingValue {
				value = append(value, c)
			}
			continue
		}

		if c == '\\' && inString {
			escapeNext = true
			continue
		}

		if c == '"' {
			inString = !inString
			if !inString {
				if state == stateReadingKey {
					state = stateExpectingColon
				} else if state == stateReadingValue {
					if string(key) == "name" {
						current.Name = string(value)
					}
					key = key[:0]
					value = value[:0]
					state = stateInObject
				}
			} else {
				if state == stateInObject {
					state = stateReadingKey
				} else if state == stateExpectingColon {
					state = stateReadingValue
				}
			}
			continue
		}

		if inString {
			if state == stateReadingKey {
				key = append(key, c)
			} else if state == stateReadingValue {
				value = append(value, c)
			}
			continue
		}

		if c == ' ' || c == '\n' || c == '\t' || c == '\r' {
			continue
		}

		switch c {
		case '[':
			state = stateInArray
		case '{':
			state = stateInObject
			current = JSONRecord{}
		case '}':
			if len(key) > 0 || len(value) > 0 {
				storeValue()
			}
			state = stateInArray
			if current.ID > 0 {
				records = append(records, current)
				current = JSONRecord{}
			}
		case ']':
			state = stateOutside
		case ':':
			if state == stateExpectingColon {
				state = stateReadingValue
				value = value[:0]
			}
		case ',':
			if len(key) > 0 || len(value) > 0 {
				storeValue()
			}
			if state == stateReadingValue {
				state = stateInObject
			}
		default:
			if state == stateReadingValue {
				value = append(value, c)
			}
		}
	}

	return records
}
