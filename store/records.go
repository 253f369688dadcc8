package store

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
)

// settingsRowID is the id of the single settings row in the remote table.
const settingsRowID = "1"

// record is one remote row: a collection element with its position.
type record struct {
	ID    string
	Order int
	Data  []byte
}

// splitRecords breaks a collection payload into rows. Array collections are
// keyed by each element's "id"; the settings singleton becomes one row.
func splitRecords(key Key, payload []byte) ([]record, error) {
	if key == KeySettings {
		if !json.Valid(payload) {
			return nil, fmt.Errorf("%s: invalid json", key)
		}
		return []record{{ID: settingsRowID, Data: payload}}, nil
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(payload, &elems); err != nil {
		return nil, fmt.Errorf("%s: expected json array: %w", key, err)
	}
	out := make([]record, 0, len(elems))
	seen := make(map[string]bool, len(elems))
	for i, elem := range elems {
		var head struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(elem, &head); err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", key, i, err)
		}
		if head.ID == "" {
			return nil, fmt.Errorf("%s[%d]: missing id", key, i)
		}
		if seen[head.ID] {
			return nil, fmt.Errorf("%s[%d]: duplicate id %q", key, i, head.ID)
		}
		seen[head.ID] = true
		out = append(out, record{ID: head.ID, Order: i, Data: []byte(elem)})
	}
	return out, nil
}

// joinRecords is the inverse of splitRecords. Rows must already be ordered.
func joinRecords(key Key, rows []record) []byte {
	if key == KeySettings {
		if len(rows) == 0 {
			return nil
		}
		return rows[0].Data
	}
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, r := range rows {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(r.Data)
	}
	buf.WriteByte(']')
	return buf.Bytes()
}
