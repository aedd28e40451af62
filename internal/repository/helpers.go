package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/forgo/arena/bot/internal/database"
)

// isUniqueConstraintError checks if an error is a unique constraint violation
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "unique") ||
		strings.Contains(errStr, "duplicate") ||
		strings.Contains(errStr, "already exists")
}

// plainID reduces a SurrealDB record ID to its bare ID part, without the
// table prefix. Repositories store and return plain snowflake strings.
func plainID(id interface{}) string {
	switch v := id.(type) {
	case string:
		if i := strings.LastIndexByte(v, ':'); i >= 0 {
			return v[i+1:]
		}
		return v
	case models.RecordID:
		return fmt.Sprintf("%v", v.ID)
	case *models.RecordID:
		if v != nil {
			return fmt.Sprintf("%v", v.ID)
		}
	case map[string]interface{}:
		// Handle {"tb": "table", "id": "xxx"} format
		if idVal, ok := v["id"]; ok {
			return fmt.Sprintf("%v", idVal)
		}
		if idVal, ok := v["ID"]; ok {
			return fmt.Sprintf("%v", idVal)
		}
	}
	return fmt.Sprintf("%v", id)
}

// asRecord asserts a QueryOne result down to a record map, returning
// database.ErrNotFound for nil results.
func asRecord(result interface{}) (map[string]interface{}, error) {
	if result == nil {
		return nil, database.ErrNotFound
	}
	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}
	return data, nil
}

// collectRecords filters the records of a Query call down to record maps.
func collectRecords(results []interface{}) []map[string]interface{} {
	records := make([]map[string]interface{}, 0, len(results))
	for _, result := range results {
		if data, ok := result.(map[string]interface{}); ok {
			records = append(records, data)
		}
	}
	return records
}

// decodeRecord converts a record map into a typed model via a JSON
// round-trip, normalizing the id field first.
func decodeRecord(data map[string]interface{}, out interface{}) error {
	if id, ok := data["id"]; ok {
		data["id"] = plainID(id)
	}

	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(jsonBytes, out)
}
