package mongotools

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const FieldID = "_id"

func FilterByID(id string) bson.M {
	return bson.M{FieldID: id}
}

// WithID returns a copy of doc carrying id as its primary key.
func WithID(doc map[string]any, id string) bson.M {
	m := make(bson.M, len(doc)+1)
	for k, v := range doc {
		m[k] = v
	}
	m[FieldID] = id
	return m
}

// Plain converts decoded BSON into the plain maps and slices that
// encoding/json produces, dropping the primary key.
func Plain(m bson.M) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if k == FieldID {
			continue
		}
		out[k] = plainValue(v)
	}
	return out
}

func plainValue(v any) any {
	switch t := v.(type) {
	case bson.M:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = plainValue(vv)
		}
		return out
	case bson.D:
		out := make(map[string]any, len(t))
		for _, e := range t {
			out[e.Key] = plainValue(e.Value)
		}
		return out
	case bson.A:
		out := make([]any, len(t))
		for i, vv := range t {
			out[i] = plainValue(vv)
		}
		return out
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	case primitive.Null:
		return nil
	default:
		return v
	}
}
