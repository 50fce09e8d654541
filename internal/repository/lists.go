package repository

import "encoding/json"

// URL lists (images, documents, tags) are stored as JSONB columns.

func marshalList(v []string) ([]byte, error) {
	if v == nil {
		v = []string{}
	}
	return json.Marshal(v)
}

func unmarshalList(b []byte, dst *[]string) error {
	if len(b) == 0 {
		*dst = []string{}
		return nil
	}
	return json.Unmarshal(b, dst)
}
