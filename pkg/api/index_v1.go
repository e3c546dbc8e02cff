// pkg/api/index_v1.go
package api

// IndexV1 is one JSONL line of seqindex output.
type IndexV1 struct {
	Index uint64 `json:"index"`
	ID    string `json:"id"`
}
