// Package writers turns run results into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (TSV, JSON, JSONL).
//   • The engine and processors stay domain-only.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
