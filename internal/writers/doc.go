// Package writers turns finalized clusters into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (report header, JSONL schema).
//   - The cluster package stays domain-only; app stays orchestration-only.
//   - JSONL goes through pkg/api (v1) for a stable wire format.
package writers
