// Package provision orchestrates the install workflow.
//
// The workflow is a strictly sequential state machine:
//
//	Start → Preflighted → ParametersResolved → Staged →
//	ManifestWritten → Launched → {Verified | VerifyWarned}
//
// Every transition is one-directional and fail-stop: a stage failure
// moves to Aborted and surfaces an [AbortError]; nothing is rolled
// back. Partial state (directories, a written manifest) is safe to
// leave behind because every stage is idempotent and a re-run
// overwrites rather than appends. The only soft outcome is
// VerifyWarned: once the orchestrator has accepted the start request,
// the workflow defers to it instead of failing the run.
package provision
