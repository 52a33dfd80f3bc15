// Package diagnostics defines the typed warning channel of the engine.
//
// Nothing the language model produces is allowed to abort a scene, so every
// silent correction is recorded as a [Warning] instead of an error. Warnings
// are collected per orchestration run and returned next to the scene, so
// callers can assert on what was corrected without scraping log output.
//
// Warning kinds are grouped by the stage that emits them:
//
//   - payload.*: entries the decoder had to skip.
//   - vocabulary.*: raw values mapped onto a closed vocabulary through an
//     alias, a substring match or a default.
//   - expression.*: unknown mood names.
//   - timing.*: empty dialogue and repaired text reveal ranges.
//   - scheduling.*: split turns and actors missing from the roster.
//   - guideline.*: violations found by the post-hoc guideline pass. These
//     never alter the scene.
//   - orchestration.*: pipeline level events such as fallback scenes.
package diagnostics
