// Package prompt builds everything the studio sends to the model: the
// instruction text for each panel, the response schema that constrains
// structured dashboard output, the automation agent's system instruction,
// and the provider-shaped contents of a chat turn.
//
// Prompt text lives in embedded text/template files parsed once by New.
// The Composer holds no per-call state and is safe for concurrent use.
package prompt
