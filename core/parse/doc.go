// Package parse converts model-emitted text into typed Go values, repairing
// malformed JSON along the way. It backs tool-argument decoding and the
// extraction of structured final answers from agent output.
package parse
