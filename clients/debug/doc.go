// Package debug provides an [ai.Provider] decorator that frames every
// chat-completion exchange in fixed-width box-drawing log blocks and keeps
// an in-memory history of call outcomes for later summarization.
//
// The decorator is transparent: it never skips, retries, or rate-limits the
// wrapped call, returns the delegate's response unchanged, and lets delegate
// errors propagate unmodified. It composes with any Provider, including one
// already carrying its own middleware chain.
package debug
