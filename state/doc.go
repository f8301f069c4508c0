// Package state implements the stateful delta engine (§4.6): per-kind
// encoder and decoder tables keyed by originating entity id, used to
// decide full vs. partial updates and to resolve fields a partial
// update omits.
package state
