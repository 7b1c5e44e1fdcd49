// Package rag implements the retrieval-and-aggregation pipeline that grounds
// LLM answers in the in-memory tourism record store.
//
// # Overview
//
// Given a free-text question, the pipeline selects the weekly records that
// matter, optionally computes summary statistics over them, and renders a
// bounded context block for prompt injection:
//
//	query text
//	     |
//	     v
//	Interpret  -- island / year / month / metric hints (keyword rules)
//	     |
//	     v
//	Filter     -- island stage, temporal stage, recency fallback
//	     |
//	     v
//	Aggregate  -- per-metric summary stats (only when a metric was detected)
//	     |
//	     v
//	Render     -- capped record listing + labeled summary block
//
// # Design
//
// Retrieval is purely lexical: a fixed keyword table, no embeddings and no
// index. Every stage is a side-effect-free function over the shared
// read-only store, so concurrent requests need no synchronization.
//
// Hint extraction never fails: tokens that match no rule are ignored, and an
// empty hint set is a meaningful result ("broad, unfiltered, no metric").
// An empty filter result is likewise not an error; Render turns it into the
// NoDataMarker string the prompt uses to request a graceful no-data answer.
//
// # Thread safety
//
// Engine is immutable after New and safe for concurrent use.
package rag
