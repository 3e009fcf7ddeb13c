// Package core implements the contribution aggregation and ranking
// engine: period filtering, popularity-weighted scoring, dense ranking,
// rank-preserving fuzzy search, cumulative time-bucket accumulation and
// leaderboard orchestration. Everything here is pure computation over
// already-fetched collections; the data store is reached only through
// injected baseline callbacks.
package core
