// Package models defines domain entities and persistence interfaces for the ytcat sync pipeline.
//
// The package contains two categories of types:
//
// 1. Data Transfer Objects (DTOs): parsed upstream records and pipeline output
//   - [Playlist] : collection metadata from the source API
//   - [Video] : one playlist member, optionally enriched with detail-lookup fields
//   - [VideoDetail] : attributes available only via the per-item secondary lookup
//   - [Entity] : the normalized {identifier, blueprint, properties, relations} unit
//   - [Snapshot] : the ordered entity sequence written as the run artifact
//
// 2. Persistent Entities: database-backed records with lifecycle management
//   - [SyncRun] : one pipeline execution with counts, status, and artifact path
//
// Persistent entities implement the [Model] interface providing ID generation,
// timestamps, and validation. The [Repository] interface defines standard
// data access operations.
package models
