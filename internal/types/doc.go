/*
Package types defines the shared data structures of shapecli.

# Overview

The types package provides the value records exchanged with the backend
service and stored locally:
  - Tenant, Folder, Model: backend payloads (immutable once decoded)
  - ModelState: the indexing lifecycle enum (Received, Indexing, Ready)
  - Session, TenantToken: the persisted per-tenant credential cache
  - SearchRecord: one row of the local search history database

# Field Tags

All serialized types carry JSON and YAML tags: JSON for the session file and
API decoding, YAML for the CLI's `-o yaml` output. `omitempty` keeps the
serialized forms clean.

# Validation

Model.Validate checks the two fields the client depends on (a parseable
UUID and a known state) so malformed backend responses are caught at the
boundary instead of surfacing as rendering glitches.
*/
package types
