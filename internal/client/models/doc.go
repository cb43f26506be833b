// Package models defines the client-side data shapes of the EduHub portal:
// the admin session, content items and queries, per-tab upload drafts and
// the storage status reported by the backend.
package models
