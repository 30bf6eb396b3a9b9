// Package model defines the data structures used throughout the application.
package model

// User represents a registered account in the tracker.
//
// Usernames are NOT unique. The upstream service never enforced uniqueness and
// the public checker exercises duplicate registrations, so two users may share
// a username and their exercise logs will overlap (exercises are attributed by
// username, see Exercise). We keep that behaviour rather than silently
// tightening the contract.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}
