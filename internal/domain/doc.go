// Package domain defines the core business entities of the study
// assistant: users and the flashcards they own. Entities validate
// themselves; persistence and transport concerns live elsewhere.
package domain
