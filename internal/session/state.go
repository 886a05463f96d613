// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/tui"
	"github.com/MKhiriev/go-pass-vault/models"
)

// State is everything the session loop owns between two menu renders.
// Entries are identified by position; removing one shifts the following
// entries down by one.
type State struct {
	entries        []models.Entry
	masterPassword string
	lastActivity   time.Time
	copied         tui.Highlight
	notices        []string
}

// Unlock replaces the entry list and the master password.
func (s *State) Unlock(entries []models.Entry, masterPassword string) {
	s.entries = slices.Clone(entries)
	s.masterPassword = masterPassword
}

// Entries returns a copy of the entry list.
func (s *State) Entries() []models.Entry {
	return slices.Clone(s.entries)
}

// Len returns the number of entries.
func (s *State) Len() int {
	return len(s.entries)
}

// Entry returns the entry at i.
func (s *State) Entry(i int) (models.Entry, error) {
	if err := s.checkIndex(i); err != nil {
		return models.Entry{}, err
	}
	return s.entries[i], nil
}

// Append adds e at the end of the list.
func (s *State) Append(e models.Entry) {
	s.entries = append(s.entries, e)
}

// Insert puts e at position i, shifting later entries up.
func (s *State) Insert(i int, e models.Entry) error {
	if i < 0 || i > len(s.entries) {
		return fmt.Errorf("%w: insert at %d with %d entries", ErrEntryIndexOutOfRange, i, len(s.entries))
	}
	s.entries = slices.Insert(s.entries, i, e)
	return nil
}

// Remove deletes the entry at i and returns it.
func (s *State) Remove(i int) (models.Entry, error) {
	if err := s.checkIndex(i); err != nil {
		return models.Entry{}, err
	}
	removed := s.entries[i]
	s.entries = slices.Delete(s.entries, i, i+1)
	return removed, nil
}

// Replace overwrites the entry at i and returns the previous value.
func (s *State) Replace(i int, e models.Entry) (models.Entry, error) {
	if err := s.checkIndex(i); err != nil {
		return models.Entry{}, err
	}
	previous := s.entries[i]
	s.entries[i] = e
	return previous, nil
}

// MarkCopied records the entry whose secret is on the clipboard.
func (s *State) MarkCopied(i int) {
	s.copied = tui.HighlightEntry(i)
}

// ClearCopied forgets the copied entry.
func (s *State) ClearCopied() {
	s.copied = tui.NoHighlight()
}

// Copied returns the copied entry marker.
func (s *State) Copied() tui.Highlight {
	return s.copied
}

// Touch stamps user activity.
func (s *State) Touch(now time.Time) {
	s.lastActivity = now
}

// IdleFor returns the time elapsed since the last stamped activity.
func (s *State) IdleFor(now time.Time) time.Duration {
	return now.Sub(s.lastActivity)
}

// AddNotice queues a message for the next menu render.
func (s *State) AddNotice(msg string) {
	s.notices = append(s.notices, msg)
}

// TakeNotices returns the queued messages and empties the queue.
func (s *State) TakeNotices() []string {
	notices := s.notices
	s.notices = nil
	return notices
}

func (s *State) checkIndex(i int) error {
	if i < 0 || i >= len(s.entries) {
		return fmt.Errorf("%w: %d with %d entries", ErrEntryIndexOutOfRange, i, len(s.entries))
	}
	return nil
}
