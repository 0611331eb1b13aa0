package domain

import (
	"encoding/json"
)

const (
	// SavedAccountType is the type of every saved account record, referring
	// to the encryption scheme of its content.
	SavedAccountType = "AES"
)

// SessionAccountInfo is the content of the live session slot, once
// decrypted. Seed and wallet are opaque to the vault, as well as the entries
// of the multisig and plugin lists that are owned by their services.
type SessionAccountInfo struct {
	Seed              json.RawMessage   `json:"seed"`
	Wallet            json.RawMessage   `json:"wallet"`
	MultisigAddresses []json.RawMessage `json:"multisig_addresses"`
	Multisigs         []json.RawMessage `json:"multisigs"`
	Plugins           []json.RawMessage `json:"plugins"`
}

// NewSessionAccountInfo returns a SessionAccountInfo where absent lists are
// replaced by empty ones.
func NewSessionAccountInfo(
	seed, wallet json.RawMessage,
	multisigAddresses, multisigs, plugins []json.RawMessage,
) *SessionAccountInfo {
	return &SessionAccountInfo{
		Seed:              nullIfEmpty(seed),
		Wallet:            nullIfEmpty(wallet),
		MultisigAddresses: emptyIfNil(multisigAddresses),
		Multisigs:         emptyIfNil(multisigs),
		Plugins:           emptyIfNil(plugins),
	}
}

// SavedAccountRecord is an entry of the saved accounts list. Content is the
// encrypted SessionAccountInfo of the account.
type SavedAccountRecord struct {
	Name    string `json:"name"`
	Content string `json:"content"`
	Type    string `json:"type"`
}

// NewSavedAccountRecord returns a record of type AES for the given encrypted
// session content.
func NewSavedAccountRecord(name, content string) SavedAccountRecord {
	return SavedAccountRecord{
		Name:    name,
		Content: content,
		Type:    SavedAccountType,
	}
}

// SavedAccounts is the ordered list of saved accounts where the name is the
// natural key.
type SavedAccounts []SavedAccountRecord

// IndexByName returns the index of the first record with the given name, or
// -1 if not found.
func (s SavedAccounts) IndexByName(name string) int {
	for i, r := range s {
		if r.Name == name {
			return i
		}
	}
	return -1
}

// Upsert replaces in place the first record with the same name, or appends it
// otherwise. It returns the updated list and whether a record got replaced.
func (s SavedAccounts) Upsert(record SavedAccountRecord) (SavedAccounts, bool) {
	if i := s.IndexByName(record.Name); i >= 0 {
		updated := s.clone()
		updated[i] = record
		return updated, true
	}
	return append(s.clone(), record), false
}

// DeleteByName removes the first record with the given name. It returns the
// updated list and whether a record got removed.
func (s SavedAccounts) DeleteByName(name string) (SavedAccounts, bool) {
	i := s.IndexByName(name)
	if i < 0 {
		return s, false
	}
	updated := make(SavedAccounts, 0, len(s)-1)
	updated = append(updated, s[:i]...)
	updated = append(updated, s[i+1:]...)
	return updated, true
}

// Rename changes the name of the record matching oldName without changing its
// position in the list.
func (s SavedAccounts) Rename(oldName, newName string) (SavedAccounts, error) {
	if len(newName) <= 0 {
		return nil, ErrNullAccountName
	}
	i := s.IndexByName(oldName)
	if i < 0 {
		return nil, ErrAccountNotFound
	}
	if oldName == newName {
		return s, nil
	}
	if s.IndexByName(newName) >= 0 {
		return nil, ErrAccountNameTaken
	}
	updated := s.clone()
	updated[i].Name = newName
	return updated, nil
}

// Names returns the names of the records in order.
func (s SavedAccounts) Names() []string {
	names := make([]string, 0, len(s))
	for _, r := range s {
		names = append(names, r.Name)
	}
	return names
}

func (s SavedAccounts) clone() SavedAccounts {
	c := make(SavedAccounts, len(s), len(s)+1)
	copy(c, s)
	return c
}

func emptyIfNil(list []json.RawMessage) []json.RawMessage {
	if list == nil {
		return []json.RawMessage{}
	}
	return list
}

func nullIfEmpty(v json.RawMessage) json.RawMessage {
	if len(v) <= 0 {
		return json.RawMessage("null")
	}
	return v
}
