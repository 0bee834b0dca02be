// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package form

import (
	"strings"

	"github.com/jeranaias/splitbill-tui/internal/friend"
	"golang.org/x/text/unicode/norm"
)

// DefaultImage is the avatar URL a new add-friend draft starts with.
const DefaultImage = friend.AvatarBase

// AddFriendDraft is the unsaved input of the add-friend form.
type AddFriendDraft struct {
	Name  string
	Image string

	defaultImage string
}

// NewAddFriendDraft creates a draft with the image preset to defaultImage.
// An empty defaultImage falls back to DefaultImage.
func NewAddFriendDraft(defaultImage string) AddFriendDraft {
	if strings.TrimSpace(defaultImage) == "" {
		defaultImage = DefaultImage
	}
	return AddFriendDraft{Image: defaultImage, defaultImage: defaultImage}
}

// Reset restores both fields to their defaults.
func (d *AddFriendDraft) Reset() {
	d.Name = ""
	d.Image = d.defaultImage
}

// DefaultImage returns the image URL the draft resets to.
func (d AddFriendDraft) DefaultImage() string {
	return d.defaultImage
}

// SetDefaultImage changes the reset value. An image field still holding the
// old default follows the new one.
func (d *AddFriendDraft) SetDefaultImage(image string) {
	if strings.TrimSpace(image) == "" {
		image = DefaultImage
	}
	if d.Image == d.defaultImage {
		d.Image = image
	}
	d.defaultImage = image
}

// Validate checks that both fields are filled in.
func (d AddFriendDraft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(d.Image) == "" {
		return ErrEmptyImage
	}
	return nil
}

// Submit builds a settled Friend from the draft with an id from gen.
// The draft itself is not modified; callers Reset it after a successful submit.
func (d AddFriendDraft) Submit(gen friend.IDGenerator) (friend.Friend, error) {
	if err := d.Validate(); err != nil {
		return friend.Friend{}, err
	}
	if gen == nil {
		gen = friend.NewUUID
	}

	id := gen()
	name := norm.NFC.String(strings.TrimSpace(d.Name))
	return friend.New(id, name, friend.AvatarURL(d.Image, id)), nil
}
