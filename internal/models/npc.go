package models

import (
	"time"
)

// NPC is a generated character scoped to a single channel.
type NPC struct {
	Character

	// ChannelID is the Discord channel the NPC belongs to
	ChannelID string

	// TemplateName is the template the NPC was generated from
	TemplateName string

	// CreatedAt is when the NPC was generated
	CreatedAt time.Time
}

// NPCUserID returns the owner marker stored on generated NPCs.
func NPCUserID(channelID string) string {
	return "npc:" + channelID
}
