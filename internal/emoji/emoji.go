package emoji

import "sync/atomic"

// emojiMap holds emoji and fallback mappings
var emojiMap = map[string][2]string{
	// [emoji, fallback]
	"dice":      {"🎲", "[#]"},
	"trophy":    {"🏆", "[WIN]"},
	"miss":      {"💨", "[MISS]"},
	"cowboy":    {"🤠", "[>]"},
	"gear":      {"⚙️", "[OPT]"},
	"robot":     {"🤖", "[AI]"},
	"door":      {"🚪", "[EXIT]"},
	"target":    {"🎯", "[>]"},
	"score":     {"📊", "[SCORE]"},
	"hourglass": {"⏳", "[...]"},
	"error":     {"❌", "[ERR]"},
	"warning":   {"⚠️", "[WRN]"},
	"help":      {"❓", "[?]"},
}

var emojiDisabled atomic.Bool

// SetEmojiDisabled sets the global emoji disabled state
func SetEmojiDisabled(disabled bool) {
	emojiDisabled.Store(disabled)
}

// IsEmojiDisabled returns the current emoji disabled state
func IsEmojiDisabled() bool {
	return emojiDisabled.Load()
}

// GetEmoji returns emoji or fallback based on no-emoji setting
func GetEmoji(key string) string {
	if mapping, exists := emojiMap[key]; exists {
		if emojiDisabled.Load() {
			return mapping[1]
		}
		return mapping[0]
	}
	return "[?]"
}

// Decorate prefixes text with the named emoji
func Decorate(key, text string) string {
	return GetEmoji(key) + " " + text
}
