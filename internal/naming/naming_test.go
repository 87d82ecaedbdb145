package naming

import (
	"testing"

	assert "github.com/stretchr/testify/require"
)

func TestExported(t *testing.T) {
	tests := map[string]string{
		"reply_to_message":  "ReplyToMessage",
		"chat_id":           "ChatID",
		"url":               "URL",
		"ChatMember":        "ChatMember",
		"InputMediaGif":     "InputMediaGif",
		"mp4_url":           "MP4URL",
		"from":              "From",
		"is_bot":            "IsBot",
		"2fa":               "X2fa",
		"_":                 "X",
		"inline_keyboard":   "InlineKeyboard",
		"can-send-messages": "CanSendMessages",
	}

	for in, want := range tests {
		assert.Equal(t, want, Exported(in), in)
	}
}

func TestFileName(t *testing.T) {
	tests := map[string]string{
		"ChatMemberLeft":       "chat_member_left",
		"User":                 "user",
		"InlineKeyboardMarkup": "inline_keyboard_markup",
		"HTTPServer":           "http_server",
		"InputMediaMP4":        "input_media_mp4",
		"Sticker2":             "sticker2",
		"already_snake":        "already_snake",
	}

	for in, want := range tests {
		assert.Equal(t, want, FileName(in), in)
	}
}

func TestSourceFile(t *testing.T) {
	tests := map[string]string{
		"ChatMemberLeft":     "chat_member_left.go",
		"Windows":            "windows.go",
		"FooTest":            "foo_test_decl.go",
		"ThingWindows":       "thing_windows_decl.go",
		"InputMediaAndroid":  "input_media_android_decl.go",
		"BuildLinuxAmd64":    "build_linux_amd64_decl.go",
		"ArmTest":            "arm_test_decl.go",
		"Testing":            "testing.go",
		"ChatMemberJSTokens": "chat_member_js_tokens.go",
		"_Hidden":            "x_hidden.go",
	}

	for in, want := range tests {
		assert.Equal(t, want, SourceFile(in), in)
	}
}
