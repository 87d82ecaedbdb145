package test

import (
	"encoding/json"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/grom-dev/bot-api-spec/gen/botapi"
	"github.com/grom-dev/bot-api-spec/internal/cmd"
	"github.com/grom-dev/bot-api-spec/wire"
	assert "github.com/stretchr/testify/require"
)

var update = flag.Bool("update", false, "regenerate gen/botapi from catalogue/telegram.yaml")

func ptr[T any](v T) *T {
	return &v
}

// TestBindingsUpToDate checks that gen/botapi is what botapigen emits for
// the sample catalogue, so the tests below exercise real output.
func TestBindingsUpToDate(t *testing.T) {
	root := getWd(t, "..")
	committed := filepath.Join(root, "gen", "botapi")

	if *update {
		assert.NoError(t, cmd.Run(settings(t, root)))
	}

	dir := t.TempDir()
	config, err := os.ReadFile(filepath.Join(root, cmd.ConfigFile))
	assert.NoError(t, err)
	assert.NoError(t, os.WriteFile(filepath.Join(dir, cmd.ConfigFile), config, 0600))
	assert.NoError(t, os.CopyFS(filepath.Join(dir, "catalogue"), os.DirFS(filepath.Join(root, "catalogue"))))

	assert.NoError(t, cmd.Run(settings(t, dir)))
	generated := filepath.Join(dir, "gen", "botapi")

	want := goFiles(t, generated)
	assert.Equal(t, want, goFiles(t, committed))

	for _, name := range want {
		fresh, err := os.ReadFile(filepath.Join(generated, name))
		assert.NoError(t, err)

		kept, err := os.ReadFile(filepath.Join(committed, name))
		assert.NoError(t, err)

		assert.Equal(t, digestLine(fresh), digestLine(kept), name)
		assert.Equal(t, sourceTokens(t, name, fresh), sourceTokens(t, name, kept), name)
	}
}

func goFiles(t *testing.T, dir string) []string {
	entries, err := os.ReadDir(dir)
	assert.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)

	return names
}

func digestLine(src []byte) string {
	for _, line := range strings.Split(string(src), "\n") {
		if strings.HasPrefix(line, "// Catalogue digest: ") {
			return line
		}
	}

	return ""
}

func TestBindingsRoundTrip(t *testing.T) {
	chat := botapi.Chat{ID: -1001, Type: "supergroup", Title: ptr("Gophers")}
	user := botapi.User{ID: 7, IsBot: false, FirstName: "Ann", Username: ptr("ann")}

	msg := botapi.Message{
		MessageID: 10,
		From:      &user,
		Date:      1700000000,
		Chat:      chat,
		ReplyToMessage: &botapi.Message{
			MessageID: 9,
			Date:      1699999999,
			Chat:      chat,
			Text:      ptr("first"),
		},
		PinnedMessage: botapi.InaccessibleMessage{Chat: chat, MessageID: 3},
		Text:          ptr("hello @ann"),
		Entities: []botapi.MessageEntity{
			{Type: "mention", Offset: 6, Length: 4, User: &user},
		},
		ReplyMarkup: &botapi.InlineKeyboardMarkup{
			InlineKeyboard: [][]botapi.InlineKeyboardButton{
				{{Text: "Open", URL: ptr("https://go.dev")}},
				{{Text: "A", CallbackData: ptr("a")}, {Text: "B", CallbackData: ptr("b")}},
			},
		},
	}

	data, err := json.Marshal(msg)
	assert.NoError(t, err)

	var got botapi.Message
	assert.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, msg, got)
}

func TestBindingsFieldOrder(t *testing.T) {
	data, err := json.Marshal(botapi.User{ID: 1, FirstName: "Ann", LanguageCode: ptr("en")})
	assert.NoError(t, err)
	assert.Equal(t, `{"id":1,"is_bot":false,"first_name":"Ann","language_code":"en"}`, string(data))
}

func TestBindingsRequiredArrayIsNeverNull(t *testing.T) {
	data, err := json.Marshal(botapi.InlineKeyboardMarkup{})
	assert.NoError(t, err)
	assert.Equal(t, `{"inline_keyboard":[]}`, string(data))

	var got botapi.InlineKeyboardMarkup
	assert.NoError(t, json.Unmarshal(data, &got))
	assert.NotNil(t, got.InlineKeyboard)
	assert.Empty(t, got.InlineKeyboard)
}

func TestBindingsRequiredUnionMustBeSet(t *testing.T) {
	changed := botapi.ChatMemberUpdated{
		Chat:          botapi.Chat{ID: 1, Type: "group"},
		From:          botapi.User{ID: 2, FirstName: "Bob"},
		Date:          1700000000,
		NewChatMember: botapi.ChatMemberMember{User: botapi.User{ID: 3, FirstName: "Cy"}},
	}

	_, err := json.Marshal(changed)
	assert.True(t, errors.Is(err, wire.ErrMissingValue), "got %v", err)
	assert.ErrorContains(t, err, `ChatMemberUpdated: field "old_chat_member"`)

	changed.OldChatMember = botapi.ChatMemberBanned{User: botapi.User{ID: 3, FirstName: "Cy"}}
	data, err := json.Marshal(changed)
	assert.NoError(t, err)

	var got botapi.ChatMemberUpdated
	assert.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, changed, got)
}

func TestBindingsMissingRequiredField(t *testing.T) {
	var user botapi.User
	err := json.Unmarshal([]byte(`{"id":1,"first_name":"Ann"}`), &user)

	var missing *wire.MissingFieldError
	assert.ErrorAs(t, err, &missing)
	assert.Equal(t, "User", missing.Declaration())
	assert.Equal(t, "is_bot", missing.FieldName())
}

func TestBindingsNestedErrorNamesInnermostDeclaration(t *testing.T) {
	var msg botapi.Message
	err := json.Unmarshal([]byte(`{"message_id":1,"date":1,"chat":{"id":1,"type":"private"},"from":{"id":2,"is_bot":false}}`), &msg)

	var missing *wire.MissingFieldError
	assert.ErrorAs(t, err, &missing)
	assert.Equal(t, "User", missing.Decl)
	assert.Equal(t, "first_name", missing.Field)
}

func TestBindingsTypeMismatch(t *testing.T) {
	var chat botapi.Chat
	err := json.Unmarshal([]byte(`{"id":"one","type":"private"}`), &chat)

	var mismatch *wire.TypeMismatchError
	assert.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "Chat", mismatch.Decl)
	assert.Equal(t, "id", mismatch.Field)
}

func TestBindingsNullAndUnknownMembers(t *testing.T) {
	var user botapi.User
	err := json.Unmarshal([]byte(`{"id":1,"is_bot":true,"first_name":"Bot","username":null,"can_join_groups":true}`), &user)
	assert.NoError(t, err)
	assert.Equal(t, botapi.User{ID: 1, IsBot: true, FirstName: "Bot"}, user)
}

func TestBindingsUnionFirstMatch(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    botapi.ChatMember
	}{
		{
			name:    "banned forever",
			payload: `{"status":"kicked","user":{"id":1,"is_bot":false,"first_name":"Ann"},"until_date":0}`,
			want:    botapi.ChatMemberBanned{User: botapi.User{ID: 1, FirstName: "Ann"}, UntilDate: 0},
		},
		{
			name:    "member",
			payload: `{"status":"member","user":{"id":1,"is_bot":false,"first_name":"Ann"}}`,
			want:    botapi.ChatMemberMember{User: botapi.User{ID: 1, FirstName: "Ann"}},
		},
		{
			name:    "owner",
			payload: `{"status":"creator","user":{"id":1,"is_bot":false,"first_name":"Ann"},"is_anonymous":true}`,
			want:    botapi.ChatMemberOwner{User: botapi.User{ID: 1, FirstName: "Ann"}, IsAnonymous: true},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			for range 3 {
				got, err := botapi.UnmarshalChatMember([]byte(test.payload))
				assert.NoError(t, err)
				assert.Equal(t, test.want, got)
			}
		})
	}

	_, err := botapi.UnmarshalChatMember([]byte(`{"status":"left","user":{"id":1,"is_bot":false,"first_name":"Ann"}}`))

	var mismatch *wire.TypeMismatchError
	assert.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "ChatMember", mismatch.Decl)
}

func TestBindingsInaccessibleMessage(t *testing.T) {
	chat := `"chat":{"id":1,"type":"private"}`

	got, err := botapi.UnmarshalMaybeInaccessibleMessage([]byte(`{` + chat + `,"message_id":5,"date":0}`))
	assert.NoError(t, err)
	assert.Equal(t, botapi.InaccessibleMessage{Chat: botapi.Chat{ID: 1, Type: "private"}, MessageID: 5}, got)

	got, err = botapi.UnmarshalMaybeInaccessibleMessage([]byte(`{` + chat + `,"message_id":5,"date":1700000000}`))
	assert.NoError(t, err)
	assert.IsType(t, botapi.Message{}, got)
	assert.Equal(t, int32(1700000000), got.(botapi.Message).Date)

	data, err := json.Marshal(botapi.InaccessibleMessage{Chat: botapi.Chat{ID: 1, Type: "private"}, MessageID: 5})
	assert.NoError(t, err)
	assert.JSONEq(t, `{`+chat+`,"message_id":5,"date":0}`, string(data))
}

func TestBindingsPreSerializedField(t *testing.T) {
	send := botapi.SendMessage{
		ChatID: botapi.SendMessageChatID{Int64: ptr(int64(42))},
		Text:   "pick one",
		ReplyMarkup: botapi.InlineKeyboardMarkup{
			InlineKeyboard: [][]botapi.InlineKeyboardButton{{{Text: "A", CallbackData: ptr("a")}}},
		},
	}

	data, err := json.Marshal(send)
	assert.NoError(t, err)
	assert.Equal(t, `{"chat_id":42,"text":"pick one","reply_markup":"{\"inline_keyboard\":[[{\"text\":\"A\",\"callback_data\":\"a\"}]]}"}`, string(data))

	var got botapi.SendMessage
	assert.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, send, got)

	force := botapi.SendMessage{
		ChatID:      botapi.SendMessageChatID{String: ptr("@gophers")},
		Text:        "reply",
		ReplyMarkup: botapi.ForceReply{ForceReply: true},
	}

	data, err = json.Marshal(force)
	assert.NoError(t, err)

	got = botapi.SendMessage{}
	assert.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, force, got)
}

func TestBindingsInlineUnion(t *testing.T) {
	tests := []struct {
		payload string
		want    botapi.SendPhoto
	}{
		{
			payload: `{"chat_id":42,"photo":"AgACAgIAAxkBAAIB"}`,
			want: botapi.SendPhoto{
				ChatID: botapi.SendPhotoChatID{Int64: ptr(int64(42))},
				Photo:  botapi.SendPhotoPhoto{String: ptr("AgACAgIAAxkBAAIB")},
			},
		},
		{
			payload: `{"chat_id":"@gophers","photo":{"attach":"attach://photo"},"caption":"gopher"}`,
			want: botapi.SendPhoto{
				ChatID:  botapi.SendPhotoChatID{String: ptr("@gophers")},
				Photo:   botapi.SendPhotoPhoto{InputFile: &botapi.InputFile{Attach: "attach://photo"}},
				Caption: ptr("gopher"),
			},
		},
	}

	for _, test := range tests {
		var got botapi.SendPhoto
		assert.NoError(t, json.Unmarshal([]byte(test.payload), &got))
		assert.Equal(t, test.want, got)

		data, err := json.Marshal(got)
		assert.NoError(t, err)
		assert.JSONEq(t, test.payload, string(data))
	}

	_, err := json.Marshal(botapi.SendPhoto{ChatID: botapi.SendPhotoChatID{Int64: ptr(int64(1))}})
	assert.True(t, errors.Is(err, wire.ErrEmptyUnion), "got %v", err)
}

func TestBindingsEmptyRecord(t *testing.T) {
	data, err := json.Marshal(botapi.GetUpdates{})
	assert.NoError(t, err)
	assert.Equal(t, `{}`, string(data))

	var got botapi.GetUpdates
	assert.NoError(t, json.Unmarshal([]byte(`{"offset":10}`), &got))
	assert.Error(t, json.Unmarshal([]byte(`[]`), &got))
}
