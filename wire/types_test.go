package wire_test

import (
	"encoding/json"

	"github.com/grom-dev/bot-api-spec/wire"
)

// The types below mirror the shape of generated bindings so the runtime
// can be tested on its own. gen/botapi holds real generator output.

type User struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"first_name"`
	Username  *string `json:"username,omitempty"`
}

func (v User) MarshalJSON() ([]byte, error) {
	var w wire.ObjectWriter
	w.Field("id", v.ID)
	w.Field("first_name", v.FirstName)
	if v.Username != nil {
		w.Field("username", v.Username)
	}
	return w.Bytes()
}

func (v *User) UnmarshalJSON(data []byte) error {
	obj, err := wire.ParseObject("User", data)
	if err != nil {
		return err
	}

	var out User
	if err := wire.Required(obj, "id", wire.Decode[int64], &out.ID); err != nil {
		return err
	}
	if err := wire.Required(obj, "first_name", wire.Decode[string], &out.FirstName); err != nil {
		return err
	}
	if err := wire.OptionalPtr(obj, "username", wire.Decode[string], &out.Username); err != nil {
		return err
	}

	*v = out
	return nil
}

type ChatMember interface {
	json.Marshaler
	isChatMember()
}

func (ChatMemberLeft) isChatMember()   {}
func (ChatMemberBanned) isChatMember() {}

func UnmarshalChatMember(data []byte) (ChatMember, error) {
	return wire.FirstMatch("ChatMember", data,
		wire.Variant[ChatMember](wire.Decode[ChatMemberLeft]),
		wire.Variant[ChatMember](wire.Decode[ChatMemberBanned]),
	)
}

type ChatMemberLeft struct {
	User User `json:"user"`
}

func (v ChatMemberLeft) MarshalJSON() ([]byte, error) {
	var w wire.ObjectWriter
	w.Field("status", "left")
	w.Field("user", v.User)
	return w.Bytes()
}

func (v *ChatMemberLeft) UnmarshalJSON(data []byte) error {
	obj, err := wire.ParseObject("ChatMemberLeft", data)
	if err != nil {
		return err
	}

	var out ChatMemberLeft
	if err := wire.Required(obj, "status", wire.Literal("left"), new(string)); err != nil {
		return err
	}
	if err := wire.Required(obj, "user", wire.Decode[User], &out.User); err != nil {
		return err
	}

	*v = out
	return nil
}

type ChatMemberBanned struct {
	User      User  `json:"user"`
	UntilDate int32 `json:"until_date"`
}

func (v ChatMemberBanned) MarshalJSON() ([]byte, error) {
	var w wire.ObjectWriter
	w.Field("status", "kicked")
	w.Field("user", v.User)
	w.Field("until_date", v.UntilDate)
	return w.Bytes()
}

func (v *ChatMemberBanned) UnmarshalJSON(data []byte) error {
	obj, err := wire.ParseObject("ChatMemberBanned", data)
	if err != nil {
		return err
	}

	var out ChatMemberBanned
	if err := wire.Required(obj, "status", wire.Literal("kicked"), new(string)); err != nil {
		return err
	}
	if err := wire.Required(obj, "user", wire.Decode[User], &out.User); err != nil {
		return err
	}
	if err := wire.Required(obj, "until_date", wire.Decode[int32], &out.UntilDate); err != nil {
		return err
	}

	*v = out
	return nil
}

type Button struct {
	Text string `json:"text"`
}

func (v Button) MarshalJSON() ([]byte, error) {
	var w wire.ObjectWriter
	w.Field("text", v.Text)
	return w.Bytes()
}

func (v *Button) UnmarshalJSON(data []byte) error {
	obj, err := wire.ParseObject("Button", data)
	if err != nil {
		return err
	}

	var out Button
	if err := wire.Required(obj, "text", wire.Decode[string], &out.Text); err != nil {
		return err
	}

	*v = out
	return nil
}

type Keyboard struct {
	Rows [][]Button `json:"rows"`
}

func (v Keyboard) MarshalJSON() ([]byte, error) {
	var w wire.ObjectWriter
	if v.Rows == nil {
		w.Field("rows", [][]Button{})
	} else {
		w.Field("rows", v.Rows)
	}
	return w.Bytes()
}

func (v *Keyboard) UnmarshalJSON(data []byte) error {
	obj, err := wire.ParseObject("Keyboard", data)
	if err != nil {
		return err
	}

	var out Keyboard
	if err := wire.Required(obj, "rows", wire.Slice(wire.Slice(wire.Decode[Button])), &out.Rows); err != nil {
		return err
	}

	*v = out
	return nil
}

type SendMessage struct {
	ChatID      SendMessageChatID `json:"chat_id"`
	Text        string            `json:"text"`
	Tags        []string          `json:"tags,omitempty"`
	ReplyMarkup *Keyboard         `json:"reply_markup,omitempty"`
	Member      ChatMember        `json:"member,omitempty"`
}

func (v SendMessage) MarshalJSON() ([]byte, error) {
	var w wire.ObjectWriter
	w.Field("chat_id", v.ChatID)
	w.Field("text", v.Text)
	if v.Tags != nil {
		w.Field("tags", v.Tags)
	}
	if v.ReplyMarkup != nil {
		w.PreSerialized("reply_markup", v.ReplyMarkup)
	}
	if v.Member != nil {
		w.Field("member", v.Member)
	}
	return w.Bytes()
}

func (v *SendMessage) UnmarshalJSON(data []byte) error {
	obj, err := wire.ParseObject("SendMessage", data)
	if err != nil {
		return err
	}

	var out SendMessage
	if err := wire.Required(obj, "chat_id", wire.Decode[SendMessageChatID], &out.ChatID); err != nil {
		return err
	}
	if err := wire.Required(obj, "text", wire.Decode[string], &out.Text); err != nil {
		return err
	}
	if err := wire.Optional(obj, "tags", wire.Slice(wire.Decode[string]), &out.Tags); err != nil {
		return err
	}
	if err := wire.OptionalPtr(obj, "reply_markup", wire.PreSerialized(wire.Decode[Keyboard]), &out.ReplyMarkup); err != nil {
		return err
	}
	if err := wire.Optional(obj, "member", UnmarshalChatMember, &out.Member); err != nil {
		return err
	}

	*v = out
	return nil
}

type SendMessageChatID struct {
	Int64  *int64
	String *string
}

func (v SendMessageChatID) MarshalJSON() ([]byte, error) {
	switch {
	case v.Int64 != nil:
		return json.Marshal(v.Int64)
	case v.String != nil:
		return json.Marshal(v.String)
	}
	return nil, wire.EmptyUnion("SendMessageChatID")
}

func (v *SendMessageChatID) UnmarshalJSON(data []byte) error {
	var out SendMessageChatID
	if err := wire.FirstAlternative("SendMessageChatID", data,
		wire.Alternative(wire.Decode[int64], &out.Int64),
		wire.Alternative(wire.Decode[string], &out.String),
	); err != nil {
		return err
	}

	*v = out
	return nil
}
