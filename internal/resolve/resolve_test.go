package resolve

import (
	"testing"

	"github.com/grom-dev/bot-api-spec/internal/model"
	"github.com/grom-dev/bot-api-spec/internal/registry"
	assert "github.com/stretchr/testify/require"
)

func field(name string, t model.TypeRef, required bool) model.FieldSpec {
	return model.FieldSpec{Name: name, Type: t, Required: required}
}

func mustResolve(t *testing.T, decls ...model.TypeDeclaration) *Graph {
	t.Helper()

	reg, err := registry.Load(decls)
	assert.NoError(t, err)

	g, err := Resolve(reg)
	assert.NoError(t, err)

	return g
}

func lookup(t *testing.T, g *Graph, name string) *Decl {
	t.Helper()

	d, ok := g.Lookup(name)
	assert.True(t, ok, "declaration %s not in graph", name)
	return d
}

func TestSharedReferences(t *testing.T) {
	g := mustResolve(t,
		model.Record("User", field("id", model.Scalar(model.KindInt64), true)),
		model.Record("Message",
			field("from", model.Named("User"), false),
			field("via_bot", model.Named("User"), false),
			field("mentions", model.ArrayOf(model.Named("User")), false),
		),
	)

	user := lookup(t, g, "User")
	msg := lookup(t, g, "Message")

	assert.Same(t, user, msg.Fields[0].Type.Target())
	assert.Same(t, user, msg.Fields[1].Type.Target())
	assert.Same(t, user, msg.Fields[2].Type.Items.Target())
	assert.Empty(t, g.BackRefs())
}

func TestSelfReference(t *testing.T) {
	g := mustResolve(t,
		model.Record("Message",
			field("message_id", model.Scalar(model.KindInt32), true),
			field("reply_to_message", model.Named("Message"), false),
		),
	)

	msg := lookup(t, g, "Message")
	reply := msg.Fields[1].Type

	assert.NotNil(t, reply.BackRef)
	assert.Nil(t, reply.Decl)
	assert.Equal(t, "Message", reply.Name())
	assert.Same(t, msg, reply.Target())

	assert.Len(t, g.BackRefs(), 1)
	assert.Same(t, reply.BackRef, g.BackRefs()[0])
}

func TestMutualReference(t *testing.T) {
	g := mustResolve(t,
		model.Record("A", field("b", model.Named("B"), false)),
		model.Record("B", field("a", model.Named("A"), false)),
	)

	a := lookup(t, g, "A")
	b := lookup(t, g, "B")

	assert.Same(t, b, a.Fields[0].Type.Decl)
	assert.NotNil(t, b.Fields[0].Type.BackRef)
	assert.Same(t, a, b.Fields[0].Type.Target())
	assert.Len(t, g.BackRefs(), 1)
}

func TestCycleThroughUnion(t *testing.T) {
	g := mustResolve(t,
		model.Record("Message", field("pinned_message", model.Named("MaybeInaccessible"), false)),
		model.Union("MaybeInaccessible", "Message", "Inaccessible"),
		model.Record("Inaccessible", field("date", model.Scalar(model.KindInt32), true)),
	)

	msg := lookup(t, g, "Message")
	u := lookup(t, g, "MaybeInaccessible")

	assert.True(t, u.Union)
	assert.Same(t, u, msg.Fields[0].Type.Decl)
	assert.NotNil(t, u.Variants[0].BackRef)
	assert.Same(t, msg, u.Variants[0].Target())
	assert.Same(t, lookup(t, g, "Inaccessible"), u.Variants[1].Decl)
	assert.Len(t, g.BackRefs(), 1)
}

func TestDeclarationOrderPreserved(t *testing.T) {
	g := mustResolve(t,
		model.Record("Z", field("a", model.Named("A"), true)),
		model.Record("A"),
		model.Union("M", "Z", "A"),
	)

	names := make([]string, 0)
	for _, d := range g.Decls() {
		names = append(names, d.Name)
	}

	assert.Equal(t, []string{"Z", "A", "M"}, names)
}

func TestFieldOrderAndAttributes(t *testing.T) {
	g := mustResolve(t,
		model.Record("SendMessage",
			field("chat_id", model.UnionOf(model.Scalar(model.KindInt64), model.Scalar(model.KindString)), true),
			model.FieldSpec{Name: "reply_markup", Type: model.Named("Markup"), PreSerialize: true, Description: "Markup."},
			field("kind", model.Literal("send"), true),
		),
		model.Record("Markup"),
	)

	d := lookup(t, g, "SendMessage")
	assert.Len(t, d.Fields, 3)

	chatID := d.Fields[0]
	assert.Equal(t, "chat_id", chatID.Name)
	assert.True(t, chatID.Required)
	assert.Equal(t, model.KindUnion, chatID.Type.Kind)
	assert.Equal(t, model.KindInt64, chatID.Type.Alternatives[0].Kind)
	assert.Equal(t, model.KindString, chatID.Type.Alternatives[1].Kind)

	markup := d.Fields[1]
	assert.True(t, markup.PreSerialize)
	assert.False(t, markup.Required)
	assert.Equal(t, "Markup.", markup.Description)

	kind := d.Fields[2]
	assert.Equal(t, model.KindLiteral, kind.Type.Kind)
	assert.Equal(t, "send", kind.Type.Literal)
}

func TestEmptyRecordAndSingleVariantUnion(t *testing.T) {
	g := mustResolve(t,
		model.Record("Empty"),
		model.Union("Only", "Empty"),
	)

	empty := lookup(t, g, "Empty")
	assert.False(t, empty.Union)
	assert.Empty(t, empty.Fields)

	only := lookup(t, g, "Only")
	assert.True(t, only.Union)
	assert.Len(t, only.Variants, 1)
	assert.Same(t, empty, only.Variants[0].Target())
}

func TestResolvedDeclarationsAreReused(t *testing.T) {
	g := mustResolve(t,
		model.Record("B", field("a", model.Named("A"), false)),
		model.Record("A", field("b", model.Named("B"), false)),
		model.Record("C", field("a", model.Named("A"), false), field("b", model.Named("B"), false)),
	)

	c := lookup(t, g, "C")
	assert.Nil(t, c.Fields[0].Type.BackRef)
	assert.Nil(t, c.Fields[1].Type.BackRef)
	assert.Len(t, g.BackRefs(), 1)
}
