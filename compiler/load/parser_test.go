package load

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSchema(t *testing.T) {
	src := `
// user-facing roles
enum Role {
  USER
  ADMIN
}

model User {
  id    String @id @default(uuid())
  email String @unique
  role  Role   @default(USER)
  posts Post[] @relation("author")
}

model Post {
  title    String?
  author   User   @relation(fields: [authorId], references: [id])
  authorId String
  tags     String[]
}
`
	s, err := Parse([]byte(src))
	require.NoError(t, err)
	require.Len(t, s.Enums, 1)
	require.Len(t, s.Models, 2)

	assert.Equal(t, "Role", s.Enums[0].Name)
	assert.Equal(t, []string{"USER", "ADMIN"}, s.Enums[0].Values)

	user := s.Models[0]
	require.Equal(t, "User", user.Name)
	require.Len(t, user.Fields, 4)

	id := user.Fields[0]
	assert.Equal(t, "id", id.Name)
	assert.Equal(t, "String", id.Type.Name)
	assert.False(t, id.Type.Call)
	assert.NotNil(t, id.Attr("id"))
	def := id.Attr("default")
	require.NotNil(t, def)
	v := def.Arg("", 0).Value
	assert.Equal(t, ValueCall, v.Kind)
	assert.Equal(t, "uuid", v.Name)

	assert.NotNil(t, user.Fields[1].Attr("unique"))

	role := user.Fields[2]
	require.NotNil(t, role.Attr("default"))
	assert.Equal(t, ValueIdent, role.Attr("default").Arg("", 0).Value.Kind)
	assert.Equal(t, "USER", role.Attr("default").Arg("", 0).Value.Str)

	posts := user.Fields[3]
	assert.True(t, posts.List)
	assert.False(t, posts.Optional)
	rel := posts.Attr("relation")
	require.NotNil(t, rel)
	assert.Equal(t, "author", rel.Arg("name", 0).Value.Str)

	post := s.Models[1]
	require.Len(t, post.Fields, 4)
	assert.True(t, post.Fields[0].Optional)

	author := post.Fields[1]
	rel = author.Attr("relation")
	require.NotNil(t, rel)
	assert.Equal(t, []string{"authorId"}, rel.Arg("fields", -1).Value.Idents())
	assert.Equal(t, []string{"id"}, rel.Arg("references", -1).Value.Idents())

	assert.True(t, post.Fields[3].List)
	assert.Equal(t, "String", post.Fields[3].Type.Name)
}

func TestParseModifiers(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		list     bool
		optional bool
	}{
		{name: "plain", field: "name String"},
		{name: "optional", field: "name String?", optional: true},
		{name: "list", field: "names String[]", list: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse([]byte("model M {\n  " + tt.field + "\n}"))
			require.NoError(t, err)
			require.Len(t, s.Models, 1)
			require.Len(t, s.Models[0].Fields, 1)
			f := s.Models[0].Fields[0]
			assert.Equal(t, tt.list, f.List)
			assert.Equal(t, tt.optional, f.Optional)
		})
	}
}

func TestParseCallType(t *testing.T) {
	s, err := Parse([]byte(`model Shape { geom Unsupported("polygon") }`))
	require.NoError(t, err)
	f := s.Models[0].Fields[0]
	assert.True(t, f.Type.Call)
	assert.Equal(t, "Unsupported", f.Type.Name)
	assert.Equal(t, []string{"polygon"}, f.Type.Args)
}

func TestParseBlockAttributes(t *testing.T) {
	s, err := Parse([]byte(`
model M {
  a String
  b String
  @@unique([a, b])
}`))
	require.NoError(t, err)
	m := s.Models[0]
	require.Len(t, m.Fields, 2)
	require.Len(t, m.Attrs, 1)
	assert.Equal(t, "unique", m.Attrs[0].Name)
	assert.Equal(t, []string{"a", "b"}, m.Attrs[0].Arg("", 0).Value.Idents())
}

func TestParseBlockAttributeAfterFieldAttribute(t *testing.T) {
	// The trailing field attribute must not swallow the first @ of a
	// following @@attribute.
	s, err := Parse([]byte(`
model M {
  a String @unique
  @@index([a])
  b String
}`))
	require.NoError(t, err)
	m := s.Models[0]
	require.Len(t, m.Fields, 2)
	assert.NotNil(t, m.Fields[0].Attr("unique"))
	assert.Empty(t, m.Fields[0].Attr("unique").Args)
	require.Len(t, m.Attrs, 1)
	assert.Equal(t, "index", m.Attrs[0].Name)
}

func TestParseDottedAttribute(t *testing.T) {
	s, err := Parse([]byte("model M {\n  body String @db.Text\n  next String\n}"))
	require.NoError(t, err)
	m := s.Models[0]
	require.Len(t, m.Fields, 2)
	assert.NotNil(t, m.Fields[0].Attr("db.Text"))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		line int
	}{
		{name: "unexpected keyword", src: "entity User {}", line: 1},
		{name: "unterminated enum", src: "enum Role {\n  USER", line: 2},
		{name: "unterminated model", src: "model User {\n  id String", line: 2},
		{name: "missing field type", src: "model User {\n  id ?\n}", line: 2},
		{name: "unterminated string", src: "model M {\n  a String @default(\"x\n}", line: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src))
			require.Error(t, err)
			require.True(t, IsSyntaxError(err))
			var serr *SyntaxError
			require.ErrorAs(t, err, &serr)
			assert.Equal(t, tt.line, serr.Line)
		})
	}
}
