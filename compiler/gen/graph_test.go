package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/esdlgen/compiler/load"
)

func parse(t *testing.T, src string) *load.Schema {
	t.Helper()
	s, err := load.Parse([]byte(src))
	require.NoError(t, err)
	return s
}

func TestNewIndex(t *testing.T) {
	s := parse(t, `
model Post {
  title    String  @unique
  author   User    @relation(fields: [authorId], references: [id])
  authorId String
  status   String  @default("draft")
}
model User {
  name String
}`)
	idx := newIndex(s)

	t.Run("indexes models and fields by name", func(t *testing.T) {
		require.NotNil(t, idx.model("Post"))
		require.NotNil(t, idx.model("User"))
		assert.Nil(t, idx.model("Comment"))
		assert.NotNil(t, idx.model("Post").byName["authorId"])
		assert.Nil(t, idx.model("Post").byName["missing"])
	})

	t.Run("resolves the recognized attribute set once", func(t *testing.T) {
		post := idx.model("Post")
		assert.True(t, post.byName["title"].unique)
		assert.False(t, post.byName["status"].unique)

		rel := post.byName["author"].relation
		require.NotNil(t, rel)
		assert.Equal(t, []string{"authorId"}, rel.fields)
		assert.Equal(t, []string{"id"}, rel.references)
		assert.True(t, rel.owning())
		assert.Nil(t, post.byName["title"].relation)

		def := post.byName["status"].defaultValue
		require.NotNil(t, def)
		assert.Equal(t, load.ValueString, def.Kind)
		assert.Equal(t, "draft", def.Str)
	})
}

func TestNewGraphEnums(t *testing.T) {
	t.Run("preserves declaration order of enums and values", func(t *testing.T) {
		g, err := NewGraph(nil, parse(t, `
enum Status {
  DRAFT
  REVIEW
  PUBLISHED
}
enum Role {
  USER
  ADMIN
}`))
		require.NoError(t, err)
		require.Len(t, g.Enums, 2)
		assert.Equal(t, "Status", g.Enums[0].Name)
		assert.Equal(t, []string{"DRAFT", "REVIEW", "PUBLISHED"}, g.Enums[0].Values)
		assert.Equal(t, []string{"USER", "ADMIN"}, g.Enums[1].Values)
		require.NotNil(t, g.Enum("Role"))
		assert.Nil(t, g.Enum("Missing"))
	})

	t.Run("defaults the module name", func(t *testing.T) {
		g, err := NewGraph(nil, &load.Schema{})
		require.NoError(t, err)
		assert.Equal(t, DefaultModule, g.Module)
	})

	t.Run("keeps a configured module name", func(t *testing.T) {
		g, err := NewGraph(&Config{Module: "app"}, &load.Schema{})
		require.NoError(t, err)
		assert.Equal(t, "app", g.Module)
	})
}

func TestNewGraphNodes(t *testing.T) {
	g, err := NewGraph(nil, parse(t, `
model User {
  name String
}
model Group {
  name String
}`))
	require.NoError(t, err)
	require.Len(t, g.Nodes, 2)
	assert.Equal(t, "User", g.Nodes[0].Name)
	assert.Equal(t, "Group", g.Nodes[1].Name)
	require.NotNil(t, g.Node("Group"))
	assert.Nil(t, g.Node("Team"))
}
