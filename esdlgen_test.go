package esdlgen_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/esdlgen"
	"github.com/syssam/esdlgen/compiler/gen"
	"github.com/syssam/esdlgen/compiler/load"
)

const blogSchema = `
enum Role {
  USER
  ADMIN
}

model User {
  id    Int    @id @default(autoincrement())
  email String @unique
  role  Role   @default(USER)
  posts Post[]
}

model Post {
  id        Int      @id @default(autoincrement())
  title     String
  createdAt DateTime @default(now())
  author    User     @relation(fields: [authorId], references: [id])
  authorId  Int
}
`

func TestCompile(t *testing.T) {
	out, err := esdlgen.Compile([]byte(blogSchema))
	require.NoError(t, err)
	assert.Equal(t, `module default {
  scalar type Role extending enum<USER, ADMIN>;

  type User {
    required property id -> int64;
    required property email -> str { constraint exclusive; };
    required property role -> Role { default := Role.USER; };
    multi link posts := .<author[is Post];
  }

  type Post {
    required property id -> int64;
    required property title -> str;
    required property createdAt -> datetime { default := datetime_current(); };
    required link author -> User;
  }
}
`, out)
}

func TestCompileOptions(t *testing.T) {
	out, err := esdlgen.Compile([]byte("model M {\n  f Citext\n}"),
		gen.WithModule("blog"),
		gen.WithScalarType("Citext", "str"),
	)
	require.NoError(t, err)
	assert.Contains(t, out, "module blog {")
	assert.Contains(t, out, "required property f -> str;")
}

func TestCompileSyntaxError(t *testing.T) {
	_, err := esdlgen.Compile([]byte("model {"))
	require.Error(t, err)
	assert.True(t, load.IsSyntaxError(err))
}

func TestCompileTranslationError(t *testing.T) {
	_, err := esdlgen.Compile([]byte("model M {\n  f Citext\n}"))
	require.Error(t, err)
	assert.True(t, gen.IsUnknownScalarError(err))
}

func TestCompileInvalidOption(t *testing.T) {
	_, err := esdlgen.Compile([]byte("model M {\n  f String\n}"), gen.WithModule(""))
	assert.Error(t, err)
}

func TestCompileExampleBlog(t *testing.T) {
	src, err := os.ReadFile(filepath.Join("examples", "blog", "blog.schema"))
	require.NoError(t, err)
	want, err := os.ReadFile(filepath.Join("examples", "blog", "blog.esdl"))
	require.NoError(t, err)

	out, err := esdlgen.Compile(src, gen.WithModule("blog"))
	require.NoError(t, err)
	assert.Equal(t, string(want), out)
}

func BenchmarkCompile(b *testing.B) {
	src := []byte(blogSchema)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := esdlgen.Compile(src); err != nil {
			b.Fatal(err)
		}
	}
}

func TestTranslateRender(t *testing.T) {
	schema, err := load.Parse([]byte(blogSchema))
	require.NoError(t, err)
	g, err := esdlgen.Translate(schema, gen.WithModule("blog"))
	require.NoError(t, err)
	assert.Equal(t, "blog", g.Module)
	assert.NotNil(t, g.Node("User"))
	assert.NotNil(t, g.Enum("Role"))
	assert.Contains(t, esdlgen.Render(g), "module blog {")
}
