package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdboyer/structindex/internal/decl"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeSchema(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestGenThenCheck(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "gen")
	schema := writeSchema(t, dir, "model.sidx", `
		#[derive(StructIndex)]
		struct Student { id: i64, name: String }
		struct Pair(u8, u8);
	`)

	_, err := run(t, "gen", "-t", "rust,go", "--package", "model", "-o", out, schema)
	require.NoError(t, err)

	rs, err := os.ReadFile(filepath.Join(out, "model_structindex.rs"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(rs), "// Code generated by structindex. DO NOT EDIT.\n\n"))
	assert.Contains(t, string(rs), `("Student", &["id", "name"])`)
	assert.Contains(t, string(rs), `("Pair", &["0", "1"])`)

	gosrc, err := os.ReadFile(filepath.Join(out, "structindex_gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(gosrc), "package model\n")
	assert.Contains(t, string(gosrc), "func (x *Student) FieldPtr(i int) any {")

	stdout, err := run(t, "check", "-t", "rust,go", "--package", "model", "-o", out, schema)
	require.NoError(t, err)
	assert.Contains(t, stdout, "up to date")

	require.NoError(t, os.WriteFile(filepath.Join(out, "model_structindex.rs"), []byte("stale\n"), 0o644))
	_, err = run(t, "check", "-t", "rust,go", "--package", "model", "-o", out, schema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "would have changed")
}

func TestGenUsesManifest(t *testing.T) {
	dir := t.TempDir()
	schema := writeSchema(t, dir, "a.sidx", `struct A { x: u8 }`)
	manifest := writeSchema(t, dir, "structindex.yaml", "schemas: ["+schema+"]\noutput: "+dir+"\ntargets: [rust]\n")

	_, err := run(t, "gen", "--config", manifest)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "a_structindex.rs"))
}

func TestGenFailsWithoutWriting(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "gen")
	good := writeSchema(t, dir, "good.sidx", `struct A { x: u8 }`)
	bad := writeSchema(t, dir, "bad.sidx", `enum E { X, Y }`)

	_, err := run(t, "gen", "-o", out, good, bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, decl.ErrUnsupportedShape)
	assert.Contains(t, err.Error(), "can only be usual structures")
	assert.NoDirExists(t, out)
}

func TestGenMissingName(t *testing.T) {
	dir := t.TempDir()
	bad := writeSchema(t, dir, "bad.sidx", `struct { x: u8 }`)

	_, err := run(t, "gen", "-o", dir, bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, decl.ErrNameNotFound)
	assert.Contains(t, err.Error(), "structure name not found")
}

func TestUnknownTarget(t *testing.T) {
	dir := t.TempDir()
	schema := writeSchema(t, dir, "a.sidx", `struct A { x: u8 }`)

	_, err := run(t, "gen", "-t", "cobol", "-o", dir, schema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown target")
}
