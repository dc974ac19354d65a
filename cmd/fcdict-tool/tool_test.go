package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildThenLocateThenExtract(t *testing.T) {
	dir := t.TempDir()
	keyFile := filepath.Join(dir, "keys.txt")
	dictFile := filepath.Join(dir, "out.fcdict")

	require.NoError(t, os.WriteFile(keyFile, []byte("deal\nidea\nideal\nideas\nideology\n"), 0o644))

	require.Equal(t, 0, run([]string{"build", "-b", "4", keyFile, dictFile}))
	require.FileExists(t, dictFile)

	require.Equal(t, 0, run([]string{"locate", dictFile, "ideal"}))
	require.Equal(t, 1, run([]string{"locate", dictFile, "nope"}))

	require.Equal(t, 0, run([]string{"extract", dictFile, "4"}))
	require.Equal(t, 1, run([]string{"extract", dictFile, "99"}))

	require.Equal(t, 0, run([]string{"scan", dictFile, "idea"}))
	require.Equal(t, 0, run([]string{"info", dictFile}))
}

func TestBuildRejectsUnsortedKeys(t *testing.T) {
	dir := t.TempDir()
	keyFile := filepath.Join(dir, "keys.txt")
	dictFile := filepath.Join(dir, "out.fcdict")

	require.NoError(t, os.WriteFile(keyFile, []byte("b\na\n"), 0o644))
	require.Equal(t, 1, run([]string{"build", keyFile, dictFile}))
	require.NoFileExists(t, dictFile)
}
