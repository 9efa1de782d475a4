package edict

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/japanese"
)

func testdataPath(t *testing.T, name string) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine test file path")
	}
	return filepath.Join(filepath.Dir(file), "testdata", name)
}

func readTestdata(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(testdataPath(t, name))
	require.NoError(t, err)
	return string(data)
}

// toEUCJP encodes UTF-8 test text as EUC-JP source bytes.
func toEUCJP(t *testing.T, s string) string {
	t.Helper()
	out, err := japanese.EUCJP.NewEncoder().String(s)
	require.NoError(t, err)
	return out
}

// fromEUCJP decodes EUC-JP output back to UTF-8 for assertions.
func fromEUCJP(t *testing.T, s string) string {
	t.Helper()
	out, err := japanese.EUCJP.NewDecoder().String(s)
	require.NoError(t, err)
	return out
}
