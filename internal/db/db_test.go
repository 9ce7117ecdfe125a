package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpen_CreatesNestedStorageDir(t *testing.T) {
	req := require.New(t)

	path := filepath.Join(t.TempDir(), "nested", "dir", "chat.sqlite")
	gdb, err := Open(path, "release")
	req.NoError(err)
	req.NoError(Migrate(gdb))
}

func TestMigrate_Idempotent(t *testing.T) {
	req := require.New(t)

	gdb, err := Open(filepath.Join(t.TempDir(), "chat.sqlite"), "release")
	req.NoError(err)

	req.NoError(Migrate(gdb))
	req.NoError(Migrate(gdb))
}
