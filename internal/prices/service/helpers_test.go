package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"price-analyzer/internal/prices/model"
)

// writeFiles раскладывает файлы по временному каталогу и возвращает его.
func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func load(t *testing.T, dir string) (*model.Dataset, []model.Skip) {
	t.Helper()
	ds, skipped, err := NewLoader(zerolog.Nop()).Load(dir)
	require.NoError(t, err)
	return ds, skipped
}

func datasetOf(recs ...model.Record) *model.Dataset {
	ds := model.NewDataset()
	for _, r := range recs {
		ds.Append(r)
	}
	return ds
}
