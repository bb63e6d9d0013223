package renderer_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SirIleBo/elasticsearch/internal/renderer"
	"github.com/SirIleBo/elasticsearch/pkg/expansion"
	"github.com/SirIleBo/elasticsearch/pkg/shcheck"
)

func templates() fstest.MapFS {
	return fstest.MapFS{
		"config/jvm.options": &fstest.MapFile{
			Data: []byte("-Xms@heap.min@\n-Xmx@heap.max@\n@heap.dump.path@\n"),
			Mode: 0o644,
		},
		"packaging/postinst": &fstest.MapFile{
			Data: []byte("#!/bin/sh\n@source.path.env@\necho installed\n@scripts.footer@\n"),
			Mode: 0o755,
		},
		"systemd/elasticsearch.service": &fstest.MapFile{
			Data: []byte("TimeoutStopSec=@stopping.timeout@\n"),
		},
	}
}

func TestRenderer_Render(t *testing.T) {
	out := t.TempDir()
	r := &renderer.Renderer{Templates: templates(), Output: out, Check: true}

	results, err := r.Render(context.Background(),
		[]expansion.Format{expansion.FormatDeb, expansion.FormatRPM, expansion.FormatDefault},
		"elasticsearch", "7.0.0")
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, expansion.FormatDeb, results[0].Format)
	assert.Equal(t, []string{"config/jvm.options", "packaging/postinst", "systemd/elasticsearch.service"}, results[0].Files)

	postinst, err := os.ReadFile(filepath.Join(out, "deb", "packaging", "postinst"))
	require.NoError(t, err)
	assert.Equal(t, "#!/bin/sh\nsource /etc/default/elasticsearch\necho installed\nexit 0\n# Built for elasticsearch-7.0.0 (deb)\n", string(postinst))

	info, err := os.Stat(filepath.Join(out, "deb", "packaging", "postinst"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())

	jvm, err := os.ReadFile(filepath.Join(out, "default", "config", "jvm.options"))
	require.NoError(t, err)
	assert.Equal(t, "-Xms1g\n-Xmx1g\n-XX:HeapDumpPath=data\n", string(jvm))

	// stopping.timeout 只对 rpm 有值，其他格式保留占位符
	rpmUnit, err := os.ReadFile(filepath.Join(out, "rpm", "systemd", "elasticsearch.service"))
	require.NoError(t, err)
	assert.Equal(t, "TimeoutStopSec=86400\n", string(rpmUnit))
	assert.Empty(t, results[1].Unresolved)

	assert.Equal(t, map[string][]string{
		"systemd/elasticsearch.service": {"stopping.timeout"},
	}, results[0].Unresolved)
}

func TestRenderer_CheckRejectsBrokenScript(t *testing.T) {
	fsys := fstest.MapFS{
		"bin/env.sh": &fstest.MapFile{Data: []byte("if [ -z \"$X\" ]; then X=@path.conf@; done\n"), Mode: 0o755},
	}
	r := &renderer.Renderer{Templates: fsys, Output: t.TempDir(), Check: true}

	_, err := r.Render(context.Background(), []expansion.Format{expansion.FormatRPM}, "elasticsearch", "7.0.0")
	require.Error(t, err)
	assert.ErrorIs(t, err, shcheck.ErrSyntax)

	r.Check = false
	_, err = r.Render(context.Background(), []expansion.Format{expansion.FormatRPM}, "elasticsearch", "7.0.0")
	assert.NoError(t, err)
}

func TestRenderer_CustomCatalog(t *testing.T) {
	out := t.TempDir()
	r := &renderer.Renderer{
		Catalog:   expansion.Default().With(expansion.Variable{Name: expansion.VarHeapMax, Value: expansion.Literal("8g")}),
		Templates: templates(),
		Output:    out,
		Workers:   1,
	}

	_, err := r.Render(context.Background(), []expansion.Format{expansion.FormatRPM}, "elasticsearch", "7.0.0")
	require.NoError(t, err)

	jvm, err := os.ReadFile(filepath.Join(out, "rpm", "config", "jvm.options"))
	require.NoError(t, err)
	assert.Contains(t, string(jvm), "-Xmx8g\n")
}

func TestRenderer_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := &renderer.Renderer{Templates: templates(), Output: t.TempDir()}
	_, err := r.Render(ctx, []expansion.Format{expansion.FormatDeb}, "elasticsearch", "7.0.0")
	require.ErrorIs(t, err, context.Canceled)
}

func TestRenderer_NoTemplates(t *testing.T) {
	r := &renderer.Renderer{Output: t.TempDir()}
	_, err := r.Render(context.Background(), []expansion.Format{expansion.FormatDeb}, "es", "1")
	require.Error(t, err)
}
