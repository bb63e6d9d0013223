package templexp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SirIleBo/elasticsearch/pkg/expansion"
	"github.com/SirIleBo/elasticsearch/pkg/templexp"
)

func TestReplaceTokens(t *testing.T) {
	vars := map[string]string{
		"path.conf":      "/etc/elasticsearch",
		"heap.max":       "1g",
		"scripts.footer": "exit 0\n# footer",
		"empty":          "",
	}

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{
			name:     "single token",
			template: `ES_PATH_CONF=@path.conf@`,
			want:     "ES_PATH_CONF=/etc/elasticsearch",
		},
		{
			name:     "adjacent tokens",
			template: `-Xmx@heap.max@@heap.max@`,
			want:     "-Xmx1g1g",
		},
		{
			name:     "unknown token untouched",
			template: `timeout=@stopping.timeout@`,
			want:     "timeout=@stopping.timeout@",
		},
		{
			name:     "unknown token followed by known",
			template: `@nope@path.conf@`,
			want:     "@nope/etc/elasticsearch",
		},
		{
			name:     "email address untouched",
			template: `maintainer: dev@example.com @heap.max@`,
			want:     "maintainer: dev@example.com 1g",
		},
		{
			name:     "empty value",
			template: `[@empty@]`,
			want:     "[]",
		},
		{
			name:     "lone delimiters",
			template: `@@ @ trailing@`,
			want:     "@@ @ trailing@",
		},
		{
			name:     "multi-line value",
			template: "#!/bin/sh\n@scripts.footer@\n",
			want:     "#!/bin/sh\nexit 0\n# footer\n",
		},
		{
			name:     "no delimiter",
			template: `plain text`,
			want:     "plain text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, templexp.ReplaceTokens(tt.template, vars))
		})
	}
}

func TestUnresolved(t *testing.T) {
	text := "a=@b.c@ x@y.com @b.c@ @stopping.timeout@ @@"
	assert.Equal(t, []string{"b.c", "stopping.timeout"}, templexp.Unresolved(text))
	assert.Empty(t, templexp.Unresolved("nothing here"))
}

func TestReplaceTokens_WithExpansionTable(t *testing.T) {
	unit := "TimeoutStopSec=@stopping.timeout@\nEnvironmentFile=-@path.env@\n"

	rpm := templexp.ReplaceTokens(unit, expansion.Resolve(expansion.FormatRPM, "elasticsearch", "7.0.0"))
	assert.Equal(t, "TimeoutStopSec=86400\nEnvironmentFile=-/etc/sysconfig/elasticsearch\n", rpm)
	assert.Empty(t, templexp.Unresolved(rpm))

	deb := templexp.ReplaceTokens(unit, expansion.Resolve(expansion.FormatDeb, "elasticsearch", "7.0.0"))
	assert.Equal(t, "TimeoutStopSec=@stopping.timeout@\nEnvironmentFile=-/etc/default/elasticsearch\n", deb)
	assert.Equal(t, []string{"stopping.timeout"}, templexp.Unresolved(deb))
}

func TestExpandEnv(t *testing.T) {
	env := []string{"ES_SET=set-value", "ES_EMPTY="}

	tests := []struct {
		name     string
		template string
		want     string
		wantErr  bool
	}{
		{name: "no dollar", template: "7.0.0", want: "7.0.0"},
		{name: "basic expansion", template: `prefix-${ES_SET}-suffix`, want: "prefix-set-value-suffix"},
		{name: "missing expands to empty", template: `x=${ES_MISSING}`, want: "x="},
		{name: "fallback with colon treats empty as unset", template: `${ES_EMPTY:-fallback}`, want: "fallback"},
		{name: "nested fallback", template: `${ES_MISSING:-${ES_SET}}`, want: "set-value"},
		{name: "command substitution rejected", template: `$(id)`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := templexp.ExpandEnv(tt.template, env)
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
