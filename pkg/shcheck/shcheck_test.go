package shcheck_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SirIleBo/elasticsearch/pkg/expansion"
	"github.com/SirIleBo/elasticsearch/pkg/shcheck"
	"github.com/SirIleBo/elasticsearch/pkg/templexp"
)

func TestIsScript(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    bool
	}{
		{name: "sh suffix", file: "bin/elasticsearch-env.sh", want: true},
		{name: "deb maintainer script", file: "debian/postinst", want: true},
		{name: "rpm maintainer script", file: "rpm/posttrans", want: true},
		{name: "bash shebang", file: "bin/elasticsearch", content: "#!/bin/bash\necho", want: true},
		{name: "env shebang", file: "bin/elasticsearch", content: "#!/usr/bin/env sh\necho", want: true},
		{name: "python shebang", file: "bin/tool", content: "#!/usr/bin/env python3\n", want: false},
		{name: "config file", file: "config/jvm.options", content: "-Xms1g\n", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shcheck.IsScript(tt.file, []byte(tt.content)))
		})
	}
}

func TestCheck(t *testing.T) {
	require.NoError(t, shcheck.Check("ok", "#!/bin/sh\nif [ -n \"$X\" ]; then echo x; fi\n"))

	err := shcheck.Check("broken", "if [ -z \"$ES_PATH_CONF\" ]; then ES_PATH_CONF=/x; done\n")
	require.Error(t, err)
	assert.ErrorIs(t, err, shcheck.ErrSyntax)
	assert.Contains(t, err.Error(), "broken")
}

func TestCheck_RenderedEnvScript(t *testing.T) {
	tmpl := "#!/bin/bash\nES_HOME=/usr/share/elasticsearch\n@source.path.env@\n@path.env@\necho \"$ES_PATH_CONF\"\n@scripts.footer@\n"

	for _, f := range append(expansion.Formats(), "tar") {
		t.Run(string(f), func(t *testing.T) {
			script := templexp.ReplaceTokens(tmpl, expansion.Resolve(f, "elasticsearch", "7.0.0"))
			assert.NoError(t, shcheck.Check(string(f), script))
		})
	}
}
