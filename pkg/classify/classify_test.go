package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifier_ShouldProcess(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		path string
		want bool
	}{
		{
			name: "typescript_file_included",
			path: "src/screens/LoginScreen.ts",
			want: true,
		},
		{
			name: "tsx_file_included",
			path: "app/components/Button.tsx",
			want: true,
		},
		{
			name: "javascript_file_excluded",
			path: "src/legacy/util.js",
			want: false,
		},
		{
			name: "node_modules_excluded",
			path: "node_modules/react/index.ts",
			want: false,
		},
		{
			name: "nested_node_modules_excluded",
			path: "packages/app/node_modules/lib/index.tsx",
			want: false,
		},
		{
			name: "expo_cache_excluded",
			path: ".expo/web/cache/entry.ts",
			want: false,
		},
		{
			name: "dist_excluded",
			path: "dist/bundle.ts",
			want: false,
		},
		{
			name: "build_excluded",
			path: "build/output.tsx",
			want: false,
		},
		{
			name: "next_cache_excluded",
			path: ".next/server/page.ts",
			want: false,
		},
		{
			name: "pycache_excluded",
			path: "scripts/__pycache__/helper.ts",
			want: false,
		},
		{
			name: "no_extension_excluded",
			path: "src/Makefile",
			want: false,
		},
		{
			name: "custom_glob_excluded",
			opts: Options{ExcludeGlobs: []string{"**/generated/**"}},
			path: "src/generated/api.ts",
			want: false,
		},
		{
			name: "custom_glob_non_match_included",
			opts: Options{ExcludeGlobs: []string{"**/generated/**"}},
			path: "src/screens/Home.ts",
			want: true,
		},
		{
			name: "custom_extensions",
			opts: Options{Extensions: []string{".js", ".jsx"}},
			path: "src/app.js",
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.opts)
			assert.Equal(t, tt.want, c.ShouldProcess(tt.path))
		})
	}
}

func TestClassifier_IsExcludedDir(t *testing.T) {
	c := New(Options{})

	assert.True(t, c.IsExcludedDir("node_modules"))
	assert.True(t, c.IsExcludedDir(".next"))
	assert.False(t, c.IsExcludedDir("src"))
	assert.False(t, c.IsExcludedDir("components"))
}

func TestClassifier_HasSourceExtension(t *testing.T) {
	c := New(Options{})

	assert.True(t, c.HasSourceExtension("a/b.ts"))
	assert.True(t, c.HasSourceExtension("a/b.tsx"))
	assert.False(t, c.HasSourceExtension("a/b.d"))
	assert.False(t, c.HasSourceExtension("a/b"))
}
