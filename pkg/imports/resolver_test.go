package imports

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolver_Resolve(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{
			name: "app_directory",
			path: "app/login.tsx",
			want: "../src/utils/logger",
		},
		{
			name: "app_directory_nested",
			path: "app/settings/profile.tsx",
			want: "../src/utils/logger",
		},
		{
			name: "components_without_src",
			path: "components/Button.tsx",
			want: "../src/utils/logger",
		},
		{
			name: "src_top_level",
			path: "src/index.ts",
			want: "../utils/logger",
		},
		{
			name: "src_one_level_deep",
			path: "src/screens/LoginScreen.ts",
			want: "../../utils/logger",
		},
		{
			name: "src_two_levels_deep",
			path: "src/screens/auth/SignIn.ts",
			want: "../../../utils/logger",
		},
		{
			name: "components_under_src_uses_depth_rule",
			path: "src/components/Card.tsx",
			want: "../../utils/logger",
		},
		{
			name: "project_root_fallback",
			path: "index.ts",
			want: "./src/utils/logger",
		},
		{
			name: "unanchored_directory_fallback",
			path: "scripts/migrate.ts",
			want: "./src/utils/logger",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver("")
			assert.Equal(t, tt.want, r.Resolve(tt.path))
		})
	}
}

func TestResolver_FirstAnchorWins(t *testing.T) {
	// Known limitation: with two "src" segments the first one anchors the
	// depth computation.
	r := NewResolver("")
	assert.Equal(t, "../../../utils/logger", r.Resolve("src/vendor/src/x.ts"))
}

func TestResolver_CustomModule(t *testing.T) {
	r := NewResolver("lib/logging")

	assert.Equal(t, "../src/lib/logging", r.Resolve("app/a.tsx"))
	assert.Equal(t, "../../lib/logging", r.Resolve("src/screens/a.ts"))
	assert.Equal(t, "./src/lib/logging", r.Resolve("a.ts"))
}
