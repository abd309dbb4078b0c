package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyPatch(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		patch  string
		assert func(t *testing.T, got HeadlineSettings, err error)
	}{
		{
			name:  "scalar fields are replaced",
			patch: `{"fontSize": 64, "text": "Hello", "gradientEnabled": true}`,
			assert: func(t *testing.T, got HeadlineSettings, err error) {
				require.NoError(t, err)
				assert.Equal(t, 64.0, got.FontSize)
				assert.Equal(t, "Hello", got.Text)
				assert.True(t, got.GradientEnabled)
				assert.Equal(t, "Inter", got.FontFamily)
			},
		},
		{
			name:  "list fields are replaced wholesale",
			patch: `{"gradientColors": ["#111111", "#222222", "#333333"]}`,
			assert: func(t *testing.T, got HeadlineSettings, err error) {
				require.NoError(t, err)
				assert.Equal(t, []string{"#111111", "#222222", "#333333"}, got.GradientColors)
			},
		},
		{
			name:  "highlight rules are replaced wholesale",
			patch: `{"highlightedWords": [{"word": "Amazing", "style": "bold"}]}`,
			assert: func(t *testing.T, got HeadlineSettings, err error) {
				require.NoError(t, err)
				require.Len(t, got.HighlightedWords, 1)
				assert.Equal(t, StyleBold, got.HighlightedWords[0].Style)
				assert.Empty(t, got.HighlightedWords[0].Color)
			},
		},
		{
			name:  "unknown and path-like keys are ignored",
			patch: `{"theme": "dark", "gradientColors.0": "#ffffff"}`,
			assert: func(t *testing.T, got HeadlineSettings, err error) {
				require.NoError(t, err)
				assert.Equal(t, Default(), got)
			},
		},
		{
			name:  "values are not range checked",
			patch: `{"fontSize": -4, "textAlign": "justify"}`,
			assert: func(t *testing.T, got HeadlineSettings, err error) {
				require.NoError(t, err)
				assert.Equal(t, -4.0, got.FontSize)
				assert.Equal(t, TextAlign("justify"), got.TextAlign)
			},
		},
		{
			name:  "type mismatches keep the current snapshot",
			patch: `{"fontSize": "huge"}`,
			assert: func(t *testing.T, got HeadlineSettings, err error) {
				require.Error(t, err)
				assert.Equal(t, Default(), got)
			},
		},
		{
			name:  "non-object patches are rejected",
			patch: `[1, 2]`,
			assert: func(t *testing.T, got HeadlineSettings, err error) {
				require.Error(t, err)
			},
		},
		{
			name:  "invalid json is rejected",
			patch: `{"fontSize":`,
			assert: func(t *testing.T, got HeadlineSettings, err error) {
				require.Error(t, err)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := ApplyPatch(Default(), []byte(tc.patch))
			tc.assert(t, got, err)
		})
	}
}

func TestApplyPatchDoesNotMutateCurrent(t *testing.T) {
	t.Parallel()

	current := Default()
	_, err := ApplyPatch(current, []byte(`{"gradientColors": ["#000", "#fff"]}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"#3b82f6", "#8b5cf6"}, current.GradientColors)
}

func TestAssignmentPatch(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		assignment string
		want       string
		wantErr    bool
	}{
		{name: "number", assignment: "fontSize=64", want: `{"fontSize":64}`},
		{name: "boolean", assignment: "textShadow=true", want: `{"textShadow":true}`},
		{name: "string field keeps literal text", assignment: "text=123", want: `{"text":"123"}`},
		{name: "string with spaces and equals", assignment: "text=a = b", want: `{"text":"a = b"}`},
		{name: "array", assignment: `gradientColors=["#000","#fff"]`, want: `{"gradientColors":["#000","#fff"]}`},
		{name: "missing equals", assignment: "fontSize", wantErr: true},
		{name: "unknown field", assignment: "theme=dark", wantErr: true},
		{name: "non json value for number", assignment: "fontSize=big", wantErr: true},
		{name: "path syntax", assignment: "gradientColors.0=#fff", wantErr: true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			patch, err := AssignmentPatch(Default(), tc.assignment)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.JSONEq(t, tc.want, string(patch))
		})
	}
}

func TestFieldNamesCoverEveryField(t *testing.T) {
	t.Parallel()

	names := FieldNames()
	assert.Len(t, names, 25)
	assert.Equal(t, "text", names[0])
	assert.Contains(t, names, "highlightedWords")
	assert.Contains(t, names, "backgroundColor")
}
