package ini

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Parse
// ─────────────────────────────────────────────

func TestParse_SingleSection(t *testing.T) {
	cfg := Parse("[A]\nk=v\n")

	require.NotNil(t, cfg)
	assert.Equal(t, map[string]map[string]string{"A": {"k": "v"}}, cfg.Sections)
	assert.Empty(t, cfg.Globals)
}

func TestParse_BlankLineResetsSection(t *testing.T) {
	cfg := Parse("; note\n[A]\nk=v\n\nj=w\n")

	assert.Equal(t, map[string]map[string]string{"A": {"k": "v"}}, cfg.Sections)
	assert.Equal(t, map[string]string{"j": "w"}, cfg.Globals)
}

func TestParse_EmptyInput(t *testing.T) {
	cfg := Parse("")

	require.NotNil(t, cfg)
	assert.Empty(t, cfg.Sections)
	assert.Empty(t, cfg.Globals)
}

func TestParse_TableTest(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantSections map[string]map[string]string
		wantGlobals  map[string]string
	}{
		{
			name:         "fields before any section are globals",
			input:        "a=1\nb = 2\n[S]\nc=3",
			wantSections: map[string]map[string]string{"S": {"c": "3"}},
			wantGlobals:  map[string]string{"a": "1", "b": "2"},
		},
		{
			name:         "whitespace around key, separator and value is trimmed",
			input:        "[S]\n   key   =   some value   \n",
			wantSections: map[string]map[string]string{"S": {"key": "some value"}},
			wantGlobals:  map[string]string{},
		},
		{
			name:         "whitespace inside brackets is trimmed",
			input:        "  [  ABC  ]  \nk=v",
			wantSections: map[string]map[string]string{"ABC": {"k": "v"}},
			wantGlobals:  map[string]string{},
		},
		{
			name:         "empty value is kept",
			input:        "[S]\nk=\n",
			wantSections: map[string]map[string]string{"S": {"k": ""}},
			wantGlobals:  map[string]string{},
		},
		{
			name:         "value keeps everything after the first separator",
			input:        "[S]\nsecret=YWJj==\n",
			wantSections: map[string]map[string]string{"S": {"secret": "YWJj=="}},
			wantGlobals:  map[string]string{},
		},
		{
			name:         "comments are skipped, even when they look like fields",
			input:        "[S]\n; k=v\n   ;[T]\nx=1",
			wantSections: map[string]map[string]string{"S": {"x": "1"}},
			wantGlobals:  map[string]string{},
		},
		{
			name:         "field wins over section header",
			input:        "[a=b]\n",
			wantSections: map[string]map[string]string{},
			wantGlobals:  map[string]string{"[a": "b]"},
		},
		{
			name:         "missing key is not a field",
			input:        "[S]\n=v\n   = w\n",
			wantSections: map[string]map[string]string{"S": {}},
			wantGlobals:  map[string]string{},
		},
		{
			name:         "unrecognised lines are ignored",
			input:        "garbage\n[S]\nnot a field\n[broken\nk=v",
			wantSections: map[string]map[string]string{"S": {"k": "v"}},
			wantGlobals:  map[string]string{},
		},
		{
			name:         "duplicate section resets previous fields",
			input:        "[S]\na=1\n[T]\nb=2\n[S]\nc=3\n",
			wantSections: map[string]map[string]string{"S": {"c": "3"}, "T": {"b": "2"}},
			wantGlobals:  map[string]string{},
		},
		{
			name:         "blank line keeps collected section data",
			input:        "[S]\na=1\n\n[T]\nb=2\n",
			wantSections: map[string]map[string]string{"S": {"a": "1"}, "T": {"b": "2"}},
			wantGlobals:  map[string]string{},
		},
		{
			name:         "whitespace-only line keeps section open",
			input:        "[S]\na=1\n  \t \nb=2",
			wantSections: map[string]map[string]string{"S": {"a": "1", "b": "2"}},
			wantGlobals:  map[string]string{},
		},
		{
			name:         "CRLF line endings",
			input:        "[S]\r\na=1\r\n\r\nb=2\r\n",
			wantSections: map[string]map[string]string{"S": {"a": "1"}},
			wantGlobals:  map[string]string{"b": "2"},
		},
		{
			name:         "bare CR line endings",
			input:        "[S]\ra=1\r\rb=2",
			wantSections: map[string]map[string]string{"S": {"a": "1"}},
			wantGlobals:  map[string]string{"b": "2"},
		},
		{
			name:         "keys are case-sensitive",
			input:        "[S]\nKey=1\nkey=2\n[s]\n",
			wantSections: map[string]map[string]string{"S": {"Key": "1", "key": "2"}, "s": {}},
			wantGlobals:  map[string]string{},
		},
		{
			name:         "later duplicate field overwrites earlier",
			input:        "[S]\nk=1\nk=2\n",
			wantSections: map[string]map[string]string{"S": {"k": "2"}},
			wantGlobals:  map[string]string{},
		},
		{
			name:         "empty section name",
			input:        "[]\nk=v\n",
			wantSections: map[string]map[string]string{"": {"k": "v"}},
			wantGlobals:  map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Parse(tt.input)

			assert.Equal(t, tt.wantSections, cfg.Sections)
			assert.Equal(t, tt.wantGlobals, cfg.Globals)
		})
	}
}

// ─────────────────────────────────────────────
// classify
// ─────────────────────────────────────────────

func TestClassify_Precedence(t *testing.T) {
	tests := []struct {
		line      string
		wantKind  lineKind
		wantName  string
		wantValue string
	}{
		{line: "; a=b", wantKind: lineComment},
		{line: "   ;[S]", wantKind: lineComment},
		{line: "a = b", wantKind: lineField, wantName: "a", wantValue: "b"},
		{line: "[S] = x", wantKind: lineField, wantName: "[S]", wantValue: "x"},
		{line: "[ S ]", wantKind: lineSection, wantName: "S"},
		{line: "", wantKind: lineBlank},
		{line: " \t", wantKind: lineUnknown},
		{line: "[a]b]", wantKind: lineUnknown},
		{line: "plain text", wantKind: lineUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			kind, name, value := classify(tt.line)

			assert.Equal(t, tt.wantKind, kind)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantValue, value)
		})
	}
}
