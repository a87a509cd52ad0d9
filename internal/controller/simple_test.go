package controller

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/grouplist/internal/model"
)

func sampleGroups() []m.Group {
	return []m.Group{
		{Title: "fruits", Items: []m.Item{{Title: "apple"}, {Title: "pear"}, {Title: "plum"}}},
		{Title: "empty", Footer: "nothing here"},
	}
}

func newTestCmd() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	return cmd, &buf
}

func TestSimpleUI_Index_PrintsTable(t *testing.T) {
	cmd, buf := newTestCmd()

	if err := NewSimpleUI(cmd).Index(sampleGroups()); err != nil {
		t.Fatalf("Index() error = %v", err)
	}

	output := buf.String()

	for _, want := range []string{
		"POSITION",
		"header",
		"item",
		"footer",
		"-2",
		"TOTAL GROUPS 2",
		"6",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}

	if got := strings.Count(output, "header"); got != 2 {
		t.Fatalf("output has %d header rows, want 2\noutput:\n%s", got, output)
	}
}

func TestSimpleUI_Index_YAML(t *testing.T) {
	cmd, buf := newTestCmd()

	require.NoError(t, NewSimpleUI(cmd, WithFormat(FormatYAML)).Index(sampleGroups()))

	var decoded struct {
		Positions []positionRow `yaml:"positions"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, []positionRow{
		{Position: 0, Kind: "header", Group: 0, Child: m.HeaderIndex, Type: m.HeaderType},
		{Position: 1, Kind: "item", Group: 0, Child: 0, Type: m.ItemType},
		{Position: 2, Kind: "item", Group: 0, Child: 1, Type: m.ItemType},
		{Position: 3, Kind: "item", Group: 0, Child: 2, Type: m.ItemType},
		{Position: 4, Kind: "header", Group: 1, Child: m.HeaderIndex, Type: m.HeaderType},
		{Position: 5, Kind: "footer", Group: 1, Child: m.FooterIndex, Type: m.FooterType},
	}, decoded.Positions)
}

func TestSimpleUI_Index_Empty(t *testing.T) {
	cmd, buf := newTestCmd()

	require.NoError(t, NewSimpleUI(cmd).Index(nil))
	require.Contains(t, buf.String(), "TOTAL GROUPS 0")
}

func TestSimpleUI_View_Grid(t *testing.T) {
	tests := []struct {
		name    string
		columns int
		want    string
	}{
		{
			name:    "two columns",
			columns: 2,
			want: "== fruits (3)\n" +
				"    apple | pear\n" +
				"    plum\n" +
				"== empty (0)\n" +
				"-- nothing here\n",
		},
		{
			name:    "single column",
			columns: 1,
			want: "== fruits (3)\n" +
				"    apple\n" +
				"    pear\n" +
				"    plum\n" +
				"== empty (0)\n" +
				"-- nothing here\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, buf := newTestCmd()

			require.NoError(t, NewSimpleUI(cmd, WithColumns(tt.columns)).View(sampleGroups()))
			require.Equal(t, tt.want, buf.String())
		})
	}
}
