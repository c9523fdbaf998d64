package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderDoctorTable_StatusGlyphs(t *testing.T) {
	keepProfile(t)
	DisableColors()

	out := RenderDoctorTable([]DoctorCheckRow{
		{Status: "pass", Category: "CONFIG", Message: "Config file: .rcmd.yaml"},
		{Status: "warn", Category: "CLIPBOARD", Message: "Copying via OSC 52"},
		{Status: "fail", Category: "RCLONE", Message: "rclone not found"},
		{Status: "skipped", Category: "RCLONE", Message: "remote not checked"},
	})

	assert.Contains(t, out, "  "+SymbolComplete+" Config file: .rcmd.yaml\n")
	assert.Contains(t, out, "  "+SymbolComplete+" Copying via OSC 52\n", "warnings keep the done glyph")
	assert.Contains(t, out, "  "+SymbolFail+" rclone not found\n")
	assert.Contains(t, out, "  "+SymbolPending+" remote not checked\n", "unknown status falls back to pending")
}

func TestRenderList_ValuesUnstyled(t *testing.T) {
	keepProfile(t)
	ApplyColorMode("always")

	out := RenderList([]ListRow{{Label: "sync", Value: "rclone sync a filelu:b --progress --dry-run"}})

	assert.True(t, strings.HasSuffix(out, "  rclone sync a filelu:b --progress --dry-run\n"),
		"command text must stay paste-safe even with colour on")
}

func TestRenderHeader(t *testing.T) {
	keepProfile(t)
	DisableColors()

	out := RenderHeader(HeaderInfo{Version: "v1.0.0", Tagline: "Save your FileLu builder defaults"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert.Equal(t, []string{
		"rcmd v1.0.0",
		"Save your FileLu builder defaults",
		strings.Repeat("━", HeaderWidth),
	}, lines)
}

func TestRenderHeader_CustomTitle(t *testing.T) {
	keepProfile(t)
	DisableColors()

	out := RenderHeader(HeaderInfo{Title: "FileLu Rclone Command Builder"})
	assert.True(t, strings.HasPrefix(out, "FileLu Rclone Command Builder\n"))
}
