package packager

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/josephspurrier/goversioninfo"
)

// WriteVersionResource generates a Windows version-info resource file
// in dir. The Go linker picks up the .syso automatically, giving the
// packaged executable its version tab and icon.
func WriteVersionResource(dir, appName, version, icoPath string) error {
	major, minor, patch := parseVersion(version)

	vi := &goversioninfo.VersionInfo{
		FixedFileInfo: goversioninfo.FixedFileInfo{
			FileVersion:    goversioninfo.FileVersion{Major: major, Minor: minor, Patch: patch},
			ProductVersion: goversioninfo.FileVersion{Major: major, Minor: minor, Patch: patch},
			FileFlagsMask:  "3f",
			FileOS:         "040004",
			FileType:       "01",
		},
		StringFileInfo: goversioninfo.StringFileInfo{
			FileDescription:  "Sticker Frame Generator",
			FileVersion:      version,
			InternalName:     appName,
			OriginalFilename: appName + ".exe",
			ProductName:      "Sticker Frame Generator",
			ProductVersion:   version,
		},
		VarFileInfo: goversioninfo.VarFileInfo{
			Translation: goversioninfo.Translation{
				LangID:    goversioninfo.LngUSEnglish,
				CharsetID: goversioninfo.CsUnicode,
			},
		},
		IconPath: icoPath,
	}

	vi.Build()
	vi.Walk()

	out := filepath.Join(dir, "resource_windows_amd64.syso")
	if err := vi.WriteSyso(out, "amd64"); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	return nil
}

// parseVersion splits a dotted version string, tolerating short or
// malformed input by treating missing parts as zero.
func parseVersion(version string) (major, minor, patch int) {
	parts := strings.SplitN(strings.TrimPrefix(version, "v"), ".", 3)
	nums := [3]int{}
	for i := 0; i < len(parts) && i < 3; i++ {
		if n, err := strconv.Atoi(parts[i]); err == nil {
			nums[i] = n
		}
	}
	return nums[0], nums[1], nums[2]
}
