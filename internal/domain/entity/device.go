package entity

import (
	"path"
	"strings"
)

const RenditionExt = ".jpg"

type DeviceProfile struct {
	Name   string
	Width  int
	Height int
}

// DefaultDeviceProfiles returns the laptop, tablet and mobile viewports in the
// order renditions are produced.
func DefaultDeviceProfiles() []DeviceProfile {
	return []DeviceProfile{
		{Name: "laptop", Width: 1920, Height: 1080},
		{Name: "tablet", Width: 1024, Height: 768},
		{Name: "mobile", Width: 375, Height: 667},
	}
}

// Stem returns the last path segment of key without its final extension.
// A dotfile such as ".env" is its own stem.
func Stem(key string) string {
	base := path.Base(strings.ReplaceAll(key, "\\", "/"))
	if base == "." || base == "/" {
		return ""
	}
	if strings.HasPrefix(base, ".") && strings.Count(base, ".") == 1 {
		return base
	}
	return strings.TrimSuffix(base, path.Ext(base))
}

// RenditionKey builds "<prefix><stem>_<device>.jpg". Identical inputs always
// produce the same key, so a rerun overwrites the previous rendition.
func RenditionKey(prefix, sourceKey, device string) string {
	return prefix + Stem(sourceKey) + "_" + device + RenditionExt
}
