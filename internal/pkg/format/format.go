// Package format renders object sizes, timestamps and key kinds for display.
package format

import (
	"fmt"
	"path"
	"strings"
	"time"
)

const TimestampLayout = "2006-01-02 15:04:05"

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
	".tiff": true,
	".webp": true,
}

// FileSize formats n bytes with one decimal in the largest unit below 1024,
// capped at TB.
func FileSize(n int64) string {
	if n == 0 {
		return "0 B"
	}
	size := float64(n)
	i := 0
	for size >= 1024 && i < len(sizeUnits)-1 {
		size /= 1024
		i++
	}
	return fmt.Sprintf("%.1f %s", size, sizeUnits[i])
}

func Timestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

func IsImageKey(key string) bool {
	return imageExtensions[strings.ToLower(path.Ext(key))]
}
