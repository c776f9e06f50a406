package game

import (
	"fmt"
	"time"

	"github.com/iburimskiy/absorb/internal/config"
)

// formatTicks formats a frame count at the fixed rate as MM:SS.
func formatTicks(ticks int) string {
	return formatDuration(time.Duration(ticks) * time.Second / config.FPS)
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
