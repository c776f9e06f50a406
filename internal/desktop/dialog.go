package desktop

import (
	"errors"
	"log"

	"github.com/ncruces/zenity"
)

const dialogTitle = "Absorb"

// ConfirmQuit asks before closing the window. If no dialog can be shown the
// answer is yes, since the player already asked to leave.
func ConfirmQuit() bool {
	err := zenity.Question("Leave the game? Upgrades are not kept.",
		zenity.Title(dialogTitle),
		zenity.OKLabel("Quit"),
		zenity.CancelLabel("Keep playing"),
	)
	if err == nil {
		return true
	}
	if errors.Is(err, zenity.ErrCanceled) {
		return false
	}
	log.Printf("quit dialog: %v", err)
	return true
}

// ShowError reports a fatal error in a dialog, falling back to the log.
func ShowError(err error) {
	if derr := zenity.Error(err.Error(), zenity.Title(dialogTitle), zenity.ErrorIcon); derr != nil {
		log.Printf("error dialog: %v (while reporting %v)", derr, err)
	}
}
