package open

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/hfaheem/ttg/internal/store"
)

// Document opens a timetable with the platform viewer. The argument may
// be a file path or the key of an indexed document.
func Document(db *store.DB, pathOrKey string) error {
	path := pathOrKey
	if _, err := os.Stat(path); err != nil {
		if db == nil {
			return fmt.Errorf("document not found: %s", pathOrKey)
		}
		doc, dbErr := db.GetDocumentByKey(pathOrKey)
		if dbErr != nil {
			return fmt.Errorf("get document: %w", dbErr)
		}
		if doc == nil {
			return fmt.Errorf("document not found: %s", pathOrKey)
		}
		path = doc.FilePath
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("file not found: %s", path)
		}
	}

	return openWithViewer(path)
}

func openWithViewer(path string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}

	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
