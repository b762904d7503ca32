package extract

import (
	"os"
	"path/filepath"
	"strings"
)

// DocumentInfo identifies a timetable document found on disk.
type DocumentInfo struct {
	Path  string
	Mtime int64
	Size  int64
}

// DiscoverDocuments walks root and returns every PDF under it.
// A missing root is not an error; it just yields nothing.
func DiscoverDocuments(root string) ([]DocumentInfo, error) {
	if root == "" {
		return nil, nil
	}

	var docs []DocumentInfo
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // skip unreadable dirs
		}
		if info.IsDir() {
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".pdf") {
			return nil
		}
		docs = append(docs, DocumentInfo{
			Path:  path,
			Mtime: info.ModTime().Unix(),
			Size:  info.Size(),
		})
		return nil
	})
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	return docs, nil
}

// StatDocument returns DocumentInfo for a single file path.
func StatDocument(path string) (DocumentInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return DocumentInfo{}, err
	}
	return DocumentInfo{
		Path:  path,
		Mtime: info.ModTime().Unix(),
		Size:  info.Size(),
	}, nil
}
