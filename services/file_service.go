// file: services/file_service.go
package services

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/bhvym-sudo/AlgoNetHackathonPortal/utils"
)

var ErrFileNotFound = errors.New("file not found")

// TeamFile is one stored upload as the evaluator file browser sees it.
type TeamFile struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

func uploadsRoot() string {
	if dir := os.Getenv("UPLOADS_DIR"); dir != "" {
		return dir
	}
	return "./uploads_teams"
}

// TeamUploadDir returns the sanitized per-team upload directory.
func TeamUploadDir(teamID string) string {
	return filepath.Join(uploadsRoot(), utils.SafeTeamDir(teamID))
}

// ListTeamFiles lists a team's uploads with their sizes. A team that never
// uploaded anything has no directory yet; that is an empty list, not an error.
func ListTeamFiles(teamID string) ([]TeamFile, error) {
	entries, err := os.ReadDir(TeamUploadDir(teamID))
	if err != nil {
		if os.IsNotExist(err) {
			return []TeamFile{}, nil
		}
		return nil, err
	}

	files := make([]TeamFile, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, TeamFile{Name: entry.Name(), Size: info.Size()})
	}
	return files, nil
}

// ResolveTeamFile maps a requested filename onto the team's upload directory.
// The name is reduced to its base component, so a traversal path can never
// escape the team's own directory.
func ResolveTeamFile(teamID, fileName string) (string, error) {
	base := filepath.Base(fileName)
	if base == "." || base == ".." || base == string(filepath.Separator) {
		return "", ErrFileNotFound
	}

	path := filepath.Join(TeamUploadDir(teamID), base)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", ErrFileNotFound
	}
	return path, nil
}
