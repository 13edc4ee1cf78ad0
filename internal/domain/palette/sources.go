package palette

import (
	"os"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"

	"github.com/blackroad/shell/internal/infrastructure/logging"
)

// Note is one captured note searchable from the palette.
type Note struct {
	ID    string `toml:"id"`
	Title string `toml:"title"`
	Body  string `toml:"body"`
}

// Project is one creative project searchable from the palette.
type Project struct {
	ID      string `toml:"id"`
	Title   string `toml:"title"`
	Summary string `toml:"summary"`
}

type collectionsFile struct {
	Notes    []Note    `toml:"notes"`
	Projects []Project `toml:"projects"`
}

// LoadCollections reads the palette's content collections from a TOML
// file. A missing or unreadable file is not an error; the palette then
// searches apps only.
func LoadCollections(path string, log *logging.Logger) ([]Note, []Project) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Info("no palette collections file, searching apps only",
			zap.String("path", path))
		return nil, nil
	}

	var file collectionsFile
	if err := toml.Unmarshal(data, &file); err != nil {
		log.Warn("invalid palette collections file",
			zap.String("path", path), zap.Error(err))
		return nil, nil
	}

	log.Info("palette collections loaded",
		zap.Int("notes", len(file.Notes)),
		zap.Int("projects", len(file.Projects)),
	)
	return file.Notes, file.Projects
}
