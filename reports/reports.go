package reports

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/chromatone/api/charts"
	"github.com/chromatone/api/dataset"
)

// Store persists generated report artifacts. Implementations own the
// output handle lifecycle: acquire, write, release on every exit path.
type Store interface {
	SaveDataset(name string, rows []dataset.Row) (string, error)
	SaveChart(name string, render func(io.Writer) error) (string, error)
}

// FileStore writes report artifacts into a single output directory.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return FileStore{}, fmt.Errorf("error creating report directory %s: %v", dir, err)
	}
	return FileStore{dir: dir}, nil
}

// SaveDataset writes the dataset as a CSV file and returns its path.
func (fs FileStore) SaveDataset(name string, rows []dataset.Row) (string, error) {
	path := filepath.Join(fs.dir, name)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("error creating dataset file %s: %v", path, err)
	}
	defer file.Close()

	if err := dataset.WriteCSV(file, rows); err != nil {
		return "", err
	}

	if err := file.Close(); err != nil {
		return "", fmt.Errorf("error closing dataset file %s: %v", path, err)
	}
	return path, nil
}

// SaveChart renders a chart into a file and returns its path.
func (fs FileStore) SaveChart(name string, render func(io.Writer) error) (string, error) {
	path := filepath.Join(fs.dir, name)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("error creating chart file %s: %v", path, err)
	}
	defer file.Close()

	if err := render(file); err != nil {
		return "", err
	}

	if err := file.Close(); err != nil {
		return "", fmt.Errorf("error closing chart file %s: %v", path, err)
	}
	return path, nil
}

// Generator builds the recommendation dataset and writes the full report
// set: the CSV export plus the distribution charts.
type Generator struct {
	Store Store
}

func NewGenerator(store Store) Generator {
	return Generator{Store: store}
}

// Generate writes all report artifacts, returning the paths written.
func (g Generator) Generate() ([]string, error) {
	rows, err := dataset.Build()
	if err != nil {
		return nil, err
	}

	var paths []string

	csvPath, err := g.Store.SaveDataset("chromatone_recommendations.csv", rows)
	if err != nil {
		return nil, err
	}
	paths = append(paths, csvPath)

	barPath, err := g.Store.SaveChart("skin_tone_levels.png", func(w io.Writer) error {
		return charts.RenderLevelDistribution(w, rows)
	})
	if err != nil {
		return nil, err
	}
	paths = append(paths, barPath)

	piePath, err := g.Store.SaveChart("undertone_types.png", func(w io.Writer) error {
		return charts.RenderUndertoneDistribution(w, rows)
	})
	if err != nil {
		return nil, err
	}
	paths = append(paths, piePath)

	return paths, nil
}
