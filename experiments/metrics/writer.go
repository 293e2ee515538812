package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer writes experiment records as CSV files into a per-run
// directory named by the current timestamp.
type Writer struct {
	baseDir string
}

// NewWriter creates the run directory under root and returns a writer
// for it.
func NewWriter(root string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{baseDir: baseDir}, nil
}

// Dir returns the run directory the writer targets.
func (w *Writer) Dir() string {
	return w.baseDir
}

// WritePerftRecords writes perft results to perft_records.csv.
func (w *Writer) WritePerftRecords(records []PerftRecord) error {
	path := filepath.Join(w.baseDir, "perft_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create perft records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"depth", "nodes", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write perft records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(int(record.Depth)),
			strconv.FormatUint(record.Nodes, 10),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write perft record row: %w", err)
		}
	}

	return nil
}

// WriteGameRecords writes game results to game_records.csv.
func (w *Writer) WriteGameRecords(records []GameRecord) error {
	path := filepath.Join(w.baseDir, "game_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "black", "white", "winner", "black_disks", "white_disks", "moves", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			record.Black,
			record.White,
			record.Winner,
			strconv.Itoa(record.BlackDisks),
			strconv.Itoa(record.WhiteDisks),
			strconv.Itoa(record.Moves),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}

	return nil
}
