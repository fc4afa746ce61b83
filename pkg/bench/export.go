package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
)

var csvHeader = []string{"game", "agent", "seed", "scoring", "score", "highest_tile", "moves", "duration_ms"}

// WriteCSV writes one row per game and a final summary row holding the mean
// score and the max highest tile
func WriteCSV(w io.Writer, records []Record, summary Summary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, r := range records {
		row := []string{
			strconv.Itoa(r.Game),
			r.Agent,
			strconv.FormatInt(r.Seed, 10),
			r.Scoring,
			strconv.Itoa(r.Score),
			strconv.Itoa(r.HighestTile),
			strconv.Itoa(r.Moves),
			strconv.FormatInt(r.DurationMs, 10),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row %d: %w", r.Game, err)
		}
	}

	summaryRow := []string{
		"summary",
		summary.Agent,
		"",
		"",
		strconv.FormatFloat(summary.MeanScore, 'f', 2, 64),
		strconv.Itoa(summary.MaxHighestTile),
		strconv.FormatFloat(summary.MeanMoves, 'f', 2, 64),
		"",
	}
	if err := cw.Write(summaryRow); err != nil {
		return fmt.Errorf("write csv summary: %w", err)
	}

	cw.Flush()
	return cw.Error()
}

func WriteParquet(outPath string, records []Record) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	// Write to a temp file and rename atomically.
	tmpPath := outPath + ".tmp"
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, records,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", "game_record_v1"),
	); err != nil {
		return fmt.Errorf("write parquet: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("rename parquet: %w", err)
	}
	return nil
}

func ReadParquet(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}

	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("open parquet: %w", err)
	}

	reader := parquet.NewGenericReader[Record](pf)
	defer reader.Close()

	records := make([]Record, reader.NumRows())
	n, err := reader.Read(records)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("read parquet: %w", err)
	}
	return records[:n], nil
}
