package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/pinyin-sorter/pkg/pinyin"
)

func main() {
	inputPath := flag.String("input", "", "Input file, one entry per line (default: stdin)")
	outputPath := flag.String("output", "", "Output file (default: stdout)")
	reverse := flag.Bool("reverse", false, "Sort in descending order")
	jsonMode := flag.Bool("json", false, "Treat each line as a JSON object and sort by a key")
	keyName := flag.String("key", pinyin.DefaultField, "JSON key holding the Pinyin string (with -json)")
	quiet := flag.Bool("quiet", false, "Suppress progress logging")

	// Short aliases
	flag.StringVar(inputPath, "i", "", "Input file (short)")
	flag.StringVar(outputPath, "o", "", "Output file (short)")
	flag.BoolVar(reverse, "r", false, "Sort in descending order (short)")
	flag.StringVar(keyName, "k", pinyin.DefaultField, "JSON key (short)")

	flag.Parse()

	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	if *quiet {
		log.SetLevel(log.ErrorLevel)
	}

	if err := run(*inputPath, *outputPath, *keyName, *jsonMode, *reverse); err != nil {
		log.Fatal(err)
	}
}

func run(inputPath, outputPath, keyName string, jsonMode, reverse bool) error {
	lines, err := readLines(inputPath)
	if err != nil {
		return err
	}
	log.Infof("Sorting %d lines", len(lines))

	start := time.Now()

	var sorted []string
	if jsonMode {
		sorted, err = sortJSONLines(lines, keyName, reverse)
		if err != nil {
			return err
		}
	} else {
		sorted = pinyin.SortStrings(lines, reverse)
	}

	log.Infof("Sorted in %s", time.Since(start).Round(time.Microsecond))

	return writeLines(outputPath, sorted)
}

// sortJSONLines decodes one JSON object per line, sorts by the named key,
// and re-encodes in the sorted order.
func sortJSONLines(lines []string, keyName string, reverse bool) ([]string, error) {
	records := make([]map[string]any, len(lines))
	for i, line := range lines {
		if err := json.Unmarshal([]byte(line), &records[i]); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
	}

	sorted, err := pinyin.Sort(records, pinyin.KeyField[map[string]any](keyName), reverse)
	if err != nil {
		return nil, err
	}

	out := make([]string, len(sorted))
	for i, rec := range sorted {
		data, err := json.Marshal(rec)
		if err != nil {
			return nil, err
		}
		out[i] = string(data)
	}
	return out, nil
}

func readLines(path string) ([]string, error) {
	var reader io.Reader = os.Stdin
	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("input file: %w", err)
		}
		defer file.Close()
		reader = file
	}

	var lines []string
	scanner := bufio.NewScanner(reader)
	// Increase buffer size for long lines
	const maxCapacity = 1024 * 1024 // 1MB
	buf := make([]byte, maxCapacity)
	scanner.Buffer(buf, maxCapacity)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func writeLines(path string, lines []string) error {
	var out io.Writer = os.Stdout
	if path != "" {
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("output file: %w", err)
		}
		defer file.Close()
		out = file
	}

	writer := bufio.NewWriterSize(out, 256*1024)
	for _, line := range lines {
		writer.WriteString(line)
		writer.WriteByte('\n')
	}
	return writer.Flush()
}
