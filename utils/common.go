// Common package contains commonly used functions that benefit multiple tools
// Exporting these functions from the Common package reduces redundant code
package common

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

type FastaHandler func(id string, seq string) error

// StreamFasta reads a FASTA file record by record and calls the handler for
// each one. Gzipped files are detected by magic bytes and decompressed
// transparently. Sequence lines are uppercased and concatenated, so the
// handler always sees one contiguous sequence per record.
func StreamFasta(file string, handler FastaHandler) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	var reader io.Reader = f
	buf := make([]byte, 2)
	if _, err := f.Read(buf); err == nil && buf[0] == 0x1F && buf[1] == 0x8B {
		f.Seek(0, io.SeekStart)
		gr, err := gzip.NewReader(f)
		if err != nil {
			return fmt.Errorf("failed to open gzip reader: %w", err)
		}
		defer gr.Close()
		reader = gr
	} else {
		f.Seek(0, io.SeekStart)
	}

	scanner := bufio.NewScanner(reader)

	var currentID string
	var buffer []byte
	flush := func() error {
		if currentID == "" || len(buffer) == 0 {
			return nil
		}
		if err := handler(currentID, string(buffer)); err != nil {
			return fmt.Errorf("handler error (%s): %w", currentID, err)
		}
		return nil
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, ">") {
			if err := flush(); err != nil {
				return err
			}
			currentID = strings.TrimPrefix(line, ">")
			buffer = buffer[:0] // reset buffer
		} else {
			buffer = append(buffer, []byte(strings.ToUpper(line))...)
		}
	}
	if err := flush(); err != nil {
		return err
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}
	return nil
}

// ReadFirstFasta returns the id and sequence of the first record in a FASTA
// file. Tools that trace a single backbone only care about one record.
func ReadFirstFasta(file string) (string, string, error) {
	var id, seq string
	found := false
	err := StreamFasta(file, func(recID, recSeq string) error {
		if !found {
			id, seq = recID, recSeq
			found = true
		}
		return nil
	})
	if err != nil {
		return "", "", err
	}
	if !found {
		return "", "", fmt.Errorf("no FASTA records in %s", file)
	}
	return id, seq, nil
}
