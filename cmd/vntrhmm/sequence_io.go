package main

import (
	"os"
	"strings"
)

// readSequenceFile reads a raw, whitespace-trimmed DNA sequence from a plain text file.
// Grounded on the reference project's dna_aligner/io.ReadSequence.
func readSequenceFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return []byte(strings.ToUpper(strings.TrimSpace(string(data)))), nil
}
