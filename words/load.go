package words

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
)

// maxTokenSize is the longest word ScanWords will accept.
const maxTokenSize = 1 << 20

// SourceError is returned if a word source cannot be opened or read.
type SourceError struct {
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	return "cannot read words from " + e.Path + ": " + e.Err.Error()
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// ReadWords reads all whitespace-delimited words from the file at path, in order.
// If the file cannot be opened or read, a *SourceError is returned.
func ReadWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		tracer().Errorf("could not open file %s", path)
		return nil, &SourceError{Path: path, Err: errors.WithStack(err)}
	}
	defer f.Close()
	words, err := ScanWords(f)
	if err != nil {
		tracer().Errorf("could not read file %s: %v", path, err)
		return nil, &SourceError{Path: path, Err: err}
	}
	tracer().Debugf("read %d words from %s", len(words), path)
	return words, nil
}

// ScanWords splits the input of r into whitespace-delimited words.
// Whitespace is everything unicode.IsSpace reports as such.
func ScanWords(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxTokenSize)
	scanner.Split(bufio.ScanWords)
	words := []string{}
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "scanning words after word #%d", len(words))
	}
	return words, nil
}
