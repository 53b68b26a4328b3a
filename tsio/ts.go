package tsio

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/tempo/seq"
)

// ReadTS parses a ".ts" file at path into a Dataset. A missing
// "@classLabel true ..." directive produces a single-class dataset
// labeled "unlabeled", matching files that carry no ground truth.
func ReadTS(path string) (*seq.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, tsioErrorf("ReadTS", err)
	}
	defer f.Close()

	var (
		labelNames   []string
		labelIndex   = map[string]int{}
		hasClassTags bool
		inData       bool
		rows         []seq.Sequence
		labels       []int
	)

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !inData {
			lower := strings.ToLower(line)
			switch {
			case strings.HasPrefix(lower, "@data"):
				inData = true
			case strings.HasPrefix(lower, "@classlabel"):
				fields := strings.Fields(line)
				if len(fields) >= 2 && strings.EqualFold(fields[1], "true") {
					hasClassTags = true
					labelNames = fields[2:]
					for i, name := range labelNames {
						labelIndex[name] = i
					}
				}
			}
			continue
		}

		row, label, err := parseDataLine(line, hasClassTags, labelNames, labelIndex)
		if err != nil {
			return nil, tsioErrorf("ReadTS", err)
		}
		if hasClassTags {
			idx, ok := labelIndex[label]
			if !ok {
				idx = len(labelNames)
				labelNames = append(labelNames, label)
				labelIndex[label] = idx
			}
			labels = append(labels, idx)
		} else {
			labels = append(labels, 0)
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, tsioErrorf("ReadTS", err)
	}
	if len(rows) == 0 {
		return nil, tsioErrorf("ReadTS", ErrNoData)
	}
	if !hasClassTags {
		labelNames = []string{"unlabeled"}
	}

	return seq.NewDataset(rows, labels, labelNames)
}

func parseDataLine(line string, hasClassTags bool, _ []string, _ map[string]int) (seq.Sequence, string, error) {
	channels := strings.Split(line, ":")
	var labelTok string
	if hasClassTags {
		labelTok = strings.TrimSpace(channels[len(channels)-1])
		channels = channels[:len(channels)-1]
	}

	d := len(channels)
	parsed := make([][]float64, d)
	length := -1
	for ci, chStr := range channels {
		toks := strings.Split(chStr, ",")
		vals := make([]float64, 0, len(toks))
		for _, tok := range toks {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				continue
			}
			if tok == "?" {
				vals = append(vals, 0)
				continue
			}
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return seq.Sequence{}, "", ErrMalformedValue
			}
			vals = append(vals, v)
		}
		parsed[ci] = vals
		if length == -1 {
			length = len(vals)
		} else if len(vals) != length {
			return seq.Sequence{}, "", ErrRaggedChannels
		}
	}

	values := make([]float64, length*d)
	for t := 0; t < length; t++ {
		for ci := 0; ci < d; ci++ {
			values[t*d+ci] = parsed[ci][t]
		}
	}
	row, err := seq.NewSequence(values, d)
	if err != nil {
		return seq.Sequence{}, "", err
	}
	return row, labelTok, nil
}
