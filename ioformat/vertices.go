package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// ParseVertices reads the vertex-value input format (spec §6): one vertex
// per line, `<vertexId>[SEP<priorPartition>]`. A vertex with no prior
// partition maps to -1 (fresh init, spec §4.1).
//
// Every malformed line is recorded against its 1-based line number and
// parsing continues; the returned error, if non-nil, is a
// *multierror.Error whose Errors slice holds one entry per bad line. The
// returned map always holds every line that DID parse successfully, even
// when the error return is non-nil.
func ParseVertices(r io.Reader) (map[int64]int16, error) {
	priors := make(map[int64]int16)
	var faults *multierror.Error

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := splitFields(line)
		if len(fields) == 0 {
			faults = multierror.Append(faults, lineFault(lineNo, ErrEmptyLine))
			continue
		}

		id, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			faults = multierror.Append(faults, lineFault(lineNo, ErrMalformedLine))
			continue
		}

		prior := int16(-1)
		if len(fields) >= 2 {
			p, err := strconv.ParseInt(fields[1], 10, 16)
			if err != nil {
				faults = multierror.Append(faults, lineFault(lineNo, ErrMalformedLine))
				continue
			}
			prior = int16(p)
		}

		priors[id] = prior
	}
	if err := scanner.Err(); err != nil {
		faults = multierror.Append(faults, err)
	}

	return priors, faults.ErrorOrNil()
}

func lineFault(lineNo int, cause error) error {
	return fmt.Errorf("ioformat: line %d: %w", lineNo, cause)
}
