package ioformat

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/arborix/partkit/graphmodel"
)

// ParseEdges reads the edge input format (spec §6): one edge per line,
// `<srcId>SEP<dstId>[SEP<weight>]`, loading every well-formed edge directly
// into g via g.AddEdge. defaultWeight fills a line that omits the weight
// field (Config.EdgeWeight).
//
// As with ParseVertices, every faulty line — a parse failure or an
// AddEdge rejection such as a self-loop — is recorded against its line
// number and parsing continues; the returned error, when non-nil, is a
// *multierror.Error.
func ParseEdges(r io.Reader, g *graphmodel.Graph, defaultWeight int8) error {
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
		if len(fields) < 2 {
			faults = multierror.Append(faults, lineFault(lineNo, ErrMalformedLine))
			continue
		}

		src, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			faults = multierror.Append(faults, lineFault(lineNo, ErrMalformedLine))
			continue
		}
		dst, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			faults = multierror.Append(faults, lineFault(lineNo, ErrMalformedLine))
			continue
		}

		weight := defaultWeight
		if len(fields) >= 3 {
			w, err := strconv.ParseInt(fields[2], 10, 8)
			if err != nil {
				faults = multierror.Append(faults, lineFault(lineNo, ErrMalformedLine))
				continue
			}
			weight = int8(w)
		}

		if err := g.AddEdge(src, dst, weight); err != nil {
			faults = multierror.Append(faults, lineFault(lineNo, err))
			continue
		}
	}
	if err := scanner.Err(); err != nil {
		faults = multierror.Append(faults, err)
	}

	return faults.ErrorOrNil()
}
