// Package ioformat implements the text wire formats spec §6 defines for
// moving a partitioning job's vertices, edges, and final assignment across a
// process boundary: one record per line, fields separated by 0x01, TAB, or
// SPACE.
//
// What: ParseVertices and ParseEdges read a job's input split, ParseEdges
// loading edges directly into a graphmodel.Graph; WriteAssignments writes
// the final `<vertexId><delim><partition>` output. Every malformed line is a
// data fault (spec §7): parsing never stops at the first bad line, it
// collects every fault with its line number and returns them together.
//
// Why: the teacher's core package treats malformed input as a programmer
// error (a panic or a single sentinel). A partitioning job reads
// machine-generated splits that can be truncated or corrupted mid-file;
// surfacing every line fault in one pass, the way a batch loader would,
// lets the caller decide whether a handful of bad lines out of millions is
// tolerable instead of aborting on the first one.
package ioformat
