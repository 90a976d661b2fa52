// Package tripn provides a streaming Turtle and N-Triples reader plus the
// RFC 3986 URI machinery it depends on. Documents are parsed by a single,
// recursive-descent grammar; N-Triples is accepted as the strict Turtle
// subset it is, so no separate syntax mode is needed on the reader itself.
package tripn
