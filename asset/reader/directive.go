package reader

import "strings"

// A directive identifies the statement type of a wavefront object line.
type directive uint8

// The wavefront directives understood by the object reader.
const (
	directiveUnknown directive = iota
	directiveVertex
	directiveTexCoord
	directiveNormal
	directiveFace
	directiveGroup
	directiveSmoothingGroup
	directiveMaterialLib
	directiveUseMaterial
)

func (d directive) String() string {
	switch d {
	case directiveVertex:
		return "v"
	case directiveTexCoord:
		return "vt"
	case directiveNormal:
		return "vn"
	case directiveFace:
		return "f"
	case directiveGroup:
		return "g"
	case directiveSmoothingGroup:
		return "s"
	case directiveMaterialLib:
		return "mtllib"
	case directiveUseMaterial:
		return "usemtl"
	}
	return "unknown"
}

// Split a trimmed, non-empty line into its directive and the trimmed
// remainder. The directive keyword must be followed by whitespace or the end
// of the line so "vt" never matches "v" and "gfoo" is not a group.
func parseDirective(line string) (directive, string) {
	keyword, args := splitKeyword(line)

	switch keyword {
	case "v":
		return directiveVertex, args
	case "vt":
		return directiveTexCoord, args
	case "vn":
		return directiveNormal, args
	case "f":
		return directiveFace, args
	case "g":
		return directiveGroup, args
	case "s":
		return directiveSmoothingGroup, args
	case "mtllib":
		return directiveMaterialLib, args
	case "usemtl":
		return directiveUseMaterial, args
	}

	return directiveUnknown, args
}

// Split a line at the first run of whitespace.
func splitKeyword(line string) (keyword, args string) {
	if idx := strings.IndexAny(line, " \t"); idx != -1 {
		return line[:idx], strings.TrimSpace(line[idx+1:])
	}
	return line, ""
}
