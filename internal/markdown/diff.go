package markdown

import "strings"

// diffContextLines is the number of unchanged lines kept on either side
// of a change in diff output.
const diffContextLines = 2

// DiffOp is one line operation in a computed diff.
type DiffOp struct {
	Kind DiffKind
	Line string
}

// DiffKind classifies a diff line operation.
type DiffKind int

const (
	DiffKeep DiffKind = iota
	DiffDelete
	DiffInsert
)

// DiffLines aligns old against new line-by-line using a longest common
// subsequence and returns the full operation sequence transforming old
// into new. When an insertion and a deletion are equally good, the
// insertion is taken first.
func DiffLines(oldText, newText string) []DiffOp {
	oldLines := splitLines(oldText)
	newLines := splitLines(newText)

	// lcs[i][j] is the LCS length of oldLines[i:] and newLines[j:].
	lcs := make([][]int, len(oldLines)+1)
	for i := range lcs {
		lcs[i] = make([]int, len(newLines)+1)
	}
	for i := len(oldLines) - 1; i >= 0; i-- {
		for j := len(newLines) - 1; j >= 0; j-- {
			if oldLines[i] == newLines[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else if lcs[i][j+1] >= lcs[i+1][j] {
				lcs[i][j] = lcs[i][j+1]
			} else {
				lcs[i][j] = lcs[i+1][j]
			}
		}
	}

	var ops []DiffOp
	i, j := 0, 0
	for i < len(oldLines) && j < len(newLines) {
		switch {
		case oldLines[i] == newLines[j]:
			ops = append(ops, DiffOp{Kind: DiffKeep, Line: oldLines[i]})
			i++
			j++
		case lcs[i][j+1] >= lcs[i+1][j]:
			ops = append(ops, DiffOp{Kind: DiffInsert, Line: newLines[j]})
			j++
		default:
			ops = append(ops, DiffOp{Kind: DiffDelete, Line: oldLines[i]})
			i++
		}
	}
	for ; i < len(oldLines); i++ {
		ops = append(ops, DiffOp{Kind: DiffDelete, Line: oldLines[i]})
	}
	for ; j < len(newLines); j++ {
		ops = append(ops, DiffOp{Kind: DiffInsert, Line: newLines[j]})
	}

	return ops
}

// RenderDiff formats a contextual diff between oldText and newText as
// -/+/space prefixed lines. Kept lines further than the context window
// from any change are omitted. Equal inputs yield no lines.
func RenderDiff(oldText, newText string) []string {
	ops := DiffLines(oldText, newText)

	// Mark kept ops within the context window of any change.
	include := make([]bool, len(ops))
	for idx, op := range ops {
		if op.Kind == DiffKeep {
			continue
		}
		lo := idx - diffContextLines
		if lo < 0 {
			lo = 0
		}
		hi := idx + diffContextLines
		if hi > len(ops)-1 {
			hi = len(ops) - 1
		}
		for k := lo; k <= hi; k++ {
			include[k] = true
		}
	}

	var lines []string
	for idx, op := range ops {
		if !include[idx] {
			continue
		}
		switch op.Kind {
		case DiffKeep:
			lines = append(lines, " "+op.Line)
		case DiffDelete:
			lines = append(lines, "-"+op.Line)
		case DiffInsert:
			lines = append(lines, "+"+op.Line)
		}
	}
	return lines
}

// splitLines splits text into lines without a trailing empty element,
// and treats empty text as zero lines.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
