package deploy

import (
	"fmt"
	"io/fs"
	"strings"
)

type OpKind string

const (
	OpMkdir    OpKind = "mkdir"
	OpCopy     OpKind = "copy"
	OpCopyTree OpKind = "copy-tree"
	OpWrite    OpKind = "write"
	OpAppend   OpKind = "append"
	OpExtra    OpKind = "extra"
)

// Op is one filesystem action. Src and Path are slash-separated and
// relative to the project root, except for OpExtra where both hold the
// name exactly as the user typed it. An OpExtra is resolved while applying
// into an OpCopy for a file or an OpCopyTree for a directory; Src then keeps
// the typed name, which may be absolute.
type Op struct {
	Kind OpKind
	Src  string
	Path string
	Data string
	Mode fs.FileMode
}

func (o Op) String() string {
	switch o.Kind {
	case OpCopy, OpCopyTree:
		return fmt.Sprintf("%s %s -> %s", o.Kind, o.Src, o.Path)
	case OpWrite, OpAppend:
		return fmt.Sprintf("%s %s (%d bytes)", o.Kind, o.Path, len(o.Data))
	case OpExtra:
		return fmt.Sprintf("%s %q", o.Kind, o.Src)
	default:
		return fmt.Sprintf("%s %s", o.Kind, o.Path)
	}
}

// Plan is the ordered action list of one run.
type Plan struct {
	Mode   Mode
	Folder string
	Ops    []Op
}

func (p *Plan) add(op Op) {
	p.Ops = append(p.Ops, op)
}

// Describe renders one line per op.
func (p Plan) Describe() string {
	var b strings.Builder
	for _, op := range p.Ops {
		b.WriteString(op.String())
		b.WriteByte('\n')
	}
	return b.String()
}

type Outcome string

const (
	OutcomeIncluded       Outcome = "included"
	OutcomeSkippedMissing Outcome = "skipped-missing"
)

// Inclusion records what happened to one extra. Err is set when a copy was
// attempted but did not complete.
type Inclusion struct {
	Name    string
	Outcome Outcome
	Err     error
}

type Report struct {
	Inclusions []Inclusion
}

func (r Report) Included() []string {
	return r.names(OutcomeIncluded)
}

func (r Report) Skipped() []string {
	return r.names(OutcomeSkippedMissing)
}

func (r Report) names(o Outcome) []string {
	var out []string
	for _, in := range r.Inclusions {
		if in.Outcome == o {
			out = append(out, in.Name)
		}
	}
	return out
}

// Result summarises a finished run.
type Result struct {
	Folder    string
	Plan      Plan
	Report    Report
	TipsShown bool
}
