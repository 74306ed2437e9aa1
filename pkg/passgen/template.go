package passgen

import (
	"fmt"
	"strings"
)

// Template control characters.
const (
	escapeRune    = '-'
	lowerModifier = '.'
	upperModifier = ':'
)

// OpKind distinguishes the two instruction forms of a compiled template.
type OpKind uint8

const (
	// OpLiteral emits its rune verbatim.
	OpLiteral OpKind = iota
	// OpClass draws a rune from its pool.
	OpClass
)

// Instruction is one step of a compiled template. Each instruction emits
// exactly one rune.
type Instruction struct {
	Kind OpKind
	// Rune is the literal to emit, or the class tag for OpClass.
	Rune rune
	Case CaseMode
	Pool Alphabet
}

func (in Instruction) String() string {
	if in.Kind == OpLiteral {
		return fmt.Sprintf("literal(%q)", in.Rune)
	}
	return fmt.Sprintf("%s(%s)", in.Case, in.Pool.Name())
}

// Program is a compiled template.
type Program struct {
	source string
	instrs []Instruction
}

// Compile scans template once, left to right:
//
//	-X  emits X literally
//	.X  draws from class X, forced to lower case
//	:X  draws from class X, forced to upper case
//	X   draws from class X with random case when X is a built-in tag,
//	    otherwise emits X literally
//
// A template ending in '-', '.' or ':' fails with ErrSyntax.
func Compile(template string) (*Program, error) {
	runes := []rune(template)
	p := &Program{source: template, instrs: make([]Instruction, 0, len(runes))}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch r {
		case escapeRune, lowerModifier, upperModifier:
			if i+1 >= len(runes) {
				return nil, fmt.Errorf("%w: dangling %q at position %d", ErrSyntax, r, i)
			}
			i++
			next := runes[i]
			switch r {
			case escapeRune:
				p.instrs = append(p.instrs, literal(next))
			case lowerModifier:
				p.instrs = append(p.instrs, class(next, CaseLower))
			default:
				p.instrs = append(p.instrs, class(next, CaseUpper))
			}
		default:
			if IsTag(r) {
				p.instrs = append(p.instrs, class(r, CaseRandom))
			} else {
				p.instrs = append(p.instrs, literal(r))
			}
		}
	}
	return p, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(template string) *Program {
	p, err := Compile(template)
	if err != nil {
		panic(err)
	}
	return p
}

func literal(r rune) Instruction {
	return Instruction{Kind: OpLiteral, Rune: r}
}

func class(tag rune, m CaseMode) Instruction {
	return Instruction{Kind: OpClass, Rune: tag, Case: m, Pool: Pool(tag)}
}

// Len returns the number of runes the program emits.
func (p *Program) Len() int { return len(p.instrs) }

// Source returns the template the program was compiled from.
func (p *Program) Source() string { return p.source }

// Instructions returns a copy of the compiled instruction list.
func (p *Program) Instructions() []Instruction {
	out := make([]Instruction, len(p.instrs))
	copy(out, p.instrs)
	return out
}

func (p *Program) String() string {
	parts := make([]string, len(p.instrs))
	for i, in := range p.instrs {
		parts[i] = in.String()
	}
	return strings.Join(parts, " ")
}

// Execute runs the program with s. Literals bypass the filter, the case
// transform and the statistics; class draws are cased first and then filtered, redrawing on
// rejection. Every class pool is checked before anything is emitted.
func (p *Program) Execute(s *Sampler) (string, error) {
	for _, in := range p.instrs {
		if in.Kind != OpClass {
			continue
		}
		if err := s.require(in.Pool, &in.Case); err != nil {
			return "", err
		}
	}

	var b strings.Builder
	b.Grow(len(p.instrs))
	for _, in := range p.instrs {
		if in.Kind == OpLiteral {
			b.WriteRune(in.Rune)
			continue
		}
		b.WriteRune(s.draw(in.Pool, caseFunc(s.src, in.Case)))
	}
	return b.String(), nil
}
