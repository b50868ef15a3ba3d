// Package stylesheet implements the CSS-aware adapters: import extraction,
// import resolution and the import-inlining transform.
package stylesheet

import (
	"errors"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.trai.ch/restyle/internal/core/domain"
	"go.trai.ch/restyle/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ImportExtractor = (*Extractor)(nil)

// Extractor implements ports.ImportExtractor with a single shallow pass of
// the CSS grammar parser. Only top-level @import at-rules are considered.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractImports returns the import targets of text in source order.
// Duplicates are kept. Targets without an extension get ".css".
func (e *Extractor) ExtractImports(text string) ([]domain.ImportSpec, error) {
	p := css.NewParser(parse.NewInputString(text), false)

	var specs []domain.ImportSpec
	depth := 0

	for {
		gt, _, data := p.Next()

		switch gt {
		case css.ErrorGrammar:
			err := p.Err()
			if err == nil {
				// Recoverable syntax error; the parser resumes at the next token.
				continue
			}
			if errors.Is(err, io.EOF) {
				return specs, nil
			}
			return nil, zerr.Wrap(err, domain.ErrImportParseFailed.Error())
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			if depth > 0 {
				depth--
			}
		case css.AtRuleGrammar:
			if depth != 0 || !isImport(data) {
				continue
			}
			if target, ok := importTarget(p.Values()); ok {
				specs = append(specs, domain.ImportSpec{Target: target})
			}
		}
	}
}

// ResolveImport resolves spec relative to the directory of the importing file.
func (e *Extractor) ResolveImport(spec domain.ImportSpec, fromDir string) string {
	target := filepath.FromSlash(spec.Target)
	if filepath.IsAbs(target) {
		return filepath.Clean(target)
	}
	return filepath.Join(fromDir, target)
}

// ImportsOf extracts and resolves the imports of the file at file, whose content is text.
func (e *Extractor) ImportsOf(file, text string) ([]string, error) {
	specs, err := e.ExtractImports(text)
	if err != nil {
		return nil, zerr.With(err, "path", file)
	}

	dir := filepath.Dir(file)
	paths := make([]string, len(specs))
	for i, spec := range specs {
		paths[i] = e.ResolveImport(spec, dir)
	}
	return paths, nil
}

func isImport(keyword []byte) bool {
	name := strings.TrimPrefix(string(keyword), "@")
	return strings.EqualFold(name, "import")
}

// importTarget returns the normalized target of an @import prelude: the first
// string or url() token with quotes and the url wrapper removed.
func importTarget(tokens []css.Token) (string, bool) {
	for i, tok := range tokens {
		switch tok.TokenType {
		case css.WhitespaceToken, css.CommentToken:
			continue
		case css.StringToken:
			return normalizeTarget(stripQuotes(string(tok.Data)))
		case css.URLToken:
			return normalizeTarget(unwrapURL(string(tok.Data)))
		case css.FunctionToken:
			// url( "x" ) lexed as a function followed by a string.
			if !strings.EqualFold(string(tok.Data), "url(") {
				return "", false
			}
			for _, arg := range tokens[i+1:] {
				if arg.TokenType == css.StringToken {
					return normalizeTarget(stripQuotes(string(arg.Data)))
				}
				if arg.TokenType != css.WhitespaceToken {
					break
				}
			}
			return "", false
		default:
			return "", false
		}
	}
	return "", false
}

func normalizeTarget(target string) (string, bool) {
	target = strings.TrimSpace(target)
	if target == "" || isRemote(target) {
		return "", false
	}
	if path.Ext(target) == "" {
		target += domain.StylesheetExt
	}
	return target, true
}

// isRemote reports whether target is fetched over the network rather than read from disk.
func isRemote(target string) bool {
	return strings.Contains(target, "://") ||
		strings.HasPrefix(target, "//") ||
		strings.HasPrefix(target, "data:")
}

func stripQuotes(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' || first == '\'') && first == last {
			return s[1 : len(s)-1]
		}
	}
	return strings.Trim(s, `"'`)
}

func unwrapURL(s string) string {
	if len(s) >= 4 && strings.EqualFold(s[:4], "url(") {
		s = s[4:]
	}
	s = strings.TrimSuffix(s, ")")
	return stripQuotes(strings.TrimSpace(s))
}
