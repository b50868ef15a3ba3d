package stylesheet

import (
	"context"
	"errors"
	"io"
	iofs "io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.trai.ch/restyle/internal/core/domain"
	"go.trai.ch/restyle/internal/core/ports"
	"go.trai.ch/zerr"
)

// InlinePluginName is the configuration name of the Inliner.
const InlinePluginName = "inline"

var _ domain.Transform = (*Inliner)(nil)

// Inliner is a transform that replaces top-level @import statements with the
// content of the imported files, recursively. Everything else is copied
// through byte for byte.
//
// Remote imports, missing files and imports that would close a cycle are
// left in place.
type Inliner struct {
	files     ports.FileSystem
	extractor *Extractor
	logger    ports.Logger
}

// NewInliner creates a new Inliner reading imported files through files.
func NewInliner(files ports.FileSystem, extractor *Extractor, logger ports.Logger) *Inliner {
	return &Inliner{files: files, extractor: extractor, logger: logger}
}

// Name returns the plugin name.
func (in *Inliner) Name() string {
	return InlinePluginName
}

// Apply inlines the imports of cssText, resolving them against the directory of from.
func (in *Inliner) Apply(ctx context.Context, cssText, from, _ string) (string, error) {
	return in.inline(ctx, cssText, from, []string{filepath.Clean(from)})
}

func (in *Inliner) inline(ctx context.Context, text, file string, stack []string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	l := css.NewLexer(parse.NewInputString(text))
	dir := filepath.Dir(file)

	var out strings.Builder
	out.Grow(len(text))
	depth := 0

	for {
		tt, data := l.Next()

		switch tt {
		case css.ErrorToken:
			if err := l.Err(); err != nil && !errors.Is(err, io.EOF) {
				return "", zerr.With(zerr.Wrap(err, domain.ErrImportParseFailed.Error()), "path", file)
			}
			return out.String(), nil
		case css.LeftBraceToken:
			depth++
		case css.RightBraceToken:
			if depth > 0 {
				depth--
			}
		case css.AtKeywordToken:
			if depth == 0 && isImport(data) {
				stmt, tokens, eof := readStatement(l, data)
				replacement, err := in.replace(ctx, stmt, tokens, dir, stack)
				if err != nil {
					return "", err
				}
				out.WriteString(replacement)
				if eof {
					return out.String(), nil
				}
				continue
			}
		}

		out.Write(data)
	}
}

// replace returns the text that stands in for one @import statement.
func (in *Inliner) replace(ctx context.Context, stmt string, tokens []css.Token, dir string, stack []string) (string, error) {
	target, ok := importTarget(tokens)
	if !ok {
		return stmt, nil
	}

	imported := in.extractor.ResolveImport(domain.ImportSpec{Target: target}, dir)
	if slices.Contains(stack, imported) {
		in.logger.Warn("import cycle left unresolved: " + imported)
		return stmt, nil
	}

	content, err := in.files.ReadFile(imported)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			in.logger.Warn("imported file not found, leaving @import in place: " + imported)
			return stmt, nil
		}
		return "", err
	}

	return in.inline(ctx, content, imported, append(stack, imported))
}

// readStatement consumes the rest of an at-rule statement up to and including
// its terminating semicolon. It returns the raw text, the prelude tokens and
// whether the input ended.
func readStatement(l *css.Lexer, keyword []byte) (string, []css.Token, bool) {
	var raw strings.Builder
	raw.Write(keyword)

	var tokens []css.Token
	for {
		tt, data := l.Next()
		if tt == css.ErrorToken {
			return raw.String(), tokens, true
		}
		raw.Write(data)
		if tt == css.SemicolonToken {
			return raw.String(), tokens, false
		}
		// Copy, the lexer reuses its buffer.
		tokens = append(tokens, css.Token{TokenType: tt, Data: []byte(string(data))})
	}
}
