package test

import (
	"fmt"
	"go/scanner"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/grom-dev/bot-api-spec/internal/cmd"
	"github.com/rs/zerolog"
	assert "github.com/stretchr/testify/require"
)

func getWd(t *testing.T, folder string) string {
	wd, err := os.Getwd()
	assert.NoError(t, err, "failed to get working directory")
	return filepath.Join(wd, folder)
}

// copyFixture copies a fixture working directory into a temporary
// directory so that generated output does not land in testdata.
func copyFixture(t *testing.T, folder string) string {
	dir := t.TempDir()
	assert.NoError(t, os.CopyFS(dir, os.DirFS(getWd(t, folder))))
	return dir
}

func settings(t *testing.T, dir string) cmd.Settings {
	return cmd.Settings{
		WorkingDir: dir,
		Logger:     zerolog.New(zerolog.NewTestWriter(t)),
	}
}

type scanned struct {
	tok token.Token
	lit string
}

// sourceTokens scans Go source into its tokens without comments, import
// declarations, semicolons and trailing commas, so two layouts of the
// same declarations compare equal.
func sourceTokens(t *testing.T, name string, src []byte) []string {
	t.Helper()

	fset := token.NewFileSet()
	file := fset.AddFile(name, fset.Base(), len(src))

	var s scanner.Scanner
	s.Init(file, src, func(pos token.Position, msg string) {
		t.Errorf("%s: %s", pos, msg)
	}, 0)

	items := make([]scanned, 0)
	for {
		_, tok, lit := s.Scan()
		if tok == token.EOF {
			break
		}

		if tok != token.SEMICOLON {
			items = append(items, scanned{tok, lit})
		}
	}

	out := make([]string, 0, len(items))
	for i := 0; i < len(items); i++ {
		it := items[i]

		if it.tok == token.IMPORT {
			i += importLen(items[i+1:])
			continue
		}

		if it.tok == token.COMMA && i+1 < len(items) {
			switch items[i+1].tok {
			case token.RPAREN, token.RBRACE, token.RBRACK:
				continue
			}
		}

		if it.lit != "" {
			out = append(out, fmt.Sprintf("%s %s", it.tok, it.lit))
		} else {
			out = append(out, it.tok.String())
		}
	}

	return out
}

// importLen returns how many of the tokens following an import keyword
// belong to that import declaration.
func importLen(rest []scanned) int {
	end := token.STRING
	if len(rest) > 0 && rest[0].tok == token.LPAREN {
		end = token.RPAREN
	}

	for i, it := range rest {
		if it.tok == end {
			return i + 1
		}
	}

	return len(rest)
}
