package main

import (
	"github.com/pontaoski/lang/errors"
	"github.com/pontaoski/lang/lexer"
	"github.com/pontaoski/lang/reader"
	"github.com/pontaoski/lang/types"
	"golang.org/x/sync/errgroup"
)

type lexedFile struct {
	File   string
	Tokens []types.Token
	Errors []errors.LexerError
}

func (f lexedFile) codeTokens() int {
	n := 0
	for _, tok := range f.Tokens {
		if tok.IsCode() {
			n++
		}
	}
	return n
}

func lexFile(file string) (lexedFile, error) {
	lines, err := reader.ReadLines(file)
	if err != nil {
		return lexedFile{}, err
	}

	tokens := lexer.NewLexer(file).Tokenize(lines)
	return lexedFile{
		File:   file,
		Tokens: tokens,
		Errors: errors.FromTokens(file, tokens),
	}, nil
}

// lexFiles tokenizes files concurrently. Results keep the order of files.
func lexFiles(files []string) ([]lexedFile, error) {
	results := make([]lexedFile, len(files))

	g := new(errgroup.Group)
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			res, err := lexFile(file)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func sourceFiles(args []string, suffix string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	return reader.DiscoverSuffix(".", suffix)
}
