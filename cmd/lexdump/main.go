// Command lexdump tokenizes a GraphQL source file (or stdin) and
// prints the resulting token and error streams.
package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/alecthomas/repr"

	"github.com/gqlcore/lexer/lexer"
)

func main() {
	log.SetFlags(0)

	file := flag.String("file", "", "path to a GraphQL source file; defaults to stdin")
	quiet := flag.Bool("errors-only", false, "print only the error stream")
	flag.Parse()

	source, err := readSource(*file)
	if err != nil {
		log.Fatalf("lexdump: %v", err)
	}

	result := lexer.Tokenize(source)

	if !*quiet {
		log.Printf("%d tokens", len(result.Tokens))
		repr.Println(result.Tokens)
	}

	log.Printf("%d errors", len(result.Errors))
	if len(result.Errors) > 0 {
		repr.Println(result.Errors)
	}
}

func readSource(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
