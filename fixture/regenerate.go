package fixture

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shibukawa/parsedutch/nlcst"
)

// Tokenizer is the parser surface Regenerate needs.
type Tokenizer interface {
	Parse(text string) *nlcst.Node
	TokenizeParagraph(text string) *nlcst.Node
	TokenizeSentence(text string) *nlcst.Node
	TokenizeWord(text string) *nlcst.Node
}

// Regenerate re-derives every *.json fixture under dir. The text of each
// fixture is reconstructed from its tree and parsed again with the method
// matching its root type. Hidden files and directories are skipped. It
// returns the paths written, in walk order.
func Regenerate(dir string, tokenizer Tokenizer) ([]string, error) {
	var written []string

	err := walkFixtures(dir, func(path string) error {
		node, err := Load(path)
		if err != nil {
			return err
		}

		regenerated, err := Reparse(node, tokenizer)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		err = Save(path, regenerated)
		if err != nil {
			return err
		}

		written = append(written, path)

		return nil
	})
	if err != nil {
		return written, err
	}

	return written, nil
}

// Reparse parses the text of node again with the method matching its kind.
func Reparse(node *nlcst.Node, tokenizer Tokenizer) (*nlcst.Node, error) {
	text := nlcst.ToString(node)

	switch node.Kind {
	case nlcst.Root:
		return tokenizer.Parse(text), nil
	case nlcst.Paragraph:
		return tokenizer.TokenizeParagraph(text), nil
	case nlcst.Sentence:
		return tokenizer.TokenizeSentence(text), nil
	case nlcst.Word:
		return tokenizer.TokenizeWord(text), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedRoot, node.Kind)
	}
}

// walkFixtures calls onFile for each visible *.json file below root.
func walkFixtures(root string, onFile func(path string) error) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		name := info.Name()

		if info.IsDir() {
			if path != root && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}

			return nil
		}

		if strings.HasPrefix(name, ".") || filepath.Ext(name) != ".json" {
			return nil
		}

		return onFile(path)
	})
}
